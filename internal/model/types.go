package model

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"
)

// Order is one upstream order record, kept verbatim as raw JSON.
// The poll loop never looks inside it.
type Order = json.RawMessage

// Snapshot is the set of orders returned by a single fetch from one source.
type Snapshot struct {
	ID        uuid.UUID // Correlation id for sink entries
	Source    string    // Source name (e.g., "uniswapx-dutch")
	FetchedAt time.Time // When the fetch started
	Orders    []Order   // Records in upstream order
}

// NewSnapshot stamps a snapshot with a fresh id.
func NewSnapshot(source string, fetchedAt time.Time, orders []Order) Snapshot {
	return Snapshot{
		ID:        uuid.New(),
		Source:    source,
		FetchedAt: fetchedAt,
		Orders:    orders,
	}
}

// Len returns the number of orders.
func (s Snapshot) Len() int {
	return len(s.Orders)
}

// OrdersJSON encodes the orders as a JSON array. An empty snapshot encodes as [].
func (s Snapshot) OrdersJSON() []byte {
	if len(s.Orders) == 0 {
		return []byte("[]")
	}
	out := make([]byte, 0, 2+len(s.Orders)*256)
	out = append(out, '[')
	for i, o := range s.Orders {
		if i > 0 {
			out = append(out, ',')
		}
		out = append(out, o...)
	}
	return append(out, ']')
}

// OrderHash returns the orderHash field every supported upstream carries,
// or "" when the record has none.
func OrderHash(o Order) string {
	return gjson.GetBytes(o, "orderHash").String()
}

// -----------------------------------------------------------------------------
// Upstream order shapes (inspection only)
// -----------------------------------------------------------------------------

// UniswapXOrderInput is the input leg of a UniswapX order.
type UniswapXOrderInput struct {
	Token       string `json:"token"`
	StartAmount string `json:"startAmount"`
	EndAmount   string `json:"endAmount"`
}

// UniswapXOrderOutput is one output leg of a UniswapX order.
type UniswapXOrderOutput struct {
	Token       string `json:"token"`
	StartAmount string `json:"startAmount"`
	EndAmount   string `json:"endAmount"`
	Recipient   string `json:"recipient"`
}

// UniswapXOrder is a Dutch auction or limit order from the UniswapX API.
type UniswapXOrder struct {
	Type         string                `json:"type"`
	EncodedOrder string                `json:"encodedOrder"`
	Signature    string                `json:"signature"`
	Nonce        string                `json:"nonce"`
	OrderHash    string                `json:"orderHash"`
	OrderStatus  string                `json:"orderStatus"`
	ChainID      int64                 `json:"chainId"`
	Swapper      string                `json:"swapper"`
	Deadline     int64                 `json:"deadline"`  // Unix seconds
	CreatedAt    int64                 `json:"createdAt"` // Unix seconds
	Input        UniswapXOrderInput    `json:"input"`
	Outputs      []UniswapXOrderOutput `json:"outputs"`
}

// VeloraOrder is a limit order from the ParaSwap (Velora) order book.
type VeloraOrder struct {
	Expiry           int64  `json:"expiry"`
	CreatedAt        int64  `json:"createdAt"`
	UpdatedAt        int64  `json:"updatedAt"`
	TransactionHash  string `json:"transactionHash"`
	ChainID          int64  `json:"chainId"`
	NonceAndMeta     string `json:"nonceAndMeta"`
	Maker            string `json:"maker"`
	Taker            string `json:"taker"`
	TakerFromMeta    string `json:"takerFromMeta"`
	MakerAsset       string `json:"makerAsset"`
	TakerAsset       string `json:"takerAsset"`
	MakerAmount      string `json:"makerAmount"`
	FillableBalance  string `json:"fillableBalance"`
	SwappableBalance string `json:"swappableBalance"`
	MakerBalance     string `json:"makerBalance"`
	IsFillOrKill     bool   `json:"isFillOrKill"`
	TakerAmount      string `json:"takerAmount"`
	OrderHash        string `json:"orderHash"`
	PermitMakerAsset string `json:"permitMakerAsset"`
	Type             string `json:"type"`
	State            string `json:"state"`
}

// DecodeUniswapX decodes a raw record into a UniswapXOrder.
func DecodeUniswapX(o Order) (UniswapXOrder, error) {
	var out UniswapXOrder
	if err := json.Unmarshal(o, &out); err != nil {
		return UniswapXOrder{}, fmt.Errorf("decode uniswapx order: %w", err)
	}
	return out, nil
}

// DecodeVelora decodes a raw record into a VeloraOrder.
func DecodeVelora(o Order) (VeloraOrder, error) {
	var out VeloraOrder
	if err := json.Unmarshal(o, &out); err != nil {
		return VeloraOrder{}, fmt.Errorf("decode velora order: %w", err)
	}
	return out, nil
}
