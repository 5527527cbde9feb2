package source

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/tidwall/gjson"

	"github.com/rickgao/dex-orders/internal/api"
	"github.com/rickgao/dex-orders/internal/model"
)

// Fetcher is the subset of api.Client an adapter needs.
type Fetcher interface {
	Get(ctx context.Context, path string, query url.Values) ([]byte, error)
}

// Adapter fetches one order list from one upstream endpoint.
type Adapter struct {
	name   string
	client Fetcher
	path   string
	query  url.Values
	field  string
	logger *slog.Logger
}

// NewAdapter creates an adapter reading the array at field from GET path?query.
// The query is copied; later changes by the caller have no effect.
func NewAdapter(name string, client Fetcher, path string, query url.Values, field string, logger *slog.Logger) *Adapter {
	if logger == nil {
		logger = slog.Default()
	}
	q := make(url.Values, len(query))
	for k, v := range query {
		q[k] = append([]string(nil), v...)
	}
	return &Adapter{
		name:   name,
		client: client,
		path:   path,
		query:  q,
		field:  field,
		logger: logger.With("source", name),
	}
}

// Name returns the source name.
func (a *Adapter) Name() string {
	return a.name
}

// Fetch returns the current open orders, or an empty slice on any failure.
func (a *Adapter) Fetch(ctx context.Context) []model.Order {
	orders, err := a.fetch(ctx)
	if err != nil {
		attrs := []any{"path", a.path, "error", err}
		var apiErr *api.APIError
		if errors.As(err, &apiErr) {
			attrs = append(attrs, "status", apiErr.StatusCode, "body", truncate(apiErr.Body, 512))
		}
		a.logger.Error("fetch orders failed", attrs...)
		return []model.Order{}
	}
	return orders
}

func (a *Adapter) fetch(ctx context.Context) ([]model.Order, error) {
	body, err := a.client.Get(ctx, a.path, a.query)
	if err != nil {
		return nil, err
	}
	return extractArray(body, a.field)
}

// extractArray returns the raw elements of the array at field.
func extractArray(body []byte, field string) ([]model.Order, error) {
	if !gjson.ValidBytes(body) {
		return nil, errors.New("response is not valid JSON")
	}

	res := gjson.GetBytes(body, field)
	if !res.Exists() {
		return nil, fmt.Errorf("response has no %q field", field)
	}
	if !res.IsArray() {
		return nil, fmt.Errorf("response field %q is %s, want array", field, res.Type)
	}

	orders := make([]model.Order, 0, 64)
	res.ForEach(func(_, value gjson.Result) bool {
		orders = append(orders, model.Order(value.Raw))
		return true
	})
	return orders, nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
