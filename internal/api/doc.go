// Package api provides a small REST client for the order book APIs.
//
// Every upstream is a read-only JSON GET: a base URL, a source-specific path,
// query defaults and optional bearer authentication. Retries are deliberately
// absent; each poll cycle issues exactly one request per source.
//
// Upstreams:
//   - UniswapX: https://api.uniswap.org/v2
//   - Velora (ParaSwap): https://api.paraswap.io
//   - 1inch Fusion: https://api.1inch.com/fusion
//   - 1inch Orderbook: https://api.1inch.com/orderbook
package api
