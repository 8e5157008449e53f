package wire

import "go.trai.ch/bit/internal/core/domain"

// PushRequest uploads one serialized bit.
type PushRequest struct {
	Payload domain.Payload `json:"payload"`
}

// PushResponse acknowledges a push.
type PushResponse struct{}

// FetchRequest asks for serialized bits.
type FetchRequest struct {
	IDs              []string `json:"ids"`
	WithDependencies bool     `json:"withDependencies"`
}

// FetchResponse holds the payloads in request order.
type FetchResponse struct {
	Payloads []domain.Payload `json:"payloads"`
}

// SearchRequest queries the remote index.
type SearchRequest struct {
	Query string `json:"query"`
}

// SearchResponse holds ranked hits.
type SearchResponse struct {
	Results []domain.SearchResult `json:"results"`
}

// DescribeRequest asks for the scope identity.
type DescribeRequest struct{}

// DescribeResponse reports the scope identity.
type DescribeResponse struct {
	Scope domain.ScopeDescription `json:"scope"`
}

// ListRequest asks for every owned id.
type ListRequest struct{}

// ListResponse holds owned ids.
type ListResponse struct {
	IDs []string `json:"ids"`
}
