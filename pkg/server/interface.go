/*
Package server implements msgpack IPC for book recommendation services.

The server provides a minimal interface for catalog queries using msgpack
serialization over stdin/stdout. Messages are processed synchronously with
timing info included in responses.

# IPC

Clients send structured messages via stdin and receive responses through
stdout. Each message contains an ID field and other fields based on the
operation type.

Recommendation requests use mainly this structure:

	{"id": "req_001", "q": "dune", "a": "All", "g": "All", "r": 1, "l": 24}

The server responds with matching books ranked by rating:

	{"id": "req_001", "b": [{"t": "Dune", "a": "Frank Herbert", "g": "Sci-Fi", "r": 4.2}], "c": 1, "t": 145}

Catalog management retrieves the filter vocabularies, completes filter
values by prefix for sidebar pickers, and reports dataset info:

	{"id": "cat_001", "action": "get_filters"}
	{"id": "cat_002", "action": "complete_filters", "prefix": "fra"}
	{"id": "cat_003", "action": "get_info"}

An empty query is legal and returns the whole catalog after filters; it is a
distinct path that never touches the trie.
*/
package server

// RecommendRequest - minimal recommendation request
type RecommendRequest struct {
	ID        string  `msgpack:"id"`
	Query     string  `msgpack:"q"`
	Author    string  `msgpack:"a,omitempty"`
	Genre     string  `msgpack:"g,omitempty"`
	MinRating float64 `msgpack:"r,omitempty"`
	Limit     int     `msgpack:"l,omitempty"`
}

// BookResult - one matched record in a response
type BookResult struct {
	Title    string  `msgpack:"t"`
	Authors  string  `msgpack:"a"`
	Genre    string  `msgpack:"g"`
	Rating   float64 `msgpack:"r"`
	ImageURL string  `msgpack:"i,omitempty"`
}

// RecommendResponse - recommendation response
type RecommendResponse struct {
	ID        string       `msgpack:"id"`
	Books     []BookResult `msgpack:"b"`
	Count     int          `msgpack:"c"`
	TimeTaken int64        `msgpack:"t"`
}

// CatalogRequest - catalog management request
type CatalogRequest struct {
	ID     string `msgpack:"id"`
	Action string `msgpack:"action"`           // "get_filters", "complete_filters", "get_info"
	Prefix string `msgpack:"prefix,omitempty"` // for "complete_filters"
}

// CatalogResponse - catalog operation response
type CatalogResponse struct {
	ID      string   `msgpack:"id"`
	Status  string   `msgpack:"status"`
	Error   string   `msgpack:"error,omitempty"`
	Authors []string `msgpack:"authors,omitempty"`
	Genres  []string `msgpack:"genres,omitempty"`
	Count   int      `msgpack:"count,omitempty"`
}

// RecommendError holds basic error information for failed requests
type RecommendError struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
