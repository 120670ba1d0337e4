package models

// InfoResponse is returned by the API root endpoint.
type InfoResponse struct {
	Info string `json:"info"`
}

// TestResponse is returned by the diagnostic /test endpoint. It echoes the
// dummy service answer together with the correlation id of the request that
// produced it.
type TestResponse struct {
	ServiceResponse string `json:"service response"`
	CorrelationID   string `json:"correlation_id"`
}

// ErrorResponse is the body of every error response produced by the API.
// It never carries stack traces or internal identifiers.
type ErrorResponse struct {
	Message string `json:"message"`
}

// RouteDoc describes a single registered route in the /docs listing.
type RouteDoc struct {
	Method string `json:"method"`
	Route  string `json:"route"`
}

// ListingsResponse wraps a page of catalog listings.
type ListingsResponse struct {
	// Listings is the list of catalog items.
	Listings []Listing `json:"listings"`

	// Length is the number of entries in Listings.
	Length int `json:"length"`
}

// VersionResponse carries the build metadata of the running server.
type VersionResponse struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}
