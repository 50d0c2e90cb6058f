// Package dto defines data transfer objects for API requests and responses.
package dto

// ErrorResponse represents an error response returned to the client.
// Consumers only rely on the presence of the error field; code and details
// are advisory.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}
