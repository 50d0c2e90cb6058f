package error

// APIErrorCode defines error codes for transport-level failures.
type APIErrorCode string

// Transport error codes.
const (
	ErrCodeRateLimited APIErrorCode = "API-010001"
)
