package modis

// ErrorCode defines error types for subset service operations
type ErrorCode string

const (
	// ErrInvalidParameter represents search parameters outside the service's
	// recognized set, or required parameters left unset
	ErrInvalidParameter ErrorCode = "InvalidParameter"

	// ErrTransport represents a network-level failure of the underlying HTTP call
	ErrTransport ErrorCode = "TransportError"

	// ErrDecode represents a response body that is not valid JSON
	ErrDecode ErrorCode = "DecodeError"
)

func (c ErrorCode) ErrorCode() string {
	return string(c)
}
