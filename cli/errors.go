package cli

// ErrorCode defines error types for CLI operations
type ErrorCode string

const (
	InvalidOrderID ErrorCode = "InvalidOrderID"
)

func (c ErrorCode) ErrorCode() string {
	return string(c)
}
