package errorx

import "fmt"

type Code int64

// Unknown is returned for any failure the caller cannot act on. The real
// cause must be logged before returning it.
var Unknown = Error{Code: 100000, Message: "Request failed"}

const (
	BadRequest  Code = 100001
	NotFound    Code = 100002
	Internal    Code = 100003
	Unavailable Code = 100004
)

type Error struct {
	Code    Code
	Message string
}

func (e Error) Error() string {
	return e.Message
}

// New creates an Error with a message safe to show to clients.
func New(code Code, format string, a ...any) Error {
	return Error{Code: code, Message: fmt.Sprintf(format, a...)}
}
