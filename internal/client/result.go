package client

// FallbackErrorMessage is shown when a failed creation carried no message
const FallbackErrorMessage = "An error occurred."

// Result is the outcome of a topping creation: Ok, or Err with the server's message.
// The message may be empty when the failure carried no readable error text.
type Result struct {
	ok      bool
	message string
}

// Ok returns a successful result
func Ok() Result {
	return Result{ok: true}
}

// Err returns a failed result carrying message
func Err(message string) Result {
	return Result{message: message}
}

// IsOk reports whether the request succeeded
func (r Result) IsOk() bool {
	return r.ok
}

// Message returns the failure message; empty for Ok results
func (r Result) Message() string {
	return r.message
}
