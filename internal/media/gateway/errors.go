package gateway

import "fmt"

// RemoteError is a failure reported by, or while talking to, the remote media
// store. Message is safe to show to a user.
type RemoteError struct {
	Op      string
	Message string
	Err     error
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("remote %s: %s", e.Op, e.Message)
}

func (e *RemoteError) Unwrap() error { return e.Err }

func remoteError(op string, err error) *RemoteError {
	return &RemoteError{Op: op, Message: err.Error(), Err: err}
}
