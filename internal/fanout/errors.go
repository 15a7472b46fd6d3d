package fanout

import (
	"errors"

	"github.com/gwillem/whatsapp-go/internal/libsignal"
)

// AssertionError reports a violated precondition of a send, such as a
// group without metadata or an invalid retry target.
type AssertionError struct {
	Message string
	Err     error
}

func (e *AssertionError) Error() string {
	if e.Err != nil {
		return "fanout: " + e.Message + ": " + e.Err.Error()
	}
	return "fanout: " + e.Message
}

func (e *AssertionError) Unwrap() error { return e.Err }

// isSessionError reports the per-device errors a fan-out skips.
func isSessionError(err error) bool {
	var noSession *libsignal.NoSessionError
	var noOpen *libsignal.NoOpenSessionError
	return errors.As(err, &noSession) || errors.As(err, &noOpen)
}
