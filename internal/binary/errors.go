package binary

import (
	"fmt"
	"strconv"
)

// ServerRejectedError is an error reported by the server inside a response node.
type ServerRejectedError struct {
	Code int
	Text string
}

func (e *ServerRejectedError) Error() string {
	return fmt.Sprintf("server rejected request: %d %s", e.Code, e.Text)
}

// IsNotAcceptable reports a 406 "not-acceptable" rejection.
func (e *ServerRejectedError) IsNotAcceptable() bool {
	return e.Code == 406 || e.Text == "not-acceptable"
}

// AssertErrorFree returns a *ServerRejectedError when n is an error response
// or carries an <error> child.
func AssertErrorFree(n *Node) error {
	errNode := *n
	if n.Tag != "error" {
		child, ok := n.GetChildByTag("error")
		if !ok {
			if n.Attr("type") != "error" {
				return nil
			}
			return &ServerRejectedError{Text: "unknown error"}
		}
		errNode = child
	}
	code, _ := strconv.Atoi(errNode.Attr("code"))
	text := errNode.Attr("text")
	if text == "" {
		text = "unknown error"
	}
	return &ServerRejectedError{Code: code, Text: text}
}
