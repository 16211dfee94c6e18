package gotds

import (
	"github.com/google/uuid"
)

// newConnectionID returns the id attached to every log line of a connection.
func newConnectionID() string {
	return uuid.NewString()
}

// newStatementID returns the id of one statement; each execution reuses it.
func newStatementID() string {
	return uuid.NewString()
}
