package gotds

import (
	"context"
	"fmt"
)

// TokenKind classifies a result token produced by the transport.
type TokenKind int

const (
	// TokenRowFormat announces the column layout of a new result set.
	TokenRowFormat TokenKind = iota + 1
	// TokenRow means the bound column buffers hold the next data row.
	TokenRow
	// TokenStatus carries a procedure return status.
	TokenStatus
	// TokenCommandSucceeded ends one command of a batch successfully.
	TokenCommandSucceeded
	// TokenCommandFailed reports that the server failed the command.
	TokenCommandFailed
	// TokenCommandDone ends the current result set.
	TokenCommandDone
)

func (k TokenKind) String() string {
	switch k {
	case TokenRowFormat:
		return "RowFormat"
	case TokenRow:
		return "Row"
	case TokenStatus:
		return "Status"
	case TokenCommandSucceeded:
		return "CommandSucceeded"
	case TokenCommandFailed:
		return "CommandFailed"
	case TokenCommandDone:
		return "CommandDone"
	}
	return fmt.Sprintf("TokenKind(%d)", int(k))
}

// ResultToken is one unit of the result stream. Status is only meaningful
// for TokenStatus.
type ResultToken struct {
	Kind   TokenKind
	Status int32
}

// ColumnFormat is the transport's description of one result column.
type ColumnFormat struct {
	Name      string
	Type      WireType
	Size      int // declared maximum length in bytes
	Scale     int
	Precision int
	Nullable  bool
}

// LoginParams are the validated parameters handed to a Connector.
type LoginParams struct {
	Hostname   string
	Port       int
	Servername string
	Username   string
	Password   string
	Database   string
	AppName    string
	Charset    string
}

// DiagnosticHandler receives server messages and errors. The transport may
// call it at any point during Connect, Submit or NextResult.
type DiagnosticHandler func(Diagnostic)

// Connector opens transport sessions. The handler must be registered before
// the login exchange so that login diagnostics are delivered.
type Connector interface {
	Connect(ctx context.Context, params LoginParams, handler DiagnosticHandler) (Transport, error)
}

// Transport is one session of the wire protocol. Its result stream is
// single pass: NextResult returns io.EOF once the submitted command has no
// more tokens.
type Transport interface {
	// Submit sends the command text verbatim.
	Submit(ctx context.Context, text string) error
	// NextResult returns the next token of the submitted command.
	NextResult(ctx context.Context) (ResultToken, error)
	// NumColumns returns the column count of the current result set.
	NumColumns() (int, error)
	// DescribeColumn describes the column at index, starting at 0.
	DescribeColumn(index int) (ColumnFormat, error)
	// BindColumn registers the buffer filled for the column before each TokenRow.
	BindColumn(index int, buf *ColumnBuffer) error
	// Close releases the session.
	Close() error
}

// ConnectorFunc adapts a function to the Connector interface.
type ConnectorFunc func(ctx context.Context, params LoginParams, handler DiagnosticHandler) (Transport, error)

// Connect calls f.
func (f ConnectorFunc) Connect(ctx context.Context, params LoginParams, handler DiagnosticHandler) (Transport, error) {
	return f(ctx, params, handler)
}
