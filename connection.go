package gotds

import (
	"context"
	"errors"
	"sync"
)

// Connection owns one transport session and the diagnostics sink that
// attributes server messages to the statement executing on it. A Connection
// is meant for one caller at a time.
type Connection struct {
	cfg       *Config
	transport Transport
	sink      *diagnosticsSink
	id        string

	closeOnce sync.Once
	closeErr  error
	mu        sync.Mutex
	closed    bool
}

// Open validates cfg and opens a transport session through connector.
// Configuration errors are returned before the connector is called.
func Open(ctx context.Context, cfg *Config, connector Connector) (*Connection, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	c := *cfg
	c.IgnoredCodes = append([]int32(nil), cfg.IgnoredCodes...)
	if err := fillMissingConfigParameters(&c); err != nil {
		return nil, err
	}
	if connector == nil {
		return nil, &Error{
			Number:      ErrCodeConnectionFailed,
			Message:     errMsgConnectionFailed,
			MessageArgs: []interface{}{c.server()},
			Err:         errors.New("no connector"),
		}
	}
	resolvePassword(&c)

	conn := &Connection{
		cfg:  &c,
		sink: newDiagnosticsSink(c.ignoredCodes()),
		id:   newConnectionID(),
	}
	ctx = context.WithValue(ctx, ConnectionIDKey, conn.id)
	logger.WithContext(ctx).Infof("connecting to %v as %v", c.server(), c.Username)

	transport, err := connector.Connect(ctx, LoginParams{
		Hostname:   c.Hostname,
		Port:       c.Port,
		Servername: c.Servername,
		Username:   c.Username,
		Password:   c.Password,
		Database:   c.Database,
		AppName:    c.AppName,
		Charset:    c.Charset,
	}, conn.sink.receive)
	if err != nil {
		logger.WithContext(ctx).Errorf("failed to connect: %v", err)
		driverErr := &Error{
			Number:      ErrCodeConnectionFailed,
			Message:     errMsgConnectionFailed,
			MessageArgs: []interface{}{c.server()},
			Err:         err,
		}
		if first, ok := conn.sink.fallback.firstError(); ok {
			driverErr.Diagnostic = &first
		}
		return nil, driverErr
	}
	conn.transport = transport
	logger.WithContext(ctx).Info("connected")
	return conn, nil
}

// ID returns the connection id used in logs.
func (c *Connection) ID() string {
	return c.id
}

// IsClosed reports whether Close was called.
func (c *Connection) IsClosed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

// Statement returns a statement for query bound to c.
func (c *Connection) Statement(query string) (*Statement, error) {
	if c.IsClosed() {
		return nil, ErrClosedConnection
	}
	return &Statement{conn: c, query: query, id: newStatementID()}, nil
}

// Execute runs query and returns its result. On a command failure the
// result is returned together with the error.
func (c *Connection) Execute(ctx context.Context, query string) (*StatementResult, error) {
	return c.execute(ctx, newStatementID(), query)
}

// Messages returns informational messages received outside any execution,
// such as login notices.
func (c *Connection) Messages() []Diagnostic {
	return c.sink.fallback.Messages()
}

// Errors returns errors received outside any execution.
func (c *Connection) Errors() []Diagnostic {
	return c.sink.fallback.Errors()
}

// Close releases the transport session. Calling it again is a no-op.
func (c *Connection) Close() error {
	c.closeOnce.Do(func() {
		c.mu.Lock()
		c.closed = true
		c.mu.Unlock()
		logger.WithContext(context.WithValue(context.Background(), ConnectionIDKey, c.id)).Info("Close")
		if err := c.transport.Close(); err != nil {
			logger.Errorf("failed to close transport: %v", err)
			c.closeErr = err
		}
	})
	return c.closeErr
}
