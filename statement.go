package gotds

import "context"

// Statement is a command text bound to a connection. Each Execute runs the
// command again and replaces the previous result.
type Statement struct {
	conn   *Connection
	query  string
	id     string
	result *StatementResult
}

// Query returns the command text.
func (s *Statement) Query() string {
	return s.query
}

// Execute runs the statement. It returns the primary failure: a transport
// or protocol error, a failed command, or the first server error.
func (s *Statement) Execute(ctx context.Context) error {
	s.result = nil
	result, err := s.conn.execute(ctx, s.id, s.query)
	s.result = result
	return err
}

// Result returns the result of the last execution, or nil.
func (s *Statement) Result() *StatementResult {
	return s.result
}

// Columns returns the columns of the last result set.
func (s *Statement) Columns() []ColumnDescriptor {
	if s.result == nil {
		return nil
	}
	return s.result.Columns()
}

// Rows returns the data rows of the last execution.
func (s *Statement) Rows() []Row {
	if s.result == nil {
		return nil
	}
	return s.result.Rows()
}

// ResultSets returns the result sets of the last execution.
func (s *Statement) ResultSets() []*ResultSet {
	if s.result == nil {
		return nil
	}
	return s.result.ResultSets()
}

// Status returns the last return status of the last execution.
func (s *Statement) Status() (int32, bool) {
	if s.result == nil {
		return 0, false
	}
	return s.result.Status()
}

// Messages returns the informational messages of the last execution.
func (s *Statement) Messages() []Diagnostic {
	if s.result == nil {
		return nil
	}
	return s.result.Messages()
}

// Errors returns the errors of the last execution.
func (s *Statement) Errors() []Diagnostic {
	if s.result == nil {
		return nil
	}
	return s.result.Errors()
}

// Drop discards the result of the last execution.
func (s *Statement) Drop() {
	s.result = nil
}
