package gotds

// ColumnDescriptor describes one column of a result set. It is built from
// the transport's ColumnFormat when the set starts and never changes.
type ColumnDescriptor struct {
	Name      string
	Type      WireType
	Size      int // declared maximum length
	Scale     int
	Precision int
	Nullable  bool
	// BufferLength is the capacity of the column buffer, Size capped to
	// Config.MaxColumnLength.
	BufferLength int
}

// TypeName returns the server type name of the column.
func (c ColumnDescriptor) TypeName() string {
	return c.Type.Name()
}

// Row maps column names to values. A nil value is SQL NULL; a missing key
// means the value could not be converted.
type Row map[string]any

// ResultSet is one row bearing result of a statement.
type ResultSet struct {
	Columns []ColumnDescriptor
	Rows    []Row
}

// StatementResult is everything one execution produced. Rows spans all
// result sets in arrival order, Columns is the layout of the last one.
type StatementResult struct {
	columns    []ColumnDescriptor
	rows       []Row
	resultSets []*ResultSet
	status     *int32
	diag       *diagnosticTarget
	err        error
}

func newStatementResult() *StatementResult {
	return &StatementResult{diag: &diagnosticTarget{}}
}

// Columns returns the columns of the last result set.
func (r *StatementResult) Columns() []ColumnDescriptor {
	return r.columns
}

// Rows returns the data rows of all result sets.
func (r *StatementResult) Rows() []Row {
	return r.rows
}

// ResultSets returns each result set with its own columns.
func (r *StatementResult) ResultSets() []*ResultSet {
	return r.resultSets
}

// Status returns the last return status, if the server sent one.
func (r *StatementResult) Status() (int32, bool) {
	if r.status == nil {
		return 0, false
	}
	return *r.status, true
}

// Messages returns the informational messages raised during execution.
func (r *StatementResult) Messages() []Diagnostic {
	return r.diag.Messages()
}

// Errors returns every error raised during execution in arrival order.
func (r *StatementResult) Errors() []Diagnostic {
	return r.diag.Errors()
}

// Err returns the primary failure of the execution, or nil.
func (r *StatementResult) Err() error {
	return r.err
}
