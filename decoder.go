package gotds

import (
	"context"
	"errors"
	"fmt"
)

type decoderState int

const (
	stateAwaitingFormat decoderState = iota
	stateHaveFormat
	stateReadingRows
	stateDone
)

func (s decoderState) String() string {
	switch s {
	case stateAwaitingFormat:
		return "AwaitingFormat"
	case stateHaveFormat:
		return "HaveFormat"
	case stateReadingRows:
		return "ReadingRows"
	case stateDone:
		return "Done"
	}
	return "unknown"
}

// resultSetDecoder turns format and row tokens into column descriptors and
// rows of a StatementResult. It lives for one execution.
type resultSetDecoder struct {
	ctx       context.Context
	transport Transport
	result    *StatementResult
	text      *textDecoder
	maxLength int
	policy    TruncationPolicy

	state   decoderState
	columns []ColumnDescriptor
	buffers []*ColumnBuffer
	current *ResultSet
	// columns of the current set whose truncation or conversion failure
	// was already recorded
	truncReported map[int]bool
	typeReported  map[int]bool
}

func newResultSetDecoder(ctx context.Context, transport Transport, cfg *Config, result *StatementResult) (*resultSetDecoder, error) {
	text, err := newTextDecoder(cfg.Charset)
	if err != nil {
		return nil, err
	}
	maxLength := cfg.MaxColumnLength
	if maxLength <= 0 {
		maxLength = DefaultMaxColumnLength
	}
	return &resultSetDecoder{
		ctx:       ctx,
		transport: transport,
		result:    result,
		text:      text,
		maxLength: maxLength,
		policy:    cfg.TruncationPolicy,
		state:     stateAwaitingFormat,
	}, nil
}

// maxScalarLength is the widest value of a type outside the text and image
// families (numeric with precision 38).
const maxScalarLength = 17

// bufferLength sizes the column buffer. Only text and image columns are
// capped, and wide text is kept to whole UCS-2 code units.
func (d *resultSetDecoder) bufferLength(f ColumnFormat) int {
	n := f.Size
	if n <= 0 {
		n = f.Type.fixedSize()
	}
	if !f.Type.isCapped() {
		if n <= 0 {
			n = maxScalarLength
		}
		return n
	}
	if n <= 0 || n > d.maxLength {
		n = d.maxLength
	}
	if f.Type.isWide() {
		n &^= 1
	}
	return n
}

// onFormat reads the new column layout and binds one buffer per column.
func (d *resultSetDecoder) onFormat() error {
	if d.state == stateHaveFormat || d.state == stateReadingRows {
		logger.WithContext(d.ctx).Debugf("format token in state %v, starting a new result set", d.state)
	}
	n, err := d.transport.NumColumns()
	if err != nil {
		return &Error{Number: ErrCodeColumnBindFailed, Message: errMsgColumnBindFailed, MessageArgs: []interface{}{-1}, Err: err}
	}
	columns := make([]ColumnDescriptor, n)
	buffers := make([]*ColumnBuffer, n)
	for i := 0; i < n; i++ {
		f, err := d.transport.DescribeColumn(i)
		if err != nil {
			return &Error{Number: ErrCodeColumnBindFailed, Message: errMsgColumnBindFailed, MessageArgs: []interface{}{i}, Err: err}
		}
		columns[i] = ColumnDescriptor{
			Name:         f.Name,
			Type:         f.Type,
			Size:         f.Size,
			Scale:        f.Scale,
			Precision:    f.Precision,
			Nullable:     f.Nullable,
			BufferLength: d.bufferLength(f),
		}
		if columns[i].BufferLength < f.Size {
			logger.WithContext(d.ctx).Debugf("column %q declared %d bytes, capped to %d", f.Name, f.Size, columns[i].BufferLength)
		}
		buffers[i] = NewColumnBuffer(columns[i].BufferLength, d.policy)
		if err = d.transport.BindColumn(i, buffers[i]); err != nil {
			return &Error{Number: ErrCodeColumnBindFailed, Message: errMsgColumnBindFailed, MessageArgs: []interface{}{i}, Err: err}
		}
	}
	d.columns = columns
	d.buffers = buffers
	d.startResultSet()
	d.state = stateHaveFormat
	return nil
}

func (d *resultSetDecoder) startResultSet() {
	d.current = &ResultSet{Columns: d.columns}
	d.result.resultSets = append(d.result.resultSets, d.current)
	d.result.columns = d.columns
	d.truncReported = make(map[int]bool)
	d.typeReported = make(map[int]bool)
}

// onRow materializes the bound buffers into a row.
func (d *resultSetDecoder) onRow() error {
	switch d.state {
	case stateAwaitingFormat, stateDone:
		if d.columns == nil {
			return ErrRowBeforeFormat
		}
		logger.WithContext(d.ctx).Warnf("row token without a format token, reusing the previous %d columns", len(d.columns))
		d.startResultSet()
	case stateHaveFormat, stateReadingRows:
	}
	row := make(Row, len(d.columns))
	for i := range d.columns {
		d.decodeColumn(i, row)
	}
	d.current.Rows = append(d.current.Rows, row)
	d.result.rows = append(d.result.rows, row)
	d.state = stateReadingRows
	return nil
}

func (d *resultSetDecoder) decodeColumn(i int, row Row) {
	col := &d.columns[i]
	buf := d.buffers[i]
	if buf.IsNull() {
		row[col.Name] = nil
		return
	}
	if buf.Truncated() && buf.Policy == TruncateWithWarning && !d.truncReported[i] {
		d.truncReported[i] = true
		d.result.diag.addMessage(clientMessage("value of column %q truncated to %d bytes", col.Name, buf.Capacity()))
	}
	v, err := convertValue(col, buf.Bytes(), d.text)
	if err == nil {
		row[col.Name] = v
		return
	}
	if errors.Is(err, errSkipColumn) {
		logger.WithContext(d.ctx).Debugf("skipping column %q: %v", col.Name, err)
		return
	}
	if !d.typeReported[i] {
		d.typeReported[i] = true
		logger.WithContext(d.ctx).Warnf("%v", err)
		d.result.diag.addError(Diagnostic{
			Number:  ErrCodeUnsupportedType,
			Server:  clientServerName,
			Message: fmt.Sprintf(errMsgUnsupportedType, col.Type, col.Name),
		})
	}
}

// endResultSet handles the completion of a result set or command.
func (d *resultSetDecoder) endResultSet() {
	d.state = stateDone
	d.current = nil
	d.truncReported = nil
	d.typeReported = nil
}
