package gotds

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// Diagnostic is a message or error reported by the server, or by the driver
// for client side conditions. Number 0 is informational.
type Diagnostic struct {
	Number    int32
	Severity  int32
	State     int32
	Server    string
	Procedure string
	Line      int32
	Message   string
}

func (d Diagnostic) Error() string {
	if d.Procedure != "" {
		return fmt.Sprintf("Msg: %d, Level: %d, State: %d, Server: %s, Procedure: %s, Line: %d: %s",
			d.Number, d.Severity, d.State, d.Server, d.Procedure, d.Line, d.Message)
	}
	return fmt.Sprintf("Msg: %d, Level: %d, State: %d, Server: %s, Line: %d: %s",
		d.Number, d.Severity, d.State, d.Server, d.Line, d.Message)
}

// clientServerName is the Server of diagnostics raised by the driver itself.
const clientServerName = "gotds"

func clientMessage(format string, args ...interface{}) Diagnostic {
	return Diagnostic{Server: clientServerName, Message: fmt.Sprintf(format, args...)}
}

// diagnosticTarget accumulates diagnostics in arrival order. The mutex only
// guards reads by accessors; routing is decided by the sink.
type diagnosticTarget struct {
	mu       sync.Mutex
	messages []Diagnostic
	errors   []Diagnostic
}

func (t *diagnosticTarget) addMessage(d Diagnostic) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.messages = append(t.messages, d)
}

func (t *diagnosticTarget) addError(d Diagnostic) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.errors = append(t.errors, d)
}

// Messages returns a copy of the informational messages.
func (t *diagnosticTarget) Messages() []Diagnostic {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]Diagnostic(nil), t.messages...)
}

// Errors returns a copy of the errors.
func (t *diagnosticTarget) Errors() []Diagnostic {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]Diagnostic(nil), t.errors...)
}

// firstError returns the earliest error, which decides the outcome of a statement.
func (t *diagnosticTarget) firstError() (Diagnostic, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.errors) == 0 {
		return Diagnostic{}, false
	}
	return t.errors[0], true
}

// diagnosticsSink routes transport diagnostics to the statement currently
// executing on its connection, or to the connection default.
type diagnosticsSink struct {
	active   atomic.Pointer[diagnosticTarget]
	fallback *diagnosticTarget
	ignored  map[int32]struct{}
}

func newDiagnosticsSink(ignored []int32) *diagnosticsSink {
	s := &diagnosticsSink{
		fallback: &diagnosticTarget{},
		ignored:  make(map[int32]struct{}, len(ignored)),
	}
	for _, code := range ignored {
		s.ignored[code] = struct{}{}
	}
	return s
}

func (s *diagnosticsSink) activate(t *diagnosticTarget) {
	s.active.Store(t)
}

func (s *diagnosticsSink) deactivate() {
	s.active.Store(nil)
}

func (s *diagnosticsSink) target() *diagnosticTarget {
	if t := s.active.Load(); t != nil {
		return t
	}
	return s.fallback
}

// receive is registered as the transport DiagnosticHandler.
func (s *diagnosticsSink) receive(d Diagnostic) {
	if d.Number == 0 {
		logger.Debugf("server message: %v", d.Message)
		s.target().addMessage(d)
		return
	}
	if _, ok := s.ignored[d.Number]; ok {
		logger.Debugf("dropping benign server notice %d: %v", d.Number, d.Message)
		return
	}
	logger.Debugf("server error: %v", d)
	s.target().addError(d)
}
