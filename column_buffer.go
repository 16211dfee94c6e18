package gotds

import (
	"fmt"
	"strings"
)

// TruncationPolicy decides how a value longer than its column buffer is reported.
type TruncationPolicy int

const (
	// TruncateSilently keeps the leading bytes that fit.
	TruncateSilently TruncationPolicy = iota
	// TruncateWithWarning keeps the leading bytes and records an informational
	// message on the statement.
	TruncateWithWarning
)

func (p TruncationPolicy) String() string {
	switch p {
	case TruncateSilently:
		return "silent"
	case TruncateWithWarning:
		return "warn"
	}
	return fmt.Sprintf("TruncationPolicy(%d)", int(p))
}

func parseTruncationPolicy(s string) (TruncationPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "silent":
		return TruncateSilently, nil
	case "warn", "warning":
		return TruncateWithWarning, nil
	}
	return TruncateSilently, fmt.Errorf("unknown truncation policy %q", s)
}

// ColumnBuffer is the bounded container a transport fills with one column
// value before each row token. The backing array is allocated once with
// the capacity given at creation.
type ColumnBuffer struct {
	data      []byte
	length    int
	null      bool
	truncated bool
	// Policy is applied by the decoder when Truncated is set.
	Policy TruncationPolicy
}

// NewColumnBuffer returns an empty buffer that holds at most capacity bytes.
func NewColumnBuffer(capacity int, policy TruncationPolicy) *ColumnBuffer {
	if capacity < 0 {
		capacity = 0
	}
	return &ColumnBuffer{data: make([]byte, capacity), null: true, Policy: policy}
}

// Set stores v, keeping only the leading Capacity bytes.
func (b *ColumnBuffer) Set(v []byte) {
	n := copy(b.data, v)
	b.length = n
	b.null = false
	b.truncated = n < len(v)
}

// SetNull marks the current value as absent.
func (b *ColumnBuffer) SetNull() {
	b.length = 0
	b.null = true
	b.truncated = false
}

// Capacity is the maximum number of bytes the buffer keeps.
func (b *ColumnBuffer) Capacity() int { return len(b.data) }

// Len is the length of the current value.
func (b *ColumnBuffer) Len() int { return b.length }

// IsNull reports the null indicator of the current value.
func (b *ColumnBuffer) IsNull() bool { return b.null }

// Truncated reports whether the current value was cut to Capacity.
func (b *ColumnBuffer) Truncated() bool { return b.truncated }

// Bytes returns the current value. The slice is reused by the next Set.
func (b *ColumnBuffer) Bytes() []byte {
	return b.data[:b.length]
}
