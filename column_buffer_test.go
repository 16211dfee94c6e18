package gotds

import (
	"bytes"
	"testing"
)

func TestColumnBufferTruncation(t *testing.T) {
	buf := NewColumnBuffer(4, TruncateSilently)
	assertTrueE(t, buf.IsNull(), "a fresh buffer holds no value")
	assertEqualE(t, buf.Capacity(), 4)

	buf.Set([]byte("ab"))
	assertFalseE(t, buf.IsNull())
	assertFalseE(t, buf.Truncated())
	assertBytesEqualE(t, buf.Bytes(), []byte("ab"))

	buf.Set([]byte("abcdef"))
	assertTrueE(t, buf.Truncated())
	assertEqualE(t, buf.Len(), 4)
	assertBytesEqualE(t, buf.Bytes(), []byte("abcd"))

	buf.SetNull()
	assertTrueE(t, buf.IsNull())
	assertFalseE(t, buf.Truncated())
	assertEqualE(t, buf.Len(), 0)
}

func TestColumnBufferCapAt100000(t *testing.T) {
	buf := NewColumnBuffer(DefaultMaxColumnLength, TruncateSilently)
	value := bytes.Repeat([]byte("0123456789"), 50000)
	buf.Set(value)
	assertEqualE(t, buf.Len(), DefaultMaxColumnLength)
	assertTrueE(t, buf.Truncated())
	assertBytesEqualE(t, buf.Bytes(), value[:DefaultMaxColumnLength])
}

func TestParseTruncationPolicy(t *testing.T) {
	p, err := parseTruncationPolicy("WARN")
	assertNilF(t, err)
	assertEqualE(t, p, TruncateWithWarning)
	p, err = parseTruncationPolicy("")
	assertNilF(t, err)
	assertEqualE(t, p, TruncateSilently)
	_, err = parseTruncationPolicy("drop")
	assertNotNilE(t, err)
}
