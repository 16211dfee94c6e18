package gotds

import (
	"errors"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
)

// errSkipColumn marks a text value that could not be decoded. The column is
// left unset for that row.
var errSkipColumn = errors.New("text value could not be decoded")

var ucs2 = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// lookupCharset resolves an IANA or WHATWG charset name.
func lookupCharset(name string) (encoding.Encoding, error) {
	name = strings.TrimSpace(name)
	if enc, err := ianaindex.IANA.Encoding(name); err == nil && enc != nil {
		return enc, nil
	}
	if enc, err := htmlindex.Get(name); err == nil {
		return enc, nil
	}
	return nil, &Error{
		Number:      ErrCodeUnsupportedCharset,
		Message:     errMsgUnsupportedCharset,
		MessageArgs: []interface{}{name},
	}
}

// textDecoder converts character column bytes to Go strings.
type textDecoder struct {
	single *encoding.Decoder
	wide   *encoding.Decoder
}

func newTextDecoder(charset string) (*textDecoder, error) {
	enc, err := lookupCharset(charset)
	if err != nil {
		return nil, err
	}
	return &textDecoder{single: enc.NewDecoder(), wide: ucs2.NewDecoder()}, nil
}

func (d *textDecoder) decode(raw []byte) (string, error) {
	out, err := d.single.Bytes(raw)
	if err != nil {
		return "", errSkipColumn
	}
	return string(out), nil
}

// decodeWide decodes national character data, which is always UCS-2 little endian.
func (d *textDecoder) decodeWide(raw []byte) (string, error) {
	if len(raw)%2 != 0 {
		return "", errSkipColumn
	}
	out, err := d.wide.Bytes(raw)
	if err != nil {
		return "", errSkipColumn
	}
	return string(out), nil
}
