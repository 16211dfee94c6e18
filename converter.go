package gotds

import (
	"encoding/binary"
	"math"
	"math/big"
	"strings"

	"github.com/google/uuid"
)

// convertValue maps the raw bytes of one non-null column value to a Go
// value: bool, int64, float64, string, []byte, DateTime or nil.
//
// errSkipColumn means the value could not be decoded and the column is left
// unset. An *Error with ErrCodeUnsupportedType means the wire type has no
// conversion rule.
func convertValue(col *ColumnDescriptor, raw []byte, text *textDecoder) (any, error) {
	switch col.Type {
	case TypeNull:
		return nil, nil

	case TypeBit, TypeBitN:
		n, ok := decodeInt(raw)
		if !ok {
			return nil, errSkipColumn
		}
		return n != 0, nil

	case TypeInt1, TypeInt2, TypeInt4, TypeInt8, TypeIntN:
		n, ok := decodeInt(raw)
		if !ok {
			return nil, errSkipColumn
		}
		return n, nil

	case TypeFlt4, TypeFlt8, TypeFltN:
		return floatValue(decodeFloat(raw))
	case TypeMoney, TypeMoney4, TypeMoneyN:
		return floatValue(decodeMoney(raw))
	case TypeDecimal, TypeNumeric, TypeDecimalN, TypeNumericN:
		return floatValue(decodeDecimal(raw, col.Scale))

	case TypeDateTim4, TypeDateTime, TypeDateTimeN:
		return dateTimeValue(crackDateTime(raw))
	case TypeDateN:
		return dateTimeValue(crackDate(raw))
	case TypeTimeN:
		return dateTimeValue(crackTimeN(raw, col.Scale))
	case TypeDateTime2N:
		return dateTimeValue(crackDateTime2(raw, col.Scale))
	case TypeDateTimeOffsetN:
		return dateTimeValue(crackDateTimeOffset(raw, col.Scale))

	case TypeChar, TypeVarChar, TypeBigChar, TypeBigVarChar, TypeText,
		TypeNChar, TypeNVarChar, TypeNText, TypeXML:
		if col.Type.isWide() {
			return text.decodeWide(raw)
		}
		return text.decode(raw)
	case TypeGUID:
		return decodeGUID(raw)

	case TypeBinary, TypeVarBinary, TypeBigBinary, TypeBigVarBin, TypeImage, TypeUDT:
		out := make([]byte, len(raw))
		copy(out, raw)
		return out, nil

	case TypeVariant:
	}
	return nil, &Error{
		Number:      ErrCodeUnsupportedType,
		Message:     errMsgUnsupportedType,
		MessageArgs: []interface{}{col.Type, col.Name},
	}
}

// decodeInt reads a little endian signed integer whose width is the value
// length. A single byte is a tinyint, which is unsigned.
func decodeInt(raw []byte) (int64, bool) {
	switch len(raw) {
	case 1:
		return int64(raw[0]), true
	case 2:
		return int64(int16(binary.LittleEndian.Uint16(raw))), true
	case 4:
		return int64(int32(binary.LittleEndian.Uint32(raw))), true
	case 8:
		return int64(binary.LittleEndian.Uint64(raw)), true
	}
	return 0, false
}

func decodeFloat(raw []byte) (float64, bool) {
	switch len(raw) {
	case 4:
		return float64(math.Float32frombits(binary.LittleEndian.Uint32(raw))), true
	case 8:
		return math.Float64frombits(binary.LittleEndian.Uint64(raw)), true
	}
	return 0, false
}

// decodeMoney reads money (high int32 then low uint32) or smallmoney
// (int32), both in units of 1/10000.
func decodeMoney(raw []byte) (float64, bool) {
	switch len(raw) {
	case 4:
		return float64(int32(binary.LittleEndian.Uint32(raw))) / 10000, true
	case 8:
		hi := int64(int32(binary.LittleEndian.Uint32(raw[0:4])))
		lo := int64(binary.LittleEndian.Uint32(raw[4:8]))
		return float64(hi<<32|lo) / 10000, true
	}
	return 0, false
}

// decodeDecimal reads a sign byte (0 negative, 1 positive) followed by a
// little endian magnitude and applies scale. Precision beyond float64 is lost.
func decodeDecimal(raw []byte, scale int) (float64, bool) {
	if len(raw) < 2 || len(raw) > 17 || scale < 0 || scale > 38 {
		return 0, false
	}
	mag := make([]byte, len(raw)-1)
	for i := range mag {
		mag[i] = raw[len(raw)-1-i]
	}
	num := new(big.Int).SetBytes(mag)
	if raw[0] == 0 {
		num.Neg(num)
	}
	den := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(scale)), nil)
	f, _ := new(big.Rat).SetFrac(num, den).Float64()
	return f, true
}

// decodeGUID formats a uniqueidentifier. The first three groups are stored
// little endian.
func decodeGUID(raw []byte) (any, error) {
	if len(raw) != 16 {
		return nil, errSkipColumn
	}
	b := make([]byte, 16)
	copy(b, raw)
	b[0], b[1], b[2], b[3] = b[3], b[2], b[1], b[0]
	b[4], b[5] = b[5], b[4]
	b[6], b[7] = b[7], b[6]
	u, err := uuid.FromBytes(b)
	if err != nil {
		return nil, errSkipColumn
	}
	return strings.ToUpper(u.String()), nil
}

func floatValue(f float64, ok bool) (any, error) {
	if !ok {
		return nil, errSkipColumn
	}
	return f, nil
}

// dateTimeValue yields nil for values that fail to crack or crack to all zeros.
func dateTimeValue(d DateTime, ok bool) (any, error) {
	if !ok || d.isZero() {
		return nil, nil
	}
	return d, nil
}
