package gotds

import "fmt"

// WireType is the protocol tag identifying the on-the-wire representation of a column.
//
// Every declared tag must be handled by convertValue and Family.
type WireType uint8

// Fixed width types.
const (
	TypeNull     WireType = 0x1f
	TypeInt1     WireType = 0x30
	TypeBit      WireType = 0x32
	TypeInt2     WireType = 0x34
	TypeInt4     WireType = 0x38
	TypeDateTim4 WireType = 0x3a
	TypeFlt4     WireType = 0x3b
	TypeMoney    WireType = 0x3c
	TypeDateTime WireType = 0x3d
	TypeFlt8     WireType = 0x3e
	TypeMoney4   WireType = 0x7a
	TypeInt8     WireType = 0x7f
)

// Variable length types.
const (
	TypeGUID            WireType = 0x24
	TypeIntN            WireType = 0x26
	TypeDecimal         WireType = 0x37
	TypeNumeric         WireType = 0x3f
	TypeBitN            WireType = 0x68
	TypeDecimalN        WireType = 0x6a
	TypeNumericN        WireType = 0x6c
	TypeFltN            WireType = 0x6d
	TypeMoneyN          WireType = 0x6e
	TypeDateTimeN       WireType = 0x6f
	TypeDateN           WireType = 0x28
	TypeTimeN           WireType = 0x29
	TypeDateTime2N      WireType = 0x2a
	TypeDateTimeOffsetN WireType = 0x2b
	TypeChar            WireType = 0x2f
	TypeVarChar         WireType = 0x27
	TypeBinary          WireType = 0x2d
	TypeVarBinary       WireType = 0x25

	TypeBigVarBin  WireType = 0xa5
	TypeBigVarChar WireType = 0xa7
	TypeBigBinary  WireType = 0xad
	TypeBigChar    WireType = 0xaf
	TypeNVarChar   WireType = 0xe7
	TypeNChar      WireType = 0xef
	TypeXML        WireType = 0xf1
	TypeUDT        WireType = 0xf0

	TypeText    WireType = 0x23
	TypeImage   WireType = 0x22
	TypeNText   WireType = 0x63
	TypeVariant WireType = 0x62
)

// Family groups wire types sharing one conversion rule and Go value type.
type Family int

// Families. Values of FamilyNull columns are nil, FamilyBoolean bool,
// FamilyInteger int64, FamilyFloat float64, FamilyDateTime DateTime,
// FamilyCharacter string and FamilyBinary []byte. FamilyUnknown has no
// conversion rule.
const (
	FamilyUnknown Family = iota
	FamilyNull
	FamilyBoolean
	FamilyInteger
	FamilyFloat
	FamilyDateTime
	FamilyCharacter
	FamilyBinary
)

func (f Family) String() string {
	switch f {
	case FamilyNull:
		return "null"
	case FamilyBoolean:
		return "boolean"
	case FamilyInteger:
		return "integer"
	case FamilyFloat:
		return "float"
	case FamilyDateTime:
		return "datetime"
	case FamilyCharacter:
		return "character"
	case FamilyBinary:
		return "binary"
	case FamilyUnknown:
	}
	return "unknown"
}

// Family returns the conversion family of t. TypeVariant and undeclared
// tags are FamilyUnknown.
func (t WireType) Family() Family {
	switch t {
	case TypeNull:
		return FamilyNull
	case TypeBit, TypeBitN:
		return FamilyBoolean
	case TypeInt1, TypeInt2, TypeInt4, TypeInt8, TypeIntN:
		return FamilyInteger
	case TypeFlt4, TypeFlt8, TypeFltN, TypeMoney, TypeMoney4, TypeMoneyN,
		TypeDecimal, TypeNumeric, TypeDecimalN, TypeNumericN:
		return FamilyFloat
	case TypeDateTim4, TypeDateTime, TypeDateTimeN, TypeDateN, TypeTimeN,
		TypeDateTime2N, TypeDateTimeOffsetN:
		return FamilyDateTime
	case TypeChar, TypeVarChar, TypeBigChar, TypeBigVarChar, TypeText,
		TypeNChar, TypeNVarChar, TypeNText, TypeXML, TypeGUID:
		return FamilyCharacter
	case TypeBinary, TypeVarBinary, TypeBigBinary, TypeBigVarBin, TypeImage, TypeUDT:
		return FamilyBinary
	case TypeVariant:
		return FamilyUnknown
	}
	return FamilyUnknown
}

// isWide reports whether t carries UCS-2 encoded text.
func (t WireType) isWide() bool {
	switch t {
	case TypeNChar, TypeNVarChar, TypeNText, TypeXML:
		return true
	}
	return false
}

// isCapped reports whether t is a variable length text or image type whose
// buffer is limited by Config.MaxColumnLength.
func (t WireType) isCapped() bool {
	switch t {
	case TypeChar, TypeVarChar, TypeBigChar, TypeBigVarChar, TypeText,
		TypeNChar, TypeNVarChar, TypeNText, TypeXML,
		TypeBinary, TypeVarBinary, TypeBigBinary, TypeBigVarBin, TypeImage, TypeUDT:
		return true
	}
	return false
}

// Name returns the server type name, e.g. "int" or "nvarchar".
func (t WireType) Name() string {
	switch t {
	case TypeNull:
		return "null"
	case TypeInt1:
		return "tinyint"
	case TypeBit, TypeBitN:
		return "bit"
	case TypeInt2:
		return "smallint"
	case TypeInt4, TypeIntN:
		return "int"
	case TypeInt8:
		return "bigint"
	case TypeDateTim4:
		return "smalldatetime"
	case TypeDateTime, TypeDateTimeN:
		return "datetime"
	case TypeFlt4:
		return "real"
	case TypeFlt8, TypeFltN:
		return "float"
	case TypeMoney, TypeMoneyN:
		return "money"
	case TypeMoney4:
		return "smallmoney"
	case TypeDecimal, TypeDecimalN:
		return "decimal"
	case TypeNumeric, TypeNumericN:
		return "numeric"
	case TypeGUID:
		return "uniqueidentifier"
	case TypeDateN:
		return "date"
	case TypeTimeN:
		return "time"
	case TypeDateTime2N:
		return "datetime2"
	case TypeDateTimeOffsetN:
		return "datetimeoffset"
	case TypeChar, TypeBigChar:
		return "char"
	case TypeVarChar, TypeBigVarChar:
		return "varchar"
	case TypeBinary, TypeBigBinary:
		return "binary"
	case TypeVarBinary, TypeBigVarBin:
		return "varbinary"
	case TypeNChar:
		return "nchar"
	case TypeNVarChar:
		return "nvarchar"
	case TypeXML:
		return "xml"
	case TypeUDT:
		return "udt"
	case TypeText:
		return "text"
	case TypeImage:
		return "image"
	case TypeNText:
		return "ntext"
	case TypeVariant:
		return "sql_variant"
	}
	return fmt.Sprintf("0x%02x", uint8(t))
}

func (t WireType) String() string {
	return t.Name()
}

// fixedSize is the value width of fixed width types, or 0 when the width
// comes from the column format.
func (t WireType) fixedSize() int {
	switch t {
	case TypeInt1, TypeBit:
		return 1
	case TypeInt2:
		return 2
	case TypeInt4, TypeDateTim4, TypeFlt4, TypeMoney4:
		return 4
	case TypeMoney, TypeDateTime, TypeFlt8, TypeInt8:
		return 8
	case TypeGUID:
		return 16
	}
	return 0
}
