package gotds

import "testing"

func TestWireTypeName(t *testing.T) {
	testcases := map[WireType]string{
		TypeInt1:            "tinyint",
		TypeIntN:            "int",
		TypeDateTim4:        "smalldatetime",
		TypeMoneyN:          "money",
		TypeGUID:            "uniqueidentifier",
		TypeDateTimeOffsetN: "datetimeoffset",
		TypeBigVarChar:      "varchar",
		TypeNVarChar:        "nvarchar",
		TypeVariant:         "sql_variant",
		WireType(0x01):      "0x01",
	}
	for typ, want := range testcases {
		assertEqualE(t, typ.Name(), want)
		assertEqualE(t, typ.String(), want)
	}
}

func TestWireTypeFamily(t *testing.T) {
	testcases := map[WireType]Family{
		TypeNull:            FamilyNull,
		TypeBitN:            FamilyBoolean,
		TypeInt8:            FamilyInteger,
		TypeNumericN:        FamilyFloat,
		TypeMoney4:          FamilyFloat,
		TypeTimeN:           FamilyDateTime,
		TypeText:            FamilyCharacter,
		TypeGUID:            FamilyCharacter,
		TypeUDT:             FamilyBinary,
		TypeVariant:         FamilyUnknown,
		WireType(0x01):      FamilyUnknown,
		TypeDateTimeOffsetN: FamilyDateTime,
	}
	for typ, want := range testcases {
		assertEqualE(t, typ.Family(), want, typ.Name())
	}
	assertEqualE(t, FamilyCharacter.String(), "character")
	assertEqualE(t, Family(42).String(), "unknown")
}

func TestBufferLength(t *testing.T) {
	d := &resultSetDecoder{maxLength: 100}
	assertEqualE(t, d.bufferLength(ColumnFormat{Type: TypeInt4}), 4, "fixed width from the type")
	assertEqualE(t, d.bufferLength(ColumnFormat{Type: TypeGUID}), 16)
	assertEqualE(t, d.bufferLength(ColumnFormat{Type: TypeVarChar, Size: 30}), 30)
	assertEqualE(t, d.bufferLength(ColumnFormat{Type: TypeText, Size: 500000}), 100, "capped")
	assertEqualE(t, d.bufferLength(ColumnFormat{Type: TypeNText}), 100, "unknown size uses the cap")
}

func TestBufferLengthCapsOnlyTextAndImage(t *testing.T) {
	d := &resultSetDecoder{maxLength: 4}
	assertEqualE(t, d.bufferLength(ColumnFormat{Type: TypeInt8}), 8)
	assertEqualE(t, d.bufferLength(ColumnFormat{Type: TypeDateTime}), 8)
	assertEqualE(t, d.bufferLength(ColumnFormat{Type: TypeGUID, Size: 16}), 16)
	assertEqualE(t, d.bufferLength(ColumnFormat{Type: TypeDecimalN, Size: 17}), 17)
	assertEqualE(t, d.bufferLength(ColumnFormat{Type: TypeNumericN}), maxScalarLength, "unknown size uses the widest scalar")
	assertEqualE(t, d.bufferLength(ColumnFormat{Type: TypeVarBinary, Size: 10}), 4)
	assertEqualE(t, d.bufferLength(ColumnFormat{Type: TypeImage}), 4)

	d = &resultSetDecoder{maxLength: 7}
	assertEqualE(t, d.bufferLength(ColumnFormat{Type: TypeNText, Size: 20}), 6, "whole UCS-2 code units")
	assertEqualE(t, d.bufferLength(ColumnFormat{Type: TypeNVarChar, Size: 5}), 4)
	assertEqualE(t, d.bufferLength(ColumnFormat{Type: TypeText, Size: 20}), 7)
}
