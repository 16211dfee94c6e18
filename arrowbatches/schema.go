package arrowbatches

import (
	"github.com/apache/arrow-go/v18/arrow"

	tds "github.com/dparnell/gotds"
)

// TypeMetadataKey is the field metadata key holding the server type name.
const TypeMetadataKey = "tds_type"

// Schema returns the Arrow schema of a result set. Every field is nullable;
// columns without a conversion rule become null fields.
func Schema(columns []tds.ColumnDescriptor) *arrow.Schema {
	fields := make([]arrow.Field, len(columns))
	for i, col := range columns {
		fields[i] = arrow.Field{
			Name:     col.Name,
			Type:     arrowType(col.Type.Family()),
			Nullable: true,
			Metadata: arrow.NewMetadata([]string{TypeMetadataKey}, []string{col.TypeName()}),
		}
	}
	return arrow.NewSchema(fields, nil)
}

func arrowType(f tds.Family) arrow.DataType {
	switch f {
	case tds.FamilyBoolean:
		return arrow.FixedWidthTypes.Boolean
	case tds.FamilyInteger:
		return arrow.PrimitiveTypes.Int64
	case tds.FamilyFloat:
		return arrow.PrimitiveTypes.Float64
	case tds.FamilyDateTime:
		return &arrow.TimestampType{Unit: arrow.Nanosecond, TimeZone: "UTC"}
	case tds.FamilyCharacter:
		return arrow.BinaryTypes.String
	case tds.FamilyBinary:
		return arrow.BinaryTypes.Binary
	case tds.FamilyNull, tds.FamilyUnknown:
	}
	return arrow.Null
}
