package arrowbatches

import (
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"

	tds "github.com/dparnell/gotds"
)

// ResultSetToRecord converts one result set to an Arrow record. NULL and
// unset values become Arrow nulls. The caller must Release the record.
func ResultSetToRecord(rs *tds.ResultSet, pool memory.Allocator) (arrow.Record, error) {
	if pool == nil {
		pool = memory.DefaultAllocator
	}
	schema := Schema(rs.Columns)
	builder := array.NewRecordBuilder(pool, schema)
	defer builder.Release()

	for _, row := range rs.Rows {
		for i, col := range rs.Columns {
			v, ok := row[col.Name]
			if !ok || v == nil {
				builder.Field(i).AppendNull()
				continue
			}
			if err := appendValue(builder.Field(i), v); err != nil {
				return nil, fmt.Errorf("column %q: %w", col.Name, err)
			}
		}
	}
	return builder.NewRecord(), nil
}

func appendValue(b array.Builder, v any) error {
	switch b := b.(type) {
	case *array.BooleanBuilder:
		if x, ok := v.(bool); ok {
			b.Append(x)
			return nil
		}
	case *array.Int64Builder:
		if x, ok := v.(int64); ok {
			b.Append(x)
			return nil
		}
	case *array.Float64Builder:
		if x, ok := v.(float64); ok {
			b.Append(x)
			return nil
		}
	case *array.TimestampBuilder:
		if x, ok := v.(tds.DateTime); ok {
			b.Append(arrow.Timestamp(x.Time().UnixNano()))
			return nil
		}
	case *array.StringBuilder:
		if x, ok := v.(string); ok {
			b.Append(x)
			return nil
		}
	case *array.BinaryBuilder:
		if x, ok := v.([]byte); ok {
			b.Append(x)
			return nil
		}
	case *array.NullBuilder:
		b.AppendNull()
		return nil
	}
	return fmt.Errorf("unexpected value %T for %v", v, b.Type())
}

// GetArrowBatches converts every result set of res, in order.
func GetArrowBatches(res *tds.StatementResult, pool memory.Allocator) ([]arrow.Record, error) {
	records := make([]arrow.Record, 0, len(res.ResultSets()))
	for _, rs := range res.ResultSets() {
		rec, err := ResultSetToRecord(rs, pool)
		if err != nil {
			for _, r := range records {
				r.Release()
			}
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}
