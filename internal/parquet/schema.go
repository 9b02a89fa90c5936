package parquet

import (
	"fmt"
	"strings"

	"github.com/turbolytics/salesreport/internal"
)

type Field struct {
	Name           string
	Type           string
	ConvertedType  string
	RepetitionType string
}

type Schema []Field

// HeadersToSchema maps report headers to optional UTF8 columns. Header labels
// are converted to snake case column names ("Sales ID" -> "sales_id").
func HeadersToSchema(headers []string) Schema {
	s := make(Schema, len(headers))
	for i, h := range headers {
		s[i] = Field{
			Name:           ColumnName(h),
			Type:           "BYTE_ARRAY",
			ConvertedType:  "UTF8",
			RepetitionType: "OPTIONAL",
		}
	}
	return s
}

func ColumnName(header string) string {
	return strings.Join(strings.Fields(strings.ToLower(header)), "_")
}

func (s Schema) ToGoParquetSchema() []string {
	schema := make([]string, len(s))
	for i, field := range s {
		parts := []string{
			fmt.Sprintf("name=%s", field.Name),
			fmt.Sprintf("type=%s", field.Type),
		}
		if field.ConvertedType != "" {
			parts = append(parts, fmt.Sprintf("convertedtype=%s", field.ConvertedType))
		}
		if field.RepetitionType != "" {
			parts = append(parts, fmt.Sprintf("repetitiontype=%s", field.RepetitionType))
		}
		schema[i] = strings.Join(parts, ", ")
	}

	return schema
}

func (s Schema) RecordToParquetRow(r *internal.Record) ([]any, error) {
	if len(s) != r.Len() {
		return nil, fmt.Errorf(
			"schema and record fields mismatch: schema has %d fields, record has %d fields",
			len(s),
			r.Len(),
		)
	}

	row := make([]any, len(s))
	values := r.Strings()

	for i, field := range s {
		switch field.ConvertedType {
		case "UTF8":
			row[i] = values[i]
		default:
			return nil, fmt.Errorf("unsupported converted type: %q", field.ConvertedType)
		}
	}

	return row, nil
}
