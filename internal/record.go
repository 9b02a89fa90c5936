package internal

import "fmt"

// Record is a struct that contains a set of fields and their corresponding values.
// It is used to represent a rendered row of a report.
// Field order is critical for some serializers, so we keep them in a separate slice.
type Record struct {
	fields []string
	values []any
}

func NewRecord(fields []string, values []any) *Record {
	return &Record{
		fields: fields,
		values: values,
	}
}

func (r *Record) Len() int {
	return len(r.fields)
}

func (r *Record) Fields() []string {
	return r.fields
}

func (r *Record) Values() []any {
	return r.values
}

// Strings returns the values formatted for text encodings. Missing values
// (fewer values than fields) are returned as empty strings.
func (r *Record) Strings() []string {
	out := make([]string, len(r.fields))
	for i := range r.fields {
		if i >= len(r.values) || r.values[i] == nil {
			continue
		}
		if s, ok := r.values[i].(string); ok {
			out[i] = s
			continue
		}
		out[i] = fmt.Sprint(r.values[i])
	}
	return out
}
