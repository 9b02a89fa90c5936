package internal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRecord_Strings(t *testing.T) {
	ts := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	r := NewRecord(
		[]string{"Sales ID", "Count", "Time", "Missing"},
		[]any{"S01", 3, ts},
	)

	assert.Equal(t, 4, r.Len())
	assert.Equal(t, []string{"S01", "3", ts.String(), ""}, r.Strings())
}

func TestRecord_Fields(t *testing.T) {
	r := NewRecord([]string{"a", "b"}, []any{"x"})
	assert.Equal(t, []string{"a", "b"}, r.Fields())
	assert.Equal(t, []any{"x"}, r.Values())
}
