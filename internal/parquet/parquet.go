package parquet

import (
	"bytes"
	"fmt"

	"github.com/xitongsys/parquet-go/writer"

	"github.com/turbolytics/salesreport/internal/report"
)

const Format = "parquet"

// Renderer writes a report as a parquet file with one UTF8 column per header.
// The returned document holds the raw parquet bytes.
type Renderer struct {
	// Parallelism is the number of goroutines parquet-go uses to marshal rows.
	Parallelism int64
}

func New() *Renderer {
	return &Renderer{Parallelism: 1}
}

func (r *Renderer) Render(rep *report.SalesActivityReport) (string, error) {
	schema := HeadersToSchema(rep.Headers)

	var buf bytes.Buffer
	pw, err := writer.NewCSVWriterFromWriter(schema.ToGoParquetSchema(), &buf, r.Parallelism)
	if err != nil {
		return "", fmt.Errorf("creating parquet writer: %w", err)
	}

	for _, rec := range rep.Records() {
		row, err := schema.RecordToParquetRow(rec)
		if err != nil {
			return "", err
		}
		if err := pw.Write(row); err != nil {
			return "", fmt.Errorf("writing parquet row: %w", err)
		}
	}

	if err := pw.WriteStop(); err != nil {
		return "", fmt.Errorf("closing parquet writer: %w", err)
	}

	return buf.String(), nil
}
