package report

import (
	"bytes"
	"encoding/xml"
	"fmt"

	json "github.com/goccy/go-json"

	"github.com/turbolytics/salesreport/internal"
	"github.com/turbolytics/salesreport/internal/sales"
)

const (
	FormatXML  = "xml"
	FormatJSON = "json"
)

// SalesActivityReport is the headers and rows of a generated report.
type SalesActivityReport struct {
	Headers []string
	Rows    []*sales.ReportData
}

// Records returns one record per row, keyed by the report headers.
func (r *SalesActivityReport) Records() []*internal.Record {
	records := make([]*internal.Record, len(r.Rows))
	for i, row := range r.Rows {
		records[i] = internal.NewRecord(r.Headers, row.Values())
	}
	return records
}

type Generator interface {
	Generate(headers []string, rows []*sales.ReportData) *SalesActivityReport
}

type ReportGenerator struct{}

func (ReportGenerator) Generate(headers []string, rows []*sales.ReportData) *SalesActivityReport {
	return &SalesActivityReport{
		Headers: headers,
		Rows:    rows,
	}
}

// Renderer serializes a report into the document handed to the upload gateway.
type Renderer interface {
	Render(r *SalesActivityReport) (string, error)
}

type xmlColumn struct {
	Name  string `xml:"name,attr"`
	Value string `xml:",chardata"`
}

type xmlRow struct {
	Columns []xmlColumn `xml:"Column"`
}

type xmlReport struct {
	XMLName xml.Name `xml:"SalesActivityReport"`
	Headers []string `xml:"Headers>Header"`
	Rows    []xmlRow `xml:"Rows>Row"`
}

type XMLRenderer struct{}

func (XMLRenderer) Render(r *SalesActivityReport) (string, error) {
	doc := xmlReport{
		Headers: r.Headers,
		Rows:    make([]xmlRow, 0, len(r.Rows)),
	}
	for _, rec := range r.Records() {
		values := rec.Strings()
		row := xmlRow{Columns: make([]xmlColumn, rec.Len())}
		for i, field := range rec.Fields() {
			row.Columns[i] = xmlColumn{Name: field, Value: values[i]}
		}
		doc.Rows = append(doc.Rows, row)
	}

	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return "", fmt.Errorf("encoding xml report: %w", err)
	}
	return buf.String(), nil
}

type jsonReport struct {
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}

type JSONRenderer struct{}

func (JSONRenderer) Render(r *SalesActivityReport) (string, error) {
	doc := jsonReport{
		Headers: r.Headers,
		Rows:    make([][]string, 0, len(r.Rows)),
	}
	for _, rec := range r.Records() {
		doc.Rows = append(doc.Rows, rec.Strings())
	}
	bs, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("encoding json report: %w", err)
	}
	return string(bs), nil
}
