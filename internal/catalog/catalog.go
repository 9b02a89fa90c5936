package catalog

import "time"

/*
The catalog is a record of a single report generation.
It is written next to the uploaded document so that every report
can be inventoried and audited.
*/

// Catalog summarizes what a report generation read and produced
type Catalog struct {
	StartTime           time.Time `json:"start_time"`
	EndTime             time.Time `json:"end_time"`
	SalesID             string    `json:"sales_id"`
	NumSourceRecords    int       `json:"num_source_records"`
	NumFilteredRecords  int       `json:"num_filtered_records"`
	NumRecordsProcessed int       `json:"num_records_processed"`
	Completed           bool      `json:"completed"`
}
