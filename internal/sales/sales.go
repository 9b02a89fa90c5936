package sales

import (
	"errors"
	"time"
)

// ActivityType is the only report data type that can appear in a sales
// activity report.
const ActivityType = "SalesActivity"

var (
	// ErrNotFound is returned by stores when no sales record exists for an id.
	ErrNotFound = errors.New("sales not found")
)

// Sales is a sales record. It is in effect during [EffectiveFrom, EffectiveTo).
type Sales struct {
	ID            string    `json:"id" yaml:"id" bson:"_id"`
	Name          string    `json:"name" yaml:"name" bson:"name"`
	EffectiveFrom time.Time `json:"effective_from" yaml:"effective_from" bson:"effective_from"`
	EffectiveTo   time.Time `json:"effective_to" yaml:"effective_to" bson:"effective_to"`
}

// Classified is the part of a report data row that decides its visibility.
type Classified interface {
	GetType() string
	IsConfidential() bool
}

// ReportData is a single row of report data belonging to a sales record.
type ReportData struct {
	Type         string    `json:"type" yaml:"type" bson:"type"`
	Confidential bool      `json:"confidential" yaml:"confidential" bson:"confidential"`
	SalesID      string    `json:"sales_id" yaml:"sales_id" bson:"sales_id"`
	SalesName    string    `json:"sales_name" yaml:"sales_name" bson:"sales_name"`
	Activity     string    `json:"activity" yaml:"activity" bson:"activity"`
	Time         time.Time `json:"time" yaml:"time" bson:"time"`
}

func (d *ReportData) GetType() string {
	return d.Type
}

func (d *ReportData) IsConfidential() bool {
	return d.Confidential
}

// Values returns the displayed columns in report header order.
func (d *ReportData) Values() []any {
	return []any{
		d.SalesID,
		d.SalesName,
		d.Activity,
		d.Time.Format(time.RFC3339),
	}
}
