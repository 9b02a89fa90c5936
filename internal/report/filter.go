package report

import (
	"github.com/turbolytics/salesreport/internal/sales"
)

type DataValidator interface {
	IsValid(isSupervisor bool, data sales.Classified) bool
}

// ActivityValidator accepts sales activity rows. Confidential rows are only
// visible to supervisors. Confidentiality is not read for other row types.
type ActivityValidator struct{}

func (ActivityValidator) IsValid(isSupervisor bool, data sales.Classified) bool {
	if data.GetType() != sales.ActivityType {
		return false
	}
	if data.IsConfidential() {
		return isSupervisor
	}
	return true
}

type Filter interface {
	Filter(isSupervisor bool, rows []*sales.ReportData) []*sales.ReportData
}

// DataFilter keeps the rows accepted by its validator, in their original order.
type DataFilter struct {
	Validator DataValidator
}

func NewDataFilter(v DataValidator) *DataFilter {
	return &DataFilter{Validator: v}
}

func (f *DataFilter) Filter(isSupervisor bool, rows []*sales.ReportData) []*sales.ReportData {
	filtered := make([]*sales.ReportData, 0, len(rows))
	for _, row := range rows {
		if f.Validator.IsValid(isSupervisor, row) {
			filtered = append(filtered, row)
		}
	}
	return filtered
}

type Limiter interface {
	Limit(maxRows int, rows []*sales.ReportData) []*sales.ReportData
}

type RowLimiter struct{}

// Limit returns at most maxRows leading rows. A negative maxRows yields no rows.
func (RowLimiter) Limit(maxRows int, rows []*sales.ReportData) []*sales.ReportData {
	n := min(max(maxRows, 0), len(rows))
	limited := make([]*sales.ReportData, n)
	copy(limited, rows[:n])
	return limited
}
