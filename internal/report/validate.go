package report

import (
	"time"

	"github.com/turbolytics/salesreport/internal/sales"
)

type IDValidator interface {
	IsValid(salesID string) bool
}

// SalesIDValidator only checks that an id is present.
type SalesIDValidator struct{}

func (SalesIDValidator) IsValid(salesID string) bool {
	return salesID != ""
}

type DateChecker interface {
	IsOutOfEffectiveDate(s *sales.Sales, now time.Time) bool
}

// EffectiveDateChecker treats the effective window as [from, to).
type EffectiveDateChecker struct{}

func (EffectiveDateChecker) IsOutOfEffectiveDate(s *sales.Sales, now time.Time) bool {
	return now.Before(s.EffectiveFrom) || !now.Before(s.EffectiveTo)
}
