package report

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/turbolytics/salesreport/internal/sales"
)

type MockSalesStore struct {
	mock.Mock
}

func (m *MockSalesStore) GetBySalesID(ctx context.Context, salesID string) (*sales.Sales, error) {
	args := m.Called(ctx, salesID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sales.Sales), args.Error(1)
}

type MockReportDataStore struct {
	mock.Mock
}

func (m *MockReportDataStore) GetReportData(ctx context.Context, s *sales.Sales) ([]*sales.ReportData, error) {
	args := m.Called(ctx, s)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*sales.ReportData), args.Error(1)
}

type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) UploadDocument(ctx context.Context, document string) error {
	args := m.Called(ctx, document)
	return args.Error(0)
}

type MockClassified struct {
	mock.Mock
}

func (m *MockClassified) GetType() string {
	return m.Called().String(0)
}

func (m *MockClassified) IsConfidential() bool {
	return m.Called().Bool(0)
}

type MockDataValidator struct {
	mock.Mock
}

func (m *MockDataValidator) IsValid(isSupervisor bool, data sales.Classified) bool {
	return m.Called(isSupervisor, data).Bool(0)
}

type MockIDValidator struct {
	mock.Mock
}

func (m *MockIDValidator) IsValid(salesID string) bool {
	return m.Called(salesID).Bool(0)
}

type MockDateChecker struct {
	mock.Mock
}

func (m *MockDateChecker) IsOutOfEffectiveDate(s *sales.Sales, now time.Time) bool {
	return m.Called(s, now).Bool(0)
}

type MockFilter struct {
	mock.Mock
}

func (m *MockFilter) Filter(isSupervisor bool, rows []*sales.ReportData) []*sales.ReportData {
	return m.Called(isSupervisor, rows).Get(0).([]*sales.ReportData)
}

type MockLimiter struct {
	mock.Mock
}

func (m *MockLimiter) Limit(maxRows int, rows []*sales.ReportData) []*sales.ReportData {
	return m.Called(maxRows, rows).Get(0).([]*sales.ReportData)
}

type MockHeaderSelector struct {
	mock.Mock
}

func (m *MockHeaderSelector) Headers(isNatTrade bool) []string {
	return m.Called(isNatTrade).Get(0).([]string)
}

type MockGenerator struct {
	mock.Mock
}

func (m *MockGenerator) Generate(headers []string, rows []*sales.ReportData) *SalesActivityReport {
	return m.Called(headers, rows).Get(0).(*SalesActivityReport)
}

type MockRenderer struct {
	mock.Mock
}

func (m *MockRenderer) Render(r *SalesActivityReport) (string, error) {
	args := m.Called(r)
	return args.String(0), args.Error(1)
}
