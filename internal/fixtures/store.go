package fixtures

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/turbolytics/salesreport/internal/sales"
)

// Store serves sales and report data from a YAML fixture file.
type Store struct {
	Sales      []*sales.Sales      `yaml:"sales"`
	ReportData []*sales.ReportData `yaml:"report_data"`
}

func NewStoreFromFile(fpath string) (*Store, error) {
	bs, err := os.ReadFile(fpath)
	if err != nil {
		return nil, err
	}
	return NewStore(bs)
}

func NewStore(bs []byte) (*Store, error) {
	var s Store
	if err := yaml.Unmarshal(bs, &s); err != nil {
		return nil, fmt.Errorf("parsing fixtures: %w", err)
	}
	return &s, nil
}

func (s *Store) GetBySalesID(ctx context.Context, salesID string) (*sales.Sales, error) {
	for _, sl := range s.Sales {
		if sl.ID == salesID {
			return sl, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", sales.ErrNotFound, salesID)
}

// GetReportData returns the rows of a sales record in file order.
func (s *Store) GetReportData(ctx context.Context, sl *sales.Sales) ([]*sales.ReportData, error) {
	var data []*sales.ReportData
	for _, d := range s.ReportData {
		if d.SalesID == sl.ID {
			data = append(data, d)
		}
	}
	return data, nil
}
