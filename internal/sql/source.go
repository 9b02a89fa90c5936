package sql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/turbolytics/salesreport/internal/sales"
)

const (
	DefaultSalesTable      = "sales"
	DefaultReportDataTable = "sales_report_data"
)

// Store reads sales records and their report data through database/sql.
// Queries use $N placeholders, supported by both the pgx and sqlite drivers.
type Store struct {
	DB              *sql.DB
	SalesTable      string
	ReportDataTable string

	logger *zap.Logger
}

type StoreOption func(*Store)

func WithSalesTable(table string) StoreOption {
	return func(s *Store) {
		s.SalesTable = table
	}
}

func WithReportDataTable(table string) StoreOption {
	return func(s *Store) {
		s.ReportDataTable = table
	}
}

func WithLogger(l *zap.Logger) StoreOption {
	return func(s *Store) {
		s.logger = l
	}
}

func NewStore(db *sql.DB, opts ...StoreOption) *Store {
	s := Store{
		DB:              db,
		SalesTable:      DefaultSalesTable,
		ReportDataTable: DefaultReportDataTable,
		logger:          zap.NewNop(),
	}

	for _, opt := range opts {
		opt(&s)
	}

	return &s
}

func (s *Store) Close() error {
	return s.DB.Close()
}

func (s *Store) GetBySalesID(ctx context.Context, salesID string) (*sales.Sales, error) {
	query := fmt.Sprintf(
		`SELECT id, name, effective_from, effective_to FROM %s WHERE id = $1`,
		s.SalesTable,
	)

	s.logger.Debug("querying sales", zap.String("query", query), zap.String("sales_id", salesID))

	var sl sales.Sales
	err := s.DB.QueryRowContext(ctx, query, salesID).Scan(
		&sl.ID,
		&sl.Name,
		&sl.EffectiveFrom,
		&sl.EffectiveTo,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %q", sales.ErrNotFound, salesID)
	}
	if err != nil {
		return nil, err
	}
	return &sl, nil
}

func (s *Store) GetReportData(ctx context.Context, sl *sales.Sales) ([]*sales.ReportData, error) {
	query := fmt.Sprintf(
		`SELECT type, confidential, sales_id, sales_name, activity, occurred_at FROM %s WHERE sales_id = $1 ORDER BY occurred_at, id`,
		s.ReportDataTable,
	)

	s.logger.Debug("querying report data", zap.String("query", query), zap.String("sales_id", sl.ID))

	rows, err := s.DB.QueryContext(ctx, query, sl.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var data []*sales.ReportData
	for rows.Next() {
		var d sales.ReportData
		if err := rows.Scan(
			&d.Type,
			&d.Confidential,
			&d.SalesID,
			&d.SalesName,
			&d.Activity,
			&d.Time,
		); err != nil {
			return nil, err
		}
		data = append(data, &d)
	}

	return data, rows.Err()
}
