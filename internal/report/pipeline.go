package report

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/turbolytics/salesreport/internal/catalog"
	"github.com/turbolytics/salesreport/internal/sales"
)

var (
	ErrMissingSalesStore = errors.New("sales store is required")
	ErrMissingDataStore  = errors.New("report data store is required")
	ErrMissingGateway    = errors.New("upload gateway is required")
)

// SalesStore looks up a sales record. Implementations return an error
// wrapping sales.ErrNotFound when no record exists.
type SalesStore interface {
	GetBySalesID(ctx context.Context, salesID string) (*sales.Sales, error)
}

type ReportDataStore interface {
	GetReportData(ctx context.Context, s *sales.Sales) ([]*sales.ReportData, error)
}

// UploadGateway hands a rendered document to the content management system.
type UploadGateway interface {
	UploadDocument(ctx context.Context, document string) error
}

type Request struct {
	SalesID      string
	MaxRows      int
	IsNatTrade   bool
	IsSupervisor bool
}

type Result struct {
	Report   *SalesActivityReport
	Document string
	Catalog  catalog.Catalog
}

type Option func(*Pipeline)

func WithLogger(logger *zap.Logger) Option {
	return func(p *Pipeline) {
		p.logger = logger
	}
}

func WithClock(now func() time.Time) Option {
	return func(p *Pipeline) {
		p.now = now
	}
}

func WithSalesStore(s SalesStore) Option {
	return func(p *Pipeline) {
		p.salesStore = s
	}
}

func WithReportDataStore(s ReportDataStore) Option {
	return func(p *Pipeline) {
		p.dataStore = s
	}
}

func WithGateway(g UploadGateway) Option {
	return func(p *Pipeline) {
		p.gateway = g
	}
}

func WithIDValidator(v IDValidator) Option {
	return func(p *Pipeline) {
		p.idValidator = v
	}
}

func WithDateChecker(c DateChecker) Option {
	return func(p *Pipeline) {
		p.dateChecker = c
	}
}

func WithFilter(f Filter) Option {
	return func(p *Pipeline) {
		p.filter = f
	}
}

func WithLimiter(l Limiter) Option {
	return func(p *Pipeline) {
		p.limiter = l
	}
}

func WithHeaderSelector(h HeaderSelector) Option {
	return func(p *Pipeline) {
		p.headers = h
	}
}

func WithGenerator(g Generator) Option {
	return func(p *Pipeline) {
		p.generator = g
	}
}

func WithRenderer(r Renderer) Option {
	return func(p *Pipeline) {
		p.renderer = r
	}
}

// Pipeline generates a sales activity report and uploads it. Each stage is
// a replaceable strategy; collaborators are invoked only as far as the
// request gets before an early exit.
type Pipeline struct {
	logger *zap.Logger
	now    func() time.Time

	salesStore SalesStore
	dataStore  ReportDataStore
	gateway    UploadGateway

	idValidator IDValidator
	dateChecker DateChecker
	filter      Filter
	limiter     Limiter
	headers     HeaderSelector
	generator   Generator
	renderer    Renderer
}

func New(opts ...Option) (*Pipeline, error) {
	p := &Pipeline{
		logger:      zap.NewNop(),
		now:         time.Now,
		idValidator: SalesIDValidator{},
		dateChecker: EffectiveDateChecker{},
		filter:      NewDataFilter(ActivityValidator{}),
		limiter:     RowLimiter{},
		headers:     DefaultHeaders{},
		generator:   ReportGenerator{},
		renderer:    XMLRenderer{},
	}

	for _, opt := range opts {
		opt(p)
	}

	switch {
	case p.salesStore == nil:
		return nil, ErrMissingSalesStore
	case p.dataStore == nil:
		return nil, ErrMissingDataStore
	case p.gateway == nil:
		return nil, ErrMissingGateway
	}

	return p, nil
}

// Generate runs the report pipeline for a request. A nil Result with a nil
// error means the pipeline stopped early: the sales id was missing or the
// sales record is not in effect. Store, render and upload errors are
// returned as is.
func (p *Pipeline) Generate(ctx context.Context, req Request) (*Result, error) {
	start := p.now()
	l := p.logger.With(zap.String("sales_id", req.SalesID))

	if !p.idValidator.IsValid(req.SalesID) {
		l.Info("invalid sales id, no report generated")
		return nil, nil
	}

	s, err := p.salesStore.GetBySalesID(ctx, req.SalesID)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, fmt.Errorf("%w: %q", sales.ErrNotFound, req.SalesID)
	}

	if p.dateChecker.IsOutOfEffectiveDate(s, start) {
		l.Info("sales out of effective date, no report generated",
			zap.Time("effective_from", s.EffectiveFrom),
			zap.Time("effective_to", s.EffectiveTo),
		)
		return nil, nil
	}

	data, err := p.dataStore.GetReportData(ctx, s)
	if err != nil {
		return nil, err
	}

	filtered := p.filter.Filter(req.IsSupervisor, data)
	limited := p.limiter.Limit(req.MaxRows, filtered)
	headers := p.headers.Headers(req.IsNatTrade)
	report := p.generator.Generate(headers, limited)

	document, err := p.renderer.Render(report)
	if err != nil {
		return nil, err
	}

	if err := p.gateway.UploadDocument(ctx, document); err != nil {
		return nil, err
	}

	c := catalog.Catalog{
		StartTime:           start,
		EndTime:             p.now(),
		SalesID:             req.SalesID,
		NumSourceRecords:    len(data),
		NumFilteredRecords:  len(filtered),
		NumRecordsProcessed: len(limited),
		Completed:           true,
	}

	l.Info("report uploaded",
		zap.Int("num_source_records", c.NumSourceRecords),
		zap.Int("num_records_processed", c.NumRecordsProcessed),
		zap.Duration("duration", c.EndTime.Sub(c.StartTime)),
	)

	return &Result{
		Report:   report,
		Document: document,
		Catalog:  c,
	}, nil
}
