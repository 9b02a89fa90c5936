package config

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"path"

	"go.uber.org/zap"

	"github.com/turbolytics/salesreport/internal"
	"github.com/turbolytics/salesreport/internal/ecm"
	"github.com/turbolytics/salesreport/internal/fixtures"
	"github.com/turbolytics/salesreport/internal/kafka"
	"github.com/turbolytics/salesreport/internal/local"
	"github.com/turbolytics/salesreport/internal/mongo"
	"github.com/turbolytics/salesreport/internal/parquet"
	"github.com/turbolytics/salesreport/internal/report"
	"github.com/turbolytics/salesreport/internal/s3"
	lsql "github.com/turbolytics/salesreport/internal/sql"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// DataStore reads both sales records and their report data.
type DataStore interface {
	report.SalesStore
	report.ReportDataStore
}

// Closer releases a resource created by an initializer.
type Closer func(ctx context.Context) error

func noopCloser(context.Context) error { return nil }

func InitializeStore(ctx context.Context, c Store, l *zap.Logger) (DataStore, Closer, error) {
	switch c.Type {
	case "fixtures":
		s, err := fixtures.NewStoreFromFile(c.Fixtures.Path)
		if err != nil {
			return nil, nil, err
		}
		return s, noopCloser, nil

	case "sql":
		db, err := sql.Open(c.SQL.Driver, c.SQL.ConnectionString)
		if err != nil {
			return nil, nil, err
		}

		if err := db.PingContext(ctx); err != nil {
			db.Close()
			return nil, nil, err
		}

		opts := []lsql.StoreOption{lsql.WithLogger(l)}
		if c.SQL.SalesTable != "" {
			opts = append(opts, lsql.WithSalesTable(c.SQL.SalesTable))
		}
		if c.SQL.ReportDataTable != "" {
			opts = append(opts, lsql.WithReportDataTable(c.SQL.ReportDataTable))
		}
		s := lsql.NewStore(db, opts...)
		return s, func(context.Context) error { return s.Close() }, nil

	case "mongo":
		u, err := url.Parse(c.Mongo.URI)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid mongo uri: %w", err)
		}
		s, err := mongo.NewStore(ctx, u, l)
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil
	}

	return nil, nil, fmt.Errorf("%w: %q", ErrUnknownStore, c.Type)
}

func InitializeRenderer(r Report) (report.Renderer, error) {
	switch r.Format {
	case report.FormatXML:
		return report.XMLRenderer{}, nil
	case report.FormatJSON:
		return report.JSONRenderer{}, nil
	case parquet.Format:
		return parquet.New(), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, r.Format)
}

// InitializeRepository returns the repository documents are written to. The
// prefix is appended to any prefix configured for the repository.
func InitializeRepository(g Gateway, prefix string, l *zap.Logger) (internal.Repository, error) {
	switch g.Type {
	case "local":
		return local.New(
			g.Local.Path,
			local.WithPrefix(prefix),
			local.WithLogger(l),
		), nil
	case "s3":
		return s3.New(
			s3.WithLogger(l),
			s3.WithRegion(g.S3.Region),
			s3.WithBucket(g.S3.Bucket),
			s3.WithEndpoint(g.S3.Endpoint),
			s3.WithPrefix(path.Join(g.S3.Prefix, prefix)),
			s3.WithForcePathStyle(g.S3.ForcePathStyle),
		)
	}
	return nil, fmt.Errorf("%w: %q has no repository", ErrUnknownGateway, g.Type)
}

// Upload is the configured upload gateway. Repository is set when the
// gateway writes documents through an internal.Repository.
type Upload struct {
	Gateway    report.UploadGateway
	Repository internal.Repository
	Close      Closer
}

// InitializeUpload builds the upload gateway. Repository backed gateways
// write below prefix.
func InitializeUpload(ctx context.Context, c *SalesReport, prefix string, opts []ecm.Option, l *zap.Logger) (*Upload, error) {
	switch c.Gateway.Type {
	case "stdout":
		return &Upload{Gateway: ecm.NewStdout(), Close: noopCloser}, nil

	case "local", "s3":
		repo, err := InitializeRepository(c.Gateway, prefix, l)
		if err != nil {
			return nil, err
		}
		opts = append([]ecm.Option{
			ecm.WithLogger(l),
			ecm.WithExtension(c.Report.Format),
			ecm.WithGzip(c.Gateway.Gzip),
		}, opts...)
		return &Upload{
			Gateway:    ecm.NewRepositoryGateway(repo, opts...),
			Repository: repo,
			Close:      noopCloser,
		}, nil

	case "kafka":
		u, err := url.Parse(c.Gateway.Kafka.URL)
		if err != nil {
			return nil, fmt.Errorf("invalid kafka url: %w", err)
		}
		g, err := kafka.NewGateway(u, l)
		if err != nil {
			return nil, err
		}
		if err := g.Connect(ctx); err != nil {
			return nil, err
		}
		return &Upload{Gateway: g, Close: g.Close}, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownGateway, c.Gateway.Type)
}

func InitializePipeline(c *SalesReport, store DataStore, gateway report.UploadGateway, l *zap.Logger) (*report.Pipeline, error) {
	renderer, err := InitializeRenderer(c.Report)
	if err != nil {
		return nil, err
	}

	return report.New(
		report.WithLogger(l),
		report.WithSalesStore(store),
		report.WithReportDataStore(store),
		report.WithGateway(gateway),
		report.WithRenderer(renderer),
	)
}
