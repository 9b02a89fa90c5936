package mongo

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/turbolytics/salesreport/internal/sales"
)

const (
	DefaultSalesCollection      = "sales"
	DefaultReportDataCollection = "sales_report_data"
)

// Location identifies the database and collections a Store reads from.
type Location struct {
	Database             string
	SalesCollection      string
	ReportDataCollection string
}

// ParseLocation extracts the database from the URI path and the collection
// names from the sales_collection and report_data_collection query params.
func ParseLocation(uri *url.URL) (Location, error) {
	database := strings.TrimPrefix(uri.Path, "/")
	if database == "" {
		return Location{}, fmt.Errorf("database must be specified in URL path")
	}

	loc := Location{
		Database:             database,
		SalesCollection:      uri.Query().Get("sales_collection"),
		ReportDataCollection: uri.Query().Get("report_data_collection"),
	}
	if loc.SalesCollection == "" {
		loc.SalesCollection = DefaultSalesCollection
	}
	if loc.ReportDataCollection == "" {
		loc.ReportDataCollection = DefaultReportDataCollection
	}
	return loc, nil
}

type Store struct {
	client   *mongo.Client
	location Location
	logger   *zap.Logger
}

func NewStore(ctx context.Context, uri *url.URL, logger *zap.Logger) (*Store, error) {
	loc, err := ParseLocation(uri)
	if err != nil {
		return nil, err
	}

	// strip our own params before handing the URI to the driver
	clean := *uri
	q := clean.Query()
	q.Del("sales_collection")
	q.Del("report_data_collection")
	clean.RawQuery = q.Encode()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(clean.String()))
	if err != nil {
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		client.Disconnect(context.Background())
		return nil, err
	}

	logger.Info("MongoDB store connected",
		zap.String("database", loc.Database),
		zap.String("sales_collection", loc.SalesCollection),
		zap.String("report_data_collection", loc.ReportDataCollection),
	)

	return &Store{
		client:   client,
		location: loc,
		logger:   logger,
	}, nil
}

func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func (s *Store) GetBySalesID(ctx context.Context, salesID string) (*sales.Sales, error) {
	coll := s.client.Database(s.location.Database).Collection(s.location.SalesCollection)

	var sl sales.Sales
	err := coll.FindOne(ctx, bson.M{"_id": salesID}).Decode(&sl)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("%w: %q", sales.ErrNotFound, salesID)
	}
	if err != nil {
		s.logger.Error("Failed to fetch sales", zap.String("sales_id", salesID), zap.Error(err))
		return nil, err
	}
	return &sl, nil
}

func (s *Store) GetReportData(ctx context.Context, sl *sales.Sales) ([]*sales.ReportData, error) {
	coll := s.client.Database(s.location.Database).Collection(s.location.ReportDataCollection)

	cursor, err := coll.Find(ctx,
		bson.M{"sales_id": sl.ID},
		options.Find().SetSort(bson.D{{Key: "time", Value: 1}}),
	)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var data []*sales.ReportData
	if err := cursor.All(ctx, &data); err != nil {
		return nil, err
	}

	s.logger.Debug("report data fetched",
		zap.String("sales_id", sl.ID),
		zap.Int("count", len(data)),
	)
	return data, nil
}
