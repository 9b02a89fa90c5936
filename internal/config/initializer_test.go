package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/turbolytics/salesreport/internal/ecm"
	"github.com/turbolytics/salesreport/internal/parquet"
	"github.com/turbolytics/salesreport/internal/report"
)

func TestInitializeStore(t *testing.T) {
	ctx := context.Background()

	t.Run("fixtures", func(t *testing.T) {
		s, closer, err := InitializeStore(ctx, Store{
			Type:     "fixtures",
			Fixtures: FixturesConfig{Path: "../../dev/examples/fixtures.yml"},
		}, zap.NewNop())
		require.NoError(t, err)
		defer closer(ctx)

		sl, err := s.GetBySalesID(ctx, "S01")
		require.NoError(t, err)
		assert.Equal(t, "Alice Martin", sl.Name)
	})

	t.Run("sql", func(t *testing.T) {
		s, closer, err := InitializeStore(ctx, Store{
			Type: "sql",
			SQL:  SQLConfig{Driver: "sqlite", ConnectionString: ":memory:"},
		}, zap.NewNop())
		require.NoError(t, err)
		assert.NotNil(t, s)
		assert.NoError(t, closer(ctx))
	})

	t.Run("unknown", func(t *testing.T) {
		_, _, err := InitializeStore(ctx, Store{Type: "oracle"}, zap.NewNop())
		assert.ErrorIs(t, err, ErrUnknownStore)
	})
}

func TestInitializeRenderer(t *testing.T) {
	r, err := InitializeRenderer(Report{Format: "xml"})
	require.NoError(t, err)
	assert.IsType(t, report.XMLRenderer{}, r)

	r, err = InitializeRenderer(Report{Format: "json"})
	require.NoError(t, err)
	assert.IsType(t, report.JSONRenderer{}, r)

	r, err = InitializeRenderer(Report{Format: "parquet"})
	require.NoError(t, err)
	assert.IsType(t, &parquet.Renderer{}, r)

	_, err = InitializeRenderer(Report{Format: "pdf"})
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestInitializeUpload(t *testing.T) {
	ctx := context.Background()

	t.Run("stdout", func(t *testing.T) {
		u, err := InitializeUpload(ctx, &SalesReport{Gateway: Gateway{Type: "stdout"}}, "", nil, zap.NewNop())
		require.NoError(t, err)
		assert.IsType(t, &ecm.Stdout{}, u.Gateway)
		assert.Nil(t, u.Repository)
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := InitializeUpload(ctx, &SalesReport{Gateway: Gateway{Type: "ftp"}}, "", nil, zap.NewNop())
		assert.ErrorIs(t, err, ErrUnknownGateway)
	})
}

func TestInitializePipeline_FixturesToLocal(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	c, err := NewSalesReport([]byte(`
store:
  type: fixtures
  fixtures:
    path: ../../dev/examples/fixtures.yml
gateway:
  type: local
  local:
    path: ` + dir + `
report:
  format: json
`))
	require.NoError(t, err)

	store, closeStore, err := InitializeStore(ctx, c.Store, zap.NewNop())
	require.NoError(t, err)
	defer closeStore(ctx)

	upload, err := InitializeUpload(ctx, c, "run-1", []ecm.Option{ecm.WithName("report")}, zap.NewNop())
	require.NoError(t, err)
	defer upload.Close(ctx)

	p, err := InitializePipeline(c, store, upload.Gateway, zap.NewNop())
	require.NoError(t, err)

	res, err := p.Generate(ctx, report.Request{SalesID: "S01", MaxRows: c.Report.MaxRows, IsNatTrade: true})
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, 4, res.Catalog.NumSourceRecords)
	assert.Equal(t, 2, res.Catalog.NumRecordsProcessed)

	bs, err := os.ReadFile(filepath.Join(dir, "run-1", "report.json"))
	require.NoError(t, err)
	assert.Equal(t, res.Document, string(bs))
	assert.Contains(t, string(bs), "Discovery call")
	assert.NotContains(t, string(bs), "Contract negotiation")

	t.Run("out of effective date", func(t *testing.T) {
		res, err := p.Generate(ctx, report.Request{SalesID: "S02", MaxRows: 10})
		require.NoError(t, err)
		assert.Nil(t, res)
	})
}
