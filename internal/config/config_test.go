package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSalesReportFromFile(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		c, err := NewSalesReportFromFile("../../dev/examples/salesreport.yml")
		assert.NoError(t, err)
		require.NotNil(t, c)
		assert.Equal(t, "fixtures", c.Store.Type)
		assert.Equal(t, "local", c.Gateway.Type)
		assert.Equal(t, "xml", c.Report.Format)
		assert.Equal(t, 50, c.Report.MaxRows)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := NewSalesReportFromFile("does-not-exist.yml")
		assert.Error(t, err)
	})
}

func TestNewSalesReport_Defaults(t *testing.T) {
	c, err := NewSalesReport([]byte(`store: {type: fixtures}`))
	require.NoError(t, err)

	assert.Equal(t, "info", c.Global.Logger.Level)
	assert.Equal(t, "pgx", c.Store.SQL.Driver)
	assert.Equal(t, "stdout", c.Gateway.Type)
	assert.Equal(t, "xml", c.Report.Format)
	assert.Equal(t, 100, c.Report.MaxRows)
}

func TestNewSalesReport_MaxRows(t *testing.T) {
	c, err := NewSalesReport([]byte("report:\n  max_rows: 0\n"))
	require.NoError(t, err)
	assert.Equal(t, 0, c.Report.MaxRows)

	c, err = NewSalesReport([]byte("report:\n  format: json\n"))
	require.NoError(t, err)
	assert.Equal(t, DefaultMaxRows, c.Report.MaxRows)
}

func TestNewSalesReport_Invalid(t *testing.T) {
	_, err := NewSalesReport([]byte("report: [unclosed"))
	assert.Error(t, err)
}
