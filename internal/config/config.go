package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const DefaultMaxRows = 100

var (
	ErrUnknownStore   = errors.New("unknown store type")
	ErrUnknownGateway = errors.New("unknown gateway type")
	ErrUnknownFormat  = errors.New("unknown report format")
)

type Logger struct {
	Level string `yaml:"level"`
}

type Global struct {
	Logger Logger `yaml:"logger"`
}

type FixturesConfig struct {
	Path string `yaml:"path"`
}

type SQLConfig struct {
	Driver           string `yaml:"driver"`
	ConnectionString string `yaml:"connection_string"`
	SalesTable       string `yaml:"sales_table"`
	ReportDataTable  string `yaml:"report_data_table"`
}

type MongoConfig struct {
	URI string `yaml:"uri"`
}

type Store struct {
	Type     string         `yaml:"type"`
	Fixtures FixturesConfig `yaml:"fixtures"`
	SQL      SQLConfig      `yaml:"sql"`
	Mongo    MongoConfig    `yaml:"mongo"`
}

type LocalConfig struct {
	Path string `yaml:"path"`
}

type S3Config struct {
	Bucket         string `yaml:"bucket"`
	Region         string `yaml:"region"`
	Prefix         string `yaml:"prefix"`
	Endpoint       string `yaml:"endpoint"`
	ForcePathStyle bool   `yaml:"force_path_style"`
}

type KafkaConfig struct {
	URL string `yaml:"url"`
}

type Gateway struct {
	Type  string      `yaml:"type"`
	Gzip  bool        `yaml:"gzip"`
	Local LocalConfig `yaml:"local"`
	S3    S3Config    `yaml:"s3"`
	Kafka KafkaConfig `yaml:"kafka"`
}

type Report struct {
	Format  string `yaml:"format"`
	MaxRows int    `yaml:"max_rows"`
}

type SalesReport struct {
	Global  Global  `yaml:"global"`
	Store   Store   `yaml:"store"`
	Gateway Gateway `yaml:"gateway"`
	Report  Report  `yaml:"report"`
}

func (c *SalesReport) setDefaults() {
	if c.Global.Logger.Level == "" {
		c.Global.Logger.Level = "info"
	}
	if c.Store.SQL.Driver == "" {
		c.Store.SQL.Driver = "pgx"
	}
	if c.Gateway.Type == "" {
		c.Gateway.Type = "stdout"
	}
	if c.Report.Format == "" {
		c.Report.Format = "xml"
	}
}

func NewSalesReport(bs []byte) (*SalesReport, error) {
	// Set before decoding so an explicit max_rows: 0 is kept.
	c := SalesReport{Report: Report{MaxRows: DefaultMaxRows}}
	if err := yaml.Unmarshal(bs, &c); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	c.setDefaults()
	return &c, nil
}

func NewSalesReportFromFile(fpath string) (*SalesReport, error) {
	bs, err := os.ReadFile(fpath)
	if err != nil {
		return nil, err
	}
	return NewSalesReport(bs)
}
