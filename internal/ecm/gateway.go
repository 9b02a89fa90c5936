package ecm

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/klauspost/compress/gzip"
	"go.uber.org/zap"

	"github.com/turbolytics/salesreport/internal"
)

type Option func(*RepositoryGateway)

func WithLogger(l *zap.Logger) Option {
	return func(g *RepositoryGateway) {
		g.logger = l
	}
}

// WithExtension sets the file extension of uploaded documents, e.g. "xml".
func WithExtension(ext string) Option {
	return func(g *RepositoryGateway) {
		g.extension = strings.TrimPrefix(ext, ".")
	}
}

func WithPrefix(prefix string) Option {
	return func(g *RepositoryGateway) {
		g.prefix = prefix
	}
}

// WithName uploads every document under the same name instead of a random one.
func WithName(name string) Option {
	return func(g *RepositoryGateway) {
		g.name = func() string { return name }
	}
}

func WithGzip(enabled bool) Option {
	return func(g *RepositoryGateway) {
		g.gzip = enabled
	}
}

// RepositoryGateway uploads documents as objects of an internal.Repository.
type RepositoryGateway struct {
	repository internal.Repository
	logger     *zap.Logger

	prefix    string
	extension string
	gzip      bool
	name      func() string
}

func NewRepositoryGateway(repository internal.Repository, opts ...Option) *RepositoryGateway {
	g := &RepositoryGateway{
		repository: repository,
		logger:     zap.NewNop(),
		extension:  "xml",
		name:       uuid.NewString,
	}

	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Key returns the object key for a document name.
func (g *RepositoryGateway) Key(name string) string {
	key := name
	if g.extension != "" {
		key += "." + g.extension
	}
	if g.gzip {
		key += ".gz"
	}
	return path.Join(g.prefix, key)
}

func (g *RepositoryGateway) UploadDocument(ctx context.Context, document string) error {
	key := g.Key(g.name())

	var body io.Reader = strings.NewReader(document)
	if g.gzip {
		var buf bytes.Buffer
		zw := gzip.NewWriter(&buf)
		if _, err := zw.Write([]byte(document)); err != nil {
			return fmt.Errorf("compressing document: %w", err)
		}
		if err := zw.Close(); err != nil {
			return fmt.Errorf("compressing document: %w", err)
		}
		body = &buf
	}

	g.logger.Info("uploading document",
		zap.String("key", key),
		zap.Int("size", len(document)),
		zap.Bool("gzip", g.gzip),
	)

	return g.repository.Write(ctx, key, body)
}

// Stdout prints documents instead of uploading them.
type Stdout struct {
	Out io.Writer
}

func NewStdout() *Stdout {
	return &Stdout{Out: os.Stdout}
}

func (s *Stdout) UploadDocument(ctx context.Context, document string) error {
	_, err := fmt.Fprintln(s.Out, document)
	return err
}
