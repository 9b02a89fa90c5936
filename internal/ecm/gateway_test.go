package ecm

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRepository struct {
	mock.Mock
	written map[string][]byte
}

func (m *MockRepository) Write(ctx context.Context, key string, reader io.Reader) error {
	bs, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	if m.written == nil {
		m.written = make(map[string][]byte)
	}
	m.written[key] = bs
	return m.Called(ctx, key).Error(0)
}

func TestRepositoryGateway_UploadDocument(t *testing.T) {
	t.Run("random key per document", func(t *testing.T) {
		repo := &MockRepository{}
		repo.On("Write", mock.Anything, mock.AnythingOfType("string")).Return(nil)

		g := NewRepositoryGateway(repo, WithPrefix("reports"))
		require.NoError(t, g.UploadDocument(context.Background(), "<a/>"))
		require.NoError(t, g.UploadDocument(context.Background(), "<b/>"))

		repo.AssertNumberOfCalls(t, "Write", 2)
		require.Len(t, repo.written, 2)
		for key, bs := range repo.written {
			assert.True(t, strings.HasPrefix(key, "reports/"), key)
			assert.True(t, strings.HasSuffix(key, ".xml"), key)
			assert.Contains(t, []string{"<a/>", "<b/>"}, string(bs))
		}
	})

	t.Run("fixed name", func(t *testing.T) {
		repo := &MockRepository{}
		repo.On("Write", mock.Anything, "report.json").Return(nil)

		g := NewRepositoryGateway(repo, WithName("report"), WithExtension(".json"))
		require.NoError(t, g.UploadDocument(context.Background(), `{"headers":[]}`))

		repo.AssertNumberOfCalls(t, "Write", 1)
		assert.Equal(t, `{"headers":[]}`, string(repo.written["report.json"]))
	})

	t.Run("gzip", func(t *testing.T) {
		repo := &MockRepository{}
		repo.On("Write", mock.Anything, "report.xml.gz").Return(nil)

		g := NewRepositoryGateway(repo, WithName("report"), WithGzip(true))
		require.NoError(t, g.UploadDocument(context.Background(), "<SalesActivityReport/>"))

		zr, err := gzip.NewReader(bytes.NewReader(repo.written["report.xml.gz"]))
		require.NoError(t, err)
		bs, err := io.ReadAll(zr)
		require.NoError(t, err)
		assert.Equal(t, "<SalesActivityReport/>", string(bs))
	})

	t.Run("repository error", func(t *testing.T) {
		boom := errors.New("disk full")
		repo := &MockRepository{}
		repo.On("Write", mock.Anything, mock.Anything).Return(boom)

		g := NewRepositoryGateway(repo)
		assert.ErrorIs(t, g.UploadDocument(context.Background(), "<a/>"), boom)
	})
}

func TestStdout_UploadDocument(t *testing.T) {
	var buf bytes.Buffer
	s := &Stdout{Out: &buf}

	require.NoError(t, s.UploadDocument(context.Background(), "<SalesActivityReport/>"))
	assert.Equal(t, "<SalesActivityReport/>\n", buf.String())
}
