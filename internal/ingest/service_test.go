package ingest_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookworks/book-ingest-service/internal/ingest"
	"github.com/bookworks/book-ingest-service/internal/textclean"
)

func newTestService(t *testing.T, maxBytes int64) *ingest.Service {
	t.Helper()
	cleaner := textclean.NewCleaner(true, zerolog.Nop())
	return ingest.NewService(t.TempDir(), maxBytes, cleaner, zerolog.Nop())
}

func TestService_SavePDF(t *testing.T) {
	t.Parallel()

	t.Run("saves a valid pdf under a unique name", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		svc := ingest.NewService(dir, 1024, textclean.NewCleaner(true, zerolog.Nop()), zerolog.Nop())

		path, err := svc.SavePDF([]byte("%PDF-1.4 fake body"), "book.pdf")
		require.NoError(t, err)

		assert.Equal(t, dir, filepath.Dir(path))
		assert.True(t, strings.HasSuffix(path, "_book.pdf"), "original name is kept as suffix")

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, []byte("%PDF-1.4 fake body"), data)

		// A second upload of the same file must land elsewhere.
		other, err := svc.SavePDF([]byte("%PDF-1.4 fake body"), "book.pdf")
		require.NoError(t, err)
		assert.NotEqual(t, path, other)
	})

	t.Run("rejects oversized uploads", func(t *testing.T) {
		t.Parallel()

		svc := newTestService(t, 10)
		_, err := svc.SavePDF([]byte("%PDF-1.4 way too large"), "book.pdf")
		assert.ErrorIs(t, err, ingest.ErrFileTooLarge)
	})

	t.Run("rejects non-pdf extensions", func(t *testing.T) {
		t.Parallel()

		svc := newTestService(t, 1024)
		_, err := svc.SavePDF([]byte("%PDF-1.4 body"), "book.txt")
		assert.ErrorIs(t, err, ingest.ErrUnsupportedFileType)
	})

	t.Run("rejects payloads without the pdf signature", func(t *testing.T) {
		t.Parallel()

		svc := newTestService(t, 1024)
		_, err := svc.SavePDF([]byte("GIF89a not a pdf"), "book.pdf")
		assert.ErrorIs(t, err, ingest.ErrNotPDF)
	})
}

func TestService_ExtractPages_Errors(t *testing.T) {
	t.Parallel()

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		svc := newTestService(t, 1024)
		_, err := svc.ExtractPages(context.Background(), filepath.Join(t.TempDir(), "nope.pdf"))
		assert.Error(t, err)
	})

	t.Run("corrupt pdf", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "corrupt.pdf")
		require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4\nthis is not a real pdf"), 0o644))

		svc := newTestService(t, 1024)
		_, err := svc.ExtractPages(context.Background(), path)
		assert.Error(t, err)
	})
}
