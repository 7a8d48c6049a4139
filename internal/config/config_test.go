package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bookworks/book-ingest-service/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"LISTEN_ADDR", "PDF_STORAGE_PATH", "MAX_PDF_SIZE_MB",
		"ENABLE_TEXT_PREPROCESSING", "DATABASE_PATH", "AUTH_SECRET", "TOKEN_TTL",
	} {
		t.Setenv(key, "")
	}

	cfg := config.Load()

	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, "storage/pdfs", cfg.StorageDir)
	assert.Equal(t, int64(100), cfg.MaxPDFSizeMB)
	assert.Equal(t, int64(100*1024*1024), cfg.MaxPDFSizeBytes())
	assert.True(t, cfg.PreprocessingEnabled)
	assert.Equal(t, "bookingest.db", cfg.DatabasePath)
	assert.False(t, cfg.AuthEnabled())
	assert.Equal(t, time.Hour, cfg.TokenTTL)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("LISTEN_ADDR", ":9090")
	t.Setenv("PDF_STORAGE_PATH", "/tmp/pdfs")
	t.Setenv("MAX_PDF_SIZE_MB", "10")
	t.Setenv("ENABLE_TEXT_PREPROCESSING", "false")
	t.Setenv("DATABASE_PATH", ":memory:")
	t.Setenv("AUTH_SECRET", "s3cret")
	t.Setenv("TOKEN_TTL", "30m")

	cfg := config.Load()

	assert.Equal(t, ":9090", cfg.ListenAddr)
	assert.Equal(t, "/tmp/pdfs", cfg.StorageDir)
	assert.Equal(t, int64(10), cfg.MaxPDFSizeMB)
	assert.False(t, cfg.PreprocessingEnabled)
	assert.Equal(t, ":memory:", cfg.DatabasePath)
	assert.True(t, cfg.AuthEnabled())
	assert.Equal(t, 30*time.Minute, cfg.TokenTTL)
}

func TestLoad_IgnoresInvalidValues(t *testing.T) {
	t.Setenv("MAX_PDF_SIZE_MB", "not-a-number")
	t.Setenv("TOKEN_TTL", "-5m")
	t.Setenv("ENABLE_TEXT_PREPROCESSING", "TRUE")

	cfg := config.Load()

	assert.Equal(t, int64(100), cfg.MaxPDFSizeMB)
	assert.Equal(t, time.Hour, cfg.TokenTTL)
	assert.True(t, cfg.PreprocessingEnabled, "truthiness is case-insensitive")
}
