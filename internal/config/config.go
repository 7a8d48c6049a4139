// Package config holds the process configuration, resolved from the
// environment once at startup and passed explicitly into constructors.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config carries everything the server needs to boot. Zero hidden globals:
// main loads one Config and hands it to the collaborators that need it.
type Config struct {
	// ListenAddr is the address the HTTP server binds to.
	ListenAddr string

	// StorageDir is where validated PDF uploads are persisted.
	StorageDir string

	// MaxPDFSizeMB caps the accepted upload size.
	MaxPDFSizeMB int64

	// PreprocessingEnabled toggles the text-cleaning pipeline. When false,
	// extracted pages are persisted verbatim.
	PreprocessingEnabled bool

	// DatabasePath is the SQLite database file, or ":memory:".
	DatabasePath string

	// AuthSecret signs API bearer tokens. Empty disables authentication.
	AuthSecret string

	// TokenTTL is the lifetime of issued bearer tokens.
	TokenTTL time.Duration
}

// Load populates a Config from the environment. Every field has a default
// that matches local development, so an empty environment still boots.
func Load() *Config {
	cfg := &Config{
		ListenAddr:           ":8080",
		StorageDir:           "storage/pdfs",
		MaxPDFSizeMB:         100,
		PreprocessingEnabled: true,
		DatabasePath:         "bookingest.db",
		TokenTTL:             time.Hour,
	}

	if v := os.Getenv("LISTEN_ADDR"); v != "" {
		cfg.ListenAddr = v
	}
	if v := os.Getenv("PDF_STORAGE_PATH"); v != "" {
		cfg.StorageDir = v
	}
	if v := os.Getenv("MAX_PDF_SIZE_MB"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			cfg.MaxPDFSizeMB = n
		}
	}
	if v := os.Getenv("ENABLE_TEXT_PREPROCESSING"); v != "" {
		cfg.PreprocessingEnabled = strings.EqualFold(v, "true")
	}
	if v := os.Getenv("DATABASE_PATH"); v != "" {
		cfg.DatabasePath = v
	}
	cfg.AuthSecret = os.Getenv("AUTH_SECRET")
	if v := os.Getenv("TOKEN_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.TokenTTL = d
		}
	}

	return cfg
}

// MaxPDFSizeBytes is the upload cap in bytes.
func (c *Config) MaxPDFSizeBytes() int64 {
	return c.MaxPDFSizeMB * 1024 * 1024
}

// AuthEnabled reports whether API requests must carry a bearer token.
func (c *Config) AuthEnabled() bool {
	return c.AuthSecret != ""
}
