// Package ingest validates and stores uploaded PDFs and turns them into
// cleaned per-page text.
package ingest

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/bookworks/book-ingest-service/internal/textclean"
)

// Validation errors surfaced to the upload endpoint.
var (
	ErrFileTooLarge        = errors.New("file size exceeds maximum allowed size")
	ErrUnsupportedFileType = errors.New("only PDF files are allowed")
	ErrNotPDF              = errors.New("file is not a valid PDF")
)

var pdfSignature = []byte("%PDF")

// Service handles PDF validation, persistence, and page-wise extraction.
// Keeping this isolated makes later ingestion upgrades simple.
type Service struct {
	storageDir string
	maxBytes   int64
	cleaner    *textclean.Cleaner
	logger     zerolog.Logger
}

// NewService creates a new ingestion service. maxBytes caps accepted
// uploads; the cleaner decides what happens to extracted pages.
func NewService(storageDir string, maxBytes int64, cleaner *textclean.Cleaner, logger zerolog.Logger) *Service {
	return &Service{
		storageDir: storageDir,
		maxBytes:   maxBytes,
		cleaner:    cleaner,
		logger:     logger,
	}
}

// SavePDF validates the upload and writes it under the storage directory.
// The stored name is prefixed with a UUID so repeated uploads of the same
// file never collide.
func (s *Service) SavePDF(data []byte, filename string) (string, error) {
	if int64(len(data)) > s.maxBytes {
		return "", fmt.Errorf("%w (> %d bytes)", ErrFileTooLarge, s.maxBytes)
	}
	if strings.ToLower(filepath.Ext(filename)) != ".pdf" {
		return "", ErrUnsupportedFileType
	}
	// Quick signature check to reject invalid payloads early.
	if !bytes.HasPrefix(data, pdfSignature) {
		return "", ErrNotPDF
	}

	if err := os.MkdirAll(s.storageDir, 0o755); err != nil {
		return "", fmt.Errorf("create storage dir: %w", err)
	}

	path := filepath.Join(s.storageDir, fmt.Sprintf("%s_%s", uuid.New().String(), filepath.Base(filename)))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write pdf: %w", err)
	}

	s.logger.Info().Str("path", path).Int("bytes", len(data)).Msg("pdf saved")
	return path, nil
}

// ExtractPages reads per-page text from a stored PDF and runs the cleaning
// pipeline over it.
func (s *Service) ExtractPages(ctx context.Context, pdfPath string) ([]textclean.Page, error) {
	pages, err := extractTextByPage(ctx, pdfPath)
	if err != nil {
		return nil, err
	}
	return s.cleaner.Clean(pages), nil
}
