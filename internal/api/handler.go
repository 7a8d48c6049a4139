package api

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/bookworks/book-ingest-service/internal/ingest"
	"github.com/bookworks/book-ingest-service/internal/store"
)

// Handler serves the book ingestion API.
type Handler struct {
	ingest *ingest.Service
	books  *store.BookService
	logger zerolog.Logger
}

// NewHandler creates a new handler.
func NewHandler(ingestService *ingest.Service, books *store.BookService, logger zerolog.Logger) *Handler {
	return &Handler{
		ingest: ingestService,
		books:  books,
		logger: logger,
	}
}

// errorBody is the standardized error envelope, kept stable for clients.
func errorBody(code, message, details string) gin.H {
	return gin.H{"error": gin.H{
		"code":    code,
		"message": message,
		"details": details,
	}}
}

// HealthCheck provides a simple health check endpoint.
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"service":   "book-ingest",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// UploadBook validates and saves a PDF, extracts and cleans its page text,
// and persists the book with one row per surviving page.
func (h *Handler) UploadBook(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, errorBody("INVALID_FILE", "A PDF file upload is required.", err.Error()))
		return
	}
	defer file.Close()

	if header.Filename == "" {
		c.JSON(http.StatusBadRequest, errorBody("INVALID_FILE", "Missing file name in upload.", ""))
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorBody("INVALID_FILE", "Could not read the uploaded file.", err.Error()))
		return
	}

	pdfPath, err := h.ingest.SavePDF(data, header.Filename)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorBody("VALIDATION_ERROR", "PDF validation failed.", err.Error()))
		return
	}

	pages, err := h.ingest.ExtractPages(c.Request.Context(), pdfPath)
	if err != nil {
		h.logger.Error().Err(err).Str("path", pdfPath).Msg("extraction failed")
		c.JSON(http.StatusBadRequest, errorBody("EXTRACTION_FAILED", "Could not extract text from the PDF.", err.Error()))
		return
	}
	if len(pages) == 0 {
		c.JSON(http.StatusBadRequest, errorBody(
			"EMPTY_EXTRACTED_CONTENT",
			"No usable pages found after PDF preprocessing.",
			"The document may be scanned/noisy or filtered as front matter.",
		))
		return
	}

	title := c.PostForm("title")
	if title == "" {
		title = strings.TrimSuffix(header.Filename, ".pdf")
	}
	author := c.PostForm("author")
	if author == "" {
		author = "Unknown"
	}

	book := &store.Book{
		Title:       title,
		Author:      author,
		Description: "Uploaded from " + header.Filename,
		PDFPath:     pdfPath,
	}
	if err := h.books.CreateBook(c.Request.Context(), book, pages); err != nil {
		h.logger.Error().Err(err).Str("title", title).Msg("persisting book failed")
		c.JSON(http.StatusInternalServerError, errorBody("UPLOAD_FAILED", "Unexpected error during upload.", err.Error()))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"book_id":     book.ID,
		"title":       book.Title,
		"author":      book.Author,
		"total_pages": book.TotalPages,
		// Returning the stored path helps later reprocessing workflows.
		"pdf_path": book.PDFPath,
		"message":  "PDF uploaded and pages extracted",
	})
}

// ListBooks returns all ingested books, newest first.
func (h *Handler) ListBooks(c *gin.Context) {
	books, err := h.books.FindBooks(c.Request.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("listing books failed")
		c.JSON(http.StatusInternalServerError, errorBody("LIST_FAILED", "Could not list books.", err.Error()))
		return
	}

	c.JSON(http.StatusOK, gin.H{"books": books, "count": len(books)})
}

// GetBook returns one book's metadata.
func (h *Handler) GetBook(c *gin.Context) {
	id, ok := h.bookID(c)
	if !ok {
		return
	}

	book, err := h.books.FindBookByID(c.Request.Context(), id)
	if errors.Is(err, store.ErrBookNotFound) {
		c.JSON(http.StatusNotFound, errorBody("NOT_FOUND", "Book not found.", c.Param("id")))
		return
	}
	if err != nil {
		h.logger.Error().Err(err).Int64("book_id", id).Msg("fetching book failed")
		c.JSON(http.StatusInternalServerError, errorBody("FETCH_FAILED", "Could not fetch book.", err.Error()))
		return
	}

	c.JSON(http.StatusOK, book)
}

// GetBookPages returns a book's cleaned pages in page order.
func (h *Handler) GetBookPages(c *gin.Context) {
	id, ok := h.bookID(c)
	if !ok {
		return
	}

	if _, err := h.books.FindBookByID(c.Request.Context(), id); errors.Is(err, store.ErrBookNotFound) {
		c.JSON(http.StatusNotFound, errorBody("NOT_FOUND", "Book not found.", c.Param("id")))
		return
	} else if err != nil {
		h.logger.Error().Err(err).Int64("book_id", id).Msg("fetching book failed")
		c.JSON(http.StatusInternalServerError, errorBody("FETCH_FAILED", "Could not fetch book.", err.Error()))
		return
	}

	pages, err := h.books.FindPagesByBookID(c.Request.Context(), id)
	if err != nil {
		h.logger.Error().Err(err).Int64("book_id", id).Msg("fetching pages failed")
		c.JSON(http.StatusInternalServerError, errorBody("FETCH_FAILED", "Could not fetch pages.", err.Error()))
		return
	}

	c.JSON(http.StatusOK, gin.H{"book_id": id, "pages": pages, "count": len(pages)})
}

// DeleteBook removes a book and its pages.
func (h *Handler) DeleteBook(c *gin.Context) {
	id, ok := h.bookID(c)
	if !ok {
		return
	}

	err := h.books.DeleteBook(c.Request.Context(), id)
	if errors.Is(err, store.ErrBookNotFound) {
		c.JSON(http.StatusNotFound, errorBody("NOT_FOUND", "Book not found.", c.Param("id")))
		return
	}
	if err != nil {
		h.logger.Error().Err(err).Int64("book_id", id).Msg("deleting book failed")
		c.JSON(http.StatusInternalServerError, errorBody("DELETE_FAILED", "Could not delete book.", err.Error()))
		return
	}

	c.JSON(http.StatusOK, gin.H{"book_id": id, "message": "Book deleted"})
}

// bookID parses the :id path parameter, writing the error response itself
// when the parameter is not a positive integer.
func (h *Handler) bookID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, errorBody("INVALID_ID", "Book ID must be a positive integer.", c.Param("id")))
		return 0, false
	}
	return id, true
}
