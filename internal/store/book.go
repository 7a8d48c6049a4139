package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/bookworks/book-ingest-service/internal/textclean"
)

// ErrBookNotFound is returned when a book does not exist.
var ErrBookNotFound = errors.New("book not found")

// Book is the stored metadata for one ingested PDF.
type Book struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Author      string    `json:"author"`
	TotalPages  int       `json:"total_pages"`
	Description string    `json:"description"`
	PDFPath     string    `json:"pdf_path"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Page is one stored page of cleaned text.
type Page struct {
	ID         int64  `json:"id"`
	BookID     int64  `json:"book_id"`
	PageNumber int    `json:"page_number"`
	Text       string `json:"text"`
}

// BookService implements book and page persistence over SQLite.
type BookService struct {
	db *DB
}

// NewBookService creates a new BookService.
func NewBookService(db *DB) *BookService {
	return &BookService{db: db}
}

// CreateBook inserts the book and its pages in one transaction, filling in
// the generated ID, page count, and timestamps.
func (s *BookService) CreateBook(ctx context.Context, book *Book, pages []textclean.Page) error {
	now := time.Now().UTC()
	book.CreatedAt = now
	book.UpdatedAt = now
	book.TotalPages = len(pages)

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		INSERT INTO books (title, author, total_pages, description, pdf_path, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, book.Title, book.Author, book.TotalPages, book.Description, book.PDFPath,
		now.Format(time.RFC3339), now.Format(time.RFC3339))
	if err != nil {
		return err
	}

	book.ID, err = res.LastInsertId()
	if err != nil {
		return err
	}

	for _, page := range pages {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO pages (book_id, page_number, text, created_at)
			VALUES (?, ?, ?, ?)
		`, book.ID, page.PageNumber, page.Text, now.Format(time.RFC3339)); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// FindBookByID retrieves a book by ID.
func (s *BookService) FindBookByID(ctx context.Context, id int64) (*Book, error) {
	var book Book
	var createdAt, updatedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, title, author, total_pages, description, pdf_path, created_at, updated_at
		FROM books
		WHERE id = ?
	`, id).Scan(&book.ID, &book.Title, &book.Author, &book.TotalPages, &book.Description,
		&book.PDFPath, &createdAt, &updatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookNotFound
	}
	if err != nil {
		return nil, err
	}

	if book.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return nil, fmt.Errorf("failed to parse created_at: %w", err)
	}
	if book.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt); err != nil {
		return nil, fmt.Errorf("failed to parse updated_at: %w", err)
	}

	return &book, nil
}

// FindBooks retrieves all books, newest first.
func (s *BookService) FindBooks(ctx context.Context) ([]*Book, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, author, total_pages, description, pdf_path, created_at, updated_at
		FROM books
		ORDER BY created_at DESC, id DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	books := make([]*Book, 0)
	for rows.Next() {
		var book Book
		var createdAt, updatedAt string
		if err := rows.Scan(&book.ID, &book.Title, &book.Author, &book.TotalPages,
			&book.Description, &book.PDFPath, &createdAt, &updatedAt); err != nil {
			return nil, err
		}
		if book.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
			return nil, fmt.Errorf("failed to parse created_at: %w", err)
		}
		if book.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt); err != nil {
			return nil, fmt.Errorf("failed to parse updated_at: %w", err)
		}
		books = append(books, &book)
	}

	return books, rows.Err()
}

// FindPagesByBookID retrieves a book's pages in page-number order.
func (s *BookService) FindPagesByBookID(ctx context.Context, bookID int64) ([]*Page, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, book_id, page_number, text
		FROM pages
		WHERE book_id = ?
		ORDER BY page_number
	`, bookID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	pages := make([]*Page, 0)
	for rows.Next() {
		var page Page
		if err := rows.Scan(&page.ID, &page.BookID, &page.PageNumber, &page.Text); err != nil {
			return nil, err
		}
		pages = append(pages, &page)
	}

	return pages, rows.Err()
}

// DeleteBook removes a book and, via the cascade, its pages.
func (s *BookService) DeleteBook(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM books WHERE id = ?`, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrBookNotFound
	}
	return nil
}
