package books

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/foliobooks/folio/pkg/database"
	"github.com/foliobooks/folio/pkg/errcodes"
	"github.com/foliobooks/folio/pkg/models"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"
)

// ListBooksOptions filters the book listing. The wildcard sentinel "%" (or an
// empty string) means the field is unfiltered; any other value is a substring
// match.
type ListBooksOptions struct {
	ISBN  string
	Title string
}

type Service struct {
	db *bun.DB
}

func NewService(db *bun.DB) *Service {
	return &Service{db}
}

// CreateBook inserts a book under its caller-supplied ISBN. Reusing an ISBN
// is a conflict, never an upsert.
func (svc *Service) CreateBook(ctx context.Context, book *models.Book) error {
	if strings.TrimSpace(book.ISBN) == "" {
		return errcodes.ValidationError("ISBN is required")
	}
	if strings.TrimSpace(book.Title) == "" {
		return errcodes.ValidationError("Title is required")
	}

	now := time.Now()
	if book.CreatedAt.IsZero() {
		book.CreatedAt = now
	}
	book.UpdatedAt = book.CreatedAt

	_, err := svc.db.
		NewInsert().
		Model(book).
		Exec(ctx)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return errcodes.Conflict("A book with this ISBN already exists.")
		}
		if database.IsForeignKeyViolation(err) {
			return errcodes.Conflict("The referenced category does not exist.")
		}
		return errors.WithStack(err)
	}
	return nil
}

func (svc *Service) RetrieveBook(ctx context.Context, isbn string) (*models.Book, error) {
	book := &models.Book{}

	err := svc.db.
		NewSelect().
		Model(book).
		Where("b.isbn = ?", isbn).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errcodes.NotFound("Book")
		}
		return nil, errors.WithStack(err)
	}

	return book, nil
}

// ListBooks returns the flattened book listing: a left outer join across
// categories, author_books, and authors, producing one row per
// (book, linked author) pair rather than one row per book.
func (svc *Service) ListBooks(ctx context.Context, opts ListBooksOptions) ([]*BookRow, error) {
	var rows []*BookRow

	q := svc.db.
		NewSelect().
		Model((*models.Book)(nil)).
		ColumnExpr("b.isbn").
		ColumnExpr("b.title").
		ColumnExpr("b.pages").
		ColumnExpr("b.year").
		ColumnExpr("COALESCE(c.name, '') AS category").
		ColumnExpr("COALESCE(a.surname || ', ' || a.first_name, '') AS author").
		Join("LEFT JOIN categories c ON c.id = b.category_id").
		Join("LEFT JOIN author_books ab ON ab.isbn = b.isbn").
		Join("LEFT JOIN authors a ON a.id = ab.author_id").
		Order("b.isbn ASC").
		OrderExpr("a.id ASC")

	if pattern := likePattern(opts.ISBN); pattern != "" {
		q = q.Where("b.isbn LIKE ?", pattern)
	}
	if pattern := likePattern(opts.Title); pattern != "" {
		q = q.Where("b.title LIKE ?", pattern)
	}

	err := q.Scan(ctx, &rows)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return rows, nil
}

// UpdateBook fully overwrites the book's mutable fields. Nil pages, year, or
// category clear the stored values rather than leaving them unchanged.
func (svc *Service) UpdateBook(ctx context.Context, book *models.Book) error {
	if strings.TrimSpace(book.Title) == "" {
		return errcodes.ValidationError("Title is required")
	}

	book.UpdatedAt = time.Now()

	res, err := svc.db.
		NewUpdate().
		Model(book).
		Column("title", "pages", "year", "category_id", "updated_at").
		WherePK().
		Exec(ctx)
	if err != nil {
		if database.IsForeignKeyViolation(err) {
			return errcodes.Conflict("The referenced category does not exist.")
		}
		return errors.WithStack(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errcodes.NotFound("Book")
	}
	return nil
}

// DeleteBook removes the book and its author links in one transaction. Either
// both deletes commit or neither does; a partial cascade is never observable.
func (svc *Service) DeleteBook(ctx context.Context, isbn string) error {
	return svc.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		exists, err := tx.NewSelect().
			Model((*models.Book)(nil)).
			Where("isbn = ?", isbn).
			Exists(ctx)
		if err != nil {
			return errors.WithStack(err)
		}
		if !exists {
			return errcodes.NotFound("Book")
		}

		// The FK cascade would cover this, but the links are removed
		// explicitly so the delete doesn't depend on PRAGMA foreign_keys.
		_, err = tx.NewDelete().
			Model((*models.AuthorBook)(nil)).
			Where("isbn = ?", isbn).
			Exec(ctx)
		if err != nil {
			return errors.WithStack(err)
		}

		_, err = tx.NewDelete().
			Model((*models.Book)(nil)).
			Where("isbn = ?", isbn).
			Exec(ctx)
		return errors.WithStack(err)
	})
}

func likePattern(v string) string {
	if v == "" || v == "%" {
		return ""
	}
	return "%" + v + "%"
}
