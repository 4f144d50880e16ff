package authorbooks

import (
	"context"
	"time"

	"github.com/foliobooks/folio/pkg/database"
	"github.com/foliobooks/folio/pkg/errcodes"
	"github.com/foliobooks/folio/pkg/models"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"
)

type Service struct {
	db *bun.DB
}

func NewService(db *bun.DB) *Service {
	return &Service{db}
}

// CreateAuthorBook links an author to a book, stamping the link with the
// current time. Both sides must already exist; the store's foreign keys
// reject dangling references.
func (svc *Service) CreateAuthorBook(ctx context.Context, link *models.AuthorBook) error {
	if link.CreatedAt.IsZero() {
		link.CreatedAt = time.Now()
	}

	_, err := svc.db.
		NewInsert().
		Model(link).
		Exec(ctx)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return errcodes.Conflict("This author is already linked to this book.")
		}
		if database.IsForeignKeyViolation(err) {
			return errcodes.Conflict("The referenced author or book does not exist.")
		}
		return errors.WithStack(err)
	}
	return nil
}

// UpdateAuthorBook refreshes the link's creation timestamp, the only mutable
// field on the join.
func (svc *Service) UpdateAuthorBook(ctx context.Context, authorID int, isbn string) error {
	res, err := svc.db.
		NewUpdate().
		Model((*models.AuthorBook)(nil)).
		Set("created_at = ?", time.Now()).
		Where("author_id = ?", authorID).
		Where("isbn = ?", isbn).
		Exec(ctx)
	if err != nil {
		return errors.WithStack(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errcodes.NotFound("Author book")
	}
	return nil
}

// ListAuthorBooks returns the links for one book, oldest first.
func (svc *Service) ListAuthorBooks(ctx context.Context, isbn string) ([]*models.AuthorBook, error) {
	var links []*models.AuthorBook

	err := svc.db.
		NewSelect().
		Model(&links).
		Where("ab.isbn = ?", isbn).
		Order("ab.created_at ASC").
		Scan(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return links, nil
}
