package authors

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/foliobooks/folio/pkg/errcodes"
	"github.com/foliobooks/folio/pkg/models"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"
)

// ListAuthorsOptions filters the author listing. The wildcard sentinel "%"
// (or an empty string) means the field is unfiltered; any other value is a
// substring match.
type ListAuthorsOptions struct {
	FirstName string
	Surname   string
}

type Service struct {
	db *bun.DB
}

func NewService(db *bun.DB) *Service {
	return &Service{db}
}

func (svc *Service) CreateAuthor(ctx context.Context, author *models.Author) error {
	if strings.TrimSpace(author.FirstName) == "" {
		return errcodes.ValidationError("First name is required")
	}
	if strings.TrimSpace(author.Surname) == "" {
		return errcodes.ValidationError("Surname is required")
	}

	now := time.Now()
	if author.CreatedAt.IsZero() {
		author.CreatedAt = now
	}
	author.UpdatedAt = author.CreatedAt

	_, err := svc.db.
		NewInsert().
		Model(author).
		Returning("*").
		Exec(ctx)
	return errors.WithStack(err)
}

func (svc *Service) RetrieveAuthor(ctx context.Context, id int) (*models.Author, error) {
	author := &models.Author{}

	err := svc.db.
		NewSelect().
		Model(author).
		Where("a.id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errcodes.NotFound("Author")
		}
		return nil, errors.WithStack(err)
	}

	return author, nil
}

func (svc *Service) ListAuthors(ctx context.Context, opts ListAuthorsOptions) ([]*models.Author, error) {
	var authors []*models.Author

	q := svc.db.
		NewSelect().
		Model(&authors).
		Order("a.id ASC")

	if pattern := likePattern(opts.FirstName); pattern != "" {
		q = q.Where("a.first_name LIKE ?", pattern)
	}
	if pattern := likePattern(opts.Surname); pattern != "" {
		q = q.Where("a.surname LIKE ?", pattern)
	}

	err := q.Scan(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return authors, nil
}

// UpdateAuthor fully overwrites the author's mutable fields. A nil Surname2
// clears the stored value rather than leaving it unchanged.
func (svc *Service) UpdateAuthor(ctx context.Context, author *models.Author) error {
	if strings.TrimSpace(author.FirstName) == "" {
		return errcodes.ValidationError("First name is required")
	}
	if strings.TrimSpace(author.Surname) == "" {
		return errcodes.ValidationError("Surname is required")
	}

	author.UpdatedAt = time.Now()

	res, err := svc.db.
		NewUpdate().
		Model(author).
		Column("first_name", "surname", "surname2", "updated_at").
		WherePK().
		Exec(ctx)
	if err != nil {
		return errors.WithStack(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errcodes.NotFound("Author")
	}
	return nil
}

// DeleteAuthor removes the author; the store cascades away any author_books
// rows referencing it.
func (svc *Service) DeleteAuthor(ctx context.Context, id int) error {
	res, err := svc.db.
		NewDelete().
		Model((*models.Author)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return errors.WithStack(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errcodes.NotFound("Author")
	}
	return nil
}

func likePattern(v string) string {
	if v == "" || v == "%" {
		return ""
	}
	return "%" + v + "%"
}
