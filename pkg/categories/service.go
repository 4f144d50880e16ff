package categories

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

type Service struct {
	db *bun.DB
}

func NewService(db *bun.DB) *Service {
	return &Service{db}
}

// CreateCategory inserts a category. Name uniqueness is enforced by the
// store's case-insensitive unique index and surfaced as a conflict.
func (svc *Service) CreateCategory(ctx context.Context, category *models.Category) error {
	if strings.TrimSpace(category.Name) == "" {
		return errcodes.ValidationError("Category name is required")
	}

	now := time.Now()
	if category.CreatedAt.IsZero() {
		category.CreatedAt = now
	}
	category.UpdatedAt = category.CreatedAt

	_, err := svc.db.
		NewInsert().
		Model(category).
		Returning("*").
		Exec(ctx)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return errcodes.Conflict("A category with this name already exists.")
		}
		return errors.WithStack(err)
	}
	return nil
}

func (svc *Service) RetrieveCategory(ctx context.Context, id int) (*models.Category, error) {
	category := &models.Category{}

	err := svc.db.
		NewSelect().
		Model(category).
		Where("c.id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errcodes.NotFound("Category")
		}
		return nil, errors.WithStack(err)
	}

	return category, nil
}

func (svc *Service) ListCategories(ctx context.Context) ([]*models.Category, error) {
	var categories []*models.Category

	err := svc.db.
		NewSelect().
		Model(&categories).
		Order("c.name ASC").
		Scan(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return categories, nil
}

// DeleteCategory removes the category; the store clears the category
// reference on any books pointing at it rather than deleting them.
func (svc *Service) DeleteCategory(ctx context.Context, id int) error {
	res, err := svc.db.
		NewDelete().
		Model((*models.Category)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return errors.WithStack(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errcodes.NotFound("Category")
	}
	return nil
}
