package categories

import (
	"context"
	"database/sql"
	"testing"

	"github.com/foliobooks/folio/pkg/errcodes"
	"github.com/foliobooks/folio/pkg/migrations"
	"github.com/foliobooks/folio/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
)

func newTestDB(t *testing.T) *bun.DB {
	t.Helper()

	sqldb, err := sql.Open(sqliteshim.ShimName, ":memory:")
	require.NoError(t, err)
	sqldb.SetMaxOpenConns(1)

	db := bun.NewDB(sqldb, sqlitedialect.New())

	_, err = db.Exec("PRAGMA foreign_keys=ON")
	require.NoError(t, err)

	_, err = migrations.BringUpToDate(context.Background(), db)
	require.NoError(t, err)

	t.Cleanup(func() {
		db.Close()
	})

	return db
}

func TestServiceCreateCategory_ReturnsGeneratedID(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc := NewService(db)
	ctx := context.Background()

	category := &models.Category{Name: "Programming"}
	require.NoError(t, svc.CreateCategory(ctx, category))
	assert.Positive(t, category.ID)

	found, err := svc.RetrieveCategory(ctx, category.ID)
	require.NoError(t, err)
	assert.Equal(t, "Programming", found.Name)
}

func TestServiceCreateCategory_DuplicateNameConflicts(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc := NewService(db)
	ctx := context.Background()

	require.NoError(t, svc.CreateCategory(ctx, &models.Category{Name: "Programming"}))

	// the unique index is case-insensitive
	err := svc.CreateCategory(ctx, &models.Category{Name: "programming"})
	require.Error(t, err)

	var codeErr *errcodes.Error
	require.ErrorAs(t, err, &codeErr)
	assert.Equal(t, "conflict", codeErr.Code)
}

func TestServiceCreateCategory_MissingName(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc := NewService(db)
	ctx := context.Background()

	err := svc.CreateCategory(ctx, &models.Category{})
	require.Error(t, err)

	var codeErr *errcodes.Error
	require.ErrorAs(t, err, &codeErr)
	assert.Equal(t, "validation_error", codeErr.Code)
}

func TestServiceListCategories_OrderedByName(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc := NewService(db)
	ctx := context.Background()

	require.NoError(t, svc.CreateCategory(ctx, &models.Category{Name: "Programming"}))
	require.NoError(t, svc.CreateCategory(ctx, &models.Category{Name: "Databases"}))

	categories, err := svc.ListCategories(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "Databases", categories[0].Name)
	assert.Equal(t, "Programming", categories[1].Name)
}

func TestServiceDeleteCategory_ClearsBookReferences(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc := NewService(db)
	ctx := context.Background()

	category := &models.Category{Name: "Programming"}
	require.NoError(t, svc.CreateCategory(ctx, category))

	book := &models.Book{ISBN: "0764576593", Title: "JavaScript for dummies", CategoryID: &category.ID}
	_, err := db.NewInsert().Model(book).Exec(ctx)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteCategory(ctx, category.ID))

	// the book survives with its category reference cleared, not deleted
	found := &models.Book{}
	err = db.NewSelect().Model(found).Where("isbn = ?", "0764576593").Scan(ctx)
	require.NoError(t, err)
	assert.Nil(t, found.CategoryID)
}

func TestServiceDeleteCategory_NotFound(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc := NewService(db)
	ctx := context.Background()

	err := svc.DeleteCategory(ctx, 999)
	require.Error(t, err)

	var codeErr *errcodes.Error
	require.ErrorAs(t, err, &codeErr)
	assert.Equal(t, "Category not found.", codeErr.Message)
}
