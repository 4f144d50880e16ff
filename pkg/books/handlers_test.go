package books

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/foliobooks/folio/pkg/binder"
	"github.com/foliobooks/folio/pkg/errcodes"
	"github.com/foliobooks/folio/pkg/models"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBooksTestContext(t *testing.T, method, path, payload string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	b, err := binder.New()
	require.NoError(t, err)
	e.Binder = b
	e.HTTPErrorHandler = errcodes.NewHandler().Handle

	req := httptest.NewRequest(method, path, strings.NewReader(payload))
	if payload != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rr := httptest.NewRecorder()
	return e.NewContext(req, rr), rr
}

func TestHandlerCreate_EchoesISBN(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	h := &handler{bookService: NewService(db)}

	c, rr := newBooksTestContext(t, http.MethodPost, "/books", `{"isbn":"0764576593","title":"JavaScript for dummies","pages":387,"year":2005}`)

	err := h.create(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rr.Code)

	var created models.Book
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))
	assert.Equal(t, "0764576593", created.ISBN)
}

func TestHandlerCreate_InvalidISBN(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	h := &handler{bookService: NewService(db)}

	c, _ := newBooksTestContext(t, http.MethodPost, "/books", `{"isbn":"not-an-isbn","title":"JavaScript for dummies"}`)

	err := h.create(c)
	require.Error(t, err)

	var codeErr *errcodes.Error
	require.ErrorAs(t, err, &codeErr)
	assert.Equal(t, "validation_error", codeErr.Code)
	assert.Contains(t, codeErr.Message, "isbn")
}

func TestHandlerList_FlattenedRows(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc := NewService(db)
	h := &handler{bookService: svc}
	ctx := context.Background()

	category := seedCategory(ctx, t, db, "Programming")
	author := seedAuthor(ctx, t, db, "Emily", "Vander")
	require.NoError(t, svc.CreateBook(ctx, &models.Book{
		ISBN:       "0764576593",
		Title:      "JavaScript for dummies",
		CategoryID: &category.ID,
	}))
	seedLink(ctx, t, db, author.ID, "0764576593")

	c, rr := newBooksTestContext(t, http.MethodGet, "/books?isbn=0764576593", "")

	err := h.list(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rr.Code)

	var rows []BookRow
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "Programming", rows[0].Category)
	assert.Equal(t, "Vander, Emily", rows[0].Author)
}

func TestHandlerUpdate_NoContent(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc := NewService(db)
	h := &handler{bookService: svc}
	ctx := context.Background()

	require.NoError(t, svc.CreateBook(ctx, &models.Book{ISBN: "0764576593", Title: "JavaScript for dummies"}))

	c, rr := newBooksTestContext(t, http.MethodPut, "/books/0764576593", `{"title":"JavaScript for dummies, 4th Edition"}`)
	c.SetPath("/books/:isbn")
	c.SetParamNames("isbn")
	c.SetParamValues("0764576593")

	err := h.update(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, rr.Code)
}

func TestHandlerDelete_NotFoundIs400(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	h := &handler{bookService: NewService(db)}

	c, _ := newBooksTestContext(t, http.MethodDelete, "/books/0000000000", "")
	c.SetPath("/books/:isbn")
	c.SetParamNames("isbn")
	c.SetParamValues("0000000000")

	err := h.deleteBook(c)
	require.Error(t, err)

	var codeErr *errcodes.Error
	require.ErrorAs(t, err, &codeErr)
	assert.Equal(t, http.StatusBadRequest, codeErr.HTTPCode)
	assert.Equal(t, "Book not found.", codeErr.Message)
}
