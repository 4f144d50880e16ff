package authors

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/foliobooks/folio/pkg/binder"
	"github.com/foliobooks/folio/pkg/errcodes"
	"github.com/foliobooks/folio/pkg/models"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthorsTestContext(t *testing.T, method, path, payload string) (echo.Context, *httptest.ResponseRecorder) {
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

func TestHandlerCreate_ReturnsGeneratedID(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	h := &handler{authorService: NewService(db)}

	c, rr := newAuthorsTestContext(t, http.MethodPost, "/authors", `{"firstname":"Emily","surname":"Vander","surname2":"Veer"}`)

	err := h.create(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rr.Code)

	var created models.Author
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))
	assert.Positive(t, created.ID)
	assert.Equal(t, "Emily", created.FirstName)
}

func TestHandlerCreate_MissingFirstName(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	h := &handler{authorService: NewService(db)}

	c, _ := newAuthorsTestContext(t, http.MethodPost, "/authors", `{"surname":"Vander"}`)

	err := h.create(c)
	require.Error(t, err)

	var codeErr *errcodes.Error
	require.ErrorAs(t, err, &codeErr)
	assert.Equal(t, http.StatusBadRequest, codeErr.HTTPCode)
	assert.Equal(t, "validation_error", codeErr.Code)
	assert.Contains(t, codeErr.Message, "firstname")
}

func TestHandlerList_DefaultsToWildcard(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc := NewService(db)
	h := &handler{authorService: svc}
	ctx := context.Background()

	require.NoError(t, svc.CreateAuthor(ctx, &models.Author{FirstName: "Emily", Surname: "Vander"}))
	require.NoError(t, svc.CreateAuthor(ctx, &models.Author{FirstName: "Brian", Surname: "Kernighan"}))

	c, rr := newAuthorsTestContext(t, http.MethodGet, "/authors", "")

	err := h.list(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rr.Code)

	var listed []models.Author
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &listed))
	assert.Len(t, listed, 2)
}

func TestHandlerUpdate_NoContent(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	svc := NewService(db)
	h := &handler{authorService: svc}
	ctx := context.Background()

	author := &models.Author{FirstName: "Emily", Surname: "Vander"}
	require.NoError(t, svc.CreateAuthor(ctx, author))

	c, rr := newAuthorsTestContext(t, http.MethodPut, "/authors/"+strconv.Itoa(author.ID), `{"firstname":"Em","surname":"VanderVeer"}`)
	c.SetPath("/authors/:id")
	c.SetParamNames("id")
	c.SetParamValues(strconv.Itoa(author.ID))

	err := h.update(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, rr.Code)
}

func TestHandlerDelete_NotFoundIs400(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	h := &handler{authorService: NewService(db)}

	c, _ := newAuthorsTestContext(t, http.MethodDelete, "/authors/999", "")
	c.SetPath("/authors/:id")
	c.SetParamNames("id")
	c.SetParamValues("999")

	err := h.deleteAuthor(c)
	require.Error(t, err)

	var codeErr *errcodes.Error
	require.ErrorAs(t, err, &codeErr)
	assert.Equal(t, http.StatusBadRequest, codeErr.HTTPCode)
	assert.Equal(t, "Author not found.", codeErr.Message)
}
