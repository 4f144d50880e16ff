package books

import (
	"net/http"

	"github.com/foliobooks/folio/pkg/models"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type handler struct {
	bookService *Service
}

func (h *handler) list(c echo.Context) error {
	ctx := c.Request().Context()

	params := ListBooksQuery{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	rows, err := h.bookService.ListBooks(ctx, ListBooksOptions{
		ISBN:  params.ISBN,
		Title: params.Title,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, rows))
}

func (h *handler) retrieve(c echo.Context) error {
	ctx := c.Request().Context()

	book, err := h.bookService.RetrieveBook(ctx, c.Param("isbn"))
	if err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusOK, book))
}

func (h *handler) create(c echo.Context) error {
	ctx := c.Request().Context()

	params := CreateBookPayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	book := &models.Book{
		ISBN:       params.ISBN,
		Title:      params.Title,
		Pages:      params.Pages,
		Year:       params.Year,
		CategoryID: params.CategoryID,
	}
	if err := h.bookService.CreateBook(ctx, book); err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusCreated, book))
}

func (h *handler) update(c echo.Context) error {
	ctx := c.Request().Context()

	params := UpdateBookPayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	book := &models.Book{
		ISBN:       c.Param("isbn"),
		Title:      params.Title,
		Pages:      params.Pages,
		Year:       params.Year,
		CategoryID: params.CategoryID,
	}
	if err := h.bookService.UpdateBook(ctx, book); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *handler) deleteBook(c echo.Context) error {
	ctx := c.Request().Context()

	if err := h.bookService.DeleteBook(ctx, c.Param("isbn")); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}
