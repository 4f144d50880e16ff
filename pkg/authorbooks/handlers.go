package authorbooks

import (
	"net/http"
	"strconv"

	"github.com/foliobooks/folio/pkg/errcodes"
	"github.com/foliobooks/folio/pkg/models"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type handler struct {
	authorBookService *Service
}

func (h *handler) create(c echo.Context) error {
	ctx := c.Request().Context()

	params := CreateAuthorBookPayload{}
	if err := c.Bind(&params); err != nil {
		return errors.WithStack(err)
	}

	link := &models.AuthorBook{
		AuthorID: params.AuthorID,
		ISBN:     params.ISBN,
	}
	if err := h.authorBookService.CreateAuthorBook(ctx, link); err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(c.JSON(http.StatusCreated, link))
}

func (h *handler) update(c echo.Context) error {
	ctx := c.Request().Context()
	authorID, err := strconv.Atoi(c.Param("author_id"))
	if err != nil {
		return errcodes.NotFound("Author book")
	}

	if err := h.authorBookService.UpdateAuthorBook(ctx, authorID, c.Param("isbn")); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}
