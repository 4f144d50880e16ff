package authorbooks

import (
	"github.com/labstack/echo/v4"
	"github.com/uptrace/bun"
)

// RegisterRoutes registers author-book link routes on the Echo instance.
func RegisterRoutes(e *echo.Echo, db *bun.DB) {
	h := &handler{authorBookService: NewService(db)}

	g := e.Group("/authorbooks")
	g.POST("", h.create)
	g.PUT("/:author_id/:isbn", h.update)
}
