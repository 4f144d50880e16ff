package authors

import (
	"github.com/labstack/echo/v4"
	"github.com/uptrace/bun"
)

// RegisterRoutes registers author routes on the Echo instance.
func RegisterRoutes(e *echo.Echo, db *bun.DB) {
	h := &handler{authorService: NewService(db)}

	g := e.Group("/authors")
	g.GET("", h.list)
	g.GET("/:id", h.retrieve)
	g.POST("", h.create)
	g.PUT("/:id", h.update)
	g.DELETE("/:id", h.deleteAuthor)
}
