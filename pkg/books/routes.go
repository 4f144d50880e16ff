package books

import (
	"github.com/labstack/echo/v4"
	"github.com/uptrace/bun"
)

// RegisterRoutes registers book routes on the Echo instance.
func RegisterRoutes(e *echo.Echo, db *bun.DB) {
	h := &handler{bookService: NewService(db)}

	g := e.Group("/books")
	g.GET("", h.list)
	g.GET("/:isbn", h.retrieve)
	g.POST("", h.create)
	g.PUT("/:isbn", h.update)
	g.DELETE("/:isbn", h.deleteBook)
}
