package categories

import (
	"github.com/labstack/echo/v4"
	"github.com/uptrace/bun"
)

// RegisterRoutes registers category routes on the Echo instance.
func RegisterRoutes(e *echo.Echo, db *bun.DB) {
	h := &handler{categoryService: NewService(db)}

	g := e.Group("/categories")
	g.GET("", h.list)
	g.POST("", h.create)
	g.DELETE("/:id", h.deleteCategory)
}
