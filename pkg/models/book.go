package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Book is identified by its caller-supplied ISBN; there is no generated id.
type Book struct {
	bun.BaseModel `bun:"table:books,alias:b"`

	ISBN       string    `bun:"isbn,pk" json:"isbn"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
	Title      string    `bun:",nullzero" json:"title"`
	Pages      *int      `json:"pages,omitempty"`
	Year       *int      `json:"year,omitempty"`
	CategoryID *int      `json:"category_id,omitempty"`

	Category *Category `bun:"rel:belongs-to,join:category_id=id" json:"category,omitempty"`
}
