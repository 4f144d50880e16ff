package models

import (
	"time"

	"github.com/uptrace/bun"
)

// AuthorBook links one Author to one Book. The creation timestamp is the only
// mutable field.
type AuthorBook struct {
	bun.BaseModel `bun:"table:author_books,alias:ab"`

	AuthorID  int       `bun:",pk" json:"author_id"`
	ISBN      string    `bun:"isbn,pk" json:"isbn"`
	CreatedAt time.Time `json:"created_at"`

	Author *Author `bun:"rel:belongs-to,join:author_id=id" json:"author,omitempty"`
	Book   *Book   `bun:"rel:belongs-to,join:isbn=isbn" json:"book,omitempty"`
}
