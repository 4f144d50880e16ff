package models

import (
	"time"

	"github.com/uptrace/bun"
)

type Author struct {
	bun.BaseModel `bun:"table:authors,alias:a"`

	ID        int       `bun:",pk,nullzero" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	FirstName string    `bun:",nullzero" json:"firstname"`
	Surname   string    `bun:",nullzero" json:"surname"`
	Surname2  *string   `json:"surname2,omitempty"`
}
