package migrations

import (
	"context"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"
)

func init() {
	up := func(_ context.Context, db *bun.DB) error {
		_, err := db.Exec(`
			CREATE TABLE authors (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
				updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
				first_name TEXT NOT NULL CHECK (length(first_name) <= 128),
				surname TEXT NOT NULL CHECK (length(surname) <= 128),
				surname2 TEXT CHECK (surname2 IS NULL OR length(surname2) <= 128)
			)
`)
		if err != nil {
			return errors.WithStack(err)
		}
		_, err = db.Exec(`
			CREATE TABLE categories (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
				updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
				name TEXT NOT NULL CHECK (length(name) <= 64)
			)
`)
		if err != nil {
			return errors.WithStack(err)
		}
		// Case-insensitive uniqueness on category names
		_, err = db.Exec(`CREATE UNIQUE INDEX ux_categories_name ON categories (name COLLATE NOCASE)`)
		if err != nil {
			return errors.WithStack(err)
		}
		// Book identity is the caller-supplied ISBN, not a generated id.
		_, err = db.Exec(`
			CREATE TABLE books (
				isbn TEXT PRIMARY KEY CHECK (length(isbn) <= 13),
				created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
				updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
				title TEXT NOT NULL CHECK (length(title) <= 256),
				pages INTEGER,
				year INTEGER,
				category_id INTEGER REFERENCES categories (id) ON DELETE SET NULL
			)
`)
		if err != nil {
			return errors.WithStack(err)
		}
		_, err = db.Exec(`CREATE INDEX ix_books_category_id ON books (category_id)`)
		if err != nil {
			return errors.WithStack(err)
		}
		_, err = db.Exec(`
			CREATE TABLE author_books (
				author_id INTEGER NOT NULL REFERENCES authors (id) ON DELETE CASCADE,
				isbn TEXT NOT NULL REFERENCES books (isbn) ON DELETE CASCADE,
				created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
				PRIMARY KEY (author_id, isbn)
			)
`)
		if err != nil {
			return errors.WithStack(err)
		}
		_, err = db.Exec(`CREATE INDEX ix_author_books_isbn ON author_books (isbn)`)
		return errors.WithStack(err)
	}

	down := func(_ context.Context, db *bun.DB) error {
		_, err := db.Exec("DROP TABLE IF EXISTS author_books")
		if err != nil {
			return errors.WithStack(err)
		}
		_, err = db.Exec("DROP TABLE IF EXISTS books")
		if err != nil {
			return errors.WithStack(err)
		}
		_, err = db.Exec("DROP TABLE IF EXISTS categories")
		if err != nil {
			return errors.WithStack(err)
		}
		_, err = db.Exec("DROP TABLE IF EXISTS authors")
		return errors.WithStack(err)
	}

	Migrations.MustRegister(up, down)
}
