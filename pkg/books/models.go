package books

// BookRow is the flattened listing projection: the book's own fields plus its
// category name and one linked author per row. A book with several authors
// appears once per author link; a book with none appears once with an empty
// author.
type BookRow struct {
	ISBN     string `bun:"isbn" json:"isbn"`
	Title    string `bun:"title" json:"title"`
	Pages    *int   `bun:"pages" json:"pages,omitempty"`
	Year     *int   `bun:"year" json:"year,omitempty"`
	Category string `bun:"category" json:"category"`
	Author   string `bun:"author" json:"author"`
}
