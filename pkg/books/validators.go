package books

type ListBooksQuery struct {
	ISBN  string `query:"isbn" json:"isbn,omitempty" default:"%" validate:"max=13"`
	Title string `query:"title" json:"title,omitempty" default:"%" validate:"max=256"`
}

type CreateBookPayload struct {
	ISBN       string `json:"isbn" mod:"trim" validate:"required,isbn"`
	Title      string `json:"title" mod:"trim" validate:"required,max=256"`
	Pages      *int   `json:"pages,omitempty" validate:"omitempty,min=1"`
	Year       *int   `json:"year,omitempty" validate:"omitempty,min=0"`
	CategoryID *int   `json:"category_id,omitempty" validate:"omitempty,min=1"`
}

// UpdateBookPayload fully replaces the book's mutable fields; omitted pages,
// year, and category_id clear the stored values.
type UpdateBookPayload struct {
	Title      string `json:"title" mod:"trim" validate:"required,max=256"`
	Pages      *int   `json:"pages,omitempty" validate:"omitempty,min=1"`
	Year       *int   `json:"year,omitempty" validate:"omitempty,min=0"`
	CategoryID *int   `json:"category_id,omitempty" validate:"omitempty,min=1"`
}
