package authorbooks

type CreateAuthorBookPayload struct {
	AuthorID int    `json:"author_id" validate:"required,min=1"`
	ISBN     string `json:"isbn" mod:"trim" validate:"required,isbn"`
}
