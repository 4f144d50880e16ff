package authors

type ListAuthorsQuery struct {
	FirstName string `query:"firstname" json:"firstname,omitempty" default:"%" validate:"max=128"`
	Surname   string `query:"surname" json:"surname,omitempty" default:"%" validate:"max=128"`
}

type CreateAuthorPayload struct {
	FirstName string  `json:"firstname" mod:"trim" validate:"required,max=128"`
	Surname   string  `json:"surname" mod:"trim" validate:"required,max=128"`
	Surname2  *string `json:"surname2,omitempty" mod:"trim" validate:"omitempty,max=128"`
}

// UpdateAuthorPayload fully replaces the author's fields; an omitted surname2
// clears the stored value.
type UpdateAuthorPayload struct {
	FirstName string  `json:"firstname" mod:"trim" validate:"required,max=128"`
	Surname   string  `json:"surname" mod:"trim" validate:"required,max=128"`
	Surname2  *string `json:"surname2,omitempty" mod:"trim" validate:"omitempty,max=128"`
}
