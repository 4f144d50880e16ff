package categories

type CreateCategoryPayload struct {
	Name string `json:"name" mod:"trim" validate:"required,max=64"`
}
