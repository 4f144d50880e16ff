package binder

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var isbnRE = regexp.MustCompile(`^[0-9]{9,12}[0-9Xx]$`)

// isbnValidator accepts ISBN-10 and ISBN-13 values without separators. No
// checksum verification is done; identity comes from the caller and the store
// only cares that it fits the column.
func isbnValidator(fl validator.FieldLevel) bool {
	return isbnRE.MatchString(fl.Field().String())
}
