package store

import (
	"errors"

	"shoplist/internal/mutate"
)

// ErrBlankName is returned when the add dialog is confirmed with a name that
// is empty after trimming whitespace.
var ErrBlankName = errors.New("item name is required")

// NotFoundError is reported when an operation names an item id that is not
// in the list.
type NotFoundError = mutate.NotFoundError
