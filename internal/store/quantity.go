package store

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultQuantity is used when the quantity field is left blank, and by the
// editor when its quantity text does not parse.
const DefaultQuantity = 1

type QuantityError struct {
	Text string
}

func (e *QuantityError) Error() string {
	return fmt.Sprintf("invalid quantity %q: expected a whole number of zero or more", e.Text)
}

// ParseQuantity validates quantity text typed by the user.
// Blank text yields DefaultQuantity; otherwise the text must be a non-negative
// base-10 integer (an optional leading "+" is accepted).
func ParseQuantity(text string) (int, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return DefaultQuantity, nil
	}
	digits := strings.TrimPrefix(s, "+")
	if digits == "" {
		return 0, &QuantityError{Text: text}
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return 0, &QuantityError{Text: text}
		}
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		// Only overflow gets here.
		return 0, &QuantityError{Text: text}
	}
	return n, nil
}

// QuantityOrDefault is the editor's lenient form of ParseQuantity.
// The error is returned so callers can report what was replaced.
func QuantityOrDefault(text string) (int, error) {
	n, err := ParseQuantity(text)
	if err != nil {
		return DefaultQuantity, err
	}
	return n, nil
}
