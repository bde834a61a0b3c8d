package validate

import (
	"errors"
	"strings"
)

var ErrEmptyIdentifier = errors.New("empty identifier")

// Identifier only rejects names that are empty once surrounding whitespace is removed. The remote directory
// is the authority on everything else, so length and charset are left unchecked.
func Identifier(identifier string) error {
	if strings.TrimSpace(identifier) == "" {
		return ErrEmptyIdentifier
	}
	return nil
}
