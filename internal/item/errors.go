package item

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrNotFound is returned by update/delete when no item carries the identity.
var ErrNotFound = errors.New("item not found")

// ValidationError reports a schema failure with per-field detail. The store
// never mutates state when returning one.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "invalid item data"
	}
	names := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		names = append(names, f)
	}
	sort.Strings(names)
	return fmt.Sprintf("invalid item data: %s", strings.Join(names, ", "))
}

func newValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string]string)}
}
