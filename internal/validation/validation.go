package validation

import (
	"fmt"
	"sort"
	"strings"
)

// FieldErrors maps input field names to client-fixable messages. Handlers
// render it as the "errors" object of a 400 response.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	parts := make([]string, 0, len(e))
	for field, msg := range e {
		parts = append(parts, fmt.Sprintf("%s: %s", field, msg))
	}
	sort.Strings(parts)
	return strings.Join(parts, "; ")
}

// Single builds a FieldErrors carrying one violation. Sequential
// validators fail fast, so one field at a time is the common case.
func Single(field, message string) FieldErrors {
	return FieldErrors{field: message}
}
