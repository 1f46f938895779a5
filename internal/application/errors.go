package application

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrInvalidCredentials is returned for both a wrong password and an
// unknown email, so the two cases are indistinguishable to the caller.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ValidationError carries field-level messages for input that passed JSON
// binding but failed a semantic rule (dangling foreign key, out-of-range
// value, duplicate email). Handlers translate it to a 422.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s %s", k, e.Fields[k]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func invalidField(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: msg}}
}
