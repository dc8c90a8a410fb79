package knowledge

import (
	"errors"
	"fmt"
)

// ErrInvalidCatalog is matched (via errors.Is) by every catalog validation failure.
var ErrInvalidCatalog = errors.New("invalid knowledge catalog")

// ValidationError describes one authoring problem found while building a
// KnowledgeBase. Topic is empty for catalog-level problems.
type ValidationError struct {
	Topic  string
	Field  string
	Reason string
	Err    error
}

func (e *ValidationError) Error() string {
	msg := e.Reason
	if e.Field != "" {
		msg = e.Field + ": " + msg
	}
	if e.Topic != "" {
		msg = fmt.Sprintf("topic %q: %s", e.Topic, msg)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return "catalog: " + msg
}

func (e *ValidationError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrInvalidCatalog, e.Err}
	}
	return []error{ErrInvalidCatalog}
}
