package service

import "strings"

// ValidationError collects the boundary-validation messages for one write
// request. Nothing is persisted when it is returned.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Messages, "; ")
}
