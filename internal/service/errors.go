package service

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEventNotFound           = errors.New("chef event not found")
	ErrEventNotPending         = errors.New("chef event is not pending")
	ErrTemplateProductNotFound = errors.New("template product not found")
	ErrMenuNotFound            = errors.New("menu not found")
)

// ValidationError carries field-level messages back to the handler, which
// turns them into a 400 with a structured errors map.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, msg))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) add(field, msg string) {
	if e.Fields == nil {
		e.Fields = map[string]string{}
	}
	e.Fields[field] = msg
}

func (e *ValidationError) ok() bool {
	return len(e.Fields) == 0
}
