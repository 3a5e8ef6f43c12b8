package extension

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrInvalidInvocation is the cause of every schema error
var ErrInvalidInvocation = errors.New("invalid invocation")

// SchemaError reports an invocation whose shape does not fit the declared spec
type SchemaError struct {
	Extension string // extension name as invoked
	Field     string // "name", "arg", "body" or "options.<key>"
	Message   string
}

func (e *SchemaError) Error() string {
	if e.Extension != "" {
		return fmt.Sprintf("%s: %s %s", e.Extension, e.Field, e.Message)
	}
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

func (e *SchemaError) Unwrap() error {
	return ErrInvalidInvocation
}

func schemaErrorf(ext, field, format string, args ...interface{}) *SchemaError {
	return &SchemaError{
		Extension: ext,
		Field:     field,
		Message:   fmt.Sprintf(format, args...),
	}
}
