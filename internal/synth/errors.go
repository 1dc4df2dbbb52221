package synth

import (
	"fmt"
	"strings"
)

// InvalidStateError reports a builder method called out of sequence.
type InvalidStateError struct {
	Op     string
	Reason string
}

func (e InvalidStateError) Error() string {
	return fmt.Sprintf("invalid builder state: %s: %s", e.Op, e.Reason)
}

// InvalidFormatError reports an unrecognized format literal.
type InvalidFormatError struct {
	Format string
}

func (e InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid format: %q", e.Format)
}

// MissingFieldError reports a build attempted before every required
// field was set.
type MissingFieldError struct {
	Fields []string
}

func (e MissingFieldError) Error() string {
	return fmt.Sprintf("build requires unset fields: %s", strings.Join(e.Fields, ", "))
}

// InvalidInputError reports unusable input, such as blank code.
type InvalidInputError struct {
	Reason string
}

func (e InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %s", e.Reason)
}
