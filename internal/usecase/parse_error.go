package usecase

import (
	"errors"
	"fmt"
)

// ParseErrorKind separates payloads that can never be transformed from
// gaps the pipeline degrades around.

type ParseErrorKind string

const (
	// ParseErrorMalformed marks a payload that cannot be decoded or is
	// missing a mandatory field. Terminal for the raw event.
	ParseErrorMalformed ParseErrorKind = "MALFORMED_PAYLOAD"
	// ParseErrorGap marks a missing optional field. Parsers resolve gaps
	// internally with fallbacks; the kind exists so callers never have to
	// guess from message text.
	ParseErrorGap ParseErrorKind = "RECOVERABLE_GAP"
)

// ParseError is the failure type returned by source parsers.
type ParseError struct {
	Kind    ParseErrorKind
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Kind, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

func newMalformed(message string, cause error) *ParseError {
	return &ParseError{Kind: ParseErrorMalformed, Message: message, Cause: cause}
}

// IsMalformed reports whether err is a terminal parse failure.
func IsMalformed(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe) && pe.Kind == ParseErrorMalformed
}
