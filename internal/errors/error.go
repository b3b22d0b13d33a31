package errors

import (
	"fmt"
)

// Category represents the type of error.
type Category string

const (
	CategoryElement   Category = "element"
	CategoryAttribute Category = "attribute"
	CategoryRule      Category = "rule"
	CategoryConfig    Category = "config"
	CategoryCLI       Category = "cli"
)

// Error codes.
const (
	CodeBlankTag           = "T001"
	CodeExistentAttribute  = "T002"
	CodeUndefinedAttribute = "T003"
	CodeInvalidRule        = "T004"
	CodeUnknownAccessor    = "T005"
	CodeConfigInvalid      = "T010"
	CodeConfigNotFound     = "T011"
	CodeInvalidArgument    = "T020"
)

// Sentinels for errors.Is matching. A *TagError matches a sentinel when
// their codes are equal.
var (
	ErrBlankTag           = &TagError{Code: CodeBlankTag}
	ErrExistentAttribute  = &TagError{Code: CodeExistentAttribute}
	ErrUndefinedAttribute = &TagError{Code: CodeUndefinedAttribute}
	ErrInvalidRule        = &TagError{Code: CodeInvalidRule}
	ErrConfigInvalid      = &TagError{Code: CodeConfigInvalid}
	ErrConfigNotFound     = &TagError{Code: CodeConfigNotFound}
	ErrInvalidArgument    = &TagError{Code: CodeInvalidArgument}
)

// Location points at a column inside the rule or HTML input that caused
// the error.
type Location struct {
	Input  string
	Column int
}

// String returns the location as a formatted string.
func (l *Location) String() string {
	if l == nil {
		return ""
	}
	if l.Column > 0 {
		return fmt.Sprintf("%q:%d", l.Input, l.Column)
	}
	return fmt.Sprintf("%q", l.Input)
}

// TagError is a structured error with a code, the offending subject and
// an optional input location.
type TagError struct {
	// Code is a unique error identifier (e.g., "T001").
	Code string

	// Category is the error type (element, attribute, rule, ...).
	Category Category

	// Message is a short description of the error.
	Message string

	// Subject is the tag, attribute key or rule segment at fault.
	Subject string

	// Detail is a longer explanation of the error.
	Detail string

	// Location is the position in the input where the error was detected.
	Location *Location

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *TagError) Error() string {
	msg := e.Message
	if e.Subject != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Subject)
	}
	if e.Code != "" {
		return fmt.Sprintf("%s: %s", e.Code, msg)
	}
	return msg
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *TagError) Unwrap() error {
	return e.Wrapped
}

// Is reports whether target is a *TagError with the same code.
// UnknownAccessor belongs to the UndefinedAttribute family.
func (e *TagError) Is(target error) bool {
	t, ok := target.(*TagError)
	if !ok || t.Code == "" {
		return false
	}
	if t.Code == e.Code {
		return true
	}
	return e.Code == CodeUnknownAccessor && t.Code == CodeUndefinedAttribute
}

// WithSubject records the tag, key or segment the error is about.
func (e *TagError) WithSubject(s string) *TagError {
	e.Subject = s
	return e
}

// WithInput records the input and the 1-based column of the error.
func (e *TagError) WithInput(input string, column int) *TagError {
	e.Location = &Location{Input: input, Column: column}
	return e
}

// WithSuggestion adds a fix suggestion to the error.
func (e *TagError) WithSuggestion(s string) *TagError {
	e.Suggestion = s
	return e
}

// WithDetail replaces the registered explanation.
func (e *TagError) WithDetail(d string) *TagError {
	e.Detail = d
	return e
}

// Wrap wraps another error.
func (e *TagError) Wrap(err error) *TagError {
	e.Wrapped = err
	return e
}

// New creates a TagError from a registered error code.
func New(code string) *TagError {
	template, ok := registry[code]
	if !ok {
		return &TagError{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &TagError{
		Code:     code,
		Category: template.Category,
		Message:  template.Message,
		Detail:   template.Detail,
	}
}

// Newf creates a new TagError with a formatted message (no code).
func Newf(category Category, format string, args ...any) *TagError {
	return &TagError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps a standard error in a TagError.
func FromError(err error, code string) *TagError {
	if err == nil {
		return nil
	}
	if te, ok := err.(*TagError); ok {
		return te
	}
	return New(code).Wrap(err)
}

// CodeOf returns the code of the first TagError in err's chain, or "".
func CodeOf(err error) string {
	for err != nil {
		if te, ok := err.(*TagError); ok {
			return te.Code
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return ""
		}
		err = u.Unwrap()
	}
	return ""
}
