package scope

import (
	"errors"
	"log/slog"
	"strings"
)

// Predefined errors (sentinel values).
//
// ErrNameNotFound is the only kind treated as a "try the next candidate"
// signal by composite contexts. Every other kind propagates immediately.
var (
	ErrNameNotFound         = NewError("name not found")
	ErrFrozenBinding        = NewError("cannot modify bound method")
	ErrIllegalLocalMutation = NewError("cannot modify local variable through dynamic scope")
	ErrUnaddressableTarget  = NewError("target is not addressable")
	ErrInvalidValueType     = NewError("invalid value type")
	ErrExprCompile          = NewError("expression compilation failed")
	ErrExprEvaluate         = NewError("expression evaluation failed")
)

// Error represents an error with optional structured logging attributes.
// It implements both error and slog.LogValuer interfaces.
type Error struct {
	msg   string
	err   error       // Wrapped error (for errors.Unwrap)
	attrs []slog.Attr // Attributes for structured logging
}

// NewError creates a new Error with a message.
func NewError(msg string) *Error {
	return &Error{msg: msg}
}

// WrapError wraps a standard error into an Error.
func WrapError(err error) *Error {
	ee := &Error{}
	if errors.As(err, &ee) {
		return ee
	}

	return &Error{err: err}
}

// Error implements the error interface.
func (e *Error) Error() string {
	// Build error message using the first available format,
	// depending on which fields are set:
	//
	//   1. "<msg>: <err>" // base and wrapped error both set
	//   2. "<msg>"        // wrapped error is nil
	//   3. "<err>"        // base error message is empty
	//   4. ""             // no fields are set
	part := make([]string, 0, 2)

	if e.msg != "" {
		part = append(part, e.msg)
	}

	if e.err != nil {
		part = append(part, e.err.Error())
	}

	return strings.Join(part, ": ")
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *Error) Unwrap() error { return e.err }

// Is reports whether target is the same base error.
// Comparing the base message lets derived errors produced by [Error.With]
// and [Error.Wrap] still match their sentinel via errors.Is.
func (e *Error) Is(target error) bool {
	t := &Error{}
	if !errors.As(target, &t) {
		return false
	}

	return e.msg != "" && e.msg == t.msg
}

// LogValue implements slog.LogValuer for rich structured logging.
func (e *Error) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(e.attrs)+2)

	if e.msg != "" {
		attrs = append(attrs, slog.String("error", e.msg))
	}

	if e.err != nil {
		attrs = append(attrs, slog.String("cause", e.err.Error()))
	}

	return slog.GroupValue(append(attrs, e.attrs...)...)
}

// Wrap creates a new Error wrapping another error.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		msg:   e.msg,
		err:   err,
		attrs: e.attrs, // Share attrs
	}
}

// With adds attributes to the error for structured logging.
// This creates a new Error instance to maintain immutability.
func (e *Error) With(attrs ...slog.Attr) *Error {
	newAttrs := make([]slog.Attr, len(e.attrs)+len(attrs))
	copy(newAttrs, e.attrs)
	copy(newAttrs[len(e.attrs):], attrs)

	return &Error{
		msg:   e.msg,
		err:   e.err,
		attrs: newAttrs,
	}
}

// nameNotFound builds the NameNotFound failure for key.
// The description, when not empty, identifies the context that rejected the
// key so the failure is traceable after it escapes the outermost scope.
func nameNotFound(key, description string) *Error {
	err := ErrNameNotFound.With(slog.String("name", key))

	if description != "" {
		err = err.With(slog.String("scope", description))
	}

	return err
}

// frozenBinding builds the FrozenBinding failure for a method member of the
// named target type.
func frozenBinding(typeName, member string) *Error {
	return ErrFrozenBinding.With(
		slog.String("type", typeName),
		slog.String("method", member),
	)
}

// illegalLocalMutation builds the IllegalLocalMutation failure raised when
// generated code routes a true lexical local through the dynamic path.
func illegalLocalMutation(op, key string) *Error {
	return ErrIllegalLocalMutation.With(
		slog.String("op", op),
		slog.String("name", key),
	)
}
