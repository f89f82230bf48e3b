package pathops

import (
	"errors"
	"fmt"
)

var (
	ErrMalformed        = errors.New("malformed path data")
	ErrMissingContext   = errors.New("command without current point")
	ErrTooComplex       = errors.New("path too complex")
	ErrUnclosedBoundary = errors.New("unclosed boundary")
	ErrDegenerateInput  = errors.New("degenerate input")
	ErrInvalidOptions   = errors.New("invalid options")
)

type ParseErrorKind int

const (
	// Malformed is an unknown command letter, a malformed number or a
	// missing argument.
	Malformed ParseErrorKind = iota + 1
	// MissingContext is a drawing command that has no current point to
	// start from.
	MissingContext
)

func (k ParseErrorKind) sentinel() error {
	switch k {
	case Malformed:
		return ErrMalformed
	case MissingContext:
		return ErrMissingContext
	default:
		panic(fmt.Sprintf("unhandled case %d", int(k)))
	}
}

func (k ParseErrorKind) String() string {
	return k.sentinel().Error()
}

// ParseError is returned by [ParsePath] for path data that cannot be parsed.
type ParseError struct {
	Kind ParseErrorKind
	// Offset is the byte offset into the input at which the problem was
	// detected.
	Offset int
	Msg    string
}

func (err *ParseError) Error() string {
	return fmt.Sprintf("pathops: %s at offset %d: %s", err.Kind, err.Offset, err.Msg)
}

// Is reports whether target is the sentinel error for err's kind.
func (err *ParseError) Is(target error) bool {
	return target == err.Kind.sentinel()
}

func malformed(offset int, format string, args ...any) *ParseError {
	return &ParseError{Kind: Malformed, Offset: offset, Msg: fmt.Sprintf(format, args...)}
}

type GeometryErrorKind int

const (
	// TooComplex means that a safety bound in [Options] was exceeded.
	TooComplex GeometryErrorKind = iota + 1
	// UnclosedBoundary means that the boundary edges could not be stitched
	// into closed contours.
	UnclosedBoundary
	// DegenerateInput means that the input contains coordinates that aren't
	// finite.
	DegenerateInput
)

func (k GeometryErrorKind) sentinel() error {
	switch k {
	case TooComplex:
		return ErrTooComplex
	case UnclosedBoundary:
		return ErrUnclosedBoundary
	case DegenerateInput:
		return ErrDegenerateInput
	default:
		panic(fmt.Sprintf("unhandled case %d", int(k)))
	}
}

func (k GeometryErrorKind) String() string {
	return k.sentinel().Error()
}

// GeometryError is returned by [Simplify] when a path cannot be simplified.
type GeometryError struct {
	Kind GeometryErrorKind
	Msg  string
}

func (err *GeometryError) Error() string {
	return fmt.Sprintf("pathops: %s: %s", err.Kind, err.Msg)
}

// Is reports whether target is the sentinel error for err's kind.
func (err *GeometryError) Is(target error) bool {
	return target == err.Kind.sentinel()
}
