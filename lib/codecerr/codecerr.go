// Package codecerr defines the closed error taxonomy surfaced by every
// pack and unpack operation in binpack.
//
// # Overview
//
// There are exactly four failure kinds: InvalidInput (a pack precondition
// was violated), OutOfBounds (an unpack ran past the available bytes),
// Overlong (a variable-length integer decoded past its declared maximum
// bit-width), and IncompleteParse (a strict format unpack left bytes
// unconsumed). Every codec in lib/codec reports failures through the
// constructors in this package so that callers see one consistent error
// shape regardless of which codec failed.
//
// # Dependencies
//
// Standard library only (fmt). A hand-rolled error type (see Error)
// follows the spirit of dsnet/compress/brotli/error.go: a small concrete
// error struct with package-level constructors, no
// third-party error-wrapping library — the taxonomy is small and closed,
// and every field a caller would want (Kind, Consumed/Total) is already
// typed, so github.com/pkg/errors-style stack traces would add nothing a
// caller could act on.
package codecerr

import "fmt"

// Kind is the closed set of failure conditions a pack or unpack can raise.
type Kind int

const (
	// InvalidInput means a pack input violated the codec's precondition.
	InvalidInput Kind = iota
	// OutOfBounds means an unpack needed more bytes than remained.
	OutOfBounds
	// Overlong means a variable-length integer decoded past its declared
	// maximum bit-width.
	Overlong
	// IncompleteParse means a strict format unpack left bytes unconsumed.
	IncompleteParse
)

func (k Kind) String() string {
	switch k {
	case InvalidInput:
		return "invalid_input"
	case OutOfBounds:
		return "out_of_bounds"
	case Overlong:
		return "overlong"
	case IncompleteParse:
		return "incomplete_parse"
	default:
		return "unknown"
	}
}

// Error is the concrete error type raised by every codec in this module.
type Error struct {
	Kind Kind
	Msg  string

	// Consumed and Total are populated only for Kind == IncompleteParse.
	Consumed int
	Total    int
}

func (e *Error) Error() string {
	return e.Msg
}

// Is reports whether target is a *Error with the same Kind, so callers can
// write `errors.Is(err, codecerr.Overlong)`-style checks via errors.Is
// against a bare Kind-tagged sentinel created with New.
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == other.Kind
}

// New builds a bare *Error of the given kind carrying only a message, used
// as a comparison target for errors.Is.
func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

// NewInvalidInput reports that codec rejected a pack input; detail
// describes the violated precondition (e.g. wrong fixed-string length).
func NewInvalidInput(codec, detail string) error {
	return &Error{
		Kind: InvalidInput,
		Msg:  fmt.Sprintf("%s: invalid input: %s", codec, detail),
	}
}

// NewOutOfBounds reports that an unpack of the named type needed more
// bytes than remained in the buffer.
func NewOutOfBounds(what string) error {
	return &Error{
		Kind: OutOfBounds,
		Msg:  fmt.Sprintf("%s: out of bounds: insufficient bytes remaining", what),
	}
}

// NewOverlong reports that codec decoded a variable-length integer whose
// value exceeds the declared maximum bit-width.
func NewOverlong(codec string, maxBits int) error {
	return &Error{
		Kind: Overlong,
		Msg:  fmt.Sprintf("%s: overlong: decoded value exceeds declared %d-bit maximum", codec, maxBits),
	}
}

// NewIncompleteParse reports that a strict format unpack left bytes
// unconsumed after running every element codec.
func NewIncompleteParse(consumed, total int) error {
	return &Error{
		Kind:     IncompleteParse,
		Msg:      fmt.Sprintf("format: incomplete_parse: consumed %d of %d bytes", consumed, total),
		Consumed: consumed,
		Total:    total,
	}
}
