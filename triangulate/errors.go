package triangulate

import "github.com/pkg/errors"

// Threading errors up and down every recursive operation in the trapezoidal
// decomposition would add a ton of complexity to the code. Instead, the
// engine panics with one of the sentinels below, and the public Triangulate
// entry point recovers and converts it to a returned error. Any other panic
// (a genuine bug) is allowed to propagate.

// ErrorKind distinguishes the three kinds of failure Triangulate can report.
type ErrorKind int

const (
	// InvalidInput: malformed polygonal input, surfaced to the caller.
	InvalidInput ErrorKind = iota
	// Cancelled: the caller's context was cancelled mid-triangulation.
	Cancelled
	// InternalInvariantViolation: a detected breach of trapezoid adjacency
	// symmetry or DAG structural integrity. Indicates a bug in the engine
	// itself, not bad input.
	InternalInvariantViolation
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidInput:
		return "InvalidInput"
	case Cancelled:
		return "Cancelled"
	case InternalInvariantViolation:
		return "InternalInvariantViolation"
	default:
		return "Unknown"
	}
}

// TriangulateError is the typed error surfaced by Triangulate.
type TriangulateError struct {
	Kind ErrorKind
	err  error
}

func (e *TriangulateError) Error() string {
	return e.Kind.String() + ": " + e.err.Error()
}

func (e *TriangulateError) Unwrap() error {
	return e.err
}

// IsKind reports whether err is a *TriangulateError of the given kind. It
// checks err itself only; errors wrapping a *TriangulateError do not match.
func IsKind(err error, kind ErrorKind) bool {
	te, ok := err.(*TriangulateError)
	return ok && te.Kind == kind
}

func invalidInputf(format string, args ...interface{}) error {
	return &TriangulateError{Kind: InvalidInput, err: errors.Errorf(format, args...)}
}

func cancelledf(format string, args ...interface{}) error {
	return &TriangulateError{Kind: Cancelled, err: errors.Errorf(format, args...)}
}

func invariantViolationf(format string, args ...interface{}) error {
	return &TriangulateError{Kind: InternalInvariantViolation, err: errors.Errorf(format, args...)}
}

// fatalf panics with an InternalInvariantViolation. Used throughout the DAG
// and trapezoid fabric for conditions that should be structurally
// impossible; reaching one means the engine's invariants broke, not that the
// caller gave bad input.
func fatalf(format string, args ...interface{}) {
	panic(invariantViolationf(format, args...))
}

// recoverTriangulatePanic converts a panic carrying a *TriangulateError into
// a returned error, and re-panics anything else (a genuine bug).
func recoverTriangulatePanic(r interface{}) error {
	if r == nil {
		return nil
	}
	if te, ok := r.(*TriangulateError); ok {
		return te
	}
	panic(r)
}
