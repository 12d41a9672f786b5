// Package diag holds the error and conflict vocabulary shared across the
// lrcore packages (spec'd in terms of "error kinds" and "table conflicts").
// It follows the teacher's server/serr pattern: a small set of sentinel
// errors created with errors.New, wrapped in a causal Error type that stays
// compatible with errors.Is/errors.As.
package diag

import "errors"

// Sentinel error kinds. Compare against these with errors.Is, never with
// direct equality, since callers receive them wrapped in an Error.
var (
	// ErrUndeclaredSymbol is returned when a production references a symbol
	// that was never declared as a terminal or non-terminal.
	ErrUndeclaredSymbol = errors.New("symbol not declared in grammar")

	// ErrReservedName is returned when "$" or "ε" is declared as a terminal
	// or non-terminal.
	ErrReservedName = errors.New("reserved symbol name used as a declared symbol")

	// ErrAlreadyAugmented is returned by a second call to Grammar.Augment.
	ErrAlreadyAugmented = errors.New("grammar already augmented")

	// ErrInconsistentMerge is returned by the LALR merge when two LR(1)
	// states sharing an LR(0) kernel disagree on an outgoing transition.
	ErrInconsistentMerge = errors.New("LALR merge found contradictory transitions for a single merged state")

	// ErrNoAction is recorded when the parse driver finds no ACTION entry
	// for the current state and lookahead token.
	ErrNoAction = errors.New("no ACTION table entry for this state and token")

	// ErrMissingGoto is recorded when a reduce finds no GOTO entry for the
	// uncovered state and the reduced non-terminal. Fatal to the parse.
	ErrMissingGoto = errors.New("no GOTO table entry for this state and non-terminal")
)

// Error is a typed error carrying both an explanatory message and the
// sentinel cause it wraps, so that errors.Is(err, diag.ErrUndeclaredSymbol)
// works regardless of how much context Error() prepends.
type Error struct {
	// Op names the operation that failed, e.g. "augment" or "build grammar".
	Op string
	// Detail is a human-readable elaboration, e.g. the offending symbol name.
	Detail string
	cause  error
}

// New creates an Error wrapping cause, the operation that produced it, and
// an optional detail string.
func New(op string, cause error, detail string) *Error {
	return &Error{Op: op, Detail: detail, cause: cause}
}

func (e *Error) Error() string {
	msg := e.Op + ": " + e.cause.Error()
	if e.Detail != "" {
		msg += " (" + e.Detail + ")"
	}
	return msg
}

// Unwrap exposes the wrapped sentinel error to errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.cause
}
