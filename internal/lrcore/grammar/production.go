package grammar

import "strings"

// Production is one rule of a grammar: LHS -> RHS. An ε-body production
// (spec: "a rhs of [ε]") is represented as RHS == nil — epsilon is a
// property of an empty right-hand side, not a symbol occupying a slot in
// it. Any textual "ε" sentinel is resolved to the empty slice at the
// ingestion boundary, never carried inside the grammar.
type Production struct {
	LHS string
	RHS []string
	// ID is the dense production number assigned by Grammar.Augment. It is
	// -1 until augmentation has run.
	ID int
}

// IsEpsilon returns whether this production has an empty body.
func (p Production) IsEpsilon() bool {
	return len(p.RHS) == 0
}

// Len returns the number of symbols that a reduce against this production
// pops off the parse stack: 0 for an ε-body, len(RHS) otherwise.
func (p Production) Len() int {
	return len(p.RHS)
}

func (p Production) String() string {
	if p.IsEpsilon() {
		return p.LHS + " -> ε"
	}
	return p.LHS + " -> " + strings.Join(p.RHS, " ")
}

// Equal reports structural equality, ignoring ID.
func (p Production) Equal(o Production) bool {
	if p.LHS != o.LHS || len(p.RHS) != len(o.RHS) {
		return false
	}
	for i := range p.RHS {
		if p.RHS[i] != o.RHS[i] {
			return false
		}
	}
	return true
}

// key is the map key used by Grammar's production-number index: a
// collision-free string encoding of (LHS, RHS).
func (p Production) key() string {
	return p.LHS + "\x00" + strings.Join(p.RHS, "\x00")
}
