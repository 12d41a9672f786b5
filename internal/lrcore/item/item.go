// Package item defines the LR item model: a production together with a
// dot position, and (for the LR(1)/LALR(1) disciplines) a lookahead set
// (spec.md §4.4 "Items"). Items are addressed by production ID rather than
// by a reparsed "NONTERM -> ALPHA . BETA" string, since the grammar has
// already numbered every production by the time items are built.
package item

import (
	"fmt"
	"strings"

	"github.com/grachale/lr-parser-generator/internal/lrcore/grammar"
	"github.com/grachale/lr-parser-generator/internal/util"
)

// Kernel is a dotted production: production Prod with the dot sitting
// before RHS[Dot]. Dot == len(RHS) means the dot is at the end (a reduce
// item).
type Kernel struct {
	Prod int
	Dot  int
}

// Equal reports whether k and o refer to the same production and dot
// position.
func (k Kernel) Equal(o Kernel) bool {
	return k.Prod == o.Prod && k.Dot == o.Dot
}

// String renders a kernel against g, e.g. "E -> E . + T".
func (k Kernel) String(g *grammar.Grammar) string {
	p, ok := g.Production(k.Prod)
	if !ok {
		return fmt.Sprintf("<invalid production %d>", k.Prod)
	}
	left := strings.Join(p.RHS[:k.Dot], " ")
	right := strings.Join(p.RHS[k.Dot:], " ")
	if left != "" {
		left += " "
	}
	if right != "" {
		right = " " + right
	}
	return fmt.Sprintf("%s -> %s.%s", p.LHS, left, right)
}

// AtEnd reports whether the dot sits after the last RHS symbol, i.e. this
// kernel is ready to reduce.
func (k Kernel) AtEnd(g *grammar.Grammar) bool {
	p, ok := g.Production(k.Prod)
	return ok && k.Dot >= len(p.RHS)
}

// NextSymbol returns the grammar symbol immediately after the dot, and
// whether one exists (false for a reduce item).
func (k Kernel) NextSymbol(g *grammar.Grammar) (string, bool) {
	p, ok := g.Production(k.Prod)
	if !ok || k.Dot >= len(p.RHS) {
		return "", false
	}
	return p.RHS[k.Dot], true
}

// Advance returns the kernel with the dot moved one symbol to the right.
// Callers must check NextSymbol first; Advance does not bounds-check.
func (k Kernel) Advance() Kernel {
	return Kernel{Prod: k.Prod, Dot: k.Dot + 1}
}

// LR0 is another name for a bare kernel. The automaton package does not
// use it: it represents LR(0) and SLR(1) items as LR1 values with an
// empty lookahead set.
type LR0 = Kernel

// LR1 is a kernel paired with a lookahead set (spec.md: "Lookaheads must
// be compared as sets, not sequences. Two LR(1) items with the same
// kernel but different lookahead sets are different items until merged.").
type LR1 struct {
	Kernel    Kernel
	Lookahead util.StringSet
}

// NewLR1 builds an LR1 item from a kernel and an initial lookahead set.
// Lookahead is copied so the caller's set can be mutated independently.
func NewLR1(k Kernel, lookahead util.StringSet) LR1 {
	return LR1{Kernel: k, Lookahead: lookahead.Copy()}
}

// SameKernel reports whether two LR1 items share a kernel, ignoring
// lookahead. Used to find the LR1 items that should be lookahead-merged
// within a single item set, and to group LR(1) states into LALR(1) states
// by their LR(0) core.
func (it LR1) SameKernel(o LR1) bool {
	return it.Kernel.Equal(o.Kernel)
}

// Equal reports full structural equality: same kernel and the exact same
// lookahead set.
func (it LR1) Equal(o LR1) bool {
	return it.Kernel.Equal(o.Kernel) && it.Lookahead.Equal(o.Lookahead)
}

// MergeLookahead returns a copy of it with o's lookahead unioned in.
// Panics in spirit-only sense: callers are expected to have already
// checked SameKernel; if they haven't, the union is still well-defined,
// just not meaningful as an LR1 merge.
func (it LR1) MergeLookahead(o LR1) LR1 {
	return LR1{Kernel: it.Kernel, Lookahead: it.Lookahead.Union(o.Lookahead)}
}

// String renders an LR1 item against g, e.g. "E -> E . + T, {$}".
func (it LR1) String(g *grammar.Grammar) string {
	return fmt.Sprintf("%s, %s", it.Kernel.String(g), it.Lookahead.String())
}
