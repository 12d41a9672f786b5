// Package driver implements the shift-reduce parse driver (spec.md §9):
// given a built ACTION/GOTO table and a token stream, it walks the
// standard LR driving algorithm and returns the full configuration trace,
// stopping at the first error rather than attempting recovery.
package driver

import (
	"fmt"

	"github.com/emirpasic/gods/stacks/linkedliststack"

	"github.com/grachale/lr-parser-generator/internal/lrcore/diag"
	"github.com/grachale/lr-parser-generator/internal/lrcore/grammar"
	"github.com/grachale/lr-parser-generator/internal/lrcore/lrtable"
	"github.com/grachale/lr-parser-generator/internal/lrcore/symbols"
	"github.com/grachale/lr-parser-generator/internal/util"
)

// Configuration is one step of the driver's configuration trace: the
// state stack, the matched-symbol stack, and the remaining input, all as
// they stood after Action was applied.
type Configuration struct {
	States    []int
	Symbols   []string
	Remaining []string
	Action    string
}

// Driver runs the shift-reduce algorithm against a built table. It holds
// no input-specific state between calls to Parse, so one Driver can be
// reused across parses of the same table.
type Driver struct {
	g       *grammar.Grammar
	table   *lrtable.Table
	tracers []func(string)
}

// New builds a Driver for the given grammar and table. g must be the same
// (augmented) grammar the table was built from.
func New(g *grammar.Grammar, table *lrtable.Table) *Driver {
	return &Driver{g: g, table: table}
}

// RegisterTraceListener adds a callback invoked with a human-readable
// description of every driver step — the ambient substitute for a
// structured logger in this package, matching the teacher's notifyTrace
// pattern of pushing text to registered listeners rather than writing
// through a logging facade.
func (d *Driver) RegisterTraceListener(listener func(string)) {
	d.tracers = append(d.tracers, listener)
}

func (d *Driver) trace(format string, args ...any) {
	if len(d.tracers) == 0 {
		return
	}
	msg := fmt.Sprintf(format, args...)
	for _, t := range d.tracers {
		t(msg)
	}
}

// Parse runs the shift-reduce driver over tokens (terminal names, without
// a trailing end marker — Parse appends it). It returns the full
// configuration trace and whether the parse accepted. On a failed parse,
// the final Configuration's Action describes the error and the trace
// stops there: no error-recovery is attempted (spec.md Non-goals).
func (d *Driver) Parse(tokens []string) ([]Configuration, bool) {
	input := append(append([]string(nil), tokens...), symbols.EndMarker)
	pos := 0

	states := linkedliststack.New()
	states.Push(0)
	var symbolStack []string

	var trace []Configuration
	snapshot := func(action string) {
		trace = append(trace, Configuration{
			States:    statesSlice(states),
			Symbols:   append([]string(nil), symbolStack...),
			Remaining: append([]string(nil), input[pos:]...),
			Action:    action,
		})
	}
	snapshot("start")

	for {
		top, _ := states.Peek()
		state := top.(int)
		lookahead := input[pos]

		act, ok := d.table.Action[lrtable.ActionKey{State: state, Terminal: lookahead}]
		if !ok {
			d.trace("no action for state %d on %q", state, lookahead)
			detail := fmt.Sprintf("state %d, token %q; expected %s", state, lookahead, d.expectedAt(state))
			snapshot(fmt.Sprintf("error: %s", diag.New("parse", diag.ErrNoAction, detail)))
			return trace, false
		}

		switch act.Kind {
		case lrtable.Shift:
			d.trace("shift %q, goto state %d", lookahead, act.NextState)
			states.Push(act.NextState)
			symbolStack = append(symbolStack, lookahead)
			pos++
			snapshot(fmt.Sprintf("shift %s", lookahead))

		case lrtable.Reduce:
			p, _ := d.g.Production(act.Production)
			d.trace("reduce by %s", p.String())

			for i := 0; i < p.Len(); i++ {
				states.Pop()
				symbolStack = symbolStack[:len(symbolStack)-1]
			}

			t, _ := states.Peek()
			gotoState, ok := d.table.Goto[lrtable.GotoKey{State: t.(int), NonTerminal: p.LHS}]
			if !ok {
				d.trace("no goto for state %d on %q", t.(int), p.LHS)
				snapshot(fmt.Sprintf("error: %s", diag.New("parse", diag.ErrMissingGoto, fmt.Sprintf("state %d, non-terminal %q", t.(int), p.LHS))))
				return trace, false
			}

			states.Push(gotoState)
			symbolStack = append(symbolStack, p.LHS)
			snapshot(fmt.Sprintf("reduce %s", p.String()))

		case lrtable.Accept:
			d.trace("accept")
			snapshot("accept")
			return trace, true
		}
	}
}

// expectedAt lists the terminals that do have an ACTION entry in state,
// for the error message produced when the actual lookahead doesn't.
// Mirrors the teacher's getExpectedString/findExpectedTokens pair, which
// builds the same "expected a, b, and c" message from the table instead
// of a static grammar-level guess.
func (d *Driver) expectedAt(state int) string {
	var expected []string
	for _, terminal := range append(d.g.Terminals(), symbols.EndMarker) {
		if _, ok := d.table.Action[lrtable.ActionKey{State: state, Terminal: terminal}]; ok {
			expected = append(expected, terminal)
		}
	}
	if len(expected) == 0 {
		return "nothing (unreachable state)"
	}
	return util.MakeTextList(expected)
}

func statesSlice(s *linkedliststack.Stack) []int {
	values := s.Values()
	out := make([]int, len(values))
	// gods stacks iterate top-first; reverse to present bottom-to-top,
	// matching the order states were pushed in.
	for i, v := range values {
		out[len(values)-1-i] = v.(int)
	}
	return out
}
