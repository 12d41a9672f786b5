// Package cli implements the outer CLI surface for lrgen: turning
// textual grammar input into a lrgen.Grammar, rendering the built tables
// back out, an interactive REPL, and a TOML config file. None of this is
// part of the parser-generator core itself (spec.md scopes tabular
// rendering and grammar-text parsing out of the core), but a usable
// command-line tool needs all four, built the way the teacher builds its
// own CLI-facing rendering and config code.
package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dekarrin/rosed"
	"github.com/pterm/pterm"

	lrgen "github.com/grachale/lr-parser-generator"
	"github.com/grachale/lr-parser-generator/internal/lrcore/lrtable"
)

// RenderActionGotoTable formats a parser's ACTION/GOTO tables as a single
// rosed table, one row per state, columns for every terminal then every
// non-terminal — the same grid layout the teacher's SLR table renderer
// uses, generalized to any of the four disciplines.
func RenderActionGotoTable(p *lrgen.Parser) string {
	g := p.Grammar()
	terms := append(append([]string(nil), g.Terminals()...), "$")
	nonTerms := g.NonTerminals()

	header := []string{"state", "|"}
	for _, t := range terms {
		header = append(header, "a:"+t)
	}
	header = append(header, "|")
	for _, nt := range nonTerms {
		header = append(header, "g:"+nt)
	}

	data := [][]string{header}

	states := p.ItemSets()
	sort.Slice(states, func(i, j int) bool { return states[i].ID < states[j].ID })

	for _, st := range states {
		row := []string{fmt.Sprintf("%d", st.ID), "|"}
		for _, t := range terms {
			act, ok := p.ActionTable()[lrtable.ActionKey{State: st.ID, Terminal: t}]
			row = append(row, renderAction(act, ok))
		}
		row = append(row, "|")
		for _, nt := range nonTerms {
			target, ok := p.GotoTable()[lrtable.GotoKey{State: st.ID, NonTerminal: nt}]
			cell := ""
			if ok {
				cell = fmt.Sprintf("%d", target)
			}
			row = append(row, cell)
		}
		data = append(data, row)
	}

	return rosed.
		Edit("").
		InsertTableOpts(0, data, 12, rosed.Options{
			TableHeaders:             true,
			NoTrailingLineSeparators: true,
		}).
		String()
}

func renderAction(act lrtable.Action, ok bool) string {
	if !ok {
		return ""
	}
	switch act.Kind {
	case lrtable.Shift:
		return fmt.Sprintf("s%d", act.NextState)
	case lrtable.Reduce:
		return fmt.Sprintf("r%d", act.Production)
	case lrtable.Accept:
		return "acc"
	default:
		return ""
	}
}

// RenderConflicts pretty-prints a parser's recorded table conflicts with
// pterm, one warning block per conflict, so a terminal user gets colored
// output for the conflicts a discipline could not resolve on its own.
func RenderConflicts(p *lrgen.Parser) string {
	conflicts := p.Conflicts()
	if len(conflicts) == 0 {
		return pterm.Success.Sprint("no table conflicts")
	}

	var sb strings.Builder
	for _, c := range conflicts {
		sb.WriteString(pterm.Warning.Sprintf("%s", c.String()))
		sb.WriteString("\n")
	}
	return sb.String()
}

// RenderTrace pretty-prints a driver configuration trace as a pterm
// bullet list, one entry per step.
func RenderTrace(lines []string) string {
	items := make([]pterm.BulletListItem, len(lines))
	for i, l := range lines {
		items[i] = pterm.BulletListItem{Level: 0, Text: l}
	}
	rendered, err := pterm.DefaultBulletList.WithItems(items).Srender()
	if err != nil {
		return strings.Join(lines, "\n")
	}
	return rendered
}
