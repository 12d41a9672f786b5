package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/grachale/lr-parser-generator/internal/lrcore/grammar"
	"github.com/grachale/lr-parser-generator/internal/lrcore/symbols"
)

// GrammarFile is the parsed shape of a textual grammar source, ready to
// hand to lrgen.BuildGrammar. Parsing grammar text is a CLI-boundary
// concern, not part of the parser-generator core, which only ever sees
// already-structured terminals/non-terminals/productions (spec.md scopes
// grammar-text parsing out of the core).
type GrammarFile struct {
	Terminals    []string
	NonTerminals []string
	Productions  []grammar.ProductionInput
	Start        string
}

// ParseGrammarText reads a grammar description of the form:
//
//	%terminals: +, *, (, ), id
//	%nonterminals: E, T, F
//	%start: E
//
//	E -> E + T | T
//	T -> T * F | F
//	F -> ( E ) | id
//
// Blank lines and lines starting with "#" are ignored. An alternative
// consisting of the single symbol "ε" (or "eps") is parsed as an ε-body
// production — the empty right-hand side, never a retained "ε" slot
// (spec.md's internal representation).
func ParseGrammarText(src string) (*GrammarFile, error) {
	gf := &GrammarFile{}
	scanner := bufio.NewScanner(strings.NewReader(src))

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		switch {
		case strings.HasPrefix(line, "%terminals:"):
			gf.Terminals = splitSymbols(strings.TrimPrefix(line, "%terminals:"))
		case strings.HasPrefix(line, "%nonterminals:"):
			gf.NonTerminals = splitSymbols(strings.TrimPrefix(line, "%nonterminals:"))
		case strings.HasPrefix(line, "%start:"):
			gf.Start = strings.TrimSpace(strings.TrimPrefix(line, "%start:"))
		default:
			prods, err := parseProductionLine(line)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			gf.Productions = append(gf.Productions, prods...)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if gf.Start == "" && len(gf.Productions) > 0 {
		gf.Start = gf.Productions[0].LHS
	}

	return gf, nil
}

func splitSymbols(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func parseProductionLine(line string) ([]grammar.ProductionInput, error) {
	sides := strings.SplitN(line, "->", 2)
	if len(sides) != 2 {
		return nil, fmt.Errorf("expected 'LHS -> ALT1 | ALT2 | ...', got %q", line)
	}
	lhs := strings.TrimSpace(sides[0])
	if lhs == "" {
		return nil, fmt.Errorf("empty left-hand side in %q", line)
	}

	var prods []grammar.ProductionInput
	for _, alt := range strings.Split(sides[1], "|") {
		alt = strings.TrimSpace(alt)
		symbolsStr := strings.Fields(alt)

		if len(symbolsStr) == 1 && isEpsilonToken(symbolsStr[0]) {
			prods = append(prods, grammar.ProductionInput{LHS: lhs, RHS: nil})
			continue
		}

		prods = append(prods, grammar.ProductionInput{LHS: lhs, RHS: symbolsStr})
	}
	return prods, nil
}

func isEpsilonToken(s string) bool {
	return s == symbols.EpsilonMarker || strings.EqualFold(s, "eps") || strings.EqualFold(s, "epsilon")
}
