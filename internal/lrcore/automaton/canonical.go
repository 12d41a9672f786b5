package automaton

import (
	"sort"

	"github.com/cnf/structhash"
	"github.com/emirpasic/gods/queues/linkedlistqueue"

	"github.com/grachale/lr-parser-generator/internal/lrcore/grammar"
	"github.com/grachale/lr-parser-generator/internal/lrcore/item"
	"github.com/grachale/lr-parser-generator/internal/util"
)

// Mode selects whether the canonical collection is built with lookahead
// propagation. LR0 and SLR1 disciplines use ModeNoLookahead (reduce
// actions are later sized from FOLLOW for SLR1, from every terminal plus $
// for LR0); LALR1 and LR1 use ModeLookahead.
type Mode int

const (
	ModeNoLookahead Mode = iota
	ModeLookahead
)

// ItemSet is one state of the canonical collection: a closed, sorted set
// of LR1 items (with empty lookaheads under ModeNoLookahead) and the
// dense integer ID assigned to it.
type ItemSet struct {
	ID    int
	Items []item.LR1
}

// GotoEdge names an outgoing transition of the collection: from state
// From, consuming symbol Symbol.
type GotoEdge struct {
	From   int
	Symbol string
}

// Collection is the canonical collection of item sets together with the
// goto transitions between them (spec.md §4.5).
type Collection struct {
	States []ItemSet
	Edges  map[GotoEdge]int
}

// kernelSignature is the content hashed to intern an item set to a state
// ID: the sorted list of (production, dot, lookahead) triples. Two item
// sets with the same signature are the same state.
type kernelSignature struct {
	Prod      int
	Dot       int
	Lookahead []string
}

func signatureOf(items []item.LR1) []kernelSignature {
	sig := make([]kernelSignature, len(items))
	for i, it := range items {
		sig[i] = kernelSignature{Prod: it.Kernel.Prod, Dot: it.Kernel.Dot, Lookahead: it.Lookahead.Elements()}
	}
	return sig
}

// internKey returns a stable content hash for an item set, used to decide
// whether a newly computed closure already has a state in the collection
// (spec.md: canonical interning of item sets to integer state IDs via a
// content hash over the sorted kernel list).
func internKey(items []item.LR1) string {
	hash, err := structhash.Hash(signatureOf(items), 1)
	if err != nil {
		// structhash only fails on unhashable types; our signature is a
		// plain slice of plain structs, so this is unreachable in practice.
		panic("automaton: failed to hash item set signature: " + err.Error())
	}
	return hash
}

// BuildCanonicalCollection runs the BFS worklist construction of the
// canonical collection of item sets (spec.md §4.5), starting from the
// closure of the augmented start item [S' -> .S, $]. g must already be
// augmented. first is required only for mode == ModeLookahead and may be
// nil otherwise.
func BuildCanonicalCollection(g *grammar.Grammar, first map[string]util.StringSet, mode Mode) *Collection {
	startKernel := item.Kernel{Prod: 0, Dot: 0}
	var startItems []item.LR1
	if mode == ModeLookahead {
		startItems = ClosureLR1(g, first, []item.LR1{item.NewLR1(startKernel, util.NewStringSet("$"))})
	} else {
		startItems = ClosureLR0(g, []item.LR1{item.NewLR1(startKernel, util.NewStringSet())})
	}

	col := &Collection{Edges: make(map[GotoEdge]int)}
	seen := make(map[string]int)

	addState := func(items []item.LR1) int {
		key := internKey(items)
		if id, ok := seen[key]; ok {
			return id
		}
		id := len(col.States)
		seen[key] = id
		col.States = append(col.States, ItemSet{ID: id, Items: items})
		return id
	}

	startID := addState(startItems)

	queue := linkedlistqueue.New()
	queue.Enqueue(startID)
	enqueued := map[int]bool{startID: true}

	symbols := allSymbols(g)

	for !queue.Empty() {
		v, _ := queue.Dequeue()
		stateID := v.(int)
		state := col.States[stateID]

		for _, sym := range symbols {
			moved := Goto(state.Items, sym, g)
			if len(moved) == 0 {
				continue
			}

			var closed []item.LR1
			if mode == ModeLookahead {
				closed = ClosureLR1(g, first, moved)
			} else {
				closed = ClosureLR0(g, moved)
			}

			targetID := addState(closed)
			col.Edges[GotoEdge{From: stateID, Symbol: sym}] = targetID

			if !enqueued[targetID] {
				enqueued[targetID] = true
				queue.Enqueue(targetID)
			}
		}
	}

	return col
}

// allSymbols returns every terminal and non-terminal in a stable order,
// used to enumerate candidate goto transitions out of a state.
func allSymbols(g *grammar.Grammar) []string {
	syms := append([]string(nil), g.Terminals()...)
	syms = append(syms, g.NonTerminals()...)
	sort.Strings(syms)
	return syms
}
