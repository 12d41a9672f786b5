package automaton

import (
	"sort"

	"github.com/cnf/structhash"

	"github.com/grachale/lr-parser-generator/internal/lrcore/diag"
	"github.com/grachale/lr-parser-generator/internal/lrcore/item"
)

// MergeLALR collapses a canonical LR(1) collection into its LALR(1)
// collection (spec.md §4.6): states are grouped by their LR(0) kernel
// (production+dot, ignoring lookahead); each group becomes one merged
// state whose items carry the union of the lookaheads contributed by
// every state in the group; outgoing edges are rewritten to point at the
// merged states.
//
// It returns ErrInconsistentMerge if two states placed in the same group
// disagree about where a given symbol's transition leads once transitions
// are rewritten in terms of merged state IDs — i.e. the merge is not
// well-defined as a single deterministic automaton.
func MergeLALR(col *Collection) (*Collection, error) {
	groupOf := make(map[int]int) // original state ID -> group ID
	var groupKeys []string
	keyToGroup := make(map[string]int)

	for _, st := range col.States {
		key := kernelOnlyKey(st.Items)
		gid, ok := keyToGroup[key]
		if !ok {
			gid = len(groupKeys)
			keyToGroup[key] = gid
			groupKeys = append(groupKeys, key)
		}
		groupOf[st.ID] = gid
	}

	merged := make([]ItemSet, len(groupKeys))
	for _, st := range col.States {
		gid := groupOf[st.ID]
		merged[gid] = mergeInto(merged[gid], gid, st.Items)
	}
	for gid := range merged {
		sortItems(merged[gid].Items)
	}

	newCol := &Collection{States: merged, Edges: make(map[GotoEdge]int)}
	for edge, target := range col.Edges {
		newEdge := GotoEdge{From: groupOf[edge.From], Symbol: edge.Symbol}
		newTarget := groupOf[target]
		if existing, ok := newCol.Edges[newEdge]; ok && existing != newTarget {
			return nil, diag.New("merge LALR", diag.ErrInconsistentMerge, newEdge.Symbol)
		}
		newCol.Edges[newEdge] = newTarget
	}

	return newCol, nil
}

// mergeInto folds the items of one pre-merge state into a merged-state
// accumulator, unioning lookaheads for items with a shared kernel.
func mergeInto(acc ItemSet, id int, items []item.LR1) ItemSet {
	if acc.Items == nil {
		acc.ID = id
	}
	byKernel := make(map[item.Kernel]item.LR1, len(acc.Items))
	for _, it := range acc.Items {
		byKernel[it.Kernel] = it
	}
	for _, it := range items {
		if existing, ok := byKernel[it.Kernel]; ok {
			byKernel[it.Kernel] = existing.MergeLookahead(it)
		} else {
			byKernel[it.Kernel] = it
		}
	}
	acc.Items = acc.Items[:0]
	for _, it := range byKernel {
		acc.Items = append(acc.Items, it)
	}
	return acc
}

func sortItems(items []item.LR1) {
	sort.Slice(items, func(i, j int) bool {
		if items[i].Kernel.Prod != items[j].Kernel.Prod {
			return items[i].Kernel.Prod < items[j].Kernel.Prod
		}
		return items[i].Kernel.Dot < items[j].Kernel.Dot
	})
}

// kernelOnlyKey hashes just the (production, dot) pairs of an item set,
// discarding lookahead, so that states differing only in lookahead fall
// into the same LALR(1) group.
func kernelOnlyKey(items []item.LR1) string {
	kernels := make([]item.Kernel, len(items))
	for i, it := range items {
		kernels[i] = it.Kernel
	}
	sort.Slice(kernels, func(i, j int) bool {
		if kernels[i].Prod != kernels[j].Prod {
			return kernels[i].Prod < kernels[j].Prod
		}
		return kernels[i].Dot < kernels[j].Dot
	})
	hash, err := structhash.Hash(kernels, 1)
	if err != nil {
		panic("automaton: failed to hash kernel signature: " + err.Error())
	}
	return hash
}
