// SPDX-License-Identifier: MIT
//
// File: enumerate.go
// Role: Backtracking enumeration of independent sets.
// Determinism:
//   - Branching follows core.Graph.DegreeOrder (stable by id), so the
//     discovery order is a pure function of the graph.
//   - Only the truncation point depends on wall-clock time.

package exhaustive

import (
	"time"

	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/indset/core"
)

// enumerator holds the state of one Enumerate call.
type enumerator struct {
	// Policy
	budget      time.Duration
	useDeadline bool
	done        <-chan struct{}
	maxSets     int

	// Graph data
	snap  *core.Snapshot
	order []int

	// Search state
	start     time.Time
	cand      *bitset.BitSet
	seen      map[string]struct{}
	sets      [][]int
	nodes     int
	truncated bool
}

// Enumerate lists the independent sets of g reachable within the budget.
//
// Steps:
//  1. Resolve options; a non-positive budget returns an empty truncated result.
//  2. Freeze adjacency (Snapshot) and compute the degree order.
//  3. Run the include-loop DFS from position 0 with the empty candidate.
//
// Complexity: see package doc.
func Enumerate(g *core.Graph, opts ...Option) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGraph
	}

	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	if o.Budget <= 0 {
		if o.Logger != nil {
			o.Logger.Debug("enumeration skipped", "budget", o.Budget)
		}

		return Result{Sets: [][]int{}, Truncated: true}, nil
	}

	snap := g.Snapshot()
	e := &enumerator{
		budget:      o.Budget,
		useDeadline: o.Budget != Unbounded,
		done:        o.Ctx.Done(),
		maxSets:     o.MaxSets,
		snap:        snap,
		order:       g.DegreeOrder(),
		cand:        snap.NewSet(),
		seen:        make(map[string]struct{}),
		sets:        make([][]int, 0, 16),
	}
	e.start = time.Now()
	e.explore(0)

	res := Result{
		Sets:      e.sets,
		Truncated: e.truncated,
		Nodes:     e.nodes,
		Elapsed:   time.Since(e.start),
	}
	if o.Logger != nil {
		o.Logger.Debug("enumeration finished",
			"vertices", snap.Len(), "sets", len(res.Sets), "nodes", res.Nodes,
			"truncated", res.Truncated, "elapsed", res.Elapsed)
	}

	return res, nil
}

// explore is the include-loop at position pos.
func (e *enumerator) explore(pos int) {
	e.nodes++
	if e.exhausted() {
		return
	}
	e.record()
	if e.truncated {
		return
	}

	var (
		j int
		v uint
	)
	for j = pos; j < len(e.order); j++ {
		if !e.snap.Compatible(e.cand, e.order[j]) {
			continue
		}
		v = uint(e.order[j])
		e.cand.Set(v)
		e.explore(j + 1)
		e.cand.Clear(v)
		if e.truncated {
			return
		}
	}
}

// exhausted checks the deadline and the context, latching truncated.
func (e *enumerator) exhausted() bool {
	if e.truncated {
		return true
	}
	if e.useDeadline && time.Since(e.start) >= e.budget {
		e.truncated = true

		return true
	}
	select {
	case <-e.done:
		e.truncated = true

		return true
	default:
	}

	return false
}

// record stores the current candidate once, re-verifying independence.
func (e *enumerator) record() {
	if e.snap.Conflicts(e.cand) {
		return
	}
	key, err := e.cand.MarshalBinary()
	if err != nil {
		return
	}
	if _, dup := e.seen[string(key)]; dup {
		return
	}
	// A full cap only truncates once a further set actually turns up.
	if e.maxSets > 0 && len(e.sets) >= e.maxSets {
		e.truncated = true

		return
	}
	e.seen[string(key)] = struct{}{}
	e.sets = append(e.sets, core.Members(e.cand))
}
