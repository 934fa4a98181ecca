// searchdriver.go
//
// Copyright (C) 2024 Vilhjálmur Þorsteinsson / Miðeind ehf.
//
// This file implements the Search Driver: best-first exploration of States
// via a max-priority queue, with pluggable priority/prune/rank policies.
// Grounded on original_source/scrabble/solver/scrabble_solver.py's
// ComputerPlayer._graph_search, _QueueItem, _get_start_states and
// _can_reach_placed_tiles.

package scrabble

import "container/heap"

// queueItem is one entry in the driver's priority queue. Ties in priority
// are broken by insertion order (seq), giving a deterministic exploration
// order as required by the concurrency model's ordering rule.
type queueItem struct {
	state    State
	priority float64
	seq      int
}

// stateQueue is a max-heap over queueItem, ordered by priority and, for
// ties, by insertion order. container/heap is a min-heap by construction;
// Less is inverted here so the highest-priority item pops first, rather
// than storing negated priorities as spec.md §9 suggests as an
// alternative -- either is equivalent, this is simply the more direct Go
// idiom for a max-heap.
type stateQueue []*queueItem

func (q stateQueue) Len() int { return len(q) }
func (q stateQueue) Less(i, j int) bool {
	if q[i].priority != q[j].priority {
		return q[i].priority > q[j].priority
	}
	return q[i].seq < q[j].seq
}
func (q stateQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }
func (q *stateQueue) Push(x any)   { *q = append(*q, x.(*queueItem)) }
func (q *stateQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}

// Driver runs the best-first search described in spec.md §4.6 against a
// Context, using the three supplied policies.
type Driver struct {
	Ctx      *Context
	Priority PriorityCalculator
	Pruner   PruningStrategy
	Ranker   RankingStrategy
}

// NewDriver constructs a Driver.
func NewDriver(ctx *Context, priority PriorityCalculator, pruner PruningStrategy, ranker RankingStrategy) *Driver {
	return &Driver{Ctx: ctx, Priority: priority, Pruner: pruner, Ranker: ranker}
}

// reachable reports whether, starting at p and stepping in dir, some point
// within steps hops touches an existing tile (or is the start square). It
// implements the conservative seed-keeping heuristic of spec.md §4.6: any
// seed that could eventually produce a terminal move must be kept.
func (d *Driver) reachable(p Point, dir Direction, steps int) bool {
	cur := p
	for i := 0; i <= steps; i++ {
		if !d.Ctx.Board.InBounds(cur) {
			return false
		}
		if d.Ctx.Board.PointTouchesTiles(cur) {
			return true
		}
		cur = cur.Move(dir)
	}
	return false
}

// seedStates enumerates the initial States: one per placeable empty square
// and axis whose reachability heuristic is satisfied.
func (d *Driver) seedStates() []State {
	board := d.Ctx.Board
	rackLen := len(d.Ctx.Rack.AsBytes())
	var seeds []State
	for x := 0; x < board.Width; x++ {
		for y := 0; y < board.Height; y++ {
			p := Point{X: x, Y: y}
			if !board.CanPlaceTileAt(p) {
				continue
			}
			for _, dir := range [2]Direction{Right, Down} {
				if !d.reachable(p, dir, rackLen) {
					continue
				}
				constraints, err := d.Ctx.ConstraintsAt(board, p)
				if err != nil {
					// Existing tiles around this seed do not form valid
					// affixes; the board was already inconsistent here.
					// Tolerated during seeding only: skip this seed.
					continue
				}
				seeds = append(seeds, State{
					LettersLeft: d.Ctx.Rack,
					Point:       p,
					Constraints: constraints,
					Direction:   dir,
					TouchesTile: board.PointTouchesTiles(p),
				})
			}
		}
	}
	return seeds
}

// Search runs the full best-first exploration over every seed and returns
// the winning Move. If no terminal state was ever produced, it returns an
// EXCHANGE move with no placed tiles.
func (d *Driver) Search() Move {
	best := d.runFrom(d.seedStates())
	if best == nil {
		return Move{Type: Exchange}
	}
	return best.Move
}

// runFrom runs the best-first loop starting from the given seed states
// only, returning the best terminal found (or nil). It is the shared core
// between the single-threaded Search and each worker in the optional pool
// (searchpool.go), which partitions seeds and calls this independently.
func (d *Driver) runFrom(seeds []State) *TerminalState {
	pq := &stateQueue{}
	heap.Init(pq)
	seq := 0
	push := func(s State) {
		heap.Push(pq, &queueItem{state: s, priority: d.Priority.Calculate(d.Ctx, s), seq: seq})
		seq++
	}
	for _, s := range seeds {
		push(s)
	}

	var best *TerminalState
	for pq.Len() > 0 {
		item := heap.Pop(pq).(*queueItem)
		terminals, children := item.state.GetChildStates(d.Ctx)
		for _, t := range terminals {
			if best == nil || d.Ranker.IsBetterThan(t, *best) {
				terminal := t
				best = &terminal
			}
		}
		for _, c := range children {
			if best != nil && d.Pruner.ShouldPrune(best, c) {
				continue
			}
			push(c)
		}
	}
	return best
}
