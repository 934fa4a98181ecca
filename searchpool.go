// searchpool.go
//
// Copyright (C) 2024 Vilhjálmur Þorsteinsson / Miðeind ehf.
//
// This file implements the optional Worker Pool (spec.md §4.8): it
// partitions seed states by row and column index and runs an independent
// search over each partition concurrently, reducing the per-partition
// terminals via the ranking policy. This is purely an optimization;
// Driver.Search already gives a correct answer on its own. Grounded on
// original_source/scrabble_solver.py's _ScrabbleWorkerPool and, for Go
// concurrency idiom, on _examples/shiblon-entrogo/nursery/nursery.go
// (errgroup.WithContext) and the teacher's riddle.go worker dispatch.

package scrabble

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// MaxNumWorkers bounds the worker pool, matching the reference
// implementation's MAX_NUM_WORKERS.
const MaxNumWorkers = 32

// PoolDriver runs the same search as Driver, but spread across up to
// MaxWorkers goroutines, each owning a disjoint partition of the seed
// states and sharing the same read-only Context.
type PoolDriver struct {
	Driver     *Driver
	MaxWorkers int
}

// NewPoolDriver constructs a PoolDriver. maxWorkers is clamped to
// [1, MaxNumWorkers].
func NewPoolDriver(driver *Driver, maxWorkers int) *PoolDriver {
	if maxWorkers < 1 {
		maxWorkers = 1
	}
	if maxWorkers > MaxNumWorkers {
		maxWorkers = MaxNumWorkers
	}
	return &PoolDriver{Driver: driver, MaxWorkers: maxWorkers}
}

// partitionSeeds groups seeds by row (for RIGHT-axis seeds) or column (for
// DOWN-axis seeds) index modulo the worker count, so that each worker's
// searches stay spatially local. Empty partitions are dropped.
func partitionSeeds(seeds []State, numWorkers int) [][]State {
	buckets := make([][]State, numWorkers)
	for _, s := range seeds {
		key := s.Point.Y
		if s.Direction == Down {
			key = s.Point.X
		}
		idx := key % numWorkers
		if idx < 0 {
			idx += numWorkers
		}
		buckets[idx] = append(buckets[idx], s)
	}
	var out [][]State
	for _, b := range buckets {
		if len(b) > 0 {
			out = append(out, b)
		}
	}
	return out
}

// Search runs the search across the worker pool and returns the winning
// Move. Each worker reads Board/Dictionary/Context without mutation, so
// there is no shared mutable state across workers; results are merged via
// the ranker only after every worker has completed. Cancelling ctx stops
// dispatch of any worker not yet started and causes Search to return the
// context's error; workers already running are not interrupted mid-search,
// matching the "no suspension points within a worker" rule of the
// concurrency model.
func (pd *PoolDriver) Search(ctx context.Context) (Move, error) {
	seeds := pd.Driver.seedStates()
	partitions := partitionSeeds(seeds, pd.MaxWorkers)
	results := make([]*TerminalState, len(partitions))

	g, gctx := errgroup.WithContext(ctx)
	for i, partition := range partitions {
		i, partition := i, partition
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			results[i] = pd.Driver.runFrom(partition)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Move{}, err
	}

	var best *TerminalState
	for _, r := range results {
		if r == nil {
			continue
		}
		if best == nil || pd.Driver.Ranker.IsBetterThan(*r, *best) {
			best = r
		}
	}
	if best == nil {
		return Move{Type: Exchange}, nil
	}
	return best.Move, nil
}
