// policies.go
//
// Copyright (C) 2024 Vilhjálmur Þorsteinsson / Miðeind ehf.
//
// This file implements the three pluggable policy interfaces that
// parameterize the search driver, and their string-name constructors per
// the CLI surface in spec.md §6. Grounded on
// original_source/scrabble/solver/{priority_calculators,pruning_strategies,
// ranking_strategies}.py.

package scrabble

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
)

// PriorityCalculator ranks States for dequeue order in the search driver's
// priority queue; higher values are explored first.
type PriorityCalculator interface {
	Calculate(ctx *Context, s State) float64
}

// UniformPriority gives every state the same priority, degenerating the
// search into plain breadth order.
type UniformPriority struct{}

func (UniformPriority) Calculate(_ *Context, _ State) float64 { return 1.0 }

// TotalScorePriority prioritizes states whose partial move already scores
// highest. This is cheap because most partial moves are short.
type TotalScorePriority struct{}

func (TotalScorePriority) Calculate(ctx *Context, s State) float64 {
	breakdown, err := ctx.ScoreMove(s.Move, false)
	if err != nil {
		return 0
	}
	return float64(breakdown.Total)
}

// NewPriorityCalculator builds a PriorityCalculator from a CLI option name.
func NewPriorityCalculator(name string) (PriorityCalculator, error) {
	switch name {
	case "uniform":
		return UniformPriority{}, nil
	case "total_score":
		return TotalScorePriority{}, nil
	default:
		return nil, fmt.Errorf("scrabble: unknown priority_calculation %q", name)
	}
}

// PruningStrategy decides whether to reject a candidate child state before
// it is enqueued, given the best terminal found so far. The driver only
// consults it once a terminal exists; before that every child is enqueued.
type PruningStrategy interface {
	ShouldPrune(best *TerminalState, s State) bool
}

// NeverPrune never rejects a state.
type NeverPrune struct{}

func (NeverPrune) ShouldPrune(_ *TerminalState, _ State) bool { return false }

// RandomPrune rejects a state with probability P, independent of its
// content.
type RandomPrune struct{ P float64 }

func (r RandomPrune) ShouldPrune(_ *TerminalState, _ State) bool {
	return rand.Float64() < r.P
}

// GreedyHeuristicPrune is reserved for future work (spec.md §4.7); it
// currently behaves like NeverPrune.
type GreedyHeuristicPrune struct{}

func (GreedyHeuristicPrune) ShouldPrune(_ *TerminalState, _ State) bool { return false }

// NewPruningStrategy builds a PruningStrategy from a CLI option name, one
// of "never", "random[:p]", "greedy_heuristic".
func NewPruningStrategy(spec string) (PruningStrategy, error) {
	name, arg, _ := strings.Cut(spec, ":")
	switch name {
	case "never":
		return NeverPrune{}, nil
	case "random":
		p, err := parseProbability(arg, 0.5)
		if err != nil {
			return nil, err
		}
		return RandomPrune{P: p}, nil
	case "greedy_heuristic":
		return GreedyHeuristicPrune{}, nil
	default:
		return nil, fmt.Errorf("scrabble: unknown pruning_strategy %q", spec)
	}
}

// RankingStrategy decides whether a new terminal candidate supersedes the
// current incumbent. MaxScoreRanking and MostWordsRanking keep the
// incumbent on ties (P8); RandomRanking may replace it. It is implemented
// as a bool predicate, matching the call site in the original
// solver driver rather than the differently-shaped `pick_best` method
// documented (inconsistently) alongside it -- see DESIGN.md.
type RankingStrategy interface {
	IsBetterThan(candidate, incumbent TerminalState) bool
}

// MaxScoreRanking prefers the higher total_score; ties keep the incumbent.
type MaxScoreRanking struct{}

func (MaxScoreRanking) IsBetterThan(candidate, incumbent TerminalState) bool {
	return candidate.Score.Total > incumbent.Score.Total
}

// MostWordsRanking prefers the move that forms more words; ties keep the
// incumbent.
type MostWordsRanking struct{}

func (MostWordsRanking) IsBetterThan(candidate, incumbent TerminalState) bool {
	return len(candidate.Score.Words) > len(incumbent.Score.Words)
}

// RandomRanking returns true with probability P when the candidate
// actually scores higher, and with probability 1-P otherwise.
type RandomRanking struct{ P float64 }

func (r RandomRanking) IsBetterThan(candidate, incumbent TerminalState) bool {
	if candidate.Score.Total > incumbent.Score.Total {
		return rand.Float64() < r.P
	}
	return rand.Float64() < 1-r.P
}

// NewRankingStrategy builds a RankingStrategy from a CLI option name, one
// of "max_score", "most_words", "random[:p]".
func NewRankingStrategy(spec string) (RankingStrategy, error) {
	name, arg, _ := strings.Cut(spec, ":")
	switch name {
	case "max_score":
		return MaxScoreRanking{}, nil
	case "most_words":
		return MostWordsRanking{}, nil
	case "random":
		p, err := parseProbability(arg, 0.5)
		if err != nil {
			return nil, err
		}
		return RandomRanking{P: p}, nil
	default:
		return nil, fmt.Errorf("scrabble: unknown ranking_strategy %q", spec)
	}
}

func parseProbability(s string, def float64) (float64, error) {
	if s == "" {
		return def, nil
	}
	p, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("scrabble: invalid probability %q: %w", s, err)
	}
	if p < 0 || p > 1 {
		return 0, fmt.Errorf("scrabble: probability %v out of [0,1]", p)
	}
	return p, nil
}
