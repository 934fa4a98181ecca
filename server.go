// server.go
//
// Copyright (C) 2024 Vilhjálmur Þorsteinsson / Miðeind ehf.
//
// This file implements a compact HTTP server that receives JSON encoded
// requests and returns JSON encoded responses: /search runs the full
// State/Driver/Policy search and /wordcheck answers dictionary membership
// queries. Grounded on the teacher's server.go, generalized from its
// DAWG-backed move enumeration to this repo's search.

package scrabble

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

// SearchRequest is an incoming /search request. Board is given as one
// string per row (y), space-separated tokens in the same format as a board
// file (§6): "-", "l2", "l3", "w2", "w3", or a single letter.
type SearchRequest struct {
	Board           []string `json:"board"`
	Rack            string   `json:"rack"`
	PriorityCalc    string   `json:"priority_calculation"`
	PruningStrategy string   `json:"pruning_strategy"`
	RankingStrategy string   `json:"ranking_strategy"`
}

// SearchResponse is the JSON response to a /search request.
type SearchResponse struct {
	SearchID   string   `json:"search_id"`
	Move       string   `json:"move"`
	MoveType   string   `json:"move_type"`
	Words      []string `json:"words,omitempty"`
	WordScores []int    `json:"word_scores,omitempty"`
	Bingo      bool     `json:"bingo,omitempty"`
	Total      int      `json:"total_score"`
}

func parseBoardRows(rows []string) (*Board, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("empty board")
	}
	height := len(rows)
	var board *Board
	for y, row := range rows {
		var tokens []string
		start := 0
		for i := 0; i <= len(row); i++ {
			if i == len(row) || row[i] == ' ' {
				if i > start {
					tokens = append(tokens, row[start:i])
				}
				start = i + 1
			}
		}
		if board == nil {
			board = NewBoard(len(tokens), height)
		} else if len(tokens) != board.Width {
			return nil, fmt.Errorf("row %d has %d squares, expected %d", y, len(tokens), board.Width)
		}
		for x, tok := range tokens {
			bonus, letter, err := parseBonus(tok)
			if err != nil {
				return nil, err
			}
			sq := &board.Squares[x][y]
			sq.Bonus = bonus
			if letter != 0 {
				sq.Letter = letter
				board.NumTiles++
			}
		}
	}
	return board, nil
}

// HandleSearchRequest answers a /search request by running the full
// search and returning the winning move and its score breakdown.
func HandleSearchRequest(w http.ResponseWriter, req SearchRequest) {
	board, err := parseBoardRows(req.Board)
	if err != nil {
		http.Error(w, fmt.Sprintf("invalid board: %v", err), http.StatusBadRequest)
		return
	}
	if len(req.Rack) == 0 || len(req.Rack) > RackSize {
		http.Error(w, "invalid rack", http.StatusBadRequest)
		return
	}

	priorityCalc, err := NewPriorityCalculator(defaultString(req.PriorityCalc, "total_score"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	pruner, err := NewPruningStrategy(defaultString(req.PruningStrategy, "never"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	ranker, err := NewRankingStrategy(defaultString(req.RankingStrategy, "max_score"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ctx := NewContext(board, ServerDictionary, NewRack([]byte(req.Rack)), EnglishTileSet)
	driver := NewDriver(ctx, priorityCalc, pruner, ranker)
	move := driver.Search()

	breakdown, err := ctx.ScoreMove(move, true)
	if err != nil {
		http.Error(w, fmt.Sprintf("chosen move failed validation: %v", err), http.StatusInternalServerError)
		return
	}

	resp := SearchResponse{
		SearchID:   uuid.New().String(),
		Move:       move.String(),
		MoveType:   move.Type.String(),
		Words:      breakdown.Words,
		WordScores: breakdown.WordScores,
		Bingo:      breakdown.Bingo,
		Total:      breakdown.Total,
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// WordCheckRequest is an incoming /wordcheck request.
type WordCheckRequest struct {
	Words []string `json:"words"`
}

// WordCheckResponse is the JSON response to a /wordcheck request.
type WordCheckResponse struct {
	OK    bool            `json:"ok"`
	Valid map[string]bool `json:"valid"`
}

// HandleWordCheckRequest answers a /wordcheck request against
// ServerDictionary.
func HandleWordCheckRequest(w http.ResponseWriter, req WordCheckRequest) {
	if len(req.Words) == 0 {
		json.NewEncoder(w).Encode(WordCheckResponse{OK: false})
		return
	}
	valid := make(map[string]bool, len(req.Words))
	allValid := true
	for _, word := range req.Words {
		found := ServerDictionary.Contains(word)
		valid[word] = found
		if !found {
			allValid = false
		}
	}
	json.NewEncoder(w).Encode(WordCheckResponse{OK: allValid, Valid: valid})
}

func defaultString(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

// ServerDictionary is the dictionary the HTTP handlers search against. The
// server entrypoint (cmd/scrabbleserver) assigns this at startup; it
// exists as a package variable because the JSON request shape (matching
// the teacher's server.go) does not carry a dictionary payload per
// request.
var ServerDictionary *Dictionary
