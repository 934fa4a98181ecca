// loader.go
//
// Copyright (C) 2024 Vilhjálmur Þorsteinsson / Miðeind ehf.
//
// This file implements the board and dictionary file loaders that sit
// outside the move-search core proper (spec.md §1 lists file loading as an
// out-of-scope collaborator concern, specified only through the formats in
// §6). Grounded on the teacher's main/main.go file-reading idiom.

package scrabble

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// LoadDictionaryFile reads a plain text dictionary file, one word per
// line, stripping non-alphabetic characters and lowercasing.
func LoadDictionaryFile(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("scrabble: opening dictionary file: %w", err)
	}
	defer f.Close()

	var words []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		word := cleanWord(scanner.Text())
		if word != "" {
			words = append(words, word)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scrabble: reading dictionary file: %w", err)
	}
	return NewDictionary(words), nil
}

func cleanWord(line string) string {
	var sb strings.Builder
	for _, r := range strings.ToLower(line) {
		if r >= 'a' && r <= 'z' {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

func parseBonus(tok string) (Bonus, byte, error) {
	switch tok {
	case "-":
		return NoBonus, 0, nil
	case "l2":
		return DoubleLetter, 0, nil
	case "l3":
		return TripleLetter, 0, nil
	case "w2":
		return DoubleWord, 0, nil
	case "w3":
		return TripleWord, 0, nil
	}
	if len(tok) == 1 && tok[0] >= 'a' && tok[0] <= 'z' {
		return NoBonus, tok[0], nil
	}
	return NoBonus, 0, fmt.Errorf("scrabble: invalid board square token %q", tok)
}

// LoadBoardFile reads a plain text board file: one row per line, squares
// separated by whitespace. Board dimensions are inferred from the file:
// width is the number of tokens per line, height is the number of lines.
// Squares are stored column-major (board[x][y]), per spec.md §9's
// canonical resolution of the transpose question -- x ranges over columns
// within a line, y over lines, with no further (buggy) double-transpose.
func LoadBoardFile(path string) (*Board, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("scrabble: opening board file: %w", err)
	}
	defer f.Close()

	var rows [][]string
	scanner := bufio.NewScanner(f)
	width := -1
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		tokens := strings.Fields(line)
		if width == -1 {
			width = len(tokens)
		} else if len(tokens) != width {
			return nil, fmt.Errorf("scrabble: board file rows have inconsistent width (%d vs %d)", len(tokens), width)
		}
		rows = append(rows, tokens)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scrabble: reading board file: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("scrabble: board file %q is empty", path)
	}

	height := len(rows)
	board := NewBoard(width, height)
	for y, tokens := range rows {
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
