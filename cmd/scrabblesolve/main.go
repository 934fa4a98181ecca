// main.go
// Copyright (C) 2024 Vilhjálmur Þorsteinsson / Miðeind ehf.

// Command scrabblesolve exercises the move-search core from the command
// line: given a board file, a dictionary file and a rack, it runs the
// search and prints the winning move, the resulting board and its score
// breakdown.

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	scrabble "github.com/scrabblesolve/scrabble"
)

func main() {
	// .env is optional: it only supplies defaults for the flags below, in
	// the style of the teacher's go-app/main.go os.Getenv reads.
	_ = godotenv.Load()

	dictPath := flag.String("dict_filepath", os.Getenv("SCRABBLE_DICT"), "path to the dictionary file")
	boardPath := flag.String("board_filepath", os.Getenv("SCRABBLE_BOARD"), "path to the board file")
	letters := flag.String("current_letters", "", "the rack's letters, '?' for a blank")
	pruning := flag.String("pruning_strategy", "never", "never | random[:p] | greedy_heuristic")
	ranking := flag.String("ranking_strategy", "max_score", "max_score | most_words | random[:p]")
	priority := flag.String("priority_calculation", "total_score", "total_score | uniform")
	workers := flag.Int("workers", 0, "if > 0, run the search across this many pooled workers (max 32)")
	simulate := flag.Bool("simulate", false, "play one simulated solo turn by drawing a rack from a fresh bag, instead of using -current_letters")
	flag.Parse()

	if *dictPath == "" || *boardPath == "" {
		fmt.Fprintln(os.Stderr, "scrabblesolve: -dict_filepath and -board_filepath are required")
		os.Exit(2)
	}

	searchID := uuid.New()
	log.Printf("search %s: loading dictionary %s", searchID, *dictPath)
	dict, err := scrabble.LoadDictionaryFile(*dictPath)
	if err != nil {
		log.Fatalf("search %s: %v", searchID, err)
	}
	log.Printf("search %s: loading board %s", searchID, *boardPath)
	board, err := scrabble.LoadBoardFile(*boardPath)
	if err != nil {
		log.Fatalf("search %s: %v", searchID, err)
	}

	var rackLetters []byte
	if *simulate {
		bag := scrabble.NewBag(scrabble.EnglishTileSet)
		rackLetters = bag.Draw(scrabble.RackSize)
		log.Printf("search %s: simulated rack %q drawn from a fresh bag", searchID, rackLetters)
	} else {
		rackLetters = []byte(*letters)
	}
	rack := scrabble.NewRack(rackLetters)

	ctx := scrabble.NewContext(board, dict, rack, scrabble.EnglishTileSet)

	priorityCalc, err := scrabble.NewPriorityCalculator(*priority)
	if err != nil {
		log.Fatalf("search %s: %v", searchID, err)
	}
	pruner, err := scrabble.NewPruningStrategy(*pruning)
	if err != nil {
		log.Fatalf("search %s: %v", searchID, err)
	}
	ranker, err := scrabble.NewRankingStrategy(*ranking)
	if err != nil {
		log.Fatalf("search %s: %v", searchID, err)
	}
	driver := scrabble.NewDriver(ctx, priorityCalc, pruner, ranker)

	var move scrabble.Move
	if *workers > 0 {
		pool := scrabble.NewPoolDriver(driver, *workers)
		move, err = pool.Search(context.Background())
		if err != nil {
			log.Fatalf("search %s: %v", searchID, err)
		}
	} else {
		move = driver.Search()
	}

	breakdown, err := ctx.ScoreMove(move, true)
	if err != nil {
		log.Fatalf("search %s: chosen move failed validation: %v", searchID, err)
	}

	fmt.Printf("search %s\n", searchID)
	fmt.Printf("move: %s (%s)\n", move, move.Type)
	if len(breakdown.Words) > 0 {
		for i, w := range breakdown.Words {
			fmt.Printf("  word %q: %d\n", w, breakdown.WordScores[i])
		}
		if breakdown.Bingo {
			fmt.Printf("  bingo bonus: %d\n", scrabble.BingoBonus)
		}
	}
	fmt.Printf("total score: %d\n", breakdown.Total)

	next, err := board.ExecuteMove(move)
	if err != nil {
		// An EXCHANGE move places no tiles; the board is unchanged.
		next = board
	}
	fmt.Println(next)
}
