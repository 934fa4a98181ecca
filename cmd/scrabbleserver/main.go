// main.go
// Copyright (C) 2024 Vilhjálmur Þorsteinsson / Miðeind ehf.

// Command scrabbleserver runs the JSON move-search HTTP service: /search
// and /wordcheck. Grounded on the teacher's go-app/main.go bootstrapping
// (ACCESS_KEY bearer auth, PORT env var) and server.go handlers.

package main

import (
	"encoding/json"
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	scrabble "github.com/scrabblesolve/scrabble"
)

// ACCESS_KEY, if set, requires every request to carry a matching bearer
// token in the AUTH_HEADER header. An empty ACCESS_KEY disables auth,
// which is the default for local development.
var (
	ACCESS_KEY  = os.Getenv("SCRABBLE_ACCESS_KEY")
	AUTH_HEADER = "Authorization"
)

func authorized(r *http.Request) bool {
	if ACCESS_KEY == "" {
		return true
	}
	return r.Header.Get(AUTH_HEADER) == "Bearer "+ACCESS_KEY
}

func searchHandler(w http.ResponseWriter, r *http.Request) {
	if !authorized(r) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	if r.Method != http.MethodPost {
		http.Error(w, "POST only", http.StatusMethodNotAllowed)
		return
	}
	var req scrabble.SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	scrabble.HandleSearchRequest(w, req)
}

func wordCheckHandler(w http.ResponseWriter, r *http.Request) {
	if !authorized(r) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	if r.Method != http.MethodPost {
		http.Error(w, "POST only", http.StatusMethodNotAllowed)
		return
	}
	var req scrabble.WordCheckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	scrabble.HandleWordCheckRequest(w, req)
}

// warmup answers App-Engine-style warmup / health-check pings.
func warmup(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func main() {
	_ = godotenv.Load()
	ACCESS_KEY = os.Getenv("SCRABBLE_ACCESS_KEY")

	dictPath := os.Getenv("SCRABBLE_DICT")
	if dictPath == "" {
		log.Fatal("scrabbleserver: SCRABBLE_DICT must name a dictionary file")
	}
	dict, err := scrabble.LoadDictionaryFile(dictPath)
	if err != nil {
		log.Fatalf("scrabbleserver: %v", err)
	}
	scrabble.ServerDictionary = dict
	log.Printf("scrabbleserver: loaded dictionary %s (%d words)", dictPath, dict.Len())

	http.HandleFunc("/search", searchHandler)
	http.HandleFunc("/wordcheck", wordCheckHandler)
	http.HandleFunc("/_ah/warmup", warmup)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("scrabbleserver: listening on :%s", port)
	log.Fatal(http.ListenAndServe(":"+port, nil))
}
