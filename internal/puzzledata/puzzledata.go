// internal/puzzledata/puzzledata.go
//
// Provides puzzle catalog management for the game engine.
//
// Responsibilities:
//   - Load the puzzle catalog from an environment-provided file or fall
//     back to the embedded default catalog.
//   - Validate puzzle payloads before they reach the engine: proverb count,
//     field presence, solution word counts, supported language.
//   - Decode inline puzzle payloads posted by clients.
//
// Schema:
//   A catalog file is a JSON array of puzzles. Each puzzle:
//     { "version": "1", "language": "en"|"he", "proverbs": [
//         { "solution": "...", "culture": "...", "meaning": "..." }, ... ] }
//
// Environment variables:
//   PUZZLES_FILE=/path/to/puzzles.json
//
// Constraints:
//   • 3-4 proverbs per puzzle.
//   • 3-10 whitespace-delimited words per solution.
//   • solution/culture/meaning must all be non-empty.
//   • Initialization is run once (sync.Once).

package puzzledata

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/noam-r/proverb-pile/internal/puzzle"
)

//go:embed default_puzzles.json
var embeddedCatalog []byte

// Set is one complete puzzle payload: the proverbs whose words get pooled
// together into a single board.
type Set struct {
	Version  string           `json:"version"`
	Language string           `json:"language"`
	Proverbs []puzzle.Proverb `json:"proverbs"`
}

const (
	minProverbs = 3
	maxProverbs = 4
	minWords    = 3
	maxWords    = 10
)

var (
	initOnce   sync.Once
	catalog    []Set
	initialErr error
)

// Init loads the puzzle catalog exactly once: from PUZZLES_FILE when set,
// otherwise from the embedded defaults. Returns an error if the resulting
// catalog is empty or contains an invalid puzzle.
func Init() error {
	initOnce.Do(func() {
		raw := embeddedCatalog
		if path := os.Getenv("PUZZLES_FILE"); path != "" {
			b, err := os.ReadFile(path)
			if err != nil {
				initialErr = fmt.Errorf("read puzzle catalog: %w", err)
				return
			}
			raw = b
		}

		var sets []Set
		if err := json.Unmarshal(raw, &sets); err != nil {
			initialErr = fmt.Errorf("decode puzzle catalog: %w", err)
			return
		}
		for i, set := range sets {
			if err := Validate(set); err != nil {
				initialErr = fmt.Errorf("puzzle %d: %w", i, err)
				return
			}
		}
		if len(sets) == 0 {
			initialErr = errors.New("puzzledata: catalog is empty")
			return
		}
		catalog = sets
	})
	return initialErr
}

// Count reports how many puzzles the catalog holds.
func Count() int { return len(catalog) }

// Get returns catalog entry i.
func Get(i int) (Set, error) {
	if i < 0 || i >= len(catalog) {
		return Set{}, fmt.Errorf("puzzledata: no puzzle at index %d", i)
	}
	return catalog[i], nil
}

// Decode reads and validates a single inline puzzle payload.
func Decode(r io.Reader) (Set, error) {
	var set Set
	if err := json.NewDecoder(r).Decode(&set); err != nil {
		return Set{}, fmt.Errorf("decode puzzle: %w", err)
	}
	if err := Validate(set); err != nil {
		return Set{}, err
	}
	return set, nil
}

// Validate checks a puzzle payload against the schema constraints. The
// engine itself assumes validated input, so everything that can reject a
// payload lives here.
func Validate(set Set) error {
	if set.Language != "en" && set.Language != "he" {
		return fmt.Errorf("unsupported language %q", set.Language)
	}
	if n := len(set.Proverbs); n < minProverbs || n > maxProverbs {
		return fmt.Errorf("puzzle has %d proverbs, want %d-%d", n, minProverbs, maxProverbs)
	}
	for i, p := range set.Proverbs {
		if strings.TrimSpace(p.Solution) == "" {
			return fmt.Errorf("proverb %d: empty solution", i)
		}
		if strings.TrimSpace(p.Culture) == "" {
			return fmt.Errorf("proverb %d: empty culture", i)
		}
		if strings.TrimSpace(p.Meaning) == "" {
			return fmt.Errorf("proverb %d: empty meaning", i)
		}
		if n := len(puzzle.Tokens(p.Solution)); n < minWords || n > maxWords {
			return fmt.Errorf("proverb %d: %d words, want %d-%d", i, n, minWords, maxWords)
		}
	}
	return nil
}
