package puzzle

import (
	"math/rand"
	"strconv"
	"testing"
)

// testProverbs is the standard three-proverb fixture used across the engine
// tests: 5, 6, and 4 words respectively.
func testProverbs() []Proverb {
	return []Proverb{
		{Solution: "The quick brown fox jumps", Culture: "English", Meaning: "Speed and agility win"},
		{Solution: "A stitch in time saves nine", Culture: "English", Meaning: "Act early, save effort"},
		{Solution: "Still waters run deep", Culture: "Latin", Meaning: "Quiet people hide depth"},
	}
}

// newSeeded builds a fixture state with deterministic anchors.
func newSeeded(seed int64) State {
	return New(testProverbs(), rand.New(rand.NewSource(seed)))
}

// unanchored builds a state with every word in the tray and nothing locked,
// so placement tests control the board exactly.
func unanchored(solutions ...string) State {
	ps := make([]Proverb, len(solutions))
	for i, sol := range solutions {
		ps[i] = Proverb{Solution: sol, Culture: "test", Meaning: "meaning " + strconv.Itoa(i)}
	}
	s := State{
		Proverbs:     ps,
		Validation:   make([]ProverbValidation, len(ps)),
		MeaningShown: make([]bool, len(ps)),
		WordHints:    make([]int, len(ps)),
		AttemptsLeft: MaxAttempts,
	}
	for pi, p := range ps {
		for wi, tok := range Tokens(p.Solution) {
			s.Words = append(s.Words, Word{
				ID:            wordID(pi, wi),
				Text:          tok,
				SourceProverb: pi,
				OriginalIndex: wi,
			})
		}
	}
	return s
}

// placeCorrectly moves every still-unplaced word of proverb pi to its
// original position.
func placeCorrectly(t *testing.T, s State, pi int) State {
	t.Helper()
	for wi, w := range s.Words {
		if w.SourceProverb != pi || w.Slot != nil {
			continue
		}
		target := Slot{Proverb: pi, Position: w.OriginalIndex}
		s = s.MoveWord(w.ID, target)
		if got := s.wordAt(target); got < 0 || s.Words[got].ID != s.Words[wi].ID {
			t.Fatalf("failed to place word %s at %v", w.ID, target)
		}
	}
	return s
}

// mustFind returns the word with the given id or fails the test.
func mustFind(t *testing.T, s State, id string) Word {
	t.Helper()
	wi := s.wordIndex(id)
	if wi < 0 {
		t.Fatalf("word %s not in pool", id)
	}
	return s.Words[wi]
}

// assertNoSharedSlots checks the one-word-per-slot invariant.
func assertNoSharedSlots(t *testing.T, s State) {
	t.Helper()
	seen := make(map[Slot]string)
	for _, w := range s.Words {
		if w.Slot == nil {
			continue
		}
		if prev, ok := seen[*w.Slot]; ok {
			t.Fatalf("slot %v held by both %s and %s", *w.Slot, prev, w.ID)
		}
		seen[*w.Slot] = w.ID
	}
}
