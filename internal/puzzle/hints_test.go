package puzzle

import "testing"

func TestHintLevelOneRevealsMeaning(t *testing.T) {
	s := unanchored("haste makes waste", "still waters run deep")

	s = s.UseHint(1)

	if !s.MeaningShown[1] || s.MeaningShown[0] {
		t.Errorf("MeaningShown = %v, want proverb 1 only", s.MeaningShown)
	}
	if s.TotalHints != 1 || s.WordHints[1] != 0 {
		t.Errorf("level 1 hint miscounted: total=%d word=%d", s.TotalHints, s.WordHints[1])
	}
	for _, w := range s.Words {
		if w.Slot != nil {
			t.Fatalf("level 1 hint placed word %s", w.ID)
		}
	}
}

func TestHintLevelTwoPlacesHistoricallyCorrectWord(t *testing.T) {
	s := unanchored("haste makes waste")
	s = s.UseHint(0) // meaning
	s = s.UseHint(0) // first auto-placement

	// Lowest empty slot is 0 and word 0-0 is still available, so it lands
	// at its own position.
	w := mustFind(t, s, "0-0")
	if w.Slot == nil || *w.Slot != (Slot{Proverb: 0, Position: 0}) {
		t.Fatalf("word 0-0 at %v, want {0 0}", w.Slot)
	}
	if s.WordHints[0] != 1 || s.TotalHints != 2 {
		t.Errorf("hint counters: word=%d total=%d", s.WordHints[0], s.TotalHints)
	}
}

func TestHintTargetsLowestEmptySlot(t *testing.T) {
	s := unanchored("haste makes waste")
	s = s.MoveWord("0-0", Slot{Proverb: 0, Position: 0})
	s = s.UseHint(0)
	s = s.UseHint(0)

	// Slot 0 is taken, so the hint fills slot 1 with its correct word.
	w := mustFind(t, s, "0-1")
	if w.Slot == nil || *w.Slot != (Slot{Proverb: 0, Position: 1}) {
		t.Fatalf("word 0-1 at %v, want {0 1}", w.Slot)
	}
}

// When the historically correct word is parked elsewhere, the hint places an
// arbitrary remaining candidate even though it is wrong for the slot. The
// hint is consumed either way.
func TestHintFallbackPlacesWrongWord(t *testing.T) {
	s := unanchored("haste makes waste", "still waters run deep")
	// Park "haste" (0-0) on the other proverb's board.
	s = s.MoveWord("0-0", Slot{Proverb: 1, Position: 0})
	s = s.UseHint(0)
	s = s.UseHint(0)

	// Candidates for proverb 0 were 0-1 and 0-2; the first fills slot 0.
	w := mustFind(t, s, "0-1")
	if w.Slot == nil || *w.Slot != (Slot{Proverb: 0, Position: 0}) {
		t.Fatalf("fallback word 0-1 at %v, want {0 0}", w.Slot)
	}
	if s.WordHints[0] != 1 {
		t.Errorf("fallback hint not counted: %d", s.WordHints[0])
	}
}

func TestHintCapAtEightyPercent(t *testing.T) {
	s := unanchored("one two three four five six seven eight nine")
	s = s.UseHint(0)

	// floor(9 * 0.8) = 7 word hints allowed.
	for i := 0; i < 7; i++ {
		before := s.WordHints[0]
		s = s.UseHint(0)
		if s.WordHints[0] != before+1 {
			t.Fatalf("hint %d did not place a word", i+1)
		}
	}
	if got := s.MaxHintWords(0); got != 7 {
		t.Errorf("MaxHintWords = %d, want 7", got)
	}

	capped := s.UseHint(0)
	if capped.WordHints[0] != 7 || capped.TotalHints != s.TotalHints {
		t.Errorf("hint beyond the cap was consumed: word=%d total=%d",
			capped.WordHints[0], capped.TotalHints)
	}
}

func TestHintNoCandidatesNoop(t *testing.T) {
	s := unanchored("haste makes waste", "still waters run deep")
	// Every proverb-0 word is parked on proverb 1's board.
	s = s.MoveWord("0-0", Slot{Proverb: 1, Position: 0})
	s = s.MoveWord("0-1", Slot{Proverb: 1, Position: 1})
	s = s.MoveWord("0-2", Slot{Proverb: 1, Position: 2})
	s = s.UseHint(0)

	got := s.UseHint(0)
	if got.WordHints[0] != 0 || got.TotalHints != s.TotalHints {
		t.Error("hint consumed with no eligible candidates")
	}
}

func TestHintNoopsOnSolvedAndFailed(t *testing.T) {
	s := unanchored("haste makes waste")
	solved := placeCorrectly(t, s, 0).ValidateProverb(0)
	if got := solved.UseHint(0); got.TotalHints != 0 {
		t.Error("hint granted on a solved proverb")
	}

	failed := s.ValidateAll().ValidateAll().ValidateAll()
	if got := failed.UseHint(0); got.TotalHints != 0 {
		t.Error("hint granted on a failed game")
	}
}

func TestHintPlacementResetsValidation(t *testing.T) {
	s := unanchored("haste makes waste", "still waters run deep")
	s = placeCorrectly(t, s, 1)
	s = s.ValidateAll() // proverb 1 solved, proverb 0 incomplete
	if !s.Validation[1].Solved {
		t.Fatal("setup: proverb 1 should be solved")
	}

	s = s.UseHint(0) // meaning only: validation untouched
	if !s.Validation[1].Solved {
		t.Error("meaning reveal reset validation")
	}

	s = s.UseHint(0) // placement: resets everything
	if s.Validation[1].Validated || s.Validation[1].Solved {
		t.Error("word placement hint did not reset validation")
	}
}
