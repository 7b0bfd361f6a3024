package puzzle

import "testing"

func TestNextEmptySlotFirstOverall(t *testing.T) {
	s := unanchored("haste makes waste", "still waters run deep")

	slot, ok := s.NextEmptySlot(Slot{Proverb: -1, Position: -1})
	if !ok || slot != (Slot{Proverb: 0, Position: 0}) {
		t.Fatalf("first empty = %v/%v, want {0 0}", slot, ok)
	}

	s = s.MoveWord("0-0", Slot{Proverb: 0, Position: 0})
	slot, ok = s.NextEmptySlot(Slot{Proverb: -1, Position: -1})
	if !ok || slot != (Slot{Proverb: 0, Position: 1}) {
		t.Fatalf("first empty after fill = %v/%v, want {0 1}", slot, ok)
	}
}

func TestNextEmptySlotScanOrder(t *testing.T) {
	s := unanchored("haste makes waste", "still waters run deep")

	// Forward within the current proverb first.
	slot, ok := s.NextEmptySlot(Slot{Proverb: 0, Position: 0})
	if !ok || slot != (Slot{Proverb: 0, Position: 1}) {
		t.Errorf("got %v/%v, want {0 1}", slot, ok)
	}

	// Then on to the next proverb.
	slot, ok = s.NextEmptySlot(Slot{Proverb: 0, Position: 2})
	if !ok || slot != (Slot{Proverb: 1, Position: 0}) {
		t.Errorf("got %v/%v, want {1 0}", slot, ok)
	}

	// Wraparound from the last proverb back to the first.
	slot, ok = s.NextEmptySlot(Slot{Proverb: 1, Position: 3})
	if !ok || slot != (Slot{Proverb: 0, Position: 0}) {
		t.Errorf("got %v/%v, want wrap to {0 0}", slot, ok)
	}

	// Wraparound covers slots before the starting position.
	s2 := s
	for _, id := range []string{"0-1", "0-2"} {
		w := mustFind(t, s2, id)
		s2 = s2.MoveWord(id, Slot{Proverb: 0, Position: w.OriginalIndex})
	}
	for _, id := range []string{"1-0", "1-1", "1-2", "1-3"} {
		w := mustFind(t, s2, id)
		s2 = s2.MoveWord(id, Slot{Proverb: 1, Position: w.OriginalIndex})
	}
	slot, ok = s2.NextEmptySlot(Slot{Proverb: 0, Position: 1})
	if !ok || slot != (Slot{Proverb: 0, Position: 0}) {
		t.Errorf("got %v/%v, want wrap to earlier slot {0 0}", slot, ok)
	}
}

func TestNextEmptySlotFullBoard(t *testing.T) {
	s := unanchored("haste makes waste")
	s = placeCorrectly(t, s, 0)
	if slot, ok := s.NextEmptySlot(Slot{Proverb: -1, Position: -1}); ok {
		t.Errorf("full board reported empty slot %v", slot)
	}
}

func TestSelectWordAndSlotAreExclusive(t *testing.T) {
	s := unanchored("haste makes waste", "still waters run deep")

	s = s.SelectWord("0-1")
	if s.Selection.WordID != "0-1" || s.Selection.Slot != nil {
		t.Fatalf("after SelectWord: %+v", s.Selection)
	}
	if s.Selection.AutoFocus == nil || *s.Selection.AutoFocus != (Slot{Proverb: 0, Position: 0}) {
		t.Errorf("auto-focus = %v, want first empty slot", s.Selection.AutoFocus)
	}

	s = s.SelectSlot(Slot{Proverb: 1, Position: 2})
	if s.Selection.WordID != "" || s.Selection.Slot == nil || *s.Selection.Slot != (Slot{Proverb: 1, Position: 2}) {
		t.Fatalf("after SelectSlot: %+v", s.Selection)
	}

	s = s.ClearSelection()
	if s.Selection.WordID != "" || s.Selection.Slot != nil || s.Selection.AutoFocus != nil {
		t.Fatalf("after ClearSelection: %+v", s.Selection)
	}
}

func TestSelectWordNoops(t *testing.T) {
	s := unanchored("haste makes waste")
	s = s.MoveWord("0-0", Slot{Proverb: 0, Position: 0})

	// Placed word.
	if got := s.SelectWord("0-0"); got.Selection.WordID != "" {
		t.Error("placed word selectable")
	}
	// Unknown id.
	if got := s.SelectWord("9-9"); got.Selection.WordID != "" {
		t.Error("unknown word selectable")
	}
	// Locked word.
	locked := placeCorrectly(t, s, 0).ValidateProverb(0)
	if got := locked.SelectWord("0-1"); got.Selection.WordID != "" {
		t.Error("locked word selectable")
	}
}

func TestSelectSlotNoops(t *testing.T) {
	s := unanchored("haste makes waste")
	s = s.MoveWord("0-1", Slot{Proverb: 0, Position: 1})

	if got := s.SelectSlot(Slot{Proverb: 0, Position: 1}); got.Selection.Slot != nil {
		t.Error("occupied slot selectable")
	}
	if got := s.SelectSlot(Slot{Proverb: 3, Position: 0}); got.Selection.Slot != nil {
		t.Error("out-of-range slot selectable")
	}
}

func TestMoveWordAdvancesAutoFocus(t *testing.T) {
	s := unanchored("haste makes waste")
	s = s.MoveWord("0-0", Slot{Proverb: 0, Position: 0})

	if s.Selection.AutoFocus == nil || *s.Selection.AutoFocus != (Slot{Proverb: 0, Position: 1}) {
		t.Errorf("auto-focus after move = %v, want {0 1}", s.Selection.AutoFocus)
	}

	// Filling the board leaves no focus target.
	s = s.MoveWord("0-1", Slot{Proverb: 0, Position: 1})
	s = s.MoveWord("0-2", Slot{Proverb: 0, Position: 2})
	if s.Selection.AutoFocus != nil {
		t.Errorf("auto-focus on a full board: %v", s.Selection.AutoFocus)
	}
}
