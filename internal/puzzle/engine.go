// internal/puzzle/engine.go
//
// Placement engine: moving words onto the board and back to the tray.
// Responsibilities:
//   - MoveWord/RemoveWord with the lock and one-word-per-slot invariants.
//   - Eviction of unlocked occupants; rejection when the occupant is locked.
//   - Validation-state reset on every placement change.
//   - Copy-on-write snapshot helpers shared by the other operation files.
//
// Notes:
//   - Invalid requests (unknown id, locked word, out-of-range slot) return
//     the receiver unchanged. The host UI prevents most of them up front;
//     these checks are the second line of defense, not an error surface.

package puzzle

// MoveWord places the word with the given id at target, relocating it if it
// was already on the board.
//
// Rules:
//   - A locked word never moves: no-op.
//   - If target is held by a locked word, the whole move is rejected. The
//     occupant is never displaced and the board never holds two words in
//     one slot.
//   - If target is held by an unlocked word, that occupant is evicted to
//     the tray.
//
// Every proverb's validation entry is reset, since a placement change
// anywhere invalidates prior results. The selection intent is cleared and
// AutoFocus advances to the next empty slot after target.
func (s State) MoveWord(id string, target Slot) State {
	wi := s.wordIndex(id)
	if wi < 0 || s.Words[wi].Locked {
		return s
	}
	if !s.slotInRange(target) {
		return s
	}
	if occ := s.wordAt(target); occ >= 0 {
		if occ == wi {
			return s
		}
		if s.Words[occ].Locked {
			return s
		}
	}

	next := s.clone()
	if occ := next.wordAt(target); occ >= 0 {
		next.Words[occ].Slot = nil
	}
	t := target
	next.Words[wi].Slot = &t
	next.resetAllValidation()

	next.Selection = Selection{}
	if slot, ok := next.NextEmptySlot(target); ok {
		next.Selection.AutoFocus = &slot
	}
	return next
}

// RemoveWord returns the word to the tray. Locked or already-unplaced words
// are a no-op. Only the owning proverb's validation entry is reset: the word
// leaves exactly one proverb, so other proverbs' results still stand.
func (s State) RemoveWord(id string) State {
	wi := s.wordIndex(id)
	if wi < 0 || s.Words[wi].Locked || s.Words[wi].Slot == nil {
		return s
	}
	next := s.clone()
	owner := next.Words[wi].Slot.Proverb
	next.Words[wi].Slot = nil
	next.Validation[owner] = ProverbValidation{}
	next.Completed = false
	return next
}

// ----------------------------- snapshot helpers ----------------------------

// clone deep-copies the snapshot so an operation can mutate freely. Slot
// pointers are duplicated: two snapshots never share placement storage,
// which keeps reference-equality change detection in the host honest.
func (s State) clone() State {
	next := s
	next.Proverbs = append([]Proverb(nil), s.Proverbs...)
	next.Words = make([]Word, len(s.Words))
	for i, w := range s.Words {
		if w.Slot != nil {
			c := *w.Slot
			w.Slot = &c
		}
		next.Words[i] = w
	}
	next.Validation = append([]ProverbValidation(nil), s.Validation...)
	next.MeaningShown = append([]bool(nil), s.MeaningShown...)
	next.WordHints = append([]int(nil), s.WordHints...)
	if s.Selection.Slot != nil {
		c := *s.Selection.Slot
		next.Selection.Slot = &c
	}
	if s.Selection.AutoFocus != nil {
		c := *s.Selection.AutoFocus
		next.Selection.AutoFocus = &c
	}
	return next
}

// wordIndex finds a word by id, -1 if unknown.
func (s State) wordIndex(id string) int {
	for i := range s.Words {
		if s.Words[i].ID == id {
			return i
		}
	}
	return -1
}

// wordAt returns the index of the word occupying slot, -1 if the slot is
// empty.
func (s State) wordAt(slot Slot) int {
	for i := range s.Words {
		if s.Words[i].Slot != nil && *s.Words[i].Slot == slot {
			return i
		}
	}
	return -1
}

// slotInRange checks the coordinate against the proverb list and that
// proverb's canonical word count.
func (s State) slotInRange(slot Slot) bool {
	if slot.Proverb < 0 || slot.Proverb >= len(s.Proverbs) {
		return false
	}
	return slot.Position >= 0 && slot.Position < len(Tokens(s.Proverbs[slot.Proverb].Solution))
}

// placedIndexes returns the pool indexes of the words placed in proverb pi,
// ordered by board position.
func (s State) placedIndexes(pi int) []int {
	var out []int
	count := len(Tokens(s.Proverbs[pi].Solution))
	for pos := 0; pos < count; pos++ {
		if wi := s.wordAt(Slot{Proverb: pi, Position: pos}); wi >= 0 {
			out = append(out, wi)
		}
	}
	return out
}

// resetAllValidation wipes every proverb's validation entry and the derived
// completion flag. Called on any placement change.
func (s *State) resetAllValidation() {
	for i := range s.Validation {
		s.Validation[i] = ProverbValidation{}
	}
	s.Completed = false
}

// allSolved reports whether every proverb's latest validation succeeded.
func (s State) allSolved() bool {
	for _, v := range s.Validation {
		if !v.Solved {
			return false
		}
	}
	return len(s.Validation) > 0
}
