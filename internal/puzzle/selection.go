// internal/puzzle/selection.go
//
// Selection and auto-focus helper. Tracks which tray word or empty slot the
// player has selected, so the host can place words with two taps instead of
// a drag, and computes the next empty slot in a stable traversal order.

package puzzle

// SelectWord marks an unplaced, unlocked word as the placement candidate.
// Selecting a word clears any selected slot. AutoFocus is set to the first
// empty slot overall so a follow-up tap has a target ready. Locked, placed,
// or unknown words are a no-op.
func (s State) SelectWord(id string) State {
	wi := s.wordIndex(id)
	if wi < 0 || s.Words[wi].Locked || s.Words[wi].Slot != nil {
		return s
	}
	next := s.clone()
	next.Selection = Selection{WordID: id}
	if slot, ok := next.NextEmptySlot(Slot{Proverb: -1, Position: -1}); ok {
		next.Selection.AutoFocus = &slot
	}
	return next
}

// SelectSlot marks an empty board slot as the placement target, clearing
// any selected word. Occupied or out-of-range slots are a no-op.
func (s State) SelectSlot(slot Slot) State {
	if !s.slotInRange(slot) || s.wordAt(slot) >= 0 {
		return s
	}
	next := s.clone()
	t := slot
	next.Selection = Selection{Slot: &t}
	return next
}

// ClearSelection drops all selection intent, including the auto-focus
// target.
func (s State) ClearSelection() State {
	next := s.clone()
	next.Selection = Selection{}
	return next
}

// NextEmptySlot returns the next empty slot after from, scanning the
// current proverb forward, then subsequent proverbs from their first
// position, then wrapping around to the start. Passing {-1, -1} asks for
// the first empty slot overall. The second return is false when the board
// is full.
func (s State) NextEmptySlot(from Slot) (Slot, bool) {
	n := len(s.Proverbs)
	if n == 0 {
		return Slot{}, false
	}

	startProverb, startPos := from.Proverb, from.Position+1
	if from.Proverb < 0 || from.Proverb >= n {
		startProverb, startPos = 0, 0
	}

	// k == n revisits the starting proverb from position 0 so the wrap
	// covers slots before from.Position.
	for k := 0; k <= n; k++ {
		pi := (startProverb + k) % n
		pos := 0
		if k == 0 {
			pos = startPos
		}
		count := len(Tokens(s.Proverbs[pi].Solution))
		for ; pos < count; pos++ {
			slot := Slot{Proverb: pi, Position: pos}
			if s.wordAt(slot) < 0 {
				return slot, true
			}
		}
	}
	return Slot{}, false
}
