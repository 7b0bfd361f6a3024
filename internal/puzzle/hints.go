// internal/puzzle/hints.go
//
// Two-level hint engine, tracked per proverb:
//   - Level 1 reveals the proverb's meaning text. Free, one-time.
//   - Level 2 auto-places one correct word, capped at 80% of the proverb's
//     word count.

package puzzle

// UseHint advances the hint level for proverb pi.
//
// The first call reveals the meaning (level 1). Once the meaning is shown,
// further calls auto-place a word (level 2): the target is the lowest empty
// position, and the preferred word is the candidate that originally sat at
// that position. When that word is unavailable (placed elsewhere or already
// locked), the first remaining candidate from the proverb's own pool is
// placed instead, even though it is wrong for that slot; the hint still
// counts. Candidates are unplaced, unlocked words sourced from pi.
//
// No-ops: solved proverb, failed session, level-2 cap reached, no
// candidates, no empty slot.
func (s State) UseHint(pi int) State {
	if pi < 0 || pi >= len(s.Proverbs) {
		return s
	}
	if s.Failed || s.Validation[pi].Solved {
		return s
	}

	if !s.MeaningShown[pi] {
		next := s.clone()
		next.MeaningShown[pi] = true
		next.TotalHints++
		return next
	}

	toks := Tokens(s.Proverbs[pi].Solution)
	maxHintWords := int(float64(len(toks)) * hintWordShare)
	if s.WordHints[pi] >= maxHintWords {
		return s
	}

	var candidates []int
	for wi, w := range s.Words {
		if w.Slot == nil && !w.Locked && w.SourceProverb == pi {
			candidates = append(candidates, wi)
		}
	}
	if len(candidates) == 0 {
		return s
	}

	target := -1
	for pos := range toks {
		if s.wordAt(Slot{Proverb: pi, Position: pos}) < 0 {
			target = pos
			break
		}
	}
	if target < 0 {
		return s
	}

	chosen := candidates[0]
	for _, wi := range candidates {
		if s.Words[wi].OriginalIndex == target {
			chosen = wi
			break
		}
	}

	next := s.clone()
	next.Words[chosen].Slot = &Slot{Proverb: pi, Position: target}
	next.WordHints[pi]++
	next.TotalHints++
	next.resetAllValidation()
	return next
}

// MaxHintWords reports the level-2 hint cap for proverb pi.
func (s State) MaxHintWords(pi int) int {
	if pi < 0 || pi >= len(s.Proverbs) {
		return 0
	}
	return int(float64(len(Tokens(s.Proverbs[pi].Solution))) * hintWordShare)
}
