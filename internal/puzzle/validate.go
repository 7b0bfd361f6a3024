// internal/puzzle/validate.go
//
// Validation engine, two modes:
//   - ValidateAll: whole-puzzle check. Costs one attempt from a fixed
//     budget and can end the game.
//   - ValidateProverb: free single-proverb check. Locks correct words in
//     place and evicts incorrect ones back to the tray.
//
// Comparison is whitespace- and case-insensitive but otherwise exact:
// punctuation differences are legitimate failures, and non-ASCII scripts
// (the data set includes Hebrew) pass through untouched.

package puzzle

import "strings"

// ValidateAll checks every proverb against its solution, consuming one
// validation attempt.
//
// A proverb whose placed-word count differs from its canonical count is
// marked validated-but-unsolved without comparing text. The attempt is
// consumed regardless of outcome. Completed is set when every proverb
// solved; Failed is set when the budget hits zero without a full solve.
// A failed or out-of-attempts session is a no-op.
func (s State) ValidateAll() State {
	if s.Failed || s.AttemptsLeft <= 0 {
		return s
	}

	next := s.clone()
	allSolved := true
	for pi := range next.Proverbs {
		toks := Tokens(next.Proverbs[pi].Solution)
		placed := next.placedIndexes(pi)
		if len(placed) != len(toks) {
			next.Validation[pi] = ProverbValidation{Validated: true}
			allSolved = false
			continue
		}

		parts := make([]string, 0, len(placed))
		for _, wi := range placed {
			parts = append(parts, next.Words[wi].Text)
		}
		assembled := strings.Join(parts, " ")

		if normalizeSentence(assembled) == normalizeSentence(next.Proverbs[pi].Solution) {
			next.Validation[pi] = ProverbValidation{Solved: true, Validated: true}
		} else {
			next.Validation[pi] = ProverbValidation{Validated: true}
			allSolved = false
		}
	}

	next.AttemptsLeft--
	next.TotalAttempts++
	next.Completed = allSolved
	if !allSolved && next.AttemptsLeft <= 0 {
		next.Failed = true
	}
	return next
}

// ValidateProverb checks a single proverb for free.
//
// Requires the proverb to be fully filled; partially filled proverbs are a
// silent no-op, as are already-solved proverbs and failed sessions. Each
// placed word is compared case-insensitively against the canonical token at
// its position: matches lock in place (and stay locked even if the proverb
// as a whole turns out wrong), mismatches are evicted to the tray unlocked.
// Never touches the attempt budget.
func (s State) ValidateProverb(pi int) State {
	if pi < 0 || pi >= len(s.Proverbs) {
		return s
	}
	if s.Failed || s.Validation[pi].Solved {
		return s
	}
	toks := Tokens(s.Proverbs[pi].Solution)
	placed := s.placedIndexes(pi)
	if len(placed) != len(toks) {
		return s
	}

	next := s.clone()
	solved := true
	for _, wi := range next.placedIndexes(pi) {
		w := &next.Words[wi]
		if strings.EqualFold(w.Text, toks[w.Slot.Position]) {
			w.Locked = true
		} else {
			w.Slot = nil
			solved = false
		}
	}
	next.Validation[pi] = ProverbValidation{Solved: solved, Validated: true}
	next.Completed = next.allSolved()
	return next
}

// normalizeSentence lowercases and collapses whitespace runs to single
// spaces, trimming the ends. Nothing else is touched: no punctuation
// stripping, no script filtering.
func normalizeSentence(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}
