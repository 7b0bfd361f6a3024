// internal/puzzle/init.go
//
// Puzzle initializer.
// Responsibilities:
//   - Segment each proverb's solution into its canonical word tokens.
//   - Pick per-proverb anchor words (pre-placed, locked) with a
//     length-adaptive count and a filtered random selection.
//   - Emit the initial global word pool and counters.
//
// Notes:
//   - Randomness is confined to this file. Gameplay operations never draw
//     random numbers, so a session is fully reproducible from its initial
//     snapshot.
//   - Callers inject a *rand.Rand for deterministic tests; passing nil gets
//     a source seeded from crypto/rand.

package puzzle

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand"
	"strconv"
	"strings"
	"unicode/utf8"
)

// stopwords are short function words that never qualify as anchors, matched
// case-insensitively. Anchoring "the" teaches the player nothing.
var stopwords = map[string]struct{}{
	"a": {}, "an": {}, "the": {}, "is": {}, "to": {},
	"of": {}, "in": {}, "on": {}, "at": {}, "it": {},
}

// Tokens returns the canonical word tokens of a solution string: the
// whitespace-delimited runs, in order. len(Tokens(p.Solution)) is the
// proverb's canonical word count.
func Tokens(solution string) []string {
	return strings.Fields(solution)
}

// anchorEligible reports whether a token may be chosen as an anchor:
// longer than two characters (runes, so non-Latin scripts count correctly)
// and not a stoplisted function word.
func anchorEligible(token string) bool {
	if utf8.RuneCountInString(token) <= 2 {
		return false
	}
	_, stop := stopwords[strings.ToLower(token)]
	return !stop
}

// targetAnchorCount maps a proverb's word count to the number of anchors the
// initializer aims to lock: short proverbs get one, mid-length two, long
// ones three. The actual count is clamped to the eligible positions.
func targetAnchorCount(wordCount int) int {
	switch {
	case wordCount < 5:
		return 1
	case wordCount <= 9:
		return 2
	default:
		return 3
	}
}

// New builds the initial session state for the given proverbs.
//
// Per proverb: tokens whose position was chosen as an anchor start placed at
// their own correct slot and locked; every other token starts in the tray.
// Anchor positions are drawn uniformly without replacement from the eligible
// positions, up to targetAnchorCount clamped to what is available.
//
// rng may be nil, in which case a crypto-seeded source is used. New is the
// only operation that consumes randomness.
func New(proverbs []Proverb, rng *rand.Rand) State {
	if rng == nil {
		rng = rand.New(rand.NewSource(cryptoSeed()))
	}

	s := State{
		Proverbs:     append([]Proverb(nil), proverbs...),
		Validation:   make([]ProverbValidation, len(proverbs)),
		MeaningShown: make([]bool, len(proverbs)),
		WordHints:    make([]int, len(proverbs)),
		AttemptsLeft: MaxAttempts,
	}

	for pi, p := range proverbs {
		toks := Tokens(p.Solution)

		var eligible []int
		for wi, tok := range toks {
			if anchorEligible(tok) {
				eligible = append(eligible, wi)
			}
		}
		want := targetAnchorCount(len(toks))
		if want > len(eligible) {
			want = len(eligible)
		}

		// Uniform selection without replacement; only set membership
		// matters, so taking a permutation prefix is enough.
		anchored := make(map[int]bool, want)
		for _, k := range rng.Perm(len(eligible))[:want] {
			anchored[eligible[k]] = true
		}

		for wi, tok := range toks {
			w := Word{
				ID:            wordID(pi, wi),
				Text:          tok,
				SourceProverb: pi,
				OriginalIndex: wi,
			}
			if anchored[wi] {
				w.Slot = &Slot{Proverb: pi, Position: wi}
				w.Locked = true
				w.Anchor = true
			}
			s.Words = append(s.Words, w)
		}
	}
	return s
}

// Restart rebuilds the session from its own proverbs: fresh random anchors,
// full attempt budget, no hints. This is the only exit from a failed game.
func (s State) Restart(rng *rand.Rand) State {
	return New(s.Proverbs, rng)
}

// Retry clears every unlocked placement back to the tray while keeping
// locked words, hint usage, and the attempt budget as they are. It does not
// revive a failed game; that requires Restart.
func (s State) Retry() State {
	next := s.clone()
	for i := range next.Words {
		if !next.Words[i].Locked {
			next.Words[i].Slot = nil
		}
	}
	next.resetAllValidation()
	next.Selection = Selection{}
	return next
}

// wordID derives the stable pool identifier for a token.
func wordID(proverbIndex, wordIndex int) string {
	return strconv.Itoa(proverbIndex) + "-" + strconv.Itoa(wordIndex)
}

// cryptoSeed returns a crypto-random int64 for seeding the default source.
func cryptoSeed() int64 {
	var b [8]byte
	_, _ = crand.Read(b[:])
	return int64(binary.BigEndian.Uint64(b[:]))
}
