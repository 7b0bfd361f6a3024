// internal/puzzle/types.go
//
// Core type definitions for the proverb puzzle engine.
// Defines:
//   - Proverb: one solution sentence with its culture label and meaning.
//   - Slot: a (proverb, position) coordinate on the board.
//   - Word: one token from the global pool, with its current placement.
//   - ProverbValidation: per-proverb validation result.
//   - Selection: transient UI selection intent (tray word vs. empty slot).
//   - State: the full session snapshot all operations take and return.

package puzzle

// MaxAttempts is the whole-puzzle validation budget for a fresh session.
// Restored only by Restart, never by Retry.
const MaxAttempts = 3

// hintWordShare caps level-2 hints at this share of a proverb's word count.
const hintWordShare = 0.8

// Proverb is one immutable puzzle entry as supplied by the data layer.
// Solution is the source of truth for word segmentation: words are the
// whitespace-delimited tokens of Solution, in order.
type Proverb struct {
	Solution string `json:"solution"`
	Culture  string `json:"culture"`
	Meaning  string `json:"meaning"`
}

// Slot addresses one word position on the board: position Position within
// proverb Proverb. Both are 0-based.
type Slot struct {
	Proverb  int `json:"proverb"`
	Position int `json:"position"`
}

// Word is one entry of the global pool. Every word from every proverb lives
// in the same flat pool and may be placed into any proverb's slots, not just
// its source proverb's.
//
// Slot is nil while the word sits in the tray (unplaced). A locked word
// always has a non-nil Slot and that Slot never changes again.
type Word struct {
	// ID is "{sourceProverb}-{originalIndex}", unique for the session's
	// lifetime and never reassigned.
	ID   string
	Text string

	// SourceProverb and OriginalIndex record where the token came from.
	// They drive hint eligibility and correctness checks only; they do not
	// constrain placement.
	SourceProverb int
	OriginalIndex int

	Slot   *Slot
	Locked bool

	// Anchor marks words locked by the initializer, as opposed to words
	// locked later by hints or per-proverb validation.
	Anchor bool
}

// Placed reports whether the word currently occupies a board slot.
func (w Word) Placed() bool { return w.Slot != nil }

// ProverbValidation is the per-proverb check result. Any placement change
// resets it, because a word can move across proverb boundaries.
type ProverbValidation struct {
	Solved    bool
	Validated bool
}

// Selection tracks the host UI's placement intent: either a tray word or an
// empty board slot is selected, never both. AutoFocus is the engine's
// suggestion for the next slot to fill, maintained so the host can support
// rapid sequential placement without drag gestures.
type Selection struct {
	WordID    string
	Slot      *Slot
	AutoFocus *Slot
}

// State is one immutable snapshot of a puzzle session. Operations are value
// methods returning a fresh snapshot; callers must treat the old one as
// frozen. Invalid requests return the receiver unchanged (silent no-op).
type State struct {
	Proverbs   []Proverb
	Words      []Word
	Validation []ProverbValidation

	Completed bool
	Failed    bool

	AttemptsLeft  int
	TotalAttempts int

	// MeaningShown[i] is true once the level-1 hint revealed proverb i's
	// meaning. WordHints[i] counts level-2 auto-placements for proverb i.
	MeaningShown []bool
	WordHints    []int
	TotalHints   int

	Selection Selection
}
