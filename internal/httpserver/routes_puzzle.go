// internal/httpserver/routes_puzzle.go
//
// HTTP routes for puzzle sessions. Exposes the engine's operations under
// /puzzle:
//   - POST /puzzle/new                            → start a session
//   - GET  /puzzle/catalog                        → built-in puzzle list
//   - GET  /puzzle/{id}                           → current state view
//   - POST /puzzle/{id}/move                      → place/relocate a word
//   - POST /puzzle/{id}/remove                    → unplace a word
//   - POST /puzzle/{id}/validate                  → whole-puzzle check (costs an attempt)
//   - POST /puzzle/{id}/proverbs/{index}/validate → free single-proverb check
//   - POST /puzzle/{id}/proverbs/{index}/hint     → advance that proverb's hint level
//   - POST /puzzle/{id}/retry                     → clear unlocked placements
//   - POST /puzzle/{id}/restart                   → full re-initialization
//   - POST /puzzle/{id}/select                    → update selection intent
//
// Every mutating route applies one engine operation to the stored snapshot
// and saves the result. The engine treats invalid requests as silent no-ops,
// so these handlers return 200 with the (possibly unchanged) state; only
// malformed payloads and unknown ids are HTTP errors. A session's first
// transition into completed or failed is persisted as a result row.

package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/noam-r/proverb-pile/internal/puzzle"
	"github.com/noam-r/proverb-pile/internal/puzzledata"
	"github.com/noam-r/proverb-pile/internal/results"
	"github.com/noam-r/proverb-pile/internal/store"
)

// mountPuzzle registers all /puzzle routes.
func (s *Server) mountPuzzle(r chi.Router) {
	r.Route("/puzzle", func(r chi.Router) {
		r.Get("/catalog", s.handleCatalog)
		r.Post("/new", s.handleNewPuzzle)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.handleGetPuzzle)
			r.Post("/move", s.handleMove)
			r.Post("/remove", s.handleRemove)
			r.Post("/validate", s.handleValidateAll)
			r.Post("/proverbs/{index}/validate", s.handleValidateProverb)
			r.Post("/proverbs/{index}/hint", s.handleHint)
			r.Post("/retry", s.handleRetry)
			r.Post("/restart", s.handleRestart)
			r.Post("/select", s.handleSelect)
		})
	})
}

// ------------------------------ view types ---------------------------------

// The view deliberately withholds solutions, and meanings until the level-1
// hint reveals them; clients get word counts and placed words only.

type slotView struct {
	Proverb  int `json:"proverb"`
	Position int `json:"position"`
}

type wordView struct {
	ID     string    `json:"id"`
	Text   string    `json:"text"`
	Slot   *slotView `json:"slot,omitempty"`
	Locked bool      `json:"locked"`
	Anchor bool      `json:"anchor,omitempty"`
}

type proverbView struct {
	Culture      string `json:"culture"`
	WordCount    int    `json:"wordCount"`
	Meaning      string `json:"meaning,omitempty"` // only after the level-1 hint
	Solved       bool   `json:"solved"`
	Validated    bool   `json:"validated"`
	MeaningShown bool   `json:"meaningShown"`
	WordHints    int    `json:"wordHintsUsed"`
	MaxWordHints int    `json:"maxWordHints"`
}

type selectionView struct {
	WordID    string    `json:"wordId,omitempty"`
	Slot      *slotView `json:"slot,omitempty"`
	AutoFocus *slotView `json:"autoFocus,omitempty"`
}

type sessionView struct {
	ID            string        `json:"id"`
	Language      string        `json:"language"`
	Proverbs      []proverbView `json:"proverbs"`
	Words         []wordView    `json:"words"`
	Completed     bool          `json:"completed"`
	Failed        bool          `json:"failed"`
	AttemptsLeft  int           `json:"attemptsLeft"`
	TotalAttempts int           `json:"totalAttempts"`
	TotalHints    int           `json:"totalHints"`
	Selection     selectionView `json:"selection"`
}

func slotViewOf(sl *puzzle.Slot) *slotView {
	if sl == nil {
		return nil
	}
	return &slotView{Proverb: sl.Proverb, Position: sl.Position}
}

// viewOf renders a session for the client. Solutions never leave the
// server; meanings only once revealed.
func viewOf(sess *store.Session) sessionView {
	st := sess.State
	v := sessionView{
		ID:            sess.ID,
		Language:      sess.Data.Language,
		Completed:     st.Completed,
		Failed:        st.Failed,
		AttemptsLeft:  st.AttemptsLeft,
		TotalAttempts: st.TotalAttempts,
		TotalHints:    st.TotalHints,
		Selection: selectionView{
			WordID:    st.Selection.WordID,
			Slot:      slotViewOf(st.Selection.Slot),
			AutoFocus: slotViewOf(st.Selection.AutoFocus),
		},
	}
	for i, p := range st.Proverbs {
		pv := proverbView{
			Culture:      p.Culture,
			WordCount:    len(puzzle.Tokens(p.Solution)),
			Solved:       st.Validation[i].Solved,
			Validated:    st.Validation[i].Validated,
			MeaningShown: st.MeaningShown[i],
			WordHints:    st.WordHints[i],
			MaxWordHints: st.MaxHintWords(i),
		}
		if st.MeaningShown[i] {
			pv.Meaning = p.Meaning
		}
		v.Proverbs = append(v.Proverbs, pv)
	}
	for _, w := range st.Words {
		v.Words = append(v.Words, wordView{
			ID:     w.ID,
			Text:   w.Text,
			Slot:   slotViewOf(w.Slot),
			Locked: w.Locked,
			Anchor: w.Anchor,
		})
	}
	return v
}

// ------------------------------ /puzzle/new --------------------------------

// newPuzzleReq selects a catalog entry or carries an inline puzzle payload.
type newPuzzleReq struct {
	PuzzleIndex *int            `json:"puzzleIndex,omitempty"`
	Puzzle      json.RawMessage `json:"puzzle,omitempty"`
}

type catalogEntry struct {
	Index    int    `json:"index"`
	Language string `json:"language"`
	Proverbs int    `json:"proverbs"`
}

// handleCatalog lists the built-in puzzles.
func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	out := make([]catalogEntry, 0, puzzledata.Count())
	for i := 0; i < puzzledata.Count(); i++ {
		set, err := puzzledata.Get(i)
		if err != nil {
			continue
		}
		out = append(out, catalogEntry{Index: i, Language: set.Language, Proverbs: len(set.Proverbs)})
	}
	_ = json.NewEncoder(w).Encode(out)
}

// handleNewPuzzle initializes a fresh session from a catalog entry
// (puzzleIndex, default 0) or an inline payload (puzzle).
func (s *Server) handleNewPuzzle(w http.ResponseWriter, r *http.Request) {
	var req newPuzzleReq
	_ = json.NewDecoder(r.Body).Decode(&req)

	var set puzzledata.Set
	switch {
	case len(req.Puzzle) > 0:
		var err error
		set, err = puzzledata.Decode(bytes.NewReader(req.Puzzle))
		if err != nil {
			http.Error(w, `{"error":"`+err.Error()+`"}`, http.StatusBadRequest)
			return
		}
	default:
		idx := 0
		if req.PuzzleIndex != nil {
			idx = *req.PuzzleIndex
		}
		var err error
		set, err = puzzledata.Get(idx)
		if err != nil {
			http.Error(w, `{"error":"unknown_puzzle"}`, http.StatusNotFound)
			return
		}
	}

	sess := store.NewSession(set, puzzle.New(set.Proverbs, nil))
	if err := s.store.Save(r.Context(), sess); err != nil {
		log.Error().Err(err).Msg("save session")
		http.Error(w, `{"error":"save_failed"}`, http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(viewOf(sess))
}

// ---------------------------- session plumbing -----------------------------

// loadSession fetches the session addressed by the {id} URL parameter,
// writing the HTTP error itself when missing.
func (s *Server) loadSession(w http.ResponseWriter, r *http.Request) (*store.Session, bool) {
	sess, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
		return nil, false
	}
	return sess, true
}

// applyOp runs one engine operation against the stored snapshot, saves the
// result, records a finished game, and responds with the new view.
func (s *Server) applyOp(w http.ResponseWriter, r *http.Request, op func(puzzle.State) puzzle.State) {
	sess, ok := s.loadSession(w, r)
	if !ok {
		return
	}
	before := sess.State
	sess.State = op(before)
	if err := s.store.Save(r.Context(), sess); err != nil {
		log.Error().Err(err).Msg("save session")
		http.Error(w, `{"error":"save_failed"}`, http.StatusInternalServerError)
		return
	}
	s.recordIfFinished(w, r, sess, before)
	_ = json.NewEncoder(w).Encode(viewOf(sess))
}

// recordIfFinished persists a result row the moment a session first becomes
// completed or failed. Best effort; a DB hiccup never fails the request.
func (s *Server) recordIfFinished(w http.ResponseWriter, r *http.Request, sess *store.Session, before puzzle.State) {
	st := sess.State
	finishedNow := (!before.Completed && st.Completed) || (!before.Failed && st.Failed)
	if !finishedNow {
		return
	}
	res := results.Result{
		Language:  sess.Data.Language,
		Proverbs:  len(sess.Data.Proverbs),
		Solved:    st.Completed,
		Attempts:  st.TotalAttempts,
		Hints:     st.TotalHints,
		ElapsedMs: int(time.Since(sess.CreatedAt).Milliseconds()),
	}
	if me, _ := r.Context().Value(ctxUserKey{}).(*authUser); me != nil {
		res.UserID = me.ID
	} else {
		res.AnonymousID = s.ensureAnonID(w, r)
	}
	if err := s.results.Insert(r.Context(), res); err != nil {
		log.Warn().Err(err).Str("session", sess.ID).Msg("insert result")
	}
}

// proverbIndex parses the {index} URL parameter; -1 when malformed.
func proverbIndex(r *http.Request) int {
	n, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		return -1
	}
	return n
}

// ----------------------------- operations ----------------------------------

type moveReq struct {
	WordID   string `json:"wordId"`
	Proverb  int    `json:"proverb"`
	Position int    `json:"position"`
}

func (s *Server) handleGetPuzzle(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.loadSession(w, r)
	if !ok {
		return
	}
	_ = json.NewEncoder(w).Encode(viewOf(sess))
}

func (s *Server) handleMove(w http.ResponseWriter, r *http.Request) {
	var req moveReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	s.applyOp(w, r, func(st puzzle.State) puzzle.State {
		return st.MoveWord(req.WordID, puzzle.Slot{Proverb: req.Proverb, Position: req.Position})
	})
}

func (s *Server) handleRemove(w http.ResponseWriter, r *http.Request) {
	var req struct {
		WordID string `json:"wordId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	s.applyOp(w, r, func(st puzzle.State) puzzle.State {
		return st.RemoveWord(req.WordID)
	})
}

func (s *Server) handleValidateAll(w http.ResponseWriter, r *http.Request) {
	s.applyOp(w, r, puzzle.State.ValidateAll)
}

func (s *Server) handleValidateProverb(w http.ResponseWriter, r *http.Request) {
	idx := proverbIndex(r)
	s.applyOp(w, r, func(st puzzle.State) puzzle.State {
		return st.ValidateProverb(idx)
	})
}

func (s *Server) handleHint(w http.ResponseWriter, r *http.Request) {
	idx := proverbIndex(r)
	s.applyOp(w, r, func(st puzzle.State) puzzle.State {
		return st.UseHint(idx)
	})
}

func (s *Server) handleRetry(w http.ResponseWriter, r *http.Request) {
	s.applyOp(w, r, puzzle.State.Retry)
}

func (s *Server) handleRestart(w http.ResponseWriter, r *http.Request) {
	s.applyOp(w, r, func(st puzzle.State) puzzle.State {
		return st.Restart(nil)
	})
}

// selectReq carries one of three intents: a tray word, an empty slot, or
// nothing (clear).
type selectReq struct {
	WordID   *string `json:"wordId,omitempty"`
	Proverb  *int    `json:"proverb,omitempty"`
	Position *int    `json:"position,omitempty"`
}

func (s *Server) handleSelect(w http.ResponseWriter, r *http.Request) {
	var req selectReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	s.applyOp(w, r, func(st puzzle.State) puzzle.State {
		switch {
		case req.WordID != nil:
			return st.SelectWord(*req.WordID)
		case req.Proverb != nil && req.Position != nil:
			return st.SelectSlot(puzzle.Slot{Proverb: *req.Proverb, Position: *req.Position})
		default:
			return st.ClearSelection()
		}
	})
}
