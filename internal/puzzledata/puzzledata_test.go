package puzzledata

import (
	"strings"
	"testing"

	"github.com/noam-r/proverb-pile/internal/puzzle"
)

func validSet() Set {
	return Set{
		Version:  "1",
		Language: "en",
		Proverbs: []puzzle.Proverb{
			{Solution: "haste makes waste", Culture: "English", Meaning: "Rushing causes mistakes."},
			{Solution: "still waters run deep", Culture: "Latin", Meaning: "Quiet people hide depth."},
			{Solution: "practice makes perfect", Culture: "English", Meaning: "Repetition builds skill."},
		},
	}
}

func TestValidateAccepts(t *testing.T) {
	if err := Validate(validSet()); err != nil {
		t.Fatalf("valid set rejected: %v", err)
	}

	he := validSet()
	he.Language = "he"
	he.Proverbs[0] = puzzle.Proverb{Solution: "טובים השניים מן האחד", Culture: "Hebrew", Meaning: "Two beat one."}
	if err := Validate(he); err != nil {
		t.Fatalf("valid Hebrew set rejected: %v", err)
	}
}

func TestValidateRejects(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Set)
	}{
		{"bad language", func(s *Set) { s.Language = "fr" }},
		{"too few proverbs", func(s *Set) { s.Proverbs = s.Proverbs[:2] }},
		{"too many proverbs", func(s *Set) {
			extra := s.Proverbs[0]
			s.Proverbs = append(s.Proverbs, extra, extra)
		}},
		{"empty solution", func(s *Set) { s.Proverbs[1].Solution = "   " }},
		{"empty culture", func(s *Set) { s.Proverbs[1].Culture = "" }},
		{"empty meaning", func(s *Set) { s.Proverbs[1].Meaning = "" }},
		{"too few words", func(s *Set) { s.Proverbs[0].Solution = "haste makes" }},
		{"too many words", func(s *Set) {
			s.Proverbs[0].Solution = strings.Repeat("word ", 11)
		}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			set := validSet()
			c.mutate(&set)
			if err := Validate(set); err == nil {
				t.Error("invalid set accepted")
			}
		})
	}
}

func TestDecode(t *testing.T) {
	payload := `{
		"version": "1",
		"language": "en",
		"proverbs": [
			{"solution": "haste makes waste", "culture": "English", "meaning": "m"},
			{"solution": "still waters run deep", "culture": "Latin", "meaning": "m"},
			{"solution": "practice makes perfect", "culture": "English", "meaning": "m"}
		]
	}`
	set, err := Decode(strings.NewReader(payload))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(set.Proverbs) != 3 || set.Proverbs[2].Solution != "practice makes perfect" {
		t.Errorf("decoded set = %+v", set)
	}

	if _, err := Decode(strings.NewReader(`{"language":"en","proverbs":[]}`)); err == nil {
		t.Error("invalid payload decoded without error")
	}
	if _, err := Decode(strings.NewReader(`not json`)); err == nil {
		t.Error("malformed JSON decoded without error")
	}
}

func TestInitEmbeddedCatalog(t *testing.T) {
	if err := Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if Count() < 2 {
		t.Fatalf("embedded catalog has %d puzzles, want at least 2", Count())
	}
	set, err := Get(0)
	if err != nil {
		t.Fatalf("Get(0): %v", err)
	}
	if err := Validate(set); err != nil {
		t.Errorf("embedded puzzle invalid: %v", err)
	}
	if _, err := Get(Count()); err == nil {
		t.Error("out-of-range Get succeeded")
	}
}
