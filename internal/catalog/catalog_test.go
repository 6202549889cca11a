package catalog

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	raw := []byte(`[
		{"id":1,"question":"Q1","answer":"a1","hints":["h1"," ","h2"]},
		{"id":2,"question":"  ","answer":"a2","hints":[]},
		{"id":3,"question":"Q3","answer":" a3 ","hints":null}
	]`)

	got, err := Parse(raw)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 puzzles (blank question dropped), got %d", len(got))
	}
	if got[0].ID != 1 || got[1].ID != 3 {
		t.Errorf("unexpected IDs: %d, %d", got[0].ID, got[1].ID)
	}
	if len(got[0].Hints) != 2 {
		t.Errorf("expected blank hint dropped, got %v", got[0].Hints)
	}
	if got[1].Answer != "a3" {
		t.Errorf("expected trimmed answer, got %q", got[1].Answer)
	}
}

func TestParseEmpty(t *testing.T) {
	for _, raw := range []string{`[]`, `[{"id":1,"question":"","answer":"x"}]`} {
		if _, err := Parse([]byte(raw)); !errors.Is(err, ErrEmptyCatalog) {
			t.Errorf("Parse(%s): expected ErrEmptyCatalog, got %v", raw, err)
		}
	}
}

func TestParseInvalidJSON(t *testing.T) {
	if _, err := Parse([]byte(`{not json`)); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoadEmbeddedDefault(t *testing.T) {
	t.Setenv("MYSTERIES_FILE", "")
	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got) == 0 {
		t.Fatal("embedded catalog is empty")
	}
	for _, p := range got {
		if p.Question == "" || p.Answer == "" {
			t.Errorf("puzzle %d has blank question or answer", p.ID)
		}
		if len(p.Hints) == 0 {
			t.Errorf("puzzle %d has no hints", p.ID)
		}
	}
}
