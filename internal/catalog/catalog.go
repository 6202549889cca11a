// internal/catalog/catalog.go
//
// Mystery catalog management.
//
// Responsibilities:
//   - Load the mystery list from an environment-provided file or fall back
//     to the embedded default catalog.
//   - Normalize entries (trimmed question/answer, non-empty hints kept).
//   - Guarantee a non-empty catalog: daily selection cannot work otherwise.
//
// Environment variables:
//   MYSTERIES_FILE=/path/to/mysteries.json
//
// Initialization behavior (Load):
//   1. If MYSTERIES_FILE is set, load and parse that file.
//   2. Otherwise fall back to the embedded `assets/mysteries.json`.
//
// The catalog is immutable once loaded; callers receive the backing slice
// and must treat it as read-only.

package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/mysterydaily/go-server/assets"
)

// ErrEmptyCatalog is returned when loading yields zero usable mysteries.
// This is fatal at startup: the daily selector has nothing to select from.
var ErrEmptyCatalog = errors.New("catalog: no mysteries loaded")

// Puzzle is one daily mystery: a riddle, its canonical answer, and an
// ordered list of hints revealed one at a time.
type Puzzle struct {
	ID       int      `json:"id"`
	Question string   `json:"question"`
	Answer   string   `json:"answer"`
	Hints    []string `json:"hints"`
}

// Load reads the mystery catalog once at startup.
// Returns ErrEmptyCatalog if the resulting list is empty.
func Load() ([]Puzzle, error) {
	var raw []byte
	var err error

	if path := os.Getenv("MYSTERIES_FILE"); path != "" {
		raw, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
	} else {
		raw, err = assets.MysteriesJSON()
		if err != nil {
			return nil, fmt.Errorf("read embedded catalog: %w", err)
		}
	}
	return Parse(raw)
}

// Parse decodes and normalizes a JSON catalog.
// Entries with an empty question or answer are dropped.
func Parse(raw []byte) ([]Puzzle, error) {
	var list []Puzzle
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	out := make([]Puzzle, 0, len(list))
	for _, p := range list {
		p.Question = strings.TrimSpace(p.Question)
		p.Answer = strings.TrimSpace(p.Answer)
		if p.Question == "" || p.Answer == "" {
			continue
		}
		hints := make([]string, 0, len(p.Hints))
		for _, h := range p.Hints {
			if h = strings.TrimSpace(h); h != "" {
				hints = append(hints, h)
			}
		}
		p.Hints = hints
		out = append(out, p)
	}

	if len(out) == 0 {
		return nil, ErrEmptyCatalog
	}
	return out, nil
}
