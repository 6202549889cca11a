// internal/game/validator.go
//
// Answer validation for submitted guesses.
// Two policies are supported behind configuration:
//   - exact: case-insensitive, whitespace-trimmed equality.
//   - fuzzy: word-set overlap against the canonical answer's words;
//     correct when the match ratio reaches the configured threshold.
//
// Validation is a pure predicate: a malformed guess is simply incorrect,
// never an error.

package game

import (
	"strings"

	"github.com/mysterydaily/go-server/internal/catalog"
)

// Match policies.
const (
	PolicyExact = "exact"
	PolicyFuzzy = "fuzzy"
)

// DefaultFuzzyThreshold is the fraction of answer words that must appear
// in a submission for the fuzzy policy to accept it.
const DefaultFuzzyThreshold = 0.8

// Validator decides whether a guess counts as correct.
type Validator struct {
	Policy         string  // PolicyExact | PolicyFuzzy
	FuzzyThreshold float64 // used by PolicyFuzzy; zero means DefaultFuzzyThreshold
}

// NewValidator normalizes the policy config. Unknown policies fall back
// to exact matching.
func NewValidator(policy string, threshold float64) Validator {
	if policy != PolicyFuzzy {
		policy = PolicyExact
	}
	if threshold <= 0 || threshold > 1 {
		threshold = DefaultFuzzyThreshold
	}
	return Validator{Policy: policy, FuzzyThreshold: threshold}
}

// IsCorrect reports whether submitted matches the puzzle answer under the
// configured policy.
func (v Validator) IsCorrect(submitted string, p catalog.Puzzle) bool {
	if v.Policy == PolicyFuzzy {
		return fuzzyMatch(submitted, p.Answer, v.FuzzyThreshold)
	}
	return exactMatch(submitted, p.Answer)
}

// exactMatch is case-insensitive, whitespace-trimmed equality.
func exactMatch(submitted, answer string) bool {
	return strings.EqualFold(strings.TrimSpace(submitted), strings.TrimSpace(answer))
}

// fuzzyMatch computes |submittedWords ∩ answerWords| / |answerWords| and
// accepts at or above threshold. An answer with no words degrades to the
// exact policy to avoid dividing by zero.
func fuzzyMatch(submitted, answer string, threshold float64) bool {
	answerWords := wordSet(answer)
	if len(answerWords) == 0 {
		return exactMatch(submitted, answer)
	}
	submittedWords := wordSet(submitted)

	matched := 0
	for w := range answerWords {
		if _, ok := submittedWords[w]; ok {
			matched++
		}
	}
	return float64(matched)/float64(len(answerWords)) >= threshold
}

// wordSet splits s on whitespace into a set of lower-cased words.
func wordSet(s string) map[string]struct{} {
	out := make(map[string]struct{})
	for _, w := range strings.Fields(strings.ToLower(s)) {
		out[w] = struct{}{}
	}
	return out
}
