package search

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownAlgorithm is returned by Lookup for a name it does not know.
var ErrUnknownAlgorithm = errors.New("search: unknown algorithm")

// Searcher finds exact occurrences of a pattern in a text. The Find*Index
// methods return the first offset or -1. The FindAll* methods return every
// offset, overlapping occurrences included. An empty pattern never matches.
type Searcher interface {
	FindIndex(text, pattern []byte) int
	FindIndexString(text, pattern string) int
	FindAll(text, pattern []byte) []int
	FindAllString(text, pattern string) []int
}

// Lookup returns the Searcher registered under name ("kmp" or "rabin-karp").
func Lookup(name string) (Searcher, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "kmp", "knuth-morris-pratt":
		return NewKnuthMorrisPratt(), nil
	case "rk", "rabin-karp":
		return NewRabinKarp(), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// Knuth-Morris-Pratt:
// Works by pre-analyzing the pattern, and tries to re-use whatever was already matched in the
// initial part of the pattern to avoid having to rematch that. This can work quite well, if your
// alphabet is small (f.ex. DNA bases), as you get a higher chance that your search patterns
// contain re-usable sub-patterns. The text cursor never moves backwards.

// Rabin-Karp:
// Works by utilizing efficient computation of hash values of the successive substrings of the text,
// which it then uses for comparing matches. It is best on large text in which you are finding multiple
// pattern matches, like detecting plagiarism.
