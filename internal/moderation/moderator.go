// Package moderation masks censored words in chat text.
package moderation

import (
	"slices"
	"unicode"

	goahocorasick "github.com/anknown/ahocorasick"
)

type Moderator struct {
	matcher  *goahocorasick.Machine
	maskChar rune
}

// NewModerator builds the automaton over the normalized word list. It
// returns nil when there is nothing to censor.
func NewModerator(words []string, maskChar rune) (*Moderator, error) {
	keys := make([]string, 0, len(words))
	for _, w := range words {
		if p := normalizeRunes([]rune(w)); len(p) > 0 {
			keys = append(keys, string(p))
		}
	}
	if len(keys) == 0 {
		return nil, nil
	}
	// The double-array trie wants sorted, unique keys.
	slices.Sort(keys)
	keys = slices.Compact(keys)
	patterns := make([][]rune, len(keys))
	for i, k := range keys {
		patterns[i] = []rune(k)
	}
	m := new(goahocorasick.Machine)
	if err := m.Build(patterns); err != nil {
		return nil, err
	}
	return &Moderator{matcher: m, maskChar: maskChar}, nil
}

// Censor replaces every matched word with the mask rune, keeping the
// original spacing and punctuation around it.
func (m *Moderator) Censor(original string) string {
	norm, origIdx := normalize(original)
	if len(norm) == 0 {
		return original
	}
	terms := m.matcher.MultiPatternSearch(norm, false)
	if len(terms) == 0 {
		return original
	}
	out := []rune(original)
	for _, term := range terms {
		start := term.Pos
		end := start + len(term.Word)
		if start < 0 || end > len(origIdx) {
			continue
		}
		for i := origIdx[start]; i <= origIdx[end-1]; i++ {
			out[i] = m.maskChar
		}
	}
	return string(out)
}

func normalize(input string) ([]rune, []int) {
	runes := []rune(input)
	norm := make([]rune, 0, len(runes))
	idx := make([]int, 0, len(runes))
	for i, r := range runes {
		r = simplifyRune(r)
		if isNoise(r) {
			continue
		}
		norm = append(norm, unicode.ToLower(r))
		idx = append(idx, i)
	}
	return norm, idx
}

func normalizeRunes(input []rune) []rune {
	out := make([]rune, 0, len(input))
	for _, r := range input {
		r = simplifyRune(r)
		if isNoise(r) {
			continue
		}
		out = append(out, unicode.ToLower(r))
	}
	return out
}

// simplifyRune folds common leet substitutions.
func simplifyRune(r rune) rune {
	switch r {
	case '4', '@':
		return 'a'
	case '3':
		return 'e'
	case '1', '!', '|':
		return 'i'
	case '0':
		return 'o'
	case '5', '$':
		return 's'
	}
	return r
}

func isNoise(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSpace(r) || unicode.IsSymbol(r)
}
