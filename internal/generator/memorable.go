package generator

import (
	"errors"
	"strings"

	"github.com/mkarlsson/passforge/internal/models"
)

// ErrWordCountOutOfRange is returned when the requested word count is
// outside [1, 5].
var ErrWordCountOutOfRange = errors.New("word count must be between 1 and 5")

// Memorable generates a word-based password. Words are drawn uniformly with
// replacement from the language's word list, optionally title-cased. Extras
// (one random digit and/or one random special character) are shuffled and
// inserted at distinct word boundaries in ascending slot order, with no
// separators anywhere.
func Memorable(params models.MemorableParams) (string, error) {
	if params.WordCount < 1 || params.WordCount > 5 {
		return "", ErrWordCountOutOfRange
	}

	list := wordList(params.Language)
	words := make([]string, params.WordCount)
	for i := range words {
		idx, err := randInt(len(list))
		if err != nil {
			return "", err
		}
		w := list[idx]
		if params.IncludeUppercase {
			w = strings.ToUpper(w[:1]) + w[1:]
		}
		words[i] = w
	}

	var extras []string
	if params.IncludeNumbers {
		idx, err := randInt(len(digits))
		if err != nil {
			return "", err
		}
		extras = append(extras, string(digits[idx]))
	}
	if params.IncludeSpecial {
		idx, err := randInt(len(Specials))
		if err != nil {
			return "", err
		}
		extras = append(extras, string(Specials[idx]))
	}
	if err := shuffleStrings(extras); err != nil {
		return "", err
	}

	return insertAtBoundaries(words, extras)
}

// insertAtBoundaries places each extra at a distinct boundary slot. With n
// words there are n+1 slots: before word 0, between each pair, after the
// last word. Chosen slots are sorted ascending and extras are emitted in
// their shuffled order as the slots are walked.
func insertAtBoundaries(words, extras []string) (string, error) {
	slots, err := pickSlots(len(words)+1, len(extras))
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	next := 0
	for slot := 0; slot <= len(words); slot++ {
		if next < len(slots) && slots[next] == slot {
			sb.WriteString(extras[next])
			next++
		}
		if slot < len(words) {
			sb.WriteString(words[slot])
		}
	}
	return sb.String(), nil
}

// pickSlots draws k distinct values from [0, n) and returns them sorted
// ascending. Uses a partial Fisher-Yates over the slot indices.
func pickSlots(n, k int) ([]int, error) {
	all := make([]int, n)
	for i := range all {
		all[i] = i
	}
	for i := 0; i < k; i++ {
		j, err := randInt(n - i)
		if err != nil {
			return nil, err
		}
		all[i], all[i+j] = all[i+j], all[i]
	}
	chosen := all[:k]
	// Insertion sort; k is at most 2.
	for i := 1; i < len(chosen); i++ {
		for j := i; j > 0 && chosen[j] < chosen[j-1]; j-- {
			chosen[j], chosen[j-1] = chosen[j-1], chosen[j]
		}
	}
	return chosen, nil
}

// shuffleStrings performs a uniform Fisher-Yates shuffle in place.
func shuffleStrings(s []string) error {
	for i := len(s) - 1; i > 0; i-- {
		j, err := randInt(i + 1)
		if err != nil {
			return err
		}
		s[i], s[j] = s[j], s[i]
	}
	return nil
}
