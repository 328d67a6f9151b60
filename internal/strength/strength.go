// Package strength implements the content-derived entropy model and the
// categorical strength labels.
package strength

import (
	"math"
	"unicode/utf8"

	"github.com/mkarlsson/passforge/internal/models"
)

// Pool contributions per detected character class. The special pool is a
// flat constant matching the generator's six-character special alphabet,
// regardless of which special characters actually appear.
const (
	lowerPool   = 26
	upperPool   = 26
	digitPool   = 10
	specialPool = 6
)

// Entropy returns the entropy of the password in bits:
// log2(poolSize) * length, where poolSize is recomputed from the actual
// content. An input with no recognizable class (unreachable for non-empty
// strings) falls back to the lowercase pool.
func Entropy(password string) float64 {
	pool := poolSize(password)
	return math.Log2(float64(pool)) * float64(utf8.RuneCountInString(password))
}

func poolSize(password string) int {
	var lower, upper, digit, special bool
	for _, c := range password {
		switch {
		case c >= 'a' && c <= 'z':
			lower = true
		case c >= 'A' && c <= 'Z':
			upper = true
		case c >= '0' && c <= '9':
			digit = true
		default:
			special = true
		}
	}

	pool := 0
	if lower {
		pool += lowerPool
	}
	if upper {
		pool += upperPool
	}
	if digit {
		pool += digitPool
	}
	if special {
		pool += specialPool
	}
	if pool == 0 {
		pool = lowerPool
	}
	return pool
}

// Label maps an entropy value in bits to its strength category.
func Label(entropy float64) string {
	switch {
	case entropy < 40:
		return "Weak"
	case entropy < 60:
		return "Moderate"
	case entropy < 80:
		return "Strong"
	default:
		return "Very Strong"
	}
}

// Score produces the full report for a password: entropy, label, and a
// progress-bar percentage capped at 100 (128 bits = full bar).
func Score(password string) models.StrengthReport {
	e := Entropy(password)
	return models.StrengthReport{
		Entropy:    e,
		Label:      Label(e),
		Percentage: math.Min(100, e/128*100),
	}
}
