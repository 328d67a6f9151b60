// Package generator provides cryptographically secure password generation:
// a random-charset generator with guaranteed class coverage and a word-based
// memorable generator.
package generator

import (
	"crypto/rand"
	"errors"
	"math/big"

	"github.com/mkarlsson/passforge/internal/models"
)

const (
	lowercase = "abcdefghijklmnopqrstuvwxyz"
	uppercase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digits    = "0123456789"
	// Specials is the fixed special-character alphabet shared by both
	// generators and by the entropy pool model.
	Specials = "!@#-?_"
)

const (
	// MinLength and MaxLength bound the random generator's length parameter.
	MinLength = 8
	MaxLength = 32
)

// ErrLengthOutOfRange is returned when the requested length is outside [8, 32].
var ErrLengthOutOfRange = errors.New("password length must be between 8 and 32")

// Random generates a password of exactly params.Length characters.
// Lowercase letters are always included. For every enabled optional class
// at least one character of that class is guaranteed to appear: one character
// per enabled class is drawn first (uppercase, then numbers, then special),
// the remainder is drawn from the union charset, and the whole sequence is
// shuffled with a uniform Fisher-Yates pass.
func Random(params models.RandomParams) (string, error) {
	if params.Length < MinLength || params.Length > MaxLength {
		return "", ErrLengthOutOfRange
	}

	charset := lowercase
	var mandatory []string
	if params.IncludeUppercase {
		charset += uppercase
		mandatory = append(mandatory, uppercase)
	}
	if params.IncludeNumbers {
		charset += digits
		mandatory = append(mandatory, digits)
	}
	if params.IncludeSpecial {
		charset += Specials
		mandatory = append(mandatory, Specials)
	}

	out := make([]byte, 0, params.Length)
	for _, class := range mandatory {
		idx, err := randInt(len(class))
		if err != nil {
			return "", err
		}
		out = append(out, class[idx])
	}
	for len(out) < params.Length {
		idx, err := randInt(len(charset))
		if err != nil {
			return "", err
		}
		out = append(out, charset[idx])
	}

	if err := shuffleBytes(out); err != nil {
		return "", err
	}
	return string(out), nil
}

// shuffleBytes performs a uniform Fisher-Yates shuffle in place.
func shuffleBytes(b []byte) error {
	for i := len(b) - 1; i > 0; i-- {
		j, err := randInt(i + 1)
		if err != nil {
			return err
		}
		b[i], b[j] = b[j], b[i]
	}
	return nil
}

// randInt returns a uniform random int in [0, max) using crypto/rand.
func randInt(max int) (int, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(max)))
	if err != nil {
		return 0, err
	}
	return int(n.Int64()), nil
}
