// Package models defines the core data structures for presets, share links,
// and operation results.
package models

import (
	"regexp"
	"time"
)

// PasswordPreset is a named generation configuration. The JSON field names
// match the on-disk preset file format and must not change.
type PasswordPreset struct {
	// Name is the unique, case-sensitive identifier of the preset.
	Name string `json:"Name"`
	// Length is the password length this preset generates (8..32).
	Length int `json:"Length"`
	// IncludeUppercase enables the A-Z class.
	IncludeUppercase bool `json:"IncludeUppercase"`
	// IncludeLowercase is always true; kept as a field for file compatibility.
	IncludeLowercase bool `json:"IncludeLowercase"`
	// IncludeNumbers enables the 0-9 class.
	IncludeNumbers bool `json:"IncludeNumbers"`
	// IncludeSpecial enables the special-character class.
	IncludeSpecial bool `json:"IncludeSpecial"`
	// IsDefault marks a factory built-in. Built-ins cannot be renamed or deleted.
	IsDefault bool `json:"IsDefault"`
	// Enabled controls whether the preset is offered for selection.
	Enabled bool `json:"Enabled"`
	// IsSelectedByDefault marks the preset preselected on startup.
	// At most one preset carries this flag.
	IsSelectedByDefault bool `json:"IsSelectedByDefault"`
}

// ShareLink is one entry of the session-scoped link history.
type ShareLink struct {
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"created_at"`
	IsExpired bool      `json:"is_expired"`
}

var tokenRe = regexp.MustCompile(`/p/([A-Za-z0-9_-]+)`)

// Token extracts the service-assigned token from the link URL.
// Returns "" if the URL does not contain a /p/<token> segment.
func (l ShareLink) Token() string {
	m := tokenRe.FindStringSubmatch(l.URL)
	if m == nil {
		return ""
	}
	return m[1]
}

// RandomParams are the inputs of the random charset generator.
type RandomParams struct {
	Length           int  `json:"length"`
	IncludeUppercase bool `json:"include_uppercase"`
	IncludeNumbers   bool `json:"include_numbers"`
	IncludeSpecial   bool `json:"include_special"`
}

// MemorableParams are the inputs of the word-based generator.
type MemorableParams struct {
	WordCount        int    `json:"word_count"`
	Language         string `json:"language"` // "English" or "Swedish"
	IncludeUppercase bool   `json:"include_uppercase"`
	IncludeNumbers   bool   `json:"include_numbers"`
	IncludeSpecial   bool   `json:"include_special"`
}

// StrengthReport is the scoring result for a password.
type StrengthReport struct {
	Entropy    float64 `json:"entropy"`
	Label      string  `json:"label"`
	Percentage float64 `json:"percentage"`
}

// BreachResult is the outcome of a k-anonymity breach lookup.
// Error carries a human-readable failure reason; Found is false whenever
// Error is set.
type BreachResult struct {
	Found bool   `json:"found"`
	Count int    `json:"count"`
	Error string `json:"error,omitempty"`
}

// PushResult is the outcome of a share-link creation.
type PushResult struct {
	Success  bool   `json:"success"`
	URL      string `json:"url"`
	IsQRCode bool   `json:"is_qr_code"`
	Log      string `json:"log"`
}

// ExpireResult is the outcome of a manual link expiration.
type ExpireResult struct {
	Success bool   `json:"success"`
	Log     string `json:"log"`
}

// PhoneticPair maps one password character to its spoken word.
type PhoneticPair struct {
	Char string `json:"char"`
	Word string `json:"word"`
}
