package strength

import (
	"math"
	"testing"
)

func TestEntropy(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     float64
	}{
		{"pure_lowercase", "abcdefgh", math.Log2(26) * 8},
		{"all_four_classes", "Ab3!", math.Log2(68) * 4},
		{"lower_and_upper", "aBcD", math.Log2(52) * 4},
		{"lower_and_digits", "a1b2", math.Log2(36) * 4},
		{"digits_only", "123456", math.Log2(10) * 6},
		{"special_only", "!!!!", math.Log2(6) * 4},
		{"unicode_counts_as_special", "abcå", math.Log2(32) * 4},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Entropy(tc.password)
			if math.Abs(got-tc.want) > 1e-9 {
				t.Errorf("Entropy(%q) = %v; want %v", tc.password, got, tc.want)
			}
		})
	}
}

func TestLabel(t *testing.T) {
	tests := []struct {
		entropy float64
		want    string
	}{
		{0, "Weak"},
		{39.99, "Weak"},
		{40, "Moderate"},
		{59.99, "Moderate"},
		{60, "Strong"},
		{79.99, "Strong"},
		{80, "Very Strong"},
		{200, "Very Strong"},
	}

	for _, tc := range tests {
		if got := Label(tc.entropy); got != tc.want {
			t.Errorf("Label(%v) = %q; want %q", tc.entropy, got, tc.want)
		}
	}
}

func TestScore(t *testing.T) {
	// 12 chars over the full 68-char pool: log2(68)*12 ≈ 73.06 bits.
	report := Score("Ab3!Ab3!Ab3!")
	if report.Label != "Strong" {
		t.Errorf("Label = %q; want Strong", report.Label)
	}
	wantPct := report.Entropy / 128 * 100
	if math.Abs(report.Percentage-wantPct) > 1e-9 {
		t.Errorf("Percentage = %v; want %v", report.Percentage, wantPct)
	}
}

func TestScorePercentageCap(t *testing.T) {
	// 32 chars, full pool: well past 128 bits.
	long := ""
	for i := 0; i < 8; i++ {
		long += "Ab3!"
	}
	if report := Score(long); report.Percentage != 100 {
		t.Errorf("Percentage = %v; want capped at 100", report.Percentage)
	}
}
