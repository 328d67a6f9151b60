package main

import (
	"bytes"
	"flag"
	"strings"
	"testing"
)

func TestParseFlags(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg, err := parseFlags(fs, []string{"-length", "20", "-special=false", "-count", "3"})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Length != 20 || cfg.Special || cfg.Count != 3 {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if !cfg.Upper || !cfg.Numbers {
		t.Error("defaults should keep uppercase and numbers enabled")
	}
}

func TestRunRandom(t *testing.T) {
	var buf bytes.Buffer
	cfg := cliConfig{Length: 12, Upper: true, Numbers: true, Special: true, Count: 2}
	if err := run(cfg, &buf); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines; want 2", len(lines))
	}
	for _, line := range lines {
		fields := strings.Split(line, "\t")
		if len(fields) != 3 {
			t.Fatalf("malformed line %q", line)
		}
		if len(fields[0]) != 12 {
			t.Errorf("password length = %d; want 12", len(fields[0]))
		}
	}
}

func TestRunMemorableWithSpelling(t *testing.T) {
	var buf bytes.Buffer
	cfg := cliConfig{Memorable: true, Words: 2, Language: "English", Spell: "NATO", Count: 1}
	if err := run(cfg, &buf); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "  ") {
		t.Error("expected indented phonetic lines in output")
	}
}

func TestRunRejectsBadAlphabet(t *testing.T) {
	cfg := cliConfig{Length: 12, Spell: "Morse", Count: 1}
	if err := run(cfg, &bytes.Buffer{}); err == nil {
		t.Fatal("expected error for unknown alphabet")
	}
}

func TestRunRejectsBadLength(t *testing.T) {
	cfg := cliConfig{Length: 4, Count: 1}
	if err := run(cfg, &bytes.Buffer{}); err == nil {
		t.Fatal("expected error for out-of-range length")
	}
}
