// Package main is a small offline companion to the passforge server: it
// generates and scores passwords on the command line without touching any
// remote service.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mkarlsson/passforge/internal/generator"
	"github.com/mkarlsson/passforge/internal/models"
	"github.com/mkarlsson/passforge/internal/phonetic"
	"github.com/mkarlsson/passforge/internal/strength"
)

// cliConfig holds the parsed CLI flags.
type cliConfig struct {
	Length    int
	Upper     bool
	Numbers   bool
	Special   bool
	Memorable bool
	Words     int
	Language  string
	Spell     string
	Count     int
}

// parseFlags registers and parses command-line flags using the provided
// FlagSet so that tests can call it without affecting global flag state.
func parseFlags(fs *flag.FlagSet, args []string) (cliConfig, error) {
	var cfg cliConfig

	fs.IntVar(&cfg.Length, "length", 15, "password length (8-32)")
	fs.BoolVar(&cfg.Upper, "upper", true, "include uppercase letters")
	fs.BoolVar(&cfg.Numbers, "numbers", true, "include digits")
	fs.BoolVar(&cfg.Special, "special", true, "include special characters")
	fs.BoolVar(&cfg.Memorable, "memorable", false, "generate a word-based password")
	fs.IntVar(&cfg.Words, "words", 3, "word count for memorable passwords (1-5)")
	fs.StringVar(&cfg.Language, "lang", "English", "word list language (English or Swedish)")
	fs.StringVar(&cfg.Spell, "spell", "", "print the phonetic spelling (NATO or Swedish)")
	fs.IntVar(&cfg.Count, "count", 1, "number of passwords to generate")

	err := fs.Parse(args)
	return cfg, err
}

// run generates, scores, and optionally spells passwords per the config,
// writing to w.
func run(cfg cliConfig, w io.Writer) error {
	if cfg.Count < 1 {
		cfg.Count = 1
	}

	for i := 0; i < cfg.Count; i++ {
		var password string
		var err error
		if cfg.Memorable {
			password, err = generator.Memorable(models.MemorableParams{
				WordCount:        cfg.Words,
				Language:         cfg.Language,
				IncludeUppercase: cfg.Upper,
				IncludeNumbers:   cfg.Numbers,
				IncludeSpecial:   cfg.Special,
			})
		} else {
			password, err = generator.Random(models.RandomParams{
				Length:           cfg.Length,
				IncludeUppercase: cfg.Upper,
				IncludeNumbers:   cfg.Numbers,
				IncludeSpecial:   cfg.Special,
			})
		}
		if err != nil {
			return err
		}

		report := strength.Score(password)
		fmt.Fprintf(w, "%s\t%.1f bits\t%s\n", password, report.Entropy, report.Label)

		if cfg.Spell != "" {
			alphabet := phonetic.Alphabet(cfg.Spell)
			if alphabet != phonetic.NATO && alphabet != phonetic.Swedish {
				return fmt.Errorf("unknown alphabet %q", cfg.Spell)
			}
			for _, pair := range phonetic.TransliterateString(password, alphabet) {
				fmt.Fprintf(w, "  %s  %s\n", pair.Char, pair.Word)
			}
		}
	}
	return nil
}

func main() {
	cfg, err := parseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		os.Exit(2)
	}
	if err := run(cfg, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
