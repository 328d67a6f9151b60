// Package config provides functionality for managing configuration options
// for the application using command-line flags, environment variables, and
// an optional JSON config file.
package config

import (
	"encoding/json"
	"flag"
	"log"
	"os"
)

// Options holds the configuration values for the application.
type Options struct {
	// Addr defines the server's listening address (ip:port).
	Addr string

	// PresetFile is the path of the preset persistence file.
	PresetFile string

	// BreachBaseURL is the base URL of the k-anonymity breach database.
	BreachBaseURL string

	// ShareBaseURL is the base URL of the ephemeral-share service.
	ShareBaseURL string

	// RequestTimeoutSeconds bounds every remote call.
	RequestTimeoutSeconds int

	// ProbeTimeoutSeconds bounds an availability probe.
	ProbeTimeoutSeconds int

	// CooldownSeconds is the rate-limit window after a gated action.
	CooldownSeconds int

	// CurlBinary is the fallback HTTP tool used when the native share
	// transport fails. Empty means "curl" from PATH.
	CurlBinary string

	// Config is the path to the config file.
	Config string
}

// options holds the current configuration values.
var options = &Options{}

// init initializes command-line flags and sets default values.
func init() {
	flag.StringVar(&options.Addr, "a", "localhost:8090", "run on ip:port server")
	flag.StringVar(&options.PresetFile, "p", "presets.json", "preset file path")
	flag.StringVar(&options.BreachBaseURL, "breach-url", "https://api.pwnedpasswords.com", "breach database base URL")
	flag.StringVar(&options.ShareBaseURL, "share-url", "https://pwpush.com", "share service base URL")
	flag.IntVar(&options.RequestTimeoutSeconds, "timeout", 10, "remote call timeout in seconds")
	flag.IntVar(&options.ProbeTimeoutSeconds, "probe-timeout", 3, "availability probe timeout in seconds")
	flag.IntVar(&options.CooldownSeconds, "cooldown", 10, "cooldown window in seconds")
	flag.StringVar(&options.CurlBinary, "curl", "", "curl binary for the fallback transport")
	flag.StringVar(&options.Config, "config", "config.json", "path to config file")
	flag.StringVar(&options.Config, "c", "config.json", "path to config file (shorthand)")
}

// Parse parses the command-line flags and environment variables to set
// configuration values. It returns a pointer to the Options struct containing
// the parsed configuration values.
func Parse() *Options {
	flag.Parse()

	// Override flags with environment variables if set
	if configPath := os.Getenv("CONFIG"); configPath != "" {
		options.Config = configPath
	}

	if options.Config != "" {
		if _, err := os.Stat(options.Config); err == nil {
			data, err := os.ReadFile(options.Config)
			if err != nil {
				log.Fatalf("error while reading config file: %v", err)
			}
			if err := json.Unmarshal(data, options); err != nil {
				log.Fatalf("error while parsing config file: %v", err)
			}
		}
	}

	if serverAddress := os.Getenv("SERVER_ADDRESS"); serverAddress != "" {
		options.Addr = serverAddress
	}
	if presetFile := os.Getenv("PRESET_FILE"); presetFile != "" {
		options.PresetFile = presetFile
	}
	if breachURL := os.Getenv("BREACH_BASE_URL"); breachURL != "" {
		options.BreachBaseURL = breachURL
	}
	if shareURL := os.Getenv("SHARE_BASE_URL"); shareURL != "" {
		options.ShareBaseURL = shareURL
	}

	return options
}
