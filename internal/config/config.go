package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config is the full configuration surface of the shoplist binary. Values come
// from the environment (optionally loaded from a .env file) and may then be
// overridden by command-line flags.
type Config struct {
	Log    LogConfig
	UI     UIConfig
	Output OutputConfig
}

type LogConfig struct {
	// File receives JSON log lines. Empty disables logging; the terminal
	// belongs to the TUI so logs never go to stdout/stderr.
	File  string
	Level string
}

type UIConfig struct {
	// Glyphs selects the row affordance glyphs ("unicode" or "ascii").
	Glyphs  string
	NoColor bool
}

type OutputConfig struct {
	// Print is the format used to print the list after the TUI exits
	// ("json", "text" or empty for nothing).
	Print  string
	Pretty bool
}

const (
	GlyphsUnicode = "unicode"
	GlyphsASCII   = "ascii"
)

// Load reads environment variables (optionally from envFile) and materializes
// a Config. A missing default .env file is fine; a missing explicit one is not.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("failed loading env file %s: %w", envFile, err)
		}
	} else {
		if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed loading .env: %w", err)
		}
	}

	cfg := &Config{
		Log: LogConfig{
			File:  os.Getenv("SHOPLIST_LOG_FILE"),
			Level: getenvWithDefault("SHOPLIST_LOG_LEVEL", "info"),
		},
		UI: UIConfig{
			Glyphs:  getenvWithDefault("SHOPLIST_GLYPHS", GlyphsUnicode),
			NoColor: strings.TrimSpace(os.Getenv("NO_COLOR")) != "",
		},
		Output: OutputConfig{
			Print: os.Getenv("SHOPLIST_PRINT"),
		},
	}
	return cfg, nil
}

// Validate normalizes and checks enumerated settings. Call it after flag
// overrides have been applied.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	case "":
		c.Log.Level = "info"
	default:
		return fmt.Errorf("invalid log level %q (want debug|info|warn|error)", c.Log.Level)
	}

	c.UI.Glyphs = strings.ToLower(strings.TrimSpace(c.UI.Glyphs))
	switch c.UI.Glyphs {
	case GlyphsUnicode, GlyphsASCII:
	case "":
		c.UI.Glyphs = GlyphsUnicode
	default:
		return fmt.Errorf("invalid glyph set %q (want unicode|ascii)", c.UI.Glyphs)
	}

	c.Output.Print = strings.ToLower(strings.TrimSpace(c.Output.Print))
	switch c.Output.Print {
	case "", "json", "text":
	default:
		return fmt.Errorf("invalid print format %q (want json|text)", c.Output.Print)
	}
	return nil
}

func getenvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
