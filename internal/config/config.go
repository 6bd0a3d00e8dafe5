package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Config holds all colorsync configuration values.
type Config struct {
	Listen        string `json:"listen"`
	AllowedOrigin string `json:"allowed_origin"`
	SwatchWidth   int    `json:"swatch_width"`
	Border        string `json:"border"`
	EditRate      int    `json:"edit_rate"`

	// Environment configuration (loaded from env vars)
	Env *EnvConfig `json:"-"`
}

// Border styles accepted by the border setting.
const (
	BorderUnicode = "unicode"
	BorderASCII   = "ascii"
	BorderNone    = "none"
)

// DefaultFile is the config file read by Load.
const DefaultFile = "config.json"

// Load reads configuration from config.json with sensible defaults, then
// applies environment overrides.
func Load() *Config {
	return LoadFile(DefaultFile)
}

// LoadFile is Load with an explicit config file path. A missing file is
// not an error: the defaults stand.
func LoadFile(path string) *Config {
	cfg := &Config{
		Listen:        "",
		AllowedOrigin: "*",
		SwatchWidth:   24,
		Border:        BorderUnicode,
		EditRate:      600,
		Env:           LoadEnv(),
	}

	if file, err := os.Open(path); err == nil {
		defer file.Close()
		json.NewDecoder(file).Decode(cfg)
	}

	if v, ok := os.LookupEnv("COLORSYNC_LISTEN"); ok {
		cfg.Listen = v
	}
	cfg.AllowedOrigin = getEnvOrDefault("COLORSYNC_ALLOWED_ORIGIN", cfg.AllowedOrigin)
	cfg.SwatchWidth = parseIntOrDefault(getEnvOrDefault("COLORSYNC_SWATCH_WIDTH", ""), cfg.SwatchWidth)
	cfg.EditRate = parseIntOrDefault(getEnvOrDefault("COLORSYNC_EDIT_RATE", ""), cfg.EditRate)
	cfg.Border = strings.ToLower(strings.TrimSpace(getEnvOrDefault("COLORSYNC_BORDER", cfg.Border)))

	return cfg
}

// Validate checks the configuration for errors and returns helpful messages.
func (c *Config) Validate() error {
	var errs []string

	if c.Listen != "" && !strings.Contains(c.Listen, ":") {
		errs = append(errs, fmt.Sprintf("listen address must be host:port or :port, got %q", c.Listen))
	}

	if c.SwatchWidth <= 0 {
		errs = append(errs, "swatch_width must be positive")
	}

	if c.EditRate < 0 {
		errs = append(errs, "edit_rate must be zero (unlimited) or positive")
	}

	switch c.Border {
	case BorderUnicode, BorderASCII, BorderNone:
	default:
		errs = append(errs, fmt.Sprintf("border must be one of unicode, ascii, none; got %q", c.Border))
	}

	if c.Env != nil && c.Env.IsProduction() && c.AllowedOrigin == "*" {
		errs = append(errs, "allowed_origin must be set explicitly in production")
	}

	if len(errs) > 0 {
		return errors.New("config validation failed:\n  - " + strings.Join(errs, "\n  - "))
	}

	return nil
}

// ServeHTTP reports whether the HTTP surface is enabled.
func (c *Config) ServeHTTP() bool {
	return c.Listen != ""
}
