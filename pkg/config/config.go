package config

import (
	"slices"
	"strings"

	"github.com/arthur-debert/richtext/pkg/errors"
	"github.com/arthur-debert/richtext/pkg/rich"
)

// Config is the merged richtext configuration
type Config struct {
	Format   string   `koanf:"format"`
	Profile  string   `koanf:"profile"`
	Layout   Layout   `koanf:"layout"`
	Markdown Markdown `koanf:"markdown"`

	// Source is the config file that was merged in, empty when none was found
	Source string `koanf:"-"`
}

// Layout configures the cell layout used by the view command
type Layout struct {
	Width      int                `koanf:"width"`
	Foreground rich.Color         `koanf:"foreground"`
	Background rich.OptionalColor `koanf:"background"`
}

// Markdown configures markdown output
type Markdown struct {
	Style   string `koanf:"style"`
	Wrap    int    `koanf:"wrap"`
	Preview bool   `koanf:"preview"`
}

// FormatNames lists the accepted values of the format key, aliases included
var FormatNames = []string{"auto", "term", "terminal", "text", "plain", "debug", "json", "markdown", "md", "xml"}

// ProfileNames lists the accepted values of the profile key. The empty string means detect.
var ProfileNames = []string{"", "auto", "truecolor", "ansi256", "ansi", "ascii"}

// Validate checks the values that decoding alone cannot reject
func (c *Config) Validate() error {
	if !slices.Contains(FormatNames, strings.ToLower(c.Format)) {
		return errors.Newf(errors.ErrConfigValid, "unknown format %q", c.Format).
			WithDetail("key", "format").
			WithDetail("allowed", FormatNames)
	}
	if !slices.Contains(ProfileNames, strings.ToLower(c.Profile)) {
		return errors.Newf(errors.ErrConfigValid, "unknown color profile %q", c.Profile).
			WithDetail("key", "profile").
			WithDetail("allowed", ProfileNames[1:])
	}
	if c.Layout.Width < 0 {
		return errors.Newf(errors.ErrConfigValid, "layout width must not be negative, got %d", c.Layout.Width).
			WithDetail("key", "layout.width")
	}
	if c.Markdown.Wrap < 0 {
		return errors.Newf(errors.ErrConfigValid, "markdown wrap must not be negative, got %d", c.Markdown.Wrap).
			WithDetail("key", "markdown.wrap")
	}
	return nil
}
