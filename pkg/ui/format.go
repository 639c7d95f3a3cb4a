package ui

import (
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/arthur-debert/richtext/pkg/errors"
)

// Format represents the output format type
type Format int

const (
	// FormatAuto automatically detects the appropriate format based on terminal capabilities
	FormatAuto Format = iota
	// FormatTerminal renders rich terminal output with colors and styling
	FormatTerminal
	// FormatText renders plain text output without any styling
	FormatText
	// FormatDebug renders the structure of each text
	FormatDebug
	// FormatJSON renders the JSON document form
	FormatJSON
	// FormatMarkdown renders Markdown source or a glamour preview of it
	FormatMarkdown
	// FormatXML renders nested <text> elements
	FormatXML
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatAuto:
		return "auto"
	case FormatTerminal:
		return "term"
	case FormatText:
		return "text"
	case FormatDebug:
		return "debug"
	case FormatJSON:
		return "json"
	case FormatMarkdown:
		return "markdown"
	case FormatXML:
		return "xml"
	default:
		return "unknown"
	}
}

// ParseFormat parses a string into a Format value
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "auto", "":
		return FormatAuto, nil
	case "term", "terminal":
		return FormatTerminal, nil
	case "text", "plain":
		return FormatText, nil
	case "debug":
		return FormatDebug, nil
	case "json":
		return FormatJSON, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	case "xml":
		return FormatXML, nil
	default:
		return FormatAuto, errors.Newf(errors.ErrUnknownFormat, "unknown format: %s", s)
	}
}

// DetectFormat determines the appropriate output format based on environment and terminal capabilities
func DetectFormat(output *os.File) Format {
	// Check if NO_COLOR is set
	if os.Getenv("NO_COLOR") != "" {
		return FormatText
	}

	// Check if we're being piped or redirected
	if !isatty.IsTerminal(output.Fd()) && !isatty.IsCygwinTerminal(output.Fd()) {
		return FormatText
	}

	// Check terminal color support
	if termenv.NewOutput(output).EnvColorProfile() == termenv.Ascii {
		return FormatText
	}

	return FormatTerminal
}

// ParseProfile parses a color profile name. ok is false for "" and "auto",
// which leave the profile to detection.
func ParseProfile(s string) (profile termenv.Profile, ok bool, err error) {
	switch strings.ToLower(s) {
	case "", "auto":
		return termenv.Ascii, false, nil
	case "truecolor":
		return termenv.TrueColor, true, nil
	case "ansi256":
		return termenv.ANSI256, true, nil
	case "ansi":
		return termenv.ANSI, true, nil
	case "ascii":
		return termenv.Ascii, true, nil
	default:
		return termenv.Ascii, false, errors.Newf(errors.ErrInvalidInput, "unknown color profile: %s", s)
	}
}
