// Package ui renders rich text in the output format the user picked.
// It supports terminal (ANSI), plain text, debug dumps, JSON documents,
// Markdown and XML.
package ui

import (
	"io"
	"os"

	"github.com/arthur-debert/richtext/pkg/config"
	"github.com/arthur-debert/richtext/pkg/errors"
	"github.com/arthur-debert/richtext/pkg/logging"
	"github.com/arthur-debert/richtext/pkg/rich"
	"github.com/arthur-debert/richtext/pkg/ui/json"
	"github.com/arthur-debert/richtext/pkg/ui/markdown"
	"github.com/arthur-debert/richtext/pkg/ui/terminal"
	"github.com/arthur-debert/richtext/pkg/ui/text"
	"github.com/arthur-debert/richtext/pkg/ui/xml"
)

// Renderer is the common interface for all output renderers.
type Renderer interface {
	// RenderText renders one rich text tree
	RenderText(t rich.Text) error

	// RenderError renders an error with appropriate formatting
	RenderError(err error) error

	// RenderMessage renders a simple message
	RenderMessage(msg string) error
}

// NewRenderer creates a new renderer based on the specified format.
// It automatically detects terminal capabilities when format is Auto.
// A nil cfg uses the built-in defaults.
func NewRenderer(format Format, output io.Writer, cfg *config.Config) (Renderer, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	logger := logging.WithFields(map[string]interface{}{
		"component": "ui",
		"format":    format.String(),
	})

	switch format {
	case FormatAuto:
		// Detect terminal capabilities and choose appropriate format
		if file, ok := output.(*os.File); ok {
			detected := DetectFormat(file)
			logger.Debug().Str("detected", detected.String()).Msg("Detected output format")
			return NewRenderer(detected, output, cfg)
		}
		// If not a file, default to terminal format
		return NewRenderer(FormatTerminal, output, cfg)
	case FormatTerminal:
		profile, forced, err := ParseProfile(cfg.Profile)
		if err != nil {
			return nil, err
		}
		if forced {
			logger.Debug().Str("profile", cfg.Profile).Msg("Using configured color profile")
			return terminal.NewWithProfile(output, profile)
		}
		return terminal.New(output)
	case FormatText:
		return text.New(output)
	case FormatDebug:
		return text.NewDebug(output)
	case FormatJSON:
		return json.New(output)
	case FormatMarkdown:
		if cfg.Markdown.Preview {
			return markdown.NewPreview(output, markdown.Options{
				Style: cfg.Markdown.Style,
				Wrap:  cfg.Markdown.Wrap,
			})
		}
		return markdown.New(output)
	case FormatXML:
		return xml.New(output)
	default:
		return nil, errors.Newf(errors.ErrUnknownFormat, "unknown format: %v", format)
	}
}
