package document

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/richtext/pkg/errors"
)

// Format is a document serialization
type Format int

const (
	YAML Format = iota
	JSON
	TOML
)

// String returns the canonical name of the format
func (f Format) String() string {
	switch f {
	case YAML:
		return "yaml"
	case JSON:
		return "json"
	case TOML:
		return "toml"
	default:
		return "unknown"
	}
}

// Formats lists every supported format
var Formats = []Format{YAML, JSON, TOML}

// ParseFormat converts a name such as "yaml" or "yml" to a Format
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "yaml", "yml":
		return YAML, nil
	case "json":
		return JSON, nil
	case "toml":
		return TOML, nil
	default:
		return 0, errors.Newf(errors.ErrUnknownFormat, "unknown document format %q", s).
			WithDetail("allowed", []string{"yaml", "json", "toml"})
	}
}

// FormatFromPath picks the format from the file extension
func FormatFromPath(path string) (Format, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return 0, errors.Newf(errors.ErrUnknownFormat, "cannot tell the format of %q without an extension", path).
			WithDetail("path", path)
	}
	f, err := ParseFormat(ext)
	if err != nil {
		return 0, errors.Newf(errors.ErrUnknownFormat, "unknown document extension %q", ext).
			WithDetail("path", path)
	}
	return f, nil
}
