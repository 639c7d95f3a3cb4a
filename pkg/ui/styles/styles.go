// Package styles defines the semantic styles richtext uses for its own
// messages and the demo document.
//
// Styles are named rich.Style values loaded from an embedded YAML file.
// Colors are adaptive: each has a light and a dark variant and the registry
// resolves them for the current terminal background.
//
//	styles.Tag("Error", "Error: ").WithString(err.Error())
package styles

import (
	_ "embed"
	"fmt"
	"os"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/richtext/pkg/rich"
)

// ColorDef represents an adaptive color definition in YAML
type ColorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// StyleDef represents a style definition in YAML. Absent flags inherit.
type StyleDef struct {
	Foreground    string `yaml:"foreground,omitempty"`
	Bold          *bool  `yaml:"bold,omitempty"`
	Italic        *bool  `yaml:"italic,omitempty"`
	Underline     *bool  `yaml:"underline,omitempty"`
	Strikethrough *bool  `yaml:"strikethrough,omitempty"`
}

// Config represents the complete styles configuration
type Config struct {
	Colors map[string]ColorDef `yaml:"colors"`
	Styles map[string]StyleDef `yaml:"styles"`
}

//go:embed styles.yaml
var embeddedStyles []byte

var (
	mu       sync.RWMutex
	config   Config
	dark     = true
	registry map[string]rich.Style
)

func init() {
	if err := LoadStylesFromData(embeddedStyles); err != nil {
		panic("styles: embedded styles.yaml: " + err.Error())
	}
}

// LoadStyles loads style configuration from a YAML file
func LoadStyles(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read styles file %s: %w", path, err)
	}
	return LoadStylesFromData(data)
}

// LoadStylesFromData loads style configuration from byte data.
// The current registry is kept when data does not parse or names an
// unknown or malformed color.
func LoadStylesFromData(data []byte) error {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("failed to parse styles data: %w", err)
	}

	mu.Lock()
	defer mu.Unlock()

	built, err := build(cfg, dark)
	if err != nil {
		return err
	}
	config, registry = cfg, built
	return nil
}

// SetDarkBackground re-resolves adaptive colors for a dark or light terminal
func SetDarkBackground(isDark bool) {
	mu.Lock()
	defer mu.Unlock()

	if isDark == dark {
		return
	}
	// colors were validated for both variants on load
	built, _ := build(config, isDark)
	dark, registry = isDark, built
}

func build(cfg Config, isDark bool) (map[string]rich.Style, error) {
	palette := make(map[string][2]rich.Color, len(cfg.Colors))
	for name, def := range cfg.Colors {
		light, err := rich.ParseHex(def.Light)
		if err != nil {
			return nil, fmt.Errorf("color %s: %w", name, err)
		}
		darkColor, err := rich.ParseHex(def.Dark)
		if err != nil {
			return nil, fmt.Errorf("color %s: %w", name, err)
		}
		palette[name] = [2]rich.Color{light, darkColor}
	}

	out := make(map[string]rich.Style, len(cfg.Styles))
	for name, def := range cfg.Styles {
		style := rich.Style{
			Bold:          flag(def.Bold),
			Italic:        flag(def.Italic),
			Underline:     flag(def.Underline),
			Strikethrough: flag(def.Strikethrough),
		}
		if def.Foreground != "" {
			variants, ok := palette[def.Foreground]
			if !ok {
				return nil, fmt.Errorf("style %s: unknown color %q", name, def.Foreground)
			}
			if isDark {
				style.Color = rich.Some(variants[1])
			} else {
				style.Color = rich.Some(variants[0])
			}
		}
		out[name] = style
	}
	return out, nil
}

func flag(b *bool) rich.State {
	if b == nil {
		return rich.Inherit
	}
	return rich.StateOf(*b)
}

// GetStyle safely retrieves a style from the registry.
// Unknown names yield the default style.
func GetStyle(name string) rich.Style {
	mu.RLock()
	defer mu.RUnlock()
	return registry[name]
}

// Names returns the registered style names in sorted order
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// MergeStyles combines multiple styles, later names winning per field
func MergeStyles(names ...string) rich.Style {
	var result rich.Style
	for _, name := range names {
		result.MergeFrom(GetStyle(name))
	}
	return result
}

// Tag returns content as a text node carrying the named style
func Tag(name, content string) rich.Text {
	return rich.New(content).WithStyle(GetStyle(name))
}
