package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/adrg/xdg"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/richtext/pkg/errors"
	"github.com/arthur-debert/richtext/pkg/logging"
	"github.com/arthur-debert/richtext/pkg/rich"
)

// EnvPrefix is the prefix of environment overrides
const EnvPrefix = "RICHTEXT_"

// configRelPaths are the config file locations relative to the XDG config
// dirs, in lookup order
var configRelPaths = []string{
	filepath.Join(logging.AppName, "config.toml"),
	filepath.Join(logging.AppName, "config.yaml"),
	filepath.Join(logging.AppName, "config.yml"),
}

// Load merges the embedded defaults, a config file and the environment.
// With an empty path the file is looked up in the XDG config directories
// and skipped when absent; an explicit path must exist. Files ending in
// .yaml or .yml are parsed as YAML, anything else as TOML.
func Load(path string) (*Config, error) {
	return LoadWithOverrides(path, nil)
}

// LoadWithOverrides is Load with one more layer on top of the environment.
// Keys are dotted config paths such as "format" or "layout.width"; the CLI
// passes the flags the user set here.
func LoadWithOverrides(path string, overrides map[string]interface{}) (*Config, error) {
	logger := logging.GetLogger("config")

	k := koanf.New(".")

	// 1. Load system defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to load defaults")
	}

	// 2. Load the user config file
	source, err := resolvePath(path)
	if err != nil {
		return nil, err
	}
	if source != "" {
		if err := k.Load(file.Provider(source), parserFor(source)); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", source).
				WithDetail("path", source)
		}
		logger.Debug().Str("path", source).Msg("Loaded config file")
	}

	// 3. Load env vars
	err = k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".")
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	// 4. Load overrides
	if len(overrides) > 0 {
		if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load overrides")
		}
		logger.Debug().Interface("overrides", overrides).Msg("Applied overrides")
	}

	cfg, err := unmarshal(k)
	if err != nil {
		return nil, err
	}
	cfg.Source = source

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger.Trace().Interface("config", cfg).Msg("Configuration resolved")
	return cfg, nil
}

// Default returns the embedded defaults without any file or environment layer
func Default() *Config {
	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		panic("config: embedded defaults do not parse: " + err.Error())
	}
	cfg, err := unmarshal(k)
	if err != nil {
		panic("config: embedded defaults do not decode: " + err.Error())
	}
	return cfg
}

// UserConfigPath returns where a user config file is expected
func UserConfigPath() string {
	xdg.Reload()
	return filepath.Join(xdg.ConfigHome, configRelPaths[0])
}

func parserFor(path string) koanf.Parser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser()
	default:
		return toml.Parser()
	}
}

func resolvePath(path string) (string, error) {
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return "", errors.Wrapf(err, errors.ErrConfigLoad, "cannot read config file %s", path).
				WithDetail("path", path)
		}
		return path, nil
	}

	xdg.Reload()
	for _, rel := range configRelPaths {
		if found, err := xdg.SearchConfigFile(rel); err == nil {
			return found, nil
		}
	}
	// no user config is the common case
	return "", nil
}

func unmarshal(k *koanf.Koanf) (*Config, error) {
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				stringToColorHookFunc(),
				stringToOptionalColorHookFunc(),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}
	return &cfg, nil
}

var (
	colorType         = reflect.TypeOf(rich.Color{})
	optionalColorType = reflect.TypeOf(rich.OptionalColor{})
)

// stringToColorHookFunc decodes "#rrggbb" strings into rich.Color
func stringToColorHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if f.Kind() != reflect.String || t != colorType {
			return data, nil
		}
		c, err := rich.ParseHex(strings.TrimSpace(data.(string)))
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrInvalidColor, "invalid color")
		}
		return c, nil
	}
}

// stringToOptionalColorHookFunc is stringToColorHookFunc for optional colors,
// where "", "none" and "transparent" mean unset
func stringToOptionalColorHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if f.Kind() != reflect.String || t != optionalColorType {
			return data, nil
		}
		s := strings.TrimSpace(data.(string))
		switch strings.ToLower(s) {
		case "", "none", "transparent":
			return rich.OptionalColor{}, nil
		}
		c, err := rich.ParseHex(s)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrInvalidColor, "invalid color")
		}
		return rich.Some(c), nil
	}
}
