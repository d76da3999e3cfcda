package config

import (
	"os"

	"github.com/spf13/viper"

	"github.com/thoreinstein/vscode-kit/internal/errors"
	"github.com/thoreinstein/vscode-kit/internal/template"
)

// EnvPrefix is the prefix for environment variable overrides.
const EnvPrefix = "VSCODE_KIT"

// Config keys.
const (
	KeyVersion       = "version"
	KeyDefaultPreset = "default_preset"
	KeyTemplateDir   = "template_dir"
	KeyDefaultKinds  = "default_kinds"
)

// Config represents the top-level configuration structure.
type Config struct {
	Version       int      `mapstructure:"version" yaml:"version"`
	DefaultPreset string   `mapstructure:"default_preset" yaml:"default_preset"`
	TemplateDir   string   `mapstructure:"template_dir" yaml:"template_dir"`
	DefaultKinds  []string `mapstructure:"default_kinds" yaml:"default_kinds"`
}

// Init resets Viper and installs the default configuration.
// Call this once at application startup before accessing config values.
func Init() {
	viper.Reset()

	// The file is always YAML, whatever its extension
	viper.SetConfigType("yaml")

	viper.SetEnvPrefix(EnvPrefix)
	viper.AutomaticEnv()

	viper.SetDefault(KeyVersion, 1)
	viper.SetDefault(KeyDefaultPreset, template.DefaultPreset.String())
	viper.SetDefault(KeyTemplateDir, "")
	viper.SetDefault(KeyDefaultKinds, template.KindNames())
}

// Load reads the configuration file.
// If path is provided, it reads from that specific file and a missing file
// is an error. If path is empty, only DefaultPath is consulted and a missing
// file leaves the defaults in place. The working directory is never searched.
// The result is validated; the first validation failure is returned.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath()
		if _, err := os.Stat(path); os.IsNotExist(err) {
			path = ""
		}
	}

	if path != "" {
		viper.SetConfigFile(path)
		if err := viper.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "reading config file %s", path)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}

	if errs := Validate(&cfg); len(errs) > 0 {
		return nil, errors.Wrap(errs[0], "validating config")
	}

	return &cfg, nil
}

// Default returns the configuration used when no file or environment
// override is present.
func Default() *Config {
	return &Config{
		Version:       1,
		DefaultPreset: template.DefaultPreset.String(),
		DefaultKinds:  template.KindNames(),
	}
}

// Preset parses DefaultPreset. An empty value yields the built-in default.
func (c *Config) Preset() (template.Preset, error) {
	if c.DefaultPreset == "" {
		return template.DefaultPreset, nil
	}
	return template.ParsePreset(c.DefaultPreset)
}

// Kinds parses DefaultKinds. An empty list yields every kind.
func (c *Config) Kinds() ([]template.Kind, error) {
	if len(c.DefaultKinds) == 0 {
		return template.AllKinds(), nil
	}
	return template.ParseKinds(c.DefaultKinds)
}
