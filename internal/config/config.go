package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/viper"

	"github.com/jask/validform/internal/validate"
)

// Config holds application configuration.
type Config struct {
	UI       UIConfig
	Border   BorderConfig
	Database DatabaseConfig
	Fields   []FieldSpec
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Title string
}

// BorderConfig holds the border styling applied to every field.
// Colors are hex strings; an empty string means transparent.
type BorderConfig struct {
	Enabled      bool
	Width        float64
	CornerRadius float64 `mapstructure:"corner_radius"`
	Color        string
	ValidColor   string `mapstructure:"valid_color"`
	InvalidColor string `mapstructure:"invalid_color"`
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string
}

// FieldSpec declares one form field. Exactly one of Pattern and Preset
// may be set; with neither, the field accepts anything.
type FieldSpec struct {
	Key         string
	Label       string
	Pattern     string
	Preset      string
	Placeholder string
}

// Load reads configuration from file and env. Env var overrides use prefix VALIDFORM_.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("ui.title", "validform")
	v.SetDefault("border.enabled", true)
	v.SetDefault("border.width", 2)
	v.SetDefault("border.corner_radius", 1)
	v.SetDefault("border.color", "#6c7086")
	v.SetDefault("border.valid_color", "#a6e3a1")
	v.SetDefault("border.invalid_color", "#f38ba8")
	v.SetDefault("database.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "validform", "validform.db"))

	v.SetConfigType("toml")

	cfgPath := os.Getenv("VALIDFORM_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "validform"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("VALIDFORM")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if len(c.Fields) == 0 {
		c.Fields = DefaultFields()
	}
	return c, nil
}

// Save writes the provided config to disk, creating the config directory if needed.
func Save(cfg Config) error {
	path := os.Getenv("VALIDFORM_CONFIG")
	if path == "" {
		path = filepath.Join(os.Getenv("HOME"), ".config", "validform", "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("ui.title", cfg.UI.Title)
	v.Set("border.enabled", cfg.Border.Enabled)
	v.Set("border.width", cfg.Border.Width)
	v.Set("border.corner_radius", cfg.Border.CornerRadius)
	v.Set("border.color", cfg.Border.Color)
	v.Set("border.valid_color", cfg.Border.ValidColor)
	v.Set("border.invalid_color", cfg.Border.InvalidColor)
	v.Set("database.path", cfg.Database.Path)
	fields := make([]map[string]any, 0, len(cfg.Fields))
	for _, f := range cfg.Fields {
		fields = append(fields, map[string]any{
			"key":         f.Key,
			"label":       f.Label,
			"pattern":     f.Pattern,
			"preset":      f.Preset,
			"placeholder": f.Placeholder,
		})
	}
	v.Set("fields", fields)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// DefaultFields is the built-in demo form: three fields mirroring the
// classic lowercase/digits/uppercase group.
func DefaultFields() []FieldSpec {
	return []FieldSpec{
		{Key: "username", Label: "Username", Preset: "lowercase", Placeholder: "lowercase letters"},
		{Key: "pin", Label: "PIN", Preset: "digits", Placeholder: "digits 1-9"},
		{Key: "code", Label: "Invite code", Preset: "uppercase", Placeholder: "capital letters"},
	}
}

// ResolvePattern returns the effective regex for the field, expanding a
// preset if one is named. Setting both pattern and preset is an error.
func (f FieldSpec) ResolvePattern() (string, error) {
	switch {
	case f.Pattern != "" && f.Preset != "":
		return "", fmt.Errorf("field %q: pattern and preset are mutually exclusive", f.Key)
	case f.Preset != "":
		p, err := ResolvePreset(f.Preset)
		if err != nil {
			return "", fmt.Errorf("field %q: %w", f.Key, err)
		}
		return p, nil
	default:
		return f.Pattern, nil
	}
}

// Style converts the border configuration into a validate.Style,
// falling back to the documented defaults for anything unset.
func (b BorderConfig) Style() validate.Style {
	s := validate.DefaultStyle()
	s.HasBorder = b.Enabled
	if b.Color != "" {
		s.BorderColor = lipgloss.Color(b.Color)
	}
	s.ValidColor = lipgloss.Color(b.ValidColor)
	s.InvalidColor = lipgloss.Color(b.InvalidColor)
	if b.Width > 0 {
		s.BorderWidth = b.Width
	}
	s.CornerRadius = b.CornerRadius
	return s
}

// Check resolves every field and compiles its pattern, so malformed
// regexes and bad preset names fail before any UI exists.
func (c Config) Check() error {
	var errs []error
	seen := map[string]bool{}
	for i, f := range c.Fields {
		if f.Key == "" {
			errs = append(errs, fmt.Errorf("fields[%d]: key is required", i))
			continue
		}
		if seen[f.Key] {
			errs = append(errs, fmt.Errorf("fields[%d]: duplicate key %q", i, f.Key))
		}
		seen[f.Key] = true
		pattern, err := f.ResolvePattern()
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if _, err := validate.NewInput(f.Key, pattern, c.Border.Style()); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
