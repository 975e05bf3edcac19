package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/llehouerou/rangeslider/internal/slider"
)

const appName = "rangeslider"

type Config struct {
	LogFile string         `koanf:"log_file"` // empty disables logging unless DEBUG is set
	Theme   ThemeConfig    `koanf:"theme"`
	Sliders []SliderConfig `koanf:"sliders"`
}

// ThemeConfig holds defaults shared by every slider.
type ThemeConfig struct {
	Color    string `koanf:"color"`    // named color: "red", "blue", "green", ...
	Inverted bool   `koanf:"inverted"` // inverted (light-on-dark) palette
	Gradient *bool  `koanf:"gradient"` // blend the fill toward the thumb (default: true)
}

// SliderConfig describes one slider.
type SliderConfig struct {
	Name     string  `koanf:"name"`
	Min      float64 `koanf:"min"`
	Max      float64 `koanf:"max"`
	Step     float64 `koanf:"step"`
	Start    float64 `koanf:"start"`
	Vertical bool    `koanf:"vertical"`
	Inverted bool    `koanf:"inverted"` // flips the track direction
	Discrete bool    `koanf:"discrete"` // snap the thumb to steps while dragging
	Disabled bool    `koanf:"disabled"`
	Color    string  `koanf:"color"` // overrides theme.color
	Link     string  `koanf:"link"`  // sliders sharing a link mirror each other
	Thumb    string  `koanf:"thumb"` // thumb glyph for terminal rendering
}

// DefaultThumb is the terminal thumb glyph used when none is configured.
const DefaultThumb = "●"

// Range returns the slider's numeric range.
func (s SliderConfig) Range() slider.Range {
	return slider.Range{Min: s.Min, Max: s.Max, Step: s.Step, Start: s.Start}
}

// Orientation returns the configured axis.
func (s SliderConfig) Orientation() slider.Orientation {
	if s.Vertical {
		return slider.Vertical
	}
	return slider.Horizontal
}

// Mode returns the configured drag mode.
func (s SliderConfig) Mode() slider.Mode {
	if s.Discrete {
		return slider.Discrete
	}
	return slider.Continuous
}

var defaultSliders = []SliderConfig{
	{Name: "volume", Min: 0, Max: 100, Step: 1, Start: 50, Link: "level"},
	{Name: "balance", Min: -1, Max: 1, Step: 0.05, Start: 0, Discrete: true},
	{Name: "mirror", Min: 0, Max: 100, Step: 1, Start: 50, Inverted: true, Link: "level"},
	{Name: "gain", Min: -12, Max: 12, Step: 0.5, Start: 0, Vertical: true},
	{Name: "bass", Min: 0, Max: 10, Step: 2, Start: 4, Vertical: true, Discrete: true},
}

func Load() (*Config, error) {
	return LoadFrom(getConfigPaths()...)
}

// LoadFrom loads the given files in order (last wins). Missing files are
// skipped; the parser is chosen from the file extension.
func LoadFrom(paths ...string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := k.Load(file.Provider(path), parserFor(path)); err != nil {
			return nil, err
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	if cfg.LogFile != "" {
		cfg.LogFile = expandPath(cfg.LogFile)
	}

	return cfg, nil
}

func parserFor(path string) koanf.Parser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yamlParser{}
	default:
		return toml.Parser()
	}
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. $XDG_CONFIG_HOME/rangeslider/config.{toml,yaml}
	dir := filepath.Join(xdg.ConfigHome, appName)
	paths = append(paths,
		filepath.Join(dir, "config.toml"),
		filepath.Join(dir, "config.yaml"),
	)

	// 2. ./config.{toml,yaml} (pwd, highest priority)
	paths = append(paths, "config.toml", "config.yaml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// GradientEnabled reports whether fills are drawn as gradients.
func (c *Config) GradientEnabled() bool {
	return c.Theme.Gradient == nil || *c.Theme.Gradient
}

// GetSliders returns the configured sliders with defaults applied. When no
// slider is configured a demo set is returned.
func (c *Config) GetSliders() []SliderConfig {
	src := c.Sliders
	if len(src) == 0 {
		src = defaultSliders
	}

	out := make([]SliderConfig, len(src))
	for i, s := range src {
		// Apply defaults
		if s.Name == "" {
			s.Name = "slider" + strconv.Itoa(i+1)
		}
		if s.Step <= 0 {
			s.Step = 1
		}
		if s.Max <= s.Min {
			s.Max = s.Min + 100
		}
		if s.Start < s.Min || s.Start > s.Max {
			s.Start = s.Min
		}
		if s.Color == "" {
			s.Color = c.Theme.Color
		}
		if s.Thumb == "" {
			s.Thumb = DefaultThumb
		}
		out[i] = s
	}
	return out
}
