package reveal

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Default timings, in seconds.
const (
	DefaultDuration        = 0.6
	DefaultStaggerDuration = 0.075
	DefaultUnitDuration    = 0.4
	DefaultLineCascade     = 0.1
	DefaultHiddenOffset    = 1.0
)

// Options configures an AnimatedText. Times are in seconds.
type Options struct {
	Text      string `toml:"text" yaml:"text"`
	ClassName string `toml:"class_name" yaml:"class_name"`
	ID        string `toml:"id" yaml:"id"`

	Delay           float64 `toml:"delay" yaml:"delay"`
	Once            bool    `toml:"once" yaml:"once"`
	Opacity         float64 `toml:"opacity" yaml:"opacity"`
	Duration        float64 `toml:"duration" yaml:"duration"`
	StaggerDuration float64 `toml:"stagger_duration" yaml:"stagger_duration"`
	TargetedElement Target  `toml:"targeted_element" yaml:"targeted_element"`
	Ease            Ease    `toml:"ease" yaml:"ease,flow"`

	// Per-unit transition carried by each partition unit.
	UnitDuration float64 `toml:"unit_duration" yaml:"unit_duration"`
	LineCascade  float64 `toml:"line_cascade" yaml:"line_cascade"`

	// HiddenOffset is the initial slide offset as a fraction of unit height.
	HiddenOffset float64 `toml:"hidden_offset" yaml:"hidden_offset"`

	// LineTolerance groups words whose tops differ by at most this much.
	// Zero requires exact equality.
	LineTolerance float64 `toml:"line_tolerance" yaml:"line_tolerance"`

	// ReadyTimeout lets measurement proceed with whatever font is available
	// once readiness has not resolved for this long. Zero waits forever.
	ReadyTimeout float64 `toml:"ready_timeout" yaml:"ready_timeout"`

	// AnimateExit slides units back out when the text leaves the viewport
	// (only meaningful with Once false).
	AnimateExit bool `toml:"animate_exit" yaml:"animate_exit"`
}

// DefaultOptions returns the options used when a field is not configured.
func DefaultOptions() Options {
	return Options{
		Once:            true,
		Opacity:         1,
		Duration:        DefaultDuration,
		StaggerDuration: DefaultStaggerDuration,
		TargetedElement: TargetLine,
		Ease:            DefaultEase,
		UnitDuration:    DefaultUnitDuration,
		LineCascade:     DefaultLineCascade,
		HiddenOffset:    DefaultHiddenOffset,
	}
}

// Validate reports the first invalid field, wrapped in ErrInvalidOptions.
func (o Options) Validate() error {
	timings := []struct {
		name string
		v    float64
	}{
		{"delay", o.Delay},
		{"duration", o.Duration},
		{"stagger_duration", o.StaggerDuration},
		{"unit_duration", o.UnitDuration},
		{"line_cascade", o.LineCascade},
		{"line_tolerance", o.LineTolerance},
		{"ready_timeout", o.ReadyTimeout},
	}
	for _, t := range timings {
		if t.v < 0 {
			return fmt.Errorf("%w: %s must not be negative, got %v", ErrInvalidOptions, t.name, t.v)
		}
	}
	if o.Opacity < 0 || o.Opacity > 1 {
		return fmt.Errorf("%w: opacity must be in [0, 1], got %v", ErrInvalidOptions, o.Opacity)
	}
	if o.TargetedElement != TargetLine && o.TargetedElement != TargetWord {
		return fmt.Errorf("%w: %w: %v", ErrInvalidOptions, ErrUnknownTarget, o.TargetedElement)
	}
	if !o.Ease.Valid() {
		return fmt.Errorf("%w: ease x coordinates must be in [0, 1], got %v", ErrInvalidOptions, o.Ease)
	}
	return nil
}

// LoadOptions reads options from a .toml, .yaml or .yml file. Fields missing
// from the file keep their DefaultOptions values.
func LoadOptions(path string) (Options, error) {
	opts := DefaultOptions()
	data, err := os.ReadFile(path)
	if err != nil {
		return opts, fmt.Errorf("reveal: read options: %w", err)
	}
	if err := DecodeOptions(data, filepath.Ext(path), &opts); err != nil {
		return opts, err
	}
	return opts, opts.Validate()
}

// DecodeOptions decodes data in the format named by ext (".toml", ".yaml" or
// ".yml") over opts.
func DecodeOptions(data []byte, ext string, opts *Options) error {
	switch strings.ToLower(ext) {
	case ".toml":
		if _, err := toml.Decode(string(data), opts); err != nil {
			return fmt.Errorf("reveal: decode toml options: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, opts); err != nil {
			return fmt.Errorf("reveal: decode yaml options: %w", err)
		}
	default:
		return fmt.Errorf("reveal: unsupported options format %q", ext)
	}
	return nil
}
