package snap

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned when a threshold is out of range.
var ErrInvalidConfig = errors.New("snap: invalid config")

// Config holds the detection thresholds. The defaults are empirically tuned;
// override them through Options or a YAML file rather than editing them.
type Config struct {
	// NormalCosine is the minimum |cos| between a face normal and the
	// reference normal for the face to count as coplanar (≈1.8°).
	NormalCosine float64 `yaml:"normal_cosine"`

	// PlaneDistance is the maximum distance, in world units, of every
	// vertex of a coplanar face from the reference plane.
	PlaneDistance float64 `yaml:"plane_distance"`

	// MinCircleSamples is the number of distinct outline vertices below
	// which no circle is fitted.
	MinCircleSamples int `yaml:"min_circle_samples"`

	// MaxRelativeResidual bounds RMS(|d - r|) / r of an accepted circle.
	MaxRelativeResidual float64 `yaml:"max_relative_residual"`

	// MaxAspectRatio bounds the bounding-box aspect of an accepted circle.
	MaxAspectRatio float64 `yaml:"max_aspect_ratio"`

	// SingularPivot is the smallest pivot accepted by the circle solve.
	SingularPivot float64 `yaml:"singular_pivot"`
}

// DefaultConfig returns the stock thresholds.
func DefaultConfig() Config {
	return Config{
		NormalCosine:        0.9995,
		PlaneDistance:       1e-4,
		MinCircleSamples:    12,
		MaxRelativeResidual: 0.03,
		MaxAspectRatio:      1.05,
		SingularPivot:       1e-12,
	}
}

// Validate checks that every threshold is usable.
func (c Config) Validate() error {
	switch {
	case !(c.NormalCosine > 0 && c.NormalCosine <= 1):
		return fmt.Errorf("%w: normal_cosine %v not in (0, 1]", ErrInvalidConfig, c.NormalCosine)
	case !(c.PlaneDistance >= 0):
		return fmt.Errorf("%w: plane_distance %v is negative", ErrInvalidConfig, c.PlaneDistance)
	case c.MinCircleSamples < 3:
		return fmt.Errorf("%w: min_circle_samples %d is below 3", ErrInvalidConfig, c.MinCircleSamples)
	case !(c.MaxRelativeResidual > 0):
		return fmt.Errorf("%w: max_relative_residual %v must be positive", ErrInvalidConfig, c.MaxRelativeResidual)
	case !(c.MaxAspectRatio >= 1):
		return fmt.Errorf("%w: max_aspect_ratio %v is below 1", ErrInvalidConfig, c.MaxAspectRatio)
	case !(c.SingularPivot > 0):
		return fmt.Errorf("%w: singular_pivot %v must be positive", ErrInvalidConfig, c.SingularPivot)
	}
	return nil
}

// LoadConfig reads a YAML document on top of DefaultConfig. Keys that are
// absent keep their default value; an empty document yields the defaults.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Option adjusts a Config.
type Option func(*Config)

// WithConfig replaces every threshold.
func WithConfig(cfg Config) Option {
	return func(c *Config) { *c = cfg }
}

// WithNormalCosine sets Config.NormalCosine.
func WithNormalCosine(v float64) Option {
	return func(c *Config) { c.NormalCosine = v }
}

// WithPlaneDistance sets Config.PlaneDistance.
func WithPlaneDistance(v float64) Option {
	return func(c *Config) { c.PlaneDistance = v }
}

// WithMinCircleSamples sets Config.MinCircleSamples.
func WithMinCircleSamples(n int) Option {
	return func(c *Config) { c.MinCircleSamples = n }
}

// WithMaxRelativeResidual sets Config.MaxRelativeResidual.
func WithMaxRelativeResidual(v float64) Option {
	return func(c *Config) { c.MaxRelativeResidual = v }
}

// WithMaxAspectRatio sets Config.MaxAspectRatio.
func WithMaxAspectRatio(v float64) Option {
	return func(c *Config) { c.MaxAspectRatio = v }
}

func buildConfig(opts []Option) (Config, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
