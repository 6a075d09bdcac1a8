// Package config loads invcache scenario files and builds the CLI logger.
package config

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/invcache/matrix"
)

// DefaultRepeat is how many times the initial matrix is inverted, so that
// every request after the first is served from the cache.
const DefaultRepeat = 2

// ErrInvalidScenario is returned by Validate for unusable scenario files.
var ErrInvalidScenario = errors.New("config: invalid scenario")

// Scenario is the YAML document consumed by `invcache invert`.
//
//	matrix:
//	  - [0.5, -1]
//	  - [-0.25, 0.75]
//	updates:
//	  - [[0.625, -0.875], [-0.125, 0.375]]
//	repeat: 2
//	inversion:
//	  pivot_tolerance: 1e-12
type Scenario struct {
	Matrix    [][]float64   `yaml:"matrix"`
	Updates   [][][]float64 `yaml:"updates,omitempty"`
	Repeat    *int          `yaml:"repeat,omitempty"`
	Inversion Inversion     `yaml:"inversion,omitempty"`
}

// RepeatCount returns the configured repeat count, or DefaultRepeat when the
// file leaves it unset. An explicit 0 skips the initial requests.
func (s *Scenario) RepeatCount() int {
	if s.Repeat == nil {
		return DefaultRepeat
	}

	return *s.Repeat
}

// Inversion mirrors the matrix.Option knobs. Nil pointers keep the
// library defaults.
type Inversion struct {
	PivotTolerance  *float64 `yaml:"pivot_tolerance,omitempty"`
	PartialPivoting *bool    `yaml:"partial_pivoting,omitempty"`
	ValidateNaNInf  *bool    `yaml:"validate_nan_inf,omitempty"`
}

// LoadScenario reads and validates a scenario file.
func LoadScenario(path string) (*Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening scenario %s: %w", path, err)
	}
	defer f.Close()

	s, err := DecodeScenario(f)
	if err != nil {
		return nil, fmt.Errorf("loading scenario %s: %w", path, err)
	}

	return s, nil
}

// DecodeScenario parses a scenario from r and validates it.
// Unknown keys are rejected.
func DecodeScenario(r io.Reader) (*Scenario, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var s Scenario
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("decoding scenario: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	return &s, nil
}

// Validate checks structural problems that are not inversion failures:
// an empty matrix, a negative repeat count or a negative tolerance.
// Non-square or singular matrices are left for the inversion to report.
func (s *Scenario) Validate() error {
	if len(s.Matrix) == 0 {
		return fmt.Errorf("%w: matrix is empty", ErrInvalidScenario)
	}
	if s.Repeat != nil && *s.Repeat < 0 {
		return fmt.Errorf("%w: repeat must be >= 0, got %d", ErrInvalidScenario, *s.Repeat)
	}
	for i, u := range s.Updates {
		if len(u) == 0 {
			return fmt.Errorf("%w: update %d is empty", ErrInvalidScenario, i)
		}
	}
	if tol := s.Inversion.PivotTolerance; tol != nil && (!(*tol >= 0) || math.IsInf(*tol, 1)) {
		return fmt.Errorf("%w: pivot_tolerance must be finite and >= 0", ErrInvalidScenario)
	}

	return nil
}

// Options converts the inversion section into matrix options.
func (in Inversion) Options() []matrix.Option {
	var opts []matrix.Option
	if in.PivotTolerance != nil {
		opts = append(opts, matrix.WithPivotTolerance(*in.PivotTolerance))
	}
	if in.PartialPivoting != nil {
		if *in.PartialPivoting {
			opts = append(opts, matrix.WithPartialPivoting())
		} else {
			opts = append(opts, matrix.WithNoPivoting())
		}
	}
	if in.ValidateNaNInf != nil {
		if *in.ValidateNaNInf {
			opts = append(opts, matrix.WithValidateNaNInf())
		} else {
			opts = append(opts, matrix.WithNoValidateNaNInf())
		}
	}

	return opts
}
