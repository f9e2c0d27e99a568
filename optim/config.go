// SPDX-License-Identifier: MIT

package optim

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Defaults for Config.
const (
	DefaultSteps         = 2000
	DefaultLearningRate  = 0.02
	DefaultBeta1         = 0.9
	DefaultBeta2         = 0.999
	DefaultAdamEpsilon   = 1e-8
	DefaultTolerance     = 1e-10
	DefaultRestarts      = 5
	DefaultMinDist       = 0.1
	DefaultNDGMargin     = 0.1
	DefaultGoalTolerance = 1e-4
	DefaultSeed          = 1
)

// Config holds the descent hyperparameters. The zero value is not usable;
// start from DefaultConfig.
type Config struct {
	// Steps bounds the Adam iterations per restart.
	Steps int `yaml:"steps" validate:"gte=1"`
	// LearningRate, Beta1, Beta2 and AdamEpsilon are the usual Adam knobs.
	LearningRate float64 `yaml:"learning_rate" validate:"gt=0"`
	Beta1        float64 `yaml:"beta1" validate:"gte=0,lt=1"`
	Beta2        float64 `yaml:"beta2" validate:"gte=0,lt=1"`
	AdamEpsilon  float64 `yaml:"adam_epsilon" validate:"gt=0"`
	// Tolerance is the objective value under which a restart has converged.
	Tolerance float64 `yaml:"tolerance" validate:"gt=0"`
	// Restarts is the number of initial samples tried.
	Restarts int `yaml:"restarts" validate:"gte=1"`
	// MinDist rejects initial samples with two points closer than this.
	MinDist float64 `yaml:"min_dist" validate:"gte=0"`
	// NDGMargin is the distance from zero under which an NDG residual is
	// penalized.
	NDGMargin float64 `yaml:"ndg_margin" validate:"gte=0"`
	// GoalTolerance decides whether a goal residual counts as zero.
	GoalTolerance float64 `yaml:"goal_tolerance" validate:"gt=0"`
	// Seed selects the restart RNG streams.
	Seed int64 `yaml:"seed"`
}

// DefaultConfig returns the documented defaults.
func DefaultConfig() Config {
	return Config{
		Steps:         DefaultSteps,
		LearningRate:  DefaultLearningRate,
		Beta1:         DefaultBeta1,
		Beta2:         DefaultBeta2,
		AdamEpsilon:   DefaultAdamEpsilon,
		Tolerance:     DefaultTolerance,
		Restarts:      DefaultRestarts,
		MinDist:       DefaultMinDist,
		NDGMargin:     DefaultNDGMargin,
		GoalTolerance: DefaultGoalTolerance,
		Seed:          DefaultSeed,
	}
}

var configValidate = validator.New(validator.WithRequiredStructEnabled())

// Validate reports the first out-of-range field as ErrInvalidConfig.
func (c Config) Validate() error {
	if err := configValidate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("optim: field %s fails %q (value %v): %w", fe.Field(), fe.Tag(), fe.Value(), ErrInvalidConfig)
		}
		return fmt.Errorf("optim: %v: %w", err, ErrInvalidConfig)
	}
	return nil
}

// DecodeConfig reads YAML from r over DefaultConfig, so a document only
// needs the keys it overrides. Unknown keys are rejected.
func DecodeConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("optim: decode config: %v: %w", err, ErrInvalidConfig)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig is DecodeConfig over the file at path.
func LoadConfig(path string) (Config, error) {
	fh, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("optim: load config: %w", err)
	}
	defer fh.Close()
	return DecodeConfig(fh)
}
