package dataset

import (
	"fmt"

	"github.com/medviz/regresslab/internal/options"
)

// genConfig holds generation tunables shared by every scenario.
type genConfig struct {
	// noiseScale multiplies the amplitude of each scenario's uniform noise
	// term. 1.0 reproduces the canonical signal shapes; 0 yields noiseless
	// illustrative data.
	noiseScale float64
}

func defaultGenConfig() genConfig {
	return genConfig{noiseScale: 1.0}
}

// Option is a functional option for dataset generation.
type Option = options.Option[*genConfig]

// WithNoiseScale scales the noise amplitude of the generated signal.
// The scale must not be negative.
func WithNoiseScale(scale float64) Option {
	return options.New(func(cfg *genConfig) error {
		if scale < 0 {
			return fmt.Errorf("noise scale must not be negative, got %f", scale)
		}
		cfg.noiseScale = scale

		return nil
	})
}
