// SPDX-License-Identifier: EPL-2.0

package sublimix

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// Carrier frequency limits.  Below 15 kHz the shifted voice leaks into the
// audible band; above 20 kHz common 44.1 kHz equipment cannot carry the
// upper sideband.
const (
	MinCarrierFreq = 15000
	MaxCarrierFreq = 20000
)

// Defaults mirror the classic silent-subliminal recipe: a 17.5 kHz
// carrier, voice 23 dB under the music, and a 4 Hz theta-band beat.
const (
	DefaultCarrierFreq       = 17500
	DefaultSubliminalGainDB  = -23
	DefaultBackgroundGainDB  = 0
	DefaultBinauralLeftFreq  = 430
	DefaultBinauralRightFreq = 434
	DefaultBinauralGainDB    = -15
	DefaultVoiceBandwidth    = 4000
)

// ProcessingConfig is the immutable parameter record for one job.
//
// VoiceBandwidth is the bandwidth the voice track is assumed to occupy; it
// only feeds the sampling-theorem check before modulation.  4 kHz is a
// conservative bound for speech; raise it for recordings with significant
// energy above that.
//
// OutputBitDepth selects the export depth: 16, 24, or 0 to choose
// automatically (24-bit once the carrier passes 18 kHz, 16-bit otherwise).
type ProcessingConfig struct {
	CarrierFreq       float64 `yaml:"carrier_freq"`
	SubliminalGainDB  float64 `yaml:"subliminal_gain_db"`
	BackgroundGainDB  float64 `yaml:"background_gain_db"`
	BinauralEnabled   bool    `yaml:"binaural_enabled"`
	BinauralLeftFreq  float64 `yaml:"binaural_left_freq"`
	BinauralRightFreq float64 `yaml:"binaural_right_freq"`
	BinauralGainDB    float64 `yaml:"binaural_gain_db"`
	VoiceBandwidth    float64 `yaml:"voice_bandwidth"`
	OutputBitDepth    int     `yaml:"output_bit_depth"`
}

// DefaultConfig returns a ProcessingConfig with every field at its default.
func DefaultConfig() ProcessingConfig {
	return ProcessingConfig{
		CarrierFreq:       DefaultCarrierFreq,
		SubliminalGainDB:  DefaultSubliminalGainDB,
		BackgroundGainDB:  DefaultBackgroundGainDB,
		BinauralEnabled:   false,
		BinauralLeftFreq:  DefaultBinauralLeftFreq,
		BinauralRightFreq: DefaultBinauralRightFreq,
		BinauralGainDB:    DefaultBinauralGainDB,
		VoiceBandwidth:    DefaultVoiceBandwidth,
	}
}

// LoadConfig reads a YAML preset file over the defaults, so a preset only
// needs to name the fields it changes.
func LoadConfig(path string) (ProcessingConfig, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks every invariant the pipeline assumes.  It runs before any
// buffer is touched, so an out-of-range carrier fails fast with nothing
// processed.
func (c *ProcessingConfig) Validate() error {
	if c.CarrierFreq < MinCarrierFreq || c.CarrierFreq > MaxCarrierFreq {
		return fmt.Errorf("%w: carrier %g Hz outside [%d, %d]",
			ErrInvalidConfiguration, c.CarrierFreq, MinCarrierFreq, MaxCarrierFreq)
	}
	if c.VoiceBandwidth <= 0 || math.IsNaN(c.VoiceBandwidth) || math.IsInf(c.VoiceBandwidth, 0) {
		return fmt.Errorf("%w: voice bandwidth %g Hz", ErrInvalidConfiguration, c.VoiceBandwidth)
	}
	for name, g := range map[string]float64{
		"subliminal_gain_db": c.SubliminalGainDB,
		"background_gain_db": c.BackgroundGainDB,
		"binaural_gain_db":   c.BinauralGainDB,
	} {
		if math.IsNaN(g) || math.IsInf(g, 0) {
			return fmt.Errorf("%w: %s is not finite", ErrInvalidConfiguration, name)
		}
	}
	if c.BinauralEnabled {
		if c.BinauralLeftFreq <= 0 || c.BinauralRightFreq <= 0 {
			return fmt.Errorf("%w: binaural frequencies %g/%g Hz must be positive",
				ErrInvalidConfiguration, c.BinauralLeftFreq, c.BinauralRightFreq)
		}
	}
	switch c.OutputBitDepth {
	case 0, 16, 24:
	default:
		return fmt.Errorf("%w: output bit depth %d (want 0, 16 or 24)",
			ErrInvalidConfiguration, c.OutputBitDepth)
	}
	return nil
}

// bitDepth resolves OutputBitDepth, choosing 24-bit above an 18 kHz carrier
// to keep quantization noise under the shifted voice.
func (c *ProcessingConfig) bitDepth() int {
	if c.OutputBitDepth != 0 {
		return c.OutputBitDepth
	}
	if c.CarrierFreq > 18000 {
		return 24
	}
	return 16
}
