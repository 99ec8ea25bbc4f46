// SPDX-License-Identifier: EPL-2.0

package sublimix

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestProcessingConfig_Validate(t *testing.T) {
	t.Parallel()

	valid := DefaultConfig()

	tests := []struct {
		name    string
		mutate  func(*ProcessingConfig)
		wantErr bool
	}{
		{"defaults", func(c *ProcessingConfig) {}, false},
		{"carrier at lower bound", func(c *ProcessingConfig) { c.CarrierFreq = 15000 }, false},
		{"carrier at upper bound", func(c *ProcessingConfig) { c.CarrierFreq = 20000 }, false},
		{"carrier too low", func(c *ProcessingConfig) { c.CarrierFreq = 14999 }, true},
		{"carrier too high", func(c *ProcessingConfig) { c.CarrierFreq = 21000 }, true},
		{"zero bandwidth", func(c *ProcessingConfig) { c.VoiceBandwidth = 0 }, true},
		{"NaN bandwidth", func(c *ProcessingConfig) { c.VoiceBandwidth = math.NaN() }, true},
		{"NaN gain", func(c *ProcessingConfig) { c.SubliminalGainDB = math.NaN() }, true},
		{"infinite gain", func(c *ProcessingConfig) { c.BinauralGainDB = math.Inf(1) }, true},
		{
			"binaural enabled with zero frequency",
			func(c *ProcessingConfig) { c.BinauralEnabled = true; c.BinauralLeftFreq = 0 },
			true,
		},
		{
			"binaural disabled ignores frequencies",
			func(c *ProcessingConfig) { c.BinauralEnabled = false; c.BinauralLeftFreq = 0 },
			false,
		},
		{"explicit 16-bit", func(c *ProcessingConfig) { c.OutputBitDepth = 16 }, false},
		{"explicit 24-bit", func(c *ProcessingConfig) { c.OutputBitDepth = 24 }, false},
		{"unsupported bit depth", func(c *ProcessingConfig) { c.OutputBitDepth = 8 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidConfiguration) {
					t.Errorf("Validate() = %v, want %v", err, ErrInvalidConfiguration)
				}
				return
			}
			if err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
		})
	}
}

func TestProcessingConfig_BitDepth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		explicit int
		carrier  float64
		want     int
	}{
		{"explicit 16", 16, 19500, 16},
		{"explicit 24", 24, 17500, 24},
		{"auto below 18k", 0, 17500, 16},
		{"auto at 18k", 0, 18000, 16},
		{"auto above 18k", 0, 19000, 24},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.OutputBitDepth = tt.explicit
			cfg.CarrierFreq = tt.carrier

			if got := cfg.bitDepth(); got != tt.want {
				t.Errorf("bitDepth() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	if cfg.CarrierFreq != 17500 {
		t.Errorf("CarrierFreq = %g, want 17500", cfg.CarrierFreq)
	}
	if cfg.SubliminalGainDB != -23 {
		t.Errorf("SubliminalGainDB = %g, want -23", cfg.SubliminalGainDB)
	}
	if cfg.BinauralEnabled {
		t.Error("BinauralEnabled defaults to true, want false")
	}
	if cfg.BinauralLeftFreq != 430 || cfg.BinauralRightFreq != 434 {
		t.Errorf("binaural defaults = %g/%g, want 430/434", cfg.BinauralLeftFreq, cfg.BinauralRightFreq)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config fails validation: %v", err)
	}
}

func TestLoadConfig_OverlaysDefaults(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "preset.yaml")
	preset := "carrier_freq: 16000\nbinaural_enabled: true\nbinaural_gain_db: -18\n"
	if err := os.WriteFile(path, []byte(preset), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.CarrierFreq != 16000 {
		t.Errorf("CarrierFreq = %g, want 16000", cfg.CarrierFreq)
	}
	if !cfg.BinauralEnabled {
		t.Error("BinauralEnabled not overridden")
	}
	if cfg.BinauralGainDB != -18 {
		t.Errorf("BinauralGainDB = %g, want -18", cfg.BinauralGainDB)
	}

	// Fields the preset does not name keep their defaults.
	if cfg.SubliminalGainDB != DefaultSubliminalGainDB {
		t.Errorf("SubliminalGainDB = %g, want default %d", cfg.SubliminalGainDB, DefaultSubliminalGainDB)
	}
	if cfg.BinauralLeftFreq != DefaultBinauralLeftFreq {
		t.Errorf("BinauralLeftFreq = %g, want default %d", cfg.BinauralLeftFreq, DefaultBinauralLeftFreq)
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	t.Parallel()

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
			t.Error("LoadConfig() of missing file succeeded")
		}
	})

	t.Run("malformed yaml", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "bad.yaml")
		if err := os.WriteFile(path, []byte("carrier_freq: [not a number"), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadConfig(path); err == nil {
			t.Error("LoadConfig() of malformed yaml succeeded")
		}
	})

	t.Run("out of range value", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "range.yaml")
		if err := os.WriteFile(path, []byte("carrier_freq: 99\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadConfig(path); !errors.Is(err, ErrInvalidConfiguration) {
			t.Errorf("LoadConfig() error = %v, want %v", err, ErrInvalidConfiguration)
		}
	})
}
