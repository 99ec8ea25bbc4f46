// SPDX-License-Identifier: EPL-2.0

// Command sublimix renders a silent-subliminal mix from a spoken
// affirmation track and a background-music track.
//
// Usage:
//
//	sublimix -voice affirmation.wav -music background.mp3 -out render.wav
//
// Input formats are resolved from the file extension (wav, mp3, ogg,
// aiff).  Processing parameters come from defaults, optionally overlaid
// with a YAML preset via -config.  When the inputs disagree on sample
// rate, or -rate is given, tracks are resampled to the working rate before
// the pipeline runs; the pipeline itself never resamples.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/dadantech/sublimix"
	"github.com/dadantech/sublimix/audio"
	"github.com/dadantech/sublimix/formats/aiff"
	"github.com/dadantech/sublimix/formats/mp3"
	"github.com/dadantech/sublimix/formats/vorbis"
	"github.com/dadantech/sublimix/formats/wav"
)

func main() {
	voicePath := flag.String("voice", "", "affirmation audio file (required)")
	musicPath := flag.String("music", "", "background music file (required)")
	outPath := flag.String("out", "render.wav", "output WAV file")
	configPath := flag.String("config", "", "YAML preset overlaid on the defaults")
	workingRate := flag.Int("rate", 0, "working sample rate in Hz (0 = keep the music track's rate)")
	mono := flag.Bool("mono", false, "downmix the voice track to mono before modulation")
	normalize := flag.Bool("normalize", false, "normalize the voice track to 0 dBFS peak before modulation")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if *voicePath == "" || *musicPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(*voicePath, *musicPath, *outPath, *configPath, *workingRate, *mono, *normalize); err != nil {
		slog.Error("render failed", "error", err)
		os.Exit(1)
	}
}

func run(voicePath, musicPath, outPath, configPath string, workingRate int, mono, normalize bool) error {
	cfg := sublimix.DefaultConfig()
	if configPath != "" {
		var err error
		cfg, err = sublimix.LoadConfig(configPath)
		if err != nil {
			return err
		}
		slog.Debug("loaded preset", "path", configPath)
	}

	registry := newRegistry()

	voice, err := decodeFile(registry, voicePath)
	if err != nil {
		return fmt.Errorf("decoding voice: %w", err)
	}
	slog.Info("voice loaded",
		"path", voicePath,
		"duration", voice.Duration(),
		"rate", voice.SampleRate,
		"channels", voice.Channels)

	music, err := decodeFile(registry, musicPath)
	if err != nil {
		return fmt.Errorf("decoding music: %w", err)
	}
	slog.Info("music loaded",
		"path", musicPath,
		"duration", music.Duration(),
		"rate", music.SampleRate,
		"channels", music.Channels)

	if mono && voice.Channels > 1 {
		voice = audio.Downmix(voice)
		slog.Debug("voice downmixed to mono")
	}
	if normalize {
		voice = audio.Normalize(voice, 0)
		slog.Debug("voice normalized to 0 dBFS peak")
	}

	// The pipeline refuses mismatched rates, so reconcile here, on explicit
	// request or by adopting the music track's rate.
	rate := workingRate
	if rate == 0 && voice.SampleRate != music.SampleRate {
		rate = music.SampleRate
	}
	if rate != 0 {
		if voice, err = audio.Resample(voice, rate); err != nil {
			return fmt.Errorf("resampling voice: %w", err)
		}
		if music, err = audio.Resample(music, rate); err != nil {
			return fmt.Errorf("resampling music: %w", err)
		}
		slog.Info("resampled to working rate", "rate", rate)
	}

	out, err := sublimix.Process(sublimix.Job{Voice: voice, Music: music, Config: cfg})
	if err != nil {
		return err
	}

	// Stage into a temp file so a crash mid-write never leaves a truncated
	// container at the destination.
	tmp := outPath + ".tmp"
	if err := os.WriteFile(tmp, out, 0o644); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	if err := os.Rename(tmp, outPath); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("writing output: %w", err)
	}

	slog.Info("render complete",
		"path", outPath,
		"bytes", len(out),
		"carrier_hz", cfg.CarrierFreq,
		"binaural", cfg.BinauralEnabled)
	return nil
}

func newRegistry() *audio.Registry {
	r := audio.NewRegistry()
	r.Register("wav", wav.Decoder{})
	r.Register("mp3", mp3.Decoder{})
	r.Register("ogg", vorbis.Decoder{})
	r.Register("aiff", aiff.Decoder{})
	r.Register("aif", aiff.Decoder{})
	return r
}

func decodeFile(registry *audio.Registry, path string) (*audio.Buffer, error) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	dec, ok := registry.Get(ext)
	if !ok {
		return nil, fmt.Errorf("unsupported format %q", ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	return audio.ReadAll(src)
}
