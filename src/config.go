package sstv

/*------------------------------------------------------------------
 *
 * Purpose:	Encoder defaults from a YAML config file.
 *
 * Description:	The CLI merges command line flags over this file over
 *		built-in defaults.  Zero values mean "not set".
 *
 *---------------------------------------------------------------*/

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds persistent encoder defaults.
type Config struct {
	Mode     string         `yaml:"mode"`
	Audio    AudioConfig    `yaml:"audio"`
	Transmit TransmitConfig `yaml:"transmit"`
}

// AudioConfig shapes the PCM output.
type AudioConfig struct {
	SampleRate    int `yaml:"sample_rate"`
	BitsPerSample int `yaml:"bits_per_sample"`
	Channels      int `yaml:"channels"`
	Amplitude     int `yaml:"amplitude"` // percent of full scale
}

// TransmitConfig shapes the framing around the image.
type TransmitConfig struct {
	VOX        bool   `yaml:"vox"`
	FSKID      string `yaml:"fskid"`
	DitherSeed int64  `yaml:"dither_seed"`
}

// DefaultConfig is what an empty config file means.
func DefaultConfig() Config {
	var opts = DefaultEncoderOptions()
	return Config{
		Mode: "MartinM1",
		Audio: AudioConfig{
			SampleRate:    opts.SampleRate,
			BitsPerSample: opts.BitsPerSample,
			Channels:      1,
			Amplitude:     opts.Amplitude,
		},
		Transmit: TransmitConfig{
			DitherSeed: opts.DitherSeed,
		},
	}
}

// LoadConfig reads fname and fills unset fields with defaults.
func LoadConfig(fname string) (Config, error) {
	var cfg = DefaultConfig()

	var data, err = os.ReadFile(fname)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", fname, err)
	}
	var loaded Config
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", fname, err)
	}

	if loaded.Mode != "" {
		cfg.Mode = loaded.Mode
	}
	if loaded.Audio.SampleRate != 0 {
		cfg.Audio.SampleRate = loaded.Audio.SampleRate
	}
	if loaded.Audio.BitsPerSample != 0 {
		cfg.Audio.BitsPerSample = loaded.Audio.BitsPerSample
	}
	if loaded.Audio.Channels != 0 {
		cfg.Audio.Channels = loaded.Audio.Channels
	}
	if loaded.Audio.Amplitude != 0 {
		cfg.Audio.Amplitude = loaded.Audio.Amplitude
	}
	cfg.Transmit.VOX = loaded.Transmit.VOX
	if loaded.Transmit.FSKID != "" {
		cfg.Transmit.FSKID = loaded.Transmit.FSKID
	}
	if loaded.Transmit.DitherSeed != 0 {
		cfg.Transmit.DitherSeed = loaded.Transmit.DitherSeed
	}
	return cfg, nil
}

// EncoderOptions converts the config into per-invocation options.
func (c Config) EncoderOptions() EncoderOptions {
	return EncoderOptions{
		SampleRate:    c.Audio.SampleRate,
		BitsPerSample: c.Audio.BitsPerSample,
		VOX:           c.Transmit.VOX,
		Amplitude:     c.Audio.Amplitude,
		DitherSeed:    c.Transmit.DitherSeed,
	}
}
