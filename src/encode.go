package sstv

/*------------------------------------------------------------------
 *
 * Purpose:	Encoder construction, validation, and the top-level
 *		transmission order.
 *
 * Description:	An Encoder binds one mode descriptor to one prepared
 *		pixel field.  All validation happens here; once
 *		construction succeeds the pipeline is a pure function
 *		of its inputs and cannot fail mid-stream (sink errors
 *		aside).  The transmission order is: optional VOX tone,
 *		VIS header, per-line body, optional FSKID trailer.
 *
 *---------------------------------------------------------------*/

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedBitDepth    = errors.New("unsupported bits per sample")
	ErrInvalidSampleRate      = errors.New("invalid sample rate")
	ErrImageDimensionMismatch = errors.New("image dimension mismatch")
)

// DitherSeedDefault seeds the quantizer noise ring when the caller
// does not supply a seed.  The seed is part of the output contract:
// identical inputs and seed reproduce the PCM stream byte for byte.
const DitherSeedDefault int64 = 0x55535456 // "SSTV"

// EncoderOptions carries the per-invocation knobs.
type EncoderOptions struct {
	SampleRate    int  // audio sample rate in Hz
	BitsPerSample int  // 8 or 16
	VOX           bool // emit the VOX tone before the VIS header
	Amplitude     int  // 1..100 percent of full scale; other values mean 100
	DitherSeed    int64
}

// DefaultEncoderOptions returns the options used by the CLI when
// nothing else is configured.
func DefaultEncoderOptions() EncoderOptions {
	return EncoderOptions{
		SampleRate:    11025,
		BitsPerSample: 16,
		Amplitude:     100,
		DitherSeed:    DitherSeedDefault,
	}
}

// Encoder turns one prepared image into an SSTV waveform.
type Encoder struct {
	mode  *Mode
	img   *Image
	opts  EncoderOptions
	fskid []byte
}

// NewEncoder validates the inputs and binds them.  The image must
// already be at the mode's native geometry with the channel count
// the mode scans; no cropping, padding, or coercion happens here.
func NewEncoder(mode *Mode, img *Image, opts EncoderOptions) (*Encoder, error) {
	if opts.BitsPerSample != 8 && opts.BitsPerSample != 16 {
		return nil, fmt.Errorf("%d bits per sample: %w", opts.BitsPerSample, ErrUnsupportedBitDepth)
	}
	if opts.SampleRate <= 0 {
		return nil, fmt.Errorf("%d Hz: %w", opts.SampleRate, ErrInvalidSampleRate)
	}
	if img.Width != mode.Width || img.Height != mode.Height {
		return nil, fmt.Errorf("%s wants %dx%d, image is %dx%d: %w",
			mode.Name, mode.Width, mode.Height, img.Width, img.Height, ErrImageDimensionMismatch)
	}
	var wantChannels = 3
	if mode.Grayscale() {
		wantChannels = 1
	}
	if img.Channels != wantChannels {
		return nil, fmt.Errorf("%s wants %d channel(s), image has %d: %w",
			mode.Name, wantChannels, img.Channels, ErrImageDimensionMismatch)
	}
	if opts.Amplitude <= 0 || opts.Amplitude > 100 {
		opts.Amplitude = 100
	}
	if opts.DitherSeed == 0 {
		opts.DitherSeed = DitherSeedDefault
	}
	return &Encoder{mode: mode, img: img, opts: opts}, nil
}

// Mode returns the bound mode descriptor.
func (e *Encoder) Mode() *Mode {
	return e.mode
}

// AddFSKIDText appends an FSK station identifier to the trailer.
// Each call contributes its own leader, so repeated IDs concatenate
// the way repeated transmissions would.
func (e *Encoder) AddFSKIDText(s string) {
	e.fskid = append(e.fskid, fskidTextPayload(s)...)
}

// Segments walks the symbolic transmission: every segment is handed
// to emit exactly once, in transmission order, with nothing
// materialized beyond the segment in flight.
func (e *Encoder) Segments(emit func(Segment) error) error {
	var f = func(freqHz, durationMs float64) error {
		return emit(Segment{FreqHz: freqHz, DurationMs: durationMs})
	}
	if e.opts.VOX {
		if err := voxPreamble(f); err != nil {
			return err
		}
	}
	if err := visHeader(e.mode.VISCode, f); err != nil {
		return err
	}
	if err := e.bodySegments(f); err != nil {
		return err
	}
	return fskidSegments(e.fskid, f)
}

// Encode synthesizes the whole transmission into sink as signed PCM
// at the configured rate and bit depth.
func (e *Encoder) Encode(sink SampleSink) error {
	var synth = newSynthesizer(e.opts)
	return e.Segments(func(s Segment) error {
		return synth.segment(s.FreqHz, s.DurationMs, sink)
	})
}

// DurationMs sums the symbolic stream without synthesizing it.
func (e *Encoder) DurationMs() float64 {
	var total float64
	_ = e.Segments(func(s Segment) error {
		total += s.DurationMs
		return nil
	})
	return total
}
