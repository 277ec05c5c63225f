package sstv

/*------------------------------------------------------------------
 *
 * Purpose:	Convert segments to dithered PCM samples.
 *
 * Description:	A single oscillator carries its phase across segment
 *		boundaries so frequency changes never click, and a
 *		fractional-sample accumulator carries the remainder of
 *		each segment's duration into the next so the stream
 *		never drifts from the intended timing.  Floating-point
 *		samples are quantized with a ring of uniform dither
 *		values, one ring slot per emitted sample.
 *
 *---------------------------------------------------------------*/

import (
	"math"
	"math/rand"
)

// SampleSink receives signed PCM samples one at a time: 8-bit values
// in -128..127 or 16-bit values in -32768..32767 depending on the
// encoder's bit depth.
type SampleSink interface {
	PutSample(s int) error
}

const ditherRingSize = 1024

type synthesizer struct {
	sampleRate float64
	bits       int
	amp        float64 // 0..1 scale applied before quantization

	phase float64 // radians, carried across segments
	acc   float64 // fractional samples owed to the stream

	dither    [ditherRingSize]float64
	ditherIdx int

	quantFull  float64 // 2^(bits-1)
	quantScale float64 // dither scale, 1/2^bits
}

func newSynthesizer(opts EncoderOptions) *synthesizer {
	var s = &synthesizer{
		sampleRate: float64(opts.SampleRate),
		bits:       opts.BitsPerSample,
		amp:        float64(opts.Amplitude) / 100.0,
		quantFull:  float64(int(1) << (opts.BitsPerSample - 1)),
		quantScale: 1.0 / float64(int(1)<<opts.BitsPerSample),
	}
	// The ring is precomputed from the seed and then only indexed,
	// so identical seeds reproduce identical streams.
	var rng = rand.New(rand.NewSource(opts.DitherSeed))
	for i := range s.dither {
		s.dither[i] = rng.Float64() - 0.5
	}
	return s
}

// segment emits one constant-frequency span.  freqHz 0 is silence;
// it still advances the accumulator and the dither ring.
func (s *synthesizer) segment(freqHz, durationMs float64, sink SampleSink) error {
	s.acc += s.sampleRate / 1000.0 * durationMs
	var n = int(math.Floor(s.acc))
	s.acc -= float64(n)

	if freqHz == 0 {
		for k := 0; k < n; k++ {
			if err := sink.PutSample(s.quantize(0)); err != nil {
				return err
			}
		}
		return nil
	}

	var omega = 2.0 * math.Pi * freqHz / s.sampleRate
	for k := 0; k < n; k++ {
		var v = math.Sin(float64(k)*omega+s.phase) * s.amp
		if err := sink.PutSample(s.quantize(v)); err != nil {
			return err
		}
	}

	// The next segment starts at the phase this one would have
	// reached, keeping the sine continuous at the boundary.
	s.phase = math.Mod(s.phase+float64(n)*omega, 2.0*math.Pi)
	return nil
}

// quantize rounds v (in [-1, +1]) to the signed integer range with
// the next dither value added below the LSB, then clamps.
func (s *synthesizer) quantize(v float64) int {
	var d = s.dither[s.ditherIdx]
	s.ditherIdx = (s.ditherIdx + 1) % ditherRingSize

	var q = math.Round(v*s.quantFull + d*s.quantScale)
	if q < -s.quantFull {
		q = -s.quantFull
	}
	if q > s.quantFull-1 {
		q = s.quantFull - 1
	}
	return int(q)
}
