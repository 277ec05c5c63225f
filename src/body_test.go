package sstv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRobot8BWStructure(t *testing.T) {
	// 120 sync pulses of 7 ms at 1200 Hz interleaved with 120 scan
	// blocks of 160 black pixels at 0.375 ms each.
	var e = newTestEncoder(t, "Robot8BW", nil, DefaultEncoderOptions())
	var segs = collectSegments(t, e)[visSegmentCount:]

	require.Len(t, segs, 120*(1+160))
	for line := 0; line < 120; line++ {
		var at = line * 161
		assert.Equal(t, Segment{1200, 7.0}, segs[at])
		for x := 0; x < 160; x++ {
			var px = segs[at+1+x]
			assert.Equal(t, 1500.0, px.FreqHz)
			assert.InDelta(t, 0.375, px.DurationMs, 1e-12)
		}
	}
}

func TestMartinM1LineStructure(t *testing.T) {
	// Per line: sync, one leading gap, then G/B/R scans each
	// followed by a gap.  Four gaps, 960 pixel segments.
	var m, _ = ModeByName("MartinM1")
	var img = solidImage(m, 1, 0, 0.5) // distinct per channel
	var e = newTestEncoder(t, "MartinM1", img, DefaultEncoderOptions())
	var segs = collectSegments(t, e)[visSegmentCount:]

	var lineLen = 1 + 4 + 3*320
	require.Len(t, segs, 256*lineLen)

	var line = segs[:lineLen]
	assert.Equal(t, Segment{1200, 4.862}, line[0])

	var gaps, pixels = 0, 0
	for _, s := range line[1:] {
		if s.DurationMs == 0.572 {
			gaps++
			assert.Equal(t, 1500.0, s.FreqHz)
		} else {
			pixels++
		}
	}
	assert.Equal(t, 4, gaps)
	assert.Equal(t, 960, pixels)

	// Channel order G, B, R.
	assert.Equal(t, byteToFreq(0), line[2].FreqHz, "green scan first")
	assert.Equal(t, byteToFreq(128), line[2+321].FreqHz, "blue scan second")
	assert.Equal(t, byteToFreq(255), line[2+2*321].FreqHz, "red scan last")
}

func TestScottieS1LineStructure(t *testing.T) {
	// One 9 ms sync, two 1.5 ms gaps, three 320-pixel scans; no
	// line-level sync on top.
	var m, _ = ModeByName("ScottieS1")
	var img = solidImage(m, 1, 0, 0.5)
	var e = newTestEncoder(t, "ScottieS1", img, DefaultEncoderOptions())
	var segs = collectSegments(t, e)[visSegmentCount:]

	var lineLen = 1 + 2 + 3*320
	require.Len(t, segs, 256*lineLen)

	var line = segs[:lineLen]
	assert.Equal(t, Segment{1200, 9.0}, line[0], "sync pulse precedes red")
	assert.Equal(t, byteToFreq(255), line[1].FreqHz, "red scan first")
	assert.Equal(t, Segment{1500, 1.5}, line[321])
	assert.Equal(t, byteToFreq(0), line[322].FreqHz, "green scan second")
	assert.Equal(t, Segment{1500, 1.5}, line[642])
	assert.Equal(t, byteToFreq(128), line[643].FreqHz, "blue scan last")

	// The line ends on blue with no trailing gap; the next segment
	// is the next line's sync.
	assert.Equal(t, Segment{1200, 9.0}, segs[lineLen])
}

func TestRobot36ChromaAlternation(t *testing.T) {
	var e = newTestEncoder(t, "Robot36", nil, DefaultEncoderOptions())
	var segs = collectSegments(t, e)[visSegmentCount:]

	// Per line: sync, sync porch, 320 Y, separator, porch, 320 C.
	var lineLen = 2 + 320 + 2 + 320
	require.Len(t, segs, 240*lineLen)

	for y := 0; y < 240; y++ {
		var line = segs[y*lineLen : (y+1)*lineLen]
		assert.Equal(t, Segment{1200, 9.0}, line[0])
		assert.Equal(t, Segment{1500, 3.0}, line[1])

		var separator = line[2+320]
		assert.Equal(t, 4.5, separator.DurationMs)
		if y%2 == 0 {
			assert.Equal(t, 1500.0, separator.FreqHz, "even lines carry Cr")
		} else {
			assert.Equal(t, 2300.0, separator.FreqHz, "odd lines carry Cb")
		}
		assert.Equal(t, Segment{1900, 1.5}, line[2+321])
	}
}

func TestPD120Structure(t *testing.T) {
	// 248 transmitted lines, each with four 640-pixel blocks.
	var e = newTestEncoder(t, "PD120", nil, DefaultEncoderOptions())

	var lines, pixelSegs, n = 0, 0, 0
	require.NoError(t, e.Segments(func(s Segment) error {
		if n >= visSegmentCount {
			if s.FreqHz == 1200 && s.DurationMs == 20.0 {
				lines++
			}
			if s.DurationMs == 0.190 {
				pixelSegs++
			}
		}
		n++
		return nil
	}))

	assert.Equal(t, 248, lines)
	assert.Equal(t, 248*4*640, pixelSegs)
	assert.Equal(t, visSegmentCount+248*(2+4*640), n)
}

func TestPDDropsUnpairedTrailingLine(t *testing.T) {
	// All PD heights are even, so the drop rule is exercised on the
	// line walk itself: the transmitted count is exactly height/2.
	for _, name := range []string{"PD90", "PD160", "PD290"} {
		var e = newTestEncoder(t, name, nil, DefaultEncoderOptions())
		var syncs = 0
		require.NoError(t, e.Segments(func(s Segment) error {
			if s.FreqHz == 1200 && s.DurationMs == 20.0 {
				syncs++
			}
			return nil
		}))
		assert.Equal(t, e.Mode().Height/2, syncs, name)
	}
}

func TestPDAveragedChroma(t *testing.T) {
	// Even rows red, odd rows blue: the averaged chroma blocks sit
	// between the two pure-colour values.
	var m, _ = ModeByName("PD90")
	var img = NewRGBImage(m.Width, m.Height)
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if y%2 == 0 {
				img.SetRGB(x, y, 1, 0, 0)
			} else {
				img.SetRGB(x, y, 0, 0, 1)
			}
		}
	}
	var e = newTestEncoder(t, "PD90", img, DefaultEncoderOptions())
	var segs = collectSegments(t, e)[visSegmentCount:]

	var _, cbRed, crRed = rgbToYCbCr(1, 0, 0)
	var _, cbBlue, crBlue = rgbToYCbCr(0, 0, 1)

	var line = segs[:2+4*320]
	var y0 = line[2]
	var crAvg = line[2+320]
	var cbAvg = line[2+2*320]
	var y1 = line[2+3*320]

	assert.InDelta(t, byteToFreq(levelByte(0.299)), y0.FreqHz, 1e-9)
	assert.InDelta(t, byteToFreq(levelByte((crRed+crBlue)/2)), crAvg.FreqHz, 1e-9)
	assert.InDelta(t, byteToFreq(levelByte((cbRed+cbBlue)/2)), cbAvg.FreqHz, 1e-9)
	assert.InDelta(t, byteToFreq(levelByte(0.114)), y1.FreqHz, 1e-9)
}
