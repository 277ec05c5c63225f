package sstv

/*------------------------------------------------------------------
 *
 * Purpose:	Per-line image body for each mode family.
 *
 * Description:	Each family owns its complete line grammar, sync
 *		pulse included, so no generic sync path can fire on
 *		top of a family that embeds its own.
 *
 *		Grayscale:  sync, luma scan.
 *		Martin:     sync, gap, G, gap, B, gap, R, gap.
 *		Scottie:    sync, R, gap, G, gap, B.
 *		Robot 36:   sync, sync porch, Y, separator, porch,
 *		            alternating Cr (even lines) / Cb (odd).
 *		PD:         sync, porch, Y(even row), averaged Cr,
 *		            averaged Cb, Y(odd row).
 *
 *---------------------------------------------------------------*/

// robot36 fixed chroma separator tones.  The tone announces which
// chroma follows: black (1500 Hz) before Cr, white (2300 Hz) before
// Cb.
const (
	robot36CrSeparator = FreqBlack
	robot36CbSeparator = FreqWhite
)

func (e *Encoder) bodySegments(emit emitFunc) error {
	switch e.mode.Family {
	case FamilyGrayscale:
		return e.grayscaleBody(emit)
	case FamilyMartin:
		return e.martinBody(emit)
	case FamilyScottie:
		return e.scottieBody(emit)
	case FamilyRobot36:
		return e.robot36Body(emit)
	case FamilyPD:
		return e.pdBody(emit)
	}
	return nil
}

func (e *Encoder) grayscaleBody(emit emitFunc) error {
	var m = e.mode
	var pixelMs = m.ScanMs / float64(m.Width)

	for y := 0; y < m.Height; y++ {
		if err := emit(FreqSync, m.SyncMs); err != nil {
			return err
		}
		for x := 0; x < m.Width; x++ {
			if err := emit(byteToFreq(levelByte(e.img.Luma(x, y))), pixelMs); err != nil {
				return err
			}
		}
	}
	return nil
}

func (e *Encoder) martinBody(emit emitFunc) error {
	var m = e.mode
	var pixelMs = m.ScanMs / float64(m.Width)

	// Green, blue, red: one gap before the first channel, one after
	// every channel.
	var scan = func(y int, channel int) error {
		for x := 0; x < m.Width; x++ {
			var r, g, b = e.img.RGB(x, y)
			var v = [3]float64{r, g, b}[channel]
			if err := emit(byteToFreq(levelByte(v)), pixelMs); err != nil {
				return err
			}
		}
		return emit(FreqBlack, m.GapMs)
	}

	for y := 0; y < m.Height; y++ {
		if err := emit(FreqSync, m.SyncMs); err != nil {
			return err
		}
		if err := emit(FreqBlack, m.GapMs); err != nil {
			return err
		}
		for _, channel := range []int{1, 2, 0} { // G, B, R
			if err := scan(y, channel); err != nil {
				return err
			}
		}
	}
	return nil
}

func (e *Encoder) scottieBody(emit emitFunc) error {
	var m = e.mode
	var pixelMs = m.ScanMs / float64(m.Width)

	var scan = func(y int, channel int) error {
		for x := 0; x < m.Width; x++ {
			var r, g, b = e.img.RGB(x, y)
			var v = [3]float64{r, g, b}[channel]
			if err := emit(byteToFreq(levelByte(v)), pixelMs); err != nil {
				return err
			}
		}
		return nil
	}

	// The sync pulse precedes red, so the first line's pulse marks
	// the start of the frame.  The line ends on blue with no
	// trailing gap.
	for y := 0; y < m.Height; y++ {
		if err := emit(FreqSync, m.SyncBeforeRedMs); err != nil {
			return err
		}
		if err := scan(y, 0); err != nil {
			return err
		}
		if err := emit(FreqBlack, m.GapMs); err != nil {
			return err
		}
		if err := scan(y, 1); err != nil {
			return err
		}
		if err := emit(FreqBlack, m.GapMs); err != nil {
			return err
		}
		if err := scan(y, 2); err != nil {
			return err
		}
	}
	return nil
}

func (e *Encoder) robot36Body(emit emitFunc) error {
	var m = e.mode
	var yPixelMs = m.YScanMs / float64(m.Width)
	var cPixelMs = m.CScanMs / float64(m.Width)

	for y := 0; y < m.Height; y++ {
		if err := emit(FreqSync, m.SyncMs); err != nil {
			return err
		}
		if err := emit(FreqBlack, m.SyncPorchMs); err != nil {
			return err
		}

		for x := 0; x < m.Width; x++ {
			var luma, _, _ = rgbToYCbCr(e.img.RGB(x, y))
			if err := emit(byteToFreq(levelByte(luma)), yPixelMs); err != nil {
				return err
			}
		}

		var separator = robot36CrSeparator
		if y%2 == 1 {
			separator = robot36CbSeparator
		}
		if err := emit(separator, m.GapMs); err != nil {
			return err
		}
		if err := emit(FreqVISLeader, m.PorchMs); err != nil {
			return err
		}

		for x := 0; x < m.Width; x++ {
			var _, cb, cr = rgbToYCbCr(e.img.RGB(x, y))
			var c = cr
			if y%2 == 1 {
				c = cb
			}
			if err := emit(byteToFreq(levelByte(c)), cPixelMs); err != nil {
				return err
			}
		}
	}
	return nil
}

func (e *Encoder) pdBody(emit emitFunc) error {
	var m = e.mode

	// Two source rows per transmitted line; an odd trailing row is
	// dropped.
	for y := 0; y+1 < m.Height; y += 2 {
		if err := emit(FreqSync, m.SyncMs); err != nil {
			return err
		}
		if err := emit(FreqBlack, m.PorchMs); err != nil {
			return err
		}

		for x := 0; x < m.Width; x++ {
			var luma, _, _ = rgbToYCbCr(e.img.RGB(x, y))
			if err := emit(byteToFreq(levelByte(luma)), m.PixelMs); err != nil {
				return err
			}
		}
		for x := 0; x < m.Width; x++ {
			var _, _, cr0 = rgbToYCbCr(e.img.RGB(x, y))
			var _, _, cr1 = rgbToYCbCr(e.img.RGB(x, y+1))
			if err := emit(byteToFreq(levelByte((cr0+cr1)/2)), m.PixelMs); err != nil {
				return err
			}
		}
		for x := 0; x < m.Width; x++ {
			var _, cb0, _ = rgbToYCbCr(e.img.RGB(x, y))
			var _, cb1, _ = rgbToYCbCr(e.img.RGB(x, y+1))
			if err := emit(byteToFreq(levelByte((cb0+cb1)/2)), m.PixelMs); err != nil {
				return err
			}
		}
		for x := 0; x < m.Width; x++ {
			var luma, _, _ = rgbToYCbCr(e.img.RGB(x, y+1))
			if err := emit(byteToFreq(levelByte(luma)), m.PixelMs); err != nil {
				return err
			}
		}
	}
	return nil
}
