package sstv

/*------------------------------------------------------------------
 *
 * Purpose:	VOX and VIS preambles.
 *
 * Description:	The VOX tone is an alternating leader/black pattern
 *		that keys voice-operated transmitters before the image
 *		starts.  The VIS header identifies the mode to the
 *		receiver: leader, break, leader, start bit, the 7-bit
 *		VIS code LSB-first, even parity, stop bit.
 *
 *---------------------------------------------------------------*/

const (
	visLeaderMs = 300.0
	visBreakMs  = 10.0
	visBitMs    = 30.0
	voxToneMs   = 100.0
)

// voxPreamble keys VOX circuitry: 1900/1500 twice, then 2300/1500
// twice, 100 ms per tone.
func voxPreamble(emit emitFunc) error {
	var tones = []float64{
		FreqVISLeader, FreqBlack,
		FreqVISLeader, FreqBlack,
		FreqWhite, FreqBlack,
		FreqWhite, FreqBlack,
	}
	for _, f := range tones {
		if err := emit(f, voxToneMs); err != nil {
			return err
		}
	}
	return nil
}

// visHeader emits the calibration header and the VIS code for the
// mode.  Bit 1 is 1100 Hz, bit 0 is 1300 Hz, 30 ms each.
func visHeader(code byte, emit emitFunc) error {
	var header = []Segment{
		{FreqVISLeader, visLeaderMs},
		{FreqSync, visBreakMs},
		{FreqVISLeader, visLeaderMs},
		{FreqSync, visBitMs}, // start bit
	}
	for _, s := range header {
		if err := emit(s.FreqHz, s.DurationMs); err != nil {
			return err
		}
	}

	var ones = 0
	for i := 0; i < 7; i++ {
		var bit = (code >> i) & 1
		if bit == 1 {
			ones++
		}
		if err := emit(visBitFreq(bit), visBitMs); err != nil {
			return err
		}
	}

	// Even parity over the 7 code bits.
	if err := emit(visBitFreq(byte(ones&1)), visBitMs); err != nil {
		return err
	}

	return emit(FreqSync, visBitMs) // stop bit
}

func visBitFreq(bit byte) float64 {
	if bit == 1 {
		return FreqVISBit1
	}
	return FreqVISBit0
}
