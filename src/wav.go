package sstv

/*------------------------------------------------------------------
 *
 * Purpose:	Write PCM samples to a .WAV file.
 *
 * Description:	The RIFF header is written up front with placeholder
 *		sizes and patched when the file is closed, once the
 *		data length is known.  Stereo output duplicates the
 *		mono sample into both channels.  8-bit WAV samples are
 *		stored offset-binary (0..255); 16-bit samples are
 *		signed little-endian.
 *
 *---------------------------------------------------------------*/

import (
	"encoding/binary"
	"fmt"
	"os"
)

type wavHeader struct {
	ChunkID   [4]byte // "RIFF"
	ChunkSize uint32  // file size - 8
	Format    [4]byte // "WAVE"

	Subchunk1ID   [4]byte // "fmt "
	Subchunk1Size uint32  // 16 for PCM
	AudioFormat   uint16  // 1 for PCM
	NumChannels   uint16
	SampleRate    uint32
	ByteRate      uint32
	BlockAlign    uint16
	BitsPerSample uint16

	Subchunk2ID   [4]byte // "data"
	Subchunk2Size uint32
}

const wavHeaderSize = 44

// WAVWriter frames PCM samples into a mono or stereo WAV file.  It
// implements SampleSink.
type WAVWriter struct {
	file          *os.File
	sampleRate    int
	channels      int
	bitsPerSample int
	dataBytes     uint32
}

// NewWAVWriter creates the output file and writes a provisional
// header.
func NewWAVWriter(fname string, sampleRate, channels, bitsPerSample int) (*WAVWriter, error) {
	if channels != 1 && channels != 2 {
		return nil, fmt.Errorf("wav: %d channels not supported", channels)
	}

	var file, err = os.Create(fname)
	if err != nil {
		return nil, fmt.Errorf("wav: create %s: %w", fname, err)
	}

	var w = &WAVWriter{
		file:          file,
		sampleRate:    sampleRate,
		channels:      channels,
		bitsPerSample: bitsPerSample,
	}
	if err := w.writeHeader(); err != nil {
		file.Close()
		return nil, err
	}
	return w, nil
}

func (w *WAVWriter) writeHeader() error {
	var blockAlign = w.channels * w.bitsPerSample / 8
	var header = wavHeader{
		ChunkID:       [4]byte{'R', 'I', 'F', 'F'},
		ChunkSize:     wavHeaderSize - 8 + w.dataBytes,
		Format:        [4]byte{'W', 'A', 'V', 'E'},
		Subchunk1ID:   [4]byte{'f', 'm', 't', ' '},
		Subchunk1Size: 16,
		AudioFormat:   1,
		NumChannels:   uint16(w.channels),
		SampleRate:    uint32(w.sampleRate),
		ByteRate:      uint32(w.sampleRate * blockAlign),
		BlockAlign:    uint16(blockAlign),
		BitsPerSample: uint16(w.bitsPerSample),
		Subchunk2ID:   [4]byte{'d', 'a', 't', 'a'},
		Subchunk2Size: w.dataBytes,
	}
	if err := binary.Write(w.file, binary.LittleEndian, &header); err != nil {
		return fmt.Errorf("wav: write header: %w", err)
	}
	return nil
}

// PutSample writes one mono sample, duplicated across channels for
// stereo output.
func (w *WAVWriter) PutSample(s int) error {
	var frame [4]byte
	var n int
	if w.bitsPerSample == 8 {
		for c := 0; c < w.channels; c++ {
			frame[n] = byte(s + 128)
			n++
		}
	} else {
		for c := 0; c < w.channels; c++ {
			binary.LittleEndian.PutUint16(frame[n:], uint16(int16(s)))
			n += 2
		}
	}
	if _, err := w.file.Write(frame[:n]); err != nil {
		return fmt.Errorf("wav: write sample: %w", err)
	}
	w.dataBytes += uint32(n)
	return nil
}

// Close patches the header sizes and closes the file.
func (w *WAVWriter) Close() error {
	if _, err := w.file.Seek(0, 0); err != nil {
		w.file.Close()
		return fmt.Errorf("wav: seek for header fixup: %w", err)
	}
	if err := w.writeHeader(); err != nil {
		w.file.Close()
		return err
	}
	return w.file.Close()
}
