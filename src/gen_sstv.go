package sstv

/*------------------------------------------------------------------
 *
 * Name:	gen_sstv
 *
 * Purpose:	Convert an image file to an SSTV transmission in a
 *		.WAV audio file.
 *
 * Examples:	Defaults (Martin M1, 11025 Hz, 16 bit):
 *
 *			gen_sstv -o x.wav photo.png
 *
 *		Robot 36 at 48 kHz with a station ID trailer:
 *
 *			gen_sstv -M Robot36 -r 48000 --fskid WB2OSZ -o x.wav photo.jpg
 *
 *		8-bit stereo with the VOX preamble:
 *
 *			gen_sstv -8 -2 --vox -o x.wav photo.png
 *
 *------------------------------------------------------------------*/

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/lestrrat-go/strftime"
	"github.com/spf13/pflag"
)

const defaultOutputPattern = "sstv-%Y%m%d-%H%M%S.wav"

// GenSSTVMain is the gen_sstv entry point.
func GenSSTVMain() {
	var modeName = pflag.StringP("mode", "M", "", "SSTV mode.  One of: "+strings.Join(ModeNames(), ", ")+".")
	var sampleRate = pflag.IntP("audio-sample-rate", "r", 0, "Audio sample rate.")
	var eightBitsPerSample = pflag.BoolP("eight-bps", "8", false, "8 bit audio rather than 16.")
	var twoSoundChannels = pflag.BoolP("two-sound-channels", "2", false, "2 channels (stereo) audio rather than one channel.")
	var amplitude = pflag.IntP("amplitude", "a", 0, "Signal amplitude in range of 1 - 100%.")
	var vox = pflag.Bool("vox", false, "Emit VOX tone before the VIS header.")
	var fskid = pflag.String("fskid", "", "Append FSK station identifier after the image.")
	var ditherSeed = pflag.Int64("dither-seed", 0, "Quantizer dither seed.  Same seed reproduces the same output.")
	var configFile = pflag.StringP("config", "c", "", "Read defaults from YAML config file.")
	var outputFile = pflag.StringP("output-file", "o", "", "Send output to .wav file.  Default is a timestamped name.")
	var outputPattern = pflag.StringP("output-pattern", "T", defaultOutputPattern, "'strftime' format pattern for the default output file name.")
	var help = pflag.BoolP("help", "h", false, "Display help text.")

	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "%s - Generate SSTV transmission audio from an image.\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\n")
		fmt.Fprintf(os.Stderr, "Usage: %s [options] image-file\n", os.Args[0])
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\n")
		fmt.Fprintf(os.Stderr, "Example:  gen_sstv -o x.wav photo.png\n")
		fmt.Fprintf(os.Stderr, "\n")
		fmt.Fprintf(os.Stderr, "    With all defaults, Martin M1 at 11025 Hz, 16 bit mono.\n")
	}

	pflag.Parse()

	if *help {
		pflag.Usage()
		os.Exit(1)
	}

	if len(pflag.Args()) != 1 {
		log.Error("Exactly one input image file must be given.")
		pflag.Usage()
		os.Exit(1)
	}
	var imageFile = pflag.Args()[0]

	var cfg = DefaultConfig()
	if *configFile != "" {
		var loaded, err = LoadConfig(*configFile)
		if err != nil {
			log.Fatal("Can't load config.", "error", err)
		}
		cfg = loaded
	}

	// Flags override the config file.
	if *modeName != "" {
		cfg.Mode = *modeName
	}
	if *sampleRate != 0 {
		cfg.Audio.SampleRate = *sampleRate
	}
	if *eightBitsPerSample {
		cfg.Audio.BitsPerSample = 8
	}
	if *twoSoundChannels {
		cfg.Audio.Channels = 2
	}
	if *amplitude != 0 {
		cfg.Audio.Amplitude = *amplitude
	}
	if *vox {
		cfg.Transmit.VOX = true
	}
	if *fskid != "" {
		cfg.Transmit.FSKID = *fskid
	}
	if *ditherSeed != 0 {
		cfg.Transmit.DitherSeed = *ditherSeed
	}

	var mode, modeErr = ModeByName(cfg.Mode)
	if modeErr != nil {
		log.Fatal("Bad mode.", "error", modeErr)
	}

	var fname = *outputFile
	if fname == "" {
		var formatted, err = strftime.Format(*outputPattern, time.Now())
		if err != nil {
			log.Fatal("Bad output pattern.", "pattern", *outputPattern, "error", err)
		}
		fname = formatted
	}

	var src, loadErr = LoadImageFile(imageFile)
	if loadErr != nil {
		log.Fatal("Can't load image.", "error", loadErr)
	}
	var img = PrepareImage(src, mode)

	var encoder, encErr = NewEncoder(mode, img, cfg.EncoderOptions())
	if encErr != nil {
		log.Fatal("Can't build encoder.", "error", encErr)
	}
	if cfg.Transmit.FSKID != "" {
		encoder.AddFSKIDText(cfg.Transmit.FSKID)
	}

	var wav, wavErr = NewWAVWriter(fname, cfg.Audio.SampleRate, cfg.Audio.Channels, cfg.Audio.BitsPerSample)
	if wavErr != nil {
		log.Fatal("Can't open output file.", "error", wavErr)
	}

	log.Info("Encoding.", "mode", mode.Name, "image", imageFile, "output", fname,
		"rate", cfg.Audio.SampleRate, "bits", cfg.Audio.BitsPerSample,
		"duration", (time.Duration(encoder.DurationMs()) * time.Millisecond).Round(time.Millisecond))

	if err := encoder.Encode(wav); err != nil {
		wav.Close()
		log.Fatal("Encoding failed.", "error", err)
	}
	if err := wav.Close(); err != nil {
		log.Fatal("Can't finish output file.", "error", err)
	}
}
