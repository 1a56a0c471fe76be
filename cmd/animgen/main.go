// animgen bakes a procedural color-wheel animation into a RIFF-wrapped
// ANIM chunk file for later playback.
package main

import (
	"flag"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/coreman2200/funtimes-strand/internal/chunk"
	"github.com/coreman2200/funtimes-strand/internal/model"
)

const (
	colorSize = 1024
	maxValue  = 0x80
	minValue  = 0x00
)

func main() {
	var (
		leds    = flag.Int("leds", 9, "LEDs per frame")
		frames  = flag.Int("frames", colorSize, "number of frames to bake")
		cycleS  = flag.Float64("cycle-s", 9.0, "seconds for one full color-wheel revolution")
		index   = flag.Int("index", 0, "animation index used in the chunk label")
		looping = flag.Bool("loop", true, "set the looping flag in the size mask")
		out     = flag.String("o", "Output.bin", "output file")
	)
	flag.Parse()

	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen})

	table := colorTable()

	// Each frame samples the wheel at an offset that advances a little
	// further every call, so playback scrolls the wheel across the strip.
	c := 0
	frameDur := *cycleS / float64(*frames)
	numLeds := *leds
	numFrames := *frames
	getFrame := func() chunk.Frame {
		f := chunk.Frame{
			Duration: frameDur,
			Pixels:   make([]model.RGB, numLeds),
		}
		for i := 0; i < numLeds; i++ {
			f.Pixels[i] = table[((i*colorSize/numLeds)+(c*colorSize/numFrames))%colorSize]
		}
		c++
		return f
	}

	if numFrames < 0 || numFrames > 0xFFFF {
		log.Fatal().Int("frames", numFrames).Msg("frame count out of range")
	}

	opts, err := chunk.NewGeneratorOptions(getFrame, uint16(numFrames), *looping)
	if err != nil {
		log.Fatal().Err(err).Msg("bad generator options")
	}

	label, payload := chunk.Generate(opts, uint16(*index))

	riff := chunk.NewRIFFWriter("ANIM")
	riff.AddChunk(label, payload)

	if err := os.WriteFile(*out, riff.Bytes(), 0644); err != nil {
		log.Fatal().Err(err).Str("path", *out).Msg("write failed")
	}

	log.Info().
		Str("path", *out).
		Str("label", label).
		Int("frames", numFrames).
		Int("leds", numLeds).
		Int("bytes", len(payload)).
		Msg("animation baked")
}

// colorTable builds a 1024-entry wheel lerped between the six primary and
// secondary colors at reduced intensity.
func colorTable() []model.RGB {
	var (
		red     = model.NewRGB(maxValue, minValue, minValue)
		yellow  = model.NewRGB(maxValue, maxValue, minValue)
		green   = model.NewRGB(minValue, maxValue, minValue)
		cyan    = model.NewRGB(minValue, maxValue, maxValue)
		blue    = model.NewRGB(minValue, minValue, maxValue)
		magenta = model.NewRGB(maxValue, minValue, maxValue)
	)

	stops := []model.RGB{red, yellow, green, cyan, blue, magenta, red}
	seg := colorSize / 6

	table := make([]model.RGB, colorSize)
	for i := range table {
		s := i / seg
		if s > 5 {
			s = 5
		}
		// 1024 does not divide evenly by 6; the leftover indices land in
		// the last segment, so clamp the step or the lerp extrapolates
		// past red and wraps the uint8 math.
		step := i - s*seg
		if step > seg {
			step = seg
		}
		table[i] = lerp(stops[s], stops[s+1], step, seg)
	}
	return table
}

func lerp(start, end model.RGB, step, size int) model.RGB {
	mix := func(a, b uint8) uint8 {
		return uint8(int(a) + (int(b)-int(a))*step/size)
	}
	return model.NewRGB(mix(start.R, end.R), mix(start.G, end.G), mix(start.B, end.B))
}
