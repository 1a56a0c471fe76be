package main

import (
	"flag"
	"os"
	"os/signal"
	"strconv"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"

	"github.com/coreman2200/funtimes-strand/internal/animation"
	"github.com/coreman2200/funtimes-strand/internal/config"
	"github.com/coreman2200/funtimes-strand/internal/draw"
	"github.com/coreman2200/funtimes-strand/internal/model"
	"github.com/coreman2200/funtimes-strand/internal/timer"
)

func main() {
	// ---- Flags (config.yaml can override most) ----
	var (
		leds       = flag.Int("leds", 16, "number of LEDs on the strip")
		fps        = flag.Int("fps", 144, "target animation ticks per second (0 = unpaced)")
		driver     = flag.String("driver", "gpio", "driver: gpio | spi | term | null")
		dataPin    = flag.String("data-pin", "GPIO6", "data pin name for the gpio driver")
		clockPin   = flag.String("clock-pin", "GPIO5", "clock pin name for the gpio driver")
		spiPort    = flag.String("spi-port", "", "SPI port name for the spi driver (empty = first available)")
		endFrame   = flag.String("end-frame", "legacy", "end-frame padding policy: legacy | ceil | datasheet")
		configPath = flag.String("config", "config.yaml", "path to config.yaml")
		loop       = flag.Bool("loop", false, "requeue animations after the queue drains")
	)
	flag.Parse()

	// ---- Logging ----
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen})

	// ---- Load config.yaml (optional) ----
	var cfg *config.Config
	if c, err := config.Load(*configPath); err != nil {
		log.Warn().Err(err).Str("path", *configPath).Msg("config load failed; proceeding with flags")
	} else {
		cfg = c
	}

	// ---- Effective params ----
	eLeds, eFPS, eDriver, eEndFrame := *leds, *fps, *driver, *endFrame
	eData, eClock, eSPI := *dataPin, *clockPin, *spiPort
	if cfg != nil {
		if cfg.Leds > 0 {
			eLeds = cfg.Leds
		}
		if cfg.FPS > 0 {
			eFPS = cfg.FPS
		}
		if cfg.Driver != "" {
			eDriver = cfg.Driver
		}
		if cfg.EndFrame != "" {
			eEndFrame = cfg.EndFrame
		}
		if cfg.Pins.Data != "" {
			eData = cfg.Pins.Data
		}
		if cfg.Pins.Clock != "" {
			eClock = cfg.Pins.Clock
		}
		if cfg.SPI.Port != "" {
			eSPI = cfg.SPI.Port
		}
	}

	var targetDT time.Duration
	if eFPS > 0 {
		targetDT = time.Second / time.Duration(eFPS)
	}
	tmr := timer.New(timer.SystemClock, targetDT)

	// ---- Driver selection ----
	var drv draw.Draw
	switch eDriver {
	case "gpio":
		if _, err := host.Init(); err != nil {
			log.Fatal().Err(err).Msg("host init failed")
		}
		data := gpioreg.ByName(eData)
		clock := gpioreg.ByName(eClock)
		if data == nil || clock == nil {
			log.Fatal().Str("data", eData).Str("clock", eClock).Msg("gpio pin not found")
		}
		drv = draw.NewAPA102(data, clock, tmr, endFramePolicy(eEndFrame))

	case "spi":
		if _, err := host.Init(); err != nil {
			log.Fatal().Err(err).Msg("host init failed")
		}
		d, err := draw.NewSPI(eSPI, eLeds, tmr)
		if err != nil {
			log.Fatal().Err(err).Str("port", eSPI).Msg("spi init failed")
		}
		drv = d

	case "term":
		drv = draw.NewTerm(eLeds, tmr)

	case "null":
		drv = draw.NewNull(tmr)

	default:
		log.Warn().Str("driver", eDriver).Msg("unknown driver; using term")
		drv = draw.NewTerm(eLeds, tmr)
	}

	// ---- Build animation queue ----
	anims := buildAnimations(cfg, eLeds)
	for _, a := range anims {
		drv.PushQueue(a)
	}

	// ---- Wind down on SIGINT ----
	// The signal goroutine only flips flags; the pins belong to the main
	// goroutine, which blanks the strip once the run loop lets go.
	var stopping int32
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		s := <-ch
		log.Info().Str("signal", s.String()).Msg("shutting down")
		atomic.StoreInt32(&stopping, 1)
		drv.Interrupt()
	}()

	// Make sure the strip starts dark regardless of prior state.
	drv.Stop(eLeds)

	log.Info().
		Str("driver", eDriver).
		Int("leds", eLeds).
		Int("fps", eFPS).
		Int("queued", drv.QueueLen()).
		Msg("starting")

	for {
		done := drv.Run()
		log.Info().Stringer("stats", drv.Stats()).Msg("queue drained")
		if !*loop || atomic.LoadInt32(&stopping) == 1 {
			break
		}
		for _, a := range done {
			a.Reset()
			drv.PushQueue(a)
		}
	}

	if err := drv.Close(); err != nil {
		log.Error().Err(err).Msg("driver close failed")
	}
}

func endFramePolicy(name string) draw.EndFramePolicy {
	switch name {
	case "ceil":
		return draw.EndFrameCeil
	case "datasheet":
		return draw.EndFrameDatasheet
	case "legacy":
		return draw.EndFrameLegacy
	default:
		log.Warn().Str("end_frame", name).Msg("unknown end-frame policy; using legacy")
		return draw.EndFrameLegacy
	}
}

// defaultPalette is the stock breath palette: red, orange, yellow, green,
// blue, purple.
func defaultPalette() []model.RGB {
	return []model.RGB{
		model.FromHSV(0, 1, 1),
		model.FromHSV(30, 1, 1),
		model.FromHSV(60, 1, 1),
		model.FromHSV(120, 1, 1),
		model.FromHSV(210, 1, 1),
		model.FromHSV(280, 1, 1),
	}
}

// buildAnimations converts the configured animation list into live
// animations, or a stock demo queue when no config is present.
func buildAnimations(cfg *config.Config, leds int) []animation.Animation {
	if cfg == nil || len(cfg.Animations) == 0 {
		return []animation.Animation{
			animation.NewRainbow(16*time.Second, 2*time.Second, 0.25, 1, 1, 1, 1, leds),
			animation.NewBreath(18*time.Second, 3*time.Second, 0.25, leds, animation.ColorOrder{Colors: defaultPalette()}),
			animation.NewStrobe(5*time.Second, 0.25, leds, 100*time.Millisecond, 0.5, model.NewRGB(255, 255, 255)),
		}
	}

	out := make([]animation.Animation, 0, len(cfg.Animations))
	for _, ac := range cfg.Animations {
		runtime := secs(ac.RuntimeS)
		order := animation.ColorOrder{Colors: parsePalette(ac.Palette), Bright: ac.RandomBright}

		// The animations trust their numeric parameters, so the config
		// path has to reject the values YAML defaults to when fields are
		// omitted.
		period := secs(ac.PeriodS)
		if period <= 0 {
			log.Warn().Str("type", ac.Type).Float64("period_s", ac.PeriodS).Msg("non-positive period_s; using 1s")
			period = time.Second
		}
		step := ac.Step
		if step < 1 {
			step = 1
		}

		switch ac.Type {
		case "breath":
			out = append(out, animation.NewBreath(runtime, period, ac.Brightness, leds, order))
		case "rainbow":
			out = append(out, animation.NewRainbow(runtime, period, ac.Brightness, ac.Saturation, ac.Value, ac.Arc, step, leds))
		case "strobe":
			out = append(out, animation.NewStrobe(runtime, ac.Brightness, leds, period, ac.Duty, parseColor(ac.Color)))
		case "cycle":
			out = append(out, animation.NewCycle(runtime, period, ac.Brightness, leds, order))
		case "solid":
			out = append(out, animation.NewSolid(runtime, ac.Brightness, leds, parseColor(ac.Color)))
		default:
			log.Warn().Str("type", ac.Type).Msg("unknown animation type; skipping")
		}
	}
	return out
}

func secs(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

func parsePalette(codes []string) []model.RGB {
	out := make([]model.RGB, 0, len(codes))
	for _, c := range codes {
		out = append(out, parseColor(c))
	}
	return out
}

func parseColor(code string) model.RGB {
	if len(code) > 0 && code[0] == '#' {
		code = code[1:]
	}
	if len(code) > 2 && (code[:2] == "0x" || code[:2] == "0X") {
		code = code[2:]
	}
	v, err := strconv.ParseUint(code, 16, 32)
	if err != nil {
		log.Warn().Str("color", code).Msg("bad color code; using white")
		return model.NewRGB(255, 255, 255)
	}
	return model.FromCode(uint32(v), model.OrderRGB)
}
