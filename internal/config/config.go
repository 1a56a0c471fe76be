package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Pins names the GPIO pins for the bit-banged driver, using periph pin
// names (e.g. "GPIO6", "GPIO5").
type Pins struct {
	Data  string `yaml:"data"`
	Clock string `yaml:"clock"`
}

// SPI selects the hardware SPI port for the spi driver.
type SPI struct {
	Port string `yaml:"port"` // e.g. /dev/spidev0.0; empty picks the first
}

// Animation describes one queued animation. Type selects the variant;
// the remaining fields apply where the variant uses them.
type Animation struct {
	Type string `yaml:"type"` // breath | rainbow | strobe | cycle | solid

	RuntimeS   float64 `yaml:"runtime_s"`
	PeriodS    float64 `yaml:"period_s"`
	Brightness float64 `yaml:"brightness"`

	// Breath / cycle color order: hex color codes walked in order, or
	// random colors when empty.
	Palette      []string `yaml:"palette,omitempty"`
	RandomBright bool     `yaml:"random_bright,omitempty"`

	// Strobe / solid.
	Color string  `yaml:"color,omitempty"`
	Duty  float64 `yaml:"duty,omitempty"`

	// Rainbow.
	Saturation float64 `yaml:"saturation,omitempty"`
	Value      float64 `yaml:"value,omitempty"`
	Arc        float64 `yaml:"arc,omitempty"`
	Step       int     `yaml:"step,omitempty"`
}

type Config struct {
	Driver string `yaml:"driver"` // gpio | spi | term | null
	Leds   int    `yaml:"leds"`
	FPS    int    `yaml:"fps"`

	// EndFrame selects the end-frame padding policy for the gpio driver:
	// legacy | ceil | datasheet.
	EndFrame string `yaml:"end_frame,omitempty"`

	Pins Pins `yaml:"pins,omitempty"`
	SPI  SPI  `yaml:"spi,omitempty"`

	Animations []Animation `yaml:"animations"`
}

func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func Save(path string, c *Config) error {
	b, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0644)
}
