package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/phaseplane/internal/plane"
)

const (
	DefaultSteps    = 200
	DefaultStepSize = 0.05
	DefaultGrid     = 5
	DefaultSpan     = 8.0
	DefaultWidth    = 72
	DefaultHeight   = 28
)

// Matrix mirrors plane.Mat2 with yaml tags so system coefficients can live
// in config files.
type Matrix struct {
	A float64 `yaml:"a"`
	B float64 `yaml:"b"`
	C float64 `yaml:"c"`
	D float64 `yaml:"d"`
}

func (m Matrix) Mat2() plane.Mat2 {
	return plane.Mat2{A: m.A, B: m.B, C: m.C, D: m.D}
}

type Config struct {
	Matrix   Matrix  `yaml:"matrix"`
	Steps    int     `yaml:"steps"`
	StepSize float64 `yaml:"step_size"`
	Grid     int     `yaml:"grid"`
	Span     float64 `yaml:"span"`
	Width    int     `yaml:"width"`
	Height   int     `yaml:"height"`
	Theme    string  `yaml:"theme"`
}

func DefaultConfig() *Config {
	return &Config{
		Matrix:   Matrix{A: 0, B: -2, C: 2, D: 0},
		Steps:    DefaultSteps,
		StepSize: DefaultStepSize,
		Grid:     DefaultGrid,
		Span:     DefaultSpan,
		Width:    DefaultWidth,
		Height:   DefaultHeight,
		Theme:    "neon",
	}
}

// Load reads a yaml config file over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Steps < 0 {
		return fmt.Errorf("steps must be non-negative, got %d", c.Steps)
	}
	if c.StepSize <= 0 {
		return fmt.Errorf("step_size must be positive, got %f", c.StepSize)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("canvas size must be positive, got %dx%d", c.Width, c.Height)
	}
	return nil
}
