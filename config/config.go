// Package config loads chart settings from a YAML file.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"time"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/rkjdid/termchart/frame"
	"github.com/rkjdid/termchart/funcs"
	"github.com/rkjdid/termchart/interval"
	"gopkg.in/yaml.v3"
)

// Config holds everything needed to render charts. Width and Height set to
// 0 mean "size of the terminal".
type Config struct {
	Func       string  `yaml:"func" validate:"required,funcname"`
	X          string  `yaml:"x" validate:"required,interval"`
	Width      uint    `yaml:"width" validate:"lte=1024"`
	Height     uint    `yaml:"height" validate:"lte=1024"`
	Origin     float64 `yaml:"origin" validate:"finite"`
	CellAspect float64 `yaml:"cell_aspect" validate:"gt=0,finite"`
	Mark       string  `yaml:"mark" validate:"required,glyph"`
	Axes       bool    `yaml:"axes"`
	Buffered   bool    `yaml:"buffered"`
	Demo       Demo    `yaml:"demo"`
	Export     Export  `yaml:"export"`
}

type Demo struct {
	Funcs []string      `yaml:"funcs" validate:"min=1,dive,funcname"`
	Pause time.Duration `yaml:"pause" validate:"gte=0"`
	Loop  bool          `yaml:"loop"`
}

type Export struct {
	WidthInches  float64 `yaml:"width_inches" validate:"gt=0"`
	HeightInches float64 `yaml:"height_inches" validate:"gte=0"`
	Grid         bool    `yaml:"grid"`
}

func Default() Config {
	return Config{
		Func:       "sin",
		X:          "-6:6",
		Width:      100,
		Height:     40,
		CellAspect: 2,
		Mark:       "*",
		Demo: Demo{
			Funcs: []string{"sin", "cos", "sinc", "gauss"},
			Pause: time.Second,
		},
		Export: Export{
			WidthInches: 8,
		},
	}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("funcname", func(fl validator.FieldLevel) bool {
		_, err := funcs.Lookup(fl.Field().String())
		return err == nil
	})
	_ = v.RegisterValidation("interval", func(fl validator.FieldLevel) bool {
		_, err := interval.Parse(fl.Field().String())
		return err == nil
	})
	_ = v.RegisterValidation("finite", func(fl validator.FieldLevel) bool {
		f := fl.Field().Float()
		return !math.IsNaN(f) && !math.IsInf(f, 0)
	})
	_ = v.RegisterValidation("glyph", func(fl validator.FieldLevel) bool {
		return utf8.RuneCountInString(fl.Field().String()) == 1
	})
	return v
}

// Load reads the YAML file at path over Default(). An empty path returns
// the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read the config file: %w", err)
	}
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if err = cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks field constraints. Frame size limits are repeated from the
// frame package so a bad file is reported before anything is drawn.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		msgs := make([]error, 0, len(verrs))
		for _, fe := range verrs {
			msgs = append(msgs, fmt.Errorf("%s: failed %q (value %v)", fe.Namespace(), fe.Tag(), fe.Value()))
		}
		return fmt.Errorf("invalid config: %w", errors.Join(msgs...))
	}
	return err
}

// Interval parses the X field.
func (c Config) Interval() (interval.Interval, error) {
	return interval.Parse(c.X)
}

// Size returns the chart size, filling 0 dimensions from the terminal size
// (tw, th) capped to the frame limits. One line is kept free below the
// chart for the prompt. Explicit dimensions are returned as is.
func (c Config) Size(tw, th int) (w, h uint) {
	w, h = c.Width, c.Height
	if w == 0 && tw > 0 {
		w = min(uint(tw), frame.MaxWidth)
	}
	if h == 0 && th > 1 {
		h = min(uint(th-1), frame.MaxHeight)
	}
	return w, h
}
