// Package config loads the command-line defaults from a TOML file.
//
// Every key is optional; missing keys keep the values from Default. Unknown
// keys are rejected so a typo does not silently fall back to a default.
package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/ByLCY/flexgeo/geometry"
	"github.com/ByLCY/flexgeo/renderer"
	"github.com/ByLCY/flexgeo/style"
)

// Config mirrors the TOML file layout.
type Config struct {
	Viewport Viewport `toml:"viewport"`
	DPI      float64  `toml:"dpi"`
	Output   Output   `toml:"output"`
	Layout   Layout   `toml:"layout"`
	Log      Log      `toml:"log"`
}

// Viewport is used when a document's view declares no size. Values are
// lengths such as "800px" or "210mm"; empty or "auto" sizes the root from
// its content.
type Viewport struct {
	Width  string `toml:"width"`
	Height string `toml:"height"`
}

type Output struct {
	Format string `toml:"format"`
	Dir    string `toml:"dir"`
}

type Layout struct {
	// Parallelism bounds concurrent subtree resolution; 0 uses GOMAXPROCS.
	Parallelism int `toml:"parallelism"`
}

type Log struct {
	Level string `toml:"level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Viewport: Viewport{Width: "800px", Height: "600px"},
		DPI:      style.PxPerInch,
		Output:   Output{Format: string(renderer.FormatPDF), Dir: "."},
		Log:      Log{Level: "info"},
	}
}

// Load reads path on top of Default and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("读取配置 %s 失败: %w", path, err)
	}
	return cfg, finish(cfg, md, path)
}

// Parse decodes TOML text on top of Default and validates the result.
func Parse(text string) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(text, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("解析配置失败: %w", err)
	}
	return cfg, finish(cfg, md, "")
}

func finish(cfg Config, md toml.MetaData, source string) error {
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		if source == "" {
			return fmt.Errorf("未知配置项: %s", strings.Join(keys, ", "))
		}
		return fmt.Errorf("%s: 未知配置项: %s", source, strings.Join(keys, ", "))
	}
	return cfg.Validate()
}

// Validate reports every invalid value at once.
func (c Config) Validate() error {
	var errs []error
	if _, err := c.ViewportSize(); err != nil {
		errs = append(errs, err)
	}
	if c.DPI <= 0 {
		errs = append(errs, fmt.Errorf("dpi 必须为正数，得到 %g", c.DPI))
	}
	if _, err := c.Format(); err != nil {
		errs = append(errs, err)
	}
	if c.Layout.Parallelism < 0 {
		errs = append(errs, fmt.Errorf("layout.parallelism 不能为负数，得到 %d", c.Layout.Parallelism))
	}
	if _, err := c.LogLevel(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// ViewportSize resolves the configured viewport to pixels; blank or auto
// axes stay undefined.
func (c Config) ViewportSize() (geometry.AxisSize[geometry.Number], error) {
	width, err := viewportAxis("viewport.width", c.Viewport.Width)
	if err != nil {
		return geometry.AxisSize[geometry.Number]{}, err
	}
	height, err := viewportAxis("viewport.height", c.Viewport.Height)
	if err != nil {
		return geometry.AxisSize[geometry.Number]{}, err
	}
	return geometry.Sized(width, height), nil
}

func viewportAxis(key, value string) (geometry.Number, error) {
	if strings.TrimSpace(value) == "" {
		return geometry.Undefined(), nil
	}
	l, err := style.ParseLength(value)
	if err != nil {
		return geometry.Undefined(), fmt.Errorf("%s: %w", key, err)
	}
	if l.Unit == style.UnitPercent {
		return geometry.Undefined(), fmt.Errorf("%s: 不能使用百分比", key)
	}
	return l.Resolve(geometry.Undefined()), nil
}

// Format returns the configured output format.
func (c Config) Format() (renderer.Format, error) {
	return renderer.ParseFormat(c.Output.Format)
}

// LogLevel returns the configured log level.
func (c Config) LogLevel() (log.Level, error) {
	level, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel, fmt.Errorf("log.level: %w", err)
	}
	return level, nil
}
