package config

import (
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// Config is the fully resolved run configuration. It is built once by
// Resolve and never mutated; zero-valued Cols and cell dimensions still
// mean "auto" and are resolved into concrete numbers by the layout planner,
// which needs the probed image sizes to do so.
type Config struct {
	Folder      string
	Output      string
	Cols        int
	CellWidth   int
	CellHeight  int
	Padding     int
	Background  color.NRGBA
	JPEGQuality int
}

// Flags carries the raw CLI surface before env and defaults-file resolution.
type Flags struct {
	Output     string
	Cols       int
	CellWidth  int
	CellHeight int
	Padding    int
	Background string
	Quality    int
}

// Resolve merges flags, IMAGEGRID_* environment variables and the optional
// defaults file into a validated Config. Precedence: explicit flag > env >
// defaults file > built-in default. changed reports whether a flag was given
// explicitly on the command line.
func Resolve(folder string, f Flags, changed func(name string) bool) (Config, error) {
	d, err := LoadDefaults(folder)
	if err != nil {
		return Config{}, err
	}

	if !changed("output") {
		if v := os.Getenv("IMAGEGRID_OUTPUT"); v != "" {
			f.Output = v
		} else if d.Output != "" {
			f.Output = d.Output
		}
	}
	if !changed("cols") && d.Cols > 0 {
		f.Cols = d.Cols
	}
	if !changed("cell-width") && d.CellWidth > 0 {
		f.CellWidth = d.CellWidth
	}
	if !changed("cell-height") && d.CellHeight > 0 {
		f.CellHeight = d.CellHeight
	}
	if !changed("padding") {
		if v, ok, err := envInt("IMAGEGRID_PADDING"); err != nil {
			return Config{}, err
		} else if ok {
			f.Padding = v
		} else if d.Padding != nil {
			f.Padding = *d.Padding
		}
	}
	if !changed("bg") {
		if v := os.Getenv("IMAGEGRID_BG"); v != "" {
			f.Background = v
		} else if d.Background != "" {
			f.Background = d.Background
		}
	}
	if !changed("quality") {
		if v, ok, err := envInt("IMAGEGRID_QUALITY"); err != nil {
			return Config{}, err
		} else if ok {
			f.Quality = v
		} else if d.Quality != nil {
			f.Quality = *d.Quality
		}
	}

	if f.Output == "" {
		return Config{}, fmt.Errorf("output path must not be empty")
	}
	if f.Padding < 0 {
		return Config{}, fmt.Errorf("padding must be >= 0, got %d", f.Padding)
	}
	if f.Quality < 1 || f.Quality > 100 {
		return Config{}, fmt.Errorf("quality must be between 1 and 100, got %d", f.Quality)
	}

	bg, err := ParseColor(f.Background)
	if err != nil {
		return Config{}, err
	}

	return Config{
		Folder:      folder,
		Output:      f.Output,
		Cols:        f.Cols,
		CellWidth:   f.CellWidth,
		CellHeight:  f.CellHeight,
		Padding:     f.Padding,
		Background:  bg,
		JPEGQuality: f.Quality,
	}, nil
}

// ParseColor accepts #rgb / #rrggbb hex and SVG 1.1 color names. The result
// is always fully opaque.
func ParseColor(s string) (color.NRGBA, error) {
	spec := strings.ToLower(strings.TrimSpace(s))

	if c, ok := colornames.Map[spec]; ok {
		return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0xff}, nil
	}

	if strings.HasPrefix(spec, "#") {
		c, err := colorful.Hex(spec)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("invalid background color %q: %w", s, err)
		}
		r, g, b := c.RGB255()
		return color.NRGBA{R: r, G: g, B: b, A: 0xff}, nil
	}

	return color.NRGBA{}, fmt.Errorf("invalid background color %q (expected #rrggbb or a named color)", s)
}

func envInt(name string) (int, bool, error) {
	v := os.Getenv(name)
	if v == "" {
		return 0, false, nil
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false, fmt.Errorf("invalid %s: %q", name, v)
	}
	return n, true, nil
}
