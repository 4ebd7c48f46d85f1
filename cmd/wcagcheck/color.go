package main

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"

	"github.com/gogpu/wcag"
)

// colorArg is a command-line color: either an "r,g,b" triple of channel
// intensities in [0,1] or an SVG 1.1 color keyword such as "navy".
type colorArg struct {
	wcag.Color
	text string
}

// UnmarshalText implements encoding.TextUnmarshaler, which kong uses to
// decode positional arguments.
func (a *colorArg) UnmarshalText(b []byte) error {
	s := strings.TrimSpace(string(b))
	a.text = s

	if strings.Contains(s, ",") {
		parts := strings.Split(s, ",")
		if len(parts) != 3 {
			return fmt.Errorf("color %q: want three comma-separated channels", s)
		}
		var ch [3]float64
		for i, p := range parts {
			v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
			if err != nil {
				return fmt.Errorf("color %q: %w", s, err)
			}
			ch[i] = v
		}
		c, err := wcag.NewColor(ch[0], ch[1], ch[2])
		if err != nil {
			return fmt.Errorf("color %q: %w", s, err)
		}
		a.Color = c
		return nil
	}

	named, ok := colornames.Map[strings.ToLower(s)]
	if !ok {
		return fmt.Errorf("color %q: not an r,g,b triple or a known color name", s)
	}
	a.Color = wcag.FromColor(named)
	return nil
}

func (a colorArg) String() string {
	return a.text
}
