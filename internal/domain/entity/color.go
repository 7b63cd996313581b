package entity

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ColorValue is a palette color as the host reports it: either a CSS
// string or a numeric RGB triple.
type ColorValue struct {
	CSS string
	RGB []float64
}

// CSSColor wraps a CSS color string.
func CSSColor(s string) *ColorValue {
	return &ColorValue{CSS: s}
}

// RGBColor wraps a numeric triple.
func RGBColor(r, g, b float64) *ColorValue {
	return &ColorValue{RGB: []float64{r, g, b}}
}

// UnmarshalJSON accepts "css string" or [r, g, b].
func (c *ColorValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*c = ColorValue{}
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*c = ColorValue{CSS: s}
		return nil
	}
	var triple []float64
	if err := json.Unmarshal(data, &triple); err != nil {
		return fmt.Errorf("color must be a string or a numeric triple: %w", err)
	}
	*c = ColorValue{RGB: triple}
	return nil
}

// MarshalJSON writes the value back in the form it was read.
func (c ColorValue) MarshalJSON() ([]byte, error) {
	if c.RGB != nil {
		return json.Marshal(c.RGB)
	}
	return json.Marshal(c.CSS)
}

// Normalize converts c into a CSS color string.
// ok is false for an empty string or a malformed triple.
func (c *ColorValue) Normalize() (string, bool) {
	if c == nil {
		return "", false
	}
	if c.RGB != nil {
		if len(c.RGB) != 3 {
			return "", false
		}
		return NormalizeTriple(c.RGB[0], c.RGB[1], c.RGB[2])
	}
	s := strings.TrimSpace(c.CSS)
	return s, s != ""
}

// NormalizeTriple formats a numeric color as "rgb(r, g, b)".
// Triples with every channel in [0,1] are treated as normalized floats
// and scaled by 255. Channels are clamped to [0,255] and rounded.
func NormalizeTriple(r, g, b float64) (string, bool) {
	channels := []float64{r, g, b}
	for _, v := range channels {
		if math.IsNaN(v) {
			return "", false
		}
	}

	scale := 1.0
	if inUnitRange(channels) {
		scale = 255
	}

	out := make([]int, len(channels))
	for i, v := range channels {
		out[i] = int(math.Round(clampChannel(v * scale)))
	}
	return fmt.Sprintf("rgb(%d, %d, %d)", out[0], out[1], out[2]), true
}

// ParseRGB parses the "rgb(r, g, b)" form produced by NormalizeTriple.
func ParseRGB(s string) (r, g, b int, ok bool) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "rgb(") || !strings.HasSuffix(s, ")") {
		return 0, 0, 0, false
	}
	parts := strings.Split(s[len("rgb("):len(s)-1], ",")
	if len(parts) != 3 {
		return 0, 0, 0, false
	}
	vals := make([]int, 3)
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || v < 0 || v > 255 {
			return 0, 0, 0, false
		}
		vals[i] = v
	}
	return vals[0], vals[1], vals[2], true
}

func inUnitRange(channels []float64) bool {
	for _, v := range channels {
		if v < 0 || v > 1 {
			return false
		}
	}
	return true
}

func clampChannel(v float64) float64 {
	return math.Max(0, math.Min(255, v))
}
