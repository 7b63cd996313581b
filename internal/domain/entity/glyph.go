package entity

import (
	"fmt"
	"strings"
)

// Glyph names one of the toolbar icon shapes.
type Glyph string

const (
	GlyphSun  Glyph = "sun"
	GlyphMoon Glyph = "moon"
	GlyphBolt Glyph = "bolt"
)

// ParseGlyph validates a glyph name.
func ParseGlyph(s string) (Glyph, error) {
	g := Glyph(strings.ToLower(strings.TrimSpace(s)))
	switch g {
	case GlyphSun, GlyphMoon, GlyphBolt:
		return g, nil
	}
	return "", fmt.Errorf("unknown glyph %q (want sun, moon or bolt)", s)
}

// GlyphMapping decides which glyph the icon shows for each mode.
type GlyphMapping struct {
	Light  Glyph
	Dark   Glyph
	System Glyph
}

// DefaultGlyphMapping shows the glyph of the mode a click leads to:
// the moon while light is active and the sun while dark is active.
func DefaultGlyphMapping() GlyphMapping {
	return GlyphMapping{
		Light:  GlyphMoon,
		Dark:   GlyphSun,
		System: GlyphBolt,
	}
}

// For returns the glyph configured for mode.
func (g GlyphMapping) For(mode Mode) Glyph {
	switch mode {
	case ModeDark:
		return g.Dark
	case ModeSystem:
		return g.System
	default:
		return g.Light
	}
}
