// Package icon renders the toolbar glyphs as SVG data URIs.
package icon

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"html/template"

	"github.com/bnema/toggley/internal/domain/entity"
)

// DataURIPrefix precedes the base64 SVG body in Icon.DataURI.
const DataURIPrefix = "data:image/svg+xml;base64,"

var glyphShapes = map[entity.Glyph]template.HTML{
	entity.GlyphSun: `<circle cx="12" cy="12" r="5"></circle>` +
		`<line x1="12" y1="1" x2="12" y2="3"></line>` +
		`<line x1="12" y1="21" x2="12" y2="23"></line>` +
		`<line x1="4.22" y1="4.22" x2="5.64" y2="5.64"></line>` +
		`<line x1="18.36" y1="18.36" x2="19.78" y2="19.78"></line>` +
		`<line x1="1" y1="12" x2="3" y2="12"></line>` +
		`<line x1="21" y1="12" x2="23" y2="12"></line>` +
		`<line x1="4.22" y1="19.78" x2="5.64" y2="18.36"></line>` +
		`<line x1="18.36" y1="5.64" x2="19.78" y2="4.22"></line>`,
	entity.GlyphMoon: `<path d="M21 12.79A9 9 0 1 1 11.21 3 7 7 0 0 0 21 12.79z"></path>`,
	entity.GlyphBolt: `<polygon points="13 2 3 14 12 14 11 22 21 10 12 10 13 2"></polygon>`,
}

var svgTemplate = template.Must(template.New("icon").Parse(
	`<svg xmlns="http://www.w3.org/2000/svg" width="{{.Size}}" height="{{.Size}}" viewBox="0 0 24 24" ` +
		`fill="none" stroke="{{.Stroke}}" stroke-width="2" stroke-linecap="round" stroke-linejoin="round" ` +
		`class="feather feather-{{.Class}}">{{.Shape}}</svg>`,
))

var glyphClasses = map[entity.Glyph]string{
	entity.GlyphSun:  "sun",
	entity.GlyphMoon: "moon",
	entity.GlyphBolt: "zap",
}

// Renderer implements port.IconRenderer.
type Renderer struct{}

// NewRenderer creates a renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render draws glyph stroked with the given CSS color at size pixels.
func (r *Renderer) Render(glyph entity.Glyph, stroke string, size int) (*entity.Icon, error) {
	shape, ok := glyphShapes[glyph]
	if !ok {
		return nil, fmt.Errorf("unknown glyph %q", glyph)
	}
	if size <= 0 {
		return nil, fmt.Errorf("icon size must be positive, got %d", size)
	}

	var buf bytes.Buffer
	err := svgTemplate.Execute(&buf, struct {
		Size   int
		Stroke string
		Class  string
		Shape  template.HTML
	}{size, stroke, glyphClasses[glyph], shape})
	if err != nil {
		return nil, fmt.Errorf("failed to render %s: %w", glyph, err)
	}

	svg := buf.String()
	return &entity.Icon{
		Glyph:   glyph,
		Color:   stroke,
		Size:    size,
		SVG:     svg,
		DataURI: DataURIPrefix + base64.StdEncoding.EncodeToString([]byte(svg)),
	}, nil
}
