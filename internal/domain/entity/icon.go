package entity

// Fallback stroke colors used when neither an override nor the theme
// palette provides one.
const (
	FallbackIconColorDark  = "rgb(251,251,254)"
	FallbackIconColorLight = "rgb(91,91,102)"
)

// DefaultIconSize is the pixel size of the rendered SVG.
const DefaultIconSize = 96

// Icon is a rendered toolbar icon.
type Icon struct {
	Mode    Mode   `json:"mode"`
	Glyph   Glyph  `json:"glyph"`
	Color   string `json:"color"`
	Size    int    `json:"size"`
	SVG     string `json:"svg"`
	DataURI string `json:"dataUri"`
}

// ResolveIconColor picks the stroke color for the icon.
// Order: override, palette icons, palette toolbar_text, ambient fallback.
func ResolveIconColor(override string, colors ThemeColors, prefersDark bool) string {
	if override != "" {
		return override
	}
	if c, ok := colors.Icons.Normalize(); ok {
		return c
	}
	if c, ok := colors.ToolbarText.Normalize(); ok {
		return c
	}
	if prefersDark {
		return FallbackIconColorDark
	}
	return FallbackIconColorLight
}
