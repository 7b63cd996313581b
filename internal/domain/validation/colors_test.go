package validation_test

import (
	"testing"

	"github.com/bnema/toggley/internal/domain/validation"
	"github.com/stretchr/testify/assert"
)

func TestIsCSSColor(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{"named", "rebeccapurple", true},
		{"named mixed case", "  CornflowerBlue ", true},
		{"transparent", "transparent", true},
		{"hex short", "#fff", true},
		{"hex short alpha", "#fffa", true},
		{"hex long", "#1a2B3c", true},
		{"hex long alpha", "#1a2b3c80", true},
		{"hex bad length", "#12345", false},
		{"hex bad digit", "#12345g", false},
		{"hex short bad digit", "#ggg", false},
		{"hex short alpha bad digit", "#abcz", false},
		{"hex long alpha upper", "#AABBCCDD", true},
		{"hex bad alpha digit", "#aabbccdz", false},
		{"hex seven digits", "#1234567", false},
		{"hex inner space", "#12 345", false},
		{"rgb legacy", "rgb(255, 0, 10)", true},
		{"rgba legacy", "rgba(255, 0, 10, 0.5)", true},
		{"rgb percent", "rgb(100%, 0%, 50%)", true},
		{"rgb space syntax", "rgb(255 0 10)", true},
		{"rgb space alpha", "rgb(255 0 10 / 50%)", true},
		{"rgb floats", "rgb(251.5, 251, 254)", true},
		{"rgb two args", "rgb(255, 0)", false},
		{"rgb mixed separators", "rgb(255, 0 10 / 1)", false},
		{"rgb word arg", "rgb(red, 0, 0)", false},
		{"hsl", "hsl(120, 100%, 50%)", true},
		{"hsl deg", "hsl(120deg 100% 50% / 0.3)", true},
		{"hsla turn", "hsla(0.5turn, 10%, 20%, 1)", true},
		{"hwb", "hwb(90 10% 20%)", true},
		{"hwb missing percent", "hwb(90 10 20)", false},
		{"empty", "", false},
		{"whitespace", "   ", false},
		{"unknown word", "notacolor", false},
		{"unknown function", "lab(50% 40 59)", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, validation.IsCSSColor(tt.value))
		})
	}
}

func TestIsHexColor(t *testing.T) {
	assert.True(t, validation.IsHexColor("#a0B1c2"))
	assert.True(t, validation.IsHexColor("#000000"))
	assert.True(t, validation.IsHexColor("#FFFFFF"))
	assert.False(t, validation.IsHexColor("#12345g"))
	assert.False(t, validation.IsHexColor("#1 2345"))
	assert.False(t, validation.IsHexColor("#abc"))
	assert.False(t, validation.IsHexColor("a0b1c2"))
}
