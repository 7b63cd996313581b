package entity_test

import (
	"testing"

	"github.com/bnema/toggley/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMode(t *testing.T) {
	for _, s := range []string{"light", "dark", "system", " Dark "} {
		m, err := entity.ParseMode(s)
		require.NoError(t, err, s)
		assert.True(t, m.IsValid())
	}

	_, err := entity.ParseMode("sepia")
	assert.ErrorIs(t, err, entity.ErrInvalidMode)
}

func TestMode_Toggled(t *testing.T) {
	tests := []struct {
		name        string
		mode        entity.Mode
		ambientDark bool
		want        entity.Mode
	}{
		{"light to dark", entity.ModeLight, false, entity.ModeDark},
		{"dark to light", entity.ModeDark, true, entity.ModeLight},
		{"system while desktop dark", entity.ModeSystem, true, entity.ModeLight},
		{"system while desktop light", entity.ModeSystem, false, entity.ModeDark},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.mode.Toggled(tt.ambientDark))
		})
	}
}

func TestMode_ToggleAlternates(t *testing.T) {
	m := entity.ModeLight
	for i := 0; i < 6; i++ {
		next := m.Toggled(false)
		assert.NotEqual(t, m, next)
		assert.NotEqual(t, entity.ModeSystem, next)
		m = next
	}
	assert.Equal(t, entity.ModeLight, m)
}

func TestMode_ColorScheme(t *testing.T) {
	assert.Equal(t, "light", entity.ModeLight.ColorScheme())
	assert.Equal(t, "dark", entity.ModeDark.ColorScheme())
	assert.Equal(t, "auto", entity.ModeSystem.ColorScheme())
}
