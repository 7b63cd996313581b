package validation_test

import (
	"testing"

	"github.com/bnema/toggley/internal/domain/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		value   string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"06:00", 360, false},
		{"18:30", 1110, false},
		{"23:59", 1439, false},
		{"7:05", 425, false},
		{"24:00", 0, true},
		{"12:60", 0, true},
		{"12:5", 0, true},
		{"noon", 0, true},
		{"", 0, true},
		{"12:00:00", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			got, err := validation.ParseClock(tt.value)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, validation.ErrInvalidClock)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatClock_RoundTrip(t *testing.T) {
	for minutes := 0; minutes < 24*60; minutes += 7 {
		parsed, err := validation.ParseClock(validation.FormatClock(minutes))
		require.NoError(t, err)
		assert.Equal(t, minutes, parsed)
	}
	assert.Equal(t, "00:10", validation.FormatClock(24*60+10))
}
