package entity_test

import (
	"testing"
	"time"

	"github.com/bnema/toggley/internal/domain/entity"
	"github.com/bnema/toggley/internal/domain/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clock(t *testing.T, s string) int {
	t.Helper()
	m, err := validation.ParseClock(s)
	require.NoError(t, err)
	return m
}

func TestSchedule_ModeAt_DaytimeWindow(t *testing.T) {
	s := entity.DefaultSchedule()

	tests := []struct {
		now  string
		want entity.Mode
	}{
		{"05:59", entity.ModeDark},
		{"06:00", entity.ModeLight},
		{"07:00", entity.ModeLight},
		{"12:00", entity.ModeLight},
		{"17:59", entity.ModeLight},
		{"18:00", entity.ModeDark},
		{"23:30", entity.ModeDark},
		{"23:59", entity.ModeDark},
		{"00:00", entity.ModeDark},
	}

	for _, tt := range tests {
		t.Run(tt.now, func(t *testing.T) {
			got, err := s.ModeAt(clock(t, tt.now))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSchedule_ModeAt_WrapsMidnight(t *testing.T) {
	s := entity.Schedule{Light: "20:00", Dark: "04:00"}

	tests := []struct {
		now  string
		want entity.Mode
	}{
		{"21:00", entity.ModeLight},
		{"02:00", entity.ModeLight},
		{"20:00", entity.ModeLight},
		{"04:00", entity.ModeDark},
		{"12:00", entity.ModeDark},
	}

	for _, tt := range tests {
		t.Run(tt.now, func(t *testing.T) {
			got, err := s.ModeAt(clock(t, tt.now))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSchedule_ModeAt_LateNightLight(t *testing.T) {
	s := entity.Schedule{Light: "22:00", Dark: "05:00"}

	tests := []struct {
		now  string
		want entity.Mode
	}{
		{"23:00", entity.ModeLight},
		// Still inside the light window: it runs until 05:00.
		{"04:00", entity.ModeLight},
		{"05:00", entity.ModeDark},
		{"06:00", entity.ModeDark},
		{"21:59", entity.ModeDark},
	}

	for _, tt := range tests {
		t.Run(tt.now, func(t *testing.T) {
			got, err := s.ModeAt(clock(t, tt.now))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestModeForWindow_Total(t *testing.T) {
	pairs := [][2]string{{"06:00", "18:00"}, {"20:00", "04:00"}, {"00:00", "23:59"}, {"23:59", "00:00"}}
	for _, p := range pairs {
		light, dark := clock(t, p[0]), clock(t, p[1])
		lightCount := 0
		for now := 0; now < 24*60; now++ {
			m := entity.ModeForWindow(light, dark, now)
			require.Contains(t, []entity.Mode{entity.ModeLight, entity.ModeDark}, m)
			if m == entity.ModeLight {
				lightCount++
			}
		}
		want := dark - light
		if light > dark {
			want = 24*60 - light + dark
		}
		assert.Equal(t, want, lightCount, "light window length for %v", p)
	}
}

func TestSchedule_Validate(t *testing.T) {
	assert.NoError(t, entity.DefaultSchedule().Validate())
	assert.ErrorIs(t, entity.Schedule{Light: "", Dark: "18:00"}.Validate(), entity.ErrScheduleIncomplete)
	assert.ErrorIs(t, entity.Schedule{Light: "08:00", Dark: "08:00"}.Validate(), entity.ErrScheduleSameTime)
	assert.ErrorIs(t, entity.Schedule{Light: "25:00", Dark: "08:00"}.Validate(), validation.ErrInvalidClock)

	_, err := entity.Schedule{Light: "08:00", Dark: "08:00"}.ModeAt(0)
	assert.ErrorIs(t, err, entity.ErrScheduleSameTime)
}

func TestSchedule_ModeAtTime(t *testing.T) {
	s := entity.DefaultSchedule()
	at := time.Date(2026, 3, 1, 7, 30, 0, 0, time.Local)

	got, err := s.ModeAtTime(at)
	require.NoError(t, err)
	assert.Equal(t, entity.ModeLight, got)
}

func TestScheduleFromValue(t *testing.T) {
	assert.Equal(t, entity.DefaultSchedule(), entity.ScheduleFromValue(nil))
	assert.Equal(t,
		entity.Schedule{Light: "07:15", Dark: "18:00"},
		entity.ScheduleFromValue(map[string]any{"light": "07:15"}),
	)

	s := entity.Schedule{Light: "05:00", Dark: "21:30"}
	assert.Equal(t, s, entity.ScheduleFromValue(s.ToMap()))
}
