package options

import (
	"errors"
	"strings"

	"github.com/bnema/toggley/internal/domain/entity"
	"github.com/bnema/toggley/internal/domain/validation"
)

// Messages shown by the schedule page.
const (
	MsgScheduleIncomplete = "Please select both light and dark theme times."
	MsgScheduleSameTime   = "Light and dark times cannot be the same."
	MsgScheduleBadClock   = "Times must use the 24-hour HH:MM format."
)

// ScheduleForm is the schedule page state.
type ScheduleForm struct {
	Light string
	Dark  string
}

// NewScheduleForm creates a form showing s.
func NewScheduleForm(s entity.Schedule) *ScheduleForm {
	return &ScheduleForm{Light: s.Light, Dark: s.Dark}
}

// Schedule returns the trimmed form content.
func (f *ScheduleForm) Schedule() entity.Schedule {
	return entity.Schedule{
		Light: strings.TrimSpace(f.Light),
		Dark:  strings.TrimSpace(f.Dark),
	}
}

// Validate maps schedule errors onto page messages.
func (f *ScheduleForm) Validate() Validation {
	err := f.Schedule().Validate()
	switch {
	case err == nil:
		return Validation{CanSave: true}
	case errors.Is(err, entity.ErrScheduleIncomplete):
		return Validation{Messages: []string{MsgScheduleIncomplete}}
	case errors.Is(err, entity.ErrScheduleSameTime):
		return Validation{Messages: []string{MsgScheduleSameTime}}
	case errors.Is(err, validation.ErrInvalidClock):
		return Validation{Messages: []string{MsgScheduleBadClock}}
	default:
		return Validation{Messages: []string{err.Error()}}
	}
}
