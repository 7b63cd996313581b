package options

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/toggley/internal/application/usecase"
	"github.com/bnema/toggley/internal/domain/entity"
	"github.com/bnema/toggley/internal/logging"
)

// Status lines shown after an action.
const (
	StatusSaved            = "Saved"
	StatusSaveFailed       = "Failed to apply preferences"
	StatusRestored         = "Defaults restored"
	StatusRestoreFailed    = "Failed to restore defaults"
	StatusScheduleSaved    = "Settings saved successfully!"
	StatusScheduleFailed   = "Failed to save settings."
	StatusLoadFailed       = "Failed to load preferences"
	StatusScheduleLoadFail = "Failed to load schedule"
)

// Backend persists preferences. *api.Client implements it.
type Backend interface {
	ListThemes(ctx context.Context) ([]entity.ThemeEntry, error)
	LoadPreferences(ctx context.Context) (entity.Preferences, error)
	SavePreferences(ctx context.Context, prefs entity.Preferences) (entity.Preferences, error)
	RestoreDefaults(ctx context.Context) (entity.Preferences, error)
	LoadSchedule(ctx context.Context) (entity.Schedule, error)
	SaveSchedule(ctx context.Context, schedule entity.Schedule) error
}

// StatusKind tells success and error lines apart.
type StatusKind int

const (
	StatusNone StatusKind = iota
	StatusSuccess
	StatusError
)

// Status is the line under the form.
type Status struct {
	Kind     StatusKind
	Text     string
	Messages []string
}

// Controller connects the forms to the backend.
type Controller struct {
	backend  Backend
	Form     *Form
	Schedule *ScheduleForm
	Status   Status
}

// NewController creates a controller over backend.
func NewController(backend Backend) *Controller {
	return &Controller{
		backend:  backend,
		Form:     NewForm(),
		Schedule: NewScheduleForm(entity.DefaultSchedule()),
	}
}

// Load reads themes and preferences into the form.
func (c *Controller) Load(ctx context.Context) error {
	themes, err := c.backend.ListThemes(ctx)
	if err != nil {
		c.fail(StatusLoadFailed)
		return fmt.Errorf("failed to list themes: %w", err)
	}
	prefs, err := c.backend.LoadPreferences(ctx)
	if err != nil {
		c.fail(StatusLoadFailed)
		return fmt.Errorf("failed to load preferences: %w", err)
	}
	c.Form.Load(themes, prefs)
	c.Revalidate()
	return nil
}

// Reset discards edits by reloading stored values.
func (c *Controller) Reset(ctx context.Context) error {
	return c.Load(ctx)
}

// Revalidate refreshes the status after an edit.
func (c *Controller) Revalidate() Validation {
	v := c.Form.Validate()
	if v.CanSave {
		if c.Status.Kind == StatusError && len(c.Status.Messages) > 0 {
			c.Status = Status{}
		}
		return v
	}
	c.Status = Status{Kind: StatusError, Messages: v.Messages}
	return v
}

// Save validates and persists the form. On backend failure the form is left
// as entered so saving again retries.
func (c *Controller) Save(ctx context.Context) error {
	prefs, v := c.Form.Submit()
	if !v.CanSave {
		c.Status = Status{Kind: StatusError, Messages: v.Messages}
		return &usecase.ValidationError{Messages: v.Messages}
	}

	saved, err := c.backend.SavePreferences(ctx, prefs)
	if err != nil {
		var verr *usecase.ValidationError
		if errors.As(err, &verr) {
			c.Status = Status{Kind: StatusError, Messages: verr.Messages}
			return err
		}
		logging.FromContext(ctx).Error().Err(err).Msg("saving preferences failed")
		c.fail(StatusSaveFailed)
		return err
	}

	if themes, err := c.backend.ListThemes(ctx); err == nil {
		c.Form.Load(themes, saved)
	} else {
		c.Form.Load(c.Form.Themes, saved)
	}
	c.Status = Status{Kind: StatusSuccess, Text: StatusSaved}
	return nil
}

// RestoreDefaults resets stored preferences and reloads the form.
func (c *Controller) RestoreDefaults(ctx context.Context) error {
	prefs, err := c.backend.RestoreDefaults(ctx)
	if err != nil {
		logging.FromContext(ctx).Error().Err(err).Msg("restoring defaults failed")
		c.fail(StatusRestoreFailed)
		return err
	}
	c.Form.Load(c.Form.Themes, prefs)
	c.Status = Status{Kind: StatusSuccess, Text: StatusRestored}
	return nil
}

// LoadSchedule reads the stored schedule into the schedule form.
func (c *Controller) LoadSchedule(ctx context.Context) error {
	s, err := c.backend.LoadSchedule(ctx)
	if err != nil {
		c.fail(StatusScheduleLoadFail)
		return fmt.Errorf("failed to load schedule: %w", err)
	}
	c.Schedule = NewScheduleForm(s)
	return nil
}

// SaveSchedule validates and persists the schedule form.
func (c *Controller) SaveSchedule(ctx context.Context) error {
	v := c.Schedule.Validate()
	if !v.CanSave {
		c.Status = Status{Kind: StatusError, Messages: v.Messages}
		return &usecase.ValidationError{Messages: v.Messages}
	}
	if err := c.backend.SaveSchedule(ctx, c.Schedule.Schedule()); err != nil {
		logging.FromContext(ctx).Error().Err(err).Msg("saving schedule failed")
		c.fail(StatusScheduleFailed)
		return err
	}
	c.Status = Status{Kind: StatusSuccess, Text: StatusScheduleSaved}
	return nil
}

func (c *Controller) fail(text string) {
	c.Status = Status{Kind: StatusError, Text: text}
}
