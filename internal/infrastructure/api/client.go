package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/bnema/toggley/internal/application/usecase"
	"github.com/bnema/toggley/internal/domain/entity"
)

// Error is a non-2xx reply from the daemon.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("daemon returned %d: %s", e.StatusCode, e.Message)
}

// Client talks to a running daemon. It implements Backend.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a client for the daemon listening on addr
// ("127.0.0.1:7878" or a full URL).
func NewClient(addr string) *Client {
	base := addr
	if !strings.HasPrefix(base, "http://") && !strings.HasPrefix(base, "https://") {
		base = "http://" + base
	}
	return &Client{
		baseURL: strings.TrimRight(base, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// Health reports whether the daemon answers.
func (c *Client) Health(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/api/health", nil, nil)
}

// Status implements Backend.
func (c *Client) Status(ctx context.Context) (*entity.Status, error) {
	var status entity.Status
	if err := c.do(ctx, http.MethodGet, "/api/status", nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// ListThemes implements Backend.
func (c *Client) ListThemes(ctx context.Context) ([]entity.ThemeEntry, error) {
	var themes []entity.ThemeEntry
	if err := c.do(ctx, http.MethodGet, "/api/themes", nil, &themes); err != nil {
		return nil, err
	}
	return themes, nil
}

// LoadPreferences implements Backend.
func (c *Client) LoadPreferences(ctx context.Context) (entity.Preferences, error) {
	var prefs entity.Preferences
	err := c.do(ctx, http.MethodGet, "/api/preferences", nil, &prefs)
	return prefs, err
}

// SavePreferences implements Backend.
func (c *Client) SavePreferences(ctx context.Context, prefs entity.Preferences) (entity.Preferences, error) {
	var saved entity.Preferences
	err := c.do(ctx, http.MethodPut, "/api/preferences", prefs, &saved)
	return saved, err
}

// RestoreDefaults implements Backend.
func (c *Client) RestoreDefaults(ctx context.Context) (entity.Preferences, error) {
	var prefs entity.Preferences
	err := c.do(ctx, http.MethodPost, "/api/preferences/defaults", nil, &prefs)
	return prefs, err
}

// LoadSchedule implements Backend.
func (c *Client) LoadSchedule(ctx context.Context) (entity.Schedule, error) {
	var schedule entity.Schedule
	err := c.do(ctx, http.MethodGet, "/api/schedule", nil, &schedule)
	return schedule, err
}

// SaveSchedule implements Backend.
func (c *Client) SaveSchedule(ctx context.Context, schedule entity.Schedule) error {
	return c.do(ctx, http.MethodPut, "/api/schedule", schedule, nil)
}

// Toggle implements Backend.
func (c *Client) Toggle(ctx context.Context) (*usecase.SwitchResult, error) {
	var result usecase.SwitchResult
	if err := c.do(ctx, http.MethodPost, "/api/toggle", nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ClickMenu implements Backend.
func (c *Client) ClickMenu(ctx context.Context, item entity.MenuItem, checked bool) (entity.MenuState, error) {
	var state entity.MenuState
	path := "/api/menu/" + url.PathEscape(string(item)) + "?checked=" + strconv.FormatBool(checked)
	err := c.do(ctx, http.MethodPost, path, nil, &state)
	return state, err
}

// Icon implements Backend.
func (c *Client) Icon(ctx context.Context) (*entity.Icon, error) {
	var icon entity.Icon
	if err := c.do(ctx, http.MethodGet, "/api/icon?format=json", nil, &icon); err != nil {
		return nil, err
	}
	return &icon, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach daemon at %s: %w", c.baseURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		var er ErrorResponse
		_ = json.NewDecoder(resp.Body).Decode(&er)
		if resp.StatusCode == http.StatusUnprocessableEntity && len(er.Messages) > 0 {
			return &usecase.ValidationError{Messages: er.Messages}
		}
		if er.Error == "" {
			er.Error = http.StatusText(resp.StatusCode)
		}
		return &Error{StatusCode: resp.StatusCode, Message: er.Error}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
