// Package bridge connects the daemon to the browser-side shim over a
// loopback WebSocket and exposes the browser's capabilities as ports.
package bridge

import (
	"encoding/json"
	"fmt"
)

// Frame types.
const (
	FrameHello    = "hello"
	FrameRequest  = "request"
	FrameResponse = "response"
	FrameEvent    = "event"
)

// Methods the shim implements.
const (
	MethodManagementGetAll      = "management.getAll"
	MethodManagementSetEnabled  = "management.setEnabled"
	MethodThemeGetCurrent       = "theme.getCurrent"
	MethodActionSetIcon         = "action.setIcon"
	MethodMenusUpdate           = "menus.update"
	MethodTabsCreate            = "tabs.create"
	MethodBrowserSetColorScheme = "browserSettings.setColorScheme"
)

// Events the shim forwards.
const (
	EventActionClicked      = "action.clicked"
	EventMenusClicked       = "menus.clicked"
	EventThemeUpdated       = "theme.updated"
	EventColorSchemeChanged = "colorscheme.changed"
)

// Frame is the single envelope used in both directions.
type Frame struct {
	Type    string          `json:"type"`
	ID      string          `json:"id,omitempty"`
	Method  string          `json:"method,omitempty"`
	Params  json.RawMessage `json:"params,omitempty"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   string          `json:"error,omitempty"`
	Event   string          `json:"event,omitempty"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Hello is the payload of the first frame sent by the shim.
type Hello struct {
	Capabilities []string `json:"capabilities"`
	PrefersDark  *bool    `json:"prefersDark,omitempty"`
	UserAgent    string   `json:"userAgent,omitempty"`
}

// ColorSchemeChanged is the payload of a colorscheme.changed event.
type ColorSchemeChanged struct {
	PrefersDark bool `json:"prefersDark"`
}

// MenuClicked is the payload of a menus.clicked event.
type MenuClicked struct {
	Item    string `json:"item"`
	Checked bool   `json:"checked"`
}

// RemoteError is an error reported by the shim for a request.
type RemoteError struct {
	Method  string
	Message string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("%s: %s", e.Method, e.Message)
}

type setEnabledParams struct {
	ID      string `json:"id"`
	Enabled bool   `json:"enabled"`
}

type setIconParams struct {
	Path string `json:"path"`
}

type menuItemState struct {
	ID      string `json:"id"`
	Checked bool   `json:"checked"`
}

type menusUpdateParams struct {
	Items []menuItemState `json:"items"`
}

type tabsCreateParams struct {
	URL string `json:"url"`
}

type colorSchemeParams struct {
	Value string `json:"value"`
}

type currentTheme struct {
	Colors json.RawMessage `json:"colors"`
}
