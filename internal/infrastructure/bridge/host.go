package bridge

import (
	"context"
	"fmt"

	"github.com/bnema/toggley/internal/application/port"
	"github.com/bnema/toggley/internal/domain/entity"
)

// Host implements the browser surfaces the daemon drives: the toolbar
// icon, the context menu, tabs and the content color-scheme override.
type Host struct {
	server *Server
}

// NewHost creates a host adapter backed by server.
func NewHost(server *Server) *Host {
	return &Host{server: server}
}

// SetIcon implements port.IconSurface.
func (h *Host) SetIcon(ctx context.Context, icon *entity.Icon) error {
	if icon == nil || icon.DataURI == "" {
		return fmt.Errorf("icon has no image data")
	}
	return h.server.Call(ctx, MethodActionSetIcon, setIconParams{Path: icon.DataURI}, nil)
}

// UpdateMenu implements port.MenuSurface. Hosts without menus are skipped.
func (h *Host) UpdateMenu(ctx context.Context, state entity.MenuState) error {
	if !h.server.HasCapability(port.CapabilityMenus) {
		if h.server.Connected() {
			h.server.warnOnce(ctx, port.CapabilityMenus)
		}
		return nil
	}
	return h.server.Call(ctx, MethodMenusUpdate, menusUpdateParams{Items: []menuItemState{
		{ID: string(entity.MenuUseSystemTheme), Checked: state.SystemChecked},
		{ID: string(entity.MenuUseScheduledTheme), Checked: state.ScheduledChecked},
	}}, nil)
}

// OpenPage implements port.PageOpener.
func (h *Host) OpenPage(ctx context.Context, url string) error {
	return h.server.Call(ctx, MethodTabsCreate, tabsCreateParams{URL: url}, nil)
}

// SupportsColorSchemeOverride implements port.ColorSchemeOverride.
func (h *Host) SupportsColorSchemeOverride() bool {
	return h.server.HasCapability(port.CapabilityColorSchemeOverride)
}

// SetContentColorScheme implements port.ColorSchemeOverride.
// scheme is "light", "dark" or "auto".
func (h *Host) SetContentColorScheme(ctx context.Context, scheme string) error {
	return h.server.Call(ctx, MethodBrowserSetColorScheme, colorSchemeParams{Value: scheme}, nil)
}
