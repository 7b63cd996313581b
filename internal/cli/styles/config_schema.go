package styles

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/toggley/internal/domain/entity"
)

// ConfigSchemaRenderer renders the list of configuration keys.
type ConfigSchemaRenderer struct {
	theme *Theme
}

// NewConfigSchemaRenderer creates a new ConfigSchemaRenderer.
func NewConfigSchemaRenderer(theme *Theme) *ConfigSchemaRenderer {
	return &ConfigSchemaRenderer{theme: theme}
}

// Render groups keys by section, in the order sections first appear.
func (r *ConfigSchemaRenderer) Render(keys []entity.ConfigKeyInfo) string {
	if len(keys) == 0 {
		return r.theme.Subtle.Render("No configuration keys found")
	}

	var order []string
	sections := make(map[string][]entity.ConfigKeyInfo)
	for _, k := range keys {
		if _, seen := sections[k.Section]; !seen {
			order = append(order, k.Section)
		}
		sections[k.Section] = append(sections[k.Section], k)
	}

	icon := lipgloss.NewStyle().Foreground(r.theme.Accent).Render(IconInfo)
	parts := []string{icon + " " + r.theme.Title.Render("Configuration keys"), ""}
	for _, name := range order {
		parts = append(parts, r.renderSection(name, sections[name]), "")
	}
	return strings.Join(parts, "\n")
}

// RenderJSON renders keys as indented JSON.
func (*ConfigSchemaRenderer) RenderJSON(keys []entity.ConfigKeyInfo) (string, error) {
	data, err := json.MarshalIndent(keys, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal schema: %w", err)
	}
	return string(data), nil
}

func (r *ConfigSchemaRenderer) renderSection(name string, keys []entity.ConfigKeyInfo) string {
	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, r.renderKey(k))
	}
	content := r.theme.Highlight.Render(name) + "\n" + strings.Join(lines, "\n")
	return r.theme.Box.PaddingTop(0).Render(content)
}

func (r *ConfigSchemaRenderer) renderKey(k entity.ConfigKeyInfo) string {
	def := k.Default
	if def == "" {
		def = `""`
	}
	out := fmt.Sprintf("%s  %s  %s\n  %s",
		r.theme.Normal.Bold(true).Render(k.Key),
		r.theme.Subtle.Render(k.Type),
		lipgloss.NewStyle().Foreground(r.theme.Accent).Render(def),
		r.theme.Subtle.Render(k.Description),
	)
	switch {
	case len(k.Values) > 0:
		out += "\n  " + r.theme.Normal.Render("Values: "+strings.Join(k.Values, ", "))
	case k.Range != "":
		out += "\n  " + r.theme.Normal.Render("Range: "+k.Range)
	}
	return out
}
