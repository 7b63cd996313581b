package styles

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"

	"github.com/bnema/toggley/internal/domain/entity"
)

const pickerMaxRows = 10

// themeSource adapts theme entries to fuzzy.Source, matching on name and id.
type themeSource []entity.ThemeEntry

func (s themeSource) String(i int) string {
	return s[i].Name + " " + s[i].ID
}

func (s themeSource) Len() int {
	return len(s)
}

// PickerMatch is one visible row of the picker.
type PickerMatch struct {
	Theme   entity.ThemeEntry
	Matched []int
}

// Picker is a fuzzy-filtered theme chooser.
type Picker struct {
	Title    string
	Canceled bool

	themes  []entity.ThemeEntry
	matches []PickerMatch
	cursor  int
	done    bool
	chosen  entity.ThemeEntry

	filter textinput.Model
	keys   PickerKeyMap
	theme  *Theme
}

// NewPicker creates a picker over themes with the cursor on selectedID.
func NewPicker(theme *Theme, title string, themes []entity.ThemeEntry, selectedID string) Picker {
	p := Picker{
		Title:  title,
		themes: themes,
		filter: NewFilterInput(theme),
		keys:   DefaultPickerKeyMap(),
		theme:  theme,
	}
	p.filter.Focus()
	p.refilter()
	for i, m := range p.matches {
		if m.Theme.ID == selectedID {
			p.cursor = i
			break
		}
	}
	return p
}

// Matches returns the rows matching the current filter, best first.
func (p Picker) Matches() []PickerMatch {
	return p.matches
}

// Done reports whether the user chose or canceled.
func (p Picker) Done() bool {
	return p.done
}

// Chosen returns the selected theme once Done and not Canceled.
func (p Picker) Chosen() (entity.ThemeEntry, bool) {
	return p.chosen, p.done && !p.Canceled
}

// Update implements tea.Model semantics for the embedded picker.
func (p Picker) Update(msg tea.Msg) (Picker, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, p.keys.Cancel):
			p.done, p.Canceled = true, true
			return p, nil
		case key.Matches(keyMsg, p.keys.Choose):
			if len(p.matches) > 0 {
				p.chosen = p.matches[p.cursor].Theme
				p.done = true
			}
			return p, nil
		case key.Matches(keyMsg, p.keys.Up):
			if p.cursor > 0 {
				p.cursor--
			}
			return p, nil
		case key.Matches(keyMsg, p.keys.Down):
			if p.cursor < len(p.matches)-1 {
				p.cursor++
			}
			return p, nil
		}
	}

	before := p.filter.Value()
	var cmd tea.Cmd
	p.filter, cmd = p.filter.Update(msg)
	if p.filter.Value() != before {
		p.refilter()
		p.cursor = 0
	}
	return p, cmd
}

func (p *Picker) refilter() {
	query := strings.TrimSpace(p.filter.Value())
	if query == "" {
		p.matches = make([]PickerMatch, len(p.themes))
		for i, t := range p.themes {
			p.matches[i] = PickerMatch{Theme: t}
		}
		return
	}

	found := fuzzy.FindFrom(query, themeSource(p.themes))
	p.matches = make([]PickerMatch, 0, len(found))
	for _, m := range found {
		p.matches = append(p.matches, PickerMatch{Theme: p.themes[m.Index], Matched: m.MatchedIndexes})
	}
}

// View renders the filter and the visible rows.
func (p Picker) View() string {
	var b strings.Builder
	b.WriteString(p.theme.BoxHeader.Render(p.Title))
	b.WriteString("\n")
	b.WriteString(p.filter.View())
	b.WriteString("\n\n")

	if len(p.matches) == 0 {
		b.WriteString(p.theme.Subtle.Render("  no matching themes"))
		return p.theme.Box.Render(b.String())
	}

	start := 0
	if p.cursor >= pickerMaxRows {
		start = p.cursor - pickerMaxRows + 1
	}
	end := min(start+pickerMaxRows, len(p.matches))

	for i := start; i < end; i++ {
		m := p.matches[i]
		label := p.highlight(m)
		if i == p.cursor {
			b.WriteString(p.theme.ListItemSelected.Render(IconCursor + " " + label))
		} else {
			b.WriteString(p.theme.ListItem.Render("  " + label))
		}
		b.WriteString("\n")
	}
	return p.theme.Box.Render(strings.TrimRight(b.String(), "\n"))
}

// highlight emphasizes the matched runes of the theme name.
func (p Picker) highlight(m PickerMatch) string {
	if len(m.Matched) == 0 {
		return m.Theme.Name
	}
	hit := make(map[int]bool, len(m.Matched))
	for _, i := range m.Matched {
		hit[i] = true
	}
	var b strings.Builder
	for i, r := range m.Theme.Name {
		if hit[i] {
			b.WriteString(p.theme.Highlight.Render(string(r)))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
