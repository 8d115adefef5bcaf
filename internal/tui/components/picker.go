package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/reel/internal/tui/styles"
	"github.com/sahilm/fuzzy"
)

const defaultPickerRows = 15

// PickerResult reports what a Picker update did
type PickerResult struct {
	Selected bool
	Canceled bool
	Index    int // index into the items passed to Show
}

// Picker is a vertical list with cursor navigation and "/" fuzzy filtering.
// With numbering enabled it also accepts 1-9 as direct choices, which is
// how menus use it.
type Picker struct {
	visible  bool
	title    string
	items    []string
	numbered bool

	cursor  int
	offset  int
	maxRows int

	filterInput  textinput.Model
	filterActive bool
	filteredIdx  []int // nil when no filter is applied
}

// NewPicker creates a new picker
func NewPicker() Picker {
	fi := textinput.New()
	fi.Prompt = "/"
	fi.PromptStyle = styles.FilterPromptStyle
	fi.CharLimit = 60

	return Picker{
		filterInput: fi,
		maxRows:     defaultPickerRows,
	}
}

// Show displays items under title and resets cursor and filter
func (p *Picker) Show(title string, items []string, numbered bool) {
	p.visible = true
	p.title = title
	p.items = items
	p.numbered = numbered
	p.cursor = 0
	p.offset = 0
	p.clearFilter()
}

// Hide dismisses the picker
func (p *Picker) Hide() {
	p.visible = false
	p.clearFilter()
}

// IsVisible returns whether the picker is shown
func (p Picker) IsVisible() bool {
	return p.visible
}

// IsFiltering returns whether the filter input has focus
func (p Picker) IsFiltering() bool {
	return p.filterActive
}

// SetMaxRows limits how many items are drawn at once
func (p *Picker) SetMaxRows(rows int) {
	if rows < 3 {
		rows = 3
	}
	p.maxRows = rows
	p.ensureVisible()
}

// Update handles key events
func (p Picker) Update(msg tea.Msg) (Picker, tea.Cmd, PickerResult) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !p.visible || !ok {
		return p, nil, PickerResult{}
	}

	if p.filterActive {
		return p.updateFilter(keyMsg)
	}

	switch {
	case key.Matches(keyMsg, PickerKeys.Up):
		p.moveCursor(-1)
	case key.Matches(keyMsg, PickerKeys.Down):
		p.moveCursor(1)
	case key.Matches(keyMsg, PickerKeys.Home):
		p.cursor = 0
		p.ensureVisible()
	case key.Matches(keyMsg, PickerKeys.End):
		p.cursor = max(p.visibleCount()-1, 0)
		p.ensureVisible()
	case key.Matches(keyMsg, PickerKeys.Enter):
		if idx, ok := p.itemAt(p.cursor); ok {
			return p, nil, PickerResult{Selected: true, Index: idx}
		}
	case key.Matches(keyMsg, PickerKeys.Escape):
		if p.filteredIdx != nil {
			p.clearFilter()
			return p, nil, PickerResult{}
		}
		return p, nil, PickerResult{Canceled: true}
	case key.Matches(keyMsg, PickerKeys.Filter):
		p.filterActive = true
		p.filterInput.Focus()
		return p, textinput.Blink, PickerResult{}
	case p.numbered && keyMsg.Type == tea.KeyRunes && len(keyMsg.Runes) == 1:
		r := keyMsg.Runes[0]
		if r >= '1' && r <= '9' {
			if idx, ok := p.itemAt(int(r - '1')); ok {
				return p, nil, PickerResult{Selected: true, Index: idx}
			}
		}
	}
	return p, nil, PickerResult{}
}

func (p Picker) updateFilter(keyMsg tea.KeyMsg) (Picker, tea.Cmd, PickerResult) {
	switch {
	case key.Matches(keyMsg, FilterKeys.Accept):
		p.filterActive = false
		p.filterInput.Blur()
		return p, nil, PickerResult{}
	case key.Matches(keyMsg, FilterKeys.Clear):
		p.clearFilter()
		return p, nil, PickerResult{}
	}

	var cmd tea.Cmd
	p.filterInput, cmd = p.filterInput.Update(keyMsg)
	p.applyFilter()
	return p, cmd, PickerResult{}
}

func (p *Picker) clearFilter() {
	p.filterActive = false
	p.filteredIdx = nil
	p.filterInput.SetValue("")
	p.filterInput.Blur()
}

func (p *Picker) applyFilter() {
	query := p.filterInput.Value()
	if query == "" {
		p.filteredIdx = nil
		return
	}

	p.filteredIdx = FilterIndices(query, p.items)

	// Reset cursor to first match
	p.cursor = 0
	p.offset = 0
}

// FilterIndices returns the indices of items that fuzzy-match query,
// best match first. Matching is case-insensitive.
func FilterIndices(query string, items []string) []int {
	lower := make([]string, len(items))
	for i, item := range items {
		lower[i] = strings.ToLower(item)
	}

	matches := fuzzy.Find(strings.ToLower(query), lower)
	idx := make([]int, len(matches))
	for i, match := range matches {
		idx[i] = match.Index
	}
	return idx
}

func (p Picker) visibleCount() int {
	if p.filteredIdx != nil {
		return len(p.filteredIdx)
	}
	return len(p.items)
}

// itemAt maps a visible row to an index in items
func (p Picker) itemAt(row int) (int, bool) {
	if row < 0 || row >= p.visibleCount() {
		return 0, false
	}
	if p.filteredIdx != nil {
		return p.filteredIdx[row], true
	}
	return row, true
}

func (p *Picker) moveCursor(delta int) {
	n := p.visibleCount()
	if n == 0 {
		return
	}
	p.cursor = min(max(p.cursor+delta, 0), n-1)
	p.ensureVisible()
}

func (p *Picker) ensureVisible() {
	if p.cursor < p.offset {
		p.offset = p.cursor
	}
	if p.cursor >= p.offset+p.maxRows {
		p.offset = p.cursor - p.maxRows + 1
	}
}

// View renders the picker
func (p Picker) View() string {
	if !p.visible {
		return ""
	}

	lines := []string{styles.TitleStyle.Render(p.title), ""}

	n := p.visibleCount()
	if n == 0 {
		lines = append(lines, styles.DimStyle.Render("  no matches"))
	}
	end := min(p.offset+p.maxRows, n)
	for row := p.offset; row < end; row++ {
		idx, _ := p.itemAt(row)
		label := p.items[idx]
		if p.numbered {
			label = fmt.Sprintf("%d. %s", row+1, label)
		}
		if row == p.cursor {
			lines = append(lines, styles.SelectedItemStyle.Render(label))
		} else {
			lines = append(lines, styles.NormalItemStyle.Render(label))
		}
	}
	if n > end {
		lines = append(lines, styles.DimStyle.Render(fmt.Sprintf("  … %d more", n-end)))
	}

	lines = append(lines, "")
	switch {
	case p.filterActive:
		lines = append(lines, p.filterInput.View())
	case p.filteredIdx != nil:
		lines = append(lines, styles.DimStyle.Render("filter: "+p.filterInput.Value()))
	default:
		lines = append(lines, styles.RenderHelp(
			[2]string{"enter", "select"},
			[2]string{"/", "filter"},
			[2]string{"esc", "back"},
		))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
