package components

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

var (
	enterKey = tea.KeyMsg{Type: tea.KeyEnter}
	escKey   = tea.KeyMsg{Type: tea.KeyEsc}
	downKey  = tea.KeyMsg{Type: tea.KeyDown}
)

func TestFilterIndices(t *testing.T) {
	items := []string{"Inception", "Heat", "The Inception Story"}

	got := FilterIndices("INCEP", items)
	assert.ElementsMatch(t, []int{0, 2}, got)
	assert.Empty(t, FilterIndices("zzz", items))
}

func TestPickerCursorSelect(t *testing.T) {
	p := NewPicker()
	p.Show("Pick", []string{"A", "B", "C"}, false)

	p, _, res := p.Update(downKey)
	assert.False(t, res.Selected)
	p, _, res = p.Update(enterKey)
	assert.True(t, res.Selected)
	assert.Equal(t, 1, res.Index)
}

func TestPickerNumberedChoice(t *testing.T) {
	p := NewPicker()
	p.Show("Menu", []string{"Review", "Suggest", "Exit"}, true)

	_, _, res := p.Update(runes("3"))
	assert.True(t, res.Selected)
	assert.Equal(t, 2, res.Index)

	// Out of range numbers are ignored
	_, _, res = p.Update(runes("7"))
	assert.False(t, res.Selected)
}

func TestPickerFilter(t *testing.T) {
	p := NewPicker()
	p.Show("Pick", []string{"Inception", "Heat", "Alien"}, false)

	p, _, _ = p.Update(runes("/"))
	require.True(t, p.IsFiltering())
	p, _, _ = p.Update(runes("hea"))
	p, _, _ = p.Update(enterKey)
	require.False(t, p.IsFiltering())

	_, _, res := p.Update(enterKey)
	assert.True(t, res.Selected)
	assert.Equal(t, 1, res.Index)
}

func TestPickerEscapeClearsFilterThenCancels(t *testing.T) {
	p := NewPicker()
	p.Show("Pick", []string{"Inception", "Heat"}, false)

	p, _, _ = p.Update(runes("/"))
	p, _, _ = p.Update(runes("hea"))
	p, _, _ = p.Update(enterKey)

	p, _, res := p.Update(escKey)
	assert.False(t, res.Canceled)

	_, _, res = p.Update(escKey)
	assert.True(t, res.Canceled)
}

func TestInputModal(t *testing.T) {
	m := NewInputModal()
	m.Show("Rating", "7")

	m, _, res := m.Update(runes("8.5"))
	assert.Equal(t, InputPending, res)
	m, _, res = m.Update(enterKey)
	assert.Equal(t, InputSubmitted, res)
	assert.Equal(t, "8.5", m.Value())

	m.Reject("bad")
	assert.Empty(t, m.Value())
	assert.Contains(t, m.View(), "bad")

	m, _, res = m.Update(escKey)
	assert.Equal(t, InputCanceled, res)
	assert.False(t, m.IsVisible())
}
