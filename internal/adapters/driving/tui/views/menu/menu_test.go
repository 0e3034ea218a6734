package menu

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/bikeshare-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/bikeshare-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/bikeshare-cli/internal/core/domain"
)

func cityItems() []Item {
	return []Item{
		{Label: "Chicago", Msg: messages.CitySelected{City: domain.CityChicago}},
		{Label: "New York City", Msg: messages.CitySelected{City: domain.CityNewYork}},
		{Label: "Washington", Msg: messages.CitySelected{City: domain.CityWashington}},
		{Label: "Quit", Quit: true},
	}
}

func TestNewView(t *testing.T) {
	view := NewView(styles.DefaultStyles(), "Cities", cityItems())

	require.NotNil(t, view)
	assert.NotNil(t, view.styles)
	assert.Len(t, view.items, 4)
	assert.Equal(t, 0, view.selected)
	assert.Equal(t, 80, view.width)
	assert.Equal(t, 24, view.height)
}

func TestNewView_NilStyles(t *testing.T) {
	view := NewView(nil, "Cities", nil)

	require.NotNil(t, view)
	assert.NotNil(t, view.styles)
}

func TestView_Init(t *testing.T) {
	assert.Nil(t, NewView(nil, "Cities", nil).Init())
}

func TestView_Update_WindowSize(t *testing.T) {
	view := NewView(nil, "Cities", cityItems())

	updated, cmd := view.Update(tea.WindowSizeMsg{Width: 100, Height: 50})

	assert.Equal(t, view, updated)
	assert.Nil(t, cmd)
	assert.True(t, view.ready)
	assert.Equal(t, 100, view.width)
	assert.Equal(t, 50, view.height)
}

func TestView_Update_Navigate(t *testing.T) {
	view := NewView(nil, "Cities", cityItems())

	view.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, view.Selected())

	j := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}
	view.Update(j)
	view.Update(j)
	view.Update(j)
	assert.Equal(t, 3, view.Selected(), "cannot go past the last item")

	k := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}}
	view.Update(k)
	assert.Equal(t, 2, view.Selected())

	view.Update(tea.KeyMsg{Type: tea.KeyUp})
	view.Update(tea.KeyMsg{Type: tea.KeyUp})
	view.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, view.Selected(), "cannot go before the first item")
}

func TestView_Update_DigitPicksItem(t *testing.T) {
	view := NewView(nil, "Cities", cityItems())

	view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'3'}})
	assert.Equal(t, 2, view.Selected())

	view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'9'}})
	assert.Equal(t, 2, view.Selected(), "out of range digit is ignored")
}

func TestView_Update_EnterSendsItemMessage(t *testing.T) {
	view := NewView(nil, "Cities", cityItems())
	view.selected = 1

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, cmd)
	assert.Equal(t, messages.CitySelected{City: domain.CityNewYork}, cmd())
}

func TestView_Update_EnterOnQuitItem(t *testing.T) {
	view := NewView(nil, "Cities", cityItems())
	view.selected = 3

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestView_Update_EnterOnEmptyMenu(t *testing.T) {
	view := NewView(nil, "Empty", nil)

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
}

func TestView_Update_Q(t *testing.T) {
	view := NewView(nil, "Cities", cityItems())

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestView_View(t *testing.T) {
	view := NewView(nil, "Choose a city to explore", cityItems())
	assert.Equal(t, "Initialising...", view.View())

	view.SetDimensions(80, 24)
	view.SetSubtitle("Hello! Let's explore some US bikeshare data!")
	out := view.View()

	assert.Contains(t, out, "Choose a city to explore")
	assert.Contains(t, out, "Hello! Let's explore")
	assert.Contains(t, out, "> ")
	assert.Contains(t, out, "Chicago")
	assert.Contains(t, out, "Washington")
}

func TestView_Reset(t *testing.T) {
	view := NewView(nil, "Cities", cityItems())
	view.selected = 2

	view.Reset()

	assert.Equal(t, 0, view.Selected())
}
