package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMenuNavigateAndSelect(t *testing.T) {
	m := NewMenuModel(80)
	require.GreaterOrEqual(t, len(m.items), 2)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = next.(MenuModel)
	assert.Equal(t, 0, m.cursor, "cursor stays at top")

	next, _ = m.Update(runes("j"))
	m = next.(MenuModel)
	assert.Equal(t, 1, m.cursor)

	for i := 0; i < 5; i++ {
		next, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
		m = next.(MenuModel)
	}
	assert.Equal(t, len(m.items)-1, m.cursor, "cursor stops at bottom")

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(MenuModel)
	require.NotNil(t, cmd)
	require.NotNil(t, m.Selected())
	assert.Equal(t, m.items[len(m.items)-1].ID, m.Selected().ID)
}

func TestMenuQuit(t *testing.T) {
	m := NewMenuModel(80)
	next, cmd := m.Update(runes("q"))
	m = next.(MenuModel)

	require.NotNil(t, cmd)
	assert.Nil(t, m.Selected())
	assert.Empty(t, m.View())
}

func TestMenuView(t *testing.T) {
	out := NewMenuModel(80).View()
	assert.Contains(t, out, "> asteroids")
	assert.Contains(t, out, "Bounce")
	assert.Contains(t, out, "Select a scene")
}

func TestCenterText(t *testing.T) {
	tests := []struct {
		text  string
		width int
		want  string
	}{
		{"ab", 6, "  ab"},
		{"abc", 6, " abc"},
		{"toolong", 3, "toolong"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, centerText(tt.text, tt.width))
	}
}
