package main

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestMenuHelp(t *testing.T) {
	assert.Equal(t, "[F]ight  [B]ounties  [D]elve  [S]cout  [R]aid  [M]arket  [H]eal  [Q]uit", menuHelp())
}

func TestMenuKeys(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want key.Binding
	}{
		{"lower fight", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("f")}, menuKeys.Fight},
		{"upper fight", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("F")}, menuKeys.Fight},
		{"raid", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")}, menuKeys.Raid},
		{"escape quits", tea.KeyMsg{Type: tea.KeyEsc}, menuKeys.Quit},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, key.Matches(tt.msg, tt.want))
		})
	}

	assert.False(t, key.Matches(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")}, menuKeys.bindings()...))
}

func TestPickKeys(t *testing.T) {
	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyUp}, pickKeys.Up))
	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyDown}, pickKeys.Down))
	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyEnter}, pickKeys.Select))
	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyEsc}, pickKeys.Back))
}
