package main

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// menuKeyMap binds the main menu commands.
type menuKeyMap struct {
	Fight    key.Binding
	Bounties key.Binding
	Delve    key.Binding
	Scout    key.Binding
	Raid     key.Binding
	Market   key.Binding
	Heal     key.Binding
	Quit     key.Binding
}

var menuKeys = menuKeyMap{
	Fight:    key.NewBinding(key.WithKeys("f", "F"), key.WithHelp("F", "ight")),
	Bounties: key.NewBinding(key.WithKeys("b", "B"), key.WithHelp("B", "ounties")),
	Delve:    key.NewBinding(key.WithKeys("d", "D"), key.WithHelp("D", "elve")),
	Scout:    key.NewBinding(key.WithKeys("s", "S"), key.WithHelp("S", "cout")),
	Raid:     key.NewBinding(key.WithKeys("r", "R"), key.WithHelp("R", "aid")),
	Market:   key.NewBinding(key.WithKeys("m", "M"), key.WithHelp("M", "arket")),
	Heal:     key.NewBinding(key.WithKeys("h", "H"), key.WithHelp("H", "eal")),
	Quit:     key.NewBinding(key.WithKeys("q", "Q", "esc"), key.WithHelp("Q", "uit")),
}

func (k menuKeyMap) bindings() []key.Binding {
	return []key.Binding{k.Fight, k.Bounties, k.Delve, k.Scout, k.Raid, k.Market, k.Heal, k.Quit}
}

// pickKeyMap binds movement in selection lists.
type pickKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Back   key.Binding
}

var pickKeys = pickKeyMap{
	Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑", "up")),
	Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓", "down")),
	Select: key.NewBinding(key.WithKeys("enter"), key.WithHelp("Enter", "select")),
	Back:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("Esc", "back")),
}

// menuHelp renders the menu bindings as "[F]ight  [B]ounties ...".
func menuHelp() string {
	parts := make([]string, 0, len(menuKeys.bindings()))
	for _, b := range menuKeys.bindings() {
		h := b.Help()
		parts = append(parts, "["+h.Key+"]"+h.Desc)
	}
	return strings.Join(parts, "  ")
}
