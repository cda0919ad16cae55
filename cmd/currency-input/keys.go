package main

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Left         key.Binding
	Right        key.Binding
	Home         key.Binding
	End          key.Binding
	Backspace    key.Binding
	Delete       key.Binding
	SelectAll    key.Binding
	Paste        key.Binding
	Copy         key.Binding
	ToggleSymbol key.Binding
	Finish       key.Binding
	Quit         key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Left:         key.NewBinding(key.WithKeys("left"), key.WithHelp("←/→", "move")),
		Right:        key.NewBinding(key.WithKeys("right")),
		Home:         key.NewBinding(key.WithKeys("home", "ctrl+b")),
		End:          key.NewBinding(key.WithKeys("end", "ctrl+e")),
		Backspace:    key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("⌫", "erase")),
		Delete:       key.NewBinding(key.WithKeys("delete", "ctrl+d")),
		SelectAll:    key.NewBinding(key.WithKeys("ctrl+a"), key.WithHelp("ctrl+a", "select all")),
		Paste:        key.NewBinding(key.WithKeys("ctrl+v"), key.WithHelp("ctrl+v", "paste")),
		Copy:         key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "copy")),
		ToggleSymbol: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "symbol")),
		Finish:       key.NewBinding(key.WithKeys("enter", "tab"), key.WithHelp("enter", "done")),
		Quit:         key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Backspace, k.SelectAll, k.Paste, k.ToggleSymbol, k.Finish, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Home, k.End},
		{k.Backspace, k.Delete, k.SelectAll},
		{k.Paste, k.Copy, k.ToggleSymbol},
		{k.Finish, k.Quit},
	}
}
