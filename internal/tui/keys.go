package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds every binding the editor responds to.
type keyMap struct {
	Left      key.Binding
	Right     key.Binding
	Up        key.Binding
	Down      key.Binding
	PageUp    key.Binding
	PageDown  key.Binding
	Home      key.Binding
	End       key.Binding
	Nibble    key.Binding
	Insert    key.Binding
	Delete    key.Binding
	Undo      key.Binding
	Redo      key.Binding
	CycleJump key.Binding
	JumpNext  key.Binding
	JumpPrev  key.Binding
	Save      key.Binding
	Help      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Left:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		PageUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "page down")),
		Home:     key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "first byte")),
		End:      key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "last byte")),
		Nibble: key.NewBinding(
			key.WithKeys(
				"0", "1", "2", "3", "4", "5", "6", "7", "8", "9",
				"a", "b", "c", "d", "e", "f", "A", "B", "C", "D", "E", "F",
			),
			key.WithHelp("0-f", "set nibble"),
		),
		Insert:    key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "insert mode")),
		Delete:    key.NewBinding(key.WithKeys("x", "delete"), key.WithHelp("x", "delete byte")),
		Undo:      key.NewBinding(key.WithKeys("u", "ctrl+z"), key.WithHelp("u", "undo")),
		Redo:      key.NewBinding(key.WithKeys("ctrl+r", "ctrl+y"), key.WithHelp("ctrl+r", "redo")),
		CycleJump: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "jump region")),
		JumpNext:  key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "next region")),
		JumpPrev:  key.NewBinding(key.WithKeys("N"), key.WithHelp("N", "previous region")),
		Save:      key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Nibble, k.Insert, k.Undo, k.CycleJump, k.JumpNext, k.Save, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.PageUp, k.PageDown, k.Home, k.End},
		{k.Nibble, k.Insert, k.Delete, k.Undo, k.Redo},
		{k.CycleJump, k.JumpNext, k.JumpPrev},
		{k.Save, k.Help, k.Quit},
	}
}
