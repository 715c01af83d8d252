package tui

import "github.com/charmbracelet/bubbles/key"

// quitKey ends the program from any screen.
var quitKey = key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit"))

// keyMap is the booking screen's key set. Tab keys avoid plain digits
// so they can still be typed into the From/To inputs.
type keyMap struct {
	Next     key.Binding
	Prev     key.Binding
	Activate key.Binding
	Swap     key.Binding
	Search   key.Binding
	Back     key.Binding
	Quit     key.Binding

	TabSearch   key.Binding
	TabBookings key.Binding
	TabChat     key.Binding
	TabProfile  key.Binding

	// formActive limits help to tab, back and quit keys when false.
	formActive bool
}

func newKeyMap() keyMap {
	return keyMap{
		Next:        key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab/↓", "next")),
		Prev:        key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab/↑", "prev")),
		Activate:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Swap:        key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "swap")),
		Search:      key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "search")),
		Back:        key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Quit:        quitKey,
		TabSearch:   key.NewBinding(key.WithKeys("f1", "alt+1"), key.WithHelp("f1", "search")),
		TabBookings: key.NewBinding(key.WithKeys("f2", "alt+2"), key.WithHelp("f2", "bookings")),
		TabChat:     key.NewBinding(key.WithKeys("f3", "alt+3"), key.WithHelp("f3", "chat")),
		TabProfile:  key.NewBinding(key.WithKeys("f4", "alt+4"), key.WithHelp("f4", "profile")),
		formActive:  true,
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	tabs := []key.Binding{k.TabSearch, k.TabBookings, k.TabChat, k.TabProfile, k.Back, k.Quit}
	if !k.formActive {
		return tabs
	}
	return append([]key.Binding{k.Next, k.Activate, k.Swap, k.Search}, tabs...)
}

func (k keyMap) FullHelp() [][]key.Binding {
	rows := [][]key.Binding{
		{k.TabSearch, k.TabBookings, k.TabChat, k.TabProfile},
		{k.Back, k.Quit},
	}
	if !k.formActive {
		return rows
	}
	return append([][]key.Binding{{k.Next, k.Prev, k.Activate, k.Swap, k.Search}}, rows...)
}

// tabKeys pairs each tab binding with the body it selects.
func (k keyMap) tabKeys() []tabKey {
	return []tabKey{
		{k.TabSearch, tabSearch},
		{k.TabBookings, tabBookings},
		{k.TabChat, tabChat},
		{k.TabProfile, tabProfile},
	}
}

type tabKey struct {
	binding key.Binding
	body    tabBody
}

// pickerKeyMap drives the date picker modal.
type pickerKeyMap struct {
	PrevDay   key.Binding
	NextDay   key.Binding
	PrevWeek  key.Binding
	NextWeek  key.Binding
	PrevMonth key.Binding
	NextMonth key.Binding
	Confirm   key.Binding
	Cancel    key.Binding
}

func newPickerKeyMap() pickerKeyMap {
	return pickerKeyMap{
		PrevDay:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "-1 day")),
		NextDay:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→", "+1 day")),
		PrevWeek:  key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑", "-1 week")),
		NextWeek:  key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓", "+1 week")),
		PrevMonth: key.NewBinding(key.WithKeys("pgup", "["), key.WithHelp("pgup", "-1 month")),
		NextMonth: key.NewBinding(key.WithKeys("pgdown", "]"), key.WithHelp("pgdn", "+1 month")),
		Confirm:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "ok")),
		Cancel:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

func (k pickerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PrevDay, k.NextDay, k.PrevWeek, k.NextWeek, k.PrevMonth, k.NextMonth, k.Confirm, k.Cancel}
}

func (k pickerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
