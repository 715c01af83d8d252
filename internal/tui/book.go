package tui

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/trainbook/internal/booking"
)

type focusField int

const (
	focusFrom focusField = iota
	focusSwap
	focusTo
	focusDeparture
	focusReturn
	focusTraveller
	focusClass
	focusSearch
	focusCount
)

// BookScreen is the booking page. All form data lives in state; the
// text inputs only mirror Origin and Destination for editing.
type BookScreen struct {
	ctx      context.Context
	log      *slog.Logger
	stations StationResolver
	state    booking.State
	focus    focusField
	from     textinput.Model
	to       textinput.Model
	picker   *DatePicker
	keys     keyMap
	help     help.Model
	status   string
}

func newBookScreen(ctx context.Context, d booking.Defaults, stations StationResolver, today time.Time, logger *slog.Logger) *BookScreen {
	if logger == nil {
		logger = slog.Default()
	}
	from := textinput.New()
	from.Prompt = ""
	from.Placeholder = "Dehradun UK"
	to := textinput.New()
	to.Prompt = ""
	to.Placeholder = "Pune MAHARASHTRA"

	b := &BookScreen{
		ctx:      ctx,
		log:      logger,
		stations: stations,
		state:    booking.NewState(d, today),
		from:     from,
		to:       to,
		keys:     newKeyMap(),
		help:     help.New(),
	}
	b.from.Focus()
	return b
}

func (b *BookScreen) Route() Route { return RouteBookPage }

// State returns the current booking state.
func (b *BookScreen) State() booking.State { return b.state }

func (b *BookScreen) Init() tea.Cmd { return textinput.Blink }

func (b *BookScreen) Update(msg tea.Msg) (Screen, tea.Cmd) {
	switch m := msg.(type) {
	case datePickedMsg:
		target := b.state.UI.DateTarget
		b.state = b.state.PickDate(target, m.Date)
		b.picker = nil
		if m.Date == nil {
			b.log.Debug("date picker cancelled", "target", target)
		} else {
			b.log.Debug("date picked", "target", target, "date", m.Date.Format(time.DateOnly))
		}
		return b, nil
	case stationResolvedMsg:
		b.applyStation(m)
		return b, nil
	case errMsg:
		b.status = "error: " + m.Error()
		b.log.Warn("booking screen error", "err", m.error)
		return b, nil
	case tea.KeyMsg:
		return b.handleKey(m)
	}
	return b, b.updateInputs(msg)
}

func (b *BookScreen) handleKey(m tea.KeyMsg) (Screen, tea.Cmd) {
	if b.state.UI.ShowDatePicker && b.picker != nil {
		next, cmd := b.picker.Update(m)
		b.picker = &next
		return b, cmd
	}

	for _, tk := range b.keys.tabKeys() {
		if key.Matches(m, tk.binding) {
			b.selectTab(tk.body.Tab())
			return b, nil
		}
	}
	if key.Matches(m, b.keys.Back) {
		return b, back
	}
	if b.state.UI.ActiveTab != booking.TabSearch {
		return b, nil
	}

	switch {
	case key.Matches(m, b.keys.Next):
		return b, b.setFocus((b.focus + 1) % focusCount)
	case key.Matches(m, b.keys.Prev):
		return b, b.setFocus((b.focus + focusCount - 1) % focusCount)
	case key.Matches(m, b.keys.Swap):
		return b, b.swap()
	case key.Matches(m, b.keys.Search):
		b.submit()
		return b, nil
	case key.Matches(m, b.keys.Activate):
		return b, b.activate()
	}

	switch b.focus {
	case focusFrom:
		return b, b.editInput(&b.from, booking.FieldOrigin, m)
	case focusTo:
		return b, b.editInput(&b.to, booking.FieldDestination, m)
	}
	return b, nil
}

// activate is a "tap" on the focused control.
func (b *BookScreen) activate() tea.Cmd {
	switch b.focus {
	case focusFrom:
		return b.setFocus(focusSwap)
	case focusTo:
		return b.setFocus(focusDeparture)
	case focusSwap:
		return b.swap()
	case focusDeparture:
		b.openPicker(booking.DateDeparture)
	case focusReturn:
		b.openPicker(booking.DateReturn)
	case focusTraveller:
		b.state = b.state.OpenTravellerModal()
	case focusClass:
		b.state = b.state.OpenClassModal()
	case focusSearch:
		b.submit()
	}
	return nil
}

func (b *BookScreen) selectTab(tab booking.Tab) {
	if b.state.UI.ActiveTab == tab {
		return
	}
	b.state = b.state.SelectTab(tab)
	b.log.Debug("tab selected", "tab", tab)
}

func (b *BookScreen) setFocus(f focusField) tea.Cmd {
	b.focus = f
	b.from.Blur()
	b.to.Blur()
	switch f {
	case focusFrom:
		return b.from.Focus()
	case focusTo:
		return b.to.Focus()
	}
	return nil
}

func (b *BookScreen) openPicker(target booking.DateField) {
	b.state = b.state.OpenDatePicker(target)
	title := "Departure"
	if target == booking.DateReturn {
		title = "Return"
	}
	p := NewDatePicker(title, b.state.Form.Date(target))
	b.picker = &p
}

// swap exchanges the two places and looks both up again, since a lookup
// still in flight for the old field is now stale.
func (b *BookScreen) swap() tea.Cmd {
	b.state = b.state.Swap()
	b.from.SetValue(b.state.Form.Origin)
	b.to.SetValue(b.state.Form.Destination)
	return tea.Batch(
		b.resolveCmd(booking.FieldOrigin, b.state.Form.Origin),
		b.resolveCmd(booking.FieldDestination, b.state.Form.Destination),
	)
}

func (b *BookScreen) submit() {
	b.state = b.state.SubmitSearch()
	r := b.state.Recent[0]
	b.status = "Added to recent searches"
	b.log.Info("search submitted", "origin", r.Origin, "destination", r.Destination, "date", r.DateLabel)
}

// editInput forwards a key to a text input and mirrors any change into
// the form, then looks up the station for the new text.
func (b *BookScreen) editInput(in *textinput.Model, field booking.TextField, m tea.KeyMsg) tea.Cmd {
	before := in.Value()
	next, cmd := in.Update(m)
	*in = next
	after := in.Value()
	if after == before {
		return cmd
	}
	b.state = b.state.SetText(field, after)
	return tea.Batch(cmd, b.resolveCmd(field, after))
}

func (b *BookScreen) updateInputs(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	var cmd tea.Cmd
	b.from, cmd = b.from.Update(msg)
	cmds = append(cmds, cmd)
	b.to, cmd = b.to.Update(msg)
	cmds = append(cmds, cmd)
	return tea.Batch(cmds...)
}

func (b *BookScreen) resolveCmd(field booking.TextField, text string) tea.Cmd {
	if b.stations == nil || strings.TrimSpace(text) == "" {
		return nil
	}
	ctx, stations := b.ctx, b.stations
	return func() tea.Msg {
		st, err := stations.Resolve(ctx, text)
		if err != nil {
			return errMsg{err}
		}
		return stationResolvedMsg{Source: field, Query: text, Station: st}
	}
}

// applyStation writes a resolved station label, unless the text it was
// resolved for has since changed.
func (b *BookScreen) applyStation(m stationResolvedMsg) {
	if m.Station == nil || b.state.Form.Text(m.Source) != m.Query {
		return
	}
	label := booking.FieldOriginStation
	if m.Source == booking.FieldDestination {
		label = booking.FieldDestinationStation
	}
	b.state = b.state.SetText(label, m.Station.Label())
	b.log.Debug("station resolved", "query", m.Query, "code", m.Station.Code)
}

func (b *BookScreen) View(width, height int) string {
	body := bodyFor(b.state.UI.ActiveTab).View(b, width)
	if b.state.UI.ShowDatePicker && b.picker != nil {
		body += "\n\n" + b.picker.View()
	}
	footer := []string{renderTabBar(b.state.UI.ActiveTab, width)}
	if b.status != "" {
		style := statusStyle
		if strings.HasPrefix(b.status, "error:") {
			style = errorStyle
		}
		footer = append(footer, style.Render(b.status))
	}
	keys := b.keys
	keys.formActive = b.state.UI.ActiveTab == booking.TabSearch
	footer = append(footer, b.help.View(keys))
	bottom := lipgloss.JoinVertical(lipgloss.Left, footer...)

	if height > 0 {
		gap := height - lipgloss.Height(body) - lipgloss.Height(bottom)
		if gap > 0 {
			body += strings.Repeat("\n", gap)
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, body, bottom)
}

func (b *BookScreen) field(f focusField, label, value, sub string) string {
	content := labelStyle.Render(label) + "\n" + value
	if sub != "" {
		content += "\n" + subLabelStyle.Render(sub)
	}
	style := fieldStyle
	if b.focus == f {
		style = focusedFieldStyle
	}
	return style.Render(content)
}

func (b *BookScreen) button(f focusField, text string) string {
	if b.focus == f {
		return focusedLink.Render(text)
	}
	return linkStyle.Render(text)
}

func (b *BookScreen) searchButton() string {
	if b.focus == focusSearch {
		return focusedButton.Render("Search")
	}
	return buttonStyle.Render("Search")
}
