package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/trainbook/internal/booking"
)

// tabBody renders one tab of the booking screen. Adding a tab means
// adding an implementation here and its Tab to booking.Tabs.
type tabBody interface {
	Tab() booking.Tab
	Icon(active bool) string
	Label() string
	View(b *BookScreen, width int) string
}

var (
	tabSearch   tabBody = searchTab{}
	tabBookings tabBody = placeholderTab{tab: booking.TabBookings, label: "Bookings", text: "Your Bookings", icon: "▭", activeIcon: "▬"}
	tabChat     tabBody = placeholderTab{tab: booking.TabChat, label: "Chat", text: "Chat Support", icon: "○", activeIcon: "●"}
	tabProfile  tabBody = placeholderTab{tab: booking.TabProfile, label: "Profile", text: "User Profile", icon: "☺", activeIcon: "☻"}

	// tabBodies follows booking.Tabs order.
	tabBodies = orderedBodies(booking.Tabs, tabSearch, tabBookings, tabChat, tabProfile)
)

func orderedBodies(order []booking.Tab, bodies ...tabBody) []tabBody {
	byTab := make(map[booking.Tab]tabBody, len(bodies))
	for _, body := range bodies {
		byTab[body.Tab()] = body
	}
	out := make([]tabBody, 0, len(order))
	for _, tab := range order {
		if body, ok := byTab[tab]; ok {
			out = append(out, body)
		}
	}
	return out
}

// bodyFor returns the body for tab, falling back to search.
func bodyFor(tab booking.Tab) tabBody {
	for _, body := range tabBodies {
		if body.Tab() == tab {
			return body
		}
	}
	return tabSearch
}

type placeholderTab struct {
	tab        booking.Tab
	label      string
	text       string
	icon       string
	activeIcon string
}

func (p placeholderTab) Tab() booking.Tab { return p.tab }
func (p placeholderTab) Label() string    { return p.label }

func (p placeholderTab) Icon(active bool) string {
	if active {
		return p.activeIcon
	}
	return p.icon
}

func (p placeholderTab) View(_ *BookScreen, width int) string {
	box := placeholderBox.Render(p.text)
	if width <= 0 {
		return box
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, box)
}

type searchTab struct{}

func (searchTab) Tab() booking.Tab { return booking.TabSearch }
func (searchTab) Label() string    { return "Search" }

func (searchTab) Icon(active bool) string {
	if active {
		return "◉"
	}
	return "○"
}

const trainArt = `  ____________
 |  __  __  |_\
 | |__||__|   |
 |____________|
  ()      ()`

func (searchTab) View(b *BookScreen, width int) string {
	s := b.state
	parts := []string{
		imageStyle.Render(trainArt),
		"",
		b.field(focusFrom, "From", b.from.View(), s.Form.OriginStation),
		b.button(focusSwap, "⇅ Swap"),
		b.field(focusTo, "To", b.to.View(), s.Form.DestinationStation),
		lipgloss.JoinHorizontal(lipgloss.Top,
			b.field(focusDeparture, "Departure", s.FormatDate(s.Form.DepartureDate), ""),
			" ",
			b.field(focusReturn, "Return", s.FormatDate(s.Form.ReturnDate), ""),
		),
		lipgloss.JoinHorizontal(lipgloss.Top,
			b.field(focusTraveller, "Traveller", s.Form.Travellers, ""),
			" ",
			b.field(focusClass, "Class", s.Form.Class, ""),
		),
		b.searchButton(),
		"",
		renderRecent(s.Recent, width),
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func renderRecent(list []booking.RecentSearch, width int) string {
	if len(list) == 0 {
		return ""
	}
	lines := make([]string, 0, len(list)*2)
	for _, r := range list {
		route := "◷ " + r.Origin + " → " + r.Destination
		if width > 4 {
			route = ansi.Truncate(route, width-2, "…")
		}
		lines = append(lines, route, "  "+labelStyle.Render(r.DateLabel))
	}
	return strings.Join(lines, "\n")
}

func renderTabBar(active booking.Tab, width int) string {
	items := make([]string, 0, len(tabBodies))
	for _, body := range tabBodies {
		on := body.Tab() == active
		style := tabStyle
		if on {
			style = activeTabStyle
		}
		items = append(items, style.Render(body.Icon(on)+" "+body.Label()))
	}
	bar := lipgloss.JoinHorizontal(lipgloss.Top, items...)
	if width > 0 && lipgloss.Width(bar) < width {
		bar = lipgloss.PlaceHorizontal(width, lipgloss.Center, bar)
	}
	return tabBarStyle.Render(bar)
}
