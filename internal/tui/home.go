package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// HomeScreen is the landing page with a single button to the booking page.
type HomeScreen struct {
	open key.Binding
	quit key.Binding
}

func newHomeScreen() *HomeScreen {
	return &HomeScreen{
		open: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "go to book page")),
		quit: key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	}
}

func (h *HomeScreen) Route() Route  { return RouteHome }
func (h *HomeScreen) Init() tea.Cmd { return nil }

func (h *HomeScreen) Update(msg tea.Msg) (Screen, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return h, nil
	}
	switch {
	case key.Matches(km, h.open):
		return h, navigate(RouteBookPage)
	case key.Matches(km, h.quit):
		return h, tea.Quit
	}
	return h, nil
}

func (h *HomeScreen) View(width, height int) string {
	body := lipgloss.JoinVertical(lipgloss.Center,
		lipgloss.NewStyle().Bold(true).MarginBottom(1).Render("Welcome to the Home Screen!"),
		focusedButton.Render("Go to Book Page"),
		"",
		statusStyle.Render("[enter] Go to Book Page  [q] Quit"),
	)
	if width <= 0 || height <= 0 {
		return body
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}
