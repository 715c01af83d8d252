package tui

import tea "github.com/charmbracelet/bubbletea"

// Route names a screen the navigator can show.
type Route string

const (
	RouteHome     Route = "Home"
	RouteBookPage Route = "BookPage"
)

// Screen is a full-page view bound to a route.
type Screen interface {
	Route() Route
	Init() tea.Cmd
	Update(msg tea.Msg) (Screen, tea.Cmd)
	View(width, height int) string
}

type ScreenStack struct {
	items []Screen
}

func (s *ScreenStack) Push(screen Screen) {
	if screen == nil {
		return
	}
	s.items = append(s.items, screen)
}

func (s *ScreenStack) Pop() Screen {
	if len(s.items) == 0 {
		return nil
	}
	last := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return last
}

// PopTo drops every screen above index i.
func (s *ScreenStack) PopTo(i int) {
	if i < 0 || i >= len(s.items) {
		return
	}
	s.items = s.items[:i+1]
}

// Replace swaps the top screen, used when a screen returns a new value
// from Update.
func (s *ScreenStack) Replace(screen Screen) {
	if len(s.items) == 0 || screen == nil {
		return
	}
	s.items[len(s.items)-1] = screen
}

func (s ScreenStack) Top() Screen {
	if len(s.items) == 0 {
		return nil
	}
	return s.items[len(s.items)-1]
}

// Index returns the position of the screen bound to route, or -1.
func (s ScreenStack) Index(route Route) int {
	for i, scr := range s.items {
		if scr.Route() == route {
			return i
		}
	}
	return -1
}

func (s ScreenStack) Len() int {
	return len(s.items)
}
