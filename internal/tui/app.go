package tui

import (
	"context"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/trainbook/internal/booking"
	"github.com/jask/trainbook/internal/config"
	"github.com/jask/trainbook/internal/database/repository"
)

// StationResolver looks up the catalog station for typed place text.
type StationResolver interface {
	Resolve(ctx context.Context, text string) (*repository.Station, error)
}

type Services struct {
	Stations StationResolver
}

// App is the navigator: a stack of named screens, Home first.
type App struct {
	ctx      context.Context
	cfg      config.Config
	services Services
	log      *slog.Logger
	tz       *time.Location
	now      func() time.Time
	screens  ScreenStack
	width    int
	height   int
}

func New(ctx context.Context, cfg config.Config, services Services, tz *time.Location, logger *slog.Logger) *App {
	if tz == nil {
		tz = time.Local
	}
	if logger == nil {
		logger = slog.Default()
	}
	a := &App{
		ctx:      ctx,
		cfg:      cfg,
		services: services,
		log:      logger,
		tz:       tz,
		now:      time.Now,
	}
	a.screens.Push(newHomeScreen())
	return a
}

func (a *App) Init() tea.Cmd {
	if top := a.screens.Top(); top != nil {
		return top.Init()
	}
	return nil
}

// Current returns the route on top of the stack.
func (a *App) Current() Route {
	if top := a.screens.Top(); top != nil {
		return top.Route()
	}
	return ""
}

// NavigateTo shows route. A route already on the stack is switched to by
// popping the screens above it; otherwise a fresh screen is pushed.
func (a *App) NavigateTo(route Route) tea.Cmd {
	if idx := a.screens.Index(route); idx >= 0 {
		a.screens.PopTo(idx)
		a.log.Debug("navigate", "route", route, "mode", "switch")
		return nil
	}
	var scr Screen
	switch route {
	case RouteHome:
		scr = newHomeScreen()
	case RouteBookPage:
		scr = newBookScreen(a.ctx, a.cfg.Defaults(), a.services.Stations, a.today(), a.log)
	default:
		a.log.Debug("navigate to unknown route ignored", "route", route)
		return nil
	}
	a.screens.Push(scr)
	a.log.Debug("navigate", "route", route, "mode", "push")
	return scr.Init()
}

// Back pops the top screen. The first screen is never popped.
func (a *App) Back() {
	if a.screens.Len() <= 1 {
		return
	}
	left := a.screens.Pop()
	a.log.Debug("back", "from", left.Route(), "to", a.Current())
}

func (a *App) today() time.Time {
	t := a.now().In(a.tz)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, a.tz)
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = m.Width, m.Height
		return a, nil
	case tea.KeyMsg:
		if key.Matches(m, quitKey) {
			return a, tea.Quit
		}
	case navigateMsg:
		return a, a.NavigateTo(m.Route)
	case backMsg:
		a.Back()
		return a, nil
	}
	top := a.screens.Top()
	if top == nil {
		return a, nil
	}
	next, cmd := top.Update(msg)
	a.screens.Replace(next)
	return a, cmd
}

func (a *App) View() string {
	top := a.screens.Top()
	if top == nil {
		return ""
	}
	header := headerStyle.Render(string(top.Route()))
	height := a.height
	if height > 0 {
		height -= lipgloss.Height(header)
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, top.View(a.width, height))
}

// messages
type navigateMsg struct{ Route Route }

type backMsg struct{}

// datePickedMsg is the picker's result. A nil Date means cancelled.
type datePickedMsg struct{ Date *time.Time }

// stationResolvedMsg carries the lookup for the text Query typed into
// Source. Station is nil when nothing matched.
type stationResolvedMsg struct {
	Source  booking.TextField
	Query   string
	Station *repository.Station
}

type errMsg struct{ error }

func navigate(route Route) tea.Cmd {
	return func() tea.Msg { return navigateMsg{Route: route} }
}

func back() tea.Msg { return backMsg{} }
