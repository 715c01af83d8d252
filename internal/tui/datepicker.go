package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// DatePicker is a month-calendar modal. It starts on the field's current
// value and answers with a single datePickedMsg: the chosen day on
// confirm, nil on cancel.
type DatePicker struct {
	title string
	value time.Time
	keys  pickerKeyMap
	help  help.Model
}

func NewDatePicker(title string, current time.Time) DatePicker {
	return DatePicker{title: title, value: current, keys: newPickerKeyMap(), help: help.New()}
}

// Value is the day currently highlighted.
func (p DatePicker) Value() time.Time { return p.value }

func (p DatePicker) Update(msg tea.KeyMsg) (DatePicker, tea.Cmd) {
	switch {
	case key.Matches(msg, p.keys.PrevDay):
		p.value = p.value.AddDate(0, 0, -1)
	case key.Matches(msg, p.keys.NextDay):
		p.value = p.value.AddDate(0, 0, 1)
	case key.Matches(msg, p.keys.PrevWeek):
		p.value = p.value.AddDate(0, 0, -7)
	case key.Matches(msg, p.keys.NextWeek):
		p.value = p.value.AddDate(0, 0, 7)
	case key.Matches(msg, p.keys.PrevMonth):
		p.value = addMonthsClamped(p.value, -1)
	case key.Matches(msg, p.keys.NextMonth):
		p.value = addMonthsClamped(p.value, 1)
	case key.Matches(msg, p.keys.Confirm):
		chosen := p.value
		return p, func() tea.Msg { return datePickedMsg{Date: &chosen} }
	case key.Matches(msg, p.keys.Cancel):
		return p, func() tea.Msg { return datePickedMsg{} }
	}
	return p, nil
}

// addMonthsClamped moves by whole months, keeping the day within the
// target month (Jan 31 + 1 month is the last day of February).
func addMonthsClamped(t time.Time, months int) time.Time {
	first := time.Date(t.Year(), t.Month()+time.Month(months), 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	last := first.AddDate(0, 1, -1).Day()
	day := t.Day()
	if day > last {
		day = last
	}
	return first.AddDate(0, 0, day-1)
}

func (p DatePicker) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(p.title))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Bold(true).Render(p.value.Format("January 2006")))
	b.WriteString("\n")
	for _, d := range []string{"Mo", "Tu", "We", "Th", "Fr", "Sa", "Su"} {
		b.WriteString(pickerDayStyle.Render(d))
	}
	b.WriteString("\n")

	first := time.Date(p.value.Year(), p.value.Month(), 1, 0, 0, 0, 0, p.value.Location())
	offset := (int(first.Weekday()) + 6) % 7 // Monday first
	days := first.AddDate(0, 1, -1).Day()
	col := 0
	for i := 0; i < offset; i++ {
		b.WriteString(pickerDayStyle.Render(""))
		col++
	}
	for day := 1; day <= days; day++ {
		style := pickerDayStyle
		if day == p.value.Day() {
			style = pickerTodayStyle
		}
		b.WriteString(style.Render(fmt.Sprintf("%d", day)))
		col++
		if col == 7 && day != days {
			b.WriteString("\n")
			col = 0
		}
	}
	b.WriteString("\n\n")
	b.WriteString(p.help.View(p.keys))
	return modalStyle.Render(b.String())
}
