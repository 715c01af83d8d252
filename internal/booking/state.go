package booking

import "time"

// Tab is the content mode of the booking screen.
type Tab string

const (
	TabSearch   Tab = "search"
	TabBookings Tab = "bookings"
	TabChat     Tab = "chat"
	TabProfile  Tab = "profile"
)

// Tabs lists every tab in tab-bar order.
var Tabs = []Tab{TabSearch, TabBookings, TabChat, TabProfile}

// UI holds ephemeral screen flags.
type UI struct {
	ActiveTab          Tab
	ShowDatePicker     bool
	DateTarget         DateField
	ShowTravellerModal bool
	ShowClassModal     bool
}

// State is everything the booking screen owns. Every method returns an
// updated copy and leaves the receiver untouched.
type State struct {
	Form   Form
	Recent []RecentSearch
	UI     UI

	dateLayout  string
	recentLimit int
}

// NewState builds the state a freshly mounted screen starts with.
func NewState(d Defaults, today time.Time) State {
	layout := d.DateLayout
	if layout == "" {
		layout = DefaultDefaults().DateLayout
	}
	limit := d.RecentLimit
	if limit <= 0 {
		limit = DefaultDefaults().RecentLimit
	}
	return State{
		Form:        NewForm(d, today),
		Recent:      SeedRecent(),
		UI:          UI{ActiveTab: TabSearch},
		dateLayout:  layout,
		recentLimit: limit,
	}
}

// FormatDate renders t the way recent searches and the form show dates.
func (s State) FormatDate(t time.Time) string { return t.Format(s.dateLayout) }

func (s State) SetText(field TextField, value string) State {
	s.Form = s.Form.SetText(field, value)
	return s
}

func (s State) SetDate(field DateField, value time.Time) State {
	s.Form = s.Form.SetDate(field, value)
	return s
}

func (s State) Swap() State {
	s.Form = s.Form.Swap()
	return s
}

// OpenDatePicker shows the picker aimed at field.
func (s State) OpenDatePicker(field DateField) State {
	s.UI.DateTarget = field
	s.UI.ShowDatePicker = true
	return s
}

// PickDate closes the picker. A nil date is a cancel and leaves the
// form unchanged; otherwise the date lands in target.
func (s State) PickDate(target DateField, date *time.Time) State {
	s.UI.ShowDatePicker = false
	if date != nil {
		s.Form = s.Form.SetDate(target, *date)
	}
	return s
}

// SubmitSearch records the current route as the newest recent search.
// The form is kept and no search is performed.
func (s State) SubmitSearch() State {
	entry := RecentSearch{
		Origin:      s.Form.Origin,
		Destination: s.Form.Destination,
		DateLabel:   s.FormatDate(s.Form.DepartureDate),
	}
	s.Recent = prependRecent(s.Recent, entry, s.recentLimit)
	return s
}

func (s State) SelectTab(tab Tab) State {
	s.UI.ActiveTab = tab
	return s
}

// OpenTravellerModal raises the traveller flag. No modal consumes it.
func (s State) OpenTravellerModal() State {
	s.UI.ShowTravellerModal = true
	return s
}

// OpenClassModal raises the class flag. No modal consumes it.
func (s State) OpenClassModal() State {
	s.UI.ShowClassModal = true
	return s
}

// ResetModalFlags clears the traveller and class flags. Nothing in the
// screen calls it; it is the only way back to false.
func (s State) ResetModalFlags() State {
	s.UI.ShowTravellerModal = false
	s.UI.ShowClassModal = false
	return s
}
