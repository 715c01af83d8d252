package booking

import "time"

// TextField names a free-text field of the booking form.
type TextField string

const (
	FieldOrigin             TextField = "origin"
	FieldOriginStation      TextField = "originStation"
	FieldDestination        TextField = "destination"
	FieldDestinationStation TextField = "destinationStation"
	FieldTravellers         TextField = "travellers"
	FieldClass              TextField = "class"
)

// DateField names one of the two date fields; DateNone means no target.
type DateField string

const (
	DateNone      DateField = ""
	DateDeparture DateField = "departureDate"
	DateReturn    DateField = "returnDate"
)

// Form is the booking form as the user sees it. Nothing is validated:
// origin may equal destination and the return may precede departure.
type Form struct {
	Origin             string
	OriginStation      string
	Destination        string
	DestinationStation string
	DepartureDate      time.Time
	ReturnDate         time.Time
	Travellers         string
	Class              string
}

// Defaults seeds a new form and its recent-search list.
type Defaults struct {
	OriginStation      string
	DestinationStation string
	Travellers         string
	Class              string
	DateLayout         string
	RecentLimit        int
}

// DefaultDefaults returns the values a fresh screen starts with.
func DefaultDefaults() Defaults {
	return Defaults{
		OriginStation:      "Dehradun Railway Station",
		DestinationStation: "Pune Railway Station",
		Travellers:         "1 Adult",
		Class:              "3rd AC",
		DateLayout:         "1/2/2006",
		RecentLimit:        5,
	}
}

// NewForm builds an empty-route form with both dates set to today.
func NewForm(d Defaults, today time.Time) Form {
	return Form{
		OriginStation:      d.OriginStation,
		DestinationStation: d.DestinationStation,
		DepartureDate:      today,
		ReturnDate:         today,
		Travellers:         d.Travellers,
		Class:              d.Class,
	}
}

// Text returns the current value of a text field.
func (f Form) Text(field TextField) string {
	switch field {
	case FieldOrigin:
		return f.Origin
	case FieldOriginStation:
		return f.OriginStation
	case FieldDestination:
		return f.Destination
	case FieldDestinationStation:
		return f.DestinationStation
	case FieldTravellers:
		return f.Travellers
	case FieldClass:
		return f.Class
	}
	return ""
}

// Date returns the current value of a date field.
func (f Form) Date(field DateField) time.Time {
	if field == DateReturn {
		return f.ReturnDate
	}
	return f.DepartureDate
}

// SetText overwrites one text field. Unknown fields leave the form as is.
func (f Form) SetText(field TextField, value string) Form {
	switch field {
	case FieldOrigin:
		f.Origin = value
	case FieldOriginStation:
		f.OriginStation = value
	case FieldDestination:
		f.Destination = value
	case FieldDestinationStation:
		f.DestinationStation = value
	case FieldTravellers:
		f.Travellers = value
	case FieldClass:
		f.Class = value
	}
	return f
}

// SetDate overwrites one date field.
func (f Form) SetDate(field DateField, value time.Time) Form {
	switch field {
	case DateDeparture:
		f.DepartureDate = value
	case DateReturn:
		f.ReturnDate = value
	}
	return f
}

// Swap exchanges origin and destination together with their station labels.
func (f Form) Swap() Form {
	f.Origin, f.Destination = f.Destination, f.Origin
	f.OriginStation, f.DestinationStation = f.DestinationStation, f.OriginStation
	return f
}
