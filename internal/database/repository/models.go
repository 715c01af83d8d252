package repository

// Station represents a station row.
type Station struct {
	ID        string
	Code      string
	Name      string
	City      string
	Region    string
	SortOrder int
}

// Label is the text shown under a From/To input.
func (s Station) Label() string {
	return s.Name
}
