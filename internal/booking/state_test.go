package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var today = time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)

func newTestState() State {
	return NewState(DefaultDefaults(), today)
}

func TestNewStateDefaults(t *testing.T) {
	t.Parallel()

	s := newTestState()
	require.Equal(t, "", s.Form.Origin)
	require.Equal(t, "Dehradun Railway Station", s.Form.OriginStation)
	require.Equal(t, "Pune Railway Station", s.Form.DestinationStation)
	require.Equal(t, "1 Adult", s.Form.Travellers)
	require.Equal(t, "3rd AC", s.Form.Class)
	require.Equal(t, today, s.Form.DepartureDate)
	require.Equal(t, today, s.Form.ReturnDate)
	require.Equal(t, TabSearch, s.UI.ActiveTab)
	require.False(t, s.UI.ShowDatePicker)
	require.Equal(t, DateNone, s.UI.DateTarget)
	require.Len(t, s.Recent, 2)
	require.Equal(t, "Kings Cross, London, UK", s.Recent[0].Origin)
	require.Equal(t, s.Recent[0], s.Recent[1])
}

func TestSetTextLastWriteWins(t *testing.T) {
	t.Parallel()

	s := newTestState()
	writes := []struct {
		field TextField
		value string
	}{
		{FieldOrigin, "Dehradun"},
		{FieldDestination, "Pune"},
		{FieldOrigin, "Delhi"},
		{FieldClass, "Sleeper"},
		{FieldTravellers, "2 Adults"},
		{FieldClass, "2nd AC"},
		{FieldOriginStation, "New Delhi"},
		{FieldDestinationStation, ""},
	}
	want := map[TextField]string{}
	for _, w := range writes {
		s = s.SetText(w.field, w.value)
		want[w.field] = w.value
	}
	for field, value := range want {
		require.Equal(t, value, s.Form.Text(field), "field %s", field)
	}
}

func TestSetTextDoesNotMutateReceiver(t *testing.T) {
	t.Parallel()

	s := newTestState()
	next := s.SetText(FieldOrigin, "Pune")
	require.Equal(t, "", s.Form.Origin)
	require.Equal(t, "Pune", next.Form.Origin)
}

func TestSetTextAcceptsAnything(t *testing.T) {
	t.Parallel()

	s := newTestState().
		SetText(FieldOrigin, "Pune").
		SetText(FieldDestination, "Pune")
	require.Equal(t, s.Form.Origin, s.Form.Destination)

	s = s.SetText(FieldOrigin, "")
	require.Equal(t, "", s.Form.Origin)
}

func TestSetDateAllowsReturnBeforeDeparture(t *testing.T) {
	t.Parallel()

	s := newTestState().
		SetDate(DateDeparture, today.AddDate(0, 0, 10)).
		SetDate(DateReturn, today.AddDate(0, 0, -3))
	require.True(t, s.Form.ReturnDate.Before(s.Form.DepartureDate))
}

func TestSwapIsItsOwnInverse(t *testing.T) {
	t.Parallel()

	s := newTestState().
		SetText(FieldOrigin, "Dehradun").
		SetText(FieldDestination, "Pune")

	once := s.Swap()
	require.Equal(t, "Pune", once.Form.Origin)
	require.Equal(t, "Dehradun", once.Form.Destination)
	require.Equal(t, "Pune Railway Station", once.Form.OriginStation)
	require.Equal(t, "Dehradun Railway Station", once.Form.DestinationStation)

	twice := once.Swap()
	require.Equal(t, s.Form, twice.Form)
}

func TestPickDate(t *testing.T) {
	t.Parallel()

	chosen := today.AddDate(0, 1, 0)

	t.Run("chosen date lands in target", func(t *testing.T) {
		s := newTestState().OpenDatePicker(DateReturn)
		require.True(t, s.UI.ShowDatePicker)
		require.Equal(t, DateReturn, s.UI.DateTarget)

		s = s.PickDate(s.UI.DateTarget, &chosen)
		require.False(t, s.UI.ShowDatePicker)
		require.Equal(t, chosen, s.Form.ReturnDate)
		require.Equal(t, today, s.Form.DepartureDate)
	})

	t.Run("cancel leaves dates unchanged", func(t *testing.T) {
		before := newTestState().SetDate(DateDeparture, chosen)
		s := before.OpenDatePicker(DateDeparture).PickDate(DateDeparture, nil)
		require.False(t, s.UI.ShowDatePicker)
		require.Equal(t, before.Form.DepartureDate, s.Form.DepartureDate)
		require.Equal(t, before.Form.ReturnDate, s.Form.ReturnDate)
	})

	t.Run("no target only closes", func(t *testing.T) {
		before := newTestState()
		s := before.PickDate(DateNone, &chosen)
		require.Equal(t, before.Form, s.Form)
	})
}

func TestSubmitSearchCapsRecentList(t *testing.T) {
	t.Parallel()

	for n := 0; n <= 7; n++ {
		s := newTestState()
		for i := 0; i < n; i++ {
			s = s.SetText(FieldOrigin, string(rune('A'+i))).SubmitSearch()
		}
		want := n + 2
		if want > 5 {
			want = 5
		}
		require.Len(t, s.Recent, want, "after %d searches", n)
		if n > 0 {
			require.Equal(t, string(rune('A'+n-1)), s.Recent[0].Origin, "newest first")
		}
		if n >= 5 {
			for _, r := range s.Recent {
				require.NotEqual(t, "Kings Cross, London, UK", r.Origin, "seed entries evicted")
			}
		}
	}
}

func TestSubmitSearchKeepsFormAndFormatsDate(t *testing.T) {
	t.Parallel()

	s := newTestState().
		SetText(FieldOrigin, "Dehradun").
		SetText(FieldDestination, "Pune").
		SetDate(DateDeparture, time.Date(2026, 12, 3, 0, 0, 0, 0, time.UTC))
	next := s.SubmitSearch()

	require.Equal(t, s.Form, next.Form)
	require.Equal(t, RecentSearch{Origin: "Dehradun", Destination: "Pune", DateLabel: "12/3/2026"}, next.Recent[0])
	require.Len(t, s.Recent, 2, "receiver list untouched")
}

func TestSubmitSearchCustomLimitAndLayout(t *testing.T) {
	t.Parallel()

	d := DefaultDefaults()
	d.RecentLimit = 1
	d.DateLayout = "Mon 2 January"
	s := NewState(d, today).SubmitSearch()
	require.Len(t, s.Recent, 1)
	require.Equal(t, "Mon 15 June", s.Recent[0].DateLabel)
}

func TestSelectTabIdempotent(t *testing.T) {
	t.Parallel()

	s := newTestState()
	for _, tab := range Tabs {
		s = s.SelectTab(tab)
		require.Equal(t, tab, s.UI.ActiveTab)
		again := s.SelectTab(tab)
		require.Equal(t, s.UI, again.UI)
	}
}

func TestTravellerAndClassFlagsStayRaised(t *testing.T) {
	t.Parallel()

	s := newTestState()
	require.Equal(t, "1 Adult", s.Form.Travellers)
	require.Equal(t, "3rd AC", s.Form.Class)

	s = s.OpenTravellerModal()
	require.True(t, s.UI.ShowTravellerModal)

	s = s.SelectTab(TabChat).SelectTab(TabSearch).SubmitSearch().Swap().
		OpenDatePicker(DateDeparture).PickDate(DateDeparture, nil).
		OpenClassModal()
	require.True(t, s.UI.ShowTravellerModal)
	require.True(t, s.UI.ShowClassModal)
	require.Equal(t, "1 Adult", s.Form.Travellers)
	require.Equal(t, "3rd AC", s.Form.Class)

	s = s.ResetModalFlags()
	require.False(t, s.UI.ShowTravellerModal)
	require.False(t, s.UI.ShowClassModal)
}
