package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("TRAINBOOK_CONFIG", "")
	return home
}

func TestLoadDefaults(t *testing.T) {
	home := isolate(t)

	c, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "1/2/2006", c.UI.DateFormat)
	require.Equal(t, "Asia/Kolkata", c.UI.Timezone)
	require.Equal(t, "Dehradun Railway Station", c.Booking.OriginStation)
	require.Equal(t, "Pune Railway Station", c.Booking.DestinationStation)
	require.Equal(t, "1 Adult", c.Booking.Travellers)
	require.Equal(t, "3rd AC", c.Booking.Class)
	require.Equal(t, 5, c.Booking.RecentLimit)
	require.Equal(t, filepath.Join(home, ".local", "state", "trainbook", "trainbook.log"), c.Log.Path)
	require.Equal(t, "info", c.Log.Level)

	d := c.Defaults()
	require.Equal(t, c.UI.DateFormat, d.DateLayout)
	require.Equal(t, c.Booking.RecentLimit, d.RecentLimit)
}

func TestLoadFileAndEnv(t *testing.T) {
	home := isolate(t)

	dir := filepath.Join(home, ".config", "trainbook")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	body := "[booking]\nclass = \"Sleeper\"\nrecent_limit = 3\n\n[ui]\ndate_format = \"02 Jan 2006\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(body), 0o600))

	t.Setenv("TRAINBOOK_BOOKING_TRAVELLERS", "2 Adults")

	c, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "Sleeper", c.Booking.Class)
	require.Equal(t, 3, c.Booking.RecentLimit)
	require.Equal(t, "02 Jan 2006", c.UI.DateFormat)
	require.Equal(t, "2 Adults", c.Booking.Travellers)
	require.Equal(t, "Pune Railway Station", c.Booking.DestinationStation)
}

func TestLoadExplicitPath(t *testing.T) {
	home := isolate(t)

	path := filepath.Join(home, "custom.toml")
	require.NoError(t, os.WriteFile(path, []byte("[ui]\ntimezone = \"UTC\"\n"), 0o600))

	c, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "UTC", c.UI.Timezone)

	_, err = Load(filepath.Join(home, "missing.toml"))
	require.Error(t, err)
}

func TestLoadRejectsNonPositiveLimit(t *testing.T) {
	isolate(t)
	t.Setenv("TRAINBOOK_BOOKING_RECENT_LIMIT", "0")

	_, err := Load("")
	require.Error(t, err)
}
