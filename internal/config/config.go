package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/jask/trainbook/internal/booking"
)

// Config holds application configuration.
type Config struct {
	UI      UIConfig
	Booking BookingConfig
	Log     LogConfig
}

// UIConfig holds presentation settings.
type UIConfig struct {
	DateFormat string `mapstructure:"date_format"`
	Timezone   string
}

// BookingConfig holds the values a new booking form starts with.
type BookingConfig struct {
	OriginStation      string `mapstructure:"origin_station"`
	DestinationStation string `mapstructure:"destination_station"`
	Travellers         string
	Class              string
	RecentLimit        int `mapstructure:"recent_limit"`
}

// LogConfig holds log file settings.
type LogConfig struct {
	Path  string
	Level string
}

// Defaults converts the booking settings into form defaults.
func (c Config) Defaults() booking.Defaults {
	return booking.Defaults{
		OriginStation:      c.Booking.OriginStation,
		DestinationStation: c.Booking.DestinationStation,
		Travellers:         c.Booking.Travellers,
		Class:              c.Booking.Class,
		DateLayout:         c.UI.DateFormat,
		RecentLimit:        c.Booking.RecentLimit,
	}
}

// Load reads configuration from file and env. Env var overrides use prefix TRAINBOOK_.
// An explicit path wins over TRAINBOOK_CONFIG.
func Load(path string) (Config, error) {
	v := viper.New()

	d := booking.DefaultDefaults()
	home := os.Getenv("HOME")
	v.SetDefault("ui.date_format", d.DateLayout)
	v.SetDefault("ui.timezone", "Asia/Kolkata")
	v.SetDefault("booking.origin_station", d.OriginStation)
	v.SetDefault("booking.destination_station", d.DestinationStation)
	v.SetDefault("booking.travellers", d.Travellers)
	v.SetDefault("booking.class", d.Class)
	v.SetDefault("booking.recent_limit", d.RecentLimit)
	v.SetDefault("log.path", filepath.Join(home, ".local", "state", "trainbook", "trainbook.log"))
	v.SetDefault("log.level", "info")

	v.SetConfigType("toml")

	if path == "" {
		path = os.Getenv("TRAINBOOK_CONFIG")
	}
	explicit := path != ""
	if explicit {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Join(home, ".config", "trainbook"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("TRAINBOOK")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case explicit:
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		case !errors.As(err, &notFound):
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.Booking.RecentLimit <= 0 {
		return Config{}, fmt.Errorf("booking.recent_limit must be positive, got %d", c.Booking.RecentLimit)
	}
	return c, nil
}
