package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"

	"github.com/jask/trainbook/internal/config"
	"github.com/jask/trainbook/internal/database"
	"github.com/jask/trainbook/internal/database/repository"
	"github.com/jask/trainbook/internal/service"
	"github.com/jask/trainbook/internal/tui"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	var configPath, logPath string
	var debug bool

	flagSet := pflag.NewFlagSet("trainbook", pflag.ContinueOnError)
	flagSet.StringVar(&configPath, "config", "", "path to config.toml (default: $TRAINBOOK_CONFIG or ~/.config/trainbook/config.toml)")
	flagSet.StringVar(&logPath, "log-file", "", "write log records to this file (default: log.path from config)")
	flagSet.BoolVar(&debug, "debug", false, "log at debug level")
	flagSet.BoolP("help", "h", false, "show help")

	if err := flagSet.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			printHelp(flagSet)
			return nil
		}
		return err
	}
	if help, _ := flagSet.GetBool("help"); help {
		printHelp(flagSet)
		return nil
	}
	if rest := flagSet.Args(); len(rest) > 0 {
		return fmt.Errorf("unexpected argument: %s", rest[0])
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if logPath != "" {
		cfg.Log.Path = logPath
	}
	if debug {
		cfg.Log.Level = "debug"
	}

	logger, closeLog, err := openLog(cfg.Log)
	if err != nil {
		return fmt.Errorf("log: %w", err)
	}
	defer closeLog()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := database.OpenCatalog(ctx, database.MemoryName)
	if err != nil {
		return fmt.Errorf("open station catalog: %w", err)
	}
	defer db.Close()

	resolver := &service.StationResolver{Stations: repository.NewStationRepo(db)}

	loc, err := time.LoadLocation(cfg.UI.Timezone)
	if err != nil {
		logger.Warn("using local timezone due to load failure", "timezone", cfg.UI.Timezone, "err", err)
		loc = time.Local
	}

	logger.Info("starting", "config", configPath, "timezone", loc.String())
	p := tea.NewProgram(tui.New(ctx, cfg, tui.Services{Stations: resolver}, loc, logger), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	logger.Info("exited")
	return nil
}

// openLog sends slog records to the log file; the terminal belongs to the UI.
func openLog(c config.LogConfig) (*slog.Logger, func(), error) {
	if err := os.MkdirAll(filepath.Dir(c.Path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("mkdir log dir: %w", err)
	}
	f, err := tea.LogToFile(c.Path, "trainbook")
	if err != nil {
		return nil, nil, err
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(c.Level))); err != nil {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
	return logger, func() { _ = f.Close() }, nil
}

func printHelp(flagSet *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, `trainbook: search form for train tickets

Usage: trainbook [flags]

Flags:
%s`, flagSet.FlagUsages())
}
