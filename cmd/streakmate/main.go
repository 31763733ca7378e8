package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/streakmate/streakmate/internal/advice"
	"github.com/streakmate/streakmate/internal/cli"
	"github.com/streakmate/streakmate/internal/cli/system"
	"github.com/streakmate/streakmate/internal/constants"
	"github.com/streakmate/streakmate/internal/errors"
	"github.com/streakmate/streakmate/internal/keyring"
	"github.com/streakmate/streakmate/internal/logger"
	"github.com/streakmate/streakmate/internal/storage"
	"github.com/streakmate/streakmate/internal/tracker"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Storage path or PostgreSQL connection string. A .db path uses SQLite, a directory uses JSON files, 'keyring' reads a connection string from the OS keyring. PostgreSQL credentials must NOT be embedded in the connection string." default:"${config_path}"`
	Debug   bool   `help:"Enable debug logging to stderr."`

	Init      system.InitCmd   `cmd:"" help:"Initialize storage and seed the demonstration data."`
	Doctor    system.DoctorCmd `cmd:"" help:"Run health checks and diagnostics."`
	Tui       system.TuiCmd    `cmd:"" help:"Launch the interactive dashboard." default:"1"`
	Dashboard cli.DashboardCmd `cmd:"" help:"Print a static progress dashboard."`
	Habit     cli.HabitCmd     `cmd:"" help:"Manage habits and streaks."`
	Task      cli.TaskCmd      `cmd:"" help:"Manage tasks."`
	Journal   cli.JournalCmd   `cmd:"" help:"Manage diary entries."`
	Book      cli.BookCmd      `cmd:"" help:"Manage the reading library."`
	Profile   cli.ProfileCmd   `cmd:"" help:"Show or update the user profile."`
	Keyring   struct {
		Set    system.KeyringSetCmd    `cmd:"" help:"Store a connection string in the OS keyring."`
		Get    system.KeyringGetCmd    `cmd:"" help:"Show the stored connection string."`
		Delete system.KeyringDeleteCmd `cmd:"" help:"Remove the stored connection string."`
	} `cmd:"" help:"Manage database credentials in the OS keyring."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Habit streaks, tasks, journal, and reading tracker"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version":     constants.Version,
			"config_path": constants.DefaultConfigPath,
		},
	)

	config := expandHome(CLI.Config)
	store, err := selectStore(config)
	if err != nil {
		errors.Fatal(err)
	}

	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: configDir(config)}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
	}

	appCtx := &cli.Context{
		App:     tracker.New(store),
		Store:   store,
		Advisor: advice.NewStatic(nil),
	}

	// Every command except init expects loaded state; init seeds its own.
	if ctx.Selected() != nil && ctx.Selected().Name != "init" {
		if err := appCtx.App.Load(); err != nil {
			errors.Fatal(err)
		}
	}
	defer store.Close()

	errors.Fatal(ctx.Run(appCtx))
}

// selectStore picks a storage backend from the config value's shape.
func selectStore(config string) (storage.Provider, error) {
	switch {
	case strings.HasPrefix(config, "postgres://") || strings.HasPrefix(config, "postgresql://"):
		if storage.HasEmbeddedCredentials(config) {
			return nil, fmt.Errorf("PostgreSQL connection strings with embedded credentials are not allowed; store the full string with '%s keyring set' and run with --config keyring", constants.AppName)
		}
		return storage.NewPostgresStore(config), nil

	case config == "keyring":
		connStr, err := keyring.GetConnectionString()
		if err != nil {
			return nil, fmt.Errorf("failed to read connection string from keyring: %w", err)
		}
		return storage.NewPostgresStore(connStr), nil

	case strings.HasSuffix(config, ".db"):
		return storage.NewSQLiteStore(config), nil

	default:
		return storage.NewJSONStore(config), nil
	}
}

func expandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}

// configDir returns the directory logs live next to. Connection strings fall
// back to the default config directory.
func configDir(config string) string {
	if strings.HasPrefix(config, "postgres") || config == "keyring" {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, ".config", constants.AppName)
		}
		return "."
	}
	if strings.HasSuffix(config, ".db") {
		return filepath.Dir(config)
	}
	return config
}
