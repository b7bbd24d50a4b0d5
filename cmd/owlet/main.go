package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"owlet/core"
	"owlet/internal/config"
	"owlet/internal/database"
	"owlet/internal/database/repository"
	"owlet/screens"
	"owlet/tabs"
)

var version = "dev"

var rootCmd = &cobra.Command{
	Use:          "owlet",
	Short:        "Little learning games in the terminal",
	Long:         `owlet is a terminal playground of counting, letter and color games for small children, with stars to collect along the way.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI()
	},
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of owlet",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("owlet version %s\n", version)
		},
	}
}

func newConfigInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config-init",
		Short: "Write the current configuration to disk",
		Long:  `Writes the effective configuration (defaults merged with any existing file and environment overrides) to the config file, so it can be edited by hand.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if err := config.Save(cfg); err != nil {
				return err
			}
			fmt.Println("config written")
			return nil
		},
	}
}

func newResetProgressCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset-progress",
		Short: "Wipe all stars and round history",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			db, err := database.Open(cfg.Database.Path)
			if err != nil {
				return err
			}
			defer db.Close()
			if err := database.RunMigrations(db); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			if err := repository.NewProgressRepo(db).ResetAll(cmd.Context()); err != nil {
				return err
			}
			fmt.Println("progress reset")
			return nil
		},
	}
}

func runTUI() error {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		return fmt.Errorf("mkdir db dir: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(cfg.Log.Path), 0o755); err != nil {
		return fmt.Errorf("mkdir log dir: %w", err)
	}

	// The TUI owns stdout, so logs go to a file.
	logFile, err := os.OpenFile(cfg.Log.Path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer logFile.Close()
	level, lerr := log.ParseLevel(cfg.Log.Level)
	if lerr != nil {
		level = log.InfoLevel
	}
	logger := log.NewWithOptions(logFile, log.Options{
		ReportTimestamp: true,
		Level:           level,
	})
	log.SetDefault(logger)
	log.Info("starting owlet", "version", version, "db", cfg.Database.Path)

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	if err := database.SeedDefaults(ctx, db, cfg.UI.Difficulty, cfg.UI.Feedback); err != nil {
		return fmt.Errorf("seed defaults: %w", err)
	}

	settings, err := repository.NewSettingsRepo(db).All(ctx)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}
	prefs := core.Prefs{
		Difficulty: cfg.UI.Difficulty,
		Feedback:   cfg.UI.Feedback,
	}
	if v, ok := settings["difficulty"]; ok && v != "" {
		prefs.Difficulty = v
	}
	if v, ok := settings["feedback"]; ok && v != "" {
		prefs.Feedback = v
	}

	keys := core.NewKeyRegistry(core.DefaultKeyBindings())
	commands := core.NewCommandRegistry(paletteCommands())

	model := core.NewModel(
		[]core.Tab{tabs.NewLearnTab(), tabs.NewProgressTab(), tabs.NewSettingsTab()},
		keys,
		commands,
		db,
		prefs,
	)
	model.OpenPaletteModal = func(m *core.Model, scope string) core.Screen {
		return screens.NewPaletteScreen(m, scope)
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Error("tui exited", "err", err)
		return err
	}
	return nil
}

func main() {
	rootCmd.Version = version
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newConfigInitCmd())
	rootCmd.AddCommand(newResetProgressCmd())
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
