package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jask/propcompare/internal/config"
	"github.com/jask/propcompare/internal/database"
	"github.com/jask/propcompare/internal/database/repository"
	"github.com/jask/propcompare/internal/logging"
	"github.com/jask/propcompare/internal/prefs"
	"github.com/jask/propcompare/internal/tui"
)

// env is what every command shares once the root pre-run has loaded config.
type env struct {
	cfg     config.Config
	logger  *zap.Logger
	verbose bool
}

func newRootCmd() *cobra.Command {
	e := &env{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "propcompare",
		Short: "Compare property listings side by side",
		Long: `propcompare compares up to three property listings attribute by attribute.

Run without arguments to open the comparison screen.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if e.verbose {
				cfg.Log.Level = "debug"
			}
			logger, err := logging.New(cfg.Log)
			if err != nil {
				return err
			}
			e.cfg, e.logger = cfg, logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = e.logger.Sync()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return e.runTUI(cmd.Context())
		},
	}
	root.PersistentFlags().BoolVarP(&e.verbose, "verbose", "v", false, "Enable debug logging")

	root.AddCommand(newCatalogCmd(e))
	root.AddCommand(newMortgageCmd(e))
	root.AddCommand(newPredictCmd(e))
	root.AddCommand(newConfigCmd(e))
	return root
}

// openStore migrates and seeds the database, then returns the property repo.
func (e *env) openStore(ctx context.Context) (*sql.DB, *repository.PropertyRepo, error) {
	path := e.cfg.Database.Path
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("mkdir db dir: %w", err)
	}
	if err := database.RunMigrations(path); err != nil {
		return nil, nil, fmt.Errorf("migrate: %w", err)
	}
	db, err := database.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open db: %w", err)
	}
	if err := database.SeedDefaults(ctx, db); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("seed defaults: %w", err)
	}
	e.logger.Debug("database ready", zap.String("path", path))
	return db, repository.NewPropertyRepo(db), nil
}

func (e *env) runTUI(ctx context.Context) error {
	db, repo, err := e.openStore(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	app := tui.New(ctx, e.cfg, repo, e.logger)
	if e.cfg.UI.PrefsPath != "" {
		app = app.WithPrefs(prefs.NewStore(e.cfg.UI.PrefsPath))
	}
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
