package cli

import (
	"fmt"
	"strings"

	"shoplist/internal/config"
	"shoplist/internal/format"
	"shoplist/internal/logger"
	"shoplist/internal/store"
	"shoplist/internal/tui"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type App struct {
	EnvFile  string
	LogFile  string
	LogLevel string
	Glyphs   string
	NoColor  bool
	Print    string
	Pretty   bool
	Items    []string

	// run shows the list screen; tests replace it.
	run func(*store.State, tui.Options) error
}

func NewRootCmd() *cobra.Command {
	return newRootCmd(&App{run: tui.Run})
}

func newRootCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "shoplist",
		Short:        "A single-screen shopping list for the terminal",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		Example: strings.TrimSpace(`
  # Start with an empty list
  shoplist

  # Start with a few items already on the list
  shoplist --item Milk:2 --item Bread

  # Print the list as JSON when you quit
  shoplist --print json --pretty
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, app)
		},
	}

	cmd.PersistentFlags().StringVar(&app.EnvFile, "env-file", "", "Load environment variables from this file (default: ./.env when present)")
	cmd.Flags().StringVar(&app.LogFile, "log-file", "", "Append JSON logs to this file (env SHOPLIST_LOG_FILE)")
	cmd.Flags().StringVar(&app.LogLevel, "log-level", "", "Log level: debug|info|warn|error (env SHOPLIST_LOG_LEVEL)")
	cmd.Flags().StringVar(&app.Glyphs, "glyphs", "", "Row glyphs: unicode|ascii (env SHOPLIST_GLYPHS)")
	cmd.Flags().BoolVar(&app.NoColor, "no-color", false, "Disable colors (env NO_COLOR)")
	cmd.Flags().StringVar(&app.Print, "print", "", "Print the list on exit: json|text (env SHOPLIST_PRINT)")
	cmd.Flags().BoolVar(&app.Pretty, "pretty", false, "Pretty-print JSON output")
	cmd.Flags().StringArrayVar(&app.Items, "item", nil, "Start with this item, as name or name:quantity (repeatable)")

	cmd.AddCommand(newDocsCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func runList(cmd *cobra.Command, app *App) error {
	cfg, err := loadConfig(cmd, app)
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	state := store.NewState(logger.Named(log, "store"))
	for _, spec := range app.Items {
		name, qty, err := parseItemSpec(spec)
		if err != nil {
			return err
		}
		if _, err := state.Seed(name, qty); err != nil {
			return fmt.Errorf("--item %q: %w", spec, err)
		}
	}
	log.Debug("starting", zap.Int("seeded", state.Len()), zap.String("glyphs", cfg.UI.Glyphs))

	if err := app.run(state, tui.Options{
		Glyphs:  cfg.UI.Glyphs,
		NoColor: cfg.UI.NoColor,
		Log:     logger.Named(log, "tui"),
	}); err != nil {
		log.Error("tui failed", zap.Error(err))
		return err
	}

	if cfg.Output.Print == "" {
		return nil
	}
	return format.WriteItems(cmd.OutOrStdout(), state.Items(), cfg.Output.Print, cfg.Output.Pretty)
}

// loadConfig reads env configuration and applies explicitly set flags on top.
func loadConfig(cmd *cobra.Command, app *App) (*config.Config, error) {
	cfg, err := config.Load(app.EnvFile)
	if err != nil {
		return nil, err
	}
	flags := cmd.Flags()
	if flags.Changed("log-file") {
		cfg.Log.File = app.LogFile
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = app.LogLevel
	}
	if flags.Changed("glyphs") {
		cfg.UI.Glyphs = app.Glyphs
	}
	if flags.Changed("no-color") {
		cfg.UI.NoColor = app.NoColor
	}
	if flags.Changed("print") {
		cfg.Output.Print = app.Print
	}
	if flags.Changed("pretty") {
		cfg.Output.Pretty = app.Pretty
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// parseItemSpec splits "name:quantity". A suffix that is not numeric is kept
// as part of the name, so "Note: eggs" is one name; a numeric suffix that is
// not a valid quantity ("Milk:-2") is an error.
func parseItemSpec(spec string) (string, int, error) {
	if i := strings.LastIndex(spec, ":"); i >= 0 {
		name, qtyText := spec[:i], spec[i+1:]
		qty, err := store.ParseQuantity(qtyText)
		switch {
		case err == nil:
			if strings.TrimSpace(name) == "" {
				return "", 0, fmt.Errorf("--item %q: %w", spec, store.ErrBlankName)
			}
			return name, qty, nil
		case looksNumeric(qtyText):
			return "", 0, fmt.Errorf("--item %q: %w", spec, err)
		}
	}
	if strings.TrimSpace(spec) == "" {
		return "", 0, fmt.Errorf("--item %q: %w", spec, store.ErrBlankName)
	}
	return spec, store.DefaultQuantity, nil
}

// looksNumeric reports whether s is an optionally signed run of digits.
func looksNumeric(s string) bool {
	s = strings.TrimSpace(s)
	s = strings.TrimLeft(s, "+-")
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
