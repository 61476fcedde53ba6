package tui

import (
	"shoplist/internal/store"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

type Options struct {
	// Glyphs is "unicode" or "ascii".
	Glyphs  string
	NoColor bool
	Log     *zap.Logger
}

// Run shows the list screen for state until the user quits. state keeps the
// final list so callers can report it afterwards.
func Run(state *store.State, opts Options) error {
	applyColorProfilePreference(opts.NoColor)
	applyThemePreference()
	applyGlyphPreference(opts.Glyphs)

	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}
	m := newAppModel(state, log)
	log.Info("tui started", zap.Int("items", state.Len()))
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	log.Info("tui stopped", zap.Int("items", state.Len()), zap.Error(err))
	return err
}
