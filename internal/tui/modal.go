package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	modalMaxW = 64
	modalMinW = 30
)

// modalWidth is the outer width of a modal box for a terminal of width w.
func modalWidth(w int) int {
	mw := w - 4
	if mw > modalMaxW {
		mw = modalMaxW
	}
	if mw < modalMinW {
		mw = modalMinW
	}
	return mw
}

// modalBodyWidth is the usable content width inside a modal box.
func modalBodyWidth(w int) int {
	// Border (2) + horizontal padding (2*2).
	return modalWidth(w) - 6
}

func renderModalBox(w int, title, body string) string {
	bodyW := modalBodyWidth(w)
	header := lipgloss.NewStyle().
		Bold(true).
		Width(bodyW).
		Render(title)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorAccent).
		Padding(1, 2).
		Width(modalWidth(w) - 2).
		Render(strings.Join([]string{header, "", body}, "\n"))
}

// overlayCenter places box in the middle of a w×h frame, replacing what was
// behind it. The screen behind a modal is not interactive, so it is not drawn.
func overlayCenter(w, h int, box string) string {
	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, box)
}
