package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

// renderInputLine draws a textinput view as one line of exactly width columns
// on the input background.
func renderInputLine(width int, inputView string) string {
	if width < 4 {
		width = 4
	}

	// A newline in the view would wrap inside the row/modal and look like
	// "newline insertion" while typing.
	inputView = strings.ReplaceAll(inputView, "\n", " ")
	inputView = strings.ReplaceAll(inputView, "\r", " ")

	line := lipgloss.PlaceHorizontal(
		width,
		lipgloss.Left,
		" "+inputView+" ",
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceBackground(colorInputBg),
	)
	if xansi.StringWidth(line) > width {
		// Terminate styling so the cut doesn't bleed into the next cell.
		line = xansi.Cut(line, 0, width) + "\x1b[0m"
	}
	return line
}
