package tui

import (
	"errors"

	"github.com/atotto/clipboard"
)

var errNoClipboard = errors.New("no clipboard tool found (install wl-clipboard, xclip or xsel)")

// writeClipboard is swapped out in tests.
var writeClipboard = writeSystemClipboard

func writeSystemClipboard(text string) error {
	if clipboard.Unsupported {
		return errNoClipboard
	}
	return clipboard.WriteAll(text)
}
