package tui

import (
	"fmt"
	"io"
	"strings"

	"shoplist/internal/model"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

type itemRow struct {
	item model.ShoppingItem
}

func (r itemRow) FilterValue() string { return strings.TrimSpace(r.item.Name) }

// itemDelegate dispatches each row to the editor view when the item is being
// edited and to the plain row view otherwise.
type itemDelegate struct {
	editor *itemEditor
	// listFocused is false while the Add Item button has the keyboard; the
	// selected row is then drawn like the others.
	listFocused bool
}

func (d itemDelegate) Height() int  { return 3 }
func (d itemDelegate) Spacing() int { return 0 }
func (d itemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	r, ok := item.(itemRow)
	if !ok || m.Width() < 12 {
		fmt.Fprint(w, "")
		return
	}
	if r.item.IsEditing && d.editor != nil && d.editor.open && d.editor.forID == r.item.ID {
		fmt.Fprint(w, renderItemEditor(d.editor, m.Width()))
		return
	}
	fmt.Fprint(w, renderItemRow(r.item, m.Width(), d.listFocused && index == m.Index()))
}

// rowInnerWidth is the content width of a bordered row of outer width w.
func rowInnerWidth(w int) int {
	// Border (2) + horizontal padding (2).
	inner := w - 4
	if inner < 8 {
		inner = 8
	}
	return inner
}

// renderItemRow draws one item: name on the left, then "Qty: N" and the edit
// and delete affordances on the right.
func renderItemRow(it model.ShoppingItem, width int, selected bool) string {
	inner := rowInnerWidth(width)

	actions := glyphEdit() + " " + glyphDelete()
	right := it.QuantityLabel() + "   " + actions
	nameW := inner - xansi.StringWidth(right) - 2
	if nameW < 1 {
		nameW = 1
	}

	name := padRight(it.Name, nameW)
	border := colorRowBorder
	style := lipgloss.NewStyle()
	if selected {
		border = colorSelectedBorder
		name = lipgloss.NewStyle().Bold(true).Render(name)
		style = style.Foreground(colorSelectedFg)
	}
	line := name + "  " + style.Render(it.QuantityLabel()) + "   " + styleMuted().Render(actions)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1).
		Render(padRight(line, inner))
}

func newItemsList(editor *itemEditor) list.Model {
	l := list.New([]list.Item{}, itemDelegate{editor: editor, listFocused: true}, 0, 0)
	l.Title = "Items"
	// The screen renders its own header/footer, so keep list chrome minimal.
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(true)
	// "/" would compete with typing; filtering is not part of this screen.
	l.SetFilteringEnabled(false)
	l.SetStatusBarItemName("item", "items")
	// Quitting is decided by the screen (a modal or editor may own the keys).
	l.KeyMap.Quit.SetEnabled(false)
	l.KeyMap.ForceQuit.SetEnabled(false)
	// Emacs-style navigation aliases.
	cursorUpKeys := append([]string{}, l.KeyMap.CursorUp.Keys()...)
	l.KeyMap.CursorUp.SetKeys(append(cursorUpKeys, "ctrl+p")...)
	cursorDownKeys := append([]string{}, l.KeyMap.CursorDown.Keys()...)
	l.KeyMap.CursorDown.SetKeys(append(cursorDownKeys, "ctrl+n")...)
	return l
}

func selectedItemRow(l list.Model) (itemRow, bool) {
	r, ok := l.SelectedItem().(itemRow)
	return r, ok
}

func selectListItemByID(l *list.Model, id int) bool {
	for i, li := range l.Items() {
		if r, ok := li.(itemRow); ok && r.item.ID == id {
			l.Select(i)
			return true
		}
	}
	return false
}
