package tui

import (
	"reflect"
	"strings"
	"testing"

	"shoplist/internal/model"
	"shoplist/internal/store"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "ctrl+g":
		return tea.KeyMsg{Type: tea.KeyCtrlG}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	case "delete":
		return tea.KeyMsg{Type: tea.KeyDelete}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func press(t *testing.T, m appModel, keys ...string) appModel {
	t.Helper()
	for _, k := range keys {
		mAny, _ := m.Update(keyMsg(k))
		m = mAny.(appModel)
	}
	return m
}

func pressCmd(t *testing.T, m appModel, k string) (appModel, tea.Cmd) {
	t.Helper()
	mAny, cmd := m.Update(keyMsg(k))
	return mAny.(appModel), cmd
}

func seededModel(t *testing.T, names ...string) (appModel, *store.State) {
	t.Helper()
	s := store.NewState(nil)
	for _, n := range names {
		if _, err := s.Seed(n, 2); err != nil {
			t.Fatalf("seed %q: %v", n, err)
		}
	}
	m := newAppModel(s, nil)
	mAny, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 30})
	return mAny.(appModel), s
}

func TestAddDialog_AddsItemAndClosesDialog(t *testing.T) {
	m, s := seededModel(t)

	m = press(t, m, "a")
	if m.modal != modalAddItem || !s.AddDialogVisible() {
		t.Fatalf("expected add dialog open, modal=%v", m.modal)
	}

	m = press(t, m, "Milk", "tab", "2", "enter")

	want := []model.ShoppingItem{{ID: 1, Name: "Milk", Quantity: 2, IsEditing: false}}
	if got := s.Items(); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
	if m.modal != modalNone || s.AddDialogVisible() {
		t.Fatalf("expected dialog closed, modal=%v", m.modal)
	}
	if s.NameBuffer() != "" || s.QuantityBuffer() != "" {
		t.Fatalf("expected buffers cleared, got %q/%q", s.NameBuffer(), s.QuantityBuffer())
	}
	if m.dialogName.Value() != "" || m.dialogQty.Value() != "" {
		t.Fatalf("expected dialog inputs cleared, got %q/%q", m.dialogName.Value(), m.dialogQty.Value())
	}
	if m.minibufferText != "Added: Milk" {
		t.Fatalf("unexpected minibuffer %q", m.minibufferText)
	}
	if r, ok := selectedItemRow(m.itemsList); !ok || r.item.ID != 1 {
		t.Fatalf("expected new row selected, got %+v ok=%v", r, ok)
	}
}

func TestAddDialog_TypingQDoesNotQuit(t *testing.T) {
	m, s := seededModel(t)
	m = press(t, m, "a", "q")
	if m.modal != modalAddItem {
		t.Fatalf("expected dialog to stay open")
	}
	if s.NameBuffer() != "q" {
		t.Fatalf("expected name buffer %q, got %q", "q", s.NameBuffer())
	}
}

func TestAddDialog_BlankNameKeepsDialogOpen(t *testing.T) {
	m, s := seededModel(t)
	m = press(t, m, "a", "   ", "enter")

	if s.Len() != 0 {
		t.Fatalf("expected no items, got %+v", s.Items())
	}
	if m.modal != modalAddItem {
		t.Fatalf("expected dialog to stay open")
	}
	if m.dialogErr == "" {
		t.Fatalf("expected a validation message")
	}
	if m.dialogFocus != dialogFocusName {
		t.Fatalf("expected focus back on name, got %v", m.dialogFocus)
	}
}

func TestAddDialog_NonNumericQuantityIsRejected(t *testing.T) {
	m, s := seededModel(t)
	m = press(t, m, "a", "Milk", "tab", "abc", "enter")

	if s.Len() != 0 {
		t.Fatalf("expected no items, got %+v", s.Items())
	}
	if m.modal != modalAddItem {
		t.Fatalf("expected dialog to stay open")
	}
	if m.dialogFocus != dialogFocusQuantity {
		t.Fatalf("expected focus on quantity, got %v", m.dialogFocus)
	}
	if !strings.Contains(m.View(), "Quantity must be a whole number") {
		t.Fatalf("expected validation message in view")
	}
}

func TestAddDialog_EscIsIgnoredCancelKeepsDraft(t *testing.T) {
	m, s := seededModel(t, "Bread")
	before := s.Items()

	m = press(t, m, "a", "Eg", "esc")
	if m.modal != modalAddItem {
		t.Fatalf("expected esc to leave the dialog open")
	}

	m = press(t, m, "ctrl+g")
	if m.modal != modalNone || s.AddDialogVisible() {
		t.Fatalf("expected ctrl+g to cancel")
	}

	// Reopen: the draft is still there; cancel again via the Cancel button.
	m = press(t, m, "a")
	if m.dialogName.Value() != "Eg" {
		t.Fatalf("expected draft to be restored, got %q", m.dialogName.Value())
	}
	m = press(t, m, "tab", "tab", "tab", "enter")
	if m.modal != modalNone {
		t.Fatalf("expected Cancel button to close the dialog, focus=%v", m.dialogFocus)
	}

	if got := s.Items(); !reflect.DeepEqual(got, before) {
		t.Fatalf("expected items unchanged, got %+v", got)
	}
}

func TestAddButton_FocusAndEnterOpensDialog(t *testing.T) {
	m, s := seededModel(t, "Bread")
	m = press(t, m, "tab")
	if m.focus != focusAddButton {
		t.Fatalf("expected add button focus")
	}
	m = press(t, m, "enter")
	if !s.AddDialogVisible() || m.modal != modalAddItem {
		t.Fatalf("expected enter on the button to open the dialog")
	}
}

func TestEdit_OpensOnlySelectedEditor(t *testing.T) {
	m, s := seededModel(t, "Milk", "Eggs", "Bread")
	s.BeginEdit(3)
	m.syncFromState()
	if !m.editor.open || m.editor.forID != 3 {
		t.Fatalf("expected editor for 3 after external edit, got open=%v id=%d", m.editor.open, m.editor.forID)
	}
	m = press(t, m, "esc")
	if m.editor.open {
		t.Fatalf("expected esc to close the editor")
	}

	selectListItemByID(&m.itemsList, 2)
	m = press(t, m, "e")

	for _, it := range s.Items() {
		if it.IsEditing != (it.ID == 2) {
			t.Fatalf("item %d: isEditing=%v", it.ID, it.IsEditing)
		}
	}
	if !m.editor.open || m.editor.forID != 2 {
		t.Fatalf("expected editor open for 2, got open=%v id=%d", m.editor.open, m.editor.forID)
	}
	if m.editor.name.Value() != "Eggs" || m.editor.qty.Value() != "2" {
		t.Fatalf("expected editor seeded from item, got %q/%q", m.editor.name.Value(), m.editor.qty.Value())
	}
	if v := m.View(); !strings.Contains(v, "Save") {
		t.Fatalf("expected editor row in view:\n%s", v)
	}
}

func TestEdit_SaveWithEmptyQuantityUsesOne(t *testing.T) {
	m, s := seededModel(t, "Milk", "Eggs", "Bread")
	selectListItemByID(&m.itemsList, 2)
	m = press(t, m, "e")

	m.editor.name.SetValue("Brown eggs")
	m.editor.qty.SetValue("")
	m = press(t, m, "enter")

	it, _ := s.Item(2)
	if it.Name != "Brown eggs" || it.Quantity != 1 {
		t.Fatalf("unexpected item after save: %+v", it)
	}
	if _, ok := model.EditingItem(s.Items()); ok {
		t.Fatalf("expected no item editing after save")
	}
	if m.editor.open {
		t.Fatalf("expected editor closed after save")
	}
}

func TestEdit_TypingAndCtrlSSaves(t *testing.T) {
	m, s := seededModel(t, "Milk")
	m = press(t, m, "e", "backspace", "backspace", "backspace", "backspace", "Oat milk", "tab", "backspace", "6", "ctrl+s")

	it, _ := s.Item(1)
	if it.Name != "Oat milk" || it.Quantity != 6 || it.IsEditing {
		t.Fatalf("unexpected item after save: %+v", it)
	}
}

func TestEdit_InvalidQuantityFallsBackAndWarns(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	s := store.NewState(nil)
	if _, err := s.Seed("Milk", 3); err != nil {
		t.Fatalf("seed: %v", err)
	}
	m := newAppModel(s, zap.New(core))

	m = press(t, m, "e")
	m.editor.qty.SetValue("lots")
	m = press(t, m, "enter")

	if it, _ := s.Item(1); it.Quantity != 1 {
		t.Fatalf("expected fallback quantity 1, got %+v", it)
	}
	if !strings.Contains(m.minibufferText, "saved as 1") {
		t.Fatalf("expected minibuffer note, got %q", m.minibufferText)
	}
	if n := logs.FilterMessage("quantity replaced with default").Len(); n != 1 {
		t.Fatalf("expected one warn log, got %d", n)
	}
}

func TestEdit_SwitchingRowsMovesEditor(t *testing.T) {
	m, s := seededModel(t, "Milk", "Eggs")
	m = press(t, m, "e")
	if m.editor.forID != 1 {
		t.Fatalf("expected editor on 1")
	}
	m.editor.name.SetValue("draft")

	// Another view opens a different editor; this one closes without saving.
	s.BeginEdit(2)
	m.syncFromState()

	if m.editor.forID != 2 || m.editor.name.Value() != "Eggs" {
		t.Fatalf("expected editor seeded for 2, got id=%d name=%q", m.editor.forID, m.editor.name.Value())
	}
	if it, _ := s.Item(1); it.Name != "Milk" {
		t.Fatalf("expected unsaved draft dropped, got %+v", it)
	}
}

func TestDelete_RemovesSelectedByID(t *testing.T) {
	m, s := seededModel(t, "Milk", "Eggs", "Bread")
	selectListItemByID(&m.itemsList, 2)
	m = press(t, m, "d")

	items := s.Items()
	if len(items) != 2 || items[0].ID != 1 || items[1].ID != 3 {
		t.Fatalf("unexpected items: %+v", items)
	}
	if len(m.itemsList.Items()) != 2 {
		t.Fatalf("expected list rows refreshed, got %d", len(m.itemsList.Items()))
	}
	if m.minibufferText != "Deleted: Eggs" {
		t.Fatalf("unexpected minibuffer %q", m.minibufferText)
	}

	// Deleting the last row keeps a valid selection.
	selectListItemByID(&m.itemsList, 3)
	m = press(t, m, "delete")
	if r, ok := selectedItemRow(m.itemsList); !ok || r.item.ID != 1 {
		t.Fatalf("expected selection on remaining row, got %+v ok=%v", r, ok)
	}
}

func TestDelete_EmptyListIsNoop(t *testing.T) {
	m, s := seededModel(t)
	m = press(t, m, "d", "e")
	if s.Len() != 0 || m.editor.open {
		t.Fatalf("expected nothing to happen on empty list")
	}
}

func TestQuit(t *testing.T) {
	m, _ := seededModel(t, "Milk")
	_, cmd := pressCmd(t, m, "q")
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}

func TestHelp_OpensAndCloses(t *testing.T) {
	m, _ := seededModel(t, "Milk")
	m = press(t, m, "?")
	if m.modal != modalHelp {
		t.Fatalf("expected help modal")
	}
	if v := m.View(); !strings.Contains(v, "Help") {
		t.Fatalf("expected help overlay:\n%s", v)
	}
	m = press(t, m, "esc")
	if m.modal != modalNone {
		t.Fatalf("expected help closed")
	}
}

func TestView_ListScreen(t *testing.T) {
	m, _ := seededModel(t, "Milk", "Eggs")
	v := m.View()
	for _, want := range []string{screenTitle, "2 items", "Add Item", "Milk", "Eggs", "Qty: 2"} {
		if !strings.Contains(v, want) {
			t.Fatalf("expected %q in view:\n%s", want, v)
		}
	}
	if lines := strings.Count(v, "\n") + 1; lines != 30 {
		t.Fatalf("expected view to fill 30 lines, got %d", lines)
	}
}

func TestView_EmptyAndDialog(t *testing.T) {
	m, _ := seededModel(t)
	if !strings.Contains(m.View(), "No items yet") {
		t.Fatalf("expected empty hint")
	}
	m = press(t, m, "a")
	v := m.View()
	for _, want := range []string{addDialogTitle, "Enter Item", "Enter Quantity", "Add", "Cancel"} {
		if !strings.Contains(v, want) {
			t.Fatalf("expected %q in dialog view:\n%s", want, v)
		}
	}
}

func TestCopyList_WritesTextToClipboard(t *testing.T) {
	var got string
	prev := writeClipboard
	writeClipboard = func(s string) error { got = s; return nil }
	t.Cleanup(func() { writeClipboard = prev })

	m, _ := seededModel(t)
	m = press(t, m, "y")
	if got != "" || m.minibufferText != "Nothing to copy" {
		t.Fatalf("expected nothing copied from empty list, got %q / %q", got, m.minibufferText)
	}

	m, _ = seededModel(t, "Milk", "Eggs")
	m = press(t, m, "y")
	if got != "1  Milk  2\n2  Eggs  2\n" {
		t.Fatalf("unexpected clipboard text %q", got)
	}
	if m.minibufferText != "Copied 2 items" {
		t.Fatalf("unexpected minibuffer %q", m.minibufferText)
	}
}

func TestEdit_UntouchedSaveKeepsLongSeededItem(t *testing.T) {
	s := store.NewState(nil)
	name := strings.Repeat("n", 250)
	if _, err := s.Seed(name, 12345678901234); err != nil {
		t.Fatalf("seed: %v", err)
	}
	m := newAppModel(s, nil)

	m = press(t, m, "e")
	if got := m.editor.name.Value(); got != name {
		t.Fatalf("expected full name in editor, got %d chars", len(got))
	}
	m = press(t, m, "ctrl+s")

	it, _ := s.Item(1)
	if it.Name != name || it.Quantity != 12345678901234 || it.IsEditing {
		t.Fatalf("expected item unchanged after save, got name len %d qty %d editing %v", len(it.Name), it.Quantity, it.IsEditing)
	}
	if m.editor.open {
		t.Fatalf("expected editor closed")
	}
}

func TestCopyList_ReportsClipboardFailure(t *testing.T) {
	prev := writeClipboard
	writeClipboard = func(string) error { return errNoClipboard }
	t.Cleanup(func() { writeClipboard = prev })

	core, logs := observer.New(zapcore.WarnLevel)
	s := store.NewState(nil)
	if _, err := s.Seed("Milk", 1); err != nil {
		t.Fatalf("seed: %v", err)
	}
	m := newAppModel(s, zap.New(core))
	m = press(t, m, "y")

	if !strings.HasPrefix(m.minibufferText, "Copy failed: no clipboard tool") {
		t.Fatalf("unexpected minibuffer %q", m.minibufferText)
	}
	if n := logs.FilterMessage("clipboard copy failed").Len(); n != 1 {
		t.Fatalf("expected one warn log, got %d", n)
	}
}

func TestAddButtonFocus_DropsRowHighlight(t *testing.T) {
	prev := lipgloss.ColorProfile()
	t.Cleanup(func() { lipgloss.SetColorProfile(prev) })
	lipgloss.SetColorProfile(termenv.ANSI256)

	m, _ := seededModel(t, "Milk")
	focused := m.itemsList.View()

	m = press(t, m, "tab")
	if m.focus != focusAddButton {
		t.Fatalf("expected add button focus")
	}
	if m.itemsList.View() == focused {
		t.Fatalf("expected the selected row to lose its highlight")
	}

	m = press(t, m, "tab")
	if m.itemsList.View() != focused {
		t.Fatalf("expected the highlight back when the list regains focus")
	}
}
