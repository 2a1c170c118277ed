// Package view holds the terminal front end's presentation state: the
// cursor over the visible listing, the active prompt and the last notice.
package view

import (
	"unicode/utf8"

	statepkg "github.com/kk-code-lab/vfsnav/internal/state"
)

// Mode selects which prompt, if any, owns keyboard input.
type Mode int

const (
	ModeBrowse Mode = iota
	ModeSearch
	ModeCreate
	ModeConfirmDelete
)

// Screen rows used by everything except the listing.
const (
	HeaderRow  = 0
	PromptRow  = 1
	ColumnsRow = 2
	ListTop    = 3
	chromeRows = 4 // header, prompt, column titles, status
)

// Model is the front end's view of a navigator session.
type Model struct {
	Items []statepkg.Entry
	State statepkg.NavigatorState

	Cursor int
	Scroll int

	Mode    Mode
	Input   string
	Pending *statepkg.Entry

	Notice string
	Err    error

	Width  int
	Height int

	Quit bool
}

// NewModel returns a model sized to the screen.
func NewModel(width, height int) *Model {
	return &Model{Width: width, Height: height}
}

// SetListing installs a freshly composed listing. The cursor resets when
// the directory changed and is clamped otherwise.
func (m *Model) SetListing(items []statepkg.Entry, st statepkg.NavigatorState) {
	if st.CurrentPath != m.State.CurrentPath {
		m.Cursor = 0
		m.Scroll = 0
	}
	m.Items = items
	m.State = st
	m.clampCursor()
	m.EnsureVisible()
}

// SetNotice shows an informational message on the status line.
func (m *Model) SetNotice(text string) {
	m.Notice = text
	m.Err = nil
}

// SetError shows err on the status line until the next notice or error.
func (m *Model) SetError(err error) {
	m.Err = err
	if err != nil {
		m.Notice = ""
	}
}

// ClearMessages drops any notice or error.
func (m *Model) ClearMessages() {
	m.Notice = ""
	m.Err = nil
}

// ListHeight is the number of listing rows that fit on screen.
func (m *Model) ListHeight() int {
	if h := m.Height - chromeRows; h > 1 {
		return h
	}
	return 1
}

// CurrentItem returns the entry under the cursor.
func (m *Model) CurrentItem() (statepkg.Entry, bool) {
	if m.Cursor < 0 || m.Cursor >= len(m.Items) {
		return statepkg.Entry{}, false
	}
	return m.Items[m.Cursor], true
}

// MoveCursor moves the cursor by delta rows, stopping at either end.
func (m *Model) MoveCursor(delta int) {
	m.Cursor += delta
	m.clampCursor()
	m.EnsureVisible()
}

// EnsureVisible scrolls so the cursor row is on screen.
func (m *Model) EnsureVisible() {
	height := m.ListHeight()
	if m.Cursor < m.Scroll {
		m.Scroll = m.Cursor
	}
	if m.Cursor >= m.Scroll+height {
		m.Scroll = m.Cursor - height + 1
	}
	if maxScroll := len(m.Items) - height; m.Scroll > maxScroll {
		m.Scroll = maxScroll
	}
	if m.Scroll < 0 {
		m.Scroll = 0
	}
}

func (m *Model) clampCursor() {
	if m.Cursor >= len(m.Items) {
		m.Cursor = len(m.Items) - 1
	}
	if m.Cursor < 0 {
		m.Cursor = 0
	}
}

// Update applies a front-end action. When the action has to change the
// navigator, the returned state action should be dispatched to the session.
func (m *Model) Update(action Action) statepkg.Action {
	switch a := action.(type) {

	// ===== CURSOR =====
	case CursorMoveAction:
		m.MoveCursor(a.Delta)
	case CursorPageAction:
		m.MoveCursor(a.Direction * m.ListHeight())
	case CursorHomeAction:
		m.MoveCursor(-len(m.Items))
	case CursorEndAction:
		m.MoveCursor(len(m.Items))

	// ===== NAVIGATION =====
	case OpenCurrentAction:
		if item, ok := m.CurrentItem(); ok {
			return statepkg.OpenAction{Item: item}
		}
	case BackAction:
		return statepkg.BackAction{}
	case HomeAction:
		return statepkg.HomeAction{}
	case RefreshAction:
		return statepkg.RefreshAction{}

	// ===== PROMPTS =====
	case BeginSearchAction:
		m.Mode = ModeSearch
		m.Input = m.State.SearchTerm
	case BeginCreateAction:
		m.Mode = ModeCreate
		m.Input = ""
	case BeginDeleteAction:
		if item, ok := m.CurrentItem(); ok {
			m.Mode = ModeConfirmDelete
			m.Pending = &item
		}
	case InputRuneAction:
		return m.editInput(m.Input + string(a.Rune))
	case InputBackspaceAction:
		if m.Input == "" {
			return nil
		}
		_, size := utf8.DecodeLastRuneInString(m.Input)
		return m.editInput(m.Input[:len(m.Input)-size])
	case SubmitAction:
		return m.submit()
	case CancelAction:
		return m.cancel()
	case ConfirmAction:
		pending := m.Pending
		m.leavePrompt()
		if a.Yes && pending != nil {
			return statepkg.DeleteAction{Path: pending.Path}
		}

	// ===== APP =====
	case ResizeAction:
		m.Width, m.Height = a.Width, a.Height
		m.EnsureVisible()
	case QuitAction:
		m.Quit = true
	}
	return nil
}

func (m *Model) editInput(text string) statepkg.Action {
	switch m.Mode {
	case ModeSearch:
		m.Input = text
		return statepkg.SearchAction{Term: text}
	case ModeCreate:
		m.Input = text
	}
	return nil
}

func (m *Model) submit() statepkg.Action {
	switch m.Mode {
	case ModeSearch:
		m.leavePrompt()
	case ModeCreate:
		name := m.Input
		m.leavePrompt()
		return statepkg.CreateAction{Name: name}
	case ModeConfirmDelete:
		return m.Update(ConfirmAction{Yes: true})
	}
	return nil
}

func (m *Model) cancel() statepkg.Action {
	switch m.Mode {
	case ModeSearch:
		m.leavePrompt()
		return statepkg.SearchAction{Term: ""}
	case ModeCreate, ModeConfirmDelete:
		m.leavePrompt()
	case ModeBrowse:
		if m.State.SearchTerm != "" {
			return statepkg.SearchAction{Term: ""}
		}
		m.ClearMessages()
	}
	return nil
}

func (m *Model) leavePrompt() {
	m.Mode = ModeBrowse
	m.Input = ""
	m.Pending = nil
}
