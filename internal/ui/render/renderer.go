package render

import (
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"
	fsutil "github.com/kk-code-lab/vfsnav/internal/fs"
	searchpkg "github.com/kk-code-lab/vfsnav/internal/search"
	textutil "github.com/kk-code-lab/vfsnav/internal/textutil"
	"github.com/kk-code-lab/vfsnav/internal/ui/view"
)

// Column widths for the size and modified columns of the listing.
const (
	sizeColumnWidth     = 9
	modifiedColumnWidth = 16
	columnGap           = 2
	minNameColumnWidth  = 8
)

// Renderer handles all UI rendering
type Renderer struct {
	screen           tcell.Screen
	theme            ColorTheme
	runeWidthCache   [128]int // ASCII cache (0-127)
	runeWidthCacheMu sync.RWMutex
	runeWidthWide    sync.Map // For non-ASCII runes
}

// NewRenderer creates a new renderer
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{
		screen: screen,
		theme:  GetColorTheme(),
	}
}

// Render draws the entire UI based on the model
func (r *Renderer) Render(model *view.Model) {
	r.screen.Clear()
	r.screen.HideCursor()

	w, h := r.screen.Size()
	if w <= 0 || h <= 0 || model == nil {
		r.screen.Show()
		return
	}

	r.drawHeader(model, w)
	if h > view.PromptRow {
		r.drawPromptLine(model, w)
	}
	if h > view.ColumnsRow {
		r.drawColumnTitles(w)
	}
	r.drawListing(model, w, h)
	if h > view.ListTop {
		r.drawStatusLine(model, w, h)
	}

	r.screen.Show()
}

// drawHeader renders the shell-style location line
func (r *Renderer) drawHeader(model *view.Model, w int) {
	style := tcell.StyleDefault.Background(r.theme.HeaderBg).Foreground(r.theme.HeaderFg)
	path := model.State.CurrentPath
	if path == "" {
		path = fsutil.Root
	}

	x := r.drawTextLine(0, view.HeaderRow, w, "$ cd ", style)

	// Parent segments plain, current directory bold; when the whole path
	// does not fit only the current directory is kept.
	prefix, last := fsutil.Root, ""
	if segments := fsutil.Segments(path); len(segments) > 0 {
		prefix = fsutil.Root + strings.Join(segments[:len(segments)-1], "/")
		if len(segments) > 1 {
			prefix += "/"
		}
		last = fsutil.Base(path)
	}
	if r.measureTextWidth(prefix+last) > w-x {
		prefix = textutil.Ellipsis + "/"
	}
	x = r.drawTextLine(x, view.HeaderRow, w-x, fitText(prefix, w-x), style)
	x = r.drawTextLine(x, view.HeaderRow, w-x, fitText(last, w-x), style.Bold(true))
	r.fillRow(x, view.HeaderRow, w, style)
}

// drawPromptLine shows the active prompt, or key hints when browsing
func (r *Renderer) drawPromptLine(model *view.Model, w int) {
	y := view.PromptRow
	label, text := formatPrompt(model)
	if label == "" {
		hintStyle := tcell.StyleDefault.Foreground(r.theme.HintFg)
		hints := textutil.Truncate(buildFooterHelpText(model), w)
		x := r.drawTextLine(0, y, w, hints, hintStyle)
		r.fillRow(x, y, w, tcell.StyleDefault)
		return
	}

	labelStyle := tcell.StyleDefault.Foreground(r.theme.PromptFg).Bold(true)
	x := r.drawTextLine(0, y, w, label, labelStyle)
	x = r.drawTextLine(x, y, w-x, fitText(text, w-x), tcell.StyleDefault)
	if model.Mode == view.ModeSearch || model.Mode == view.ModeCreate {
		r.screen.ShowCursor(x, y)
	}
	r.fillRow(x, y, w, tcell.StyleDefault)
}

func (r *Renderer) drawColumnTitles(w int) {
	style := tcell.StyleDefault.Foreground(r.theme.ColumnFg)
	r.drawRow(view.ColumnsRow, w, "NAME", "SIZE", "MODIFIED", style, style, -1, -1)
}

// drawListing renders the visible window of the listing
func (r *Renderer) drawListing(model *view.Model, w, h int) {
	bottom := h - 1 // status line
	matcher := searchpkg.NewMatcher(model.State.SearchTerm)

	if len(model.Items) == 0 && view.ListTop < bottom {
		msg := "(empty)"
		if model.State.SearchTerm != "" {
			msg = "(no matches)"
		}
		x := r.drawTextLine(2, view.ListTop, w-2, msg, tcell.StyleDefault.Foreground(r.theme.HintFg))
		r.fillRow(x, view.ListTop, w, tcell.StyleDefault)
		return
	}

	for y := view.ListTop; y < bottom; y++ {
		idx := model.Scroll + y - view.ListTop
		if idx >= len(model.Items) {
			break
		}
		item := model.Items[idx]

		fg := r.theme.FileFg
		name := item.Name
		if item.IsDir() {
			fg = r.theme.DirectoryFg
			name += "/"
		}
		style := tcell.StyleDefault.Foreground(fg)
		if idx == model.Cursor {
			style = tcell.StyleDefault.Background(r.theme.SelectionBg).Foreground(r.theme.SelectionFg)
		}
		matchStyle := style.Foreground(r.theme.MatchFg).Bold(true)
		if idx == model.Cursor {
			matchStyle = style.Bold(true).Underline(true)
		}

		start, end, ok := matcher.Span(item.Name)
		if !ok {
			start, end = -1, -1
		}
		r.drawRow(y, w, name, item.SizeLabel, item.ModifiedLabel, style, matchStyle, start, end)
	}
}

// drawRow lays out one table row; runes [hlStart, hlEnd) of the name use matchStyle.
func (r *Renderer) drawRow(y, w int, name, size, modified string, style, matchStyle tcell.Style, hlStart, hlEnd int) {
	nameWidth := w - sizeColumnWidth - modifiedColumnWidth - 2*columnGap - 1
	showMeta := nameWidth >= minNameColumnWidth
	if !showMeta {
		nameWidth = w - 1
	}

	r.screen.SetContent(0, y, ' ', nil, style)
	x := 1
	x = r.drawHighlightedText(x, y, nameWidth, fitText(name, nameWidth), hlStart, hlEnd, style, matchStyle)
	if showMeta {
		r.fillRow(x, y, 1+nameWidth+columnGap, style)
		x = 1 + nameWidth + columnGap
		x = r.drawTextLine(x, y, sizeColumnWidth, textutil.PadRight(size, sizeColumnWidth), style)
		r.fillRow(x, y, x+columnGap, style)
		x += columnGap
		x = r.drawTextLine(x, y, w-x, fitText(modified, w-x), style)
	}
	r.fillRow(x, y, w, style)
}

// drawStatusLine shows the last error, the last notice, or the listing summary
func (r *Renderer) drawStatusLine(model *view.Model, w, h int) {
	y := h - 1
	style := tcell.StyleDefault.Foreground(r.theme.StatusFg)
	text := formatStatusLine(model)
	switch {
	case model.Err != nil:
		style = tcell.StyleDefault.Foreground(r.theme.ErrorFg)
		text = "error: " + model.Err.Error()
	case model.Notice != "":
		text = model.Notice
	}

	x := r.drawTextLine(0, y, w, fitText(text, w), style)
	r.fillRow(x, y, w, style)
}

// ItemAt maps a screen row to an index into the listing.
func ItemAt(model *view.Model, y int, h int) (int, bool) {
	if model == nil || y < view.ListTop || y >= h-1 {
		return 0, false
	}
	idx := model.Scroll + y - view.ListTop
	if idx < 0 || idx >= len(model.Items) {
		return 0, false
	}
	return idx, true
}
