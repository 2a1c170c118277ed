package render

import (
	"github.com/gdamore/tcell/v2"
	textutil "github.com/kk-code-lab/vfsnav/internal/textutil"
	"github.com/mattn/go-runewidth"
)

func (r *Renderer) cachedRuneWidth(ru rune) int {
	if ru < 128 {
		r.runeWidthCacheMu.RLock()
		width := r.runeWidthCache[ru]
		r.runeWidthCacheMu.RUnlock()

		if width == 0 && ru != 0 {
			actualWidth := runewidth.RuneWidth(ru)
			r.runeWidthCacheMu.Lock()
			r.runeWidthCache[ru] = actualWidth + 1
			r.runeWidthCacheMu.Unlock()
			return actualWidth
		}
		return width - 1
	}

	if cached, ok := r.runeWidthWide.Load(ru); ok {
		return cached.(int)
	}

	width := runewidth.RuneWidth(ru)
	r.runeWidthWide.Store(ru, width)
	return width
}

func (r *Renderer) measureTextWidth(text string) int {
	width := 0
	for _, ru := range text {
		width += r.cachedRuneWidth(ru)
	}
	return width
}

// drawTextLine draws text clipped to maxWidth columns and returns the next x.
// Zero-width runes are attached to the preceding cell as combining marks.
func (r *Renderer) drawTextLine(startX, y, maxWidth int, text string, style tcell.Style) int {
	return r.drawHighlightedText(startX, y, maxWidth, text, -1, -1, style, style)
}

// drawHighlightedText draws text using highlightStyle for runes in
// [hlStart, hlEnd) and baseStyle elsewhere.
func (r *Renderer) drawHighlightedText(startX, y, maxWidth int, text string, hlStart, hlEnd int, baseStyle, highlightStyle tcell.Style) int {
	x := startX
	runes := []rune(text)
	i := 0

	for i < len(runes) {
		mainc := runes[i]
		w := r.cachedRuneWidth(mainc)
		if w <= 0 {
			w = 1
		}
		if x-startX+w > maxWidth {
			break
		}

		style := baseStyle
		if i >= hlStart && i < hlEnd {
			style = highlightStyle
		}
		i++

		var combc []rune
		for i < len(runes) && r.cachedRuneWidth(runes[i]) == 0 {
			combc = append(combc, runes[i])
			i++
		}

		r.screen.SetContent(x, y, mainc, combc, style)
		x += w
	}

	return x
}

// fillRow paints blanks from x to the end of the row.
func (r *Renderer) fillRow(x, y, w int, style tcell.Style) {
	for ; x < w; x++ {
		r.screen.SetContent(x, y, ' ', nil, style)
	}
}

// fitText sanitizes and truncates text for a cell of width columns.
func fitText(text string, width int) string {
	return textutil.Truncate(textutil.SanitizeTerminalText(text), width)
}
