package render

import (
	"strings"

	"github.com/kk-code-lab/vfsnav/internal/ui/view"
)

// buildFooterHelpText returns the contextual key hint string with leading/trailing padding.
func buildFooterHelpText(model *view.Model) string {
	parts := buildFooterHelpSegments(model)
	if len(parts) == 0 {
		return ""
	}
	return " " + strings.Join(parts, "  ") + " "
}

// buildFooterHelpSegments assembles key hints for the active mode.
func buildFooterHelpSegments(model *view.Model) []string {
	if model == nil {
		return nil
	}

	switch model.Mode {
	case view.ModeSearch:
		return []string{
			"type: search",
			"↵: keep",
			"Esc: clear",
			"↑↓: select",
		}
	case view.ModeCreate:
		return []string{
			"↵: create",
			"Esc: cancel",
		}
	case view.ModeConfirmDelete:
		return []string{
			"y: delete",
			"n/Esc: keep",
		}
	default:
		segments := []string{
			"↑/↓/↵/→/←: navigate",
			"~: home",
			"/: search",
			"n: new file",
			"d: delete",
			"r: refresh",
			"q: quit",
		}
		if model.State.SearchTerm != "" {
			segments = append([]string{"Esc: clear search"}, segments...)
		}
		return segments
	}
}
