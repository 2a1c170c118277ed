package render

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize/english"
	"github.com/kk-code-lab/vfsnav/internal/ui/view"
)

// formatStatusLine describes the listing: item count, the search term when
// one is active, and the last opened file.
func formatStatusLine(model *view.Model) string {
	if model == nil {
		return ""
	}

	parts := []string{english.Plural(len(model.Items), "item", "")}
	if term := model.State.SearchTerm; term != "" {
		parts = append(parts, fmt.Sprintf("search: %q", term))
	}
	if item := model.State.SelectedItem; item != nil {
		parts = append(parts, "selected: "+item.Name)
	}
	return strings.Join(parts, " | ")
}

// formatPrompt returns the label and editable text for the prompt row.
func formatPrompt(model *view.Model) (label, text string) {
	switch model.Mode {
	case view.ModeSearch:
		return "/ ", model.Input
	case view.ModeCreate:
		return "new file: ", model.Input
	case view.ModeConfirmDelete:
		name := ""
		if model.Pending != nil {
			name = model.Pending.Name
		}
		return fmt.Sprintf("delete %s? ", name), "(y/n)"
	}
	if term := model.State.SearchTerm; term != "" {
		return "/ ", term
	}
	return "", ""
}
