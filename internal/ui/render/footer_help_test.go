package render

import (
	"strings"
	"testing"

	statepkg "github.com/kk-code-lab/vfsnav/internal/state"
	"github.com/kk-code-lab/vfsnav/internal/ui/view"
)

func TestFooterHelpFollowsMode(t *testing.T) {
	model := view.NewModel(80, 24)

	browse := buildFooterHelpText(model)
	if !strings.Contains(browse, "n: new file") || !strings.Contains(browse, "q: quit") {
		t.Fatalf("browse hints missing commands: %q", browse)
	}
	if strings.Contains(browse, "Esc: clear search") {
		t.Fatalf("no search active, got %q", browse)
	}

	model.SetListing(nil, statepkg.NavigatorState{CurrentPath: "/", SearchTerm: "x"})
	if got := buildFooterHelpSegments(model); got[0] != "Esc: clear search" {
		t.Fatalf("active search should lead with the clear hint, got %v", got)
	}

	model.Mode = view.ModeConfirmDelete
	if got := buildFooterHelpText(model); got != " y: delete  n/Esc: keep " {
		t.Fatalf("unexpected confirm hints %q", got)
	}
}

func TestFooterHelpNilModel(t *testing.T) {
	if got := buildFooterHelpText(nil); got != "" {
		t.Fatalf("expected empty hints, got %q", got)
	}
}
