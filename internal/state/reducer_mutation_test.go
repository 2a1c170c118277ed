package state

import (
	"errors"
	"testing"

	fsutil "github.com/kk-code-lab/vfsnav/internal/fs"
)

func findItem(items []Entry, name string) (Entry, int) {
	count := 0
	var found Entry
	for _, item := range items {
		if item.Name == name {
			found = item
			count++
		}
	}
	return found, count
}

// ===== MUTATION TESTS =====

func TestCreateThenDeleteScenario(t *testing.T) {
	session := newTestSession(t, WithStartPath("/home"))

	res := session.Dispatch(CreateAction{Name: "todo.txt"})
	if res.Err != nil {
		t.Fatalf("Create failed: %v", res.Err)
	}
	item, count := findItem(res.Items, "todo.txt")
	if count != 1 {
		t.Fatalf("Expected todo.txt exactly once, got %d in %v", count, itemNames(res.Items))
	}
	if item.Kind != fsutil.KindFile || item.SizeLabel != "0 KB" || item.Path != "/home/todo.txt" {
		t.Errorf("Unexpected created item: %+v", item)
	}

	res = session.Dispatch(DeleteAction{Path: "/home/todo.txt"})
	if res.Err != nil {
		t.Fatalf("Delete failed: %v", res.Err)
	}
	if _, count := findItem(res.Items, "todo.txt"); count != 0 {
		t.Errorf("todo.txt should be gone, got %v", itemNames(res.Items))
	}
}

func TestCreateDeleteCreateNetsOneItem(t *testing.T) {
	session := newTestSession(t, WithStartPath("/home"))

	session.Dispatch(CreateAction{Name: "todo.txt"})
	session.Dispatch(DeleteAction{Path: "/home/todo.txt"})
	res := session.Dispatch(CreateAction{Name: "todo.txt"})

	if _, count := findItem(res.Items, "todo.txt"); count != 1 {
		t.Errorf("Expected exactly one todo.txt, got %d", count)
	}
}

func TestCreateTwiceDoesNotDuplicate(t *testing.T) {
	session := newTestSession(t, WithStartPath("/home"))

	session.Dispatch(CreateAction{Name: "todo.txt"})
	res := session.Dispatch(CreateAction{Name: "  todo.txt  "})
	if _, count := findItem(res.Items, "todo.txt"); count != 1 {
		t.Errorf("Expected one todo.txt after repeated create, got %d", count)
	}
}

func TestCreateAtRootHasSingleSlash(t *testing.T) {
	session := newTestSession(t)

	res := session.Dispatch(CreateAction{Name: "readme.md"})
	item, _ := findItem(res.Items, "readme.md")
	if item.Path != "/readme.md" {
		t.Errorf("Expected /readme.md, got %q", item.Path)
	}
}

func TestCreateRejectsBlankAndInvalidNames(t *testing.T) {
	session := newTestSession(t, WithStartPath("/home"))
	before := itemNames(session.Listing())

	tests := []struct {
		name string
		err  error
	}{
		{"", fsutil.ErrEmptyName},
		{"   ", fsutil.ErrEmptyName},
		{"a/b.txt", fsutil.ErrInvalidName},
		{"..", fsutil.ErrInvalidName},
	}

	for _, tt := range tests {
		res := session.Dispatch(CreateAction{Name: tt.name})
		if !errors.Is(res.Err, tt.err) {
			t.Errorf("Create(%q): expected %v, got %v", tt.name, tt.err, res.Err)
		}
	}

	if session.Mutations().Len() != 0 {
		t.Errorf("Failed creates must not touch the mutation log")
	}
	if !equalNames(session.Listing(), before...) {
		t.Errorf("Listing changed after failed creates: %v", itemNames(session.Listing()))
	}
}

func TestDeleteIsIdempotentAndForgiving(t *testing.T) {
	session := newTestSession(t, WithStartPath("/home"))

	for i := 0; i < 2; i++ {
		res := session.Dispatch(DeleteAction{Path: "/home/notes.md"})
		if res.Err != nil {
			t.Fatalf("Delete #%d failed: %v", i+1, res.Err)
		}
		if !equalNames(res.Items, "profile.txt", "settings.json") {
			t.Errorf("Unexpected listing after delete: %v", itemNames(res.Items))
		}
	}

	res := session.Dispatch(DeleteAction{Path: "/home/missing.txt"})
	if res.Err != nil {
		t.Errorf("Deleting a missing path should be a no-op, got %v", res.Err)
	}

	res = session.Dispatch(DeleteAction{Path: "home/notes.md"})
	if !errors.Is(res.Err, fsutil.ErrInvalidPath) {
		t.Errorf("Malformed delete path should fail with ErrInvalidPath, got %v", res.Err)
	}
}

func TestDeleteSelectedFileClearsSelection(t *testing.T) {
	session := newTestSession(t, WithStartPath("/home"))
	session.Dispatch(OpenAction{Item: file("/home/profile.txt")})

	res := session.Dispatch(DeleteAction{Path: "/home/profile.txt"})
	if res.State.SelectedItem != nil {
		t.Errorf("Deleting the selected file should clear selection")
	}
}

func TestMutationsDroppedWhenLeavingDirectory(t *testing.T) {
	session := newTestSession(t, WithStartPath("/home"))

	session.Dispatch(CreateAction{Name: "todo.txt"})
	session.Dispatch(DeleteAction{Path: "/home/notes.md"})
	session.Dispatch(BackAction{})
	res := session.Dispatch(OpenAction{Item: dir("/home")})

	if !equalNames(res.Items, "profile.txt", "settings.json", "notes.md") {
		t.Errorf("Expected original listing after returning, got %v", itemNames(res.Items))
	}
}

func TestRetainedMutationsSurviveNavigation(t *testing.T) {
	session := newTestSession(t, WithStartPath("/home"), WithRetainedMutations(true))

	session.Dispatch(CreateAction{Name: "todo.txt"})
	session.Dispatch(DeleteAction{Path: "/home/notes.md"})
	session.Dispatch(HomeAction{})
	res := session.Dispatch(OpenAction{Item: dir("/home")})

	if !equalNames(res.Items, "profile.txt", "settings.json", "todo.txt") {
		t.Errorf("Expected retained mutations, got %v", itemNames(res.Items))
	}
}

func TestCreateInUndeclaredDirectory(t *testing.T) {
	session := newTestSession(t, WithStartPath("/pictures/vacation"))

	res := session.Dispatch(CreateAction{Name: "beach.jpg"})
	if !equalNames(res.Items, "beach.jpg") {
		t.Errorf("Expected only the created file, got %v", itemNames(res.Items))
	}
}

func TestSearchAppliesToCreatedFiles(t *testing.T) {
	session := newTestSession(t, WithStartPath("/home"))

	session.Dispatch(SearchAction{Term: "TODO"})
	res := session.Dispatch(CreateAction{Name: "todo.txt"})
	if !equalNames(res.Items, "todo.txt") {
		t.Errorf("Expected filtered listing with todo.txt only, got %v", itemNames(res.Items))
	}
}
