package fs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"/", "/"},
		{"/documents", "/documents"},
		{"/documents/", "/documents"},
		{"/documents/work", "/documents/work"},
		{"/documents/./work", "/documents/work"},
		{"/documents/work/..", "/documents"},
		{"/..", "/"},
		{"/../home", "/home"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Normalize(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeRejectsMalformed(t *testing.T) {
	for _, in := range []string{"", "documents", "./a", "//", "//a", "/a//b", "/a//"} {
		t.Run(in, func(t *testing.T) {
			_, err := Normalize(in)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidPath), "want ErrInvalidPath, got %v", err)

			var pathErr *PathError
			require.True(t, errors.As(err, &pathErr))
			assert.Equal(t, in, pathErr.Path)
		})
	}
}

func TestParentOf(t *testing.T) {
	assert.Equal(t, "/", ParentOf("/"))
	assert.Equal(t, "/", ParentOf("/home"))
	assert.Equal(t, "/documents", ParentOf("/documents/work"))
	assert.Equal(t, "/documents/projects", ParentOf("/documents/projects/blog"))
}

func TestChildPath(t *testing.T) {
	assert.Equal(t, "/home", ChildPath("/", "home"))
	assert.Equal(t, "/home/todo.txt", ChildPath("/home", "todo.txt"))
}

func TestParentOfChildPathRoundTrip(t *testing.T) {
	store := NewDefaultStore()
	for _, p := range store.Paths() {
		assert.Equal(t, p, ParentOf(ChildPath(p, "x")), "parent of child of %s", p)
	}
}

func TestBaseAndSegments(t *testing.T) {
	assert.Equal(t, "/", Base("/"))
	assert.Equal(t, "work", Base("/documents/work"))
	assert.Nil(t, Segments("/"))
	assert.Equal(t, []string{"documents", "work"}, Segments("/documents/work"))
}

func TestIsDirectoryName(t *testing.T) {
	assert.True(t, IsDirectoryName("travel-planner"))
	assert.False(t, IsDirectoryName("report.pdf"))
	// known weak spot of the heuristic
	assert.False(t, IsDirectoryName("v1.2"))
}

func TestFileKindForName(t *testing.T) {
	tests := map[string]FileKind{
		"notes.md":      FileKindText,
		"profile.TXT":   FileKindText,
		"settings.json": FileKindConfig,
		"report.pdf":    FileKindPDF,
		"image.jpg":     FileKindImage,
		"video.mp4":     FileKindVideo,
		"data.xlsx":     FileKindOther,
		"archive.":      FileKindOther,
	}
	for name, want := range tests {
		assert.Equal(t, want, FileKindForName(name), name)
	}

	dir := Entry{Name: "work", Kind: KindDirectory}
	assert.Equal(t, FileKindNone, dir.FileKind())
}
