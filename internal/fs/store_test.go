package fs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreListChildren(t *testing.T) {
	store := NewDefaultStore()

	names, err := store.ListChildren("/documents")
	require.NoError(t, err)
	assert.Equal(t, []string{"work", "personal", "projects"}, names)

	// returned slice is a copy
	names[0] = "mutated"
	again, err := store.ListChildren("/documents")
	require.NoError(t, err)
	assert.Equal(t, "work", again[0])
}

func TestStoreUndeclaredPath(t *testing.T) {
	store := NewDefaultStore()

	_, err := store.ListChildren("/documents/projects/travel-planner")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrPathNotFound))
	assert.False(t, store.Has("/documents/projects/travel-planner"))
}

func TestStoreDeclaredLeafIsEmpty(t *testing.T) {
	store, err := NewStore(
		Directory{Path: "/", Children: []string{"empty"}},
		Directory{Path: "/empty"},
	)
	require.NoError(t, err)

	names, err := store.ListChildren("/empty")
	require.NoError(t, err)
	assert.Empty(t, names)
	assert.Equal(t, []string{"/", "/empty"}, store.Paths())
	assert.Equal(t, 2, store.Len())
}

func TestNewStoreNormalizesPaths(t *testing.T) {
	store, err := NewStore(Directory{Path: "/docs/", Children: []string{"a.txt"}})
	require.NoError(t, err)
	assert.True(t, store.Has("/docs"))
}

func TestNewStoreRejectsInvalidDeclarations(t *testing.T) {
	tests := []struct {
		name string
		dirs []Directory
		is   error
	}{
		{"relative path", []Directory{{Path: "docs"}}, ErrInvalidPath},
		{"empty child", []Directory{{Path: "/", Children: []string{""}}}, ErrInvalidName},
		{"slash in child", []Directory{{Path: "/", Children: []string{"a/b"}}}, ErrInvalidName},
		{"dot-dot child", []Directory{{Path: "/", Children: []string{".."}}}, ErrInvalidName},
		{"duplicate directory", []Directory{{Path: "/"}, {Path: "/"}}, nil},
		{"duplicate child", []Directory{{Path: "/", Children: []string{"a", "a"}}}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewStore(tt.dirs...)
			require.Error(t, err)
			if tt.is != nil {
				assert.True(t, errors.Is(err, tt.is), "got %v", err)
			}
		})
	}
}

func TestNewStoreNormalizesChildNamesToNFC(t *testing.T) {
	// "é" as e + combining acute accent
	store, err := NewStore(Directory{Path: "/", Children: []string{"cafe\u0301.txt"}})
	require.NoError(t, err)

	names, err := store.ListChildren("/")
	require.NoError(t, err)
	assert.Equal(t, []string{"caf\u00e9.txt"}, names)
}
