package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeFilename(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"photo.jpg", "photo.jpg"},
		{"photo_20230001_me.jpg", "photo_20230001_me.jpg"},
		{"../../etc/passwd", "passwd"},
		{"..\\..\\boot.ini", "boot.ini"},
		{"my photo (1).png", "my_photo_1_.png"},
		{"..", ""},
		{"...", ""},
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, SanitizeFilename(tc.in), "input %q", tc.in)
	}
}

func TestLocalStoragePathStaysInsideBase(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStorage(dir)
	require.NoError(t, err)

	got := store.Path("../../escape.txt")
	assert.Equal(t, filepath.Join(dir, "escape.txt"), got)
}

func TestNewLocalStorageRequiresDir(t *testing.T) {
	_, err := NewLocalStorage("")
	assert.Error(t, err)
}
