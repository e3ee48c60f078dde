package scanner

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestScannerCreatesCorrectFileInfo(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, "report.pdf"), "some content")

	s, err := New(tmpDir, 1)
	require.NoError(t, err)

	files, err := s.Scan()
	require.NoError(t, err)
	require.Len(t, files, 1)

	f := files[0]
	assert.Equal(t, "report.pdf", f.Name)
	assert.Equal(t, int64(len("some content")), f.Size)
	assert.True(t, filepath.IsAbs(f.Path))
	assert.True(t, f.ModifiedTime.Before(time.Now().Add(time.Second)))
}

func TestScannerSkipsHiddenAndPartialFiles(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, "keep.txt"), "x")
	writeFile(t, filepath.Join(tmpDir, ".secret"), "x")
	writeFile(t, filepath.Join(tmpDir, ".git", "config"), "x")
	writeFile(t, filepath.Join(tmpDir, "movie.mp4.crdownload"), "x")
	writeFile(t, filepath.Join(tmpDir, "node_modules", "pkg.js"), "x")

	s, err := New(tmpDir, Unlimited)
	require.NoError(t, err)

	files, err := s.Scan()
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "keep.txt", files[0].Name)
}

func TestScannerRespectsMaxDepth(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, "top.txt"), "x")
	writeFile(t, filepath.Join(tmpDir, "a", "mid.txt"), "x")
	writeFile(t, filepath.Join(tmpDir, "a", "b", "deep.txt"), "x")

	testCases := []struct {
		depth    int
		expected int
	}{
		{1, 1},
		{2, 2},
		{Unlimited, 3},
	}

	for _, tc := range testCases {
		s, err := New(tmpDir, tc.depth)
		require.NoError(t, err)
		files, err := s.Scan()
		require.NoError(t, err)
		assert.Len(t, files, tc.expected, "depth %d", tc.depth)
	}
}

func TestNewRejectsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file.txt")
	writeFile(t, path, "x")

	_, err := New(path, 1)
	assert.Error(t, err)
}

func TestCollectMixesFilesAndDirectories(t *testing.T) {
	tmpDir := t.TempDir()
	single := filepath.Join(tmpDir, "single.txt")
	writeFile(t, single, "x")
	writeFile(t, filepath.Join(tmpDir, "dir", "one.txt"), "x")
	writeFile(t, filepath.Join(tmpDir, "dir", "two.txt"), "x")

	files, err := Collect([]string{single, filepath.Join(tmpDir, "dir"), single}, Unlimited)
	require.NoError(t, err)
	require.Len(t, files, 3)
	assert.Equal(t, "single.txt", files[0].Name)
	assert.Equal(t, "one.txt", files[1].Name)
	assert.Equal(t, "two.txt", files[2].Name)
}

func TestCollectMissingPath(t *testing.T) {
	_, err := Collect([]string{filepath.Join(t.TempDir(), "missing")}, Unlimited)
	assert.True(t, os.IsNotExist(err))
}

func TestDetectSyncFolder(t *testing.T) {
	tests := []struct {
		path string
		want SyncProvider
	}{
		{"/Users/me/Library/CloudStorage/Dropbox/docs", Dropbox},
		{"/home/me/Dropbox/a.txt", Dropbox},
		{"/Users/me/Library/CloudStorage/GoogleDrive-me@example.com/My Drive", GoogleDrive},
		{"/Users/me/Google Drive/x", GoogleDrive},
		{"C:/Users/me/OneDrive/Documents", OneDrive},
		{"/Users/me/Library/CloudStorage/Dropbox (Personal)/a", Dropbox},
		{"/Users/me/Library/CloudStorage/OneDrive - Contoso/a", OneDrive},
		{"/home/me/projects", NoSync},
		{"/home/me/MyDropboxBackup/a.txt", NoSync},
		{"/home/me/notes/OneDriveMigration.md", NoSync},
		{"/home/me/dropbox/a.txt", NoSync},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectSyncFolder(tt.path))
		})
	}
	assert.Contains(t, SyncWarning(OneDrive), "OneDrive")
}
