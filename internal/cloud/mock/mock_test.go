package mock

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukifiles/go/internal/cloud"
	"github.com/yukifiles/go/internal/types"
)

func TestMockUploadDownloadRoundTrip(t *testing.T) {
	m := New()
	dir := t.TempDir()
	local := filepath.Join(dir, "hello.txt")
	require.NoError(t, os.WriteFile(local, []byte("hello!!!!"), 0644))

	desc, err := m.UploadFile(local, "greeting")
	require.NoError(t, err)
	assert.Equal(t, "hello.txt", desc.Name)
	assert.Equal(t, int64(9), desc.Size)
	assert.Equal(t, "text/plain", desc.MimeType)
	assert.Equal(t, "10b0337941cb0652fb9135e5d0dfb7c0904f9a2ef5f8712be40342c17b7c8183", desc.Hash)

	out := filepath.Join(dir, "copy.txt")
	_, err = m.DownloadFile(desc.ID, out)
	require.NoError(t, err)
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "hello!!!!", string(data))
}

func TestMockUploadMissingFile(t *testing.T) {
	m := New()
	_, err := m.UploadFile(filepath.Join(t.TempDir(), "missing"), "")

	var nf *cloud.NotFoundError
	assert.ErrorAs(t, err, &nf)
	assert.Empty(t, m.Calls())
}

func TestMockListPaging(t *testing.T) {
	m := New()
	for i := 0; i < 5; i++ {
		m.Seed("file.txt", []byte{byte(i)})
	}

	first, err := m.ListFiles(3, 0)
	require.NoError(t, err)
	second, err := m.ListFiles(3, 3)
	require.NoError(t, err)
	empty, err := m.ListFiles(3, 10)
	require.NoError(t, err)

	assert.Len(t, first, 3)
	assert.Len(t, second, 2)
	assert.Empty(t, empty)
	assert.Equal(t, "f4", second[0].ID)
}

func TestMockUpdateKeepsOmittedFields(t *testing.T) {
	m := New()
	seeded := m.Seed("a.txt", []byte("x"))
	_, err := m.UpdateFile(seeded.ID, types.UpdateRequest{Description: "first"})
	require.NoError(t, err)

	updated, err := m.UpdateFile(seeded.ID, types.UpdateRequest{})
	require.NoError(t, err)
	assert.Equal(t, "a.txt", updated.Name)
	assert.Equal(t, "first", updated.Description)
}

func TestMockDeleteAndNotFound(t *testing.T) {
	m := New()
	seeded := m.Seed("a.txt", []byte("x"))

	ok, err := m.DeleteFile(seeded.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = m.DeleteFile(seeded.ID)
	assert.False(t, ok)
	assert.True(t, cloud.IsNotFound(err))
}

func TestMockSearchAndShare(t *testing.T) {
	m := New()
	doc := m.Seed("document.txt", []byte("0123456789"))
	m.Seed("document.png", []byte("png"))
	m.Seed("notes.txt", []byte("n"))

	files, err := m.SearchFiles(types.SearchFilter{Query: "document", FileType: "text/plain"})
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, doc.ID, files[0].ID)

	files, err = m.SearchFiles(types.SearchFilter{Query: "doc", MinSize: 5})
	require.NoError(t, err)
	assert.Len(t, files, 1)

	link, err := m.CreateShareLink(doc.ID, types.ShareRequest{ExpiresIn: "24h"})
	require.NoError(t, err)
	assert.Equal(t, "24h", link.ExpiresIn)
	assert.False(t, link.PasswordProtected)
}

func TestMockFailOn(t *testing.T) {
	m := New()
	boom := errors.New("boom")
	m.FailOn("ListFiles", boom)

	_, err := m.ListFiles(10, 0)
	assert.ErrorIs(t, err, boom)

	m.FailOn("ListFiles", nil)
	_, err = m.ListFiles(10, 0)
	assert.NoError(t, err)
	assert.Equal(t, []string{"ListFiles", "ListFiles"}, m.Calls())
}
