package report

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukifiles/go/internal/types"
)

func TestReportNewAndWrite(t *testing.T) {
	tmpDir := t.TempDir()
	reportFile := filepath.Join(tmpDir, "uploads.md")

	r, err := New(reportFile)
	require.NoError(t, err)
	r.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }

	r.Add(types.UploadResult{
		Path: "/data/a.txt",
		File: &types.FileDescriptor{ID: "f1", Hash: "abc123"},
	})
	r.Add(types.UploadResult{Path: "/data/b.txt", Error: "status 500"})

	require.NoError(t, r.Write())

	content, err := os.ReadFile(reportFile)
	require.NoError(t, err)
	text := string(content)
	assert.Contains(t, text, "Updated: 2026-01-02 03:04:05")
	assert.Contains(t, text, "- [x] `/data/a.txt` id=f1 sha256=abc123")
	assert.Contains(t, text, "- [ ] `/data/b.txt`: status 500")
}

func TestReportCarriesOverPendingRetries(t *testing.T) {
	reportFile := filepath.Join(t.TempDir(), "uploads.md")

	first, err := New(reportFile)
	require.NoError(t, err)
	first.Add(types.UploadResult{Path: "/data/b.txt", Error: "timeout"})
	first.Add(types.UploadResult{Path: "/data/c.txt", Error: "status 403"})
	require.NoError(t, first.Write())

	second, err := New(reportFile)
	require.NoError(t, err)
	assert.Equal(t, []string{"/data/b.txt", "/data/c.txt"}, second.Pending())

	second.Add(types.UploadResult{Path: "/data/b.txt", File: &types.FileDescriptor{ID: "f2"}})
	assert.Equal(t, []string{"/data/c.txt"}, second.Pending())
}

func TestExtractPendingFromMD(t *testing.T) {
	content := "# Upload report\n" +
		"- [x] `/ok.txt` id=1 sha256=x\n" +
		"- [ ] `/dir/with: colon.txt`: status 500\n" +
		"- [ ] not a path item\n"

	items := extractPendingFromMD(content)
	assert.Equal(t, map[string]string{"/dir/with: colon.txt": "status 500"}, items)
}

func TestEmptyReport(t *testing.T) {
	reportFile := filepath.Join(t.TempDir(), "uploads.md")
	r, err := New(reportFile)
	require.NoError(t, err)
	require.NoError(t, r.Write())

	content, err := os.ReadFile(reportFile)
	require.NoError(t, err)
	assert.Contains(t, string(content), "Nothing was uploaded.")
}

func TestNewRequiresPath(t *testing.T) {
	_, err := New(" ")
	assert.Error(t, err)
}

func TestReportFlattensMultiLineErrors(t *testing.T) {
	reportFile := filepath.Join(t.TempDir(), "uploads.md")

	r, err := New(reportFile)
	require.NoError(t, err)
	r.Add(types.UploadResult{Path: "/data/a.txt", Error: "cloud: POST https://up.example.com/put: status 502: <html>\n<body>Bad Gateway</body>\n</html>"})
	r.Add(types.UploadResult{Path: "/data/b.txt", Error: "quota exceeded"})
	require.NoError(t, r.Write())

	content, err := os.ReadFile(reportFile)
	require.NoError(t, err)
	assert.Contains(t, string(content), "- [ ] `/data/a.txt`: cloud: POST https://up.example.com/put: status 502: <html> <body>Bad Gateway</body> </html>\n")

	reopened, err := New(reportFile)
	require.NoError(t, err)
	assert.Equal(t, []string{"/data/a.txt", "/data/b.txt"}, reopened.Pending())
	assert.Equal(t, "cloud: POST https://up.example.com/put: status 502: <html> <body>Bad Gateway</body> </html>", reopened.failed["/data/a.txt"])
}
