package ui

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/yukifiles/go/internal/types"
)

func init() {
	// Force color output for testing
	lipgloss.SetColorProfile(termenv.TrueColor)
}

func TestRenderSuccess(t *testing.T) {
	msg := "Operation successful"
	output := RenderSuccess(msg)

	assert.Contains(t, output, msg)
	assert.Contains(t, output, IconSuccess)

	// Styled output is not raw text
	assert.NotEqual(t, IconSuccess+" "+msg, output)
}

func TestRenderError(t *testing.T) {
	msg := "Something went wrong"
	output := RenderError(msg)

	assert.Contains(t, output, msg)
	assert.Contains(t, output, IconError)
}

func TestRenderWarning(t *testing.T) {
	output := RenderWarning("Be careful")

	assert.Contains(t, output, "Be careful")
	assert.Contains(t, output, IconWarning)
}

func TestRenderFileRename(t *testing.T) {
	output := RenderFileRename("old.txt", "new.txt")

	assert.Contains(t, output, "old.txt")
	assert.Contains(t, output, "new.txt")
	assert.Contains(t, output, IconArrowRight)
}

func TestRenderFileDelete(t *testing.T) {
	output := RenderFileDelete("deleted.txt")

	// \x1b[9m is strikethrough, possibly merged into a longer SGR sequence
	assert.True(t, strings.Contains(output, ";9m") || strings.Contains(output, "\x1b[9m"), "Expected strikethrough ansi code")
}

func TestRenderCount(t *testing.T) {
	assert.Contains(t, RenderCount(42), "42")
}

func TestFormatSize(t *testing.T) {
	testCases := []struct {
		input    int64
		expected string
	}{
		{0, "0 B"},
		{9, "9 B"},
		{1023, "1023 B"},
		{1024, "1.0 KiB"},
		{1536, "1.5 KiB"},
		{5 * 1024 * 1024, "5.0 MiB"},
		{3 * 1024 * 1024 * 1024, "3.0 GiB"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, FormatSize(tc.input), "Input: %d", tc.input)
	}
}

func TestPrinterJSONModeIsSilent(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinterTo(&buf, false, true)

	p.Banner()
	p.PrintFiles("Files", []types.FileDescriptor{{ID: "f1"}})
	p.Success("done")
	p.PrintShareLink(&types.ShareLink{URL: "u"})

	assert.Empty(t, buf.String())
}

func TestPrinterPrintFiles(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinterTo(&buf, false, false)

	p.PrintFiles("Files", []types.FileDescriptor{
		{ID: "f1", Name: "hello.txt", Size: 9, MimeType: "text/plain"},
		{ID: "f2", Name: "photo.png", Size: 2048, MimeType: "image/png"},
	})

	out := buf.String()
	assert.Contains(t, out, "hello.txt")
	assert.Contains(t, out, "9 B")
	assert.Contains(t, out, "photo.png")
	assert.Contains(t, out, "2.0 KiB")
}

func TestPrinterPrintShareLink(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinterTo(&buf, false, false)

	expires := time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)
	p.PrintShareLink(&types.ShareLink{URL: "https://yuki.example/s/abc", ExpiresAt: &expires, PasswordProtected: true})

	out := buf.String()
	assert.Contains(t, out, "https://yuki.example/s/abc")
	assert.Contains(t, out, "2026-10-17 12:00:00")
	assert.Contains(t, out, "password protected")
}

func TestPrinterPrintUploadResult(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinterTo(&buf, true, false)

	p.PrintUploadResult(types.UploadResult{Path: "a.txt", File: &types.FileDescriptor{ID: "f1", Hash: "abc"}})
	p.PrintUploadResult(types.UploadResult{Path: "b.txt", Error: "status 500"})

	out := buf.String()
	assert.Contains(t, out, "UPLOADED")
	assert.Contains(t, out, "sha256=abc")
	assert.Contains(t, out, "FAILED")
	assert.Contains(t, out, "status 500")
}

func TestProgressBarView(t *testing.T) {
	pb := NewProgressBar(2, "Uploading")
	pb.Increment()
	pb.Increment()
	pb.Increment()

	assert.Contains(t, pb.View(), "2/2")

	empty := NewProgressBar(0, "Nothing")
	assert.Contains(t, empty.View(), "0/0")
}

func TestOperationSummaryView(t *testing.T) {
	s := &OperationSummary{Uploaded: 3, Failed: 1, Bytes: 2048}
	out := s.View()

	assert.Contains(t, out, "Files uploaded")
	assert.Contains(t, out, "3")
	assert.Contains(t, out, "2.0 KiB")
	assert.Contains(t, out, "Failed")
	assert.NotContains(t, out, "Pending retries")
}

func TestFileTableEmpty(t *testing.T) {
	table := NewFileTable([]string{"ID"})
	assert.Contains(t, table.View(), "(no items)")
}
