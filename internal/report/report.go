package report

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/yukifiles/go/internal/types"
)

// Report collects the outcome of a batch upload and writes it as markdown.
// Failed files from an earlier report at the same path are carried over
// until they are uploaded.
type Report struct {
	path     string
	uploaded []types.UploadResult
	failed   map[string]string
	now      func() time.Time
}

// New creates a report that will be written to path. An existing report is
// read so its pending retries are kept.
func New(path string) (*Report, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("report path is required")
	}

	r := &Report{
		path:   path,
		failed: make(map[string]string),
		now:    time.Now,
	}

	content, err := os.ReadFile(path)
	if err == nil {
		for p, msg := range extractPendingFromMD(string(content)) {
			r.failed[p] = msg
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("read existing report: %w", err)
	}

	return r, nil
}

// Add records a single upload result
func (r *Report) Add(result types.UploadResult) {
	if result.Error != "" {
		// one line per item; multi-line response bodies are flattened
		r.failed[result.Path] = strings.Join(strings.Fields(result.Error), " ")
		return
	}
	delete(r.failed, result.Path)
	r.uploaded = append(r.uploaded, result)
}

// Pending returns the paths still waiting for a successful upload, sorted
func (r *Report) Pending() []string {
	paths := make([]string, 0, len(r.failed))
	for p := range r.failed {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Write writes the report to its markdown file
func (r *Report) Write() error {
	return os.WriteFile(r.path, []byte(r.generateMD()), 0644)
}

// Path returns where the report is written
func (r *Report) Path() string {
	return r.path
}

func (r *Report) generateMD() string {
	var md strings.Builder

	md.WriteString("# Upload report\n\n")
	md.WriteString(fmt.Sprintf("Updated: %s\n\n", r.now().Format("2006-01-02 15:04:05")))

	if len(r.uploaded) > 0 {
		md.WriteString("## Uploaded\n\n")
		for _, res := range r.uploaded {
			if res.File == nil {
				md.WriteString(fmt.Sprintf("- [x] `%s`\n", res.Path))
				continue
			}
			md.WriteString(fmt.Sprintf("- [x] `%s` id=%s sha256=%s\n", res.Path, res.File.ID, res.File.Hash))
		}
		md.WriteString("\n")
	}

	pending := r.Pending()
	if len(pending) > 0 {
		md.WriteString("## Retry\n\n")
		for _, p := range pending {
			md.WriteString(fmt.Sprintf("- [ ] `%s`: %s\n", p, r.failed[p]))
		}
		md.WriteString("\n")
	}

	if len(r.uploaded) == 0 && len(pending) == 0 {
		md.WriteString("Nothing was uploaded.\n\n")
	}

	md.WriteString("---\n")
	md.WriteString("*Generated by yukifiles*\n")

	return md.String()
}

// extractPendingFromMD returns the unchecked retry items of a report
func extractPendingFromMD(content string) map[string]string {
	items := make(map[string]string)

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "- [ ] `") {
			continue
		}

		rest := strings.TrimPrefix(line, "- [ ] `")
		end := strings.Index(rest, "`")
		if end <= 0 {
			continue
		}
		path := rest[:end]
		msg := strings.TrimSpace(strings.TrimPrefix(rest[end+1:], ":"))
		items[path] = msg
	}

	return items
}
