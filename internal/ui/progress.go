package ui

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// ProgressBar represents a styled progress bar
type ProgressBar struct {
	progress progress.Model
	current  int
	total    int
	label    string
	mu       sync.Mutex
}

// NewProgressBar creates a new progress bar
func NewProgressBar(total int, label string) *ProgressBar {
	p := progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(40),
		progress.WithoutPercentage(),
	)
	p.FullColor = string(ColorPrimary)
	p.EmptyColor = string(ColorMuted)

	return &ProgressBar{
		progress: p,
		current:  0,
		total:    total,
		label:    label,
	}
}

// Increment increments the progress
func (pb *ProgressBar) Increment() {
	pb.mu.Lock()
	defer pb.mu.Unlock()
	if pb.current < pb.total {
		pb.current++
	}
}

// View returns the rendered progress bar
func (pb *ProgressBar) View() string {
	pb.mu.Lock()
	defer pb.mu.Unlock()

	percent := 0.0
	if pb.total > 0 {
		percent = float64(pb.current) / float64(pb.total)
	}

	bar := pb.progress.ViewAs(percent)
	countStr := CountStyle.Render(fmt.Sprintf("%d/%d", pb.current, pb.total))

	return fmt.Sprintf("%s %s %s", InfoStyle.Render(pb.label), bar, countStr)
}

// OperationSummary displays a summary of a batch upload
type OperationSummary struct {
	Uploaded int
	Failed   int
	Bytes    int64
	Pending  int
}

// View returns the formatted summary
func (s *OperationSummary) View() string {
	var sb strings.Builder

	sb.WriteString(TitleStyle.Render("📊 Upload Summary") + "\n")
	sb.WriteString(strings.Repeat("─", 40) + "\n\n")

	sb.WriteString(fmt.Sprintf("  %s Files uploaded:      %s\n",
		IconUpload, RenderCount(s.Uploaded)))

	if s.Bytes > 0 {
		sb.WriteString(fmt.Sprintf("  %s Bytes sent:          %s\n",
			IconCloud, CountStyle.Render(FormatSize(s.Bytes))))
	}

	if s.Failed > 0 {
		sb.WriteString(fmt.Sprintf("  %s Failed:              %s\n",
			IconError, ErrorStyle.Render(fmt.Sprintf("%d", s.Failed))))
	}

	if s.Pending > 0 {
		sb.WriteString(fmt.Sprintf("  %s Pending retries:     %s\n",
			IconUncheck, WarningStyle.Render(fmt.Sprintf("%d", s.Pending))))
	}

	sb.WriteString("\n" + strings.Repeat("─", 40))

	return BoxStyle.Render(sb.String())
}

// FileTable displays a styled table of files
type FileTable struct {
	Headers []string
	Rows    [][]string
}

// NewFileTable creates a new file table
func NewFileTable(headers []string) *FileTable {
	return &FileTable{
		Headers: headers,
		Rows:    make([][]string, 0),
	}
}

// AddRow adds a row to the table
func (t *FileTable) AddRow(row ...string) {
	t.Rows = append(t.Rows, row)
}

// View renders the table
func (t *FileTable) View() string {
	if len(t.Rows) == 0 {
		return MutedStyle.Render("(no items)")
	}

	// Calculate column widths
	widths := make([]int, len(t.Headers))
	for i, h := range t.Headers {
		widths[i] = len(h)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = min(len(cell), 50) // Cap at 50 chars
			}
		}
	}

	var sb strings.Builder

	// Headers
	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorSecondary).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(ColorMuted)

	var headerCells []string
	for i, h := range t.Headers {
		headerCells = append(headerCells, lipgloss.NewStyle().
			Width(widths[i]).
			Render(h))
	}
	sb.WriteString(headerStyle.Render(strings.Join(headerCells, "  ")))
	sb.WriteString("\n")

	// Rows
	for _, row := range t.Rows {
		var cells []string
		for i, cell := range row {
			if i < len(widths) {
				// Truncate if needed
				displayCell := cell
				if len(cell) > widths[i] {
					displayCell = cell[:widths[i]-3] + "..."
				}
				cells = append(cells, lipgloss.NewStyle().
					Width(widths[i]).
					Render(displayCell))
			}
		}
		sb.WriteString(strings.Join(cells, "  "))
		sb.WriteString("\n")
	}

	return sb.String()
}
