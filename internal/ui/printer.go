package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/yukifiles/go/internal/types"
)

// Printer handles all console output with rich styling
type Printer struct {
	out     io.Writer
	verbose bool
	json    bool
}

// NewPrinter creates a new printer writing to stdout
func NewPrinter(verbose, json bool) *Printer {
	return NewPrinterTo(os.Stdout, verbose, json)
}

// NewPrinterTo creates a printer writing to out
func NewPrinterTo(out io.Writer, verbose, json bool) *Printer {
	return &Printer{
		out:     out,
		verbose: verbose,
		json:    json,
	}
}

// Writer returns the printer's destination
func (p *Printer) Writer() io.Writer {
	return p.out
}

// Banner prints the application banner
func (p *Printer) Banner() {
	if p.json {
		return
	}

	banner := lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorSecondary).
		Render(`
   ╔═══════════════════════════════════════╗
   ║      ☁  YukiFiles client              ║
   ║   Upload, share & manage your files   ║
   ╚═══════════════════════════════════════╝
`)
	fmt.Fprintln(p.out, banner)
}

// Section prints a section header
func (p *Printer) Section(title string) {
	if p.json {
		return
	}

	header := SectionStyle.Render(title)
	fmt.Fprintln(p.out, header)
}

// PrintFiles prints files as a table
func (p *Printer) PrintFiles(title string, files []types.FileDescriptor) {
	if p.json {
		return
	}

	p.Section(fmt.Sprintf("%s %s (%d)", IconFolder, title, len(files)))

	table := NewFileTable([]string{"ID", "NAME", "SIZE", "TYPE"})
	for _, f := range files {
		table.AddRow(f.ID, f.Name, FormatSize(f.Size), f.MimeType)
	}
	fmt.Fprintln(p.out, table.View())
}

// PrintFileDetails prints every known field of a file
func (p *Printer) PrintFileDetails(f *types.FileDescriptor) {
	if p.json {
		return
	}

	p.Section(fmt.Sprintf("%s %s", IconFile, f.Name))

	rows := [][2]string{
		{"ID", IDStyle.Render(f.ID)},
		{"Size", fmt.Sprintf("%s (%d bytes)", FormatSize(f.Size), f.Size)},
		{"Type", f.MimeType},
		{"SHA-256", f.Hash},
	}
	if f.Description != "" {
		rows = append(rows, [2]string{"Description", f.Description})
	}
	if f.CreatedAt != nil {
		rows = append(rows, [2]string{"Created", f.CreatedAt.Format("2006-01-02 15:04:05")})
	}
	if f.UpdatedAt != nil {
		rows = append(rows, [2]string{"Updated", f.UpdatedAt.Format("2006-01-02 15:04:05")})
	}

	for _, row := range rows {
		fmt.Fprintf(p.out, "  %s %s\n",
			SubtitleStyle.Render(fmt.Sprintf("%-12s", row[0])),
			row[1])
	}
	fmt.Fprintln(p.out)
}

// PrintUploadResult prints the outcome of a single upload
func (p *Printer) PrintUploadResult(res types.UploadResult) {
	if p.json {
		return
	}

	if res.Error != "" {
		fmt.Fprintf(p.out, "  %s %s %s\n",
			BadgeError.Render("FAILED"),
			FilePathStyle.Render(res.Path),
			ErrorStyle.Render(res.Error))
		return
	}

	line := fmt.Sprintf("  %s %s %s %s",
		BadgeSuccess.Render("UPLOADED"),
		FilePathStyle.Render(res.Path),
		ArrowStyle.Render(IconArrowRight),
		IDStyle.Render(res.File.ID))
	if p.verbose {
		line += " " + MutedStyle.Render("sha256="+res.File.Hash)
	}
	fmt.Fprintln(p.out, line)
}

// PrintUpdated prints an updated file
func (p *Printer) PrintUpdated(before string, f *types.FileDescriptor) {
	if p.json {
		return
	}

	if before != "" && before != f.Name {
		fmt.Fprintln(p.out, RenderSuccess("Renamed "+RenderFileRename(before, f.Name)))
	} else {
		fmt.Fprintln(p.out, RenderSuccess(fmt.Sprintf("Updated %s", NewNameStyle.Render(f.Name))))
	}
	if f.Description != "" {
		fmt.Fprintf(p.out, "  %s %s\n", MutedStyle.Render("description:"), f.Description)
	}
}

// PrintDeleted prints a deleted file id
func (p *Printer) PrintDeleted(fileID string) {
	if p.json {
		return
	}
	fmt.Fprintln(p.out, RenderSuccess(fmt.Sprintf("%s Deleted %s", IconDelete, RenderFileDelete(fileID))))
}

// PrintDownloaded prints where a file was saved
func (p *Printer) PrintDownloaded(fileID, path string) {
	if p.json {
		return
	}
	fmt.Fprintln(p.out, RenderSuccess(fmt.Sprintf("%s Downloaded %s %s %s",
		IconDownload, IDStyle.Render(fileID), ArrowStyle.Render(IconArrowRight), FilePathStyle.Render(path))))
}

// PrintShareLink prints a created share link
func (p *Printer) PrintShareLink(link *types.ShareLink) {
	if p.json {
		return
	}

	p.Section(fmt.Sprintf("%s Share link", IconShare))
	fmt.Fprintf(p.out, "  %s\n", NewNameStyle.Render(link.URL))

	var details []string
	if link.ExpiresAt != nil {
		details = append(details, "expires "+link.ExpiresAt.Format("2006-01-02 15:04:05"))
	} else if link.ExpiresIn != "" {
		details = append(details, "expires in "+link.ExpiresIn)
	}
	if len(details) > 0 {
		fmt.Fprintf(p.out, "  %s\n", MutedStyle.Render(strings.Join(details, ", ")))
	}
	if link.PasswordProtected {
		fmt.Fprintf(p.out, "  %s\n", BadgeInfo.Render(IconLock+" password protected"))
	}
	fmt.Fprintln(p.out)
}

// PrintSummary prints the operation summary
func (p *Printer) PrintSummary(summary *OperationSummary) {
	if p.json {
		return
	}

	fmt.Fprintln(p.out, summary.View())
}

// Success prints a success message
func (p *Printer) Success(msg string) {
	if p.json {
		return
	}
	fmt.Fprintln(p.out, RenderSuccess(msg))
}

// Warning prints a warning message
func (p *Printer) Warning(msg string) {
	if p.json {
		return
	}
	fmt.Fprintln(p.out, RenderWarning(msg))
}

// Error prints an error message
func (p *Printer) Error(msg string) {
	if p.json {
		return
	}
	fmt.Fprintln(p.out, RenderError(msg))
}

// Info prints an info message
func (p *Printer) Info(msg string) {
	if p.json {
		return
	}
	fmt.Fprintln(p.out, RenderInfo(msg))
}

// Divider prints a divider line
func (p *Printer) Divider() {
	if p.json {
		return
	}
	fmt.Fprintln(p.out, MutedStyle.Render(strings.Repeat("─", 50)))
}

// ReportWritten prints the report location
func (p *Printer) ReportWritten(path string) {
	if p.json {
		return
	}

	fmt.Fprintln(p.out, RenderSuccess(fmt.Sprintf("Report written to %s", FilePathStyle.Render(path))))
}
