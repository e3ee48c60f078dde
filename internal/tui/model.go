package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/yukifiles/go/internal/cloud"
	"github.com/yukifiles/go/internal/types"
	"github.com/yukifiles/go/internal/ui"
)

type errMsg error

// pageMsg carries one page of files loaded from the service
type pageMsg struct {
	offset int
	files  []types.FileDescriptor
}

// Model is a bubbletea model paging through the remote file listing
type Model struct {
	svc      cloud.FileService
	limit    int
	offset   int
	files    []types.FileDescriptor
	loading  bool
	err      error
	spinner  spinner.Model
	viewport viewport.Model
}

// NewModel creates a browser showing limit files per page
func NewModel(svc cloud.FileService, limit int) Model {
	if limit <= 0 {
		limit = cloud.DefaultListLimit
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(ui.ColorSecondary)

	vp := viewport.New(80, 15)
	vp.Style = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(ui.ColorMuted).
		PaddingRight(2)

	return Model{
		svc:      svc,
		limit:    limit,
		loading:  true,
		spinner:  s,
		viewport: vp,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		m.loadCmd(0),
	)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "n", "right":
			if !m.loading && m.HasNext() {
				m.loading = true
				cmds = append(cmds, m.loadCmd(m.offset+m.limit))
			}
		case "p", "left":
			if !m.loading && m.offset > 0 {
				m.loading = true
				cmds = append(cmds, m.loadCmd(max(m.offset-m.limit, 0)))
			}
		case "r":
			if !m.loading {
				m.loading = true
				cmds = append(cmds, m.loadCmd(m.offset))
			}
		}
	case tea.WindowSizeMsg:
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-6, 3)
	case spinner.TickMsg:
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)
	case errMsg:
		m.err = msg
		m.loading = false
	case pageMsg:
		m.err = nil
		m.loading = false
		m.offset = msg.offset
		m.files = msg.files
		m.viewport.GotoTop()
	}

	m.viewport.SetContent(m.tableView())
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// HasNext reports whether another page may follow. A short page is the last one.
func (m Model) HasNext() bool {
	return len(m.files) == m.limit
}

// Page returns the 1-based page number
func (m Model) Page() int {
	return m.offset/m.limit + 1
}

func (m Model) View() string {
	var sb strings.Builder

	sb.WriteString("\n")
	sb.WriteString(ui.TitleStyle.Render(ui.IconCloud+" YukiFiles") + "\n")

	if m.loading {
		sb.WriteString(fmt.Sprintf(" %s %s\n", m.spinner.View(), ui.InfoStyle.Render("Loading files...")))
	} else if m.err != nil {
		sb.WriteString(ui.RenderError(m.err.Error()) + "\n")
	} else {
		sb.WriteString(ui.MutedStyle.Render(fmt.Sprintf(" Page %d, %d files", m.Page(), len(m.files))) + "\n")
	}

	sb.WriteString(m.viewport.View())
	sb.WriteString("\n" + ui.MutedStyle.Render("n/→ next • p/← previous • r refresh • q quit") + "\n")

	return sb.String()
}

func (m Model) tableView() string {
	table := ui.NewFileTable([]string{"ID", "NAME", "SIZE", "TYPE"})
	for _, f := range m.files {
		table.AddRow(f.ID, f.Name, ui.FormatSize(f.Size), f.MimeType)
	}
	return table.View()
}

func (m Model) loadCmd(offset int) tea.Cmd {
	svc, limit := m.svc, m.limit
	return func() tea.Msg {
		files, err := svc.ListFiles(limit, offset)
		if err != nil {
			return errMsg(err)
		}
		return pageMsg{offset: offset, files: files}
	}
}

// Run starts the browser on the terminal
func Run(svc cloud.FileService, limit int) error {
	_, err := tea.NewProgram(NewModel(svc, limit), tea.WithAltScreen()).Run()
	return err
}
