package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"photoorder/internal/domain"
)

// Phase represents the current state of the TUI
type Phase int

const (
	PhaseCopying Phase = iota
	PhaseDone
	PhaseError
)

const recentLimit = 6

// Messages for the TUI
type (
	CopyStartedMsg struct {
		Folders int
	}
	FolderStartedMsg struct {
		Index int
		Path  string
	}
	FolderSkippedMsg struct {
		Folder domain.FolderReport
	}
	FileProcessedMsg struct {
		Result domain.FileResult
	}
	FolderFinishedMsg struct {
		Folder domain.FolderReport
	}
	CopyDoneMsg struct {
		Report domain.CopyReport
	}
	ErrorMsg struct {
		Err error
	}
)

// Config for the TUI
type Config struct {
	InputFile string
	OutputDir string
	// StartCopy runs the whole copy and returns CopyDoneMsg or ErrorMsg.
	StartCopy func() tea.Cmd
}

// Model is the live view of one copy run.
type Model struct {
	config        Config
	Phase         Phase
	Report        domain.CopyReport
	Err           error
	Quitting      bool
	spinner       spinner.Model
	progress      progress.Model
	folders       int
	foldersDone   int
	currentFolder string
	copied        int
	skipped       int
	recent        []string
	missing       []string
	notDirs       []string
	width         int
}

// NewModel creates a new TUI model
func NewModel(cfg Config) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	p := progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(50),
		progress.WithoutPercentage(),
	)

	return Model{
		config:   cfg,
		Phase:    PhaseCopying,
		spinner:  s,
		progress: p,
		width:    80,
	}
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spinner.Tick}
	if m.config.StartCopy != nil {
		cmds = append(cmds, m.config.StartCopy())
	}
	return tea.Batch(cmds...)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.progress.Width = min(msg.Width-20, 60)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.Quitting = true
			return m, tea.Quit
		case "enter":
			if m.Phase == PhaseDone || m.Phase == PhaseError {
				return m, tea.Quit
			}
		}

	case CopyStartedMsg:
		m.folders = msg.Folders
		return m, nil

	case FolderStartedMsg:
		m.currentFolder = msg.Path
		return m, nil

	case FolderSkippedMsg:
		m.foldersDone++
		if msg.Folder.NotDir {
			m.notDirs = append(m.notDirs, msg.Folder.Path)
		} else {
			m.missing = append(m.missing, msg.Folder.Path)
		}
		return m, m.progress.SetPercent(m.percent())

	case FileProcessedMsg:
		if msg.Result.Status.Skipped() {
			m.skipped++
		} else {
			m.copied++
		}
		m.recent = append(m.recent, formatResult(msg.Result))
		if len(m.recent) > recentLimit {
			m.recent = m.recent[len(m.recent)-recentLimit:]
		}
		return m, nil

	case FolderFinishedMsg:
		m.foldersDone++
		return m, m.progress.SetPercent(m.percent())

	case CopyDoneMsg:
		m.Phase = PhaseDone
		m.Report = msg.Report
		m.copied = msg.Report.Copied
		m.skipped = msg.Report.Skipped
		m.foldersDone = m.folders
		return m, m.progress.SetPercent(1)

	case ErrorMsg:
		m.Phase = PhaseError
		m.Err = msg.Err
		return m, nil

	case spinner.TickMsg:
		if m.Phase == PhaseCopying {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress = progressModel.(progress.Model)
		return m, cmd
	}

	return m, nil
}

// Aborted reports whether the user quit before the copy finished.
func (m Model) Aborted() bool {
	return m.Quitting && m.Phase == PhaseCopying
}

func (m Model) percent() float64 {
	if m.folders == 0 {
		return 0
	}
	return float64(m.foldersDone) / float64(m.folders)
}

func (m Model) View() string {
	if m.Quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	switch m.Phase {
	case PhaseCopying:
		b.WriteString(m.renderProgress())
	case PhaseDone:
		b.WriteString(m.renderProgress())
		b.WriteString("\n")
		b.WriteString(m.renderSummary())
	case PhaseError:
		b.WriteString(m.renderError())
	}

	b.WriteString("\n")
	b.WriteString(m.renderHelp())
	return b.String()
}

func (m Model) renderHeader() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("📷 Photo Organizer"),
		subtitleStyle.Render("Copy by DateTimeOriginal"),
		"",
		dimStyle.Render(fmt.Sprintf("%s Input:  %s", iconFolder, shortenPath(m.config.InputFile))),
		dimStyle.Render(fmt.Sprintf("%s Output: %s", iconFolder, shortenPath(m.config.OutputDir))),
	)
}

func (m Model) renderProgress() string {
	var b strings.Builder

	b.WriteString(sectionStyle.Render("Copying"))
	b.WriteString("\n\n")

	if m.Phase == PhaseCopying {
		b.WriteString(fmt.Sprintf("  %s %s\n\n", m.spinner.View(), fileNameStyle.Render(shortenPath(m.currentFolder))))
	}
	b.WriteString(fmt.Sprintf("  %s\n", m.progress.ViewAs(m.percent())))
	b.WriteString(fmt.Sprintf("  %s  %s\n",
		statValueStyle.Render(fmt.Sprintf("%d/%d folders", m.foldersDone, m.folders)),
		dimStyle.Render(fmt.Sprintf("%s %d copied  %s %d skipped", iconSuccess, m.copied, iconSkipped, m.skipped)),
	))

	if len(m.recent) > 0 {
		b.WriteString("\n")
		for _, line := range m.recent {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (m Model) renderSummary() string {
	var b strings.Builder

	b.WriteString(sectionStyle.Render("Summary"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("  %s  %s\n", statLabelStyle.Render("Total copied:"), successStyle.Render(fmt.Sprintf("%d", m.Report.Copied))))
	b.WriteString(fmt.Sprintf("  %s  %s\n", statLabelStyle.Render("Total skipped:"), warningStyle.Render(fmt.Sprintf("%d", m.Report.Skipped))))

	for _, path := range m.missing {
		b.WriteString(fmt.Sprintf("  %s\n", warningStyle.Render(fmt.Sprintf("%s Folder not found: %s", iconWarning, path))))
	}
	for _, path := range m.notDirs {
		b.WriteString(fmt.Sprintf("  %s\n", warningStyle.Render(fmt.Sprintf("%s Not a folder: %s", iconWarning, path))))
	}
	return b.String()
}

func (m Model) renderError() string {
	icon := errorStyle.Render(iconError)
	msg := errorStyle.Render(fmt.Sprintf("Error: %s", m.Err.Error()))

	return highlightBoxStyle.
		BorderForeground(errorColor).
		Render(fmt.Sprintf("%s %s", icon, msg))
}

func (m Model) renderHelp() string {
	var help string
	switch m.Phase {
	case PhaseCopying:
		help = "Copying photos... q to quit"
	case PhaseDone:
		help = "Press Enter to exit"
	case PhaseError:
		help = "Press Enter or q to exit"
	}
	return helpStyle.Render(help)
}

func formatResult(res domain.FileResult) string {
	if !res.Status.Skipped() {
		return fmt.Sprintf("%s %s %s %s",
			successStyle.Render(iconSuccess),
			fileNameStyle.Render(res.RelativePath),
			iconArrow,
			targetStyle.Render(res.TargetName),
		)
	}
	reason := "no DateTimeOriginal"
	switch res.Status {
	case domain.StatusBadDate:
		reason = fmt.Sprintf("unparseable date %q", res.RawDate)
	case domain.StatusNoExif:
		reason = "unreadable EXIF"
	}
	return fmt.Sprintf("%s %s %s",
		warningStyle.Render(iconWarning),
		fileNameStyle.Render(res.RelativePath),
		dimStyle.Render(reason),
	)
}

// shortenPath replaces the home directory prefix with ~ for display
func shortenPath(path string) string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return path
	}
	if strings.HasPrefix(path, home) {
		return "~" + path[len(home):]
	}
	return path
}
