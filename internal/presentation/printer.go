package presentation

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"photoorder/internal/domain"
)

var rule = strings.Repeat("=", 80)

// Printer writes the human-readable report for both commands. It satisfies
// app.CopyReporter and app.StatsReporter.
type Printer struct {
	Writer  io.Writer
	Verbose bool

	success lipgloss.Style
	warning lipgloss.Style
	heading lipgloss.Style
	dim     lipgloss.Style
}

// NewPrinter styles output only when writer is a color-capable terminal.
func NewPrinter(writer io.Writer, verbose bool) Printer {
	r := lipgloss.NewRenderer(writer)
	return Printer{
		Writer:  writer,
		Verbose: verbose,
		success: r.NewStyle().Foreground(lipgloss.Color("#85DCB0")).Bold(true),
		warning: r.NewStyle().Foreground(lipgloss.Color("#F6AE2D")),
		heading: r.NewStyle().Foreground(lipgloss.Color("#E8A87C")).Bold(true),
		dim:     r.NewStyle().Foreground(lipgloss.Color("#9CA3AF")),
	}
}

func (p Printer) CopyStarted(inputFile, outputDir string, folders int) {
	fmt.Fprintln(p.Writer, p.heading.Render("Photo Organizer - Copy by DateTimeOriginal"))
	fmt.Fprintln(p.Writer, rule)
	fmt.Fprintf(p.Writer, "\nReading folder paths from '%s'\n", inputFile)
	fmt.Fprintf(p.Writer, "Output directory: %s\n\n", outputDir)
	if p.Verbose {
		fmt.Fprintf(p.Writer, "%s\n\n", p.dim.Render(fmt.Sprintf("%d folders listed", folders)))
	}
}

func (p Printer) FolderStarted(index int, path string) {
	fmt.Fprintf(p.Writer, "\n%s\n", rule)
	fmt.Fprintf(p.Writer, "Processing folder: %s\n", path)
	fmt.Fprintf(p.Writer, "%s\n\n", rule)
}

func (p Printer) FolderSkipped(folder domain.FolderReport) {
	if folder.NotDir {
		fmt.Fprintf(p.Writer, "%s  Not a folder: %s\n\n", p.warn(), folder.Path)
		return
	}
	fmt.Fprintf(p.Writer, "%s  Folder not found: %s\n\n", p.warn(), folder.Path)
}

func (p Printer) FileProcessed(res domain.FileResult) {
	for _, line := range formatFileResult(res) {
		fmt.Fprintln(p.Writer, p.decorate(line, res.Status))
	}
	fmt.Fprintln(p.Writer)
}

func (p Printer) FolderFinished(folder domain.FolderReport) {
	if folder.Photos == 0 {
		fmt.Fprint(p.Writer, "No photos found in this folder.\n\n")
		return
	}
	fmt.Fprintf(p.Writer, "Photos processed: %d\n\n", folder.Photos)
}

func (p Printer) CopyFinished(report domain.CopyReport) {
	fmt.Fprintf(p.Writer, "\n%s\n", rule)
	fmt.Fprintln(p.Writer, p.heading.Render("Summary:"))
	fmt.Fprintf(p.Writer, "  Total copied: %d\n", report.Copied)
	fmt.Fprintf(p.Writer, "  Total skipped: %d\n", report.Skipped)
	fmt.Fprintf(p.Writer, "%s\n\n", rule)
}

func (p Printer) StatsDirMissing(dir string) {
	fmt.Fprintf(p.Writer, "%s  Directory '%s' not found!\n", p.warn(), dir)
}

func (p Printer) StatsFileFailed(res domain.StatsResult) {
	fmt.Fprintf(p.Writer, "%s  Error reading %s: %v\n", p.warn(), res.Path, rootCause(res.Err))
}

func (p Printer) StatsFinished(counts domain.OrientationCounts) {
	fmt.Fprintln(p.Writer, JoinLines(FormatOrientationSummary(counts)))
}

// FormatOrientationSummary renders the counts block; percentages appear only
// for a non-empty set.
func FormatOrientationSummary(counts domain.OrientationCounts) []string {
	lines := []string{
		rule,
		"Photo Orientation Summary",
		rule,
		"",
		fmt.Sprintf("Portrait photos:  %d", counts.Portrait),
		fmt.Sprintf("Landscape photos: %d", counts.Landscape),
		fmt.Sprintf("Total photos:     %d", counts.Total),
	}
	if portrait, landscape, ok := counts.Shares(); ok {
		lines = append(lines,
			"",
			fmt.Sprintf("Portrait:  %.1f%%", portrait),
			fmt.Sprintf("Landscape: %.1f%%", landscape),
		)
	}
	return append(lines, rule)
}

func formatFileResult(res domain.FileResult) []string {
	switch res.Status {
	case domain.StatusCopied:
		return []string{"✓ " + res.RelativePath, "  -> " + res.TargetName}
	case domain.StatusBadDate:
		return []string{"⚠️  " + res.RelativePath, "  Could not parse DateTimeOriginal: " + res.RawDate}
	case domain.StatusNoDate:
		return []string{"⚠️  " + res.RelativePath, "  DateTimeOriginal not found in EXIF data"}
	default:
		reason := "DateTimeOriginal not found in EXIF data"
		if res.Err != nil {
			reason = fmt.Sprintf("Could not read EXIF data: %v", rootCause(res.Err))
		}
		return []string{"⚠️  " + res.RelativePath, "  " + reason}
	}
}

// decorate colors the leading icon of a result's first line.
func (p Printer) decorate(line string, status domain.FileStatus) string {
	switch {
	case strings.HasPrefix(line, "✓ "):
		return p.success.Render("✓") + strings.TrimPrefix(line, "✓")
	case strings.HasPrefix(line, "⚠️ "):
		return p.warn() + strings.TrimPrefix(line, "⚠️")
	default:
		if status.Skipped() {
			return p.dim.Render(line)
		}
		return line
	}
}

func (p Printer) warn() string {
	return p.warning.Render("⚠️")
}

func rootCause(err error) error {
	for {
		next := errors.Unwrap(err)
		if next == nil {
			return err
		}
		err = next
	}
}

func JoinLines(lines []string) string {
	return strings.Join(lines, "\n")
}
