package presentation

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"photoorder/internal/domain"
	appErrors "photoorder/internal/errors"
)

func TestFileResultLines(t *testing.T) {
	tests := []struct {
		name string
		res  domain.FileResult
		want []string
	}{
		{
			name: "copied",
			res:  domain.FileResult{RelativePath: "2024/a.jpg", TargetName: "2024-03-15-14-30-22_1.jpeg", Status: domain.StatusCopied},
			want: []string{"✓ 2024/a.jpg", "  -> 2024-03-15-14-30-22_1.jpeg"},
		},
		{
			name: "bad date",
			res:  domain.FileResult{RelativePath: "b.jpg", RawDate: "2024-03-15", Status: domain.StatusBadDate},
			want: []string{"⚠️  b.jpg", "  Could not parse DateTimeOriginal: 2024-03-15"},
		},
		{
			name: "no date",
			res:  domain.FileResult{RelativePath: "c.png", Status: domain.StatusNoDate},
			want: []string{"⚠️  c.png", "  DateTimeOriginal not found in EXIF data"},
		},
		{
			name: "no exif",
			res: domain.FileResult{
				RelativePath: "d.heic",
				Status:       domain.StatusNoExif,
				Err:          appErrors.Wrap(appErrors.ExifFailure, "exif", "/x/d.heic", errors.New("no exif item")),
			},
			want: []string{"⚠️  d.heic", "  Could not read EXIF data: no exif item"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatFileResult(tt.res)
			if JoinLines(got) != JoinLines(tt.want) {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestCopyReportOutput(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, false)

	printer.CopyStarted("input", "ordered", 2)
	printer.FolderStarted(0, "/missing")
	printer.FolderSkipped(domain.FolderReport{Path: "/missing", Missing: true})
	printer.FolderStarted(1, "/photos")
	printer.FileProcessed(domain.FileResult{RelativePath: "a.jpg", TargetName: "2024-03-15-14-30-22.jpeg", Status: domain.StatusCopied})
	printer.FolderFinished(domain.FolderReport{Path: "/photos", Photos: 1})
	printer.CopyFinished(domain.CopyReport{Copied: 1, Skipped: 2})

	output := buf.String()
	for _, want := range []string{
		"Photo Organizer - Copy by DateTimeOriginal",
		"Reading folder paths from 'input'",
		"Output directory: ordered",
		"Folder not found: /missing",
		"Processing folder: /photos",
		"a.jpg",
		"  -> 2024-03-15-14-30-22.jpeg",
		"Photos processed: 1",
		"Total copied: 1",
		"Total skipped: 2",
	} {
		if !strings.Contains(output, want) {
			t.Fatalf("expected output to contain %q:\n%s", want, output)
		}
	}
}

func TestEmptyFolderOutput(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, false)
	printer.FolderFinished(domain.FolderReport{Path: "/empty"})

	if !strings.Contains(buf.String(), "No photos found in this folder.") {
		t.Fatalf("unexpected output: %q", buf.String())
	}
}

func TestOrientationSummaryPercentages(t *testing.T) {
	lines := FormatOrientationSummary(domain.OrientationCounts{Portrait: 1, Landscape: 2, Total: 3})
	output := JoinLines(lines)

	for _, want := range []string{"Portrait photos:  1", "Landscape photos: 2", "Total photos:     3", "Portrait:  33.3%", "Landscape: 66.7%"} {
		if !strings.Contains(output, want) {
			t.Fatalf("expected %q in:\n%s", want, output)
		}
	}
}

func TestOrientationSummaryOmitsPercentagesWhenEmpty(t *testing.T) {
	output := JoinLines(FormatOrientationSummary(domain.OrientationCounts{}))

	if !strings.Contains(output, "Total photos:     0") {
		t.Fatalf("expected zero total in:\n%s", output)
	}
	if strings.Contains(output, "%") {
		t.Fatalf("expected no percentages in:\n%s", output)
	}
}

func TestStatsMessages(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, false)

	printer.StatsDirMissing("ordered")
	printer.StatsFileFailed(domain.StatsResult{Path: "ordered/x.jpeg", Err: errors.New("image: unknown format")})

	output := buf.String()
	if !strings.Contains(output, "Directory 'ordered' not found!") {
		t.Fatalf("missing directory message: %q", output)
	}
	if !strings.Contains(output, "Error reading ordered/x.jpeg: image: unknown format") {
		t.Fatalf("missing file error message: %q", output)
	}
}
