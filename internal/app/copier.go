package app

import (
	"context"
	"errors"
	"io/fs"
	"path/filepath"
	"strings"

	"photoorder/internal/domain"
	appErrors "photoorder/internal/errors"
	"photoorder/internal/logging"
)

// Copier walks the listed folders and copies every dated photo into a flat
// output directory under its canonical name. Files are handled one at a time
// in walk order.
type Copier struct {
	FS       FileSystem
	Exif     ExifReader
	Logger   logging.Logger
	Reporter CopyReporter
}

func (c *Copier) Copy(ctx context.Context, inputFile string, folders []string, outputDir string) (domain.CopyReport, error) {
	if c.FS == nil || c.Exif == nil {
		return domain.CopyReport{}, errors.New("copier requires FS and Exif")
	}
	reporter := c.Reporter
	if reporter == nil {
		reporter = nopReporter{}
	}

	stop := c.Logger.Measure("Copying photos")
	defer stop()

	if err := c.FS.MkdirAll(outputDir, 0o755); err != nil {
		return domain.CopyReport{}, appErrors.Wrap(appErrors.IOFailure, "mkdir", outputDir, err)
	}

	absOutput, err := filepath.Abs(outputDir)
	if err != nil {
		return domain.CopyReport{}, appErrors.Wrap(appErrors.IOFailure, "abs", outputDir, err)
	}

	report := domain.CopyReport{InputFile: inputFile, OutputDir: outputDir}
	names := domain.NewNameRegistry()
	reporter.CopyStarted(inputFile, outputDir, len(folders))

	for i, folder := range folders {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		reporter.FolderStarted(i, folder)

		folderReport, err := c.copyFolder(ctx, folder, outputDir, absOutput, names, &report, reporter)
		if err != nil {
			return report, err
		}
		report.Folders = append(report.Folders, folderReport)
		if folderReport.Missing || folderReport.NotDir {
			reporter.FolderSkipped(folderReport)
			continue
		}
		reporter.FolderFinished(folderReport)
	}

	c.Logger.Verbosef("Copied %d files, skipped %d, %d distinct capture times", report.Copied, report.Skipped, names.Len())
	reporter.CopyFinished(report)
	return report, nil
}

func (c *Copier) copyFolder(ctx context.Context, folder, outputDir, absOutput string, names *domain.NameRegistry, report *domain.CopyReport, reporter CopyReporter) (domain.FolderReport, error) {
	folderReport := domain.FolderReport{Path: folder}

	info, err := c.FS.Stat(folder)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			c.Logger.Warnf("Cannot stat %s: %v", folder, err)
		}
		folderReport.Missing = true
		return folderReport, nil
	}
	if !info.IsDir() {
		folderReport.NotDir = true
		return folderReport, nil
	}

	log := c.Logger.With("folder", folder)
	err = c.FS.WalkFiles(folder, func(path string) error {
		if !domain.IsCopyCandidate(path) {
			return nil
		}
		if insideDir(absOutput, path) {
			log.Verbosef("Skipping %s: already in the output directory", path)
			return nil
		}
		folderReport.Photos++

		res, err := c.copyPhoto(ctx, folder, path, outputDir, names)
		if err != nil {
			return err
		}
		if res.Err != nil {
			log.Verbosef("Skipping %s: %v", res.RelativePath, res.Err)
		}
		report.Record(res)
		reporter.FileProcessed(res)
		return nil
	})
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) || appErrors.KindOf(err) == appErrors.IOFailure {
			return folderReport, err
		}
		return folderReport, appErrors.Wrap(appErrors.IOFailure, "walk", folder, err)
	}
	log.Verbosef("Matched %d photos", folderReport.Photos)
	return folderReport, nil
}

// copyPhoto returns a non-nil error only for failures that end the run; a
// photo that cannot be named is reported through the result's Status.
func (c *Copier) copyPhoto(ctx context.Context, folder, path, outputDir string, names *domain.NameRegistry) (domain.FileResult, error) {
	if err := ctx.Err(); err != nil {
		return domain.FileResult{}, err
	}

	rel, err := filepath.Rel(folder, path)
	if err != nil {
		rel = filepath.Base(path)
	}
	res := domain.FileResult{SourcePath: path, RelativePath: rel}

	value, found, err := c.Exif.DateTimeOriginal(ctx, path)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return res, err
		}
		res.Status = domain.StatusNoExif
		res.Err = appErrors.Wrap(appErrors.ExifFailure, "exif", path, err)
		return res, nil
	}
	if !found {
		res.Status = domain.StatusNoDate
		return res, nil
	}

	res.RawDate = value
	base, err := domain.CanonicalBaseName(value)
	if err != nil {
		res.Status = domain.StatusBadDate
		res.Err = err
		return res, nil
	}

	res.TargetName = names.Claim(base)
	target := filepath.Join(outputDir, res.TargetName)
	if err := c.FS.CopyFile(path, target); err != nil {
		return res, appErrors.Wrap(appErrors.IOFailure, "copy", target, err)
	}
	res.Status = domain.StatusCopied
	return res, nil
}

// insideDir reports whether path lies below dir, which must be absolute.
func insideDir(dir, path string) bool {
	abs, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	rel, err := filepath.Rel(dir, abs)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

type nopReporter struct{}

func (nopReporter) CopyStarted(string, string, int)        {}
func (nopReporter) FolderStarted(int, string)              {}
func (nopReporter) FolderSkipped(domain.FolderReport)      {}
func (nopReporter) FileProcessed(domain.FileResult)        {}
func (nopReporter) FolderFinished(domain.FolderReport)     {}
func (nopReporter) CopyFinished(domain.CopyReport)         {}
func (nopReporter) StatsDirMissing(string)                 {}
func (nopReporter) StatsFileFailed(domain.StatsResult)     {}
func (nopReporter) StatsFinished(domain.OrientationCounts) {}
