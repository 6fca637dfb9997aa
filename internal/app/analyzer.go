package app

import (
	"context"
	"errors"
	"io/fs"
	"path/filepath"

	"photoorder/internal/domain"
	appErrors "photoorder/internal/errors"
	"photoorder/internal/logging"
)

// Analyzer counts portrait and landscape photos directly inside one directory.
type Analyzer struct {
	FS         FileSystem
	Dimensions DimensionReader
	Logger     logging.Logger
	Reporter   StatsReporter
}

// Analyze never fails on a missing directory or an unreadable file; those
// are reported and contribute nothing to the counts.
func (a *Analyzer) Analyze(ctx context.Context, dir string) (domain.OrientationCounts, error) {
	if a.FS == nil || a.Dimensions == nil {
		return domain.OrientationCounts{}, errors.New("analyzer requires FS and Dimensions")
	}
	reporter := a.Reporter
	if reporter == nil {
		reporter = nopReporter{}
	}

	stop := a.Logger.Measure("Analyzing orientations")
	defer stop()

	var counts domain.OrientationCounts
	entries, err := a.FS.ReadDir(dir)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			a.Logger.Warnf("Cannot read %s: %v", dir, err)
		}
		reporter.StatsDirMissing(dir)
		reporter.StatsFinished(counts)
		return counts, nil
	}

	for _, entry := range entries {
		if entry.IsDir() || !domain.IsStatsCandidate(entry.Name()) {
			continue
		}
		if err := ctx.Err(); err != nil {
			return counts, err
		}

		res := a.measure(ctx, filepath.Join(dir, entry.Name()))
		if res.Err != nil {
			if errors.Is(res.Err, context.Canceled) || errors.Is(res.Err, context.DeadlineExceeded) {
				return counts, res.Err
			}
			reporter.StatsFileFailed(res)
			continue
		}
		counts.Add(res.Orientation)
		a.Logger.Verbosef("%s is %dx%d, %s", res.Path, res.Width, res.Height, res.Orientation)
	}

	reporter.StatsFinished(counts)
	return counts, nil
}

func (a *Analyzer) measure(ctx context.Context, path string) domain.StatsResult {
	res := domain.StatsResult{Path: path}
	width, height, err := a.Dimensions.Dimensions(ctx, path)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			res.Err = err
			return res
		}
		res.Err = appErrors.Wrap(appErrors.IOFailure, "dimensions", path, err)
		return res
	}
	res.Width = width
	res.Height = height
	res.Orientation = domain.Classify(width, height)
	return res
}
