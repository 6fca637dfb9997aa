package app

import (
	"context"
	"io/fs"

	"photoorder/internal/domain"
)

type FileSystem interface {
	// WalkFiles calls fn for every non-directory entry below root.
	WalkFiles(root string, fn func(path string) error) error
	ReadDir(dir string) ([]fs.DirEntry, error)
	ReadFile(path string) ([]byte, error)
	Stat(path string) (fs.FileInfo, error)
	MkdirAll(path string, perm fs.FileMode) error
	// CopyFile copies content, mode and access/modification times.
	CopyFile(src, dst string) error
}

// ExifReader returns the raw DateTimeOriginal value. found is false when the
// file has EXIF data without that tag; err is set when no EXIF data could be
// read at all.
type ExifReader interface {
	DateTimeOriginal(ctx context.Context, path string) (value string, found bool, err error)
}

type DimensionReader interface {
	Dimensions(ctx context.Context, path string) (width, height int, err error)
}

// CopyReporter receives progress from Copier in walk order.
type CopyReporter interface {
	CopyStarted(inputFile, outputDir string, folders int)
	FolderStarted(index int, path string)
	FolderSkipped(folder domain.FolderReport)
	FileProcessed(res domain.FileResult)
	FolderFinished(folder domain.FolderReport)
	CopyFinished(report domain.CopyReport)
}

// StatsReporter receives progress from Analyzer.
type StatsReporter interface {
	StatsDirMissing(dir string)
	StatsFileFailed(res domain.StatsResult)
	StatsFinished(counts domain.OrientationCounts)
}
