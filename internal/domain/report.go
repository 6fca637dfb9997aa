package domain

type FileStatus int

const (
	StatusCopied FileStatus = iota
	// StatusNoExif: the file could not be decoded or carries no EXIF block.
	StatusNoExif
	// StatusNoDate: EXIF is present but DateTimeOriginal is not.
	StatusNoDate
	// StatusBadDate: DateTimeOriginal does not match ExifDateLayout.
	StatusBadDate
)

func (s FileStatus) String() string {
	switch s {
	case StatusCopied:
		return "copied"
	case StatusNoExif:
		return "no-exif"
	case StatusNoDate:
		return "no-date"
	case StatusBadDate:
		return "bad-date"
	default:
		return "unknown"
	}
}

func (s FileStatus) Skipped() bool {
	return s != StatusCopied
}

// FileResult is the outcome of processing one matched file.
type FileResult struct {
	SourcePath   string
	RelativePath string
	TargetName   string
	RawDate      string
	Status       FileStatus
	Err          error
}

type FolderReport struct {
	Path    string
	Missing bool
	// NotDir is set when the path exists but is not a directory.
	NotDir bool
	Photos int
}

type CopyReport struct {
	InputFile string
	OutputDir string
	Folders   []FolderReport
	Copied    int
	Skipped   int
}

func (r *CopyReport) Record(res FileResult) {
	if res.Status.Skipped() {
		r.Skipped++
		return
	}
	r.Copied++
}
