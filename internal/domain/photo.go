package domain

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

const (
	// ExifDateLayout is the layout of the EXIF DateTimeOriginal value.
	ExifDateLayout = "2006:01:02 15:04:05"
	// CanonicalLayout is the layout of a canonical base filename.
	CanonicalLayout = "2006-01-02-15-04-05"
	// OutputExt is used for every copied file whatever the source format.
	OutputExt = ".jpeg"
)

var ErrUnparseableDate = errors.New("unparseable DateTimeOriginal")

// copyExtensions is matched exactly: ".Jpg" is not a candidate for copy.
var copyExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".JPG":  true,
	".JPEG": true,
	".png":  true,
	".PNG":  true,
	".heic": true,
	".HEIC": true,
}

func IsCopyCandidate(name string) bool {
	return copyExtensions[filepath.Ext(name)]
}

func IsStatsCandidate(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".jpg", ".jpeg", ".png", ".heic":
		return true
	default:
		return false
	}
}

func IsHEIC(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".heic")
}

// CanonicalBaseName converts "YYYY:MM:DD HH:MM:SS" to "YYYY-MM-DD-HH-MM-SS".
func CanonicalBaseName(exifValue string) (string, error) {
	parsed, err := time.Parse(ExifDateLayout, exifValue)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrUnparseableDate, exifValue)
	}
	return parsed.Format(CanonicalLayout), nil
}

// NameRegistry hands out collision-free output names for one run.
type NameRegistry struct {
	counts map[string]int
}

func NewNameRegistry() *NameRegistry {
	return &NameRegistry{counts: make(map[string]int)}
}

// Claim returns base+OutputExt the first time base is seen, then
// base_1, base_2, ... on each later call.
func (r *NameRegistry) Claim(base string) string {
	if r.counts == nil {
		r.counts = make(map[string]int)
	}
	n, seen := r.counts[base]
	if !seen {
		r.counts[base] = 0
		return base + OutputExt
	}
	n++
	r.counts[base] = n
	return fmt.Sprintf("%s_%d%s", base, n, OutputExt)
}

// Len reports how many distinct base names have been claimed.
func (r *NameRegistry) Len() int {
	return len(r.counts)
}
