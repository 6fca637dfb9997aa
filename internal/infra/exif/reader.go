package exif

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jdeng/goheif"
	goexif "github.com/rwcarlsen/goexif/exif"

	"photoorder/internal/domain"
)

var exifHeader = []byte("Exif\x00\x00")

type Reader struct{}

// DateTimeOriginal returns the raw tag value without parsing it.
func (Reader) DateTimeOriginal(ctx context.Context, path string) (string, bool, error) {
	select {
	case <-ctx.Done():
		return "", false, ctx.Err()
	default:
	}

	file, err := os.Open(path)
	if err != nil {
		return "", false, err
	}
	defer file.Close()

	var src io.Reader = file
	if domain.IsHEIC(path) {
		raw, err := heicExif(file)
		if err != nil {
			return "", false, err
		}
		src = bytes.NewReader(raw)
	}

	x, err := goexif.Decode(src)
	if err != nil {
		return "", false, err
	}

	tag, err := x.Get(goexif.DateTimeOriginal)
	if err != nil {
		var notPresent goexif.TagNotPresentError
		if errors.As(err, &notPresent) {
			return "", false, nil
		}
		return "", false, err
	}

	value, err := tag.StringVal()
	if err != nil {
		return tag.String(), true, nil
	}
	return strings.TrimRight(value, "\x00"), true, nil
}

// heicExif pulls the EXIF item out of a HEIF container and trims the
// offset prefix so goexif sees the "Exif\0\0" header first.
func heicExif(ra io.ReaderAt) ([]byte, error) {
	raw, err := goheif.ExtractExif(ra)
	if err != nil {
		return nil, fmt.Errorf("heic exif: %w", err)
	}
	if len(raw) == 0 {
		return nil, errors.New("heic exif: empty exif item")
	}
	if i := bytes.Index(raw, exifHeader); i >= 0 {
		return raw[i:], nil
	}
	return raw, nil
}
