// Package testfixture writes small real image files for tests.
package testfixture

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	exif "github.com/dsoprea/go-exif/v3"
	exifcommon "github.com/dsoprea/go-exif/v3/common"
	jpegstructure "github.com/dsoprea/go-jpeg-image-structure/v2"
)

// Photo describes a fixture. With Exif false the JPEG carries no APP1
// segment at all; with Exif true and an empty DateTimeOriginal it carries
// an EXIF block without that tag.
type Photo struct {
	Width            int
	Height           int
	Exif             bool
	DateTimeOriginal string
}

// Dated is a JPEG photo taken at value ("YYYY:MM:DD HH:MM:SS").
func Dated(width, height int, value string) Photo {
	return Photo{Width: width, Height: height, Exif: true, DateTimeOriginal: value}
}

// WriteJPEG encodes p as a JPEG at path, creating parent directories.
func WriteJPEG(t testing.TB, path string, p Photo) {
	t.Helper()

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, fill(p.Width, p.Height), &jpeg.Options{Quality: 80}); err != nil {
		t.Fatalf("encode jpeg: %v", err)
	}
	data := buf.Bytes()
	if p.Exif {
		withExif, err := injectExif(data, p.DateTimeOriginal)
		if err != nil {
			t.Fatalf("inject exif into %s: %v", path, err)
		}
		data = withExif
	}
	write(t, path, data)
}

// WritePNG encodes a PNG of the given size at path.
func WritePNG(t testing.TB, path string, width, height int) {
	t.Helper()

	var buf bytes.Buffer
	if err := png.Encode(&buf, fill(width, height)); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	write(t, path, buf.Bytes())
}

// WriteGarbage writes bytes no image decoder accepts.
func WriteGarbage(t testing.TB, path string) {
	t.Helper()
	write(t, path, []byte("definitely not an image"))
}

func write(t testing.TB, path string, data []byte) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func fill(width, height int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 7), G: uint8(y * 5), B: 120, A: 255})
		}
	}
	return img
}

func injectExif(data []byte, dateTimeOriginal string) ([]byte, error) {
	jmp := jpegstructure.NewJpegMediaParser()
	intfc, err := jmp.ParseBytes(data)
	if err != nil {
		return nil, err
	}
	sl, ok := intfc.(*jpegstructure.SegmentList)
	if !ok {
		return nil, fmt.Errorf("unexpected media context %T", intfc)
	}

	im, err := exifcommon.NewIfdMappingWithStandard()
	if err != nil {
		return nil, err
	}
	ti := exif.NewTagIndex()
	rootIb := exif.NewIfdBuilder(im, ti, exifcommon.IfdStandardIfdIdentity, exifcommon.EncodeDefaultByteOrder)
	if err := rootIb.AddStandardWithName("Orientation", []uint16{1}); err != nil {
		return nil, err
	}

	if dateTimeOriginal != "" {
		exifIb, err := exif.GetOrCreateIbFromRootIb(rootIb, "IFD/Exif")
		if err != nil {
			return nil, err
		}
		if err := exifIb.AddStandardWithName("DateTimeOriginal", dateTimeOriginal); err != nil {
			return nil, err
		}
	}

	if err := sl.SetExif(rootIb); err != nil {
		return nil, err
	}

	var out bytes.Buffer
	if err := sl.Write(&out); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}
