package imagesize

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"photoorder/internal/testfixture"
)

func TestDimensions(t *testing.T) {
	dir := t.TempDir()
	jpegPath := filepath.Join(dir, "a.jpeg")
	testfixture.WriteJPEG(t, jpegPath, testfixture.Dated(12, 30, "2024:03:15 14:30:22"))
	pngPath := filepath.Join(dir, "b.PNG")
	testfixture.WritePNG(t, pngPath, 40, 10)

	w, h, err := Reader{}.Dimensions(context.Background(), jpegPath)
	require.NoError(t, err)
	assert.Equal(t, 12, w)
	assert.Equal(t, 30, h)

	w, h, err = Reader{}.Dimensions(context.Background(), pngPath)
	require.NoError(t, err)
	assert.Equal(t, 40, w)
	assert.Equal(t, 10, h)
}

func TestDimensionsErrors(t *testing.T) {
	dir := t.TempDir()
	garbage := filepath.Join(dir, "x.jpg")
	testfixture.WriteGarbage(t, garbage)

	for _, path := range []string{garbage, filepath.Join(dir, "missing.png")} {
		_, _, err := Reader{}.Dimensions(context.Background(), path)
		assert.Error(t, err, path)
	}
}

func TestDimensionsHEIC(t *testing.T) {
	w, h, err := Reader{}.Dimensions(context.Background(), filepath.Join("testdata", "park.heic"))
	require.NoError(t, err)
	assert.Positive(t, w)
	assert.Positive(t, h)
}

func TestDimensionsTruncatedHEIC(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cut.heic")
	require.NoError(t, os.WriteFile(path, []byte{0, 0, 0, 24, 'f', 't'}, 0o644))

	_, _, err := Reader{}.Dimensions(context.Background(), path)
	assert.Error(t, err)
}
