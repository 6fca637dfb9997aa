package imagesize

import (
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/jdeng/goheif"

	"photoorder/internal/domain"
)

// Reader reports pixel dimensions as stored in the file. The EXIF
// orientation tag is not applied.
type Reader struct{}

func (Reader) Dimensions(ctx context.Context, path string) (int, int, error) {
	select {
	case <-ctx.Done():
		return 0, 0, ctx.Err()
	default:
	}

	file, err := os.Open(path)
	if err != nil {
		return 0, 0, err
	}
	defer file.Close()

	var cfg image.Config
	if domain.IsHEIC(path) {
		cfg, err = goheif.DecodeConfig(file)
	} else {
		cfg, _, err = image.DecodeConfig(file)
	}
	if err != nil {
		return 0, 0, fmt.Errorf("decode image config: %w", err)
	}
	return cfg.Width, cfg.Height, nil
}
