package screenshots

import (
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"

	_ "golang.org/x/image/webp"
)

// decodeDimensions reads the pixel width and height from the image header.
// HEIC and other formats without a registered decoder fail here and resolve
// to the unreadable path.
func decodeDimensions(r io.Reader) (width, height int, err error) {
	cfg, _, err := image.DecodeConfig(r)
	if err != nil {
		return 0, 0, err
	}
	return cfg.Width, cfg.Height, nil
}
