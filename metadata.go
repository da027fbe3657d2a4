package screenshots

import (
	"bytes"
	"errors"
	"io"

	"github.com/bep/imagemeta"
)

// photoTags maps EXIF tag names to their numeric tag ids for the tags whose
// presence marks a real camera photograph. The set is intentionally narrow:
// exposure, aperture, and sensitivity are written only by cameras, while
// device-make and timestamp tags also appear on screenshots and must not be
// used for exclusion.
var photoTags = map[string]uint16{
	"ExposureTime":    0x829A, // 33434
	"FNumber":         0x829D, // 33437
	"ISOSpeedRatings": 0x8827, // 34855
	"ISO":             0x8827, // decoder alias for ISOSpeedRatings
}

var errUnknownImageFormat = errors.New("unknown image format")

// HasPhotoEXIF reports whether the image data carries any of the camera
// photo tags (exposure time, f-number, ISO). The reader must be positioned
// at the start of the image; the format is sniffed from the magic bytes
// because the metadata decoder requires it up front. A decodable image
// without an EXIF block yields (false, nil); only unreadable or
// unrecognized data yields an error.
func HasPhotoEXIF(r io.ReadSeeker) (bool, error) {
	var head [12]byte
	if _, err := io.ReadFull(r, head[:]); err != nil {
		return false, err
	}
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return false, err
	}

	format, ok := sniffImageFormat(head[:])
	if !ok {
		return false, errUnknownImageFormat
	}

	found := false

	err := imagemeta.Decode(imagemeta.Options{
		R:           r,
		ImageFormat: format,
		Sources:     imagemeta.EXIF,
		ShouldHandleTag: func(ti imagemeta.TagInfo) bool {
			_, ok := photoTags[ti.Tag]
			return ok
		},
		HandleTag: func(ti imagemeta.TagInfo) error {
			found = true
			return imagemeta.ErrStopWalking
		},
	})
	if err != nil && !found {
		return false, err
	}

	return found, nil
}

// sniffImageFormat recognizes the container from its magic bytes for the
// formats the metadata decoder handles.
func sniffImageFormat(head []byte) (imagemeta.ImageFormat, bool) {
	switch {
	case bytes.HasPrefix(head, []byte{0xFF, 0xD8}):
		return imagemeta.JPEG, true
	case bytes.HasPrefix(head, []byte("\x89PNG\r\n\x1a\n")):
		return imagemeta.PNG, true
	case bytes.HasPrefix(head, []byte("RIFF")) && len(head) >= 12 && bytes.Equal(head[8:12], []byte("WEBP")):
		return imagemeta.WebP, true
	case bytes.HasPrefix(head, []byte("II*\x00")), bytes.HasPrefix(head, []byte("MM\x00*")):
		return imagemeta.TIFF, true
	default:
		return 0, false
	}
}
