package screenshots

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// ratioRange is an inclusive [Min, Max] interval of long-side/short-side
// aspect ratios.
type ratioRange struct {
	Min, Max float64
}

// screenshotRatioRanges are the long/short aspect ratios of common phone and
// tablet screens, with a small tolerance:
//
//	16:9  = 1.777
//	18:9  = 2.0
//	19.5:9 (iPhone X and later) = 2.166
//	20:9  (many Android)        = 2.22
//	21:9  (Sony and others)     = 2.33
//	4:3   (iPad/tablet)         = 1.33
//
// Fixed domain constants; the gap between 1.36 and 1.75 is deliberate.
var screenshotRatioRanges = []ratioRange{
	{1.30, 1.36}, // 4:3 (iPad/tablet)
	{1.75, 1.80}, // 16:9
	{1.95, 2.40}, // 18:9 – 21:9 (modern full-screen phones)
}

// IsScreenshot classifies the file at path using a short-circuit funnel:
//
//  1. Extension gate — not a recognized image extension → false, no I/O.
//  2. Filename fast path — base name contains a screenshot keyword → true,
//     no file open. Filename intent is authoritative and wins even over
//     camera EXIF.
//  3. Content inspection — camera EXIF (exposure/aperture/ISO) excludes the
//     file, then the aspect ratio is tested against known device ranges.
//
// The verdict is total: corrupt, unreadable, or undecodable files resolve to
// false with a debug log, never an error.
func IsScreenshot(path string) bool {
	if !HasImageExtension(path) {
		return false
	}

	if MatchesFilename(filepath.Base(path)) {
		return true
	}

	return matchesImageFeatures(path)
}

// matchesImageFeatures opens the file and applies the content checks:
// EXIF photo-signal exclusion first, then the aspect-ratio test. Any
// open/decode/metadata failure resolves to false (graceful degradation).
func matchesImageFeatures(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		slog.Debug("screenshots: open failed", "path", path, "error", err.Error())
		return false
	}
	defer f.Close()

	// A camera that wrote exposure metadata took a photo, even when the
	// ratio would match a phone screen. An unparseable EXIF block carries
	// no camera signal, so it does not exclude on its own; truly corrupt
	// files still fail the dimension decode below.
	hasPhoto, err := HasPhotoEXIF(f)
	if err != nil {
		slog.Debug("screenshots: exif read failed", "path", path, "error", err.Error())
	}
	if hasPhoto {
		return false
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		slog.Debug("screenshots: seek failed", "path", path, "error", err.Error())
		return false
	}

	w, h, err := decodeDimensions(f)
	if err != nil {
		slog.Debug("screenshots: decode failed", "path", path, "error", err.Error())
		return false
	}
	if w == 0 || h == 0 {
		return false
	}

	ratio := float64(max(w, h)) / float64(min(w, h))
	for _, r := range screenshotRatioRanges {
		if r.Min <= ratio && ratio <= r.Max {
			return true
		}
	}

	return false
}
