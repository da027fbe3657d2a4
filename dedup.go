package screenshots

import (
	"image"
	"log/slog"
	"os"

	"github.com/corona10/goimagehash"
)

// dedupThreshold is the maximum Hamming distance between two dHash values
// below which images are considered perceptually identical.
const dedupThreshold = 10

// dedupFilter tracks difference hashes of kept images.
type dedupFilter struct {
	hashes []*goimagehash.ImageHash
}

// isDuplicate returns true if img is perceptually identical to a previously
// kept image. When the image is unique, its hash is stored for future
// comparisons. If hashing fails for any reason, the image is kept
// (graceful degradation).
func (d *dedupFilter) isDuplicate(img image.Image) bool {
	hash, err := goimagehash.DifferenceHash(img)
	if err != nil {
		return false
	}

	for _, h := range d.hashes {
		dist, err := hash.Distance(h)
		if err == nil && dist < dedupThreshold {
			return true
		}
	}

	d.hashes = append(d.hashes, hash)
	return false
}

// FilterDuplicates drops matches that are perceptual duplicates of an
// earlier match, keeping the first occurrence in slice order. Screenshots
// saved twice (re-shares, messenger copies) collapse to one entry. Files
// that cannot be opened or decoded are always kept; dropping on error would
// lose real matches.
func FilterDuplicates(matches []Match) []Match {
	filter := &dedupFilter{}
	kept := matches[:0:0]

	for _, m := range matches {
		img, err := decodeFile(m.Path)
		if err != nil {
			slog.Debug("screenshots: dedup decode failed, keeping", "path", m.Path, "error", err.Error())
			kept = append(kept, m)
			continue
		}
		if filter.isDuplicate(img) {
			slog.Debug("screenshots: duplicate dropped", "path", m.Path)
			continue
		}
		kept = append(kept, m)
	}

	return kept
}

// decodeFile fully decodes the image at path for hashing.
func decodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	return img, err
}
