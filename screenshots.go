// Package screenshots classifies image files as phone/tablet screenshots
// using a layered funnel of cheap heuristics: an extension gate, a
// filename-keyword fast path, camera-EXIF exclusion, and an aspect-ratio
// check against known device ratios. The classifier is total — every path
// yields a boolean verdict, and decode or metadata failures resolve to
// "not a screenshot" rather than an error.
package screenshots

import "runtime"

// Match describes one file the classifier accepted.
type Match struct {
	Path    string `json:"path"`     // absolute path
	RelPath string `json:"rel_path"` // relative to the scan root
	Name    string `json:"name"`     // base name
	Size    int64  `json:"size"`     // bytes
	ByName  bool   `json:"by_name"`  // true = filename keyword, false = image features
}

// ScanOptions configures ScanDir. Zero values mean "use defaults":
// Workers 0 = NumCPU, nil Progress = no reporting.
type ScanOptions struct {
	Workers        int  // classification concurrency
	SkipDuplicates bool // drop perceptual duplicates from the matches

	// Progress, when non-nil, is called after every classified file.
	// Calls are serialized by the scanner.
	Progress func(done, total int)
}

// defaults fills zero-value fields with sensible defaults.
func (o *ScanOptions) defaults() {
	if o.Workers <= 0 {
		o.Workers = runtime.NumCPU()
	}
}
