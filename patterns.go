package screenshots

import (
	"path/filepath"
	"strings"
)

// ScreenshotKeywords are filename substrings indicating a screenshot.
// Matched case-insensitively against the base name.
var ScreenshotKeywords = []string{
	"screenshot",  // Android / Windows / generic
	"截屏",          // Chinese systems
	"屏幕截图",        // Chinese systems
	"screen_shot", // some apps
	"captures",    // some capture folders
}

// imageExtensions is the set of recognized image file extensions
// (lowercase, with leading dot).
var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".heic": true,
	".webp": true,
}

// MatchesFilename checks if a lowercased base name contains a screenshot keyword.
// Drivers use it to label a match's evidence kind.
func MatchesFilename(name string) bool {
	lower := strings.ToLower(name)
	for _, kw := range ScreenshotKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// HasImageExtension checks if the path's extension is a recognized image
// extension (case-insensitive).
func HasImageExtension(path string) bool {
	return imageExtensions[strings.ToLower(filepath.Ext(path))]
}
