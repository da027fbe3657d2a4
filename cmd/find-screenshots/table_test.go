package main

import (
	"strings"
	"testing"

	screenshots "github.com/gcxixi/find-screenshots-cli"
)

func TestRenderMatchTable(t *testing.T) {
	t.Parallel()

	matches := []screenshots.Match{
		{Name: "Screenshot_1.png", RelPath: "Screenshot_1.png", ByName: true},
		{Name: "crop.png", RelPath: "nested/crop.png", ByName: false},
	}

	out := renderMatchTable(matches)

	for _, want := range []string{
		"Found 2 screenshot(s)",
		"Screenshot_1.png",
		"crop.png",
		"filename",
		"image features",
		"nested",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
}

func TestRelDir(t *testing.T) {
	t.Parallel()

	if got := relDir("Screenshot_1.png"); got != "." {
		t.Errorf("relDir top-level = %q, want .", got)
	}
	if got := relDir("a/b/c.png"); got != "a/b" {
		t.Errorf("relDir nested = %q, want a/b", got)
	}
}
