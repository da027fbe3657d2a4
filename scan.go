package screenshots

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"
)

// ListCandidates walks the tree under root and returns every regular file
// whose extension is in the recognized image set. Filtering by extension
// before classification keeps decode cost off non-image files. Unreadable
// subtrees are skipped with a debug log; only a failure on root itself
// aborts the walk.
func ListCandidates(root string) ([]string, error) {
	var candidates []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			slog.Debug("screenshots: walk error, skipping", "path", path, "error", err.Error())
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if HasImageExtension(path) {
			candidates = append(candidates, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", root, err)
	}

	return candidates, nil
}

// ScanDir enumerates image candidates under root and classifies them with a
// bounded worker pool. Matches come back sorted by relative path, so results
// are deterministic regardless of worker count. A per-file classification
// never fails the batch (the classifier is total); the error return covers
// walk-level failures and context cancellation only.
func ScanDir(ctx context.Context, root string, opts ScanOptions) ([]Match, error) {
	opts.defaults()

	candidates, err := ListCandidates(root)
	if err != nil {
		return nil, err
	}

	var (
		mu      sync.Mutex
		matches []Match
		done    int
	)

	var g errgroup.Group
	g.SetLimit(opts.Workers)

	total := len(candidates)
	for _, path := range candidates {
		if err := ctx.Err(); err != nil {
			break
		}
		path := path
		g.Go(func() error {
			hit := IsScreenshot(path)

			mu.Lock()
			defer mu.Unlock()
			if hit {
				matches = append(matches, newMatch(root, path))
			}
			done++
			if opts.Progress != nil {
				opts.Progress(done, total)
			}
			return nil
		})
	}
	// Workers never return errors (the classifier is total); Wait only
	// synchronizes completion. The caller's context decides whether the
	// scan finished or was cut short.
	_ = g.Wait()
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sort.Slice(matches, func(i, j int) bool {
		return matches[i].RelPath < matches[j].RelPath
	})

	if opts.SkipDuplicates {
		matches = FilterDuplicates(matches)
	}

	return matches, nil
}

// newMatch builds the Match record for a classified file. The evidence kind
// is recomputed from the keyword test rather than threaded through the
// classifier, matching the display-only role it plays.
func newMatch(root, path string) Match {
	name := filepath.Base(path)

	rel, err := filepath.Rel(root, path)
	if err != nil {
		rel = path
	}

	var size int64
	if info, err := os.Stat(path); err == nil {
		size = info.Size()
	}

	return Match{
		Path:    path,
		RelPath: rel,
		Name:    name,
		Size:    size,
		ByName:  MatchesFilename(name),
	}
}
