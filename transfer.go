package screenshots

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"syscall"
)

// TransferMode selects how matches are delivered to the destination.
type TransferMode int

const (
	ModeCopy TransferMode = iota
	ModeMove
)

func (m TransferMode) String() string {
	if m == ModeMove {
		return "move"
	}
	return "copy"
}

// TransferStatus is the per-file result of a transfer.
type TransferStatus int

const (
	StatusDone TransferStatus = iota
	StatusSkipped
	StatusFailed
)

func (s TransferStatus) String() string {
	switch s {
	case StatusDone:
		return "done"
	case StatusSkipped:
		return "skipped"
	default:
		return "failed"
	}
}

// TransferOutcome records what happened to one match.
type TransferOutcome struct {
	Match  Match
	Status TransferStatus
	Err    error
}

// Transfer copies or moves every match into destDir, creating it first.
// A file whose destination already exists is skipped, and any per-file
// failure is recorded without aborting the batch — availability over
// strictness. The error return is reserved for a destination-directory
// creation failure, which fails every outcome; per-file records are
// returned either way.
func Transfer(matches []Match, destDir string, mode TransferMode) ([]TransferOutcome, error) {
	outcomes := make([]TransferOutcome, 0, len(matches))

	if err := os.MkdirAll(destDir, 0o755); err != nil {
		err = fmt.Errorf("creating %s: %w", destDir, err)
		for _, m := range matches {
			outcomes = append(outcomes, TransferOutcome{Match: m, Status: StatusFailed, Err: err})
		}
		return outcomes, err
	}

	for _, m := range matches {
		target := filepath.Join(destDir, m.Name)

		if _, err := os.Lstat(target); err == nil {
			outcomes = append(outcomes, TransferOutcome{Match: m, Status: StatusSkipped})
			continue
		}

		var err error
		if mode == ModeMove {
			err = moveFile(m.Path, target)
		} else {
			err = copyFile(m.Path, target)
		}
		if err != nil {
			outcomes = append(outcomes, TransferOutcome{Match: m, Status: StatusFailed, Err: err})
			continue
		}
		outcomes = append(outcomes, TransferOutcome{Match: m, Status: StatusDone})
	}

	return outcomes, nil
}

// copyFile streams src to dst, then carries over the source's permission
// bits and modification time.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(dst)
		return err
	}
	if err := out.Close(); err != nil {
		os.Remove(dst)
		return err
	}

	if err := os.Chmod(dst, info.Mode().Perm()); err != nil {
		return err
	}
	mtime := info.ModTime()
	return os.Chtimes(dst, mtime, mtime)
}

// moveFile renames src to dst, falling back to copy-then-remove when the
// destination is on a different filesystem.
func moveFile(src, dst string) error {
	err := os.Rename(src, dst)
	if err == nil {
		return nil
	}
	if !isCrossDevice(err) {
		return err
	}
	if err := copyFile(src, dst); err != nil {
		return err
	}
	return os.Remove(src)
}

// isCrossDevice reports whether err is an EXDEV rename failure.
func isCrossDevice(err error) bool {
	if errors.Is(err, syscall.EXDEV) {
		return true
	}
	var le *os.LinkError
	return errors.As(err, &le) && errors.Is(le.Err, syscall.EXDEV)
}
