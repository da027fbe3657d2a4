package main

import (
	"io"
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/progress"
	"github.com/mattn/go-isatty"
)

// scanTracker renders a live progress bar while the scanner classifies
// files. It stays silent when the output is not a terminal, so piped and
// scripted runs get clean output.
type scanTracker struct {
	pw      progress.Writer
	tracker *progress.Tracker
}

func newScanTracker(w io.Writer) *scanTracker {
	if !isTerminal(w) {
		return &scanTracker{}
	}

	pw := progress.NewWriter()
	pw.SetOutputWriter(w)
	pw.SetTrackerLength(25)
	pw.SetUpdateFrequency(100 * time.Millisecond)
	pw.SetTrackerPosition(progress.PositionRight)

	return &scanTracker{pw: pw}
}

// update is the scanner's progress callback. The scanner serializes calls,
// so no locking is needed here.
func (s *scanTracker) update(done, total int) {
	if s.pw == nil {
		return
	}
	if s.tracker == nil {
		s.tracker = &progress.Tracker{Message: "Classifying", Total: int64(total)}
		s.pw.AppendTracker(s.tracker)
		go s.pw.Render()
	}
	s.tracker.SetValue(int64(done))
}

func (s *scanTracker) stop() {
	if s.pw == nil {
		return
	}
	if s.tracker != nil {
		s.tracker.MarkAsDone()
	}
	s.pw.Stop()
	for s.pw.IsRenderInProgress() {
		time.Sleep(10 * time.Millisecond)
	}
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
