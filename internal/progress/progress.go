package progress

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

var frames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Spinner shows that a long-running step is still alive. Scans report no
// progress of their own, so it only shows a label and the elapsed time.
type Spinner struct {
	label    string
	writer   io.Writer
	interval time.Duration
	enabled  bool

	mu    sync.Mutex
	frame int
	start time.Time
}

func New(label string) *Spinner {
	return &Spinner{
		label:    label,
		writer:   os.Stderr,
		interval: 100 * time.Millisecond,
		enabled:  isTerminal(os.Stderr),
	}
}

// NewWithWriter creates an always-enabled spinner drawing to w.
func NewWithWriter(label string, w io.Writer, interval time.Duration) *Spinner {
	return &Spinner{label: label, writer: w, interval: interval, enabled: true}
}

func isTerminal(f *os.File) bool {
	fileInfo, err := f.Stat()
	if err != nil {
		return false
	}
	// Check if the file is a terminal (character device)
	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}

// Run redraws the spinner until done is closed, then clears the line.
func (s *Spinner) Run(done <-chan struct{}) {
	if !s.enabled {
		<-done
		return
	}

	s.mu.Lock()
	s.start = time.Now()
	s.render()
	s.mu.Unlock()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			s.mu.Lock()
			fmt.Fprint(s.writer, "\r\033[K")
			s.mu.Unlock()
			return
		case <-ticker.C:
			s.mu.Lock()
			s.frame = (s.frame + 1) % len(frames)
			s.render()
			s.mu.Unlock()
		}
	}
}

// render must be called with mu already locked
func (s *Spinner) render() {
	elapsed := time.Since(s.start).Round(100 * time.Millisecond)
	fmt.Fprintf(s.writer, "\r\033[K%s %s (%s)", frames[s.frame], s.label, elapsed)
}
