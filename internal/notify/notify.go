// Package notify delivers user-facing alerts outside the chat transcript.
//
// The TUI surfaces alerts as modal overlays while the CLI prints them to
// stderr. Code that can fail in either mode reports through a Notifier and
// stays ignorant of the presentation.
package notify

import (
	"fmt"
	"io"
	"sync"
)

// Notifier surfaces messages to the user.
type Notifier interface {
	// Alert reports a problem the user must see, such as a failed
	// clipboard copy or an unreachable translation service.
	Alert(message string)

	// Notice reports passive information that needs no acknowledgement.
	Notice(message string)
}

// Funcs adapts plain functions to the Notifier interface. Nil fields are
// no-ops.
type Funcs struct {
	AlertFunc  func(message string)
	NoticeFunc func(message string)
}

// Alert implements Notifier.
func (f Funcs) Alert(message string) {
	if f.AlertFunc != nil {
		f.AlertFunc(message)
	}
}

// Notice implements Notifier.
func (f Funcs) Notice(message string) {
	if f.NoticeFunc != nil {
		f.NoticeFunc(message)
	}
}

// Writer is a Notifier that writes line-oriented messages to an io.Writer,
// used by CLI commands to report on stderr.
type Writer struct {
	mu  sync.Mutex
	out io.Writer
}

// NewWriter creates a Writer notifier.
func NewWriter(out io.Writer) *Writer {
	return &Writer{out: out}
}

// Alert implements Notifier.
func (w *Writer) Alert(message string) {
	w.write("Error: " + message)
}

// Notice implements Notifier.
func (w *Writer) Notice(message string) {
	w.write(message)
}

func (w *Writer) write(line string) {
	if w == nil || w.out == nil {
		return
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	fmt.Fprintln(w.out, line)
}

// Recorder is a Notifier that captures messages for tests.
type Recorder struct {
	mu      sync.Mutex
	alerts  []string
	notices []string
}

// Verify interface compliance at compile time.
var (
	_ Notifier = Funcs{}
	_ Notifier = (*Writer)(nil)
	_ Notifier = (*Recorder)(nil)
)

// Alert implements Notifier.
func (r *Recorder) Alert(message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.alerts = append(r.alerts, message)
}

// Notice implements Notifier.
func (r *Recorder) Notice(message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notices = append(r.notices, message)
}

// Alerts returns the recorded alert messages.
func (r *Recorder) Alerts() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.alerts))
	copy(out, r.alerts)
	return out
}

// Notices returns the recorded notice messages.
func (r *Recorder) Notices() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.notices))
	copy(out, r.notices)
	return out
}
