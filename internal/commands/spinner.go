package commands

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"time"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// spinner is the wait indicator for one-shot commands. It draws on
// stderr so piped stdout stays clean.
type spinner struct {
	message string
	started time.Time
	stop    chan struct{}
	done    chan struct{}
	once    sync.Once
}

func newSpinner(message string) *spinner {
	return &spinner{
		message: message,
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
}

// start begins drawing. The cursor stays hidden until the spinner
// stops.
func (s *spinner) start() {
	s.started = time.Now()
	go func() {
		defer close(s.done)

		fmt.Fprint(os.Stderr, "\033[?25l")
		ticker := time.NewTicker(100 * time.Millisecond)
		defer ticker.Stop()

		frame := 0
		for {
			select {
			case <-s.stop:
				fmt.Fprint(os.Stderr, "\r\033[K\033[?25h")
				return
			case <-ticker.C:
				s.draw(frame)
				frame++
			}
		}
	}()
}

// draw renders one frame: glyph, message, walking dots, and the elapsed
// time once the wait gets long.
func (s *spinner) draw(frame int) {
	glyph := spinnerStyle.Render(spinnerFrames[frame%len(spinnerFrames)])

	n := 1 + frame/5%3
	dots := strings.Repeat(".", n) + strings.Repeat(" ", 3-n)

	elapsed := ""
	if secs := int(time.Since(s.started).Seconds()); secs >= 5 {
		elapsed = cliDimStyle.Render(fmt.Sprintf(" (%ds)", secs))
	}

	fmt.Fprintf(os.Stderr, "\r\033[K%s %s%s%s", glyph, s.message, dots, elapsed)
}

// stopQuiet stops the spinner and clears its line. Safe to call more
// than once; later calls are no-ops.
func (s *spinner) stopQuiet() {
	s.once.Do(func() { close(s.stop) })
	<-s.done
}

// stopWithSuccess stops the spinner and prints a confirmation line.
func (s *spinner) stopWithSuccess(message string) {
	s.stopQuiet()
	fmt.Fprintln(os.Stderr, cliSuccessStyle.Render("✓ "+message))
}
