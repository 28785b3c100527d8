// Package spinner draws a progress indicator on stderr while passphrase
// candidates are being scored.
package spinner

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
)

var frames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Interval is the delay between frames.
var Interval = 80 * time.Millisecond

// Start animates message on w until the returned stop function is called.
// stop clears the line and is safe to call more than once.
func Start(w io.Writer, message string) (stop func()) {
	done := make(chan struct{})
	cleared := make(chan struct{})
	width := runewidth.StringWidth(message) + 2

	go func() {
		defer close(cleared)
		ticker := time.NewTicker(Interval)
		defer ticker.Stop()

		for i := 0; ; i++ {
			fmt.Fprintf(w, "\r%s %s", frames[i%len(frames)], message) //nolint:errcheck
			select {
			case <-done:
				fmt.Fprintf(w, "\r%s\r", strings.Repeat(" ", width)) //nolint:errcheck
				return
			case <-ticker.C:
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() { close(done) })
		<-cleared
	}
}

// StartOnTerminal is Start for f when f is a terminal and a no-op otherwise,
// so piped output never carries control characters.
func StartOnTerminal(f *os.File, message string) (stop func()) {
	if f == nil || !term.IsTerminal(int(f.Fd())) {
		return func() {}
	}
	return Start(f, message)
}
