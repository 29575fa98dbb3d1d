package display

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/bep/debounce"
	"github.com/charmbracelet/lipgloss"
	"github.com/jsphweid/chordwatch/model"
)

const clearLine = "\r\033[2K"

var (
	matchedStyle   = lipgloss.NewStyle().Bold(true)
	unmatchedStyle = lipgloss.NewStyle().Faint(true)
)

// Line keeps a single terminal line showing the chord being played.
type Line struct {
	w io.Writer

	mu       sync.Mutex
	pending  model.Update
	closed   bool
	debounce func(func())
}

// NewLine writes to w. With a positive delay, bursts of updates (a chord
// struck as several note ons) are drawn once after the input settles.
func NewLine(w io.Writer, delay time.Duration) *Line {
	l := &Line{w: w}
	if delay > 0 {
		l.debounce = debounce.New(delay)
	}
	return l
}

// Show is suitable as a listen.Reporter.
func (l *Line) Show(u model.Update) {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return
	}
	if l.debounce == nil {
		defer l.mu.Unlock()
		l.draw(u)
		return
	}
	l.pending = u
	l.mu.Unlock()
	l.debounce(l.flush)
}

// Close draws the last pending update right away. Nothing is drawn after it
// returns, including debounced draws still waiting.
func (l *Line) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return
	}
	l.closed = true
	if l.debounce != nil {
		l.draw(l.pending)
	}
}

func (l *Line) flush() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return
	}
	l.draw(l.pending)
}

func (l *Line) draw(u model.Update) {
	if !u.Active {
		fmt.Fprint(l.w, clearLine)
		return
	}
	fmt.Fprintf(l.w, "%sCurrently playing: %s", clearLine, Render(u))
}

// Render styles the label of an active update.
func Render(u model.Update) string {
	if u.Matched {
		return matchedStyle.Render(u.Label)
	}
	return unmatchedStyle.Render(u.Label)
}
