// Package menubar renders on-call schedules in the SwiftBar/BitBar line
// protocol: one line per display unit, `---` between sections.
package menubar

import (
	"fmt"
	"io"
)

// suffix is the fixed markup appended to every styled line.
const suffix = " | color=#000001,#FFFFFE md=True"

// Writer emits menu lines. The first write error sticks and suppresses
// further output; check Err once at the end.
type Writer struct {
	w   io.Writer
	err error
}

// NewWriter wraps w for menu output.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Line prints a styled line with the shared markup suffix.
func (w *Writer) Line(format string, args ...any) {
	w.printf(format+suffix+"\n", args...)
}

// Plain prints a line without styling.
func (w *Writer) Plain(text string) {
	w.printf("%s\n", text)
}

// Separator ends a menu section.
func (w *Writer) Separator() {
	w.printf("---\n")
}

// Refresh prints the host's refresh action.
func (w *Writer) Refresh() {
	w.printf("Refresh | refresh=true\n")
}

// Err reports the first write failure, if any.
func (w *Writer) Err() error {
	return w.err
}

func (w *Writer) printf(format string, args ...any) {
	if w.err != nil {
		return
	}
	_, w.err = fmt.Fprintf(w.w, format, args...)
}
