// Package term draws frame pixels on an ANSI terminal by positioning the
// cursor and printing a glyph.
package term

import (
	"bufio"
	"io"
	"os"

	"github.com/charmbracelet/x/ansi"
	xterm "github.com/charmbracelet/x/term"
	"github.com/mattn/go-isatty"
)

const DefaultGlyph = "*"

type Option func(*Terminal)

func WithGlyph(g string) Option {
	return func(t *Terminal) {
		if g != "" {
			t.glyph = g
		}
	}
}

// WithBuffered holds marks in memory until Flush instead of writing each
// one as it comes.
func WithBuffered(b bool) Option {
	return func(t *Terminal) {
		t.buffered = b
	}
}

// Terminal implements frame.Marker on top of an io.Writer. Frame cells are
// 0-based, terminal positions 1-based.
type Terminal struct {
	w        *bufio.Writer
	glyph    string
	buffered bool
}

func New(w io.Writer, opts ...Option) *Terminal {
	t := &Terminal{
		w:     bufio.NewWriter(w),
		glyph: DefaultGlyph,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Stdout returns a Terminal writing to os.Stdout.
func Stdout(opts ...Option) *Terminal {
	return New(os.Stdout, opts...)
}

func (t *Terminal) Glyph() string { return t.glyph }

func (t *Terminal) Mark(row, col uint) {
	_, _ = t.w.WriteString(ansi.CursorPosition(int(col)+1, int(row)+1))
	_, _ = t.w.WriteString(t.glyph)
	t.flush()
}

func (t *Terminal) Reset() {
	_, _ = t.w.WriteString(ansi.EraseEntireScreen)
	_, _ = t.w.WriteString(ansi.CursorPosition(1, 1))
	t.flush()
}

// Park moves the cursor to the first column of the given 0-based row,
// typically the line right below the chart, and flushes.
func (t *Terminal) Park(row uint) error {
	_, _ = t.w.WriteString(ansi.CursorPosition(1, int(row)+1))
	return t.Flush()
}

// Flush writes any buffered output.
func (t *Terminal) Flush() error {
	return t.w.Flush()
}

func (t *Terminal) flush() {
	if !t.buffered {
		_ = t.w.Flush()
	}
}

// Size returns the dimensions of the terminal attached to f. ok is false
// when f is not a terminal or its size cannot be read.
func Size(f *os.File) (width, height int, ok bool) {
	fd := f.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return 0, 0, false
	}
	width, height, err := xterm.GetSize(fd)
	if err != nil {
		return 0, 0, false
	}
	return width, height, true
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
