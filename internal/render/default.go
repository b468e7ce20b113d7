package render

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/term"
)

type DefaultRenderer struct {
	// Defaults to stdout
	Out io.Writer

	buffer       strings.Builder
	restoreState *term.State
	columns      int
	rows         int
}

func (r *DefaultRenderer) out() io.Writer {
	if nil == r.Out {
		return os.Stdout
	}
	return r.Out
}

func (r *DefaultRenderer) Init() error {
	fd := int(os.Stdout.Fd())
	columns, rows, err := term.GetSize(fd)
	if nil != err {
		return errors.Wrap(err, "unable to get terminal size")
	}
	r.columns, r.rows = columns, rows

	state, err := term.MakeRaw(fd)
	if nil != err {
		return errors.Wrap(err, "unable to make terminal raw")
	}
	r.restoreState = state

	fmt.Fprintf(r.out(), "%s%s%s",
		"\033[?1049h", // Enable alternate buffer
		"\033[?25l",   // Make the cursor invisible
		"\033[J",      // Clear the screen
	)
	return nil
}

func (r *DefaultRenderer) Deinit() error {
	fmt.Fprintf(r.out(), "%s%s",
		"\033[?1049l", // Disable alternate buffer
		"\033[?25h",   // Make the cursor visible
	)
	if nil == r.restoreState {
		return nil
	}
	state := r.restoreState
	r.restoreState = nil
	return term.Restore(int(os.Stdout.Fd()), state)
}

func (r *DefaultRenderer) Size() (columns, rows int) {
	return r.columns, r.rows
}

// RenderLoop calls render once per period until it returns false.
func (r *DefaultRenderer) RenderLoop(period time.Duration, render func(now time.Time) bool) {
	for cont := true; cont; {
		now := time.Now()
		deadline := now.Add(period)

		cont = render(now)
		r.flush()

		if d := time.Since(now); d > period {
			log.Printf("frame took %v, longer than %v\n", d, period)
		}
		time.Sleep(time.Until(deadline))
	}
}

// Clear queues a full screen clear ahead of the next frame's cells.
func (r *DefaultRenderer) Clear() {
	r.buffer.WriteString("\033[2J")
}

func (r *DefaultRenderer) move(row, column int) {
	r.buffer.WriteString("\033[")
	r.buffer.WriteString(strconv.Itoa(row))
	r.buffer.WriteString(";")
	r.buffer.WriteString(strconv.Itoa(column))
	r.buffer.WriteString("H")
}

func (r *DefaultRenderer) Fill(row, column int, message string) {
	r.move(row, column)
	r.buffer.WriteString(message)
}

func (r *DefaultRenderer) FillColor(row, column int, c color.RGBA, message string) {
	r.move(row, column)
	r.buffer.WriteString("\033[38;2;")
	r.buffer.WriteString(strconv.Itoa(int(c.R)))
	r.buffer.WriteString(";")
	r.buffer.WriteString(strconv.Itoa(int(c.G)))
	r.buffer.WriteString(";")
	r.buffer.WriteString(strconv.Itoa(int(c.B)))
	r.buffer.WriteString("m")
	r.buffer.WriteString(message)
	r.buffer.WriteString("\033[0m")
}

func (r *DefaultRenderer) flush() {
	if _, err := io.WriteString(r.out(), r.buffer.String()); nil != err {
		log.Println("unable to write frame", err)
	}
	r.buffer.Reset()
}
