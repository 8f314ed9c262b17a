package calculator

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"desktoys/internal/calc"
)

const (
	consoleBanner  = `Simple CLI Calculator (type "exit" to quit)`
	consolePrompt  = "Enter expression [e.g. 2 + 3] ➜ "
	consoleInvalid = "Invalid input. Try again."
	consoleBye     = "Good-bye!"
)

// HeadlessNotice is printed when auto mode falls back to the console.
const HeadlessNotice = "Headless environment detected – switching to console mode."

// Console is the line-oriented calculator: one "<num> <op> <num>" expression
// per line until "exit" or end of input.
type Console struct {
	In  io.Reader
	Out io.Writer
	Log *slog.Logger
}

func (c Console) Run(ctx context.Context) error {
	logger := c.Log
	if logger == nil {
		logger = slog.Default()
	}
	out := &consoleWriter{w: c.Out}

	done := make(chan struct{})
	defer close(done)
	lines := readLines(c.In, done)

	out.println(consoleBanner)
	for {
		out.print(consolePrompt)
		if out.err != nil {
			return out.failed()
		}

		var ln line
		var ok bool
		select {
		case <-ctx.Done():
			out.println()
			out.println(consoleBye)
			return ctx.Err()
		case ln, ok = <-lines:
		}
		if ok && ln.err != nil {
			return fmt.Errorf("calculator: read: %w", ln.err)
		}
		if !ok {
			logger.Debug("calculator: end of input")
			out.println()
			break
		}
		if calc.IsExit(ln.text) {
			break
		}

		v, err := calc.EvalLine(ln.text)
		if err != nil {
			logger.Debug("calculator: rejected line", "line", ln.text, "err", err)
			out.println(consoleInvalid)
			continue
		}
		out.printf("Result = %s\n", calc.FormatResult(v))
	}
	out.println(consoleBye)
	return out.failed()
}

// consoleWriter keeps the first write error so the loop checks once per
// prompt instead of after every print.
type consoleWriter struct {
	w   io.Writer
	err error
}

func (cw *consoleWriter) print(s string) {
	if cw.err == nil {
		_, cw.err = io.WriteString(cw.w, s)
	}
}

func (cw *consoleWriter) println(a ...any) {
	if cw.err == nil {
		_, cw.err = fmt.Fprintln(cw.w, a...)
	}
}

func (cw *consoleWriter) printf(format string, a ...any) {
	if cw.err == nil {
		_, cw.err = fmt.Fprintf(cw.w, format, a...)
	}
}

func (cw *consoleWriter) failed() error {
	if cw.err == nil {
		return nil
	}
	return fmt.Errorf("calculator: write: %w", cw.err)
}

// line is one input line without its terminator, or the read error that
// ended the input.
type line struct {
	text string
	err  error
}

// readLines reads r on its own goroutine so the loop can also watch for
// cancellation. Lines may be of any length. The channel closes at end of
// input, after delivering any read error other than io.EOF.
func readLines(r io.Reader, done <-chan struct{}) <-chan line {
	ch := make(chan line)
	send := func(ln line) bool {
		select {
		case ch <- ln:
			return true
		case <-done:
			return false
		}
	}
	go func() {
		defer close(ch)
		br := bufio.NewReader(r)
		for {
			s, err := br.ReadString('\n')
			if s != "" {
				if !send(line{text: strings.TrimRight(s, "\r\n")}) {
					return
				}
			}
			if err != nil {
				if !errors.Is(err, io.EOF) {
					send(line{err: err})
				}
				return
			}
		}
	}()
	return ch
}
