// Package console renders the tool's banner and per-entry status lines and
// owns the Windows console niceties: ANSI color probing, window title, and
// the closing keypress gate.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

const (
	ansiReset        = "\033[0m"
	ansiBrightWhite  = "\033[97m"
	ansiBrightRed    = "\033[91m"
	ansiBrightGreen  = "\033[92m"
	ansiBrightYellow = "\033[93m"
	ansiSkyBlue      = "\033[38;5;111m"
)

// Printer writes styled status lines. With color disabled it emits plain
// text, so output stays readable in redirected or legacy consoles.
type Printer struct {
	out   io.Writer
	color bool
}

func NewPrinter(out io.Writer, color bool) *Printer {
	return &Printer{out: out, color: color}
}

func (p *Printer) paint(code, s string) string {
	if !p.color {
		return s
	}
	return code + s + ansiReset
}

// Banner prints the header block: a ruled title followed by status lines.
func (p *Printer) Banner(title string, lines ...string) {
	rule := strings.Repeat("=", len(title)+4)
	fmt.Fprintln(p.out, p.paint(ansiSkyBlue, rule))
	fmt.Fprintln(p.out, p.paint(ansiBrightWhite, "  "+title))
	fmt.Fprintln(p.out, p.paint(ansiSkyBlue, rule))
	for _, l := range lines {
		fmt.Fprintln(p.out, l)
	}
}

func (p *Printer) Infof(format string, args ...any) {
	fmt.Fprintf(p.out, format+"\n", args...)
}

// Entry prints one value line in "name = value" form.
func (p *Printer) Entry(name, value string) {
	fmt.Fprintf(p.out, "  %-16s = %s\n", name, p.paint(ansiBrightWhite, value))
}

// OK prints a per-entry success line.
func (p *Printer) OK(name string) {
	fmt.Fprintf(p.out, "  [%s] %s\n", p.paint(ansiBrightGreen, "OK"), name)
}

// Fail prints a per-entry failure line with the cause.
func (p *Printer) Fail(name string, err error) {
	fmt.Fprintf(p.out, "  [%s] %s: %v\n", p.paint(ansiBrightRed, "FAIL"), name, err)
}

func (p *Printer) Success(msg string) {
	fmt.Fprintln(p.out, p.paint(ansiBrightGreen, msg))
}

func (p *Printer) Warn(msg string) {
	fmt.Fprintln(p.out, p.paint(ansiBrightYellow, msg))
}

func (p *Printer) Error(msg string) {
	fmt.Fprintln(p.out, p.paint(ansiBrightRed, msg))
}

// WaitForEnter blocks until the user presses Enter. It keeps an
// auto-closing console window open long enough to read the outcome.
func WaitForEnter(in io.Reader, out io.Writer) {
	fmt.Fprint(out, "\nPress Enter to exit...")
	_, _ = bufio.NewReader(in).ReadBytes('\n')
}
