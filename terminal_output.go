// terminal_output.go - Colored scrollback rendering and the monitor REPL

/*
 ██▓ ███▄    █ ▄▄▄█████▓ █    ██  ██▓▄▄▄█████▓ ██▓ ▒█████   ███▄    █    ▓█████  ███▄    █   ▄████  ██▓ ███▄    █ ▓█████
▓██▒ ██ ▀█   █ ▓  ██▒ ▓▒ ██  ▓██▒▓██▒▓  ██▒ ▓▒▓██▒▒██▒  ██▒ ██ ▀█   █    ▓█   ▀  ██ ▀█   █  ██▒ ▀█▒▓██▒ ██ ▀█   █ ▓█   ▀
▒██▒▓██  ▀█ ██▒▒ ▓██░ ▒░▓██  ▒██░▒██▒▒ ▓██░ ▒░▒██▒▒██░  ██▒▓██  ▀█ ██▒   ▒███   ▓██  ▀█ ██▒▒██░▄▄▄░▒██▒▓██  ▀█ ██▒▒███
░██░▓██▒  ▐▌██▒░ ▓██▓ ░ ▓▓█  ░██░░██░░ ▓██▓ ░ ░██░▒██   ██░▓██▒  ▐▌██▒   ▒▓█  ▄ ▓██▒  ▐▌██▒░▓█  ██▓░██░▓██▒  ▐▌██▒▒▓█  ▄
░██░▒██░   ▓██░  ▒██▒ ░ ▒▒█████▓ ░██░  ▒██▒ ░ ░██░░ ████▓▒░▒██░   ▓██░   ░▒████▒▒██░   ▓██░░▒▓███▀▒░██░▒██░   ▓██░░▒████▒
░▓  ░ ▒░   ▒ ▒   ▒ ░░   ░▒▓▒ ▒ ▒ ░▓    ▒ ░░   ░▓  ░ ▒░▒░▒░ ░ ▒░   ▒ ▒    ░░ ▒░ ░░ ▒░   ▒ ▒  ░▒   ▒ ░▓  ░ ▒░   ▒ ▒ ░░ ▒░ ░
 ▒ ░░ ░░   ░ ▒░    ░    ░░▒░ ░ ░  ▒ ░    ░     ▒ ░  ░ ▒ ▒░ ░ ░░   ░ ▒░    ░ ░  ░░ ░░   ░ ▒░  ░   ░  ▒ ░░ ░░   ░ ▒░ ░ ░  ░
 ▒ ░   ░   ░ ░   ░       ░░░ ░ ░  ▒ ░  ░       ▒ ░░ ░ ░ ▒     ░   ░ ░       ░      ░   ░ ░ ░ ░   ░  ▒ ░   ░   ░ ░    ░
 ░           ░             ░      ░            ░      ░ ░           ░       ░  ░         ░       ░  ░           ░    ░  ░

(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionEngine
License: GPLv3 or later
*/

package main

import (
	"bufio"
	"context"
	"errors"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

const monitorPrompt = ". "

// TerminalOutput writes monitor scrollback lines to a terminal, mapping the
// packed RGBA line colors onto ANSI attributes.
type TerminalOutput struct {
	out     io.Writer
	palette map[uint32]*color.Color
	plain   *color.Color
}

func NewTerminalOutput(out io.Writer, noColor bool) *TerminalOutput {
	t := &TerminalOutput{
		out: out,
		palette: map[uint32]*color.Color{
			colorWhite:   color.New(color.FgWhite),
			colorCyan:    color.New(color.FgCyan),
			colorYellow:  color.New(color.FgYellow, color.Bold),
			colorRed:     color.New(color.FgRed),
			colorGreen:   color.New(color.FgGreen),
			colorMagenta: color.New(color.FgMagenta),
			colorDim:     color.New(color.FgBlue, color.Faint),
		},
		plain: color.New(color.Reset),
	}
	for _, c := range t.palette {
		if noColor {
			c.DisableColor()
		} else {
			c.EnableColor()
		}
	}
	t.plain.DisableColor()
	return t
}

func (t *TerminalOutput) colorFor(rgba uint32) *color.Color {
	if c, ok := t.palette[rgba]; ok {
		return c
	}
	return t.plain
}

// WriteLines renders lines in order.
func (t *TerminalOutput) WriteLines(lines []OutputLine) error {
	for _, line := range lines {
		if _, err := t.colorFor(line.Color).Fprintln(t.out, line.Text); err != nil {
			return err
		}
	}
	return nil
}

// lineReader is satisfied by *term.Terminal and by scannerLines.
type lineReader interface {
	ReadLine() (string, error)
}

type scannerLines struct {
	scanner *bufio.Scanner
}

func (s scannerLines) ReadLine() (string, error) {
	if s.scanner.Scan() {
		return s.scanner.Text(), nil
	}
	if err := s.scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

// runMonitorLoop feeds lines to the monitor until x, EOF or cancellation,
// rendering the scrollback after every command.
func runMonitorLoop(ctx context.Context, mon *MachineMonitor, in lineReader, out *TerminalOutput) error {
	if err := out.WriteLines(mon.DrainOutput()); err != nil {
		return err
	}
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		line, err := in.ReadLine()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		exit := mon.Execute(line)
		if err := out.WriteLines(mon.DrainOutput()); err != nil {
			return err
		}
		if exit {
			return nil
		}
	}
}

// isInteractive reports whether f is a terminal, Cygwin's included.
func isInteractive(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// runMonitorSession drives the monitor from stdin. On a real terminal it
// switches to raw mode and uses x/term line editing with history; otherwise
// it reads plain lines, so command files can be piped in.
func runMonitorSession(ctx context.Context, mon *MachineMonitor, stdin io.Reader, stdout io.Writer, noColor bool) error {
	if f, ok := stdin.(*os.File); ok && isInteractive(f) {
		return runMonitorTerminal(ctx, mon, f, stdout, noColor)
	}
	return runMonitorLoop(ctx, mon, scannerLines{bufio.NewScanner(stdin)}, NewTerminalOutput(stdout, noColor))
}

func runMonitorTerminal(ctx context.Context, mon *MachineMonitor, stdin *os.File, stdout io.Writer, noColor bool) error {
	fd := int(stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return err
	}
	defer func() { _ = term.Restore(fd, oldState) }()

	screen := struct {
		io.Reader
		io.Writer
	}{stdin, stdout}
	t := term.NewTerminal(screen, monitorPrompt)
	return runMonitorLoop(ctx, mon, t, NewTerminalOutput(t, noColor))
}
