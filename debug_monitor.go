// debug_monitor.go - Machine monitor state and scrollback

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
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// OutputLine holds styled text for the monitor scrollback buffer.
type OutputLine struct {
	Text  string
	Color uint32 // RGBA packed
}

// MachineMonitor is the core debugger state machine.
type MachineMonitor struct {
	mu sync.Mutex

	cpu    DebugTarget
	fs     afero.Fs
	logger logrus.FieldLogger

	outputLines []OutputLine
	maxOutput   int
	pending     []OutputLine // appended since the last DrainOutput

	history     []string
	macros      map[string][]string
	scriptDepth int

	prevRegs map[string]uint64 // for change highlighting
	nextDis  FarAddr           // where a bare "d" continues
	hasNext  bool
}

// NewMachineMonitor creates a new monitor instance. Files named by save,
// load and script commands are resolved against fs.
func NewMachineMonitor(cpu DebugTarget, fs afero.Fs, logger logrus.FieldLogger) *MachineMonitor {
	return &MachineMonitor{
		cpu:       cpu,
		fs:        fs,
		logger:    logger,
		maxOutput: 500,
		macros:    make(map[string][]string),
		prevRegs:  make(map[string]uint64),
	}
}

// SetScrollback changes how many lines the scrollback keeps.
func (m *MachineMonitor) SetScrollback(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if n > 0 {
		m.maxOutput = n
	}
}

// Activate shows the banner, the registers and the code at CS:IP.
func (m *MachineMonitor) Activate() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.saveCurrentRegs()
	m.appendOutput("MACHINE MONITOR - Type ? for help", colorCyan)
	m.showRegisters()
	m.showDisassemblyAt(m.cpu.GetPC(), 8)
}

// Execute runs one command line under the monitor lock. It reports whether
// the monitor should exit.
func (m *MachineMonitor) Execute(input string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.logger.WithField("command", input).Debug("monitor command")
	return m.ExecuteCommand(input)
}

// appendOutput adds a line to the scrollback buffer.
func (m *MachineMonitor) appendOutput(text string, color uint32) {
	line := OutputLine{Text: text, Color: color}
	m.outputLines = append(m.outputLines, line)
	if len(m.outputLines) > m.maxOutput {
		m.outputLines = m.outputLines[len(m.outputLines)-m.maxOutput:]
	}
	m.pending = append(m.pending, line)
	if len(m.pending) > m.maxOutput {
		m.pending = m.pending[len(m.pending)-m.maxOutput:]
	}
}

// OutputLines returns a copy of the scrollback.
func (m *MachineMonitor) OutputLines() []OutputLine {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]OutputLine(nil), m.outputLines...)
}

// DrainOutput returns the lines added since the previous call.
func (m *MachineMonitor) DrainOutput() []OutputLine {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := m.pending
	m.pending = nil
	return out
}

// History returns the command history, oldest first.
func (m *MachineMonitor) History() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.history...)
}

// saveCurrentRegs snapshots the registers for change detection.
func (m *MachineMonitor) saveCurrentRegs() {
	m.prevRegs = make(map[string]uint64)
	for _, r := range m.cpu.GetRegisters() {
		m.prevRegs[r.Name] = r.Value
	}
}

// Color constants (RGBA packed as 0xRRGGBBAA)
const (
	colorWhite   = 0xFFFFFFFF
	colorCyan    = 0x64C8FFFF
	colorYellow  = 0xFFFF55FF
	colorRed     = 0xFF5555FF
	colorGreen   = 0x55FF55FF
	colorMagenta = 0xFF55FFFF
	colorDim     = 0x5555FFFF
)
