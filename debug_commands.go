// debug_commands.go - Machine monitor command parser and handlers

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
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/afero"
)

// ErrBadAddress is returned for address text that does not parse or does
// not fit a 16-bit segment or offset.
var ErrBadAddress = errors.New("bad address")

// MonitorCommand is a parsed command with name and arguments.
type MonitorCommand struct {
	Name string
	Args []string
}

// ParseCommand splits a raw input line into a command name and arguments.
func ParseCommand(input string) MonitorCommand {
	input = strings.TrimSpace(input)
	if input == "" {
		return MonitorCommand{}
	}
	parts := strings.Fields(input)
	return MonitorCommand{
		Name: strings.ToLower(parts[0]),
		Args: parts[1:],
	}
}

// ParseAddress parses a monitor number in various formats:
// $hex, 0xhex, bare hex, #decimal
func ParseAddress(s string) (uint64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}

	// #decimal
	if strings.HasPrefix(s, "#") {
		v, err := strconv.ParseUint(s[1:], 10, 64)
		return v, err == nil
	}

	// $hex
	if strings.HasPrefix(s, "$") {
		v, err := strconv.ParseUint(s[1:], 16, 64)
		return v, err == nil
	}

	// 0x or 0X hex
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		v, err := strconv.ParseUint(s[2:], 16, 64)
		return v, err == nil
	}

	// bare hex
	v, err := strconv.ParseUint(s, 16, 64)
	return v, err == nil
}

// farFromLinear picks the canonical segment:offset for a linear address,
// with the offset in 0-F.
func farFromLinear(lin uint32) FarAddr {
	lin &= ADDRESS_MASK
	return MakeFar(uint16(lin>>4), uint16(lin&0xF))
}

// parseLinear recognises the L<hex> form of a 20-bit address.
func parseLinear(s string) (FarAddr, bool, error) {
	if len(s) < 2 || (s[0] != 'L' && s[0] != 'l') {
		return 0, false, nil
	}
	v, ok := ParseAddress(s[1:])
	if !ok || v > ADDRESS_MASK {
		return 0, true, fmt.Errorf("%q: %w", s, ErrBadAddress)
	}
	return farFromLinear(uint32(v)), true, nil
}

// ParseFarAddress parses a literal address: SEG:OFF with numeric halves, or
// L followed by a linear address.
func ParseFarAddress(s string) (FarAddr, error) {
	s = strings.TrimSpace(s)
	if addr, isLinear, err := parseLinear(s); isLinear {
		return addr, err
	}
	segText, offText, ok := strings.Cut(s, ":")
	if !ok {
		return 0, fmt.Errorf("%q: want SEG:OFF: %w", s, ErrBadAddress)
	}
	seg, ok1 := ParseAddress(segText)
	off, ok2 := ParseAddress(offText)
	if !ok1 || !ok2 || seg > 0xFFFF || off > 0xFFFF {
		return 0, fmt.Errorf("%q: %w", s, ErrBadAddress)
	}
	return MakeFar(uint16(seg), uint16(off)), nil
}

// EvalAddress evaluates a simple expression: <term> [+|- <term>]*
// Each term is either a register name or a numeric address.
func EvalAddress(expr string, cpu DebugTarget) (uint64, bool) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return 0, false
	}

	type token struct {
		text string
		op   byte // 0 for first term, '+' or '-'
	}

	var tokens []token
	current := strings.Builder{}
	currentOp := byte(0)

	for i := 0; i < len(expr); i++ {
		ch := expr[i]
		if (ch == '+' || ch == '-') && i > 0 {
			t := strings.TrimSpace(current.String())
			if t != "" {
				tokens = append(tokens, token{text: t, op: currentOp})
			}
			currentOp = ch
			current.Reset()
		} else {
			current.WriteByte(ch)
		}
	}
	t := strings.TrimSpace(current.String())
	if t != "" {
		tokens = append(tokens, token{text: t, op: currentOp})
	}

	if len(tokens) == 0 {
		return 0, false
	}

	var result uint64
	for _, tok := range tokens {
		var val uint64
		var ok bool

		// Try register name first (if CPU available)
		if cpu != nil {
			var r uint16
			r, ok = cpu.GetRegister(tok.text)
			val = uint64(r)
		}
		if !ok {
			val, ok = ParseAddress(tok.text)
		}
		if !ok {
			return 0, false
		}

		switch tok.op {
		case 0, '+':
			result += val
		case '-':
			result -= val
		}
	}

	return result, true
}

// evalFarAddress resolves a monitor address argument. SEG:OFF halves may be
// expressions; a lone expression is an offset into defaultSeg.
func evalFarAddress(expr string, cpu DebugTarget, defaultSeg string) (FarAddr, error) {
	expr = strings.TrimSpace(expr)
	if addr, isLinear, err := parseLinear(expr); isLinear {
		return addr, err
	}

	var seg uint64
	offText := expr
	if segText, rest, ok := strings.Cut(expr, ":"); ok {
		v, ok := EvalAddress(segText, cpu)
		if !ok || v > 0xFFFF {
			return 0, fmt.Errorf("%q: %w", expr, ErrBadAddress)
		}
		seg, offText = v, rest
	} else {
		r, _ := cpu.GetRegister(defaultSeg)
		seg = uint64(r)
	}

	off, ok := EvalAddress(offText, cpu)
	if !ok || off > 0xFFFF {
		return 0, fmt.Errorf("%q: %w", expr, ErrBadAddress)
	}
	return MakeFar(uint16(seg), uint16(off)), nil
}

// farAt names the address delta bytes past start, staying in start's
// segment while the offset fits.
func farAt(start FarAddr, delta uint32) FarAddr {
	if off := uint32(start.Offset()) + delta; off <= 0xFFFF {
		return MakeFar(start.Segment(), uint16(off))
	}
	return farFromLinear(start.Linear() + delta)
}

// ExecuteCommand dispatches a parsed command to the appropriate handler.
// Returns true if the monitor should exit.
func (m *MachineMonitor) ExecuteCommand(input string) bool {
	cmd := ParseCommand(input)
	if cmd.Name == "" {
		return false
	}

	if m.scriptDepth == 0 && (len(m.history) == 0 || m.history[len(m.history)-1] != input) {
		m.history = append(m.history, input)
	}

	switch cmd.Name {
	case "r":
		return m.cmdRegisters(cmd)
	case "d":
		return m.cmdDisassemble(cmd)
	case "m":
		return m.cmdMemoryDump(cmd)
	case "x":
		return true
	case "f":
		return m.cmdFill(cmd)
	case "h":
		return m.cmdHunt(cmd)
	case "c":
		return m.cmdCompare(cmd)
	case "t":
		return m.cmdTransfer(cmd)
	case "w":
		return m.cmdWrite(cmd)
	case "save":
		return m.cmdSaveMemory(cmd)
	case "load":
		return m.cmdLoadMemory(cmd)
	case "script":
		return m.cmdScript(cmd)
	case "macro":
		return m.cmdMacro(cmd)
	case "?", "help":
		return m.cmdHelp(cmd)
	default:
		if cmds, ok := m.macros[cmd.Name]; ok {
			return m.executeMacro(cmds)
		}
		m.appendOutput(fmt.Sprintf("Unknown command: %s", cmd.Name), colorRed)
		return false
	}
}

func (m *MachineMonitor) cmdRegisters(cmd MonitorCommand) bool {
	if len(cmd.Args) >= 2 {
		// Set register: r <name> <value>
		name := cmd.Args[0]
		val, ok := ParseAddress(cmd.Args[1])
		if !ok || val > 0xFFFF {
			m.appendOutput(fmt.Sprintf("Invalid value: %s", cmd.Args[1]), colorRed)
			return false
		}
		if m.cpu.SetRegister(name, uint16(val)) {
			m.appendOutput(fmt.Sprintf("%s = $%04X", strings.ToUpper(name), val), colorGreen)
			m.hasNext = false
		} else {
			m.appendOutput(fmt.Sprintf("Unknown register: %s", name), colorRed)
		}
		return false
	}

	m.showRegisters()
	m.saveCurrentRegs()
	return false
}

func (m *MachineMonitor) showRegisters() {
	var sb strings.Builder
	changed := false
	for i, r := range m.cpu.GetRegisters() {
		if i > 0 {
			sb.WriteString("  ")
		}
		fmt.Fprintf(&sb, "%s=%04X", r.Name, r.Value)
		if prev, ok := m.prevRegs[r.Name]; ok && prev != r.Value {
			changed = true
		}
	}
	color := uint32(colorWhite)
	if changed {
		color = colorGreen
	}
	m.appendOutput(sb.String(), color)
}

func (m *MachineMonitor) cmdDisassemble(cmd MonitorCommand) bool {
	addr := m.cpu.GetPC()
	if m.hasNext {
		addr = m.nextDis
	}
	count := 16

	if len(cmd.Args) >= 1 {
		v, err := evalFarAddress(cmd.Args[0], m.cpu, "CS")
		if err != nil {
			m.appendOutput(fmt.Sprintf("Error: %s", err), colorRed)
			return false
		}
		addr = v
	}
	if len(cmd.Args) >= 2 {
		if v, ok := ParseAddress(cmd.Args[1]); ok && v > 0 && v <= 256 {
			count = int(v)
		}
	}

	m.showDisassemblyAt(addr, count)
	return false
}

func (m *MachineMonitor) showDisassemblyAt(addr FarAddr, count int) {
	lines := m.cpu.Disassemble(addr, count)
	if len(lines) == 0 {
		return
	}
	last := lines[len(lines)-1]
	m.nextDis, m.hasNext = last.Address.Add(last.Size), true

	// Mark which addresses in the window are targeted by branches
	addrSet := make(map[FarAddr]bool, len(lines))
	for _, line := range lines {
		addrSet[line.Address] = true
	}
	targetSet := make(map[FarAddr]bool)
	for _, line := range lines {
		if line.HasTarget && addrSet[line.BranchTarget] {
			targetSet[line.BranchTarget] = true
		}
	}

	for _, line := range lines {
		if line.Label != "" {
			m.appendOutput(line.Label+":", colorGreen)
		}

		color := uint32(colorWhite)
		prefix := "  "
		if line.IsPC {
			color = colorYellow
			prefix = "> "
		}
		if targetSet[line.Address] {
			prefix = "T "
		}

		// Branch annotation suffix
		suffix := ""
		if line.TargetLabel != "" {
			suffix = "  ; " + line.TargetLabel
		}
		if line.HasTarget && line.BranchTarget.Segment() == line.Address.Segment() &&
			line.BranchTarget.Offset() <= line.Address.Offset() {
			suffix += " <- LOOP"
			if color == colorWhite {
				color = colorMagenta
			}
		}

		text := fmt.Sprintf("%s%s: %-24s %s%s", prefix, line.Address, line.HexBytes, line.Mnemonic, suffix)
		m.appendOutput(text, color)
	}
}

func (m *MachineMonitor) cmdMemoryDump(cmd MonitorCommand) bool {
	ds, _ := m.cpu.GetRegister("DS")
	addr := MakeFar(ds, 0)
	lines := 8

	if len(cmd.Args) >= 1 {
		v, err := evalFarAddress(cmd.Args[0], m.cpu, "DS")
		if err != nil {
			m.appendOutput(fmt.Sprintf("Error: %s", err), colorRed)
			return false
		}
		addr = v
	}
	if len(cmd.Args) >= 2 {
		if v, ok := ParseAddress(cmd.Args[1]); ok && v > 0 && v <= 256 {
			lines = int(v)
		}
	}

	for range lines {
		data := m.cpu.ReadMemory(addr.Linear(), 16)

		var hexParts []string
		var asciiParts []byte
		for _, b := range data {
			hexParts = append(hexParts, fmt.Sprintf("%02X", b))
			if b >= 0x20 && b < 0x7F {
				asciiParts = append(asciiParts, b)
			} else {
				asciiParts = append(asciiParts, '.')
			}
		}

		hexStr := strings.Join(hexParts[:8], " ") + "  " + strings.Join(hexParts[8:], " ")
		m.appendOutput(fmt.Sprintf("%s: %s  %s", addr, hexStr, string(asciiParts)), colorWhite)
		addr = addr.Add(16)
	}
	return false
}

// memRange resolves <start> <end> arguments to a linear start and a size.
func (m *MachineMonitor) memRange(startText, endText string) (FarAddr, int, error) {
	start, err := evalFarAddress(startText, m.cpu, "DS")
	if err != nil {
		return 0, 0, err
	}
	end, err := evalFarAddress(endText, m.cpu, "DS")
	if err != nil {
		return 0, 0, err
	}
	if end.Linear() < start.Linear() {
		return 0, 0, fmt.Errorf("end %s is below start %s", end, start)
	}
	return start, int(end.Linear()-start.Linear()) + 1, nil
}

func (m *MachineMonitor) parseBytes(args []string) ([]byte, bool) {
	var data []byte
	for _, arg := range args {
		v, ok := ParseAddress(arg)
		if !ok || v > 0xFF {
			m.appendOutput(fmt.Sprintf("Invalid byte: %s", arg), colorRed)
			return nil, false
		}
		data = append(data, byte(v))
	}
	return data, true
}

func (m *MachineMonitor) cmdFill(cmd MonitorCommand) bool {
	if len(cmd.Args) < 3 {
		m.appendOutput("Usage: f <start> <end> <byte>", colorRed)
		return false
	}

	start, size, err := m.memRange(cmd.Args[0], cmd.Args[1])
	if err != nil {
		m.appendOutput(fmt.Sprintf("Error: %s", err), colorRed)
		return false
	}
	val, ok := m.parseBytes(cmd.Args[2:3])
	if !ok {
		return false
	}

	data := make([]byte, size)
	for i := range data {
		data[i] = val[0]
	}
	m.cpu.WriteMemory(start.Linear(), data)
	m.appendOutput(fmt.Sprintf("Filled %d bytes at %s with %02X", size, start, val[0]), colorCyan)
	return false
}

func (m *MachineMonitor) cmdHunt(cmd MonitorCommand) bool {
	if len(cmd.Args) < 3 {
		m.appendOutput("Usage: h <start> <end> <bytes..>", colorRed)
		return false
	}

	start, size, err := m.memRange(cmd.Args[0], cmd.Args[1])
	if err != nil {
		m.appendOutput(fmt.Sprintf("Error: %s", err), colorRed)
		return false
	}
	pattern, ok := m.parseBytes(cmd.Args[2:])
	if !ok {
		return false
	}

	data := m.cpu.ReadMemory(start.Linear(), size)
	found := 0
	for i := 0; i+len(pattern) <= len(data); i++ {
		if !slices.Equal(data[i:i+len(pattern)], pattern) {
			continue
		}
		m.appendOutput(fmt.Sprintf("Found at %s", farAt(start, uint32(i))), colorCyan)
		found++
		if found >= 256 {
			m.appendOutput("... (truncated)", colorDim)
			break
		}
	}
	if found == 0 {
		m.appendOutput("Not found", colorDim)
	}
	return false
}

func (m *MachineMonitor) cmdCompare(cmd MonitorCommand) bool {
	if len(cmd.Args) < 3 {
		m.appendOutput("Usage: c <start> <end> <dest>", colorRed)
		return false
	}

	start, size, err := m.memRange(cmd.Args[0], cmd.Args[1])
	if err != nil {
		m.appendOutput(fmt.Sprintf("Error: %s", err), colorRed)
		return false
	}
	dest, err := evalFarAddress(cmd.Args[2], m.cpu, "DS")
	if err != nil {
		m.appendOutput(fmt.Sprintf("Error: %s", err), colorRed)
		return false
	}

	data1 := m.cpu.ReadMemory(start.Linear(), size)
	data2 := m.cpu.ReadMemory(dest.Linear(), size)
	diffs := 0
	for i := range data1 {
		if data1[i] == data2[i] {
			continue
		}
		m.appendOutput(fmt.Sprintf("%s: %02X != %02X (at %s)",
			farAt(start, uint32(i)), data1[i], data2[i], farAt(dest, uint32(i))), colorYellow)
		diffs++
		if diffs >= 256 {
			m.appendOutput("... (truncated)", colorDim)
			break
		}
	}
	if diffs == 0 {
		m.appendOutput("Identical", colorGreen)
	}
	return false
}

func (m *MachineMonitor) cmdTransfer(cmd MonitorCommand) bool {
	if len(cmd.Args) < 3 {
		m.appendOutput("Usage: t <start> <end> <dest>", colorRed)
		return false
	}

	start, size, err := m.memRange(cmd.Args[0], cmd.Args[1])
	if err != nil {
		m.appendOutput(fmt.Sprintf("Error: %s", err), colorRed)
		return false
	}
	dest, err := evalFarAddress(cmd.Args[2], m.cpu, "DS")
	if err != nil {
		m.appendOutput(fmt.Sprintf("Error: %s", err), colorRed)
		return false
	}

	data := m.cpu.ReadMemory(start.Linear(), size)
	m.cpu.WriteMemory(dest.Linear(), data)
	m.appendOutput(fmt.Sprintf("Transferred %d bytes from %s to %s", size, start, dest), colorCyan)
	return false
}

func (m *MachineMonitor) cmdWrite(cmd MonitorCommand) bool {
	if len(cmd.Args) < 2 {
		m.appendOutput("Usage: w <addr> <bytes..>", colorRed)
		return false
	}

	addr, err := evalFarAddress(cmd.Args[0], m.cpu, "DS")
	if err != nil {
		m.appendOutput(fmt.Sprintf("Error: %s", err), colorRed)
		return false
	}
	data, ok := m.parseBytes(cmd.Args[1:])
	if !ok {
		return false
	}

	m.cpu.WriteMemory(addr.Linear(), data)
	m.appendOutput(fmt.Sprintf("Wrote %d byte(s) at %s", len(data), addr), colorCyan)
	return false
}

func (m *MachineMonitor) cmdHelp(_ MonitorCommand) bool {
	helpLines := []string{
		"Machine Monitor Commands:",
		"  r                  Show registers",
		"  r <name> <value>   Set register (CS DS ES SS IP)",
		"  d [addr] [count]   Disassemble",
		"  m [addr] [count]   Memory dump (hex+ASCII)",
		"  x                  Exit monitor",
		"  f <start> <end> <byte>   Fill memory",
		"  w <addr> <bytes..>       Write bytes",
		"  h <start> <end> <bytes..> Hunt/search",
		"  c <start> <end> <dest>   Compare memory",
		"  t <start> <end> <dest>   Transfer/copy memory",
		"  save <s> <e> <file>  Save memory to file",
		"  load <file> <addr>   Load file into memory",
		"  script <file>      Run command script",
		"  macro <name> <cmds..> Define macro (;-separated)",
		"",
		"Addresses: SEG:OFF, L<linear>, $hex, 0xhex, bare hex, #decimal, expr+expr",
		"A bare offset is relative to CS for d, DS otherwise",
	}
	for _, line := range helpLines {
		m.appendOutput(line, colorCyan)
	}
	return false
}

// --- Export/Import Memory ---

func (m *MachineMonitor) cmdSaveMemory(cmd MonitorCommand) bool {
	if len(cmd.Args) < 3 {
		m.appendOutput("Usage: save <start> <end> <filename>", colorRed)
		return false
	}

	start, size, err := m.memRange(cmd.Args[0], cmd.Args[1])
	if err != nil {
		m.appendOutput(fmt.Sprintf("Error: %s", err), colorRed)
		return false
	}

	data := m.cpu.ReadMemory(start.Linear(), size)
	if err := afero.WriteFile(m.fs, cmd.Args[2], data, 0o644); err != nil {
		m.appendOutput(fmt.Sprintf("Error: %s", err), colorRed)
		return false
	}

	m.appendOutput(fmt.Sprintf("Saved %d bytes from %s to %s", size, start, cmd.Args[2]), colorCyan)
	return false
}

func (m *MachineMonitor) cmdLoadMemory(cmd MonitorCommand) bool {
	if len(cmd.Args) < 2 {
		m.appendOutput("Usage: load <filename> <addr>", colorRed)
		return false
	}

	data, err := afero.ReadFile(m.fs, cmd.Args[0])
	if err != nil {
		m.appendOutput(fmt.Sprintf("Error: %s", err), colorRed)
		return false
	}

	addr, err := evalFarAddress(cmd.Args[1], m.cpu, "DS")
	if err != nil {
		m.appendOutput(fmt.Sprintf("Error: %s", err), colorRed)
		return false
	}
	if uint64(addr.Linear())+uint64(len(data)) > REAL_MODE_MEMORY_SIZE {
		m.appendOutput(fmt.Sprintf("Error: %s: %s", cmd.Args[0], ErrImageTooLarge), colorRed)
		return false
	}

	m.cpu.WriteMemory(addr.Linear(), data)
	m.appendOutput(fmt.Sprintf("Loaded %d bytes from %s to %s", len(data), cmd.Args[0], addr), colorCyan)
	return false
}

// --- Scripting / Command Batching ---

const maxScriptDepth = 8

func (m *MachineMonitor) cmdScript(cmd MonitorCommand) bool {
	if len(cmd.Args) < 1 {
		m.appendOutput("Usage: script <filename>", colorRed)
		return false
	}

	data, err := afero.ReadFile(m.fs, cmd.Args[0])
	if err != nil {
		m.appendOutput(fmt.Sprintf("Error: %s", err), colorRed)
		return false
	}

	m.scriptDepth++
	defer func() { m.scriptDepth-- }()
	if m.scriptDepth > maxScriptDepth {
		m.appendOutput("Script recursion limit reached", colorRed)
		return false
	}

	for line := range strings.SplitSeq(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if m.ExecuteCommand(line) {
			return true
		}
	}
	return false
}

func (m *MachineMonitor) cmdMacro(cmd MonitorCommand) bool {
	if len(cmd.Args) < 2 {
		m.appendOutput("Usage: macro <name> <cmd1> ; <cmd2> ; ...", colorRed)
		return false
	}

	name := strings.ToLower(cmd.Args[0])
	body := strings.Join(cmd.Args[1:], " ")
	var cleaned []string
	for c := range strings.SplitSeq(body, ";") {
		c = strings.TrimSpace(c)
		if c != "" {
			cleaned = append(cleaned, c)
		}
	}

	m.macros[name] = cleaned
	m.appendOutput(fmt.Sprintf("Macro '%s' defined (%d commands)", name, len(cleaned)), colorCyan)
	return false
}

func (m *MachineMonitor) executeMacro(cmds []string) bool {
	m.scriptDepth++
	defer func() { m.scriptDepth-- }()
	if m.scriptDepth > maxScriptDepth {
		m.appendOutput("Macro recursion limit reached", colorRed)
		return false
	}

	return slices.ContainsFunc(cmds, m.ExecuteCommand)
}
