// debug_cpu_8086.go - Debug adapter for the 8086 register cursor

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
	"strings"
	"sync"
)

// Debug8086 implements DebugTarget over a SystemBus. It holds only the
// registers that pick what to look at: the segment registers and IP.
type Debug8086 struct {
	bus     *SystemBus
	symbols *SymbolTable

	mu             sync.Mutex
	cs, ds, es, ss uint16
	ip             uint16
}

func NewDebug8086(bus *SystemBus, symbols *SymbolTable) *Debug8086 {
	return &Debug8086{bus: bus, symbols: symbols}
}

func (d *Debug8086) CPUName() string { return "8086" }

func (d *Debug8086) GetRegisters() []RegisterInfo {
	d.mu.Lock()
	defer d.mu.Unlock()
	return []RegisterInfo{
		{Name: "CS", BitWidth: 16, Value: uint64(d.cs), Group: "segment"},
		{Name: "DS", BitWidth: 16, Value: uint64(d.ds), Group: "segment"},
		{Name: "ES", BitWidth: 16, Value: uint64(d.es), Group: "segment"},
		{Name: "SS", BitWidth: 16, Value: uint64(d.ss), Group: "segment"},
		{Name: "IP", BitWidth: 16, Value: uint64(d.ip), Group: "pointer"},
	}
}

func (d *Debug8086) GetRegister(name string) (uint16, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	switch strings.ToUpper(name) {
	case "CS":
		return d.cs, true
	case "DS":
		return d.ds, true
	case "ES":
		return d.es, true
	case "SS":
		return d.ss, true
	case "IP", "PC":
		return d.ip, true
	}
	return 0, false
}

func (d *Debug8086) SetRegister(name string, value uint16) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	switch strings.ToUpper(name) {
	case "CS":
		d.cs = value
	case "DS":
		d.ds = value
	case "ES":
		d.es = value
	case "SS":
		d.ss = value
	case "IP", "PC":
		d.ip = value
	default:
		return false
	}
	return true
}

func (d *Debug8086) GetPC() FarAddr {
	d.mu.Lock()
	defer d.mu.Unlock()
	return MakeFar(d.cs, d.ip)
}

// SetPC moves CS:IP. Data and extra segments follow CS, the usual state
// after loading a flat image.
func (d *Debug8086) SetPC(addr FarAddr) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cs, d.ip = addr.Segment(), addr.Offset()
	d.ds, d.es = d.cs, d.cs
}

func (d *Debug8086) Disassemble(addr FarAddr, count int) []DisassembledLine {
	pc := d.GetPC()
	lines := disassemble8086(d.bus, addr, count, d.symbols)
	for i := range lines {
		if lines[i].Address == pc {
			lines[i].IsPC = true
		}
	}
	return lines
}

func (d *Debug8086) ReadMemory(addr uint32, size int) []byte {
	return d.bus.ReadBlock(addr, size)
}

func (d *Debug8086) WriteMemory(addr uint32, data []byte) {
	d.bus.WriteBlock(addr, data)
}
