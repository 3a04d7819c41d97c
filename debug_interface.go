// debug_interface.go - Debug target interface and monitor data types

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

import "fmt"

// FarAddr is a real-mode segment:offset pair packed the way the CPU stores a
// far pointer: segment in the high word, offset in the low word.
type FarAddr uint32

func MakeFar(segment, offset uint16) FarAddr {
	return FarAddr(uint32(segment)<<16 | uint32(offset))
}

func (a FarAddr) Segment() uint16 { return uint16(a >> 16) }
func (a FarAddr) Offset() uint16  { return uint16(a) }

// Linear returns the 20-bit physical address.
func (a FarAddr) Linear() uint32 { return Linear(a.Segment(), a.Offset()) }

// Add advances the offset, wrapping inside the segment.
func (a FarAddr) Add(n int) FarAddr {
	return MakeFar(a.Segment(), a.Offset()+uint16(n))
}

func (a FarAddr) String() string {
	return fmt.Sprintf("%04X:%04X", a.Segment(), a.Offset())
}

// RegisterInfo describes a single CPU register for display in the monitor.
type RegisterInfo struct {
	Name     string // "CS", "IP"
	BitWidth int
	Value    uint64
	Group    string // "segment", "pointer"
}

// DisassembledLine represents one disassembled instruction.
type DisassembledLine struct {
	Address      FarAddr
	HexBytes     string
	Mnemonic     string
	Size         int
	IsPC         bool // true if this is the current CS:IP
	IsBranch     bool
	BranchTarget FarAddr
	HasTarget    bool   // BranchTarget is known statically
	Label        string // symbol at Address, if any
	TargetLabel  string // symbol at BranchTarget, if any
}

// DebugTarget is what the monitor drives: a register cursor over an
// address space, with a disassembler attached.
type DebugTarget interface {
	CPUName() string

	GetRegisters() []RegisterInfo
	GetRegister(name string) (uint16, bool)
	SetRegister(name string, value uint16) bool
	GetPC() FarAddr
	SetPC(addr FarAddr)

	Disassemble(addr FarAddr, count int) []DisassembledLine

	ReadMemory(addr uint32, size int) []byte
	WriteMemory(addr uint32, data []byte)
}
