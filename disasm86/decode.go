// decode.go - 8086 instruction decoder entry point

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

// Package disasm86 decodes 16-bit 8086 machine code into disassembly records
// for the monitor and trace output. It only describes the shape of an
// instruction and never evaluates it. Decoding is total: every byte value
// decodes to something, and every record advances by at least one byte.
//
// All tables are built once at package init and never written again, so the
// decoder is safe for concurrent use.
package disasm86

import "fmt"

const (
	// WindowSize is the number of bytes Decode requires from the caller.
	WindowSize = 16
	// MaxOpcodeLength is the longest prefix-free encoding: opcode, ModRM,
	// 16-bit displacement and 16-bit immediate.
	MaxOpcodeLength = 6
	// MaxPrefixes is how many prefix bytes one record may absorb. Prefixes
	// plus the longest encoding always fit inside the window.
	MaxPrefixes = WindowSize - MaxOpcodeLength
)

// Decode decodes the instruction at the start of window, whose first byte
// sits at address ip. window must hold at least WindowSize bytes; callers
// near the end of their data pad it (the memory bus and DecodeAt do this
// naturally). A shorter window is a programming error and panics.
func Decode(window []byte, ip uint16) Instruction {
	if len(window) < WindowSize {
		panic(fmt.Sprintf("disasm86: decode window holds %d bytes, need %d", len(window), WindowSize))
	}
	return decodePrefixed(window[:WindowSize], ip)
}
