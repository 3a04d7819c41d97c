// debug_disasm_8086.go - Listing builder over the 8086 decoder

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
	"fmt"
	"strings"

	"github.com/intuitionamiga/ie86dis/disasm86"
)

func disassemble8086(mem disasm86.Memory, start FarAddr, count int, symbols *SymbolTable) []DisassembledLine {
	lines := make([]DisassembledLine, 0, count)
	addr := start
	for range count {
		line := disassembleLine(mem, addr, symbols)
		lines = append(lines, line)
		addr = addr.Add(line.Size)
	}
	return lines
}

// disassembleImage decodes from start until size bytes are consumed. The
// last instruction may run past the end of the image. Images longer than a
// segment continue in the next paragraph-aligned segment instead of
// wrapping back to offset 0000.
func disassembleImage(mem disasm86.Memory, start FarAddr, size int, symbols *SymbolTable) []DisassembledLine {
	var lines []DisassembledLine
	for consumed := 0; consumed < size; {
		line := disassembleLine(mem, farAt(start, uint32(consumed)), symbols)
		lines = append(lines, line)
		consumed += line.Size
	}
	return lines
}

func disassembleLine(mem disasm86.Memory, addr FarAddr, symbols *SymbolTable) DisassembledLine {
	inst := disasm86.DecodeAt(mem, addr.Segment(), addr.Offset())

	hexParts := make([]string, 0, inst.Length)
	for _, b := range inst.Bytes() {
		hexParts = append(hexParts, fmt.Sprintf("%02X", b))
	}

	line := DisassembledLine{
		Address:  addr,
		HexBytes: strings.Join(hexParts, " "),
		Mnemonic: inst.String(),
		Size:     inst.Length,
	}
	line.Label, _ = symbols.Lookup(addr)

	if br := inst.Branch(); br.IsBranch() {
		line.IsBranch = true
		if br.HasTarget {
			line.HasTarget = true
			if br.Kind == disasm86.BranchFar {
				line.BranchTarget = MakeFar(br.Segment, br.Target)
			} else {
				line.BranchTarget = MakeFar(addr.Segment(), br.Target)
			}
			line.TargetLabel, _ = symbols.Lookup(line.BranchTarget)
		}
	}
	return line
}

// formatListingLine renders a line for the CLI listing:
//
//	label:
//	SSSS:OOOO  B8 34 12              MOV AX, 1234
func formatListingLine(line DisassembledLine, showBytes bool) string {
	var sb strings.Builder
	if line.Label != "" {
		sb.WriteString(line.Label)
		sb.WriteString(":\n")
	}
	sb.WriteString(line.Address.String())
	sb.WriteString("  ")
	if showBytes {
		fmt.Fprintf(&sb, "%-*s", listingHexWidth, line.HexBytes)
		sb.WriteString("  ")
	}
	sb.WriteString(line.Mnemonic)
	if line.TargetLabel != "" {
		sb.WriteString("  ; ")
		sb.WriteString(line.TargetLabel)
	}
	return sb.String()
}

// Room for six bytes; prefixed instructions run past it.
const listingHexWidth = 17
