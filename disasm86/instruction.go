// instruction.go - Decoded instruction record

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

package disasm86

import "strings"

// Instruction is the result of decoding one 8086 instruction. It is a plain
// value: every Decode call builds a new one and nothing holds on to it.
type Instruction struct {
	Address      uint16 // IP of the first byte, prefixes included
	Mnemonic     string // uppercase, prefix text prepended ("ES: MOV")
	Operands     [2]string
	OperandCount int
	Length       int // bytes consumed, prefixes included
	Prefixes     int // prefix bytes counted in Length
	Raw          [WindowSize]byte
}

// Bytes returns the bytes the instruction occupies.
func (inst Instruction) Bytes() []byte {
	return inst.Raw[:inst.Length]
}

// Operand returns operand i, or "" when the instruction has fewer operands.
func (inst Instruction) Operand(i int) string {
	if i < 0 || i >= inst.OperandCount {
		return ""
	}
	return inst.Operands[i]
}

// Opcode returns the first byte after any prefixes.
func (inst Instruction) Opcode() byte {
	return inst.Raw[inst.Prefixes]
}

// String renders the instruction as "MNEMONIC OP1, OP2".
func (inst Instruction) String() string {
	if inst.OperandCount == 0 {
		return inst.Mnemonic
	}
	var sb strings.Builder
	sb.WriteString(inst.Mnemonic)
	sb.WriteByte(' ')
	for i := range inst.OperandCount {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(inst.Operands[i])
	}
	return sb.String()
}

func (inst *Instruction) set(mnemonic string, length int, operands ...string) {
	inst.Mnemonic = mnemonic
	inst.Length = length
	inst.OperandCount = copy(inst.Operands[:], operands)
}
