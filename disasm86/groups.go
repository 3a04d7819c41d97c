// groups.go - Opcode-extension groups selected by the ModRM reg field

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

// second describes the operand that follows the r/m operand of a group
// sub-operation.
type second uint8

const (
	secondNone   second = iota
	secondImm           // immediate of the group's width
	secondSImm8         // 8-bit immediate sign-extended to a word
	secondOne           // shift or rotate by 1
	secondCL            // shift or rotate by CL
)

// groupOp is one of the eight sub-operations. An empty mnemonic marks a slot
// with no decoding.
type groupOp struct {
	mnemonic string
	operand  second
}

type opGroup struct {
	name  string
	width Width
	ops   [8]groupOp
}

func aluGroup(w Width, operand second) opGroup {
	g := opGroup{name: "GRP1", width: w}
	for i, mn := range aluMnemonics {
		g.ops[i] = groupOp{mn, operand}
	}
	return g
}

func shiftGroup(w Width, operand second) opGroup {
	g := opGroup{name: "GRP2", width: w}
	for i, mn := range [8]string{"ROL", "ROR", "RCL", "RCR", "SHL", "SHR", "", "SAR"} {
		if mn != "" {
			g.ops[i] = groupOp{mn, operand}
		}
	}
	return g
}

func unaryGroup(w Width) opGroup {
	return opGroup{name: "GRP3", width: w, ops: [8]groupOp{
		{"TEST", secondImm},
		{},
		{"NOT", secondNone},
		{"NEG", secondNone},
		{"MUL", secondNone},
		{"IMUL", secondNone},
		{"DIV", secondNone},
		{"IDIV", secondNone},
	}}
}

var (
	grp1Byte    = aluGroup(Byte, secondImm)
	grp1Word    = aluGroup(Word, secondImm)
	grp1SignExt = aluGroup(Word, secondSImm8)

	grpShiftByte1  = shiftGroup(Byte, secondOne)
	grpShiftWord1  = shiftGroup(Word, secondOne)
	grpShiftByteCL = shiftGroup(Byte, secondCL)
	grpShiftWordCL = shiftGroup(Word, secondCL)

	grpUnaryByte = unaryGroup(Byte)
	grpUnaryWord = unaryGroup(Word)

	grpIncDecByte = opGroup{name: "GRP4", width: Byte, ops: [8]groupOp{
		{"INC", secondNone},
		{"DEC", secondNone},
	}}
	grpMisc = opGroup{name: "GRP5", width: Word, ops: [8]groupOp{
		{"INC", secondNone},
		{"DEC", secondNone},
		{"CALL", secondNone},
		{"CALLF", secondNone},
		{"JMP", secondNone},
		{"JMPF", secondNone},
		{"PUSH", secondNone},
	}}
	grpPop = opGroup{name: "POP", width: Word, ops: [8]groupOp{
		{"POP", secondNone},
	}}
	grpMovByte = opGroup{name: "MOV", width: Byte, ops: [8]groupOp{
		{"MOV", secondImm},
	}}
	grpMovWord = opGroup{name: "MOV", width: Word, ops: [8]groupOp{
		{"MOV", secondImm},
	}}
)

// decode resolves the sub-operation from the reg field of buf[1]. Slots
// without a mapping fall back to a one-byte DB of the opcode.
func (g *opGroup) decode(buf []byte) Instruction {
	sub := g.ops[modRMReg(buf[1])]
	if sub.mnemonic == "" {
		return dataByte(buf[0])
	}

	var inst Instruction
	rm, n := ResolveModRM(g.width, buf[1], buf[2], buf[3])
	length := 1 + n
	switch sub.operand {
	case secondImm:
		if g.width == Word {
			inst.set(sub.mnemonic, length+2, rm, Imm16(buf[length], buf[length+1]))
		} else {
			inst.set(sub.mnemonic, length+1, rm, Imm8(buf[length]))
		}
	case secondSImm8:
		inst.set(sub.mnemonic, length+1, rm, SignedDisp8(buf[length]))
	case secondOne:
		inst.set(sub.mnemonic, length, rm, "1")
	case secondCL:
		inst.set(sub.mnemonic, length, rm, "CL")
	default:
		inst.set(sub.mnemonic, length, rm)
	}
	return inst
}
