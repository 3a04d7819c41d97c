// opcode_table.go - 256-entry opcode descriptor table for the 8086

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

// shape says how the bytes after the opcode are laid out and which operand
// text they produce.
type shape uint8

const (
	shapeData      shape = iota // DB xx, one byte
	shapeFixed                  // mnemonic plus fixed operand text
	shapeRegLow                 // register taken from opcode bits 0-2
	shapeRegImm                 // register from opcode bits 0-2, immediate
	shapeModRM                  // r/m and reg operands
	shapeSegModRM               // r/m and segment register
	shapeAccImm                 // AL/AX and immediate of the same width
	shapePort                   // IN/OUT with an 8-bit port number
	shapeImm8                   // one 8-bit immediate
	shapeImm16                  // one 16-bit immediate
	shapeDirect                 // accumulator and direct [addr]
	shapeRel8                   // short relative target
	shapeRel16                  // near relative target
	shapeFar                    // segment:offset immediate
	shapeGroup                  // sub-operation chosen by the reg field
	shapeEsc                    // coprocessor escape
	shapePrefix                 // segment override or repeat prefix
)

// opcodeEntry describes how to decode one leading byte.
type opcodeEntry struct {
	shape    shape
	mnemonic string
	width    Width
	regFirst bool // reg/accumulator/segment operand comes first
	fixed    []string
	group    *opGroup
}

var opcodeTable [256]opcodeEntry

var aluMnemonics = [8]string{"ADD", "OR", "ADC", "SBB", "AND", "SUB", "XOR", "CMP"}

var condMnemonics = [16]string{
	"JO", "JNO", "JC", "JNC", "JZ", "JNZ", "JBE", "JA",
	"JS", "JNS", "JPE", "JPO", "JL", "JGE", "JLE", "JG",
}

func init() {
	buildOpcodeTable(&opcodeTable)
}

// Builders. Each fills one or more table slots with a descriptor.

func fixed(t *[256]opcodeEntry, op byte, mnemonic string, operands ...string) {
	t[op] = opcodeEntry{shape: shapeFixed, mnemonic: mnemonic, fixed: operands}
}

func regLow(t *[256]opcodeEntry, first byte, s shape, mnemonic string, w Width, regFirst bool) {
	for i := range byte(8) {
		t[first+i] = opcodeEntry{shape: s, mnemonic: mnemonic, width: w, regFirst: regFirst}
	}
}

func withOperands(t *[256]opcodeEntry, op byte, s shape, mnemonic string, w Width, regFirst bool) {
	t[op] = opcodeEntry{shape: s, mnemonic: mnemonic, width: w, regFirst: regFirst}
}

func group(t *[256]opcodeEntry, op byte, g *opGroup) {
	t[op] = opcodeEntry{shape: shapeGroup, mnemonic: g.name, width: g.width, group: g}
}

func buildOpcodeTable(t *[256]opcodeEntry) {
	for i := range t {
		t[i] = opcodeEntry{shape: shapeData, mnemonic: "DB"}
	}

	// 00-3F: the eight ALU operations share a six-opcode layout.
	for i, mn := range aluMnemonics {
		base := byte(i << 3)
		withOperands(t, base+0, shapeModRM, mn, Byte, false)
		withOperands(t, base+1, shapeModRM, mn, Word, false)
		withOperands(t, base+2, shapeModRM, mn, Byte, true)
		withOperands(t, base+3, shapeModRM, mn, Word, true)
		withOperands(t, base+4, shapeAccImm, mn, Byte, true)
		withOperands(t, base+5, shapeAccImm, mn, Word, true)
	}
	for i := range byte(4) {
		seg := SegReg(i)
		fixed(t, i<<3|0x06, "PUSH", seg)
		fixed(t, i<<3|0x07, "POP", seg)
	}
	for i, seg := range []string{"ES:", "CS:", "SS:", "DS:"} {
		t[0x26+byte(i)<<3] = opcodeEntry{shape: shapePrefix, mnemonic: seg}
	}
	fixed(t, 0x27, "DAA")
	fixed(t, 0x2F, "DAS")
	fixed(t, 0x37, "AAA")
	fixed(t, 0x3F, "AAS")

	// 40-5F: word register in the low bits.
	regLow(t, 0x40, shapeRegLow, "INC", Word, false)
	regLow(t, 0x48, shapeRegLow, "DEC", Word, false)
	regLow(t, 0x50, shapeRegLow, "PUSH", Word, false)
	regLow(t, 0x58, shapeRegLow, "POP", Word, false)

	// 70-7F: conditional short jumps.
	for i, mn := range condMnemonics {
		withOperands(t, 0x70+byte(i), shapeRel8, mn, Byte, false)
	}

	group(t, 0x80, &grp1Byte)
	group(t, 0x81, &grp1Word)
	group(t, 0x82, &grp1Byte)
	group(t, 0x83, &grp1SignExt)
	withOperands(t, 0x84, shapeModRM, "TEST", Byte, false)
	withOperands(t, 0x85, shapeModRM, "TEST", Word, false)
	withOperands(t, 0x86, shapeModRM, "XCHG", Byte, false)
	withOperands(t, 0x87, shapeModRM, "XCHG", Word, false)
	withOperands(t, 0x88, shapeModRM, "MOV", Byte, false)
	withOperands(t, 0x89, shapeModRM, "MOV", Word, false)
	withOperands(t, 0x8A, shapeModRM, "MOV", Byte, true)
	withOperands(t, 0x8B, shapeModRM, "MOV", Word, true)
	withOperands(t, 0x8C, shapeSegModRM, "MOV", Word, false)
	withOperands(t, 0x8D, shapeModRM, "LEA", Word, true)
	withOperands(t, 0x8E, shapeSegModRM, "MOV", Word, true)
	group(t, 0x8F, &grpPop)

	regLow(t, 0x90, shapeRegLow, "XCHG", Word, true)
	fixed(t, 0x90, "NOP")
	fixed(t, 0x98, "CBW")
	fixed(t, 0x99, "CWD")
	withOperands(t, 0x9A, shapeFar, "CALL", Word, false)
	fixed(t, 0x9B, "WAIT")
	fixed(t, 0x9C, "PUSHF")
	fixed(t, 0x9D, "POPF")
	fixed(t, 0x9E, "SAHF")
	fixed(t, 0x9F, "LAHF")

	withOperands(t, 0xA0, shapeDirect, "MOV", Byte, true)
	withOperands(t, 0xA1, shapeDirect, "MOV", Word, true)
	withOperands(t, 0xA2, shapeDirect, "MOV", Byte, false)
	withOperands(t, 0xA3, shapeDirect, "MOV", Word, false)
	fixed(t, 0xA4, "MOVSB")
	fixed(t, 0xA5, "MOVSW")
	fixed(t, 0xA6, "CMPSB")
	fixed(t, 0xA7, "CMPSW")
	withOperands(t, 0xA8, shapeAccImm, "TEST", Byte, true)
	withOperands(t, 0xA9, shapeAccImm, "TEST", Word, true)
	fixed(t, 0xAA, "STOSB")
	fixed(t, 0xAB, "STOSW")
	fixed(t, 0xAC, "LODSB")
	fixed(t, 0xAD, "LODSW")
	fixed(t, 0xAE, "SCASB")
	fixed(t, 0xAF, "SCASW")

	regLow(t, 0xB0, shapeRegImm, "MOV", Byte, true)
	regLow(t, 0xB8, shapeRegImm, "MOV", Word, true)

	withOperands(t, 0xC2, shapeImm16, "RETN", Word, false)
	fixed(t, 0xC3, "RETN")
	withOperands(t, 0xC4, shapeModRM, "LES", Word, true)
	withOperands(t, 0xC5, shapeModRM, "LDS", Word, true)
	group(t, 0xC6, &grpMovByte)
	group(t, 0xC7, &grpMovWord)
	withOperands(t, 0xCA, shapeImm16, "RETF", Word, false)
	fixed(t, 0xCB, "RETF")
	fixed(t, 0xCC, "INT", "03")
	withOperands(t, 0xCD, shapeImm8, "INT", Byte, false)
	fixed(t, 0xCE, "INTO")
	fixed(t, 0xCF, "IRET")

	group(t, 0xD0, &grpShiftByte1)
	group(t, 0xD1, &grpShiftWord1)
	group(t, 0xD2, &grpShiftByteCL)
	group(t, 0xD3, &grpShiftWordCL)
	withOperands(t, 0xD4, shapeImm8, "AAM", Byte, false)
	withOperands(t, 0xD5, shapeImm8, "AAD", Byte, false)
	fixed(t, 0xD7, "XLAT")
	regLow(t, 0xD8, shapeEsc, "ESC", Word, false)

	withOperands(t, 0xE0, shapeRel8, "LOOPNZ", Byte, false)
	withOperands(t, 0xE1, shapeRel8, "LOOPZ", Byte, false)
	withOperands(t, 0xE2, shapeRel8, "LOOP", Byte, false)
	withOperands(t, 0xE3, shapeRel8, "JCXZ", Byte, false)
	withOperands(t, 0xE4, shapePort, "IN", Byte, true)
	withOperands(t, 0xE5, shapePort, "IN", Word, true)
	withOperands(t, 0xE6, shapePort, "OUT", Byte, false)
	withOperands(t, 0xE7, shapePort, "OUT", Word, false)
	withOperands(t, 0xE8, shapeRel16, "CALL", Word, false)
	withOperands(t, 0xE9, shapeRel16, "JMPN", Word, false)
	withOperands(t, 0xEA, shapeFar, "JMPF", Word, false)
	withOperands(t, 0xEB, shapeRel8, "JMPS", Byte, false)
	fixed(t, 0xEC, "IN", "AL", "DX")
	fixed(t, 0xED, "IN", "AX", "DX")
	fixed(t, 0xEE, "OUT", "DX", "AL")
	fixed(t, 0xEF, "OUT", "DX", "AX")

	fixed(t, 0xF0, "LOCK")
	t[0xF2] = opcodeEntry{shape: shapePrefix, mnemonic: "REPNE"}
	t[0xF3] = opcodeEntry{shape: shapePrefix, mnemonic: "REP"}
	fixed(t, 0xF4, "HLT")
	fixed(t, 0xF5, "CMC")
	group(t, 0xF6, &grpUnaryByte)
	group(t, 0xF7, &grpUnaryWord)
	fixed(t, 0xF8, "CLC")
	fixed(t, 0xF9, "STC")
	fixed(t, 0xFA, "CLI")
	fixed(t, 0xFB, "STI")
	fixed(t, 0xFC, "CLD")
	fixed(t, 0xFD, "STD")
	group(t, 0xFE, &grpIncDecByte)
	group(t, 0xFF, &grpMisc)
}

// decodeOpcode decodes a single prefix-free instruction. buf starts at the
// opcode and holds at least MaxOpcodeLength bytes; ip is the opcode's
// address. Address and Raw are filled in by the caller.
func decodeOpcode(buf []byte, ip uint16) Instruction {
	var inst Instruction
	op := buf[0]
	e := &opcodeTable[op]

	switch e.shape {
	case shapeFixed:
		inst.set(e.mnemonic, 1, e.fixed...)

	case shapeRegLow:
		reg := RegName(e.width, op)
		if e.regFirst {
			inst.set(e.mnemonic, 1, accumulator(e.width), reg)
		} else {
			inst.set(e.mnemonic, 1, reg)
		}

	case shapeRegImm:
		if e.width == Word {
			inst.set(e.mnemonic, 3, Reg16(op), Imm16(buf[1], buf[2]))
		} else {
			inst.set(e.mnemonic, 2, Reg8(op), Imm8(buf[1]))
		}

	case shapeModRM:
		rm, n := ResolveModRM(e.width, buf[1], buf[2], buf[3])
		reg := RegName(e.width, modRMReg(buf[1]))
		if e.regFirst {
			inst.set(e.mnemonic, 1+n, reg, rm)
		} else {
			inst.set(e.mnemonic, 1+n, rm, reg)
		}

	case shapeSegModRM:
		rm, n := ResolveModRM(Word, buf[1], buf[2], buf[3])
		seg := SegReg(modRMReg(buf[1]))
		if e.regFirst {
			inst.set(e.mnemonic, 1+n, seg, rm)
		} else {
			inst.set(e.mnemonic, 1+n, rm, seg)
		}

	case shapeAccImm:
		if e.width == Word {
			inst.set(e.mnemonic, 3, "AX", Imm16(buf[1], buf[2]))
		} else {
			inst.set(e.mnemonic, 2, "AL", Imm8(buf[1]))
		}

	case shapePort:
		if e.regFirst {
			inst.set(e.mnemonic, 2, accumulator(e.width), Imm8(buf[1]))
		} else {
			inst.set(e.mnemonic, 2, Imm8(buf[1]), accumulator(e.width))
		}

	case shapeImm8:
		inst.set(e.mnemonic, 2, Imm8(buf[1]))

	case shapeImm16:
		inst.set(e.mnemonic, 3, Imm16(buf[1], buf[2]))

	case shapeDirect:
		addr := Absolute(buf[1], buf[2])
		if e.regFirst {
			inst.set(e.mnemonic, 3, accumulator(e.width), addr)
		} else {
			inst.set(e.mnemonic, 3, addr, accumulator(e.width))
		}

	case shapeRel8:
		inst.set(e.mnemonic, 2, Target(ip, 2, int16(int8(buf[1]))))

	case shapeRel16:
		inst.set(e.mnemonic, 3, Target(ip, 3, int16(word(buf[1], buf[2]))))

	case shapeFar:
		inst.set(e.mnemonic, 5, FarPointer(buf[1], buf[2], buf[3], buf[4]))

	case shapeGroup:
		return e.group.decode(buf)

	case shapeEsc:
		code := (op&7)<<3 | modRMReg(buf[1])
		rm, n := ResolveModRM(Word, buf[1], buf[2], buf[3])
		inst.set(e.mnemonic, 1+n, Imm8(code), rm)

	default:
		// shapeData, and a prefix reached without the prefix loop.
		return dataByte(op)
	}
	return inst
}

// dataByte is the one-byte pseudo-instruction emitted for bytes that have no
// decoding.
func dataByte(b byte) Instruction {
	var inst Instruction
	inst.set("DB", 1, Imm8(b))
	return inst
}
