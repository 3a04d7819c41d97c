// branch.go - Control-transfer classification of decoded instructions

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

// BranchKind classifies how an instruction can change CS:IP.
type BranchKind uint8

const (
	BranchNone        BranchKind = iota
	BranchConditional            // Jcc, JCXZ
	BranchLoop                   // LOOP, LOOPZ, LOOPNZ
	BranchJump                   // JMP short, JMPN
	BranchCall                   // near relative CALL
	BranchFar                    // CALLF/JMPF with an immediate pointer
	BranchIndirect               // CALL/JMP through r/m
	BranchReturn                 // RET, RETF, IRET
	BranchInterrupt              // INT, INTO
)

var branchKindNames = [...]string{
	"none", "conditional", "loop", "jump", "call", "far", "indirect", "return", "interrupt",
}

func (k BranchKind) String() string {
	if int(k) < len(branchKindNames) {
		return branchKindNames[k]
	}
	return "unknown"
}

// Branch describes the control transfer of one instruction. Target is only
// meaningful when HasTarget is set; Segment only for BranchFar.
type Branch struct {
	Kind      BranchKind
	Target    uint16
	Segment   uint16
	HasTarget bool
}

// IsBranch reports whether the instruction can transfer control.
func (b Branch) IsBranch() bool {
	return b.Kind != BranchNone
}

// Branch classifies the instruction from its own raw bytes.
func (inst Instruction) Branch() Branch {
	if inst.Length <= inst.Prefixes {
		return Branch{}
	}
	raw := inst.Raw[inst.Prefixes:inst.Length]
	ip := inst.Address + uint16(inst.Prefixes)
	op := raw[0]

	if len(raw) == 1 {
		switch op {
		case 0xC3, 0xCB, 0xCF:
			return Branch{Kind: BranchReturn}
		case 0xCC, 0xCE:
			return Branch{Kind: BranchInterrupt}
		}
		// DB fallbacks and lone prefixes land here too.
		return Branch{}
	}

	rel8 := func(kind BranchKind) Branch {
		return Branch{Kind: kind, Target: RelativeTarget(ip, 2, int16(int8(raw[1]))), HasTarget: true}
	}

	switch {
	case op >= 0x70 && op <= 0x7F, op == 0xE3:
		return rel8(BranchConditional)
	case op >= 0xE0 && op <= 0xE2:
		return rel8(BranchLoop)
	case op == 0xEB:
		return rel8(BranchJump)
	case op == 0xE8:
		return Branch{Kind: BranchCall, Target: RelativeTarget(ip, 3, int16(word(raw[1], raw[2]))), HasTarget: true}
	case op == 0xE9:
		return Branch{Kind: BranchJump, Target: RelativeTarget(ip, 3, int16(word(raw[1], raw[2]))), HasTarget: true}
	case op == 0x9A || op == 0xEA:
		return Branch{Kind: BranchFar, Target: word(raw[1], raw[2]), Segment: word(raw[3], raw[4]), HasTarget: true}
	case op == 0xFF:
		if sub := modRMReg(raw[1]); sub >= 2 && sub <= 5 {
			return Branch{Kind: BranchIndirect}
		}
	case op == 0xC2 || op == 0xCA:
		return Branch{Kind: BranchReturn}
	case op == 0xCD:
		return Branch{Kind: BranchInterrupt}
	}
	return Branch{}
}
