// branch_test.go - Control-transfer classification tests

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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBranch(t *testing.T) {
	tests := []struct {
		name string
		code []byte
		ip   uint16
		want Branch
	}{
		{"jz", []byte{0x74, 0x05}, 0x0100, Branch{Kind: BranchConditional, Target: 0x0107, HasTarget: true}},
		{"jcxz", []byte{0xE3, 0xFE}, 0x0040, Branch{Kind: BranchConditional, Target: 0x0040, HasTarget: true}},
		{"loop", []byte{0xE2, 0xFC}, 0x0010, Branch{Kind: BranchLoop, Target: 0x000E, HasTarget: true}},
		{"jmp short", []byte{0xEB, 0x00}, 0x0010, Branch{Kind: BranchJump, Target: 0x0012, HasTarget: true}},
		{"jmpn", []byte{0xE9, 0xFD, 0xFF}, 0x0000, Branch{Kind: BranchJump, Target: 0x0000, HasTarget: true}},
		{"call", []byte{0xE8, 0x00, 0x01}, 0x0100, Branch{Kind: BranchCall, Target: 0x0203, HasTarget: true}},
		{"callf", []byte{0x9A, 0x5B, 0xE0, 0x00, 0xF0}, 0, Branch{Kind: BranchFar, Target: 0xE05B, Segment: 0xF000, HasTarget: true}},
		{"jmpf", []byte{0xEA, 0x00, 0x00, 0xFF, 0xFF}, 0, Branch{Kind: BranchFar, Target: 0x0000, Segment: 0xFFFF, HasTarget: true}},
		{"call indirect", []byte{0xFF, 0x16, 0x34, 0x12}, 0, Branch{Kind: BranchIndirect}},
		{"jmpf indirect", []byte{0xFF, 0x2F}, 0, Branch{Kind: BranchIndirect}},
		{"push memory", []byte{0xFF, 0x76, 0x04}, 0, Branch{}},
		{"ret", []byte{0xC3}, 0, Branch{Kind: BranchReturn}},
		{"retf imm", []byte{0xCA, 0x04, 0x00}, 0, Branch{Kind: BranchReturn}},
		{"iret", []byte{0xCF}, 0, Branch{Kind: BranchReturn}},
		{"int", []byte{0xCD, 0x21}, 0, Branch{Kind: BranchInterrupt}},
		{"int3", []byte{0xCC}, 0, Branch{Kind: BranchInterrupt}},
		{"mov", []byte{0xB8, 0x34, 0x12}, 0, Branch{}},
		{"undefined", []byte{0x60}, 0, Branch{}},
		{"ff slot 7", []byte{0xFF, 0xF8}, 0, Branch{}},
		{"prefixed jz", []byte{0x2E, 0x74, 0x05}, 0x0100, Branch{Kind: BranchConditional, Target: 0x0108, HasTarget: true}},
		{"prefix then undefined", []byte{0x26, 0x60}, 0, Branch{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Decode(window(tt.code...), tt.ip).Branch())
		})
	}
}

// A relative branch target always matches the rendered operand.
func TestBranchTargetMatchesOperand(t *testing.T) {
	for _, op := range []byte{0x70, 0x7C, 0xE0, 0xE1, 0xE2, 0xE3, 0xE8, 0xE9, 0xEB} {
		inst := Decode(window(op, 0x80, 0x80), 0x7FF0)
		b := inst.Branch()
		assert.True(t, b.HasTarget, "op %02X", op)
		assert.Equal(t, Imm16(byte(b.Target), byte(b.Target>>8)), inst.Operands[0], "op %02X", op)
	}
}

func TestBranchKindString(t *testing.T) {
	assert.Equal(t, "conditional", BranchConditional.String())
	assert.Equal(t, "interrupt", BranchInterrupt.String())
	assert.Equal(t, "unknown", BranchKind(200).String())
	assert.False(t, Branch{}.IsBranch())
	assert.True(t, Branch{Kind: BranchReturn}.IsBranch())
}
