// operand.go - Operand text rendering for the 8086 disassembler

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

import "fmt"

// word assembles a little-endian byte pair.
func word(lo, hi byte) uint16 {
	return uint16(lo) | uint16(hi)<<8
}

// Imm8 renders an 8-bit immediate as two uppercase hex digits.
func Imm8(b byte) string {
	return fmt.Sprintf("%02X", b)
}

// Imm16 renders a little-endian 16-bit immediate as four hex digits.
func Imm16(lo, hi byte) string {
	return fmt.Sprintf("%04X", word(lo, hi))
}

// SignedDisp8 renders a signed 8-bit displacement with an explicit sign.
// Negative values print the magnitude of the two's complement, so 0xFB
// becomes "-05" and 0x80 becomes "-80".
func SignedDisp8(b byte) string {
	if b&0x80 != 0 {
		return fmt.Sprintf("-%02X", -b)
	}
	return fmt.Sprintf("+%02X", b)
}

// FarPointer renders a 32-bit far pointer stored offset first, as it is in
// the instruction stream, in segment:offset order.
func FarPointer(offLo, offHi, segLo, segHi byte) string {
	return fmt.Sprintf("%04X:%04X", word(segLo, segHi), word(offLo, offHi))
}

// Absolute renders a direct 16-bit memory address.
func Absolute(lo, hi byte) string {
	return fmt.Sprintf("[%04X]", word(lo, hi))
}

// RelativeTarget computes the destination of a relative transfer. The sum
// wraps at 64K the same way IP does within a code segment.
func RelativeTarget(ip uint16, length int, disp int16) uint16 {
	return ip + uint16(length) + uint16(disp)
}

// Target renders a relative transfer destination as four hex digits.
func Target(ip uint16, length int, disp int16) string {
	return fmt.Sprintf("%04X", RelativeTarget(ip, length, disp))
}
