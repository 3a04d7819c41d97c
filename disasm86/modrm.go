// modrm.go - Effective address resolution for the 8086 ModRM byte

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

// addrMode is one row of an addressing-mode table. extra counts the bytes the
// form occupies including the ModRM byte itself. format references no
// values (extra 1), a signed 8-bit displacement (extra 2) or a 16-bit word
// (extra 3).
type addrMode struct {
	extra  int
	format string
}

// 8086 base/index combinations selected by the rm field.
var eaBases = [8]string{"BX + SI", "BX + DI", "BP + SI", "BP + DI", "SI", "DI", "BP", "BX"}

// Index 6 (mod=00 rm=110) has no base register: it is a bare 16-bit address.
const directAddressIndex = 6

// addrModes holds the byte-operand table at [Byte] and the word-operand
// table at [Word]. Built once in init and read-only afterwards.
var addrModes [2][32]addrMode

func init() {
	for _, w := range []Width{Byte, Word} {
		addrModes[w] = buildAddrModes(w)
	}
}

func buildAddrModes(w Width) [32]addrMode {
	var t [32]addrMode
	kw := sizeKeyword(w)
	for rm := range 8 {
		base := eaBases[rm]
		t[rm] = addrMode{extra: 1, format: fmt.Sprintf("%s [%s]", kw, base)}
		t[8+rm] = addrMode{extra: 2, format: fmt.Sprintf("%s [%s %%s]", kw, base)}
		t[16+rm] = addrMode{extra: 3, format: fmt.Sprintf("%s [%s + %%04X]", kw, base)}
		t[24+rm] = addrMode{extra: 1, format: RegName(w, byte(rm))}
	}
	t[directAddressIndex] = addrMode{extra: 3, format: kw + " [%04X]"}
	return t
}

// modRMIndex folds mod and rm into a 5-bit table index: rm in bits 0-2,
// mod in bits 3-4.
func modRMIndex(modrm byte) int {
	return int(modrm&7 | (modrm&0xC0)>>3)
}

// modRMReg extracts the reg (or group selector) field.
func modRMReg(modrm byte) byte {
	return (modrm >> 3) & 7
}

// render formats the entry using the bytes that follow the ModRM byte.
// Each case stands alone; the no-displacement forms are never rewritten by
// the displacement paths.
func (m addrMode) render(b1, b2 byte) string {
	switch m.extra {
	case 2:
		return fmt.Sprintf(m.format, dispTerm(b1))
	case 3:
		return fmt.Sprintf(m.format, word(b1, b2))
	default:
		return m.format
	}
}

// dispTerm renders a signed 8-bit displacement as a spaced term of the
// effective address sum: "+ 05" or "- 02". The pce listing prints the byte
// unsigned ("[BP + FE]"); here it carries the sign the CPU applies, so
// listings diverge from pce for displacements 80-FF.
func dispTerm(b byte) string {
	d := SignedDisp8(b)
	return d[:1] + " " + d[1:]
}

// ResolveModRM returns the text of the r/m operand selected by modrm and the
// number of bytes the addressing form occupies, ModRM byte included. b1 and
// b2 are the two bytes following the ModRM byte; they are only read when
// the form has a displacement or direct address.
func ResolveModRM(w Width, modrm, b1, b2 byte) (string, int) {
	m := addrModes[w&1][modRMIndex(modrm)]
	return m.render(b1, b2), m.extra
}
