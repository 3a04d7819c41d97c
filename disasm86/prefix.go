// prefix.go - Segment override and repeat prefix handling

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

func isPrefix(b byte) bool {
	return opcodeTable[b].shape == shapePrefix
}

// decodePrefixed consumes a run of prefix bytes, decodes the instruction that
// follows, and splices the prefix text onto its mnemonic. The run is capped
// at MaxPrefixes; when the cap is reached and another prefix follows, the
// first prefix is returned on its own so a caller walking a byte stream
// still makes progress.
func decodePrefixed(window []byte, ip uint16) Instruction {
	n := 0
	for isPrefix(window[n]) {
		if n == MaxPrefixes {
			return standalonePrefix(window, ip)
		}
		n++
	}

	inst := decodeOpcode(window[n:], ip+uint16(n))
	if n > 0 {
		var sb strings.Builder
		for _, b := range window[:n] {
			sb.WriteString(opcodeTable[b].mnemonic)
			sb.WriteByte(' ')
		}
		sb.WriteString(inst.Mnemonic)
		inst.Mnemonic = sb.String()
		inst.Length += n
		inst.Prefixes = n
	}
	inst.Address = ip
	copy(inst.Raw[:], window[:inst.Length])
	return inst
}

func standalonePrefix(window []byte, ip uint16) Instruction {
	var inst Instruction
	inst.set(opcodeTable[window[0]].mnemonic, 1)
	inst.Address = ip
	inst.Raw[0] = window[0]
	return inst
}
