// symbols.go - YAML symbol tables for listing labels

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

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// SymbolTable maps addresses to labels. Lookups go by linear address, so
// 0000:7C00 and 07C0:0000 find the same label. A nil table has no symbols.
//
// The file format is a flat YAML mapping:
//
//	"0000:7C00": boot
//	"F000:E05B": reset
//	L00400: bios_data
type SymbolTable struct {
	byLinear map[uint32]string
}

func NewSymbolTable() *SymbolTable {
	return &SymbolTable{byLinear: make(map[uint32]string)}
}

func (s *SymbolTable) Add(addr FarAddr, name string) {
	s.byLinear[addr.Linear()] = name
}

func (s *SymbolTable) Lookup(addr FarAddr) (string, bool) {
	if s == nil {
		return "", false
	}
	name, ok := s.byLinear[addr.Linear()]
	return name, ok
}

func (s *SymbolTable) Len() int {
	if s == nil {
		return 0
	}
	return len(s.byLinear)
}

// ParseSymbols decodes a YAML symbol file.
func ParseSymbols(data []byte) (*SymbolTable, error) {
	var raw map[string]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing symbols: %w", err)
	}

	table := NewSymbolTable()
	for key, name := range raw {
		addr, err := ParseFarAddress(key)
		if err != nil {
			return nil, fmt.Errorf("symbol %q: %w", name, err)
		}
		if name == "" {
			return nil, fmt.Errorf("symbol at %s: empty name", addr)
		}
		table.Add(addr, name)
	}
	return table, nil
}

// LoadSymbols reads and parses a symbol file from fs.
func LoadSymbols(fs afero.Fs, path string) (*SymbolTable, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, err
	}
	table, err := ParseSymbols(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return table, nil
}
