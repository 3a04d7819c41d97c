// main_test.go - Command line tests against an in-memory filesystem

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
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// testProgram at 0000:0100:
//
//	0100 B8 34 12  MOV AX, 1234
//	0103 74 02     JZ 0107
//	0105 EB F9     JMPS 0100
//	0107 CD 20     INT 20
var testProgram = []byte{0xB8, 0x34, 0x12, 0x74, 0x02, 0xEB, 0xF9, 0xCD, 0x20}

const testSymbols = `"0000:0100": start
"0000:0107": exit
`

type testConsole struct {
	stdout *bytes.Buffer
	stderr *bytes.Buffer
}

func runCLI(t *testing.T, fs afero.Fs, stdin string, args ...string) (int, testConsole) {
	t.Helper()
	tc := testConsole{stdout: new(bytes.Buffer), stderr: new(bytes.Buffer)}
	con := console{
		stdin:  strings.NewReader(stdin),
		stdout: tc.stdout,
		stderr: tc.stderr,
	}
	c := newRootCommand(fs, con, newLogger(tc.stderr))
	return c.execute(context.Background(), args), tc
}

func newTestFs(t *testing.T) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "prog.com", testProgram, 0o644))
	require.NoError(t, afero.WriteFile(fs, "prog.yaml", []byte(testSymbols), 0o644))
	require.NoError(t, afero.WriteFile(fs, "empty.bin", nil, 0o644))
	return fs
}

// ---------------------------------------------------------------------------
// disasm
// ---------------------------------------------------------------------------

func TestDisasmWholeImage(t *testing.T) {
	code, out := runCLI(t, newTestFs(t), "", "disasm", "prog.com", "--bytes=false")
	require.Equal(t, 0, code, out.stderr.String())
	assert.Equal(t, strings.Join([]string{
		"0000:0100  MOV AX, 1234",
		"0000:0103  JZ 0107",
		"0000:0105  JMPS 0100",
		"0000:0107  INT 20",
		"",
	}, "\n"), out.stdout.String())
}

func TestDisasmWithSymbols(t *testing.T) {
	code, out := runCLI(t, newTestFs(t), "", "disasm", "prog.com", "--symbols", "prog.yaml", "-b=false")
	require.Equal(t, 0, code, out.stderr.String())
	assert.Equal(t, strings.Join([]string{
		"start:",
		"0000:0100  MOV AX, 1234",
		"0000:0103  JZ 0107  ; exit",
		"0000:0105  JMPS 0100  ; start",
		"exit:",
		"0000:0107  INT 20",
		"",
	}, "\n"), out.stdout.String())
}

func TestDisasmCountAndEntry(t *testing.T) {
	code, out := runCLI(t, newTestFs(t), "", "disasm", "prog.com", "--entry", "0105", "-n", "2", "--bytes=false")
	require.Equal(t, 0, code, out.stderr.String())
	assert.Equal(t, "0000:0105  JMPS 0100\n0000:0107  INT 20\n", out.stdout.String())
}

func TestDisasmShowsBytesByDefault(t *testing.T) {
	code, out := runCLI(t, newTestFs(t), "", "disasm", "prog.com", "-n", "1")
	require.Equal(t, 0, code, out.stderr.String())
	assert.Equal(t, "0000:0100  B8 34 12"+strings.Repeat(" ", 11)+"MOV AX, 1234\n", out.stdout.String())
}

func TestDisasmLoadAddress(t *testing.T) {
	code, out := runCLI(t, newTestFs(t), "", "disasm", "prog.com", "--load", "07C0:0000", "-n", "2", "--bytes=false")
	require.Equal(t, 0, code, out.stderr.String())
	// The JZ target is relative to the new offset.
	assert.Equal(t, "07C0:0000  MOV AX, 1234\n07C0:0003  JZ 0007\n", out.stdout.String())
}

func TestDisasmMultipleFiles(t *testing.T) {
	fs := newTestFs(t)
	require.NoError(t, afero.WriteFile(fs, "nop.bin", []byte{0x90}, 0o644))

	code, out := runCLI(t, fs, "", "disasm", "nop.bin", "prog.com", "-n", "1", "--bytes=false")
	require.Equal(t, 0, code, out.stderr.String())
	assert.Equal(t, "; nop.bin\n0000:0100  NOP\n\n; prog.com\n0000:0100  MOV AX, 1234\n", out.stdout.String())
}

func TestDisasmToFile(t *testing.T) {
	fs := newTestFs(t)
	code, out := runCLI(t, fs, "", "disasm", "prog.com", "-o", "prog.lst", "-n", "1", "--bytes=false")
	require.Equal(t, 0, code, out.stderr.String())
	assert.Empty(t, out.stdout.String())

	data, err := afero.ReadFile(fs, "prog.lst")
	require.NoError(t, err)
	assert.Equal(t, "0000:0100  MOV AX, 1234\n", string(data))
}

func TestDisasmErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"missing file", []string{"disasm", "missing.bin"}, "missing.bin"},
		{"no files", []string{"disasm"}, "requires at least 1 arg"},
		{"empty image", []string{"disasm", "empty.bin"}, "empty.bin: empty image"},
		{"entry outside image", []string{"disasm", "prog.com", "--entry", "0200"}, "outside image"},
		{"bad load address", []string{"disasm", "prog.com", "--load", "12345"}, "load address"},
		{"image past top of memory", []string{"disasm", "prog.com", "--load", "F000:FFFC"}, ErrImageTooLarge.Error()},
		{"bad symbols", []string{"disasm", "prog.com", "--symbols", "prog.com"}, "parsing symbols"},
		{"bad log level", []string{"disasm", "prog.com", "--log-level", "loud"}, "loud"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, out := runCLI(t, newTestFs(t), "", tt.args...)
			assert.Equal(t, 1, code)
			assert.Contains(t, out.stderr.String(), tt.want)
		})
	}
}

func TestConfigFileFlag(t *testing.T) {
	fs := newTestFs(t)
	require.NoError(t, afero.WriteFile(fs, "ie86dis.json",
		[]byte(`{"showBytes": false, "count": 1, "loadAddr": "1000:0000"}`), 0o644))

	code, out := runCLI(t, fs, "", "--config", "ie86dis.json", "disasm", "prog.com")
	require.Equal(t, 0, code, out.stderr.String())
	assert.Equal(t, "1000:0000  MOV AX, 1234\n", out.stdout.String())
}

// ---------------------------------------------------------------------------
// monitor and version
// ---------------------------------------------------------------------------

func TestMonitorCommandReadsStdin(t *testing.T) {
	code, out := runCLI(t, newTestFs(t), "r ds 2000\nr\nx\nr\n", "monitor", "prog.com", "--symbols", "prog.yaml")
	require.Equal(t, 0, code, out.stderr.String())

	text := out.stdout.String()
	assert.Contains(t, text, "MACHINE MONITOR - Type ? for help")
	assert.Contains(t, text, "start:")
	assert.Contains(t, text, "MOV AX, 1234")
	assert.Contains(t, text, "DS = $2000")
	assert.Contains(t, text, "CS=0000  DS=2000  ES=0000  SS=0000  IP=0100")
	assert.NotContains(t, text, "\x1b[", "piped output is not colored")
	// Input after x is not executed.
	assert.Equal(t, 1, strings.Count(text, "DS=2000"))
}

func TestMonitorWithoutImage(t *testing.T) {
	code, out := runCLI(t, afero.NewMemMapFs(), "", "monitor", "--load", "F000:E05B")
	require.Equal(t, 0, code, out.stderr.String())
	assert.Contains(t, out.stdout.String(), "CS=F000  DS=F000  ES=F000  SS=0000  IP=E05B")
}

func TestVersionCommand(t *testing.T) {
	code, out := runCLI(t, afero.NewMemMapFs(), "", "version")
	require.Equal(t, 0, code, out.stderr.String())
	assert.Contains(t, out.stdout.String(), "ie86dis v"+version)
	assert.Contains(t, out.stdout.String(), "GPLv3")
}

func TestJSONLogFormat(t *testing.T) {
	code, out := runCLI(t, afero.NewMemMapFs(), "", "--log-format", "json", "disasm", "missing.bin")
	assert.Equal(t, 1, code)
	assert.Contains(t, out.stderr.String(), `"level":"error"`)
}
