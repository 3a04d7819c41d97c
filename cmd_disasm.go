// cmd_disasm.go - The disasm command: listings of raw binary images

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
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func (c *rootCommand) disasmCmd() *cobra.Command {
	var outPath string
	cmd := &cobra.Command{
		Use:   "disasm FILE...",
		Short: "Disassemble raw 8086 binary images",
		Long: `Disassemble raw 8086 binary images.

Each image is loaded at --load in its own 1 MiB address space and decoded
from --entry. Without --count the listing covers the whole image.`,
		Example: `  ie86dis disasm boot.bin --load 0000:7C00
  ie86dis disasm prog.com --symbols prog.yaml -n 20`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runDisasm(cmd.Context(), args, outPath)
		},
	}
	flags := cmd.Flags()
	flags.AddFlagSet(imageFlagSet())
	flags.Int64P("count", "n", 0, "instructions to decode, 0 for the whole image")
	flags.BoolP("bytes", "b", true, "show instruction bytes")
	flags.StringVarP(&outPath, "out", "o", "", "write the listing to a file instead of stdout")
	return cmd
}

var errEmptyImage = errors.New("empty image")

// imageLayout is where images are loaded and where decoding starts.
type imageLayout struct {
	load  FarAddr
	entry uint16
}

func (c *rootCommand) layout() imageLayout {
	// Both were checked by Config.Validate.
	load, _ := ParseFarAddress(c.conf.LoadAddr.String)
	l := imageLayout{load: load, entry: load.Offset()}
	if c.conf.Entry.String != "" {
		l.entry, _ = parseOffset(c.conf.Entry.String)
	}
	return l
}

func (c *rootCommand) loadSymbols() (*SymbolTable, error) {
	if c.conf.Symbols.String == "" {
		return nil, nil
	}
	symbols, err := LoadSymbols(c.fs, c.conf.Symbols.String)
	if err != nil {
		return nil, err
	}
	c.logger.WithFields(logrus.Fields{
		"file":    c.conf.Symbols.String,
		"symbols": symbols.Len(),
	}).Debug("loaded symbols")
	return symbols, nil
}

func (c *rootCommand) runDisasm(ctx context.Context, files []string, outPath string) error {
	symbols, err := c.loadSymbols()
	if err != nil {
		return err
	}
	layout := c.layout()
	count := int(c.conf.Count.Int64)

	listings := make([][]DisassembledLine, len(files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, name := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			lines, err := disassembleFile(c.fs, name, layout, count, symbols)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			c.logger.WithFields(logrus.Fields{
				"file":  name,
				"lines": len(lines),
			}).Debug("disassembled")
			listings[i] = lines
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if outPath == "" {
		return writeListings(c.console.stdout, files, listings, c.conf.ShowBytes.Bool)
	}
	f, err := c.fs.Create(outPath)
	if err != nil {
		return err
	}
	if err := writeListings(f, files, listings, c.conf.ShowBytes.Bool); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// disassembleFile loads one image into a fresh address space and lists it.
func disassembleFile(fs afero.Fs, name string, layout imageLayout, count int, symbols *SymbolTable) ([]DisassembledLine, error) {
	image, err := afero.ReadFile(fs, name)
	if err != nil {
		return nil, err
	}
	if len(image) == 0 {
		return nil, errEmptyImage
	}
	bus := NewSystemBus()
	if err := bus.Load(layout.load.Segment(), layout.load.Offset(), image); err != nil {
		return nil, err
	}

	start := MakeFar(layout.load.Segment(), layout.entry)
	if count > 0 {
		return disassemble8086(bus, start, count, symbols), nil
	}
	first := int(layout.load.Offset())
	end := first + len(image)
	if int(layout.entry) < first || int(layout.entry) >= end {
		return nil, fmt.Errorf("entry %04X outside image %04X-%04X", layout.entry, first, end)
	}
	return disassembleImage(bus, start, end-int(layout.entry), symbols), nil
}

// writeListings prints the listings in argument order. With more than one
// file each listing is headed by its file name.
func writeListings(out io.Writer, files []string, listings [][]DisassembledLine, showBytes bool) error {
	w := bufio.NewWriter(out)
	for i, lines := range listings {
		if len(files) > 1 {
			if i > 0 {
				fmt.Fprintln(w)
			}
			fmt.Fprintf(w, "; %s\n", files[i])
		}
		for _, line := range lines {
			fmt.Fprintln(w, formatListingLine(line, showBytes))
		}
	}
	return w.Flush()
}
