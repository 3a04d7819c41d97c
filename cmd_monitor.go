// cmd_monitor.go - The monitor command: interactive machine monitor

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
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func (c *rootCommand) monitorCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "monitor [FILE]",
		Short: "Inspect an image in the machine monitor",
		Long: `Load an image into a 1 MiB address space and open the machine monitor
with CS:IP at the entry point. Commands are read from stdin, so a command
file can be piped in. Type ? in the monitor for the command list.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mon, err := c.newMonitor(args)
			if err != nil {
				return err
			}
			return runMonitorSession(cmd.Context(), mon, c.console.stdin, c.console.stdout, c.noColor())
		},
	}
	cmd.Flags().AddFlagSet(imageFlagSet())
	cmd.Flags().Int64("scrollback", 500, "monitor scrollback lines")
	return cmd
}

// newMonitor builds the address space, loads the optional image and
// activates a monitor on it.
func (c *rootCommand) newMonitor(args []string) (*MachineMonitor, error) {
	symbols, err := c.loadSymbols()
	if err != nil {
		return nil, err
	}
	layout := c.layout()

	bus := NewSystemBus()
	if len(args) == 1 {
		image, err := afero.ReadFile(c.fs, args[0])
		if err != nil {
			return nil, err
		}
		if err := bus.Load(layout.load.Segment(), layout.load.Offset(), image); err != nil {
			return nil, err
		}
		c.logger.WithFields(logrus.Fields{
			"file":  args[0],
			"bytes": len(image),
			"at":    layout.load.String(),
		}).Debug("loaded image")
	}

	cpu := NewDebug8086(bus, symbols)
	cpu.SetPC(MakeFar(layout.load.Segment(), layout.entry))

	mon := NewMachineMonitor(cpu, c.fs, c.logger)
	mon.SetScrollback(int(c.conf.Scrollback.Int64))
	mon.Activate()
	return mon, nil
}
