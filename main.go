// main.go - Command line entry point for the 8086 disassembler and monitor

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
	"context"
	"io"
	"os"
	"os/signal"

	"github.com/fatih/color"
	"github.com/mattn/go-colorable"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const version = "0.1.0"

var BannerColor = color.New(color.FgCyan)

func banner() string {
	return "ie86dis - 8086 disassembler and machine monitor\n" +
		"(c) 2024 - 2026 Zayn Otley\n" +
		"https://github.com/IntuitionAmiga/IntuitionEngine\n" +
		"License: GPLv3 or later"
}

// console holds the standard streams and whether they are terminals.
type console struct {
	stdin     io.Reader
	stdout    io.Writer
	stderr    io.Writer
	stdoutTTY bool
	stderrTTY bool
}

func osConsole() console {
	return console{
		stdin:     os.Stdin,
		stdout:    colorable.NewColorableStdout(),
		stderr:    colorable.NewColorableStderr(),
		stdoutTTY: isInteractive(os.Stdout),
		stderrTTY: isInteractive(os.Stderr),
	}
}

type rootCommand struct {
	fs      afero.Fs
	console console
	logger  *logrus.Logger
	cmd     *cobra.Command

	configPath string
	conf       Config
}

func newRootCommand(fs afero.Fs, con console, logger *logrus.Logger) *rootCommand {
	c := &rootCommand{
		fs:         fs,
		console:    con,
		logger:     logger,
		configPath: os.Getenv("IE86DIS_CONFIG"),
	}
	c.cmd = &cobra.Command{
		Use:               "ie86dis",
		Short:             "8086 disassembler and machine monitor",
		Long:              BannerColor.Sprintf("\n%s", banner()),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.persistentPreRunE,
	}
	c.cmd.SetIn(con.stdin)
	c.cmd.SetOut(con.stdout)
	c.cmd.SetErr(con.stderr)
	c.cmd.PersistentFlags().AddFlagSet(c.rootCmdPersistentFlagSet())
	c.cmd.AddCommand(
		c.disasmCmd(),
		c.monitorCmd(),
		c.versionCmd(),
	)
	return c
}

func (c *rootCommand) rootCmdPersistentFlagSet() *pflag.FlagSet {
	flags := pflag.NewFlagSet("", pflag.ContinueOnError)
	flags.StringVarP(&c.configPath, "config", "c", c.configPath, "JSON config file")
	flags.String("log-level", "info", "log level: panic, fatal, error, warn, info, debug or trace")
	flags.String("log-format", "text", "log format: text or json")
	flags.Bool("no-color", false, "disable colored output")
	return flags
}

func (c *rootCommand) persistentPreRunE(cmd *cobra.Command, _ []string) error {
	conf, err := getConsolidatedConfig(c.fs, cmd.Flags(), c.configPath)
	if err != nil {
		return err
	}
	c.conf = conf
	if err := configureLogger(c.logger, conf, c.console.stderrTTY); err != nil {
		return err
	}
	if c.noColor() {
		c.console.stdout = colorable.NewNonColorable(c.console.stdout)
	}
	c.logger.WithField("version", version).Debug("starting")
	return nil
}

func (c *rootCommand) noColor() bool {
	return c.conf.NoColor.Bool || !c.console.stdoutTTY
}

// execute runs the command line and returns the process exit code.
func (c *rootCommand) execute(ctx context.Context, args []string) int {
	c.cmd.SetArgs(args)
	if err := c.cmd.ExecuteContext(ctx); err != nil {
		c.logger.Error(err)
		return 1
	}
	return 0
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	con := osConsole()
	c := newRootCommand(afero.NewOsFs(), con, newLogger(con.stderr))
	code := c.execute(ctx, os.Args[1:])
	cancel()
	os.Exit(code)
}
