package cmd

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/msto63/dbgcon/console"
	"github.com/msto63/dbgcon/console/command"
	"github.com/msto63/dbgcon/core/log"
	"github.com/msto63/dbgcon/internal/debugcmd"
	"github.com/msto63/dbgcon/internal/target"
	"github.com/msto63/dbgcon/internal/tui"
)

var plainConsole bool

var consoleCmd = &cobra.Command{
	Use:   "console",
	Short: "Start the interactive console",
	Long: `Starts the interactive debugger console against the demo target.

By default a full-screen terminal UI is used. With --plain the console
reads lines from stdin and writes to stdout, which suits pipes and
terminal multiplexers.

Keys (TUI mode):
  Enter     - execute the line (empty repeats the last line)
  Ctrl+L    - clear the transcript
  Ctrl+C    - abort`,
	RunE: runConsole,
}

func init() {
	consoleCmd.Flags().BoolVar(&plainConsole, "plain", false, "line mode on stdin/stdout instead of the TUI")
	rootCmd.AddCommand(consoleCmd)
}

func runConsole(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		printError("loading configuration", err)
		return err
	}
	logger := buildLogger(cfg)

	machine := target.New()
	cmds := debugcmd.New(machine)

	var out io.Writer = os.Stdout
	outBuf := &bytes.Buffer{}
	if !plainConsole {
		out = outBuf
	}

	con, err := console.New(console.Options{
		Logger:         logger,
		Out:            out,
		Prompt:         cfg.Console.Prompt,
		MaxScriptDepth: cfg.Console.MaxScriptDepth,
	}, cmds.Set())
	if err != nil {
		printError("building command tree", err)
		return err
	}

	for _, script := range cfg.Console.StartupScripts {
		state, err := con.ExecScript(script)
		if err != nil {
			printError(fmt.Sprintf("startup script %s", script), err)
			return err
		}
		if state.Terminal() {
			return finish(state)
		}
	}

	if plainConsole {
		state, err := con.Run(os.Stdin)
		if err != nil {
			return err
		}
		return finish(state)
	}

	state, err := tui.Run(con, outBuf, cfg.Console.Prompt, func() string {
		return fmt.Sprintf("pc 0x%04x", machine.PC())
	})
	if err != nil {
		printError("terminal UI", err)
		return err
	}
	return finish(state)
}

// finish reports how the console session ended
func finish(state command.State) error {
	if state == command.StateRun {
		fmt.Println("target resumed")
	}
	log.GetDefault().Debug("console session ended")
	return nil
}
