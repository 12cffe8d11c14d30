package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/msto63/dbgcon/console"
	"github.com/msto63/dbgcon/console/command"
	"github.com/msto63/dbgcon/internal/debugcmd"
	"github.com/msto63/dbgcon/internal/target"
)

var execCmd = &cobra.Command{
	Use:   "exec <script>",
	Short: "Run a command script and exit",
	Long: `Runs a command script against a fresh demo target and exits.

Blank lines and # comments are skipped. @file directives include child
scripts; a failing directive aborts the run, a failing command does not.`,
	Args: cobra.ExactArgs(1),
	RunE: runExec,
}

func init() {
	rootCmd.AddCommand(execCmd)
}

func runExec(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		printError("loading configuration", err)
		return err
	}
	logger := buildLogger(cfg)

	machine := target.New()
	cmds := debugcmd.New(machine)

	con, err := console.New(console.Options{
		Logger:         logger,
		Out:            os.Stdout,
		MaxScriptDepth: cfg.Console.MaxScriptDepth,
	}, cmds.Set())
	if err != nil {
		printError("building command tree", err)
		return err
	}

	state, err := con.ExecScript(args[0])
	if err != nil {
		printError(fmt.Sprintf("script %s", args[0]), err)
		return err
	}
	if state == command.StateRun {
		fmt.Println("target resumed")
	}
	return nil
}
