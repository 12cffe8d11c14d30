package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/msto63/dbgcon/core/config"
	"github.com/msto63/dbgcon/core/log"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "dbgcon",
	Short: "dbgcon - interactive debugger command console",
	Long: `dbgcon is a line-oriented debugger command console for a memory-mapped
demo target.

Commands are multi-word with arity-based overloads; arguments are coerced
per parameter kind, numbers defaulting to octal unless prefixed with
b, o, d, or x. Lines starting with # are comments, @file runs a script.

Subcommands:
  console  - start the interactive console
  exec     - run a command script and exit
  version  - show version information`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./configs/dbgcon.toml if present)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// defaultConfigPath is probed when --config is not given
const defaultConfigPath = "configs/dbgcon.toml"

func loadConfig() (*config.Config, error) {
	path := cfgFile
	if path == "" {
		if _, err := os.Stat(defaultConfigPath); err == nil {
			path = defaultConfigPath
		}
	}
	return config.Load(path)
}

func buildLogger(cfg *config.Config) *log.Logger {
	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = log.DefaultLevel()
	}
	if verbose {
		level = log.LevelDebug
	}

	format, err := log.ParseFormat(cfg.Log.Format)
	if err != nil {
		format = log.FormatConsole
	}

	return log.NewWithConfig(log.Config{
		Level:  level,
		Format: format,
		Name:   "dbgcon",
	})
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
}
