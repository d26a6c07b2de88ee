// Command pfsctl is a command line client for the portable filesystem
// facade in github.com/vauradkar/pfs: it lists, reads, writes and
// deletes files through a configured base directory and filter set,
// the same way a synchronization peer would.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootConfiguration struct {
	// baseDir is the directory every subcommand resolves portable paths
	// against.
	baseDir string
	// noCache disables the bounded LRU cache in favor of the null
	// variant, useful for one-shot invocations that gain nothing from
	// caching.
	noCache bool
}

var rootCommand = &cobra.Command{
	Use:   "pfsctl",
	Short: "pfsctl inspects and manipulates a portable filesystem root",
	Run: func(command *cobra.Command, arguments []string) {
		command.Help()
	},
}

func init() {
	flags := rootCommand.PersistentFlags()
	flags.StringVar(&rootConfiguration.baseDir, "base", ".", "base directory to resolve portable paths against")
	flags.BoolVar(&rootConfiguration.noCache, "no-cache", false, "disable the metadata cache")

	cobra.EnableCommandSorting = false
	cobra.MousetrapHelpText = ""

	rootCommand.AddCommand(
		lsCommand,
		getCommand,
		putCommand,
		rmCommand,
		syncCommand,
	)
}

func main() {
	if err := rootCommand.Execute(); err != nil {
		os.Exit(1)
	}
}
