package main

import (
	"context"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/vauradkar/pfs/pfsstat"
)

var lsConfiguration struct {
	// recursive lists the full subtree instead of one level.
	recursive bool
}

func formatEntry(name string, stats pfsstat.FileStat) string {
	if stats.IsDirectory {
		return color.BlueString("%s/", name)
	}
	return fmt.Sprintf("%s\t%s", name, humanize.Bytes(stats.Size))
}

func lsMain(_ *cobra.Command, arguments []string) error {
	target := ""
	if len(arguments) > 0 {
		target = arguments[0]
	}

	path, err := parsePath(target)
	if err != nil {
		return err
	}

	fs, err := openFacade()
	if err != nil {
		return err
	}

	if lsConfiguration.recursive {
		items, err := fs.ReadDirRecurse(context.Background(), path)
		if err != nil {
			return err
		}
		for _, item := range items {
			fmt.Println(formatEntry(item.Path.String(), item.Stats))
		}
		return nil
	}

	dir, err := fs.ReadDir(context.Background(), path)
	if err != nil {
		return err
	}
	for _, item := range dir.Items {
		fmt.Println(formatEntry(item.Name, item.Stats))
	}
	return nil
}

var lsCommand = &cobra.Command{
	Use:   "ls [<path>]",
	Short: "List the contents of a directory",
	RunE:  lsMain,
}

func init() {
	flags := lsCommand.Flags()
	flags.BoolVarP(&lsConfiguration.recursive, "recursive", "R", false, "list the full subtree")
}
