package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func rmMain(_ *cobra.Command, arguments []string) error {
	if len(arguments) != 1 {
		return errors.New("rm requires exactly one path argument")
	}

	path, err := parsePath(arguments[0])
	if err != nil {
		return err
	}

	fs, err := openFacade()
	if err != nil {
		return err
	}

	if err := fs.DeleteFile(path); err != nil {
		return errors.Wrap(err, "unable to delete file")
	}
	return nil
}

var rmCommand = &cobra.Command{
	Use:          "rm <path>",
	Short:        "Delete a file",
	RunE:         rmMain,
	SilenceUsage: true,
}
