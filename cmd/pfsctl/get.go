package main

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func getMain(_ *cobra.Command, arguments []string) error {
	if len(arguments) != 1 {
		return errors.New("get requires exactly one path argument")
	}

	path, err := parsePath(arguments[0])
	if err != nil {
		return err
	}

	fs, err := openFacade()
	if err != nil {
		return err
	}

	data, err := fs.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "unable to read file")
	}

	_, err = os.Stdout.Write(data)
	return err
}

var getCommand = &cobra.Command{
	Use:          "get <path>",
	Short:        "Print the contents of a file to standard output",
	RunE:         getMain,
	SilenceUsage: true,
}
