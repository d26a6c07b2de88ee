package main

import (
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/vauradkar/pfs/pfsstat"
	"github.com/vauradkar/pfs/pfsutil"
)

var putConfiguration struct {
	// overwrite allows put to replace an existing file.
	overwrite bool
	// from reads file contents from a local path instead of standard
	// input.
	from string
}

func putMain(_ *cobra.Command, arguments []string) error {
	if len(arguments) != 1 {
		return errors.New("put requires exactly one path argument")
	}

	path, err := parsePath(arguments[0])
	if err != nil {
		return err
	}

	var data []byte
	if putConfiguration.from != "" {
		data, err = os.ReadFile(putConfiguration.from)
	} else {
		data, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		return errors.Wrap(err, "unable to read source content")
	}

	fs, err := openFacade()
	if err != nil {
		return err
	}

	stats := pfsstat.FileStat{
		Size:  uint64(len(data)),
		MTime: pfsutil.FormatTime(time.Now()),
	}

	if err := fs.Write(path, data, putConfiguration.overwrite, stats); err != nil {
		return errors.Wrap(err, "unable to write file")
	}
	return nil
}

var putCommand = &cobra.Command{
	Use:          "put <path>",
	Short:        "Write standard input (or --from) to a file",
	RunE:         putMain,
	SilenceUsage: true,
}

func init() {
	flags := putCommand.Flags()
	flags.BoolVar(&putConfiguration.overwrite, "overwrite", false, "allow replacing an existing file")
	flags.StringVar(&putConfiguration.from, "from", "", "local file to read content from, instead of standard input")
}
