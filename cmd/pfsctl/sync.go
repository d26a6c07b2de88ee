package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/vauradkar/pfs/pfsstat"
)

var syncConfiguration struct {
	// baseline is a path to a JSON-encoded []pfsstat.FileInfo snapshot
	// from a previous run; entries unchanged since that snapshot are not
	// printed.
	baseline string
	// saveBaseline writes the subtree's current full listing to path as
	// a JSON snapshot, for use as a future --baseline.
	saveBaseline string
}

func loadBaseline(path string) ([]pfsstat.FileInfo, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "unable to read baseline snapshot")
	}
	var deltas []pfsstat.FileInfo
	if err := json.Unmarshal(data, &deltas); err != nil {
		return nil, errors.Wrap(err, "unable to parse baseline snapshot")
	}
	return deltas, nil
}

func syncMain(_ *cobra.Command, arguments []string) error {
	target := ""
	if len(arguments) > 0 {
		target = arguments[0]
	}

	path, err := parsePath(target)
	if err != nil {
		return err
	}

	deltas, err := loadBaseline(syncConfiguration.baseline)
	if err != nil {
		return err
	}

	fs, err := openFacade()
	if err != nil {
		return err
	}

	tx := make(chan []pfsstat.FileInfo, 16)
	request := pfsstat.RecursiveDirList{BaseDir: path, Deltas: deltas}

	var changed []pfsstat.FileInfo
	done := make(chan struct{})
	go func() {
		defer close(done)
		for batch := range tx {
			changed = append(changed, batch...)
		}
	}()

	session := fs.ExchangeDeltas(context.Background(), tx, request, 20)
	<-done

	fmt.Printf("session %s: %d changed entries\n", session.ID, len(changed))
	for _, item := range changed {
		fmt.Printf("  %s\n", item.Path.String())
	}

	if syncConfiguration.saveBaseline != "" {
		snapshot, err := fs.ReadDirRecurse(context.Background(), path)
		if err != nil {
			return errors.Wrap(err, "unable to build baseline snapshot")
		}
		data, err := json.Marshal(snapshot)
		if err != nil {
			return errors.Wrap(err, "unable to encode baseline snapshot")
		}
		if err := os.WriteFile(syncConfiguration.saveBaseline, data, 0o644); err != nil {
			return errors.Wrap(err, "unable to write baseline snapshot")
		}
	}

	return nil
}

var syncCommand = &cobra.Command{
	Use:          "sync [<path>]",
	Short:        "Report entries that changed since a previous snapshot",
	RunE:         syncMain,
	SilenceUsage: true,
}

func init() {
	flags := syncCommand.Flags()
	flags.StringVar(&syncConfiguration.baseline, "baseline", "", "JSON snapshot from a previous sync to diff against")
	flags.StringVar(&syncConfiguration.saveBaseline, "save-baseline", "", "write a JSON snapshot of the current subtree for future use as --baseline")
}
