package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/alecthomas/repr"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/Jeremis70/desktop-indexer/internal/cmdutil"
	"github.com/Jeremis70/desktop-indexer/internal/entry"
)

func parseMain(command *cobra.Command, arguments []string) error {
	if len(arguments) != 1 {
		return errors.New("expected exactly one .desktop file path")
	}
	path := arguments[0]

	e, err := entry.Parse(path, "")
	if err != nil {
		return errors.Wrapf(err, "unable to read %s", path)
	}

	if rootConfiguration.jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(e.Public())
	}

	repr.Println(e.Public())
	fmt.Println()
	return nil
}

var parseCommand = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse a single .desktop file and print its resolved record",
	Run:   cmdutil.Mainify(parseMain),
}
