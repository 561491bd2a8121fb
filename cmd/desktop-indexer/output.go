package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/repr"
	"github.com/dustin/go-humanize"
	"github.com/fatih/color"

	"github.com/Jeremis70/desktop-indexer/internal/cmdutil"
	"github.com/Jeremis70/desktop-indexer/internal/entry"
)

// printEntries renders a list of public entries either as JSON or as a
// colored, human-readable listing, depending on --json.
func printEntries(entries []entry.PublicEntry) {
	if rootConfiguration.jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(entries); err != nil {
			cmdutil.Fatal(err)
		}
		return
	}

	bold := color.New(color.Bold)
	dim := color.New(color.FgHiBlack)
	for _, e := range entries {
		name := e.ID
		if e.Name != nil {
			name = *e.Name
		}
		bold.Printf("%s", name)
		fmt.Printf("  ")
		dim.Printf("(%s)", e.ID)
		if e.GenericName != nil {
			fmt.Printf(" — %s", *e.GenericName)
		}
		fmt.Println()
	}

	if len(entries) == 0 {
		dim.Println("no matches")
		return
	}
	dim.Println(humanize.Comma(int64(len(entries))) + " result(s)")
}

func printTrace(label string, v any) {
	if !rootConfiguration.trace {
		return
	}
	fmt.Fprintln(os.Stderr, label+":")
	repr.Println(v)
}

func humanDuration(d time.Duration) string {
	return humanize.RelTime(time.Now().Add(-d), time.Now(), "ago", "from now")
}
