package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/BertoldVdb/efi-tools/efirom"
	"github.com/fatih/color"
	"gopkg.in/yaml.v3"
	"howett.net/plist"
)

const separator = "---------------------------------------------------------------------------"

func writeResults(w io.Writer, format string, results []*efirom.Result) error {
	if results == nil {
		results = []*efirom.Result{}
	}

	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	case "yaml":
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(results)
	case "plist":
		enc := plist.NewEncoder(w)
		enc.Indent("\t")
		return enc.Encode(results)
	}
	return errors.New("Unknown output format")
}

/* Returns true when an update for the host was found */
func writeTable(w io.Writer, results []*efirom.Result, host hostInfo) bool {
	hostColor := color.New(color.FgGreen, color.Bold)
	failColor := color.New(color.FgYellow)

	updateFound := false
	fmt.Fprintln(w, separator)
	linePrinted := true

	for _, r := range results {
		if r.Err != nil {
			failColor.Fprintf(w, "! %20s | %v\n", r.Name, r.Err)
			linePrinted = false
			continue
		}

		for _, e := range r.Entries {
			if !e.IsHost {
				fmt.Fprintf(w, "  %20s | %14s | %s\n", e.Identifier, e.Model, e.Version)
				linePrinted = false
				continue
			}

			if !linePrinted {
				fmt.Fprintln(w, separator)
			}
			hostColor.Fprintf(w, "> %20s | %14s | %s <\n", e.Identifier, e.Model, e.Version)
			fmt.Fprintln(w, separator)
			linePrinted = true

			if e.UpdateAvailable {
				updateFound = true
			}
		}
	}

	if !linePrinted {
		fmt.Fprintln(w, separator)
	}
	if updateFound {
		color.New(color.FgRed, color.Bold).Fprintf(w, "> WARNING: Your EFI ROM %21s is not up-to-date!! <\n", host.ROMVersion)
		fmt.Fprintln(w, separator)
	}

	return updateFound
}
