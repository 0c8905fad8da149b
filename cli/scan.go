package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/BertoldVdb/efi-tools/efirom"
	"github.com/hashicorp/go-multierror"
	"github.com/inancgumus/screen"
)

const defaultPayloadPath = "/tmp/FirmwareUpdate/Scripts/Tools/EFIPayloads"

type ScanCmd struct {
	Dir string `arg:"" optional:"" help:"Directory with .scap and .fd firmware images." default:"/tmp/FirmwareUpdate/Scripts/Tools/EFIPayloads"`

	BoardID    string `optional:"" name:"board-id" help:"Board-id of this machine, detected when omitted."`
	ROMVersion string `optional:"" name:"rom-version" help:"EFI ROM version of this machine, detected when omitted."`
	Workers    int    `optional:"" help:"Number of images to scan in parallel, 0 uses all CPUs." type:"int"`
	Format     string `optional:"" help:"Output format (text, json, yaml, plist)." default:"text"`
	NoClear    bool   `optional:"" help:"Do not clear the screen before printing the table."`
}

func (s *ScanCmd) Run(c *Context) error {
	if s.Format != "text" && s.Format != "json" && s.Format != "yaml" && s.Format != "plist" {
		return errors.New("Format must be one of text, json, yaml or plist")
	}
	if s.Dir == "" {
		s.Dir = defaultPayloadPath
	}

	host := getHostInfo(s.BoardID, s.ROMVersion)
	if host.BoardID == "" {
		c.logFunc(1, "Board-id of this machine is unknown, update check disabled")
	}

	scanner := efirom.NewScanner(efirom.ScannerConfig{
		Registry:          c.registry,
		OldLayoutFamilies: c.oldLayoutFamilies(),
		HostIdentifier:    host.BoardID,
		HostVersion:       host.ROMVersion,
		Workers:           s.Workers,
		LogFunc:           c.logFunc,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	results, err := scanner.ScanDir(ctx, s.Dir)
	if ctx.Err() != nil {
		return ctx.Err()
	}
	var merr *multierror.Error
	if errors.As(err, &merr) {
		/* Unreadable images do not invalidate the others */
		fmt.Fprintln(os.Stderr, "Some images could not be read:", err)
	} else if err != nil {
		return err
	}

	if s.Format != "text" {
		return writeResults(os.Stdout, s.Format, results)
	}

	if !s.NoClear {
		screen.Clear()
		screen.MoveTopLeft()
	}
	writeTable(os.Stdout, results, host)
	return nil
}
