package main

import (
	"errors"
	"fmt"

	"github.com/BertoldVdb/efi-tools/efirom"
	"github.com/dustin/go-humanize"
)

type VersionCmd struct {
	Filename string `arg:"" help:"Firmware image (.scap or .fd)."`
	Start    int    `optional:"" type:"hex" help:"Offset to start searching from, -1 picks it from the file type." default:"-1"`
	Dump     bool   `optional:"" help:"Hexdump the version record."`
}

func (v *VersionCmd) Run(c *Context) error {
	img, err := efirom.OpenImage(v.Filename)
	if err != nil {
		return err
	}
	defer img.Close()

	start := v.Start
	if start < 0 {
		start = img.VersionSearchStart()
	}

	version, pos, err := efirom.LocateVersion(img.Bytes(), start)
	if err != nil {
		return err
	}

	fmt.Printf("Image:        %s (%s)\n", img.Name(), humanize.Bytes(uint64(img.Size())))
	fmt.Printf("Version:      %s\n", version)
	fmt.Printf("Offset:       0x%x (search from 0x%x)\n", pos, start)
	fmt.Printf("Model token:  %s (%s)\n", version.Model(), efirom.DeriveModelFromToken(version.Model()))
	fmt.Printf("Board config: %s\n", version.BoardConfig())
	fmt.Printf("Date:         %s\n", version.DateToken())

	if v.Dump {
		buf := img.Bytes()
		end := pos + 8 + 0x41
		if end > len(buf) {
			end = len(buf)
		}
		mark := markRange(make([]bool, end-pos), pos, pos, 8)
		fmt.Print(hexdump(pos, buf[pos:end], mark))
	}
	return nil
}

type AnchorCmd struct {
	Filename string `arg:"" help:"Firmware image (.scap or .fd)."`
	Dump     bool   `optional:"" help:"Hexdump the board-id table."`
}

func (a *AnchorCmd) Run(c *Context) error {
	img, err := efirom.OpenImage(a.Filename)
	if err != nil {
		return err
	}
	defer img.Close()

	strategies := efirom.AnchorStrategies(c.oldLayoutFamilies())
	anchor, strategy, err := efirom.LocateAnchor(strategies, img.Bytes(), img.Name())
	if errors.Is(err, efirom.ErrorUnsupportedLayout) {
		fmt.Printf("%s has no board-id table (family %s)\n", img.Name(), efirom.FamilyCode(img.Name()))
		return nil
	} else if err != nil {
		return err
	}

	padded := efirom.TablePadded(anchor)
	ids := efirom.WalkIdentifiers(img.Bytes(), anchor, padded)

	fmt.Printf("Strategy: %s\n", strategy)
	fmt.Printf("Anchor:   0x%x (padded entries: %v)\n", anchor, padded)
	for _, m := range ids {
		fmt.Printf("  %20s | %s\n", m, c.registry.ModelFor(m))
	}

	if a.Dump {
		buf := img.Bytes()
		stride := 8
		if padded {
			stride = 10
		}
		end := anchor + 28 + stride*len(ids) + 8
		if end > len(buf) {
			end = len(buf)
		}
		mark := markRange(make([]bool, end-anchor), anchor, anchor, 16)
		fmt.Print(hexdump(anchor, buf[anchor:end], mark))
	}
	return nil
}
