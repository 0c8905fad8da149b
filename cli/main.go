package main

import (
	"fmt"
	"os"

	"github.com/BertoldVdb/efi-tools/efirom"
	"github.com/alecthomas/kong"
)

type Context struct {
	registry  *efirom.Registry
	oldLayout []string
	logFunc   efirom.LogFunc
}

func (c *Context) oldLayoutFamilies() []string {
	if c.oldLayout == nil {
		return efirom.DefaultOldLayoutFamilies()
	}
	return c.oldLayout
}

var CLI struct {
	LogLevel  int      `optional:"" help:"Higher values give more output."`
	Mappings  string   `optional:"" help:"YAML or plist file with extra board-id mappings."`
	OldLayout []string `optional:"" name:"old-layout" help:"Family codes without a board-id table, replaces the built-in list."`

	Scan       ScanCmd       `cmd:"" help:"Show board-ids and EFI versions of the firmware images in a directory."`
	Version    VersionCmd    `cmd:"" help:"Show the version record of a firmware image."`
	Anchor     AnchorCmd     `cmd:"" help:"Show the board-id table of a firmware image."`
	Lookup     LookupCmd     `cmd:"" help:"Resolve a board-id, model identifier or version token."`
	ListModels ListModelsCmd `cmd:"" help:"List known board-ids."`
}

func main() {
	k, err := kong.New(&CLI,
		kong.Name("efiver"),
		kong.Description("Show the EFI ROM versions and board-ids in Apple firmware updates."),
		kong.Configuration(kong.JSON, "~/.efiver.json"),
		kong.NamedMapper("int", intMapper{}),
		kong.NamedMapper("hex", intMapper{base: 16}))
	if err != nil {
		fmt.Println(err)
		return
	}

	ctx, err := k.Parse(os.Args[1:])
	if err != nil {
		fmt.Println(err)
		return
	}

	mappings := efirom.DefaultMappings()
	registry := efirom.NewRegistry(mappings)
	if CLI.Mappings != "" {
		extra, err := efirom.LoadMappings(CLI.Mappings)
		if err != nil {
			fmt.Println("Failed to load mappings", err)
			return
		}
		/* User mappings take precedence */
		registry = efirom.NewRegistry(extra, mappings)
	}

	c := &Context{
		registry:  registry,
		oldLayout: CLI.OldLayout,
		logFunc: func(level int, format string, param ...interface{}) {
			if level > CLI.LogLevel {
				return
			}
			str := fmt.Sprintf(format, param...)
			fmt.Fprintf(os.Stderr, "SCAN(%d): %s\n", level, str)
		},
	}

	err = ctx.Run(c)
	ctx.FatalIfErrorf(err)
}
