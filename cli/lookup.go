package main

import (
	"fmt"
	"strings"

	"github.com/BertoldVdb/efi-tools/efirom"
)

type LookupCmd struct {
	Query string `arg:"" help:"Board-id (Mac-...), model identifier (MacBookPro11,4) or version token (MBP114)."`
}

func (l *LookupCmd) Run(c *Context) error {
	switch {
	case strings.HasPrefix(l.Query, "Mac-"):
		fmt.Printf("%s -> %s\n", l.Query, c.registry.ModelFor(efirom.HardwareIdentifier(l.Query)))

	case strings.Contains(l.Query, ","):
		fmt.Printf("%s -> %s\n", l.Query, c.registry.IdentifierFor(l.Query))

	default:
		model := efirom.DeriveModelFromToken(l.Query)
		fmt.Printf("%s -> %s -> %s\n", l.Query, model, c.registry.IdentifierFor(model))
	}
	return nil
}

type ListModelsCmd struct {
}

func (l *ListModelsCmd) Run(c *Context) error {
	for _, m := range c.registry.Entries() {
		fmt.Printf("%-20s %s\n", m.Identifier, m.Model)
	}
	return nil
}
