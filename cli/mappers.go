package main

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
)

/* base 0 accepts 0x/0o/0b prefixes, base 16 takes bare or 0x prefixed hex */
type intMapper struct {
	base int
}

func (h intMapper) parse(value string) (int64, error) {
	if h.base == 16 {
		neg := strings.HasPrefix(value, "-")
		value = strings.TrimPrefix(value, "-")
		value = strings.TrimPrefix(strings.TrimPrefix(value, "0x"), "0X")
		if neg {
			value = "-" + value
		}
	}
	return strconv.ParseInt(value, h.base, 64)
}

func (h intMapper) Decode(ctx *kong.DecodeContext, target reflect.Value) error {
	var value string
	err := ctx.Scan.PopValueInto("hex", &value)
	if err != nil {
		return err
	}
	i, err := h.parse(value)
	if err != nil {
		return err
	}
	target.SetInt(i)
	return nil
}
