package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

const hexdumpWidth = 16

/* Marks [from, from+n) in a mark slice for data starting at base */
func markRange(mark []bool, base int, from int, n int) []bool {
	for i := from - base; i < from-base+n; i++ {
		if i >= 0 && i < len(mark) {
			mark[i] = true
		}
	}
	return mark
}

func hexdump(offset int, data []byte, mark []bool) string {
	var result strings.Builder
	red := color.New(color.FgRed)

	for row := 0; row < len(data); row += hexdumpWidth {
		var workHex, workASCII strings.Builder

		for i := 0; i < hexdumpWidth; i++ {
			if row+i >= len(data) {
				workHex.WriteString("   ")
				workASCII.WriteByte(' ')
			} else {
				m := data[row+i]
				c := m
				if c < 32 || c > 126 {
					c = '.'
				}
				if mark != nil && mark[row+i] {
					workHex.WriteString(red.Sprintf("%02x ", m))
					workASCII.WriteString(red.Sprintf("%c", c))
				} else {
					fmt.Fprintf(&workHex, "%02x ", m)
					workASCII.WriteByte(c)
				}
			}

			if i%8 == 7 {
				workHex.WriteByte(' ')
			}
		}

		fmt.Fprintf(&result, "%08x  %s|%s|\n", offset+row, workHex.String(), workASCII.String())
	}

	return result.String()
}
