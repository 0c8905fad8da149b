//go:build linux

package main

import (
	"os"
	"strings"

	"github.com/BertoldVdb/efi-tools/efirom"
)

const dmiPath = "/sys/class/dmi/id/"

func readDMI(name string) string {
	data, err := os.ReadFile(dmiPath + name)
	if err != nil {
		return ""
	}
	return strings.Trim(string(data), "\x00 \n")
}

/* Apple firmware reports the board-id as DMI board name and the ROM version as BIOS version */
func detectHost() hostInfo {
	var host hostInfo

	board := readDMI("board_name")
	if !strings.HasPrefix(board, "Mac-") {
		return host
	}

	host.BoardID = efirom.HardwareIdentifier(board)
	host.ROMVersion = readDMI("bios_version")
	return host
}
