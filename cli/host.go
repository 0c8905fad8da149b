package main

import "github.com/BertoldVdb/efi-tools/efirom"

type hostInfo struct {
	BoardID    efirom.HardwareIdentifier
	ROMVersion string
}

func getHostInfo(boardID string, romVersion string) hostInfo {
	host := detectHost()
	if boardID != "" {
		host.BoardID = efirom.HardwareIdentifier(boardID)
	}
	if romVersion != "" {
		host.ROMVersion = romVersion
	}
	return host
}
