package efirom

import (
	"bytes"
	"encoding/hex"
	"strings"
)

type HardwareIdentifier string

const (
	tableHeaderLen  = 20
	tableMaxEntries = 14
	tableEntryLen   = 8
	tableEntryGap   = 8
	tablePadding    = 2
)

var tableSentinel = bytes.Repeat([]byte{0xFF}, tableEntryLen)

func NewHardwareIdentifier(code []byte) HardwareIdentifier {
	return HardwareIdentifier("Mac-" + strings.ToUpper(hex.EncodeToString(code)))
}

/* Stops at an all 0xFF slot, after 14 entries or at the end of buf */
func WalkIdentifiers(buf []byte, anchor int, padded bool) []HardwareIdentifier {
	var ids []HardwareIdentifier

	/* Skip GUID and the first four bytes of the structure */
	pos := anchor + tableHeaderLen
	for i := 0; i < tableMaxEntries; i++ {
		/* First time this skips the rest of the header, after that the previous entry */
		pos += tableEntryGap

		code, ok := window(buf, pos, tableEntryLen)
		if !ok || bytes.Equal(code, tableSentinel) {
			break
		}
		ids = append(ids, NewHardwareIdentifier(code))

		if padded {
			pos += tablePadding
		}
	}

	return ids
}
