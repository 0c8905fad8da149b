package efirom

import (
	"encoding/binary"
	"testing"
	"unicode/utf16"
)

func encodeUTF16LE(s string) []byte {
	units := utf16.Encode([]rune(s))
	out := make([]byte, 2*len(units))
	for i, m := range units {
		binary.LittleEndian.PutUint16(out[2*i:], m)
	}
	return out
}

/* versionRecord returns the 65 byte record for s, NUL padded */
func versionRecord(s string) []byte {
	rec := make([]byte, versionRecordLen)
	copy(rec, encodeUTF16LE(s))
	return rec
}

func putVersion(t *testing.T, buf []byte, offset int, version string) {
	t.Helper()
	if offset+len(versionMarker)+versionRecordLen > len(buf) {
		t.Fatalf("version at 0x%x does not fit in %d bytes", offset, len(buf))
	}
	copy(buf[offset:], versionMarker)
	copy(buf[offset+len(versionMarker):], versionRecord(version))
}

func boardCode(id int) []byte {
	code := make([]byte, tableEntryLen)
	binary.BigEndian.PutUint64(code, 0x0123456789AB0000|uint64(id))
	return code
}

func boardID(id int) HardwareIdentifier {
	return NewHardwareIdentifier(boardCode(id))
}

/* putTable writes a board-id table with the given codes and, if terminate is set, a sentinel */
func putTable(t *testing.T, buf []byte, anchor int, p guidPattern, codes [][]byte, padded bool, terminate bool) {
	t.Helper()
	copy(buf[anchor:], p[:])

	stride := tableEntryLen
	if padded {
		stride += tablePadding
	}
	pos := anchor + tableHeaderLen + tableEntryGap
	for _, m := range codes {
		copy(buf[pos:], m)
		pos += stride
	}
	if terminate {
		copy(buf[pos:], tableSentinel)
	}
}

func boardCodes(n int) [][]byte {
	var codes [][]byte
	for i := 0; i < n; i++ {
		codes = append(codes, boardCode(i+1))
	}
	return codes
}

func boardIDs(n int) []HardwareIdentifier {
	var ids []HardwareIdentifier
	for i := 0; i < n; i++ {
		ids = append(ids, boardID(i+1))
	}
	return ids
}
