package efirom

import (
	"bytes"
	"fmt"
	"strings"
)

type guidPattern [16]byte

/* GUIDs in their on-disk (mixed-endian) byte order */
var (
	/* C3E36D09-8294-4B97-A857-D5288FE33E28, MacPro5,1 */
	patternLegacy = guidPattern{0x09, 0x6d, 0xe3, 0xc3, 0x94, 0x82, 0x97, 0x4b, 0xa8, 0x57, 0xd5, 0x28, 0x8f, 0xe3, 0x3e, 0x28}
	/* 781F254A-C457-5D13-9275-1BF5D56E0724 */
	patternBoardTable = guidPattern{0x4a, 0x25, 0x1f, 0x78, 0x57, 0xc4, 0x13, 0x5d, 0x92, 0x75, 0x1b, 0xf5, 0xd5, 0x6e, 0x07, 0x24}
	/* 11380FF9-CFBF-5CD5-997E-83FD089569F0 */
	patternPaddedTable = guidPattern{0xf9, 0x0f, 0x38, 0x11, 0xbf, 0xcf, 0xd5, 0x5c, 0x99, 0x7e, 0x83, 0xfd, 0x08, 0x95, 0x69, 0xf0}
)

/* The table behind this anchor uses 10 byte strides */
const paddedTableOffset = 0x1200

type anchorCandidate struct {
	offset  int
	pattern guidPattern
}

var fixedAnchorCandidates = []anchorCandidate{
	{0x98, patternBoardTable},
	{paddedTableOffset, patternPaddedTable},
	{0x1048, patternBoardTable},
}

func (p guidPattern) matchAt(buf []byte, offset int) bool {
	w, ok := window(buf, offset, len(p))
	return ok && bytes.Equal(w, p[:])
}

func scanForward(buf []byte, p guidPattern, from int, to int) (int, error) {
	for pos := from; pos <= to; pos += scanStep {
		if p.matchAt(buf, pos) {
			return pos, nil
		}
	}
	return -1, ErrorAnchorNotFound
}

func scanBackward(buf []byte, p guidPattern, from int, to int) (int, error) {
	for pos := from; pos >= to; pos -= scanStep {
		if p.matchAt(buf, pos) {
			return pos, nil
		}
	}
	return -1, ErrorAnchorNotFound
}

type AnchorStrategy struct {
	Name   string
	Match  func(name string) bool
	Locate func(buf []byte) (int, error)
}

func FamilyCode(name string) string {
	code, _, _ := strings.Cut(name, "_")
	return code
}

func locateLegacy(buf []byte) (int, error) {
	return scanForward(buf, patternLegacy, 0, len(buf)-8)
}

func locateFixed(buf []byte) (int, error) {
	for _, m := range fixedAnchorCandidates {
		if m.pattern.matchAt(buf, m.offset) {
			return m.offset, nil
		}
	}
	return scanBackward(buf, patternBoardTable, len(buf)-8, 8)
}

func AnchorStrategies(oldLayout []string) []AnchorStrategy {
	old := make(map[string]bool, len(oldLayout))
	for _, m := range oldLayout {
		old[m] = true
	}

	return []AnchorStrategy{
		{
			Name: "unsupported",
			Match: func(name string) bool {
				return old[FamilyCode(name)]
			},
			Locate: func(buf []byte) (int, error) {
				return -1, ErrorUnsupportedLayout
			},
		},
		{
			Name: "legacy-guid-scan",
			Match: func(name string) bool {
				return strings.HasPrefix(name, "MP51")
			},
			Locate: locateLegacy,
		},
		{
			Name:   "fixed-offsets",
			Match:  func(name string) bool { return true },
			Locate: locateFixed,
		},
	}
}

func LocateAnchor(strategies []AnchorStrategy, buf []byte, name string) (int, string, error) {
	for _, s := range strategies {
		if !s.Match(name) {
			continue
		}

		offset, err := s.Locate(buf)
		if err != nil {
			return -1, s.Name, fmt.Errorf("%s: %w", s.Name, err)
		}
		return offset, s.Name, nil
	}
	return -1, "", ErrorAnchorNotFound
}

func TablePadded(anchor int) bool {
	return anchor == paddedTableOffset
}
