package capsule

import (
	"encoding/binary"
	"errors"
	"fmt"
	"strings"
)

const headerLen = 28

const (
	FlagPersistAcrossReset  = 0x00010000
	FlagPopulateSystemTable = 0x00020000
	FlagInitiateReset       = 0x00040000
)

type Header struct {
	GUID       [16]byte
	HeaderSize uint32
	Flags      uint32
	ImageSize  uint32
}

func Parse(f []byte) (Header, error) {
	var h Header

	if len(f) < headerLen {
		return h, errors.New("file too short (hdr)")
	}

	copy(h.GUID[:], f)
	h.HeaderSize = binary.LittleEndian.Uint32(f[16:])
	h.Flags = binary.LittleEndian.Uint32(f[20:])
	h.ImageSize = binary.LittleEndian.Uint32(f[24:])

	if h.HeaderSize < headerLen || int64(h.HeaderSize) > int64(len(f)) {
		return h, fmt.Errorf("invalid header size: %x", h.HeaderSize)
	}
	if h.ImageSize < h.HeaderSize {
		return h, fmt.Errorf("image size %x is smaller than header size %x", h.ImageSize, h.HeaderSize)
	}
	if int64(h.ImageSize) > int64(len(f)) {
		return h, fmt.Errorf("file too short (image): %x > %x", h.ImageSize, len(f))
	}

	return h, nil
}

var flagNames = []struct {
	flag uint32
	name string
}{
	{FlagPersistAcrossReset, "PersistAcrossReset"},
	{FlagPopulateSystemTable, "PopulateSystemTable"},
	{FlagInitiateReset, "InitiateReset"},
}

func (h Header) FlagString() string {
	var names []string
	rest := h.Flags
	for _, m := range flagNames {
		if rest&m.flag != 0 {
			names = append(names, m.name)
			rest &^= m.flag
		}
	}
	if rest != 0 {
		names = append(names, fmt.Sprintf("%08x", rest))
	}
	if names == nil {
		return "none"
	}
	return strings.Join(names, "|")
}

func (h Header) GUIDString() string {
	g := h.GUID[:]
	return fmt.Sprintf("%08X-%04X-%04X-%X-%X",
		binary.LittleEndian.Uint32(g[0:]),
		binary.LittleEndian.Uint16(g[4:]),
		binary.LittleEndian.Uint16(g[6:]),
		g[8:10], g[10:16])
}
