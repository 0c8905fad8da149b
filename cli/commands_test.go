package main

import (
	"encoding/binary"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"
	"unicode/utf16"

	"github.com/BertoldVdb/efi-tools/efirom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testVersion = "MBP114.88Z.0172.B25.1708080133"

var testBoardTable = []byte{0x4a, 0x25, 0x1f, 0x78, 0x57, 0xc4, 0x13, 0x5d, 0x92, 0x75, 0x1b, 0xf5, 0xd5, 0x6e, 0x07, 0x24}

func testContext() *Context {
	return &Context{
		registry: efirom.NewRegistry(efirom.DefaultMappings()),
		logFunc:  func(level int, format string, param ...interface{}) {},
	}
}

/* Version record at 0xB0, board-id table for MacBookPro11,4 and 11,5 at 0x1048 */
func writeTestImage(t *testing.T, dir string, name string) string {
	t.Helper()
	buf := make([]byte, 0x2000)

	copy(buf[0xB0:], "$IBIOSI$")
	for i, m := range utf16.Encode([]rune(testVersion)) {
		binary.LittleEndian.PutUint16(buf[0xB8+2*i:], m)
	}

	copy(buf[0x1048:], testBoardTable)
	copy(buf[0x1048+28:], []byte{0x06, 0xF1, 0x1F, 0xD9, 0x3F, 0x03, 0x23, 0xC5})
	copy(buf[0x1048+36:], []byte{0x06, 0xF1, 0x1F, 0x11, 0x94, 0x6D, 0x27, 0xC5})
	copy(buf[0x1048+44:], []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF})

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, buf, 0644))
	return path
}

func captureStdout(t *testing.T, f func() error) (string, error) {
	t.Helper()
	r, w, err := os.Pipe()
	require.NoError(t, err)

	old := os.Stdout
	os.Stdout = w
	runErr := f()
	os.Stdout = old
	require.NoError(t, w.Close())

	out, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(out), runErr
}

func TestVersionCmd(t *testing.T) {
	path := writeTestImage(t, t.TempDir(), "MBP114_0172_B25.scap")

	out, err := captureStdout(t, func() error {
		return (&VersionCmd{Filename: path, Start: -1, Dump: true}).Run(testContext())
	})
	require.NoError(t, err)
	assert.Contains(t, out, "Version:      "+testVersion)
	assert.Contains(t, out, "Offset:       0xb0 (search from 0xb0)")
	assert.Contains(t, out, "Model token:  MBP114 (MacBookPro11,4)")
	assert.Contains(t, out, "Date:         1708080133")
	assert.Contains(t, out, "000000b0  24 49 42 49 4f 53 49 24  4d 00 42 00")
	assert.NotContains(t, out, "00000100")

	/* Nothing to find forwards from past the marker */
	_, err = captureStdout(t, func() error {
		return (&VersionCmd{Filename: path, Start: 0x100}).Run(testContext())
	})
	assert.ErrorIs(t, err, efirom.ErrorAnchorNotFound)

	_, err = captureStdout(t, func() error {
		return (&VersionCmd{Filename: filepath.Join(t.TempDir(), "missing.scap"), Start: -1}).Run(testContext())
	})
	assert.ErrorIs(t, err, efirom.ErrorIO)
}

func TestAnchorCmd(t *testing.T) {
	dir := t.TempDir()
	path := writeTestImage(t, dir, "MBP114_0172_B25.scap")

	out, err := captureStdout(t, func() error {
		return (&AnchorCmd{Filename: path, Dump: true}).Run(testContext())
	})
	require.NoError(t, err)
	assert.Contains(t, out, "Strategy: fixed-offsets")
	assert.Contains(t, out, "Anchor:   0x1048 (padded entries: false)")
	assert.Contains(t, out, "  Mac-06F11FD93F0323C5 | MacBookPro11,4")
	assert.Contains(t, out, "  Mac-06F11F11946D27C5 | MacBookPro11,5")
	assert.Contains(t, out, "00001048  4a 25 1f 78 57 c4 13 5d  92 75 1b f5 d5 6e 07 24")
	assert.Contains(t, out, "00001078  ")
	assert.NotContains(t, out, "00001088")

	old := writeTestImage(t, dir, "IM101_00CC_B00.scap")
	out, err = captureStdout(t, func() error {
		return (&AnchorCmd{Filename: old}).Run(testContext())
	})
	require.NoError(t, err)
	assert.Contains(t, out, "IM101_00CC_B00.scap has no board-id table (family IM101)")

	c := testContext()
	c.oldLayout = []string{"MBP114"}
	out, err = captureStdout(t, func() error {
		return (&AnchorCmd{Filename: path}).Run(c)
	})
	require.NoError(t, err)
	assert.Contains(t, out, "has no board-id table (family MBP114)")
}

func TestLookupCmd(t *testing.T) {
	tests := []struct {
		query string
		want  string
	}{
		{"Mac-06F11FD93F0323C5", "Mac-06F11FD93F0323C5 -> MacBookPro11,4\n"},
		{"MacBookPro11,4", "MacBookPro11,4 -> Mac-06F11FD93F0323C5\n"},
		{"MBP114", "MBP114 -> MacBookPro11,4 -> Mac-06F11FD93F0323C5\n"},
		{"ZZ99", "ZZ99 -> Unknown -> Unknown\n"},
	}

	for _, tt := range tests {
		out, err := captureStdout(t, func() error {
			return (&LookupCmd{Query: tt.query}).Run(testContext())
		})
		require.NoError(t, err)
		assert.Equal(t, tt.want, out)
	}
}

func TestScanCmdMissingDir(t *testing.T) {
	cmd := &ScanCmd{Dir: filepath.Join(t.TempDir(), "typo"), Format: "text", NoClear: true}

	_, err := captureStdout(t, func() error {
		return cmd.Run(testContext())
	})
	require.ErrorIs(t, err, efirom.ErrorIO)
}

func TestScanCmdUnreadableImage(t *testing.T) {
	dir := t.TempDir()
	writeTestImage(t, dir, "MBP114_0172_B25.scap")
	require.NoError(t, os.Symlink(filepath.Join(dir, "gone"), filepath.Join(dir, "MBP115_0172_B25.scap")))

	cmd := &ScanCmd{
		Dir:        dir,
		Format:     "json",
		BoardID:    "Mac-06F11FD93F0323C5",
		ROMVersion: "MBP114.88Z.0170.B00.1706010000",
	}
	out, err := captureStdout(t, func() error {
		return cmd.Run(testContext())
	})
	require.NoError(t, err)

	var results []efirom.Result
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 1)
	require.Len(t, results[0].Entries, 2)
	assert.True(t, results[0].Entries[0].IsHost)
	assert.True(t, results[0].Entries[0].UpdateAvailable)
}

func TestScanCmdBadFormat(t *testing.T) {
	err := (&ScanCmd{Dir: t.TempDir(), Format: "xml"}).Run(testContext())
	assert.Error(t, err)
}
