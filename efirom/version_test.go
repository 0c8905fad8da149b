package efirom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeVersionRecord(t *testing.T) {
	tests := []struct {
		name    string
		raw     []byte
		want    [5]string
		wantErr bool
	}{
		{
			name: "macbook pro",
			raw:  versionRecord("MBP114.88Z.0172.B25.1708080133"),
			want: [5]string{"MBP114", "88Z", "0172", "B25", "1708080133"},
		},
		{
			name: "padded model token",
			raw:  versionRecord("IM101  .88Z.0000.B00.1706010000"),
			want: [5]string{"IM101", "88Z", "0000", "B00", "1706010000"},
		},
		{
			name: "text after terminator ignored",
			raw:  versionRecord("MM71.88Z.0220.B00.1706151214\x00garbage"),
			want: [5]string{"MM71", "88Z", "0220", "B00", "1706151214"},
		},
		{
			name:    "four fields",
			raw:     versionRecord("MBP114.88Z.0172.1708080133"),
			wantErr: true,
		},
		{
			name:    "six fields",
			raw:     versionRecord("MBP114.88Z.0172.B25.1708080133.1"),
			wantErr: true,
		},
		{
			name:    "empty field",
			raw:     versionRecord("MBP114..0172.B25.1708080133"),
			wantErr: true,
		},
		{
			name:    "control character",
			raw:     versionRecord("MBP114.88Z.\x010172.B25.1708080133"),
			wantErr: true,
		},
		{
			name:    "not text",
			raw:     []byte{0xFF, 0xFE, 0x00, 0xD8, 0x41, 0x00, 0x2E, 0x00},
			wantErr: true,
		},
		{
			name:    "empty",
			raw:     make([]byte, versionRecordLen),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeVersionRecord(tt.raw)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrorMalformedVersion)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Fields)
			assert.Equal(t, tt.want[0], got.Model())
			assert.Equal(t, tt.want[1], got.BoardConfig())
			assert.Equal(t, tt.want[4], got.DateToken())
		})
	}
}

func TestParseVersionRecordTrimsNul(t *testing.T) {
	v, err := ParseVersionRecord("MBP114.88Z.0172.B25.1708080133\x00\x00")
	require.NoError(t, err)
	assert.Equal(t, "MBP114.88Z.0172.B25.1708080133", v.String())
	assert.Equal(t, "1708080133", v.DateToken())
}

func TestLocateVersionForward(t *testing.T) {
	const version = "MBP114.88Z.0172.B25.1708080133"

	for _, start := range []int{0, 0xB0, 0x800, versionBackwardThreshold} {
		for _, k := range []int{0, 1, 17, 300} {
			buf := make([]byte, 0x4000)
			at := start + k*scanStep
			putVersion(t, buf, at, version)

			v, pos, err := LocateVersion(buf, start)
			require.NoError(t, err, "start 0x%x k %d", start, k)
			assert.Equal(t, at, pos)
			assert.Equal(t, version, v.Raw)
		}
	}
}

func TestLocateVersionBackward(t *testing.T) {
	const version = "IM183.88Z.0151.B00.1708080033"
	const size = 0x8000

	for _, start := range []int{versionBackwardThreshold + 4, 0x2000, size - fdVersionTail} {
		for _, k := range []int{0, 1, 9, 500} {
			buf := make([]byte, size)
			at := start - k*scanStep
			if at+len(versionMarker)+versionRecordLen > size {
				continue
			}
			putVersion(t, buf, at, version)

			v, pos, err := LocateVersion(buf, start)
			require.NoError(t, err, "start 0x%x k %d", start, k)
			assert.Equal(t, at, pos)
			assert.Equal(t, "IM183", v.Model())
		}
	}
}

func TestLocateVersionDirection(t *testing.T) {
	buf := make([]byte, 0x4000)

	/* Above the threshold the marker behind the start is found, not the one after it */
	putVersion(t, buf, 0x1800, "MBP114.88Z.0172.B25.1708080133")
	putVersion(t, buf, 0x2000, "MBP114.88Z.0172.B25.1709090000")

	v, pos, err := LocateVersion(buf, 0x1c00)
	require.NoError(t, err)
	assert.Equal(t, 0x1800, pos)
	assert.Equal(t, "1708080133", v.DateToken())

	/* Below it the search only moves forward */
	v, pos, err = LocateVersion(buf, 0x100)
	require.NoError(t, err)
	assert.Equal(t, 0x1800, pos)
}

func TestLocateVersionNotFound(t *testing.T) {
	tests := []struct {
		name  string
		size  int
		at    int
		start int
	}{
		{name: "no marker", size: 0x2000, at: -1, start: 0xB0},
		{name: "no marker backward", size: 0x4000, at: -1, start: 0x4000 - fdVersionTail},
		{name: "marker off the 4 byte grid", size: 0x2000, at: 0x402, start: 0xB0},
		{name: "marker before forward start", size: 0x2000, at: 0x40, start: 0xB0},
		{name: "start past end", size: 0x100, at: -1, start: 0x4000},
		{name: "buffer smaller than marker", size: 4, at: -1, start: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := make([]byte, tt.size)
			if tt.at >= 0 {
				putVersion(t, buf, tt.at, "MBP114.88Z.0172.B25.1708080133")
			}

			_, _, err := LocateVersion(buf, tt.start)
			require.ErrorIs(t, err, ErrorAnchorNotFound)
		})
	}
}

func TestLocateVersionStartBeyondEnd(t *testing.T) {
	buf := make([]byte, 0x2000)
	putVersion(t, buf, 0x1000, "MBA72.88Z.0166.B00.1708080033")

	/* Start is pulled back inside the buffer on the same 4 byte grid */
	_, pos, err := LocateVersion(buf, 0x3000)
	require.NoError(t, err)
	assert.Equal(t, 0x1000, pos)
}

func TestLocateVersionTruncatedRecord(t *testing.T) {
	buf := make([]byte, 0x2000)
	copy(buf[len(buf)-16:], versionMarker)

	_, _, err := LocateVersion(buf, len(buf)-16)
	require.ErrorIs(t, err, ErrorMalformedVersion)
}
