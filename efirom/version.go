package efirom

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/text/encoding/unicode"
)

var versionMarker = []byte("$IBIOSI$")

const (
	versionRecordLen = 0x41
	versionFields    = 5

	/* Start offsets above this are searched backwards */
	versionBackwardThreshold = 4096

	scanStep = 4
)

type VersionRecord struct {
	Raw    string
	Fields [versionFields]string
}

func (v VersionRecord) Model() string {
	return v.Fields[0]
}

func (v VersionRecord) BoardConfig() string {
	return v.Fields[1]
}

func (v VersionRecord) DateToken() string {
	return v.Fields[4]
}

func (v VersionRecord) String() string {
	return v.Raw
}

func ParseVersionRecord(s string) (VersionRecord, error) {
	var v VersionRecord

	s = strings.Trim(s, "\x00 \t\r\n")
	for _, r := range s {
		if r < 0x20 || r > 0x7e {
			return v, fmt.Errorf("%w: non-text character %q", ErrorMalformedVersion, r)
		}
	}

	fields := strings.Split(s, ".")
	if len(fields) != versionFields {
		return v, fmt.Errorf("%w: %d fields in %q", ErrorMalformedVersion, len(fields), s)
	}
	for i, m := range fields {
		m = strings.TrimSpace(m)
		if m == "" {
			return v, fmt.Errorf("%w: field %d of %q is empty", ErrorMalformedVersion, i+1, s)
		}
		v.Fields[i] = m
	}

	v.Raw = s
	return v, nil
}

/* UTF-16LE, cut at the first NUL */
func DecodeVersionRecord(raw []byte) (VersionRecord, error) {
	raw = raw[:len(raw)&^1]

	text, err := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder().Bytes(raw)
	if err != nil {
		return VersionRecord{}, fmt.Errorf("%w: %v", ErrorMalformedVersion, err)
	}
	if i := bytes.IndexByte(text, 0); i >= 0 {
		text = text[:i]
	}

	return ParseVersionRecord(string(text))
}

func findVersionMarker(buf []byte, start int) (int, error) {
	last := len(buf) - len(versionMarker)
	if last < 0 {
		return -1, ErrorAnchorNotFound
	}

	step := scanStep
	if start > versionBackwardThreshold {
		step = -scanStep
		if start > last {
			start -= (start - last + scanStep - 1) / scanStep * scanStep
		}
	} else if start < 0 {
		start += (-start + scanStep - 1) / scanStep * scanStep
	}

	for pos := start; pos >= 0 && pos <= last; pos += step {
		if bytes.Equal(buf[pos:pos+len(versionMarker)], versionMarker) {
			return pos, nil
		}
	}
	return -1, ErrorAnchorNotFound
}

/* Searches backwards when start is beyond the first 4KiB */
func LocateVersion(buf []byte, start int) (VersionRecord, int, error) {
	pos, err := findVersionMarker(buf, start)
	if err != nil {
		return VersionRecord{}, -1, fmt.Errorf("version marker from 0x%x: %w", start, err)
	}

	record, ok := window(buf, pos+len(versionMarker), versionRecordLen)
	if !ok {
		return VersionRecord{}, pos, fmt.Errorf("%w: record at 0x%x is truncated", ErrorMalformedVersion, pos)
	}

	v, err := DecodeVersionRecord(record)
	return v, pos, err
}
