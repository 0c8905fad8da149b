package payload

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const (
	cpioHeaderLen = 76
	cpioTrailer   = "TRAILER!!!"

	cpioModeType    = 0170000
	cpioModeRegular = 0100000
)

var ErrorBadCPIOHeader = errors.New("Invalid cpio header")

type CPIOHeader struct {
	Name string
	Mode int64
	Size int64
}

func (h *CPIOHeader) IsRegular() bool {
	return h.Mode&cpioModeType == cpioModeRegular
}

type CPIOReader struct {
	r         *bufio.Reader
	remaining int64
}

func NewCPIOReader(r io.Reader) *CPIOReader {
	return &CPIOReader{r: bufio.NewReader(r)}
}

func parseOctal(field []byte) (int64, error) {
	v, err := strconv.ParseInt(string(field), 8, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: field %q", ErrorBadCPIOHeader, field)
	}
	return v, nil
}

/* Returns io.EOF at the trailer */
func (c *CPIOReader) Next() (*CPIOHeader, error) {
	if c.remaining > 0 {
		if _, err := c.r.Discard(int(c.remaining)); err != nil {
			return nil, err
		}
		c.remaining = 0
	}

	var hdr [cpioHeaderLen]byte
	if _, err := io.ReadFull(c.r, hdr[:]); err != nil {
		if err == io.EOF {
			return nil, io.ErrUnexpectedEOF
		}
		return nil, err
	}
	if string(hdr[:6]) != "070707" {
		return nil, fmt.Errorf("%w: magic %q", ErrorBadCPIOHeader, hdr[:6])
	}

	mode, err := parseOctal(hdr[18:24])
	if err != nil {
		return nil, err
	}
	nameSize, err := parseOctal(hdr[59:65])
	if err != nil {
		return nil, err
	}
	size, err := parseOctal(hdr[65:76])
	if err != nil {
		return nil, err
	}
	if nameSize == 0 || nameSize > 4096 {
		return nil, fmt.Errorf("%w: name size %d", ErrorBadCPIOHeader, nameSize)
	}

	name := make([]byte, nameSize)
	if _, err := io.ReadFull(c.r, name); err != nil {
		return nil, err
	}

	h := &CPIOHeader{
		Name: strings.TrimPrefix(strings.TrimRight(string(name), "\x00"), "./"),
		Mode: mode,
		Size: size,
	}
	if h.Name == cpioTrailer {
		return nil, io.EOF
	}

	c.remaining = size
	return h, nil
}

func (c *CPIOReader) Read(b []byte) (int, error) {
	if c.remaining <= 0 {
		return 0, io.EOF
	}
	if int64(len(b)) > c.remaining {
		b = b[:c.remaining]
	}
	n, err := c.r.Read(b)
	c.remaining -= int64(n)
	if err == io.EOF && c.remaining > 0 {
		err = io.ErrUnexpectedEOF
	}
	return n, err
}
