package payload

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/ulikunitz/xz"
)

var (
	pbzxMagic = []byte("pbzx")
	xzMagic   = []byte{0xFD, '7', 'z', 'X', 'Z', 0x00}
)

/* Chunks are at most 16MiB uncompressed, anything far beyond that is corrupt */
const pbzxMaxChunk = 64 << 20

var ErrorNotPBZX = errors.New("Not a pbzx stream")

type PBZXReader struct {
	r   io.Reader
	cur io.Reader

	/* Uncompressed size of a full chunk, from the stream header */
	ChunkSize uint64
	Chunks    int
}

func NewPBZXReader(r io.Reader) (*PBZXReader, error) {
	var hdr [12]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return nil, fmt.Errorf("pbzx header: %w", err)
	}
	if !bytes.Equal(hdr[:4], pbzxMagic) {
		return nil, ErrorNotPBZX
	}

	return &PBZXReader{
		r:         r,
		ChunkSize: binary.BigEndian.Uint64(hdr[4:]),
	}, nil
}

func (p *PBZXReader) nextChunk() error {
	var hdr [16]byte
	if _, err := io.ReadFull(p.r, hdr[:]); err != nil {
		if err == io.EOF {
			return io.EOF
		}
		return fmt.Errorf("pbzx chunk %d header: %w", p.Chunks, err)
	}

	/* The first word holds per-chunk flags, only the length is needed */
	length := binary.BigEndian.Uint64(hdr[8:])
	if length > pbzxMaxChunk {
		return fmt.Errorf("pbzx chunk %d is too large: %d", p.Chunks, length)
	}

	data := make([]byte, length)
	if _, err := io.ReadFull(p.r, data); err != nil {
		return fmt.Errorf("pbzx chunk %d: %w", p.Chunks, err)
	}
	p.Chunks++

	if !bytes.HasPrefix(data, xzMagic) {
		if p.ChunkSize > 0 && length > p.ChunkSize {
			return fmt.Errorf("pbzx chunk %d: stored chunk of %d bytes exceeds chunk size %d", p.Chunks-1, length, p.ChunkSize)
		}
		p.cur = bytes.NewReader(data)
		return nil
	}

	xr, err := xz.NewReader(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("pbzx chunk %d: %w", p.Chunks-1, err)
	}
	p.cur = xr
	return nil
}

func (p *PBZXReader) Read(b []byte) (int, error) {
	for {
		if p.cur != nil {
			n, err := p.cur.Read(b)
			if err == io.EOF {
				p.cur = nil
				if n > 0 {
					return n, nil
				}
				continue
			}
			return n, err
		}

		if err := p.nextChunk(); err != nil {
			return 0, err
		}
	}
}
