//go:build unix

package efirom

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

func OpenImage(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrorIO, err)
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrorIO, err)
	}

	img := NewImage(path, nil)
	size := stat.Size()
	if size == 0 {
		return img, nil
	}
	if int64(int(size)) != size {
		return nil, fmt.Errorf("%w: %s is too large to map", ErrorIO, path)
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, fmt.Errorf("%w: mmap %s: %v", ErrorIO, path, err)
	}

	img.data = data
	img.release = func() error {
		return unix.Munmap(data)
	}
	return img, nil
}
