//go:build !unix

package efirom

import (
	"fmt"
	"os"
)

func OpenImage(path string) (*Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrorIO, err)
	}
	return NewImage(path, data), nil
}
