package payload

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
)

var firmwareExtensions = []string{".scap", ".fd"}

type ExtractedFile struct {
	Source string
	Path   string
	Size   int64
}

func isFirmware(name string) bool {
	ext := strings.ToLower(path.Ext(name))
	for _, m := range firmwareExtensions {
		if ext == m {
			return true
		}
	}
	return false
}

func writeFile(dest string, r io.Reader) (int64, error) {
	f, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return 0, err
	}

	n, err := io.Copy(f, r)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return n, err
}

func ExtractFirmware(r io.Reader, dir string) ([]ExtractedFile, error) {
	pr, err := NewPBZXReader(r)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	var files []ExtractedFile
	cr := NewCPIOReader(pr)
	for {
		hdr, err := cr.Next()
		if err == io.EOF {
			return files, nil
		} else if err != nil {
			return files, err
		}

		if !hdr.IsRegular() || !isFirmware(hdr.Name) {
			continue
		}

		dest := filepath.Join(dir, path.Base(hdr.Name))
		n, err := writeFile(dest, cr)
		if err != nil {
			return files, fmt.Errorf("failed to extract %s: %w", hdr.Name, err)
		}

		files = append(files, ExtractedFile{
			Source: hdr.Name,
			Path:   dest,
			Size:   n,
		})
	}
}
