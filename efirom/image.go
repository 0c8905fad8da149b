package efirom

import (
	"path/filepath"
	"strings"
)

type ImageKind string

const (
	ImageKindSCAP    ImageKind = ".scap"
	ImageKindFD      ImageKind = ".fd"
	ImageKindUnknown ImageKind = ""
)

/* Version search starts here for .scap images, .fd images search back from the end */
const (
	scapVersionStart = 0xB0
	fdVersionTail    = 44
)

/* The buffer is read-only and invalid after Close */
type Image struct {
	name    string
	data    []byte
	release func() error
}

func NewImage(name string, data []byte) *Image {
	return &Image{
		name: filepath.Base(name),
		data: data,
	}
}

func (i *Image) Name() string {
	return i.name
}

func (i *Image) Size() int {
	return len(i.data)
}

func (i *Image) Bytes() []byte {
	return i.data
}

func (i *Image) Kind() ImageKind {
	switch ImageKind(strings.ToLower(filepath.Ext(i.name))) {
	case ImageKindSCAP:
		return ImageKindSCAP
	case ImageKindFD:
		return ImageKindFD
	}
	return ImageKindUnknown
}

func (i *Image) VersionSearchStart() int {
	if i.Kind() == ImageKindFD && len(i.data) > fdVersionTail {
		return len(i.data) - fdVersionTail
	}
	return scapVersionStart
}

func (i *Image) Close() error {
	release := i.release
	i.release = nil
	i.data = nil
	if release != nil {
		return release()
	}
	return nil
}

/* window returns buf[offset:offset+length] when it lies completely inside buf */
func window(buf []byte, offset int, length int) ([]byte, bool) {
	if offset < 0 || length < 0 || offset > len(buf)-length {
		return nil, false
	}
	return buf[offset : offset+length], true
}
