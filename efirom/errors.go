package efirom

import "errors"

var (
	ErrorAnchorNotFound     = errors.New("Anchor not found in image")
	ErrorMalformedVersion   = errors.New("Malformed version record")
	ErrorUnsupportedLayout  = errors.New("Image uses an unsupported table layout")
	ErrorIO                 = errors.New("Image could not be read")
	ErrorVersionUnavailable = errors.New("Reference version is not available")
)
