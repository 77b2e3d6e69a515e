// Package imageio is the rendering core's image encode/decode boundary.
// Based on images.go (SaveImageToPNG/SaveImageToJPEG/LoadImageFromFile,
// standard-library image/png + image/jpeg) for the codec shape, with the
// default implementation's resample step swapped to
// github.com/disintegration/imaging (no resampling is done with the
// standard library alone; esimov-caire is the pack's imaging consumer).
package imageio

import "io"

// Decoded is a decode result: width, height, and non-premultiplied RGBA
// bytes, row-major, stride = width*4.
type Decoded struct {
	Width, Height int
	RGBA          []byte
}

// Decoder turns an encoded image (PNG, JPEG, ...) into raw RGBA pixels.
type Decoder interface {
	Decode(r io.Reader) (Decoded, error)
}

// WriteFunc is the "stream variants take a callback
// write(closure, data, size)" (§6), expressed as an io.Writer-shaped func.
type WriteFunc func(data []byte) error

// Encoder writes a surface's already-un-premultiplied RGBA bytes out as an
// encoded image.
type Encoder interface {
	EncodePNG(w io.Writer, width, height int, rgba []byte) error
	EncodeJPEG(w io.Writer, width, height int, rgba []byte, quality int) error
}

// Codec is the full decode+encode boundary capability.
type Codec interface {
	Decoder
	Encoder
}

// Resizer is an optional capability a Codec may also provide: a
// mipmap-less downsample step a texture paint can request before tiling.
type Resizer interface {
	Resize(rgba []byte, width, height, newWidth, newHeight int) (Decoded, error)
}
