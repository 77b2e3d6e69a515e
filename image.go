package vg

import (
	"io"

	"github.com/agg-go/vgcanvas/internal/imageio"
)

// defaultCodec is the package-level image codec; swappable only for
// tests, matching own pattern of a package-level default
// with no public seam (images.go has no codec indirection at all, this
// adds the minimum needed to keep internal/imageio testable in isolation).
var defaultCodec = imageio.NewImagingCodec()

// LoadSurface decodes a PNG or JPEG byte stream into a new owned Surface,
// premultiplying each pixel on the way in.
func LoadSurface(r io.Reader) (*Surface, error) {
	d, err := defaultCodec.Decode(r)
	if err != nil {
		return nil, err
	}
	return surfaceFromRGBA(d.Width, d.Height, d.RGBA), nil
}

// LoadSurfaceBytes is a convenience wrapper over LoadSurface for an
// in-memory blob.
func LoadSurfaceBytes(b []byte) (*Surface, error) {
	d, err := defaultCodec.DecodeBytes(b)
	if err != nil {
		return nil, err
	}
	return surfaceFromRGBA(d.Width, d.Height, d.RGBA), nil
}

func surfaceFromRGBA(width, height int, rgba []byte) *Surface {
	s := NewSurface(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			i := (y*width + x) * 4
			s.Set(x, y, RGBAToARGB(rgba[i], rgba[i+1], rgba[i+2], rgba[i+3]))
		}
	}
	return s
}

// rgbaFromSurface un-premultiplies s's pixels into the byte layout
// internal/imageio's Encoder expects.
func rgbaFromSurface(s *Surface) []byte {
	w, h := s.Width(), s.Height()
	out := make([]byte, w*h*4)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			px := ARGBToRGBA(s.At(x, y))
			i := (y*w + x) * 4
			out[i+0], out[i+1], out[i+2], out[i+3] = px[0], px[1], px[2], px[3]
		}
	}
	return out
}

// SavePNG encodes s as PNG to w.
func SavePNG(w io.Writer, s *Surface) error {
	return defaultCodec.EncodePNG(w, s.Width(), s.Height(), rgbaFromSurface(s))
}

// SaveJPEG encodes s as JPEG to w at the given quality (1-100).
func SaveJPEG(w io.Writer, s *Surface, quality int) error {
	return defaultCodec.EncodeJPEG(w, s.Width(), s.Height(), rgbaFromSurface(s), quality)
}

// ResizeSurface returns a new Surface holding s resampled to
// newWidth x newHeight.
func ResizeSurface(s *Surface, newWidth, newHeight int) (*Surface, error) {
	d, err := defaultCodec.Resize(rgbaFromSurface(s), s.Width(), s.Height(), newWidth, newHeight)
	if err != nil {
		return nil, err
	}
	return surfaceFromRGBA(d.Width, d.Height, d.RGBA), nil
}
