package imageio

import (
	"bytes"
	stdimage "image"
	"image/draw"
	"image/jpeg"
	"image/png"
	"io"

	"github.com/disintegration/imaging"
)

// ImagingCodec is the default Codec, backed by github.com/disintegration/
// imaging for resample and the standard library's image/png and image/jpeg
// for the actual bitstream. Based on
// images.go (LoadImageFromFile decodes via image.Decode then manually
// copies into a straight-alpha buffer; SaveToPNG/SaveToJPEG encode a
// standard image.Image) and esimov-caire's image.go decodeImg/encodeImg,
// whose stdlib-codec-plus-imaging pattern this mirrors.
type ImagingCodec struct{}

// NewImagingCodec returns the default Codec.
func NewImagingCodec() *ImagingCodec { return &ImagingCodec{} }

// Decode reads a PNG or JPEG (or anything else image.Decode's registered
// formats cover) and returns straight (non-premultiplied) RGBA bytes.
// image/png and image/jpeg register themselves with image.Decode through
// this file's imports; imaging.Decode additionally auto-orients JPEGs using EXIF
// tags, which the reference own loader does not do but which esimov-caire
// relies on for photographs.
func (c *ImagingCodec) Decode(r io.Reader) (Decoded, error) {
	img, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return Decoded{}, err
	}
	return toDecoded(img), nil
}

// EncodePNG writes rgba (straight, row-major, stride=width*4) out as PNG.
func (c *ImagingCodec) EncodePNG(w io.Writer, width, height int, rgba []byte) error {
	return png.Encode(w, fromDecoded(Decoded{Width: width, Height: height, RGBA: rgba}))
}

// EncodeJPEG writes rgba out as JPEG at the given quality (1-100); JPEG has
// no alpha channel so straight RGB is flattened onto opaque black, matching
// the reference SaveToJPEG (which drops alpha via image/jpeg's own
// RGBA-to-YCbCr conversion).
func (c *ImagingCodec) EncodeJPEG(w io.Writer, width, height int, rgba []byte, quality int) error {
	return jpeg.Encode(w, fromDecoded(Decoded{Width: width, Height: height, RGBA: rgba}), &jpeg.Options{Quality: quality})
}

// Resize downsamples/upsamples rgba to newWidth x newHeight using a Lanczos
// filter, the same filter esimov-caire's process.go requests from
// imaging.Resize, used by a texture paint that wants mipmap-less
// prefiltering before tiling.
func (c *ImagingCodec) Resize(rgba []byte, width, height, newWidth, newHeight int) (Decoded, error) {
	src := fromDecoded(Decoded{Width: width, Height: height, RGBA: rgba})
	dst := imaging.Resize(src, newWidth, newHeight, imaging.Lanczos)
	return toDecoded(dst), nil
}

func toDecoded(img stdimage.Image) Decoded {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	rgba := stdimage.NewNRGBA(stdimage.Rect(0, 0, w, h))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	return Decoded{Width: w, Height: h, RGBA: rgba.Pix}
}

func fromDecoded(d Decoded) *stdimage.NRGBA {
	rgba := stdimage.NewNRGBA(stdimage.Rect(0, 0, d.Width, d.Height))
	copy(rgba.Pix, d.RGBA)
	return rgba
}

// DecodeBytes is a convenience wrapper for decoding an in-memory blob,
// matching the "decode image file/bytes" phrasing (§6).
func (c *ImagingCodec) DecodeBytes(b []byte) (Decoded, error) {
	return c.Decode(bytes.NewReader(b))
}
