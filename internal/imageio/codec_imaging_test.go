package imageio

import (
	"bytes"
	"testing"
)

func solidRGBA(w, h int, r, g, b, a byte) []byte {
	out := make([]byte, w*h*4)
	for i := 0; i < w*h; i++ {
		out[i*4], out[i*4+1], out[i*4+2], out[i*4+3] = r, g, b, a
	}
	return out
}

func TestEncodeDecodePNGRoundTrip(t *testing.T) {
	c := NewImagingCodec()
	want := solidRGBA(4, 4, 10, 20, 30, 255)

	var buf bytes.Buffer
	if err := c.EncodePNG(&buf, 4, 4, want); err != nil {
		t.Fatalf("EncodePNG() error = %v", err)
	}

	d, err := c.Decode(&buf)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if d.Width != 4 || d.Height != 4 {
		t.Fatalf("Decode() size = %dx%d, want 4x4", d.Width, d.Height)
	}
	if !bytes.Equal(d.RGBA, want) {
		t.Fatalf("Decode() bytes = %v, want %v (PNG is lossless)", d.RGBA, want)
	}
}

func TestEncodeJPEGProducesDecodableImage(t *testing.T) {
	c := NewImagingCodec()
	src := solidRGBA(8, 8, 200, 100, 50, 255)

	var buf bytes.Buffer
	if err := c.EncodeJPEG(&buf, 8, 8, src, 90); err != nil {
		t.Fatalf("EncodeJPEG() error = %v", err)
	}

	d, err := c.Decode(&buf)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if d.Width != 8 || d.Height != 8 {
		t.Fatalf("Decode() size = %dx%d, want 8x8", d.Width, d.Height)
	}
	// JPEG is lossy; a solid fill should still decode close to the source.
	within := func(got, want byte) bool {
		d := int(got) - int(want)
		if d < 0 {
			d = -d
		}
		return d <= 10
	}
	if !within(d.RGBA[0], 200) || !within(d.RGBA[1], 100) || !within(d.RGBA[2], 50) {
		t.Fatalf("decoded pixel = %v, want near {200 100 50 255}", d.RGBA[:4])
	}
}

func TestResizeChangesDimensions(t *testing.T) {
	c := NewImagingCodec()
	src := solidRGBA(10, 10, 255, 0, 0, 255)

	d, err := c.Resize(src, 10, 10, 5, 5)
	if err != nil {
		t.Fatalf("Resize() error = %v", err)
	}
	if d.Width != 5 || d.Height != 5 {
		t.Fatalf("Resize() size = %dx%d, want 5x5", d.Width, d.Height)
	}
	if len(d.RGBA) != 5*5*4 {
		t.Fatalf("len(RGBA) = %d, want %d", len(d.RGBA), 5*5*4)
	}
}

func TestDecodeBytesConvenienceWrapper(t *testing.T) {
	c := NewImagingCodec()
	want := solidRGBA(2, 2, 1, 2, 3, 255)
	var buf bytes.Buffer
	if err := c.EncodePNG(&buf, 2, 2, want); err != nil {
		t.Fatalf("EncodePNG() error = %v", err)
	}
	d, err := c.DecodeBytes(buf.Bytes())
	if err != nil {
		t.Fatalf("DecodeBytes() error = %v", err)
	}
	if d.Width != 2 || d.Height != 2 {
		t.Fatalf("DecodeBytes() size = %dx%d, want 2x2", d.Width, d.Height)
	}
}
