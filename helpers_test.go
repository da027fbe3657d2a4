package screenshots

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// makePNG returns a valid PNG of the given dimensions.
func makePNG(w, h int) []byte {
	var buf bytes.Buffer
	if err := png.Encode(&buf, fillImage(w, h)); err != nil {
		panic("makePNG: " + err.Error())
	}
	return buf.Bytes()
}

// makeJPEG returns a minimal valid JPEG of the given dimensions.
func makeJPEG(w, h int) []byte {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, fillImage(w, h), nil); err != nil {
		panic("makeJPEG: " + err.Error())
	}
	return buf.Bytes()
}

// makeCameraJPEG returns a JPEG of the given dimensions with an EXIF APP1
// segment carrying an ExposureTime tag, the way a camera would write it.
func makeCameraJPEG(w, h int) []byte {
	data := makeJPEG(w, h)

	app1 := buildExifAPP1()
	out := make([]byte, 0, len(data)+len(app1))
	out = append(out, data[:2]...) // SOI
	out = append(out, app1...)
	out = append(out, data[2:]...)
	return out
}

// buildExifAPP1 assembles an APP1 segment with a little-endian TIFF block:
// IFD0 holds a single ExifIFD pointer, and the Exif sub-IFD holds one
// ExposureTime rational (1/60).
func buildExifAPP1() []byte {
	var tiff bytes.Buffer
	le := binary.LittleEndian

	// TIFF header: byte order, magic, IFD0 offset.
	tiff.WriteString("II")
	binary.Write(&tiff, le, uint16(0x2A))
	binary.Write(&tiff, le, uint32(8))

	// IFD0: one entry, the ExifIFD pointer (0x8769) at offset 26.
	binary.Write(&tiff, le, uint16(1))
	binary.Write(&tiff, le, uint16(0x8769))
	binary.Write(&tiff, le, uint16(4)) // LONG
	binary.Write(&tiff, le, uint32(1))
	binary.Write(&tiff, le, uint32(26))
	binary.Write(&tiff, le, uint32(0)) // no next IFD

	// Exif sub-IFD: one entry, ExposureTime (0x829A), rational at offset 44.
	binary.Write(&tiff, le, uint16(1))
	binary.Write(&tiff, le, uint16(0x829A))
	binary.Write(&tiff, le, uint16(5)) // RATIONAL
	binary.Write(&tiff, le, uint32(1))
	binary.Write(&tiff, le, uint32(44))
	binary.Write(&tiff, le, uint32(0))

	// ExposureTime value: 1/60.
	binary.Write(&tiff, le, uint32(1))
	binary.Write(&tiff, le, uint32(60))

	payload := append([]byte("Exif\x00\x00"), tiff.Bytes()...)

	seg := []byte{0xFF, 0xE1, byte((len(payload) + 2) >> 8), byte(len(payload) + 2)}
	return append(seg, payload...)
}

// writeFile writes data under dir and returns the full path.
func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", name, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func fillImage(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: 100, G: 149, B: 237, A: 255})
		}
	}
	return img
}

// gradientImage produces a horizontal brightness ramp, which hashes far
// from any solid fill under a difference hash.
func gradientImage(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := uint8(x * 255 / max(w-1, 1))
			img.Set(x, y, color.RGBA{R: v, G: v, B: v, A: 255})
		}
	}
	return img
}
