package handlers

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"testing"
)

// testPNG encodes a small solid-color image as PNG bytes
func testPNG(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: 200, G: 220, B: 255, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("Failed to encode test PNG: %v", err)
	}
	return buf.Bytes()
}

func TestDecodeImageDataURL(t *testing.T) {
	imageBytes := testPNG(t, 4, 4)
	valid := "data:image/png;base64," + base64.StdEncoding.EncodeToString(imageBytes)

	decoded, err := decodeImageDataURL(valid)
	if err != nil {
		t.Fatalf("decodeImageDataURL() error = %v", err)
	}
	if !bytes.Equal(decoded, imageBytes) {
		t.Error("decoded bytes differ from the original image")
	}

	tests := []struct {
		name    string
		dataURL string
	}{
		{"empty", ""},
		{"no data url", "just-some-text"},
		{"wrong media type", "data:text/plain;base64,aGFsbG8="},
		{"missing comma", "data:image/png;base64"},
		{"invalid base64", "data:image/png;base64,!!!not-base64!!!"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := decodeImageDataURL(tt.dataURL); err == nil {
				t.Error("decodeImageDataURL() error = nil, want error")
			}
		})
	}
}

func TestRenderSnapshotPDF(t *testing.T) {
	tests := []struct {
		name   string
		width  int
		height int
	}{
		{"wide snapshot", 400, 100},
		{"tall snapshot", 100, 400},
		{"square snapshot", 200, 200},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pdfBytes, err := renderSnapshotPDF(testPNG(t, tt.width, tt.height))
			if err != nil {
				t.Fatalf("renderSnapshotPDF() error = %v", err)
			}
			if !bytes.HasPrefix(pdfBytes, []byte("%PDF")) {
				t.Error("output does not start with a PDF header")
			}
		})
	}
}

func TestRenderSnapshotPDFRejectsGarbage(t *testing.T) {
	if _, err := renderSnapshotPDF([]byte("definitely not a png")); err == nil {
		t.Error("renderSnapshotPDF() error = nil, want error for invalid PNG")
	}
}
