package stream

import (
	"encoding/binary"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

func TestFrame_MarshalBinary(t *testing.T) {
	f := NewFrame(3)
	f.SetPixel(0, colorful.Color{R: 1, G: 0, B: 0})
	f.SetPixel(2, colorful.Color{R: 2, G: -1, B: 1})

	data, err := f.MarshalBinary()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(data) != 2+3*3 {
		t.Fatalf("Expected 11 bytes, got %d", len(data))
	}
	if n := binary.LittleEndian.Uint16(data); n != 3 {
		t.Errorf("Expected pixel count 3, got %d", n)
	}
	want := []byte{255, 0, 0, 0, 0, 0, 255, 0, 255}
	for i, b := range want {
		if data[2+i] != b {
			t.Errorf("Byte %d: expected %d, got %d", i, b, data[2+i])
		}
	}
}

func TestFrame_Tint(t *testing.T) {
	f := NewFrame(2)
	f.Fill(colorful.Color{R: 1, G: 1, B: 1})

	dim := f.Tint(colorful.Color{}, 0, 0.5)
	if got := dim.Pixel(1); got != (colorful.Color{R: 0.5, G: 0.5, B: 0.5}) {
		t.Errorf("Expected half brightness, got %v", got)
	}

	red := f.Tint(colorful.Color{R: 1}, 1, 1)
	if got := red.Pixel(0); got != (colorful.Color{R: 1}) {
		t.Errorf("Expected a full tint to replace the colour, got %v", got)
	}

	if f.Pixel(0) != (colorful.Color{R: 1, G: 1, B: 1}) {
		t.Error("Expected Tint to leave the source frame alone")
	}
}
