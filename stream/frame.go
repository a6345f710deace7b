package stream

import (
	"encoding/binary"

	"github.com/lucasb-eyer/go-colorful"
)

// DefaultPixels is the length of the ledrx strip.
const DefaultPixels = 500

// Frame represents a frame of RGB pixels to display on an ledrx device.
type Frame struct {
	pixels []colorful.Color
}

// NewFrame creates a black Frame of numPixels pixels.
func NewFrame(numPixels int) *Frame {
	f := new(Frame)
	f.pixels = make([]colorful.Color, numPixels)
	return f
}

func (f *Frame) Len() int {
	return len(f.pixels)
}

func (f *Frame) Pixel(i int) colorful.Color {
	return f.pixels[i]
}

func (f *Frame) SetPixel(i int, c colorful.Color) {
	f.pixels[i] = c
}

// Fill sets every pixel to c.
func (f *Frame) Fill(c colorful.Color) {
	for i := range f.pixels {
		f.pixels[i] = c
	}
}

// Tint blends every pixel towards c by amount and scales by gain into a new Frame.
func (f *Frame) Tint(c colorful.Color, amount, gain float64) *Frame {
	out := NewFrame(len(f.pixels))
	for i, p := range f.pixels {
		if amount > 0 {
			p = p.BlendRgb(c, amount)
		}
		out.pixels[i] = colorful.Color{R: p.R * gain, G: p.G * gain, B: p.B * gain}.Clamped()
	}

	return out
}

// MarshalBinary converts a Frame into binary data.
func (f *Frame) MarshalBinary() (data []byte, err error) {
	data = make([]byte, 2, (len(f.pixels)*3)+2)
	binary.LittleEndian.PutUint16(data, uint16(len(f.pixels)))
	for _, p := range f.pixels {
		r, g, b := p.Clamped().RGB255()
		data = append(data, r, g, b)
	}

	return data, nil
}
