package stream

import (
	"math"
)

// BakeGradientTrail renders a gradient cycling along the strip. The trail
// moves one full trail length over the frames, so the sequence loops seamlessly.
func BakeGradientTrail(gradient GradientTable, numPixels, numFrames, trailLength int) []*Frame {
	saturation := 1.0
	luminance := 0.05
	step := float64(trailLength) / float64(numFrames)

	frames := make([]*Frame, numFrames)
	current := 0.0
	for n := range frames {
		f := NewFrame(numPixels)
		for i := 0; i < numPixels; i++ {
			t := math.Mod((float64(i+numPixels)-current), float64(trailLength)) / float64(trailLength)
			f.pixels[i] = gradient.GetColor(t, saturation, luminance)
		}
		frames[n] = f

		current += step
		current = math.Mod(current, float64(trailLength))
	}

	return frames
}
