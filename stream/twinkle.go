package stream

import (
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/matt-g-everett/animtx/smooth"
	"github.com/matt-g-everett/animtx/util"
)

type twinkleParticle struct {
	pixel  int
	phase  int
	colour colorful.Color
}

// BakeTwinkle renders numParticles random pixels that swell from backColour to
// a randomly desaturated foreColour and back, shaped by f. Each particle
// starts at a random phase of the cycle.
func BakeTwinkle(r *rand.Rand, numPixels, numFrames, numParticles int, foreColour, backColour colorful.Color, f smooth.Func) []*Frame {
	lut := util.GenerateLut(numFrames, f)

	h, c, l := foreColour.Hcl()
	particles := make([]twinkleParticle, numParticles)
	for i := range particles {
		particles[i] = twinkleParticle{
			pixel:  r.Intn(numPixels),
			phase:  r.Intn(numFrames),
			colour: colorful.Hcl(h, c*util.RandomiseSaturation(r, 0.6, 1.0), l),
		}
	}

	frames := make([]*Frame, numFrames)
	for n := range frames {
		frame := NewFrame(numPixels)
		frame.Fill(backColour)
		for _, p := range particles {
			gain := lut[(n+p.phase)%numFrames]
			frame.pixels[p.pixel] = backColour.BlendHcl(p.colour, gain).Clamped()
		}
		frames[n] = frame
	}

	return frames
}
