package stream

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/matt-g-everett/animtx/smooth"
)

type streakParticle struct {
	colour    colorful.Color
	current   float64
	increment float64
	length    float64
}

func (p *streakParticle) addStreak(frame *Frame, gain float64) {
	start := max(int(math.Ceil(p.current)), 0)
	end := min(int(math.Floor(p.current+p.length)), len(frame.pixels)-1)
	for i := start; i <= end; i++ {
		frame.pixels[i] = frame.pixels[i].BlendHcl(p.colour, gain).Clamped()
	}
}

// BakeStreak renders a streak that runs the length of the strip, fading in
// over the first half of the frames and out over the second, shaped by f.
func BakeStreak(numPixels, numFrames int, length float64, colour, backColour colorful.Color, f smooth.Func) []*Frame {
	p := &streakParticle{
		colour:    colour,
		current:   -length,
		increment: (float64(numPixels) + length) / float64(numFrames),
		length:    length,
	}

	frames := make([]*Frame, numFrames)
	half := float64(numFrames) / 2
	for n := range frames {
		frame := NewFrame(numPixels)
		frame.Fill(backColour)

		progress := float64(n) / half
		if progress > 1 {
			progress = 2 - progress
		}
		p.addStreak(frame, f(progress))
		p.current += p.increment

		frames[n] = frame
	}

	return frames
}
