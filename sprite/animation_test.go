package sprite

import (
	"errors"
	"math"
	"testing"

	"github.com/matt-g-everett/animtx/core"
)

func newTestAnimation(t *testing.T, n int, fps float64, style Style) *Animation[string] {
	t.Helper()
	frames := make([]string, n)
	for i := range frames {
		frames[i] = string(rune('a' + i))
	}
	a, err := NewAnimation(frames, fps, style)
	if err != nil {
		t.Fatalf("Failed to create animation: %v", err)
	}
	return a
}

func TestNewAnimation_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		frames []int
		fps    float64
		opts   []Option
	}{
		{"no frames", nil, 8, nil},
		{"zero fps", []int{1}, 0, nil},
		{"negative fps", []int{1}, -3, nil},
		{"zero units", []int{1}, 8, []Option{WithUnitsPerSecond(0)}},
		{"infinite fps", []int{1, 2, 3}, math.Inf(1), nil},
		{"NaN fps", []int{1}, math.NaN(), nil},
		{"infinite units", []int{1}, 8, []Option{WithUnitsPerSecond(math.Inf(1))}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewAnimation(tt.frames, tt.fps, Loop, tt.opts...)
			if !errors.Is(err, core.ErrInvalidConfiguration) {
				t.Errorf("Expected ErrInvalidConfiguration, got %v", err)
			}
		})
	}
}

func TestAnimation_Durations(t *testing.T) {
	a := newTestAnimation(t, 4, 8, Loop)
	if a.FrameDuration() != 125 {
		t.Errorf("Expected frame duration 125, got %v", a.FrameDuration())
	}
	if a.TotalDuration() != 500 {
		t.Errorf("Expected total duration 500, got %v", a.TotalDuration())
	}

	secs, _ := NewAnimation([]int{1, 2}, 4, Loop, WithUnitsPerSecond(1))
	if secs.FrameDuration() != 0.25 {
		t.Errorf("Expected frame duration 0.25s, got %v", secs.FrameDuration())
	}
}

func TestAnimation_LoopScenario(t *testing.T) {
	a := newTestAnimation(t, 4, 8, Loop)
	a.Play()
	a.Update(100)
	if a.Index() != 0 {
		t.Errorf("Expected frame 0 after 100, got %d", a.Index())
	}
	a.Update(50)
	if a.Index() != 1 {
		t.Errorf("Expected frame 1 after 150, got %d", a.Index())
	}
	if a.Frame() != "b" {
		t.Errorf("Expected frame b, got %s", a.Frame())
	}
}

func TestAnimation_LoopWrapIdempotence(t *testing.T) {
	steps := [][]float64{
		{500},
		{250, 250},
		{100, 400, 1000},
		{3 * 500},
		{1, 2, 3, 494},
	}

	for _, deltas := range steps {
		a := newTestAnimation(t, 4, 8, Loop)
		a.Play()
		a.Update(260)
		before := a.Index()
		for _, dt := range deltas {
			a.Update(dt)
		}
		if a.Index() != before {
			t.Errorf("Deltas %v: expected frame %d, got %d", deltas, before, a.Index())
		}
	}
}

func TestAnimation_LoopLargeDelta(t *testing.T) {
	a := newTestAnimation(t, 4, 8, Loop)
	a.Play()
	a.Update(500*1000 + 375)
	if a.Index() != 3 {
		t.Errorf("Expected frame 3, got %d", a.Index())
	}
	if a.Elapsed() != 375 {
		t.Errorf("Expected elapsed 375, got %v", a.Elapsed())
	}
}

func TestAnimation_PausedUpdateIsNoop(t *testing.T) {
	a := newTestAnimation(t, 4, 8, Loop)
	a.Update(300)
	if a.Index() != 0 || a.Elapsed() != 0 {
		t.Errorf("Expected no progress before Play, got frame %d elapsed %v", a.Index(), a.Elapsed())
	}

	a.Play()
	a.Update(300)
	a.Pause()
	a.Update(300)
	if a.Index() != 2 || a.Elapsed() != 300 {
		t.Errorf("Expected frame 2 elapsed 300, got frame %d elapsed %v", a.Index(), a.Elapsed())
	}

	a.Play()
	a.Update(125)
	if a.Index() != 3 {
		t.Errorf("Expected Play to resume from frame 2, got %d", a.Index())
	}
}

func TestAnimation_EndStyles(t *testing.T) {
	tests := []struct {
		style     Style
		wantIndex int
	}{
		{PauseAtEnd, 3},
		{ResetAtEnd, 0},
	}

	for _, tt := range tests {
		t.Run(tt.style.String(), func(t *testing.T) {
			a := newTestAnimation(t, 4, 8, tt.style)
			var completed []*Animation[string]
			a.OnComplete(func(done *Animation[string]) {
				completed = append(completed, done)
			})
			a.Play()

			a.Update(400)
			if a.Index() != 3 || !a.Playing() {
				t.Fatalf("Expected frame 3 and playing, got frame %d playing %v", a.Index(), a.Playing())
			}

			a.Update(100)
			if a.Index() != 3 || !a.Playing() {
				t.Errorf("Expected exact end to hold the last frame, got frame %d playing %v", a.Index(), a.Playing())
			}

			a.Update(1)
			if a.Index() != tt.wantIndex {
				t.Errorf("Expected frame %d, got %d", tt.wantIndex, a.Index())
			}
			if a.Playing() {
				t.Error("Expected playback to stop")
			}
			if len(completed) != 1 || completed[0] != a {
				t.Errorf("Expected one completion with the animation, got %v", completed)
			}

			elapsed := a.Elapsed()
			for _, dt := range []float64{0, 10, 1e6} {
				a.Update(dt)
			}
			if a.Index() != tt.wantIndex || a.Elapsed() != elapsed || a.Playing() || len(completed) != 1 {
				t.Errorf("Expected updates after completion to be no-ops")
			}
		})
	}
}

func TestAnimation_Reset(t *testing.T) {
	a := newTestAnimation(t, 4, 8, Loop)
	a.Play()
	a.Update(300)
	a.Reset()

	if a.Playing() {
		t.Error("Expected Reset to pause")
	}
	if a.Index() != 0 || a.Elapsed() != 0 {
		t.Errorf("Expected frame 0 elapsed 0, got frame %d elapsed %v", a.Index(), a.Elapsed())
	}
}

func TestAnimation_FrameAt(t *testing.T) {
	a := newTestAnimation(t, 4, 8, Loop)
	a.Play()
	a.Update(260)

	tests := []struct {
		k    int
		want string
	}{
		{0, "c"},
		{1, "d"},
		{2, "a"},
		{5, "d"},
		{-1, "b"},
		{-3, "d"},
	}
	for _, tt := range tests {
		if got := a.FrameAt(tt.k); got != tt.want {
			t.Errorf("FrameAt(%d): expected %s, got %s", tt.k, tt.want, got)
		}
	}
}

func TestAnimation_FrameAtWrapsAfterCompletion(t *testing.T) {
	a := newTestAnimation(t, 4, 8, PauseAtEnd)
	a.Play()
	a.Update(510)

	if a.Frame() != "d" {
		t.Errorf("Expected the last frame, got %s", a.Frame())
	}
	// elapsed 510 sits in slot 4, which wraps to frame a
	if got := a.FrameAt(1); got != "b" {
		t.Errorf("Expected FrameAt(1) to wrap to b, got %s", got)
	}
}

func TestParseStyle(t *testing.T) {
	for _, s := range []Style{Loop, PauseAtEnd, ResetAtEnd} {
		got, err := ParseStyle(s.String())
		if err != nil || got != s {
			t.Errorf("Expected %v, got %v (%v)", s, got, err)
		}
	}
	if _, err := ParseStyle("bounce"); !errors.Is(err, core.ErrKeyNotFound) {
		t.Errorf("Expected ErrKeyNotFound, got %v", err)
	}
}
