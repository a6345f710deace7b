package stream

import (
	"encoding/json"
	"math"

	"github.com/eclipse/paho.mqtt.golang"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/matt-g-everett/animtx/core"
)

// BakeCalibration renders the binary striping used to locate pixels: frame n
// lights runs of 2^(bits-n) pixels alternately, from the widest run down to
// single pixels. A camera watching the strip can recover each pixel index from
// the on/off pattern it shows across the frames.
func BakeCalibration(numPixels int) []*Frame {
	lit, _ := colorful.Hex("#404040")
	unlit, _ := colorful.Hex("#000000")

	bits := int(math.Ceil(math.Log2(float64(numPixels))))
	frames := make([]*Frame, 0, bits+1)
	for litLength := bits; litLength >= 0; litLength-- {
		f := NewFrame(numPixels)
		runLength := 1 << litLength
		for i := 0; i < numPixels; i++ {
			if (i/runLength)%2 < 1 {
				f.pixels[i] = lit
			} else {
				f.pixels[i] = unlit
			}
		}
		frames = append(frames, f)
	}

	return frames
}

// CalibrationMessage is sent by the mobile app that watches the strip.
type CalibrationMessage struct {
	Type string `json:"type"`
}

type calibrator interface {
	Calibrate() error
}

// CalibrationHandler switches c to its calibration sequence whenever a
// "start" message arrives.
func CalibrationHandler(c calibrator) mqtt.MessageHandler {
	return func(client mqtt.Client, msg mqtt.Message) {
		core.LogDebug("Received msg %d on %s: %s", msg.MessageID(), msg.Topic(), msg.Payload())

		var message CalibrationMessage
		if err := json.Unmarshal(msg.Payload(), &message); err != nil {
			core.LogWarn("Bad calibration message on %s: %v", msg.Topic(), err)
			return
		}

		if message.Type == "start" {
			if err := c.Calibrate(); err != nil {
				core.LogWarn("Could not start calibration: %v", err)
			}
		}
	}
}
