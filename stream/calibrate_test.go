package stream

import (
	"errors"
	"testing"
)

type fakeMessage struct {
	payload []byte
}

func (m *fakeMessage) Duplicate() bool   { return false }
func (m *fakeMessage) Qos() byte         { return 0 }
func (m *fakeMessage) Retained() bool    { return false }
func (m *fakeMessage) Topic() string     { return "home/xmastree/calibrate/client" }
func (m *fakeMessage) MessageID() uint16 { return 1 }
func (m *fakeMessage) Payload() []byte   { return m.payload }
func (m *fakeMessage) Ack()              {}

type countingCalibrator struct {
	calls int
	err   error
}

func (c *countingCalibrator) Calibrate() error {
	c.calls++
	return c.err
}

func TestCalibrationHandler(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		calls   int
	}{
		{"start", `{"type":"start"}`, 1},
		{"other type", `{"type":"data"}`, 0},
		{"garbage", `{not json`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &countingCalibrator{}
			CalibrationHandler(c)(nil, &fakeMessage{payload: []byte(tt.payload)})
			if c.calls != tt.calls {
				t.Errorf("Expected %d calibrate calls, got %d", tt.calls, c.calls)
			}
		})
	}
}

func TestCalibrationHandler_ControllerSwitches(t *testing.T) {
	c := newTestController(t, &recordingPublisher{})
	CalibrationHandler(c)(nil, &fakeMessage{payload: []byte(`{"type":"start"}`)})
	if s := c.State(); s.Sequence != "calibrate" {
		t.Errorf("Expected calibrate, got %s", s.Sequence)
	}

	failing := &countingCalibrator{err: errors.New("busy")}
	CalibrationHandler(failing)(nil, &fakeMessage{payload: []byte(`{"type":"start"}`)})
	if failing.calls != 1 {
		t.Errorf("Expected one attempt, got %d", failing.calls)
	}
}
