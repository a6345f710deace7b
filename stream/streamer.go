package stream

import (
	"github.com/eclipse/paho.mqtt.golang"
)

// A Publisher sends frames to a device.
type Publisher interface {
	Publish(f *Frame) error
}

// Streamer that streams RGB data frames to an ledrx device over MQTT.
type Streamer struct {
	client mqtt.Client
	topic  string
}

// NewStreamer creates an instance of a Streamer publishing to topic.
func NewStreamer(client mqtt.Client, topic string) *Streamer {
	s := new(Streamer)
	s.client = client
	s.topic = topic
	return s
}

// Publish sends a frame as binary over MQTT and waits for delivery.
func (s *Streamer) Publish(f *Frame) error {
	b, err := f.MarshalBinary()
	if err != nil {
		return err
	}
	token := s.client.Publish(s.topic, 2, false, b)
	token.Wait()
	return token.Error()
}

// Subscribe registers handler for messages on topic.
func (s *Streamer) Subscribe(topic string, handler mqtt.MessageHandler) error {
	token := s.client.Subscribe(topic, 0, handler)
	token.Wait()
	return token.Error()
}
