package stream

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/matt-g-everett/animtx/core"
	"github.com/matt-g-everett/animtx/smooth"
	"github.com/matt-g-everett/animtx/sprite"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v2"
)

// MqttConfig holds broker settings. The credentials can be overridden from
// LEDTX_MQTT_URL, LEDTX_MQTT_USERNAME and LEDTX_MQTT_PASSWORD.
type MqttConfig struct {
	URL      string `yaml:"url" toml:"url" envconfig:"MQTT_URL"`
	Username string `yaml:"username" toml:"username" envconfig:"MQTT_USERNAME"`
	Password string `yaml:"password" toml:"password" envconfig:"MQTT_PASSWORD"`
	Topics   struct {
		Stream          string `yaml:"stream" toml:"stream"`
		CalibrateClient string `yaml:"calibrateClient" toml:"calibrateClient"`
	} `yaml:"topics" toml:"topics" ignored:"true"`
}

// SequenceConfig describes one baked frame sequence.
type SequenceConfig struct {
	Name   string  `yaml:"name" toml:"name"`
	Kind   string  `yaml:"kind" toml:"kind"` // gradient, twinkle, streak or calibrate
	Frames int     `yaml:"frames" toml:"frames"`
	FPS    float64 `yaml:"fps" toml:"fps"`
	Style  string  `yaml:"style" toml:"style"`
	// Then names the sequence to switch to when this one completes.
	Then string `yaml:"then" toml:"then"`
}

type Config struct {
	Log struct {
		Level string `yaml:"level" toml:"level"`
	} `yaml:"log" toml:"log"`
	Mqtt   MqttConfig `yaml:"mqtt" toml:"mqtt"`
	Pixels int        `yaml:"pixels" toml:"pixels"`
	Tick   struct {
		IntervalMs int `yaml:"intervalMs" toml:"intervalMs"`
		// CycleSecs switches to the next looping sequence every so often. 0 disables.
		CycleSecs float64 `yaml:"cycleSecs" toml:"cycleSecs"`
	} `yaml:"tick" toml:"tick"`
	Colours struct {
		Fore string `yaml:"fore" toml:"fore"`
		Back string `yaml:"back" toml:"back"`
		Tint string `yaml:"tint" toml:"tint"`
	} `yaml:"colours" toml:"colours"`
	Curve     string           `yaml:"curve" toml:"curve"`
	Initial   string           `yaml:"initial" toml:"initial"`
	Sequences []SequenceConfig `yaml:"sequences" toml:"sequences"`
	Fade      struct {
		Floor      float64 `yaml:"floor" toml:"floor"`
		DurationMs float64 `yaml:"durationMs" toml:"durationMs"`
		Curve      string  `yaml:"curve" toml:"curve"`
	} `yaml:"fade" toml:"fade"`
}

// DefaultConfig returns the settings used for anything a config file leaves out.
func DefaultConfig() Config {
	var c Config
	c.Log.Level = "info"
	c.Mqtt.Topics.Stream = "home/xmastree/stream"
	c.Mqtt.Topics.CalibrateClient = "home/xmastree/calibrate/client"
	c.Pixels = DefaultPixels
	c.Tick.IntervalMs = 33
	c.Tick.CycleSecs = 300
	c.Colours.Fore = "#808080"
	c.Colours.Back = "#000005"
	c.Colours.Tint = "#100505"
	c.Curve = "inOutQuad"
	c.Initial = "twinkle"
	c.Sequences = []SequenceConfig{
		{Name: "twinkle", Kind: "twinkle", Frames: 48, FPS: 24, Style: "loop"},
		{Name: "gradient", Kind: "gradient", Frames: 90, FPS: 30, Style: "loop"},
		{Name: "streak", Kind: "streak", Frames: 60, FPS: 30, Style: "pause", Then: "twinkle"},
		{Name: "calibrate", Kind: "calibrate", FPS: 5, Style: "pause", Then: "twinkle"},
	}
	c.Fade.Floor = 0.1
	c.Fade.DurationMs = 1500
	c.Fade.Curve = "sin"
	return c
}

// LoadConfig reads a YAML or TOML config file over the defaults and then
// applies environment overrides.
func LoadConfig(path string) (Config, error) {
	c := DefaultConfig()

	f, err := os.Open(path)
	if err != nil {
		return c, err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = toml.NewDecoder(f).Decode(&c)
	default:
		err = yaml.NewDecoder(f).Decode(&c)
	}
	if err != nil {
		return c, fmt.Errorf("decode %s: %w", path, err)
	}

	if err := envconfig.Process("ledtx", &c.Mqtt); err != nil {
		return c, fmt.Errorf("environment: %w", err)
	}

	return c, c.Validate()
}

// Validate checks that the config can build a Controller.
func (c Config) Validate() error {
	invalid := func(format string, args ...interface{}) error {
		return fmt.Errorf("config: %s: %w", fmt.Sprintf(format, args...), core.ErrInvalidConfiguration)
	}

	if c.Pixels <= 0 || c.Pixels > 0xffff {
		return invalid("pixels %d", c.Pixels)
	}
	if c.Tick.IntervalMs <= 0 {
		return invalid("tick interval %dms", c.Tick.IntervalMs)
	}
	if !finite(c.Tick.CycleSecs) || c.Tick.CycleSecs < 0 {
		return invalid("cycle %vs", c.Tick.CycleSecs)
	}
	for _, hex := range []string{c.Colours.Fore, c.Colours.Back, c.Colours.Tint} {
		if _, err := colorful.Hex(hex); err != nil {
			return invalid("colour %q", hex)
		}
	}
	if _, err := smooth.ByName(c.Curve); err != nil {
		return invalid("curve: %v", err)
	}
	if _, err := smooth.ByName(c.Fade.Curve); err != nil {
		return invalid("fade curve: %v", err)
	}
	if !finite(c.Fade.DurationMs) || c.Fade.DurationMs <= 0 || !(c.Fade.Floor >= 0 && c.Fade.Floor <= 1) {
		return invalid("fade to %v over %vms", c.Fade.Floor, c.Fade.DurationMs)
	}
	if len(c.Sequences) == 0 {
		return invalid("no sequences")
	}

	names := make(map[string]bool, len(c.Sequences))
	for _, s := range c.Sequences {
		if s.Name == "" || names[s.Name] {
			return invalid("sequence name %q missing or repeated", s.Name)
		}
		names[s.Name] = true

		switch s.Kind {
		case "gradient", "twinkle", "streak":
			if s.Frames <= 0 {
				return invalid("sequence %s frames %d", s.Name, s.Frames)
			}
		case "calibrate":
		default:
			return invalid("sequence %s kind %q", s.Name, s.Kind)
		}
		if !finite(s.FPS) || s.FPS <= 0 {
			return invalid("sequence %s fps %v", s.Name, s.FPS)
		}
		if _, err := sprite.ParseStyle(s.Style); err != nil {
			return invalid("sequence %s: %v", s.Name, err)
		}
	}
	for _, s := range c.Sequences {
		if s.Then != "" && !names[s.Then] {
			return invalid("sequence %s then %q", s.Name, s.Then)
		}
	}
	if !names[c.Initial] {
		return invalid("initial sequence %q", c.Initial)
	}

	return nil
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
