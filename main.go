package main

import (
	"context"
	"flag"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"
	"github.com/matt-g-everett/animtx/api"
	"github.com/matt-g-everett/animtx/core"
	"github.com/matt-g-everett/animtx/stream"
)

var shutdownSignals = []os.Signal{os.Interrupt, syscall.SIGTERM}

type app struct {
	Config     stream.Config
	Client     mqtt.Client
	Streamer   *stream.Streamer
	Controller *stream.Controller
}

func newApp(config stream.Config) *app {
	a := new(app)
	a.Config = config
	return a
}

func (a *app) handleOnConnect(client mqtt.Client) {
	core.LogInfo("Connected to %s", a.Config.Mqtt.URL)
	handler := stream.CalibrationHandler(a.Controller)
	if err := a.Streamer.Subscribe(a.Config.Mqtt.Topics.CalibrateClient, handler); err != nil {
		core.LogError("Subscribe to %s failed: %v", a.Config.Mqtt.Topics.CalibrateClient, err)
	}
}

func (a *app) run(ctx context.Context) error {
	if token := a.Client.Connect(); token.Wait() && token.Error() != nil {
		return token.Error()
	}
	defer a.Client.Disconnect(250)

	return a.Controller.Run(ctx)
}

func main() {
	mqtt.ERROR = log.New(os.Stderr, "mqtt ", 0)

	// Parse command line parameters
	configPath := flag.String("config", "config.yaml", "YAML or TOML config file.")
	listen := flag.String("listen", ":3000", "Address for the status API.")
	flag.Parse()

	// Read the config
	config, err := stream.LoadConfig(*configPath)
	if err != nil {
		core.LogFatal("Config: %v", err)
	}
	if err := core.SetLogLevel(config.Log.Level); err != nil {
		core.LogWarn("Log level %q: %v", config.Log.Level, err)
	}
	core.LogDebug("Config: %+v", config)

	a := newApp(config)
	options := mqtt.NewClientOptions().
		AddBroker(config.Mqtt.URL).
		SetClientID("ledtx-" + uuid.NewString()).
		SetUsername(config.Mqtt.Username).
		SetPassword(config.Mqtt.Password).
		SetKeepAlive(30 * time.Second).
		SetPingTimeout(5 * time.Second).
		SetOnConnectHandler(a.handleOnConnect)
	a.Client = mqtt.NewClient(options)
	a.Streamer = stream.NewStreamer(a.Client, config.Mqtt.Topics.Stream)

	a.Controller, err = stream.NewController(config, a.Streamer, rand.New(rand.NewSource(time.Now().UnixNano())))
	if err != nil {
		core.LogFatal("Controller: %v", err)
	}

	go func() {
		if err := api.NewApi(a.Controller).Serve(*listen); err != nil {
			core.LogError("API stopped: %v", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), shutdownSignals...)
	defer stop()

	if err := a.run(ctx); err != nil && err != context.Canceled {
		core.LogFatal("%v", err)
	}
}
