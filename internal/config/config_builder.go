package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"dario.cat/mergo"
)

// Default values applied to zero fields after all sources are merged.
const (
	defaultAPIAddress            = "https://api.pushbullet.com"
	defaultStreamAddress         = "wss://stream.pushbullet.com/websocket"
	defaultRequestTimeout        = 10 * time.Second
	defaultFilterMode            = FilterModeStrict
	defaultNumberOfNotifications = 3
	defaultFetchLimit            = 50
	defaultMaxHeaderCharacters   = 32
	defaultMaxMessageCharacters  = 50
	defaultShutdownCommand       = "sudo shutdown -h now"
	defaultDisplayOnCommand      = "vcgencmd display_power 1"
	defaultDisplayOffCommand     = "vcgencmd display_power 0"
	defaultCommandTimeout        = 15 * time.Second
	defaultSoundFile             = "sounds/new-message.mp3"
	defaultSoundPlayer           = "mpg123 -q"
	defaultSoundMinInterval      = 2 * time.Second
	defaultHTTPAddress           = "localhost:8080"
	defaultServerRequestTimeout  = 30 * time.Second
	defaultDSN                   = "push-mirror.db"
)

type configBuilder struct {
	configs []*StructuredConfig
	args    []string
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 4),
		args:    os.Args[1:],
	}
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	config.withDefaults()

	return config, config.validate()
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags() *configBuilder {
	flags, err := parseFlags(b.args)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, flags)
	return b
}

func (b *configBuilder) withJSON() *configBuilder {
	var jsonPath string

	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			jsonPath = cfg.JSONFilePath
		}
	}

	if jsonPath == "" {
		return b
	}

	jsonCfg, err := parseJSON(jsonPath)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	b.configs = append(b.configs, jsonCfg)

	return b
}

// withDefaults fills every zero field that has a non-zero default.
func (cfg *StructuredConfig) withDefaults() {
	setDefault(&cfg.Adapter.APIAddress, defaultAPIAddress)
	setDefault(&cfg.Adapter.StreamAddress, defaultStreamAddress)
	setDefault(&cfg.Adapter.RequestTimeout, defaultRequestTimeout)

	setDefault(&cfg.Filter.Mode, defaultFilterMode)

	setDefault(&cfg.Display.NumberOfNotifications, defaultNumberOfNotifications)
	setDefault(&cfg.Display.FetchLimit, defaultFetchLimit)
	setDefault(&cfg.Display.MaxHeaderCharacters, defaultMaxHeaderCharacters)
	setDefault(&cfg.Display.MaxMessageCharacters, defaultMaxMessageCharacters)

	setDefault(&cfg.Commands.Shutdown, defaultShutdownCommand)
	setDefault(&cfg.Commands.DisplayOn, defaultDisplayOnCommand)
	setDefault(&cfg.Commands.DisplayOff, defaultDisplayOffCommand)
	setDefault(&cfg.Commands.Timeout, defaultCommandTimeout)

	setDefault(&cfg.Sound.File, defaultSoundFile)
	setDefault(&cfg.Sound.Player, defaultSoundPlayer)
	setDefault(&cfg.Sound.MinInterval, defaultSoundMinInterval)

	setDefault(&cfg.Server.HTTPAddress, defaultHTTPAddress)
	setDefault(&cfg.Server.RequestTimeout, defaultServerRequestTimeout)

	setDefault(&cfg.Storage.DB.DSN, defaultDSN)
}

func setDefault[T comparable](field *T, value T) {
	var zero T
	if *field == zero {
		*field = value
	}
}
