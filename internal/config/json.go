package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk JSON layout of [StructuredConfig].
type StructuredJSONConfig struct {
	Adapter struct {
		AccessToken        string   `json:"access_token"`
		APIAddress         string   `json:"api_address"`
		StreamAddress      string   `json:"stream_address"`
		RequestTimeout     Duration `json:"request_timeout"`
		EncryptionPassword string   `json:"encryption_password"`
	} `json:"adapter,omitempty"`

	Filter struct {
		TargetDeviceName string   `json:"target_device_name"`
		Mode             string   `json:"mode"`
		ExcludeBroadcast bool     `json:"exclude_broadcast"`
		SenderNames      []string `json:"sender_names"`
		ShowDismissed    bool     `json:"show_dismissed"`
	} `json:"filter,omitempty"`

	Display struct {
		NumberOfNotifications int  `json:"number_of_notifications"`
		FetchLimit            int  `json:"fetch_limit"`
		MaxHeaderCharacters   int  `json:"max_header_characters"`
		MaxMessageCharacters  int  `json:"max_message_characters"`
		SkipInitialLoad       bool `json:"skip_initial_load"`
	} `json:"display,omitempty"`

	Features struct {
		DisablePushes               bool `json:"disable_pushes"`
		DisableMirrors              bool `json:"disable_mirrors"`
		DisableSMS                  bool `json:"disable_sms"`
		ShowIndividualNotifications bool `json:"show_individual_notifications"`
		OnlyLastPerApp              bool `json:"only_last_per_app"`
	} `json:"features,omitempty"`

	Commands struct {
		AllowedSourceDevices []string `json:"allowed_source_devices"`
		Shutdown             string   `json:"shutdown"`
		DisplayOn            string   `json:"display_on"`
		DisplayOff           string   `json:"display_off"`
		Timeout              Duration `json:"timeout"`
	} `json:"commands,omitempty"`

	Sound struct {
		Mute        bool     `json:"mute"`
		File        string   `json:"file"`
		Player      string   `json:"player"`
		MinInterval Duration `json:"min_interval"`
	} `json:"sound,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
		AllowedOrigins []string `json:"allowed_origins"`
	} `json:"server,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Debug bool `json:"debug"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Adapter: Adapter{
			AccessToken:        jsonCfg.Adapter.AccessToken,
			APIAddress:         jsonCfg.Adapter.APIAddress,
			StreamAddress:      jsonCfg.Adapter.StreamAddress,
			RequestTimeout:     time.Duration(jsonCfg.Adapter.RequestTimeout),
			EncryptionPassword: jsonCfg.Adapter.EncryptionPassword,
		},
		Filter: Filter{
			TargetDeviceName: jsonCfg.Filter.TargetDeviceName,
			Mode:             jsonCfg.Filter.Mode,
			ExcludeBroadcast: jsonCfg.Filter.ExcludeBroadcast,
			SenderNames:      jsonCfg.Filter.SenderNames,
			ShowDismissed:    jsonCfg.Filter.ShowDismissed,
		},
		Display: Display{
			NumberOfNotifications: jsonCfg.Display.NumberOfNotifications,
			FetchLimit:            jsonCfg.Display.FetchLimit,
			MaxHeaderCharacters:   jsonCfg.Display.MaxHeaderCharacters,
			MaxMessageCharacters:  jsonCfg.Display.MaxMessageCharacters,
			SkipInitialLoad:       jsonCfg.Display.SkipInitialLoad,
		},
		Features: Features{
			DisablePushes:               jsonCfg.Features.DisablePushes,
			DisableMirrors:              jsonCfg.Features.DisableMirrors,
			DisableSMS:                  jsonCfg.Features.DisableSMS,
			ShowIndividualNotifications: jsonCfg.Features.ShowIndividualNotifications,
			OnlyLastPerApp:              jsonCfg.Features.OnlyLastPerApp,
		},
		Commands: Commands{
			AllowedSourceDevices: jsonCfg.Commands.AllowedSourceDevices,
			Shutdown:             jsonCfg.Commands.Shutdown,
			DisplayOn:            jsonCfg.Commands.DisplayOn,
			DisplayOff:           jsonCfg.Commands.DisplayOff,
			Timeout:              time.Duration(jsonCfg.Commands.Timeout),
		},
		Sound: Sound{
			Mute:        jsonCfg.Sound.Mute,
			File:        jsonCfg.Sound.File,
			Player:      jsonCfg.Sound.Player,
			MinInterval: time.Duration(jsonCfg.Sound.MinInterval),
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
			AllowedOrigins: jsonCfg.Server.AllowedOrigins,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Debug:        jsonCfg.Debug,
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
