package config

import (
	"errors"
	"flag"
	"net"
	"os"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// StringList is a comma separated flag value.
// It implements the flag.Value interface.
type StringList []string

// ParseFlags parses all configuration flags from os.Args.
//
// Flags:
//
//	-a HTTP server address in format [host]:[port]
//	-t access token
//	-d journal database DSN
//	-c/-config json file path with configs
//	-device target device name
//	-filter-mode strict or simple
//	-senders comma separated sender allow-list
//	-allow-commands-from comma separated device allow-list
//	-n number of notifications
//	-fetch-limit history page size
//	-sound-file audio file played on new notifications
//	-mute disable audio notifications
//	-encryption-password end-to-end encryption password
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-debug debug logging
func ParseFlags() (*StructuredConfig, error) {
	return parseFlags(os.Args[1:])
}

func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("push-mirror", flag.ContinueOnError)

	var serverAddress NetAddress
	var senders, allowedDevices StringList
	var accessToken, databaseDSN, jsonConfigPath string
	var targetDevice, filterMode, soundFile, encryptionPassword string
	var numberOfNotifications, fetchLimit int
	var requestTimeout time.Duration
	var mute, debug bool

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&accessToken, "t", "", "Access token")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&targetDevice, "device", "", "Target device name")
	fs.StringVar(&filterMode, "filter-mode", "", "Target filter mode: strict or simple")
	fs.Var(&senders, "senders", "Comma separated sender allow-list")
	fs.Var(&allowedDevices, "allow-commands-from", "Comma separated command source devices")
	fs.IntVar(&numberOfNotifications, "n", 0, "Number of notifications")
	fs.IntVar(&fetchLimit, "fetch-limit", 0, "History page size")
	fs.StringVar(&soundFile, "sound-file", "", "Notification sound file")
	fs.BoolVar(&mute, "mute", false, "Disable notification sound")
	fs.StringVar(&encryptionPassword, "encryption-password", "", "End-to-end encryption password")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.BoolVar(&debug, "debug", false, "Debug logging")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		Adapter: Adapter{
			AccessToken:        accessToken,
			RequestTimeout:     requestTimeout,
			EncryptionPassword: encryptionPassword,
		},
		Filter: Filter{
			TargetDeviceName: targetDevice,
			Mode:             filterMode,
			SenderNames:      senders,
		},
		Display: Display{
			NumberOfNotifications: numberOfNotifications,
			FetchLimit:            fetchLimit,
		},
		Commands: Commands{
			AllowedSourceDevices: allowedDevices,
		},
		Sound: Sound{
			Mute: mute,
			File: soundFile,
		},
		Server: Server{
			HTTPAddress: serverAddress.String(),
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Debug:        debug,
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}

func (l *StringList) String() string {
	return strings.Join(*l, ",")
}

// Set splits s on commas, trimming blanks and dropping empty items.
func (l *StringList) Set(s string) error {
	*l = splitList(s)
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
