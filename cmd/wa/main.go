// Command wa is a CLI for the whatsapp-go client.
//
// Usage:
//
//	wa init <jid>                Create credentials for a device and upload pre-keys
//	wa send <to> <msg>           Send a text message
//	wa send-group <group> <msg>  Send a text message to a group
//	wa receive                   Receive and print incoming messages
//	wa serve                     Run a local relay server
//	wa selftest                  Exercise the fan-out against an in-process relay
package main

import (
	"fmt"
	"os"

	flags "github.com/jessevdk/go-flags"
	"github.com/sirupsen/logrus"

	client "github.com/gwillem/whatsapp-go"
	"github.com/gwillem/whatsapp-go/internal/config"
)

type globalOpts struct {
	Config  string `short:"c" long:"config" description:"Path to the YAML config file"`
	DB      string `long:"db" description:"Path to database file"`
	Server  string `short:"s" long:"server" description:"Relay websocket URL"`
	Verbose bool   `short:"v" long:"verbose" description:"Enable debug logging"`

	Init      initCommand      `command:"init" description:"Create credentials for a device and upload pre-keys"`
	Send      sendCommand      `command:"send" description:"Send a text message"`
	SendGroup sendGroupCommand `command:"send-group" description:"Send a text message to a group"`
	Receive   receiveCommand   `command:"receive" description:"Receive and print incoming messages"`
	Devices   devicesCommand   `command:"devices" description:"List the devices of a user"`
	Groups    groupsCommand    `command:"groups" description:"List known groups, or fetch one"`
	Serve     serveCommand     `command:"serve" description:"Run a local relay server"`
	SelfTest  selftestCommand  `command:"selftest" description:"Exercise the fan-out against an in-process relay"`
}

var opts globalOpts

func main() {
	parser := flags.NewParser(&opts, flags.Default)
	parser.SubcommandsOptional = false

	_, err := parser.Parse()
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}
}

// loadConfig reads the config file and applies command line overrides.
func loadConfig() config.Config {
	path := opts.Config
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if opts.DB != "" {
		cfg.DBPath = opts.DB
	}
	if opts.Server != "" {
		cfg.ServerURL = opts.Server
	}
	if opts.Verbose {
		cfg.LogLevel = "debug"
	}
	return cfg
}

func logger(cfg config.Config) *logrus.Logger {
	return cfg.Logger(os.Stderr)
}

func clientOpts(cfg config.Config) []client.Option {
	return []client.Option{
		client.WithDBPath(cfg.DBPath),
		client.WithServerURL(cfg.ServerURL),
		client.WithLogger(logger(cfg)),
		client.WithDeviceCacheTTL(cfg.DeviceCacheTTL),
		client.WithEncryptConcurrency(cfg.EncryptConcurrency),
		client.WithQueryTimeout(cfg.QueryTimeout),
		client.WithPreKeyBatch(cfg.PreKeyBatch),
	}
}
