package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	client "github.com/gwillem/whatsapp-go"
	"github.com/gwillem/whatsapp-go/internal/config"
	"github.com/gwillem/whatsapp-go/internal/jid"
)

type initCommand struct {
	Save bool `long:"save-config" description:"Write the effective configuration to the config file"`
	Args struct {
		JID string `positional-arg-name:"jid" required:"true" description:"Device JID, e.g. 31612345678:1@s.whatsapp.net"`
	} `positional-args:"true" required:"true"`
}

func (cmd *initCommand) Execute(args []string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	me, err := jid.Parse(cmd.Args.JID)
	if err != nil {
		return err
	}
	cfg := loadConfig()
	c := client.NewClient(clientOpts(cfg)...)
	defer c.Close()
	if err := c.Init(ctx, me); err != nil {
		return err
	}

	if cmd.Save {
		path := opts.Config
		if path == "" {
			path = config.DefaultPath()
		}
		if err := cfg.Save(path); err != nil {
			return err
		}
		fmt.Printf("Configuration written to %s\n", path)
	}
	fmt.Printf("Initialized %s (database %s)\n", c.Me(), cfg.DBPath)
	return nil
}

// loadClient opens the stored device and connects, exiting on failure.
func loadClient(ctx context.Context) *client.Client {
	c := client.NewClient(clientOpts(loadConfig())...)
	if err := c.Load(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return c
}
