package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/gwillem/whatsapp-go/internal/jid"
)

type devicesCommand struct {
	Args struct {
		User string `positional-arg-name:"user" description:"User JID (default: own account)"`
	} `positional-args:"true"`
}

func (cmd *devicesCommand) Execute(args []string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	c := loadClient(ctx)
	defer c.Close()

	user := c.Me().ToNonAD()
	if cmd.Args.User != "" {
		var err error
		if user, err = jid.Parse(cmd.Args.User); err != nil {
			return err
		}
	}
	devices, err := c.Devices(ctx, user)
	if err != nil {
		return err
	}

	fmt.Printf("Devices of %s (%d):\n", user, len(devices))
	for _, d := range devices {
		fmt.Printf("  Device %d: %s\n", d.Device, d)
	}
	return nil
}
