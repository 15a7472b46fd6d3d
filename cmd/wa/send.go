package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

type sendCommand struct {
	Args struct {
		Recipient string `positional-arg-name:"recipient" required:"true" description:"User JID, e.g. 31612345678@s.whatsapp.net"`
		Message   string `positional-arg-name:"message" required:"true" description:"Text message to send"`
	} `positional-args:"true" required:"true"`
}

func (cmd *sendCommand) Execute(args []string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	c := loadClient(ctx)
	defer c.Close()

	res, err := c.SendText(ctx, cmd.Args.Recipient, cmd.Args.Message)
	if err != nil {
		return err
	}
	if res.Envelopes == 0 {
		fmt.Printf("No device of %s is reachable, nothing sent\n", cmd.Args.Recipient)
		return nil
	}
	fmt.Printf("Message %s sent to %s (%d devices)\n", res.ID, cmd.Args.Recipient, res.Envelopes)
	return nil
}
