package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/gwillem/whatsapp-go/internal/jid"
)

type sendGroupCommand struct {
	Args struct {
		GroupID string `positional-arg-name:"group" required:"true" description:"Group JID, e.g. 120363000000000000@g.us"`
		Message string `positional-arg-name:"message" required:"true" description:"Text message to send"`
	} `positional-args:"true" required:"true"`
}

func (cmd *sendGroupCommand) Execute(args []string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	group, err := jid.Parse(cmd.Args.GroupID)
	if err != nil {
		return err
	}
	if !group.IsGroup() {
		return fmt.Errorf("%s is not a group", group)
	}

	c := loadClient(ctx)
	defer c.Close()

	meta, err := c.GroupMetadata(ctx, group, false)
	if err != nil {
		return fmt.Errorf("group metadata: %w", err)
	}
	name := meta.Subject
	if name == "" {
		name = group.User
	}
	fmt.Printf("Sending to group %q...\n", name)

	res, err := c.SendText(ctx, group.String(), cmd.Args.Message)
	if err != nil {
		return err
	}
	fmt.Printf("Message %s sent to group %q (%d members, %d envelopes)\n",
		res.ID, name, len(meta.Participants), res.Envelopes)
	return nil
}
