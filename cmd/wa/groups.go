package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	client "github.com/gwillem/whatsapp-go"
	"github.com/gwillem/whatsapp-go/internal/jid"
)

type groupsCommand struct {
	Fetch string `long:"fetch" value-name:"GROUP" description:"Fetch metadata of a group from the server first"`
}

func (cmd *groupsCommand) Execute(args []string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	var list []*client.Group
	if cmd.Fetch != "" {
		group, err := jid.Parse(cmd.Fetch)
		if err != nil {
			return err
		}
		c := loadClient(ctx)
		defer c.Close()
		g, err := c.GroupMetadata(ctx, group, true)
		if err != nil {
			return fmt.Errorf("fetch group: %w", err)
		}
		list = []*client.Group{g}
	} else {
		c := client.NewClient(clientOpts(loadConfig())...)
		defer c.Close()
		var err error
		if list, err = c.Groups(); err != nil {
			return fmt.Errorf("list groups: %w", err)
		}
	}

	if len(list) == 0 {
		fmt.Println("No groups found.")
		fmt.Println("Groups are stored when their metadata is fetched (send-group or --fetch).")
		return nil
	}

	fmt.Printf("Found %d group(s):\n\n", len(list))
	for _, g := range list {
		name := g.Subject
		if name == "" {
			name = "(unnamed)"
		}
		fmt.Printf("  %s\n", name)
		fmt.Printf("    ID:      %s\n", g.ID)
		if g.Owner != "" {
			fmt.Printf("    Owner:   %s\n", g.Owner)
		}
		if g.Creation > 0 {
			fmt.Printf("    Created: %s\n", time.Unix(g.Creation, 0).Format("2006-01-02 15:04"))
		}
		fmt.Printf("    Members: %d\n", len(g.Participants))
		for _, p := range g.Participants {
			if p.Admin != "" {
				fmt.Printf("      %s (%s)\n", p.JID, p.Admin)
			} else {
				fmt.Printf("      %s\n", p.JID)
			}
		}
		fmt.Println()
	}
	return nil
}
