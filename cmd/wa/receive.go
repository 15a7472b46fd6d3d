package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
)

type receiveCommand struct {
	N int `short:"n" description:"Maximum number of messages to receive (0 = unlimited)" default:"0"`
}

func (cmd *receiveCommand) Execute(args []string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	c := loadClient(ctx)
	defer c.Close()

	fmt.Println("Listening for messages... (Ctrl+C to stop)")

	count := 0
	for msg, err := range c.Receive(ctx) {
		if err != nil {
			if errors.Is(err, context.Canceled) {
				break
			}
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			continue
		}
		ts := msg.Timestamp.Format("2006-01-02 15:04:05")
		switch {
		case msg.FromMe:
			fmt.Printf("[%s] (you) → %s: %s\n", ts, msg.Chat, msg.Text)
		case msg.Chat.IsGroup():
			fmt.Printf("[%s] %s in %s: %s\n", ts, msg.Sender, msg.Chat, msg.Text)
		default:
			fmt.Printf("[%s] %s: %s\n", ts, msg.Sender, msg.Text)
		}
		count++
		if cmd.N > 0 && count >= cmd.N {
			break
		}
	}
	return nil
}
