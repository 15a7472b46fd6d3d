package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"time"

	client "github.com/gwillem/whatsapp-go"
	"github.com/gwillem/whatsapp-go/internal/fakeserver"
	"github.com/gwillem/whatsapp-go/internal/jid"
	"github.com/gwillem/whatsapp-go/internal/store"
)

const (
	selftestAlice = "111:1@s.whatsapp.net"
	selftestBob   = "222@s.whatsapp.net"
	selftestGroup = "120363000000000001@g.us"
)

type selftestCommand struct {
	Timeout time.Duration `long:"timeout" description:"Time allowed per step" default:"10s"`
}

func (cmd *selftestCommand) Execute(args []string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	log := logger(loadConfig())
	srv := fakeserver.New(log)
	srv.AddGroup(&store.Group{
		ID:      selftestGroup,
		Subject: "selftest",
		Participants: []store.GroupParticipant{
			{JID: "111@s.whatsapp.net", Admin: "superadmin"},
			{JID: selftestBob},
		},
	})
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return err
	}
	hs := &http.Server{Handler: srv, ReadHeaderTimeout: 5 * time.Second}
	go hs.Serve(ln)
	defer hs.Close()
	url := fmt.Sprintf("ws://%s/ws", ln.Addr())

	fmt.Printf("Relay running on %s\n", url)

	newClient := func(addr string) (*client.Client, error) {
		c := client.NewClient(
			client.WithKeyStore(store.NewMemory()),
			client.WithServerURL(url),
			client.WithLogger(log.WithField("device", addr)),
			client.WithPreKeyBatch(10),
		)
		if err := c.Init(ctx, jid.MustParse(addr)); err != nil {
			return nil, fmt.Errorf("init %s: %w", addr, err)
		}
		return c, nil
	}
	alice, err := newClient(selftestAlice)
	if err != nil {
		return err
	}
	defer alice.Close()
	bob, err := newClient(selftestBob)
	if err != nil {
		return err
	}
	defer bob.Close()

	steps := []struct {
		name     string
		from, to *client.Client
		dest     string
		text     string
	}{
		{"direct, new session", alice, bob, selftestBob, "hello bob"},
		{"direct, established session", bob, alice, "111@s.whatsapp.net", "hello alice"},
		{"group, sender key distribution", alice, bob, selftestGroup, "hello group"},
		{"group, existing sender key", alice, bob, selftestGroup, "hello again"},
		{"group, other sender", bob, alice, selftestGroup, "hi all"},
	}

	failed := 0
	for _, s := range steps {
		if err := selftestStep(ctx, cmd.Timeout, s.from, s.to, s.dest, s.text); err != nil {
			fmt.Printf("  FAIL %-32s %v\n", s.name, err)
			failed++
			continue
		}
		fmt.Printf("  ok   %s\n", s.name)
	}

	if failed > 0 {
		fmt.Printf("FAILED (%d of %d steps)\n", failed, len(steps))
		return fmt.Errorf("selftest failed")
	}
	fmt.Println("SUCCESS")
	return nil
}

// selftestStep sends text from one client and waits until the other has
// decrypted it.
func selftestStep(ctx context.Context, timeout time.Duration, from, to *client.Client, dest, text string) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	res, err := from.SendText(ctx, dest, text)
	if err != nil {
		return fmt.Errorf("send: %w", err)
	}
	if res.Envelopes == 0 {
		return errors.New("no envelopes sent")
	}
	for msg, err := range to.Receive(ctx) {
		if err != nil {
			return fmt.Errorf("receive: %w", err)
		}
		if msg.ID != res.ID {
			continue
		}
		if msg.Text != text {
			return fmt.Errorf("got %q, want %q", msg.Text, text)
		}
		return nil
	}
	return errors.New("receive loop ended")
}
