package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"gopkg.in/yaml.v2"

	"github.com/gwillem/whatsapp-go/internal/fakeserver"
	"github.com/gwillem/whatsapp-go/internal/store"
)

type serveCommand struct {
	Listen string `short:"l" long:"listen" description:"Address to listen on" default:"127.0.0.1:8080"`
	Groups string `long:"groups" value-name:"FILE" description:"YAML file with group fixtures"`
}

func (cmd *serveCommand) Execute(args []string) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	log := logger(loadConfig())
	srv := fakeserver.New(log)
	if cmd.Groups != "" {
		groups, err := loadGroupFixtures(cmd.Groups)
		if err != nil {
			return err
		}
		for _, g := range groups {
			srv.AddGroup(g)
		}
		log.WithField("count", len(groups)).Info("loaded groups")
	}

	mux := http.NewServeMux()
	mux.Handle("/ws", srv)
	hs := &http.Server{Addr: cmd.Listen, Handler: mux, ReadHeaderTimeout: 10 * time.Second}

	go func() {
		<-ctx.Done()
		shutdown, done := context.WithTimeout(context.Background(), 5*time.Second)
		defer done()
		hs.Shutdown(shutdown)
	}()

	fmt.Printf("Relay listening on ws://%s/ws\n", cmd.Listen)
	if err := hs.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// groupFixture is the YAML form of a group served by the relay.
type groupFixture struct {
	ID           string   `yaml:"id"`
	Subject      string   `yaml:"subject"`
	Owner        string   `yaml:"owner"`
	Admins       []string `yaml:"admins"`
	Participants []string `yaml:"participants"`
}

func loadGroupFixtures(path string) ([]*store.Group, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read groups: %w", err)
	}
	var fixtures []groupFixture
	if err := yaml.UnmarshalStrict(data, &fixtures); err != nil {
		return nil, fmt.Errorf("parse groups %s: %w", path, err)
	}
	out := make([]*store.Group, 0, len(fixtures))
	for _, f := range fixtures {
		if f.ID == "" {
			return nil, fmt.Errorf("parse groups %s: group without id", path)
		}
		g := &store.Group{ID: f.ID, Subject: f.Subject, Owner: f.Owner, Creation: time.Now().Unix()}
		admins := make(map[string]bool, len(f.Admins))
		for _, a := range f.Admins {
			admins[a] = true
		}
		for _, p := range f.Participants {
			part := store.GroupParticipant{JID: p}
			if admins[p] {
				part.Admin = "admin"
			}
			if p == f.Owner {
				part.Admin = "superadmin"
			}
			g.Participants = append(g.Participants, part)
		}
		out = append(out, g)
	}
	return out, nil
}
