package fanout

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/gwillem/whatsapp-go/internal/binary"
	"github.com/gwillem/whatsapp-go/internal/jid"
	"github.com/gwillem/whatsapp-go/internal/signalrepo"
)

// EnsureSessions fetches key bundles for the devices lacking a session and
// injects them. With force, every device is refetched. It reports whether
// any bundle was fetched. A not-acceptable rejection of a batch yields no
// sessions for that batch; a bad bundle only skips its own device.
func (e *Encryptor) EnsureSessions(ctx context.Context, devices []jid.JID, force bool) (bool, error) {
	devices = dedupe(devices)
	missing := devices
	if !force {
		have, err := e.repo.HasSessions(devices)
		if err != nil {
			return false, err
		}
		missing = nil
		for _, d := range devices {
			if !have[d] {
				missing = append(missing, d)
			}
		}
	}
	if len(missing) == 0 {
		return false, nil
	}

	batches := chunk(missing, e.cfg.KeyBundleBatchSize)
	fetched := make([]int, len(batches))
	g, gctx := errgroup.WithContext(ctx)
	for i, batch := range batches {
		g.Go(func() error {
			n, err := e.fetchBundles(gctx, batch)
			fetched[i] = n
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return false, err
	}
	total := 0
	for _, n := range fetched {
		total += n
	}
	e.log.WithFields(logrus.Fields{"count": len(missing), "injected": total, "force": force}).Debug("ensured sessions")
	return total > 0, nil
}

func (e *Encryptor) fetchBundles(ctx context.Context, batch []jid.JID) (int, error) {
	resp, err := e.tr.Query(ctx, signalrepo.KeyBundleQuery(batch))
	if err == nil {
		err = binary.AssertErrorFree(&resp)
	}
	if err != nil {
		var rej *binary.ServerRejectedError
		if errors.As(err, &rej) && rej.IsNotAcceptable() {
			e.metrics.bundles.WithLabelValues("rejected").Add(float64(len(batch)))
			e.log.WithField("count", len(batch)).Debug("key bundle fetch not acceptable")
			return 0, nil
		}
		return 0, fmt.Errorf("fanout: fetch %d key bundles: %w", len(batch), err)
	}
	return e.injectBundles(resp), nil
}

// injectBundles installs every well-formed bundle in resp.
func (e *Encryptor) injectBundles(resp binary.Node) int {
	list, ok := resp.GetChildByTag("list")
	if !ok {
		return 0
	}
	injected := 0
	for _, user := range list.GetChildrenByTag("user") {
		device, bundle, err := signalrepo.ParseBundleNode(user)
		if err == nil {
			err = e.repo.InjectSession(device, bundle)
		}
		if err != nil {
			e.metrics.bundles.WithLabelValues("failed").Inc()
			e.log.WithError(err).WithField("jid", device.String()).Warn("skipping key bundle")
			continue
		}
		e.metrics.bundles.WithLabelValues("injected").Inc()
		injected++
	}
	return injected
}

func dedupe(devices []jid.JID) []jid.JID {
	seen := make(map[jid.JID]bool, len(devices))
	out := make([]jid.JID, 0, len(devices))
	for _, d := range devices {
		if !seen[d] {
			seen[d] = true
			out = append(out, d)
		}
	}
	return out
}

func chunk[T any](items []T, size int) [][]T {
	var out [][]T
	for len(items) > size {
		out = append(out, items[:size:size])
		items = items[size:]
	}
	if len(items) > 0 {
		out = append(out, items)
	}
	return out
}
