package fanout

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
)

type metrics struct {
	stanzas      *prometheus.CounterVec
	envelopes    *prometheus.CounterVec
	skipped      prometheus.Counter
	keyDelivered prometheus.Counter
	bundles      *prometheus.CounterVec
	decrypted    *prometheus.CounterVec
}

func newMetrics(reg prometheus.Registerer, log logrus.FieldLogger) *metrics {
	m := &metrics{
		stanzas: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "whatsapp", Subsystem: "fanout", Name: "stanzas_total",
			Help: "Message stanzas built, by destination kind.",
		}, []string{"kind"}),
		envelopes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "whatsapp", Subsystem: "fanout", Name: "envelopes_total",
			Help: "Encrypted envelopes produced, by enc type.",
		}, []string{"type"}),
		skipped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "whatsapp", Subsystem: "fanout", Name: "skipped_devices_total",
			Help: "Devices dropped from a stanza for lack of a usable session.",
		}),
		keyDelivered: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "whatsapp", Subsystem: "fanout", Name: "sender_key_deliveries_total",
			Help: "Sender-key distribution envelopes sent.",
		}),
		bundles: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "whatsapp", Subsystem: "fanout", Name: "key_bundles_total",
			Help: "Key bundles fetched, by outcome.",
		}, []string{"result"}),
		decrypted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "whatsapp", Subsystem: "fanout", Name: "decrypted_total",
			Help: "Inbound envelopes processed, by enc type and outcome.",
		}, []string{"type", "result"}),
	}
	if reg != nil {
		for _, c := range []prometheus.Collector{m.stanzas, m.envelopes, m.skipped, m.keyDelivered, m.bundles, m.decrypted} {
			if err := reg.Register(c); err != nil {
				log.WithError(err).Warn("register fanout metric")
			}
		}
	}
	return m
}
