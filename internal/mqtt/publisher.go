// Package mqtt publishes completed resolutions to an MQTT broker so other
// tools (dashboards, provisioning scripts, fleet monitors) can consume the
// channel-to-frequency mapping without linking this code.
package mqtt

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"

	"github.com/large-farva/meshfreq/internal/config"
	"github.com/large-farva/meshfreq/internal/freqslot"
	"github.com/large-farva/meshfreq/internal/metrics"
)

// Publisher wraps a paho client configured from the [mqtt] config section.
type Publisher struct {
	client paho.Client
	cfg    config.MQTTConfig
	log    *log.Logger
}

// generateClientID creates a random MQTT client ID so multiple daemons can
// share one broker.
func generateClientID() string {
	b := make([]byte, 8)
	_, _ = rand.Read(b)
	return "meshfreqd_" + hex.EncodeToString(b)
}

// New connects to the broker described by cfg. Returns (nil, nil) when the
// publisher is disabled; a connection failure is an error because the
// operator explicitly asked for MQTT.
func New(cfg config.MQTTConfig, logger *log.Logger) (*Publisher, error) {
	if !cfg.Enabled {
		return nil, nil
	}

	scheme := "tcp"
	if cfg.UseTLS {
		scheme = "tls"
	}
	brokerURL := fmt.Sprintf("%s://%s:%d", scheme, cfg.Host, cfg.Port)

	opts := paho.NewClientOptions()
	opts.AddBroker(brokerURL)
	opts.SetClientID(generateClientID())
	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
	}
	if cfg.Password != "" {
		opts.SetPassword(cfg.Password)
	}

	opts.SetAutoReconnect(true)
	opts.SetConnectRetry(true)
	opts.SetConnectRetryInterval(10 * time.Second)
	opts.SetMaxReconnectInterval(60 * time.Second)
	opts.SetKeepAlive(60 * time.Second)
	opts.SetPingTimeout(10 * time.Second)
	opts.SetConnectTimeout(5 * time.Second)

	opts.SetOnConnectHandler(func(paho.Client) {
		logger.Printf("mqtt: connected to %s", brokerURL)
	})
	opts.SetConnectionLostHandler(func(_ paho.Client, err error) {
		logger.Printf("mqtt: connection lost: %v (will auto-reconnect)", err)
	})

	client := paho.NewClient(opts)
	token := client.Connect()
	if !token.WaitTimeout(10 * time.Second) {
		return nil, fmt.Errorf("mqtt: connect to %s timed out", brokerURL)
	}
	if err := token.Error(); err != nil {
		return nil, fmt.Errorf("mqtt: connect to %s: %w", brokerURL, err)
	}

	return &Publisher{client: client, cfg: cfg, log: logger}, nil
}

// Topic returns the topic a result is published on:
// <prefix>/<region>/<channel>.
func (p *Publisher) Topic(res freqslot.Result) string {
	return fmt.Sprintf("%s/%s/%s", p.cfg.TopicPrefix, res.Region.Code, res.ChannelName)
}

// PublishResult sends one resolution as JSON. Publish failures are logged
// and counted, not propagated: the resolution itself already succeeded and
// the broker is a best-effort side channel.
func (p *Publisher) PublishResult(res freqslot.Result) {
	payload, err := json.Marshal(res)
	if err != nil {
		return
	}

	token := p.client.Publish(p.Topic(res), p.cfg.QoS, false, payload)
	go func() {
		token.Wait()
		if err := token.Error(); err != nil {
			metrics.MQTTPublishFailTotal.Inc()
			p.log.Printf("mqtt: publish failed: %v", err)
			return
		}
		metrics.MQTTPublishTotal.Inc()
	}()
}

// Close disconnects from the broker, allowing in-flight publishes a brief
// window to drain.
func (p *Publisher) Close() {
	p.client.Disconnect(250)
}
