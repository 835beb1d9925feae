// Package push provides the optional MQTT mirror transport for the
// notification hub. Deployments whose displays run the broker-based
// firmware set MQTT_BROKER_URL; everyone else gets the no-op publisher.
package push

import (
	"fmt"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/rs/zerolog/log"
)

// MQTTPublisher mirrors hub envelopes onto per-device command topics.
type MQTTPublisher struct {
	client mqtt.Client
}

// NewMQTTPublisher connects to the broker and returns a publisher the hub
// can mirror into.
func NewMQTTPublisher(brokerURL, clientID string) (*MQTTPublisher, error) {
	opts := mqtt.NewClientOptions()
	opts.AddBroker(brokerURL)
	opts.SetClientID(clientID)
	opts.OnConnect = func(mqtt.Client) {
		log.Info().Str("broker", brokerURL).Msg("connected to MQTT broker")
	}
	opts.OnConnectionLost = func(_ mqtt.Client, err error) {
		log.Error().Err(err).Msg("MQTT connection lost")
	}

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("failed to connect to MQTT broker: %w", token.Error())
	}
	return &MQTTPublisher{client: client}, nil
}

// Publish sends the payload to the device's event topic. Like the hub's
// WebSocket sends, this is best effort; failures are logged and dropped.
func (p *MQTTPublisher) Publish(deviceID string, payload []byte) {
	topic := fmt.Sprintf("displays/%s/events", deviceID)
	token := p.client.Publish(topic, 1, false, payload)
	token.Wait()
	if err := token.Error(); err != nil {
		log.Debug().Err(err).Str("device_id", deviceID).Msg("MQTT publish failed")
	}
}

// Close disconnects from the broker.
func (p *MQTTPublisher) Close() {
	p.client.Disconnect(250)
}
