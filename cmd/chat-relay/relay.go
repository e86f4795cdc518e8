package main

import (
	"fmt"

	"go.uber.org/multierr"

	"github.com/zestagio/chat-relay/internal/config"
	relaypublisher "github.com/zestagio/chat-relay/internal/services/relay-publisher"
)

const kafkaBatchSize = 1

func initRelayPublisher(cfg config.RelayConfig) (_ *relaypublisher.Service, errReturned error) {
	var transports []relaypublisher.Transport
	defer func() {
		if errReturned == nil {
			return
		}
		for _, t := range transports {
			errReturned = multierr.Append(errReturned, t.Close())
		}
	}()

	wsTransport, err := relaypublisher.NewWebsocketTransport(relaypublisher.NewWebsocketOptions(cfg.Websocket.URL))
	if err != nil {
		return nil, fmt.Errorf("create websocket transport: %v", err)
	}
	transports = append(transports, wsTransport)

	if cfg.Kafka.Enabled() {
		kafkaTransport, err := relaypublisher.NewKafkaTransport(relaypublisher.NewKafkaOptions(
			relaypublisher.NewKafkaWriter(cfg.Kafka.Brokers, cfg.Kafka.Topic, kafkaBatchSize),
			relaypublisher.WithEncryptKey(cfg.Kafka.EncryptKey),
		))
		if err != nil {
			return nil, fmt.Errorf("create kafka transport: %v", err)
		}
		transports = append(transports, kafkaTransport)
	}

	return relaypublisher.New(relaypublisher.NewOptions(
		transports,
		relaypublisher.WithWorkers(cfg.Workers),
		relaypublisher.WithQueueSize(cfg.QueueSize),
		relaypublisher.WithSendTimeout(cfg.SendTimeout),
	))
}
