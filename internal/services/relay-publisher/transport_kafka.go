package relaypublisher

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/zestagio/chat-relay/internal/logger"
)

const kafkaTransportName = "kafka"

type KafkaWriter interface {
	io.Closer
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

func NewKafkaWriter(brokers []string, topic string, batchSize int) KafkaWriter {
	return &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		BatchSize:    batchSize,
		RequiredAcks: kafka.RequireOne,
		Async:        false,
		Logger:       logger.NewKafkaAdapted().WithServiceName(serviceName),
		ErrorLogger:  logger.NewKafkaAdapted().WithServiceName(serviceName).ForErrors(),
	}
}

//go:generate options-gen -out-filename=transport_kafka_options.gen.go -from-struct=KafkaOptions
type KafkaOptions struct {
	wr           KafkaWriter `option:"mandatory" validate:"required"`
	encryptKey   string      `validate:"omitempty,hexadecimal"`
	nonceFactory func(size int) ([]byte, error)
}

// KafkaTransport writes messages to a topic keyed by message id.
// Values are sealed with AES-GCM when an encryption key is set, the nonce prefixes the ciphertext.
type KafkaTransport struct {
	wr           KafkaWriter
	cipher       cipher.AEAD
	nonceFactory func(size int) ([]byte, error)
}

func NewKafkaTransport(opts KafkaOptions) (*KafkaTransport, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("validate options: %v", err)
	}
	if opts.nonceFactory == nil {
		opts.nonceFactory = defaultNonceFactory
	}

	var aeadCipher cipher.AEAD
	if key := opts.encryptKey; key != "" {
		key, err := hex.DecodeString(key)
		if err != nil {
			return nil, fmt.Errorf("decode encryption key from HEX: %v", err)
		}

		aesBlockCipher, err := aes.NewCipher(key)
		if err != nil {
			return nil, fmt.Errorf("build AES cipher: %v", err)
		}

		aeadCipher, err = cipher.NewGCM(aesBlockCipher)
		if err != nil {
			return nil, fmt.Errorf("build AEAD cipher: %v", err)
		}
	}

	log := zap.L().Named(serviceName).With(zap.String("transport", kafkaTransportName))
	if aeadCipher == nil {
		log.Info("encryption disabled")
	} else {
		log.Info("encryption enabled")
	}

	return &KafkaTransport{
		wr:           opts.wr,
		cipher:       aeadCipher,
		nonceFactory: opts.nonceFactory,
	}, nil
}

func (t *KafkaTransport) Name() string {
	return kafkaTransportName
}

func (t *KafkaTransport) Send(ctx context.Context, msg Message) error {
	value, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("json marshal error: %v", err)
	}

	if t.cipher != nil {
		nonce, err := t.nonceFactory(t.cipher.NonceSize())
		if err != nil {
			return fmt.Errorf("create nonce error: %v", err)
		}
		value = t.cipher.Seal(nonce, nonce, value, nil)
	}

	key, err := msg.ID.MarshalText()
	if err != nil {
		return fmt.Errorf("marshal message id error: %v", err)
	}

	if err := t.wr.WriteMessages(ctx, kafka.Message{Key: key, Value: value}); err != nil {
		return fmt.Errorf("produce message error: %v", err)
	}
	return nil
}

func (t *KafkaTransport) Close() error {
	return t.wr.Close()
}

func defaultNonceFactory(size int) (nonce []byte, err error) {
	nonce = make([]byte, size)
	_, err = rand.Read(nonce)
	return nonce, err
}
