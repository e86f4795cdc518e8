package relaypublisher

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/atomic"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const serviceName = "relay-publisher"

//go:generate options-gen -out-filename=service_options.gen.go -from-struct=Options
type Options struct {
	transports  []Transport   `option:"mandatory" validate:"min=1,dive,required"`
	workers     int           `default:"4" validate:"min=1,max=32"`
	queueSize   int           `default:"1024" validate:"min=1,max=100000"`
	sendTimeout time.Duration `default:"3s" validate:"min=10ms,max=1m"`
}

// Service relays accepted messages to the live channel in the background.
// Delivery is at-most-once: a full queue, a failed send or a shutdown loses the message.
type Service struct {
	Options

	jobs    chan Message
	dropped *atomic.Int64
	lg      *zap.Logger
}

func New(opts Options) (*Service, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("validate options: %v", err)
	}

	return &Service{
		Options: opts,
		jobs:    make(chan Message, opts.queueSize),
		dropped: atomic.NewInt64(0),
		lg:      zap.L().Named(serviceName),
	}, nil
}

// Publish enqueues the message and returns immediately.
// If the queue is full the message is dropped.
func (s *Service) Publish(msg Message) {
	select {
	case s.jobs <- msg:
	default:
		total := s.dropped.Inc()
		s.lg.Warn("queue is full, message dropped",
			zap.Stringer("msg_id", msg.ID),
			zap.Int64("dropped_total", total))
	}
}

// Dropped returns the number of messages lost on queue overflow.
func (s *Service) Dropped() int64 {
	return s.dropped.Load()
}

// Run drains the queue until the context is cancelled. Jobs left in the queue are lost.
func (s *Service) Run(ctx context.Context) error {
	eg, ctx := errgroup.WithContext(ctx)

	for i := 0; i < s.workers; i++ {
		logger := s.lg.With(zap.Int("worker", i+1))
		eg.Go(func() error {
			for {
				select {
				case <-ctx.Done():
					return nil
				case msg := <-s.jobs:
					s.deliver(ctx, logger, msg)
				}
			}
		})
	}

	return eg.Wait()
}

func (s *Service) deliver(ctx context.Context, log *zap.Logger, msg Message) {
	log = log.With(zap.Stringer("msg_id", msg.ID))

	for _, t := range s.transports {
		err := func() error {
			ctx, cancel := context.WithTimeout(ctx, s.sendTimeout)
			defer cancel()

			return t.Send(ctx, msg)
		}()
		if err != nil {
			log.Warn("relay message error", zap.String("transport", t.Name()), zap.Error(err))
			continue
		}
		log.Debug("message relayed", zap.String("transport", t.Name()))
	}
}

func (s *Service) Close() (err error) {
	for _, t := range s.transports {
		multierr.AppendInto(&err, t.Close())
	}
	return err
}
