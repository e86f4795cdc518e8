package inmemeventstream

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	eventstream "github.com/zestagio/chat-relay/internal/services/event-stream"
)

const (
	serviceName = "event-stream"

	subscriberBufferSize = 1024
)

var _ eventstream.EventStream = (*Service)(nil)

// Service broadcasts every published event to all current subscribers.
// A subscriber that cannot keep up loses events instead of slowing down the others.
type Service struct {
	wg sync.WaitGroup

	mu     sync.RWMutex
	subs   map[uint64]chan eventstream.Event
	nextID uint64

	closeOnce sync.Once
	closeCh   chan struct{}

	lg *zap.Logger
}

func New() *Service {
	return &Service{
		subs:    make(map[uint64]chan eventstream.Event),
		closeCh: make(chan struct{}),
		lg:      zap.L().Named(serviceName),
	}
}

// Subscribe returns a channel of events that is closed when ctx is done or the stream is closed.
func (s *Service) Subscribe(ctx context.Context) (<-chan eventstream.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	select {
	case <-s.closeCh:
		return nil, eventstream.ErrStreamClosed
	default:
	}

	id := s.nextID
	s.nextID++

	in := make(chan eventstream.Event, subscriberBufferSize)
	out := make(chan eventstream.Event)
	s.subs[id] = in

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer close(out)
		defer s.unsubscribe(id)

		for {
			select {
			case <-ctx.Done():
				return
			case <-s.closeCh:
				return
			case ev := <-in:
				if ctx.Err() != nil {
					return
				}
				select {
				case out <- ev:
				case <-ctx.Done():
					return
				case <-s.closeCh:
					return
				}
			}
		}
	}()

	s.lg.Info("subscribed to events", zap.Uint64("sub_id", id))

	return out, nil
}

func (s *Service) Publish(_ context.Context, event eventstream.Event) error {
	select {
	case <-s.closeCh:
		return eventstream.ErrStreamClosed
	default:
	}

	if err := event.Validate(); err != nil {
		return fmt.Errorf("validate event: %v", err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.subs) == 0 {
		s.lg.Debug("no subscribers for publish")
		return nil
	}

	for id, ch := range s.subs {
		select {
		case ch <- event:
		default:
			s.lg.Warn("subscriber is too slow, event dropped", zap.Uint64("sub_id", id))
		}
	}

	return nil
}

// Subscribers returns the number of active subscriptions.
func (s *Service) Subscribers() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.subs)
}

func (s *Service) Close() error {
	s.closeOnce.Do(func() {
		close(s.closeCh)
	})

	s.wg.Wait()

	s.lg.Info("event stream is closed")
	return nil
}

func (s *Service) unsubscribe(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.subs, id)
	s.lg.Info("subscriber is offline", zap.Uint64("sub_id", id))
}
