package inmemeventstream_test

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/goleak"

	eventstream "github.com/zestagio/chat-relay/internal/services/event-stream"
	inmemeventstream "github.com/zestagio/chat-relay/internal/services/event-stream/in-mem"
	"github.com/zestagio/chat-relay/internal/testingh"
	"github.com/zestagio/chat-relay/internal/types"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type ServiceSuite struct {
	testingh.ContextSuite
	stream *inmemeventstream.Service
}

func TestServiceSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.ContextSuite.SetupTest()
	s.stream = inmemeventstream.New()
}

func (s *ServiceSuite) TearDownTest() {
	s.ContextSuite.TearDownTest()
	s.NoError(s.stream.Close())
}

func (s *ServiceSuite) TestSimpleSubscription() {
	// Arrange.
	ctx, cancel := context.WithCancel(s.Ctx)
	defer cancel()

	events, err := s.stream.Subscribe(ctx)
	s.Require().NoError(err)

	bodies := []string{"Hello", "World", "!"}
	result := readNewMessageEvents(events, len(bodies))

	// Action.
	for _, b := range bodies {
		s.Require().NoError(s.stream.Publish(ctx, newMessageEvent(b)))
	}

	// Assert.
	s.Equal([]string{"Hello", "World", "!"}, <-result)
}

func (s *ServiceSuite) TestEventIsBroadcastToAllSubscribers() {
	// Arrange.
	const (
		subsCount     = 3
		messagesCount = 5
	)

	results := make([]<-chan []string, 0, subsCount)
	for i := 0; i < subsCount; i++ {
		events, err := s.stream.Subscribe(s.Ctx)
		s.Require().NoError(err)
		results = append(results, readNewMessageEvents(events, messagesCount))
	}
	s.Equal(subsCount, s.stream.Subscribers())

	// Action.
	expected := make([]string, 0, messagesCount)
	for i := 0; i < messagesCount; i++ {
		v := strconv.Itoa(i)
		s.Require().NoError(s.stream.Publish(s.Ctx, newMessageEvent(v)))
		expected = append(expected, v)
	}

	// Assert.
	for _, r := range results {
		select {
		case msgs := <-r:
			s.Equal(expected, msgs)
		case <-time.After(time.Second):
			s.FailNow("lost events")
		}
	}
}

func (s *ServiceSuite) TestPublishInvalidEvent() {
	events, err := s.stream.Subscribe(s.Ctx)
	s.Require().NoError(err)

	for name, ev := range map[string]eventstream.Event{
		"not filled": &eventstream.NewMessageEvent{},
		"no sender":  eventstream.NewNewMessageEvent(types.NewEventID(), types.NewMessageID(), "", "hi", time.Now()),
		"no body":    eventstream.NewNewMessageEvent(types.NewEventID(), types.NewMessageID(), "bob", "", time.Now()),
		"no id":      eventstream.NewNewMessageEvent(types.EventIDNil, types.NewMessageID(), "bob", "hi", time.Now()),
	} {
		s.Run(name, func() {
			s.Require().Error(s.stream.Publish(s.Ctx, ev))
		})
	}

	select {
	case ev := <-events:
		s.FailNow("unexpected event", ev)
	case <-time.After(100 * time.Millisecond):
	}
}

func (s *ServiceSuite) TestPublishWithoutSubscribers() {
	s.Run("no subscriptions at all", func() {
		err := s.stream.Publish(s.Ctx, newMessageEvent("Hello"))
		s.Require().NoError(err)
	})

	s.Run("subscribers come and go", func() {
		// Arrange.
		subscribe := func() (<-chan []string, context.CancelFunc) {
			ctx, cancel := context.WithCancel(s.Ctx)

			events, err := s.stream.Subscribe(ctx)
			s.Require().NoError(err)

			return readNewMessageEvents(events, -1), func() {
				time.Sleep(10 * time.Millisecond)
				before := s.stream.Subscribers()
				cancel()
				s.Eventually(func() bool {
					return s.stream.Subscribers() == before-1
				}, time.Second, time.Millisecond)
			}
		}

		publish := func(v string) {
			s.Require().NoError(s.stream.Publish(s.Ctx, newMessageEvent(v)))
		}

		// Action.
		sub1, cancel1 := subscribe()
		publish("1")

		sub2, cancel2 := subscribe()
		publish("2")

		sub3, cancel3 := subscribe()
		publish("3")

		cancel3()
		publish("4")

		cancel2()
		publish("5")

		cancel1()
		publish("6")

		// Assert.
		s.Equal([]string{"1", "2", "3", "4", "5"}, <-sub1)
		s.Equal([]string{"2", "3", "4"}, <-sub2)
		s.Equal([]string{"3"}, <-sub3)
		s.Equal(0, s.stream.Subscribers())
	})
}

func (s *ServiceSuite) TestSlowSubscriberDoesNotBlockPublish() {
	// Arrange.
	const eventsCount = 3000

	slow, err := s.stream.Subscribe(s.Ctx)
	s.Require().NoError(err)

	fast, err := s.stream.Subscribe(s.Ctx)
	s.Require().NoError(err)
	fastResult := readNewMessageEvents(fast, -1)

	// Action.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < eventsCount; i++ {
			s.NoError(s.stream.Publish(s.Ctx, newMessageEvent(strconv.Itoa(i))))
			if i%500 == 0 {
				// Let the fast reader catch up.
				time.Sleep(5 * time.Millisecond)
			}
		}
	}()

	// Assert.
	select {
	case <-done:
	case <-time.After(3 * time.Second):
		s.FailNow("publish is blocked by a slow subscriber")
	}

	s.Require().NoError(s.stream.Close())

	var slowReceived int
	for range slow {
		slowReceived++
	}
	s.Less(slowReceived, eventsCount)
	s.NotEmpty(<-fastResult)
}

func (s *ServiceSuite) TestClose() {
	events, err := s.stream.Subscribe(s.Ctx)
	s.Require().NoError(err)

	s.Require().NoError(s.stream.Close())

	_, ok := <-events
	s.False(ok)

	_, err = s.stream.Subscribe(s.Ctx)
	s.Require().ErrorIs(err, eventstream.ErrStreamClosed)
	s.Require().ErrorIs(s.stream.Publish(s.Ctx, newMessageEvent("late")), eventstream.ErrStreamClosed)

	// Second close is a no-op.
	s.Require().NoError(s.stream.Close())
}

// readNewMessageEvents reads n events from the stream.
// If n is negative, then the function reads the stream until it is closed.
func readNewMessageEvents(stream <-chan eventstream.Event, n int) <-chan []string {
	result := make(chan []string, 1)
	var msgs []string // No preallocation, n can be negative.
	go func() {
		for ev := range stream {
			msgs = append(msgs, ev.(*eventstream.NewMessageEvent).Body)
			if n != -1 && len(msgs) == n {
				break
			}
		}
		result <- msgs
	}()
	return result
}

func newMessageEvent(body string) eventstream.Event {
	return eventstream.NewNewMessageEvent(
		types.NewEventID(),
		types.NewMessageID(),
		"bob",
		body,
		time.Now(),
	)
}
