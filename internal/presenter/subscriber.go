package presenter

import (
	"sync"
	"sync/atomic"
)

// subscriberBuffer is the number of events a subscriber may lag behind.
const subscriberBuffer = 64

// Subscriber receives hub events until it is unsubscribed.
type Subscriber struct {
	send chan Event

	closeOnce sync.Once
	closed    atomic.Bool
}

func newSubscriber() *Subscriber {
	return &Subscriber{send: make(chan Event, subscriberBuffer)}
}

// Events returns the event channel. It is closed on unsubscribe.
func (s *Subscriber) Events() <-chan Event {
	return s.send
}

// safeSend delivers event without blocking. It returns false when the
// subscriber is closed or its buffer is full.
func (s *Subscriber) safeSend(event Event) (sent bool) {
	// close may race with the closed check below
	defer func() {
		if r := recover(); r != nil {
			sent = false
		}
	}()

	if s.closed.Load() {
		return false
	}
	select {
	case s.send <- event:
		return true
	default:
		return false
	}
}

func (s *Subscriber) close() {
	s.closeOnce.Do(func() {
		s.closed.Store(true)
		close(s.send)
	})
}
