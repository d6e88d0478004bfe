// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package state

import (
	"context"
	"errors"
	"sync"

	"github.com/ef-ds/deque"
	"github.com/google/uuid"
)

// Subscription is the receiving end of a notification bus subscription.
// Each subscription has its own bounded queue; a full queue evicts its
// oldest notification instead of blocking the publisher.
type Subscription struct {
	id       uuid.UUID
	capacity int

	mutex  sync.Mutex
	queue  deque.Deque
	lagged uint64
	closed bool

	// signal has a buffer of one so a sender never blocks.
	signal   chan struct{}
	dropped  chan struct{}
	dropOnce sync.Once
}

func newSubscription(capacity int) *Subscription {
	return &Subscription{
		id:       uuid.New(),
		capacity: capacity,
		signal:   make(chan struct{}, 1),
		dropped:  make(chan struct{}),
	}
}

// ID returns the identity of the subscription
func (s *Subscription) ID() uuid.UUID { return s.id }

// Recv blocks until a notification is available and returns it.
// If notifications were evicted since the previous call, a *LaggedError
// is returned first and the next call resumes with the oldest retained
// notification. ErrBusClosed is returned once the bus is closed and the
// queue is drained.
func (s *Subscription) Recv(ctx context.Context) (CanonStateNotification, error) {
	for {
		notification, err := s.TryRecv()
		if !errors.Is(err, ErrEmpty) {
			return notification, err
		}

		select {
		case <-s.signal:
		case <-s.dropped:
			return nil, ErrSubscriptionDropped
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}

// TryRecv returns the next queued notification without blocking.
// It returns ErrEmpty if nothing is queued.
func (s *Subscription) TryRecv() (CanonStateNotification, error) {
	if s.isDropped() {
		return nil, ErrSubscriptionDropped
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.lagged > 0 {
		skipped := s.lagged
		s.lagged = 0
		return nil, &LaggedError{Skipped: skipped}
	}

	if element, ok := s.queue.PopFront(); ok {
		return element.(CanonStateNotification), nil
	}

	if s.closed {
		return nil, ErrBusClosed
	}
	return nil, ErrEmpty
}

// Len returns the number of queued notifications.
func (s *Subscription) Len() int {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.queue.Len()
}

// Drop discards the subscription. The bus removes it from its registry
// on the next publish. Drop is safe to call more than once.
func (s *Subscription) Drop() {
	s.dropOnce.Do(func() {
		close(s.dropped)

		s.mutex.Lock()
		defer s.mutex.Unlock()
		s.queue = deque.Deque{}
		s.lagged = 0
	})
}

func (s *Subscription) isDropped() bool {
	select {
	case <-s.dropped:
		return true
	default:
		return false
	}
}

// send queues the notification without blocking. It returns delivered
// false if the subscription was dropped, and lagged true if the oldest
// queued notification had to be evicted.
func (s *Subscription) send(notification CanonStateNotification) (delivered, lagged bool) {
	if s.isDropped() {
		return false, false
	}

	s.mutex.Lock()
	if s.queue.Len() >= s.capacity {
		s.queue.PopFront()
		s.lagged++
		lagged = true
	}
	s.queue.PushBack(notification)
	s.mutex.Unlock()

	s.wake()
	return true, lagged
}

func (s *Subscription) close() {
	s.mutex.Lock()
	s.closed = true
	s.mutex.Unlock()

	s.wake()
}

func (s *Subscription) wake() {
	select {
	case s.signal <- struct{}{}:
	default:
	}
}
