// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package state

import (
	"sync"

	"github.com/quentinv72/reth/dot/types"
	"github.com/quentinv72/reth/internal/log"
)

// DefaultCapacity is the default number of notifications a subscription
// queues before it starts evicting the oldest one.
const DefaultCapacity = 100

const (
	commitKind = "commit"
	reorgKind  = "reorg"
)

var logger = log.NewFromGlobal(log.AddContext("pkg", "state"))

var _ CanonStateSubscriptions = (*NotificationBus)(nil)

// NotificationBus fans canonical chain notifications out to every live
// subscription. It is safe for concurrent use.
type NotificationBus struct {
	capacity int
	metrics  Metrics
	logger   log.LeveledLogger

	lock          sync.Mutex
	subscriptions []*Subscription
	closed        bool
}

// BusOption is a functional option for the notification bus.
type BusOption func(b *NotificationBus)

// WithCapacity sets the queue capacity of each subscription.
// Values below one are ignored.
func WithCapacity(capacity int) BusOption {
	return func(b *NotificationBus) {
		if capacity > 0 {
			b.capacity = capacity
		}
	}
}

// WithMetrics sets the metrics recorder of the bus.
func WithMetrics(metrics Metrics) BusOption {
	return func(b *NotificationBus) {
		b.metrics = metrics
	}
}

// WithLogger sets the logger of the bus.
func WithLogger(logger log.LeveledLogger) BusOption {
	return func(b *NotificationBus) {
		b.logger = logger
	}
}

// NewNotificationBus creates a notification bus without subscriptions.
func NewNotificationBus(options ...BusOption) *NotificationBus {
	b := &NotificationBus{
		capacity: DefaultCapacity,
		metrics:  noopMetrics{},
		logger:   logger,
	}
	for _, option := range options {
		option(b)
	}
	return b
}

// Subscribe registers a new subscription and returns it. The subscription
// receives every notification published after Subscribe returns.
func (b *NotificationBus) Subscribe() *Subscription {
	sub := newSubscription(b.capacity)

	b.lock.Lock()
	defer b.lock.Unlock()

	if b.closed {
		sub.close()
		return sub
	}

	b.subscriptions = append(b.subscriptions, sub)
	b.metrics.SubscriberAdded()
	b.logger.Tracef("registered canonical state subscription %s", sub.ID())
	return sub
}

// SubscribeToCanonicalState is Subscribe.
func (b *NotificationBus) SubscribeToCanonicalState() *Subscription {
	return b.Subscribe()
}

// PublishCommit notifies every subscription that newChain was appended
// to the canonical chain.
func (b *NotificationBus) PublishCommit(newChain *types.Chain) {
	b.publish(&Commit{New: newChain}, commitKind)
}

// PublishReorg notifies every subscription that oldChain was replaced
// by newChain.
func (b *NotificationBus) PublishReorg(oldChain, newChain *types.Chain) {
	b.publish(&Reorg{Old: oldChain, New: newChain}, reorgKind)
}

func (b *NotificationBus) publish(notification CanonStateNotification, kind string) {
	b.lock.Lock()
	defer b.lock.Unlock()

	if b.closed {
		b.logger.Warnf("dropping %s notification published on closed bus", kind)
		return
	}

	b.logger.Tracef("notifying %d canonical state subscriptions of %s...",
		len(b.subscriptions), kind)

	live := b.subscriptions[:0]
	for _, sub := range b.subscriptions {
		delivered, lagged := sub.send(notification)
		if !delivered {
			continue
		}
		if lagged {
			b.metrics.NotificationLagged()
			b.logger.Debugf("subscription %s lagged, evicted its oldest notification", sub.ID())
		}
		live = append(live, sub)
	}

	pruned := len(b.subscriptions) - len(live)
	for i := len(live); i < len(b.subscriptions); i++ {
		b.subscriptions[i] = nil
	}
	b.subscriptions = live

	if pruned > 0 {
		b.metrics.SubscribersPruned(pruned)
		b.logger.Debugf("pruned %d dropped subscriptions, %d remaining", pruned, len(live))
	}
	b.metrics.NotificationPublished(kind)
}

// SubscriberCount returns the number of registered subscriptions.
// Dropped subscriptions are counted until the next publish prunes them.
func (b *NotificationBus) SubscriberCount() int {
	b.lock.Lock()
	defer b.lock.Unlock()
	return len(b.subscriptions)
}

// Close closes every subscription and empties the registry. Receivers
// drain their queued notifications and then get ErrBusClosed.
func (b *NotificationBus) Close() {
	b.lock.Lock()
	defer b.lock.Unlock()

	if b.closed {
		return
	}
	b.closed = true

	for _, sub := range b.subscriptions {
		sub.close()
	}
	b.metrics.BusClosed(len(b.subscriptions))
	b.logger.Debugf("closed notification bus with %d subscriptions", len(b.subscriptions))
	b.subscriptions = nil
}
