// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package state

import (
	"runtime"
	"sync"
	"testing"

	"github.com/quentinv72/reth/dot/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/atomic"
)

func drainSubscription(t *testing.T, sub *Subscription) (numbers []uint64) {
	t.Helper()

	for {
		notification, err := sub.TryRecv()
		if err != nil {
			require.ErrorIs(t, err, ErrEmpty)
			return numbers
		}
		first, _ := notification.Committed().Range()
		numbers = append(numbers, first)
	}
}

func TestConcurrencySubscribeDuringPublish(t *testing.T) {
	t.Parallel()

	const numEvents = 200
	threads := runtime.NumCPU()
	factory := NewExecutedBlockFactory(30)
	bus := newTestNotificationBus(WithCapacity(numEvents))

	chains := make([]*types.Chain, numEvents)
	for i := range chains {
		chains[i] = factory.Chain(uint64(i), uint64(i)+1)
	}

	early := make([]*Subscription, threads)
	for i := range early {
		early[i] = bus.Subscribe()
	}

	begun := atomic.NewUint64(0)
	publishDone := make(chan struct{})
	go func() {
		defer close(publishDone)
		for _, chain := range chains {
			begun.Inc()
			bus.PublishCommit(chain)
		}
	}()

	type lateSubscription struct {
		sub               *Subscription
		begunBefore       uint64
		begunAfterReturns uint64
	}
	late := make([]lateSubscription, threads)

	pend := new(sync.WaitGroup)
	pend.Add(threads)
	for i := 0; i < threads; i++ {
		go func(index int) {
			defer pend.Done()

			before := begun.Load()
			sub := bus.Subscribe()
			after := begun.Load()
			late[index] = lateSubscription{
				sub:               sub,
				begunBefore:       before,
				begunAfterReturns: after,
			}
		}(i)
	}
	pend.Wait()
	<-publishDone

	assert.Equal(t, 2*threads, bus.SubscriberCount())

	for _, sub := range early {
		numbers := drainSubscription(t, sub)
		require.Len(t, numbers, numEvents)
		for i, number := range numbers {
			assert.Equal(t, uint64(i), number)
		}
	}

	for _, l := range late {
		numbers := drainSubscription(t, l.sub)

		// Publishes are sequential: when begunBefore is n, event n-2 has
		// completed so it cannot be received. Every event counted after
		// Subscribe returned must be received.
		expectedFirst := l.begunAfterReturns
		if len(numbers) > 0 {
			expectedFirst = numbers[0]
			assert.GreaterOrEqual(t, numbers[0]+1, l.begunBefore)
		}
		assert.LessOrEqual(t, expectedFirst, l.begunAfterReturns)
		for i, number := range numbers {
			assert.Equal(t, expectedFirst+uint64(i), number)
		}
		assert.Equal(t, uint64(numEvents), expectedFirst+uint64(len(numbers)))
	}
}

func TestConcurrencyDropDuringPublish(t *testing.T) {
	t.Parallel()

	const numEvents = 100
	threads := runtime.NumCPU()
	factory := NewExecutedBlockFactory(31)
	bus := newTestNotificationBus()

	subs := make([]*Subscription, threads)
	for i := range subs {
		subs[i] = bus.Subscribe()
	}

	pend := new(sync.WaitGroup)
	pend.Add(threads + 1)
	go func() {
		defer pend.Done()
		for i := 0; i < numEvents; i++ {
			bus.PublishCommit(factory.Chain(uint64(i), uint64(i)+1))
		}
	}()
	for _, sub := range subs {
		go func(sub *Subscription) {
			defer pend.Done()
			sub.Drop()
		}(sub)
	}
	pend.Wait()

	bus.PublishCommit(factory.Chain(numEvents, numEvents+1))
	assert.Equal(t, 0, bus.SubscriberCount())
}
