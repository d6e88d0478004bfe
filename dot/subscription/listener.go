// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package subscription

import (
	"context"
	"errors"
	"time"

	"github.com/quentinv72/reth/dot/state"
	"github.com/quentinv72/reth/internal/log"
)

const defaultCancelTimeout = time.Second * 10

var logger = log.NewFromGlobal(log.AddContext("pkg", "subscription"))

// ErrCannotCancel is returned by Stop if the listener
// does not exit before the cancel timeout.
var ErrCannotCancel = errors.New("cannot cancel listening goroutine")

// CanonStateListener drains a canonical state subscription and
// dispatches each notification to its handler.
type CanonStateListener struct {
	subscription  *state.Subscription
	handler       Handler
	cancel        context.CancelFunc
	done          chan struct{}
	cancelTimeout time.Duration
}

// NewCanonStateListener subscribes to the given notification source and
// returns a listener for it. Listen must be called to start it.
func NewCanonStateListener(source state.CanonStateSubscriptions, handler Handler) *CanonStateListener {
	return &CanonStateListener{
		subscription:  source.SubscribeToCanonicalState(),
		handler:       handler,
		done:          make(chan struct{}),
		cancelTimeout: defaultCancelTimeout,
	}
}

// Listen starts a goroutine that receives notifications until Stop is
// called or the notification bus is closed.
func (l *CanonStateListener) Listen() {
	ctx, cancel := context.WithCancel(context.Background())
	l.cancel = cancel

	go func() {
		defer func() {
			l.subscription.Drop()
			close(l.done)
		}()

		for {
			notification, err := l.subscription.Recv(ctx)
			var laggedErr *state.LaggedError
			switch {
			case err == nil:
				l.dispatch(notification)
			case errors.As(err, &laggedErr):
				logger.Debugf("subscription %s skipped %d notifications",
					l.subscription.ID(), laggedErr.Skipped)
				l.handler.HandleLag(laggedErr.Skipped)
			default:
				if !errors.Is(err, context.Canceled) {
					logger.Debugf("subscription %s stopped: %s", l.subscription.ID(), err)
				}
				return
			}
		}
	}()
}

func (l *CanonStateListener) dispatch(notification state.CanonStateNotification) {
	var err error
	switch n := notification.(type) {
	case *state.Commit:
		err = l.handler.HandleCommit(n.New)
	case *state.Reorg:
		err = l.handler.HandleReorg(n.Old, n.New)
	}

	if err != nil {
		logger.Errorf("failed to handle %s: %s", notification, err)
	}
}

// Stop cancels the listener and waits for it to exit.
// If Listen was never called, Stop only drops the subscription.
func (l *CanonStateListener) Stop() error {
	if l.cancel == nil {
		l.subscription.Drop()
		return nil
	}

	l.cancel()

	select {
	case <-l.done:
		return nil
	case <-time.After(l.cancelTimeout):
		return ErrCannotCancel
	}
}

// Done returns a channel closed once the listener has exited.
func (l *CanonStateListener) Done() <-chan struct{} {
	return l.done
}
