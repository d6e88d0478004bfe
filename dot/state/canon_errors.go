// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package state

import (
	"errors"
	"fmt"
)

var (
	// ErrLagged is wrapped by LaggedError and can be matched with errors.Is.
	ErrLagged = errors.New("subscription lagged behind")
	// ErrBusClosed is returned by a subscription once the bus is closed
	// and every queued notification has been received.
	ErrBusClosed = errors.New("notification bus closed")
	// ErrSubscriptionDropped is returned when receiving on a dropped subscription.
	ErrSubscriptionDropped = errors.New("subscription dropped")
	// ErrEmpty is returned by TryRecv when no notification is queued.
	ErrEmpty = errors.New("no notification queued")
)

// LaggedError is returned once by a subscription whose oldest
// notifications were evicted because its queue was full.
type LaggedError struct {
	Skipped uint64
}

func (e *LaggedError) Error() string {
	return fmt.Sprintf("%s: skipped %d notifications", ErrLagged, e.Skipped)
}

// Unwrap returns ErrLagged
func (*LaggedError) Unwrap() error { return ErrLagged }
