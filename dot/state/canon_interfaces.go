// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package state

// CanonStateSubscriptions is implemented by components that publish
// canonical chain changes.
type CanonStateSubscriptions interface {
	SubscribeToCanonicalState() *Subscription
}

// Metrics records notification bus activity.
type Metrics interface {
	SubscriberAdded()
	SubscribersPruned(count int)
	NotificationPublished(kind string)
	NotificationLagged()
	BusClosed(remaining int)
}

type noopMetrics struct{}

func (noopMetrics) SubscriberAdded()             {}
func (noopMetrics) SubscribersPruned(int)        {}
func (noopMetrics) NotificationPublished(string) {}
func (noopMetrics) NotificationLagged()          {}
func (noopMetrics) BusClosed(int)                {}
