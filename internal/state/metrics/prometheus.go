// Copyright 2022 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package metrics

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "canonstate"

// Prometheus records notification bus activity as Prometheus metrics.
type Prometheus struct {
	subscribers prometheus.Gauge
	published   *prometheus.CounterVec
	pruned      prometheus.Counter
	lagged      prometheus.Counter
}

// NewPrometheus creates the notification bus metrics and registers them
// on the given registerer. Collectors already registered are reused.
func NewPrometheus(registerer prometheus.Registerer) (metrics *Prometheus, err error) {
	metrics = new(Prometheus)

	metrics.subscribers = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "subscribers",
		Help:      "number of canonical state subscriptions registered on the bus",
	})
	metrics.subscribers, err = register(registerer, "subscribers gauge", metrics.subscribers)
	if err != nil {
		return nil, err
	}

	metrics.published = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_published_total",
		Help:      "canonical state notifications published, by kind",
	}, []string{"kind"})
	metrics.published, err = register(registerer, "published counter", metrics.published)
	if err != nil {
		return nil, err
	}

	metrics.pruned = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "subscribers_pruned_total",
		Help:      "dropped subscriptions removed from the bus while publishing",
	})
	metrics.pruned, err = register(registerer, "pruned counter", metrics.pruned)
	if err != nil {
		return nil, err
	}

	metrics.lagged = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_lagged_total",
		Help:      "notifications evicted from full subscription queues",
	})
	metrics.lagged, err = register(registerer, "lagged counter", metrics.lagged)
	if err != nil {
		return nil, err
	}

	return metrics, nil
}

func register[T prometheus.Collector](registerer prometheus.Registerer, name string, collector T) (T, error) {
	err := registerer.Register(collector)
	if err == nil {
		return collector, nil
	}

	var alreadyRegistered prometheus.AlreadyRegisteredError
	if errors.As(err, &alreadyRegistered) {
		existing, ok := alreadyRegistered.ExistingCollector.(T)
		if ok {
			return existing, nil
		}
	}

	var zero T
	return zero, fmt.Errorf("cannot register %s: %w", name, err)
}

// SubscriberAdded increments the subscribers gauge.
func (p *Prometheus) SubscriberAdded() {
	p.subscribers.Inc()
}

// SubscribersPruned records subscriptions removed because they were dropped.
func (p *Prometheus) SubscribersPruned(count int) {
	p.subscribers.Sub(float64(count))
	p.pruned.Add(float64(count))
}

// NotificationPublished counts a published notification of the given kind.
func (p *Prometheus) NotificationPublished(kind string) {
	p.published.WithLabelValues(kind).Inc()
}

// NotificationLagged counts a notification evicted from a full queue.
func (p *Prometheus) NotificationLagged() {
	p.lagged.Inc()
}

// BusClosed removes the remaining subscriptions from the gauge.
func (p *Prometheus) BusClosed(remaining int) {
	p.subscribers.Sub(float64(remaining))
}
