// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

// Package metrics holds the Prometheus collectors of the OpenStack adapter.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	namespace         = "provider_adapter"
	cloudAPISubsystem = "cloud_api"
)

var (
	// APIRequestCount is the number of cloud service API requests, partitioned by provider and service.
	APIRequestCount = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: cloudAPISubsystem,
		Name:      "requests_total",
		Help:      "Number of Cloud Service API requests, partitioned by provider, and service.",
	}, []string{"provider", "service"},
	)

	// APIFailedRequestCount is the number of failed cloud service API requests, partitioned by provider and service.
	APIFailedRequestCount = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: cloudAPISubsystem,
		Name:      "requests_failed_total",
		Help:      "Number of Failed Cloud Service API requests, partitioned by provider, and service.",
	}, []string{"provider", "service"},
	)

	// APIRequestDuration is the latency of cloud service API requests, partitioned by provider and service.
	APIRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: cloudAPISubsystem,
		Name:      "request_duration_seconds",
		Help:      "Latency of Cloud Service API requests, partitioned by provider, and service.",
		Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30},
	}, []string{"provider", "service"},
	)
)

// Collectors returns every collector of this package.
func Collectors() []prometheus.Collector {
	return []prometheus.Collector{APIRequestCount, APIFailedRequestCount, APIRequestDuration}
}

// ObserveRequest records a finished request against service. Failures are counted only when failed is set.
func ObserveRequest(provider, service string, start time.Time, failed bool) {
	labels := prometheus.Labels{"provider": provider, "service": service}
	APIRequestCount.With(labels).Inc()
	APIRequestDuration.With(labels).Observe(time.Since(start).Seconds())
	if failed {
		APIFailedRequestCount.With(labels).Inc()
	}
}

func init() {
	prometheus.MustRegister(Collectors()...)
}
