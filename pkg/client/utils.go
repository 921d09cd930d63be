// SPDX-FileCopyrightText: 2021 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"context"
	"fmt"
	"time"

	"github.com/gardener/provider-adapter-openstack/pkg/apis/cloudprovider"
	"github.com/gardener/provider-adapter-openstack/pkg/metrics"
)

const (
	novaService    = "nova"
	neutronService = "neutron"
	glanceService  = "glance"
)

// onCall records a finished request to the specified service. Every error counts as a failure.
func onCall(service string, start time.Time, err error) {
	metrics.ObserveRequest(cloudprovider.ProviderName, service, start, err != nil)
}

// onLookup records a finished request to the specified service where a missing resource is an expected answer.
func onLookup(service string, start time.Time, err error) {
	metrics.ObserveRequest(cloudprovider.ProviderName, service, start, err != nil && !IsNotFoundError(err))
}

// findSingleByNameOrID returns the single item whose ID equals target or, failing that, the single item
// named target.
func findSingleByNameOrID[T any](
	ctx context.Context,
	listFunc func(context.Context) ([]T, error),
	getID func(T) string,
	getName func(T) string,
	target string,
	kind string,
) (T, error) {
	var zero T

	allItems, err := listFunc(ctx)
	if err != nil {
		return zero, fmt.Errorf("listing %ss failed: %w", kind, err)
	}

	var matches []T
	for _, item := range allItems {
		if getID(item) == target {
			return item, nil
		}
		if getName(item) == target {
			matches = append(matches, item)
		}
	}

	switch len(matches) {
	case 0:
		return zero, fmt.Errorf("no %s found with name or ID %q: %w", kind, target, ErrNotFound)
	case 1:
		return matches[0], nil
	default:
		return zero, fmt.Errorf("%d %ss found with name %q: %w", len(matches), kind, target, ErrMultipleFound)
	}
}
