// SPDX-FileCopyrightText: 2021 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

// Package provider holds the integration tests running the adapter against a real OpenStack cloud.
package provider

import (
	"context"
	"fmt"
	"strings"

	"k8s.io/klog/v2"

	"github.com/gardener/provider-adapter-openstack/pkg/apis/provider"
)

// ITResourcePrefix prefixes the name of every server created by the integration tests, so leftovers of
// earlier runs can be told apart from foreign servers.
const ITResourcePrefix = "provider-adapter-it-"

// ResourcesTracker keeps track of servers left behind by integration test runs.
type ResourcesTracker struct {
	Provider provider.Interface
}

// ProbeResources returns the IDs of all servers carrying the integration test prefix.
func (r *ResourcesTracker) ProbeResources(ctx context.Context) ([]string, error) {
	nodes, err := r.Provider.Nodes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list nodes: %w", err)
	}

	var ids []string
	for _, n := range nodes {
		if strings.HasPrefix(n.Name(), ITResourcePrefix) {
			ids = append(ids, n.ID)
		}
	}
	return ids, nil
}

// IsOrphanedResourcesAvailable deletes leftover servers and reports whether any of them survived.
func (r *ResourcesTracker) IsOrphanedResourcesAvailable(ctx context.Context) (bool, error) {
	ids, err := r.ProbeResources(ctx)
	if err != nil {
		return false, err
	}

	var orphans []string
	for _, id := range ids {
		if err := r.Provider.DeallocateNode(ctx, id); err != nil {
			klog.Errorf("failed to delete orphaned node %s: %v", id, err)
			orphans = append(orphans, id)
			continue
		}
		klog.Infof("deleted orphaned node %s", id)
	}
	return len(orphans) != 0, nil
}

// UnassociatedIPs returns the IDs of floating IPs that are not bound to any port. The adapter cannot
// release floating IPs, so these stay reserved until they are reused or deleted out of band.
func (r *ResourcesTracker) UnassociatedIPs(ctx context.Context) ([]string, error) {
	addresses, err := r.Provider.Addresses(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list addresses: %w", err)
	}

	var ids []string
	for _, a := range addresses {
		if a.Attributes.GetString("port_id") == "" {
			ids = append(ids, a.ID)
		}
	}
	return ids, nil
}
