// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"context"
	"fmt"
	"time"

	"github.com/gophercloud/gophercloud/v2"
	"github.com/gophercloud/gophercloud/v2/openstack"
	"github.com/gophercloud/gophercloud/v2/openstack/networking/v2/extensions/external"
	"github.com/gophercloud/gophercloud/v2/openstack/networking/v2/extensions/layer3/floatingips"
	"github.com/gophercloud/gophercloud/v2/openstack/networking/v2/extensions/security/groups"
	"github.com/gophercloud/gophercloud/v2/openstack/networking/v2/networks"
	"github.com/gophercloud/gophercloud/v2/openstack/networking/v2/ports"
	"k8s.io/utils/ptr"
)

var _ Network = &neutronV2{}

// neutronV2 is a NeutronV2 client implementing the Network interface.
type neutronV2 struct {
	serviceClient *gophercloud.ServiceClient
}

func newNeutronV2(providerClient *gophercloud.ProviderClient, eo gophercloud.EndpointOpts) (*neutronV2, error) {
	nw, err := openstack.NewNetworkV2(providerClient, eo)
	if err != nil {
		return nil, fmt.Errorf("could not initialize network client: %w", err)
	}
	return &neutronV2{
		serviceClient: nw,
	}, nil
}

// ListNetworks lists all networks based on opts constraints.
func (n *neutronV2) ListNetworks(ctx context.Context, opts networks.ListOptsBuilder) ([]networks.Network, error) {
	start := time.Now()
	pages, err := networks.List(n.serviceClient, opts).AllPages(ctx)
	onCall(neutronService, start, err)
	if err != nil {
		return nil, err
	}
	return networks.ExtractNetworks(pages)
}

// NetworkIDFromName resolves the given network name or ID to a unique ID.
func (n *neutronV2) NetworkIDFromName(ctx context.Context, name string) (string, error) {
	listFunc := func(ctx context.Context) ([]networks.Network, error) {
		return n.ListNetworks(ctx, nil)
	}

	network, err := findSingleByNameOrID(ctx, listFunc,
		func(nw networks.Network) string { return nw.ID },
		func(nw networks.Network) string { return nw.Name },
		name, "network")

	return network.ID, err
}

// ExternalNetworkIDs lists the IDs of all networks with external routing.
func (n *neutronV2) ExternalNetworkIDs(ctx context.Context) ([]string, error) {
	opts := external.ListOptsExt{
		ListOptsBuilder: networks.ListOpts{},
		External:        ptr.To(true),
	}

	nws, err := n.ListNetworks(ctx, opts)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(nws))
	for _, nw := range nws {
		ids = append(ids, nw.ID)
	}
	return ids, nil
}

// ListSecurityGroups lists all security groups based on opts constraints.
func (n *neutronV2) ListSecurityGroups(ctx context.Context, opts groups.ListOpts) ([]groups.SecGroup, error) {
	start := time.Now()
	pages, err := groups.List(n.serviceClient, opts).AllPages(ctx)
	onCall(neutronService, start, err)
	if err != nil {
		return nil, err
	}
	return groups.ExtractGroups(pages)
}

// ListPorts lists all ports based on opts constraints.
func (n *neutronV2) ListPorts(ctx context.Context, opts ports.ListOptsBuilder) ([]ports.Port, error) {
	start := time.Now()
	pages, err := ports.List(n.serviceClient, opts).AllPages(ctx)
	onCall(neutronService, start, err)
	if err != nil {
		return nil, err
	}
	return ports.ExtractPorts(pages)
}

// ListFloatingIPs lists all floating IPs based on opts constraints.
func (n *neutronV2) ListFloatingIPs(ctx context.Context, opts floatingips.ListOptsBuilder) ([]floatingips.FloatingIP, error) {
	start := time.Now()
	pages, err := floatingips.List(n.serviceClient, opts).AllPages(ctx)
	onCall(neutronService, start, err)
	if err != nil {
		return nil, err
	}
	return floatingips.ExtractFloatingIPs(pages)
}

// CreateFloatingIP reserves a floating IP.
func (n *neutronV2) CreateFloatingIP(ctx context.Context, opts floatingips.CreateOptsBuilder) (*floatingips.FloatingIP, error) {
	start := time.Now()
	fip, err := floatingips.Create(ctx, n.serviceClient, opts).Extract()
	onCall(neutronService, start, err)
	if err != nil {
		return nil, err
	}
	return fip, nil
}

// DeleteFloatingIP releases the floating IP with the supplied ID. If it does not exist it returns nil.
func (n *neutronV2) DeleteFloatingIP(ctx context.Context, id string) error {
	start := time.Now()
	err := floatingips.Delete(ctx, n.serviceClient, id).ExtractErr()
	onLookup(neutronService, start, err)
	if err != nil && !IsNotFoundError(err) {
		return err
	}
	return nil
}
