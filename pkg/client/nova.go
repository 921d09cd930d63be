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
	"github.com/gophercloud/gophercloud/v2/openstack/compute/v2/flavors"
	"github.com/gophercloud/gophercloud/v2/openstack/compute/v2/servers"
)

var _ Compute = &novaV2{}

// novaV2 is a NovaV2 client implementing the Compute interface.
type novaV2 struct {
	serviceClient *gophercloud.ServiceClient
}

func newNovaV2(providerClient *gophercloud.ProviderClient, eo gophercloud.EndpointOpts) (*novaV2, error) {
	compute, err := openstack.NewComputeV2(providerClient, eo)
	if err != nil {
		return nil, fmt.Errorf("could not initialize compute client: %w", err)
	}

	return &novaV2{
		serviceClient: compute,
	}, nil
}

// CreateServer creates a server.
func (c *novaV2) CreateServer(ctx context.Context, opts servers.CreateOptsBuilder, hintOpts servers.SchedulerHintOptsBuilder) (*servers.Server, error) {
	start := time.Now()
	server, err := servers.Create(ctx, c.serviceClient, opts, hintOpts).Extract()
	onCall(novaService, start, err)
	if err != nil {
		return nil, err
	}
	return server, nil
}

// GetServer fetches server data from the supplied ID.
func (c *novaV2) GetServer(ctx context.Context, id string) (*servers.Server, error) {
	start := time.Now()
	server, err := servers.Get(ctx, c.serviceClient, id).Extract()
	onLookup(novaService, start, err)
	if err != nil {
		return nil, err
	}
	return server, nil
}

// ListServers lists all servers based on opts constraints.
func (c *novaV2) ListServers(ctx context.Context, opts servers.ListOptsBuilder) ([]servers.Server, error) {
	start := time.Now()
	pages, err := servers.List(c.serviceClient, opts).AllPages(ctx)
	onCall(novaService, start, err)
	if err != nil {
		return nil, err
	}
	return servers.ExtractServers(pages)
}

// DeleteServer deletes a server with the supplied ID.
func (c *novaV2) DeleteServer(ctx context.Context, id string) error {
	start := time.Now()
	err := servers.Delete(ctx, c.serviceClient, id).ExtractErr()
	onLookup(novaService, start, err)
	return err
}

// ListFlavors lists all flavors with their details.
func (c *novaV2) ListFlavors(ctx context.Context, opts flavors.ListOptsBuilder) ([]flavors.Flavor, error) {
	start := time.Now()
	pages, err := flavors.ListDetail(c.serviceClient, opts).AllPages(ctx)
	onCall(novaService, start, err)
	if err != nil {
		return nil, err
	}
	return flavors.ExtractFlavors(pages)
}

// FlavorIDFromName resolves the given flavor name or ID to a unique ID.
func (c *novaV2) FlavorIDFromName(ctx context.Context, name string) (string, error) {
	listFunc := func(ctx context.Context) ([]flavors.Flavor, error) {
		return c.ListFlavors(ctx, nil)
	}

	flavor, err := findSingleByNameOrID(ctx, listFunc,
		func(f flavors.Flavor) string { return f.ID },
		func(f flavors.Flavor) string { return f.Name },
		name, "flavor")

	return flavor.ID, err
}
