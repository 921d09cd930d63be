// SPDX-FileCopyrightText: SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"context"

	"github.com/gophercloud/gophercloud/v2/openstack/compute/v2/flavors"
	"github.com/gophercloud/gophercloud/v2/openstack/compute/v2/servers"
	"github.com/gophercloud/gophercloud/v2/openstack/image/v2/images"
	"github.com/gophercloud/gophercloud/v2/openstack/networking/v2/extensions/layer3/floatingips"
	"github.com/gophercloud/gophercloud/v2/openstack/networking/v2/extensions/security/groups"
	"github.com/gophercloud/gophercloud/v2/openstack/networking/v2/networks"
	"github.com/gophercloud/gophercloud/v2/openstack/networking/v2/ports"
)

// Compute is an interface for communication with Nova service.
type Compute interface {
	// CreateServer creates a server.
	CreateServer(ctx context.Context, opts servers.CreateOptsBuilder, hintOpts servers.SchedulerHintOptsBuilder) (*servers.Server, error)
	// GetServer fetches server data from the supplied ID.
	GetServer(ctx context.Context, id string) (*servers.Server, error)
	// ListServers lists all servers based on opts constraints.
	ListServers(ctx context.Context, opts servers.ListOptsBuilder) ([]servers.Server, error)
	// DeleteServer deletes a server with the supplied ID.
	DeleteServer(ctx context.Context, id string) error

	// ListFlavors lists all flavors with their details.
	ListFlavors(ctx context.Context, opts flavors.ListOptsBuilder) ([]flavors.Flavor, error)
	// FlavorIDFromName resolves the given flavor name or ID to a unique ID.
	FlavorIDFromName(ctx context.Context, name string) (string, error)
}

// Network is an interface for communication with Neutron service.
type Network interface {
	// ListNetworks lists all networks based on opts constraints.
	ListNetworks(ctx context.Context, opts networks.ListOptsBuilder) ([]networks.Network, error)
	// NetworkIDFromName resolves the given network name or ID to a unique ID.
	NetworkIDFromName(ctx context.Context, name string) (string, error)
	// ExternalNetworkIDs lists the IDs of all networks with external routing.
	ExternalNetworkIDs(ctx context.Context) ([]string, error)

	// ListSecurityGroups lists all security groups based on opts constraints.
	ListSecurityGroups(ctx context.Context, opts groups.ListOpts) ([]groups.SecGroup, error)

	// ListPorts lists all ports based on opts constraints.
	ListPorts(ctx context.Context, opts ports.ListOptsBuilder) ([]ports.Port, error)

	// ListFloatingIPs lists all floating IPs based on opts constraints.
	ListFloatingIPs(ctx context.Context, opts floatingips.ListOptsBuilder) ([]floatingips.FloatingIP, error)
	// CreateFloatingIP reserves a floating IP.
	CreateFloatingIP(ctx context.Context, opts floatingips.CreateOptsBuilder) (*floatingips.FloatingIP, error)
	// DeleteFloatingIP releases the floating IP with the supplied ID. If it does not exist it returns nil.
	DeleteFloatingIP(ctx context.Context, id string) error
}

// Image is an interface for communication with Glance service.
type Image interface {
	// ListImages lists all images based on opts constraints.
	ListImages(ctx context.Context, opts images.ListOptsBuilder) ([]images.Image, error)
	// ImageIDFromName resolves the given image name or ID to a unique ID.
	ImageIDFromName(ctx context.Context, name string) (string, error)
}
