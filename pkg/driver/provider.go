// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

// Package driver contains the OpenStack implementation of the provider capability interface.
package driver

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/gophercloud/gophercloud/v2/openstack/compute/v2/flavors"
	"github.com/gophercloud/gophercloud/v2/openstack/compute/v2/servers"
	"github.com/gophercloud/gophercloud/v2/openstack/image/v2/images"
	"github.com/gophercloud/gophercloud/v2/openstack/networking/v2/extensions/layer3/floatingips"
	"github.com/gophercloud/gophercloud/v2/openstack/networking/v2/extensions/security/groups"
	"github.com/gophercloud/gophercloud/v2/openstack/networking/v2/networks"

	"github.com/gardener/provider-adapter-openstack/pkg/apis/provider"
	"github.com/gardener/provider-adapter-openstack/pkg/client"
	"github.com/gardener/provider-adapter-openstack/pkg/driver/executor"
)

var (
	_ provider.Interface = &OpenStackDriver{}
	_ Backend            = &executor.Executor{}
)

// Backend is the OpenStack client the driver delegates to.
type Backend interface {
	ListServers(ctx context.Context) ([]servers.Server, error)
	GetServer(ctx context.Context, id string) (*servers.Server, error)
	CreateServer(ctx context.Context, opts executor.ServerOpts) (*servers.Server, error)
	DeleteServer(ctx context.Context, id string, opts executor.DeleteServerOpts) error
	WaitForServerStatus(ctx context.Context, id string, pending, target []string, timeout time.Duration) error

	ListFlavors(ctx context.Context) ([]flavors.Flavor, error)
	ListImages(ctx context.Context) ([]images.Image, error)
	ListNetworks(ctx context.Context) ([]networks.Network, error)
	ListSecurityGroups(ctx context.Context) ([]groups.SecGroup, error)

	ListFloatingIPs(ctx context.Context) ([]floatingips.FloatingIP, error)
	AvailableFloatingIP(ctx context.Context, floatingNetwork string) (*floatingips.FloatingIP, error)
}

// OpenStackDriver implements provider.Interface on top of a Backend.
type OpenStackDriver struct {
	backend Backend
	closer  io.Closer
}

// NewOpenStackDriver returns a new instance of the OpenStack driver. closer is called by Close and may be nil.
func NewOpenStackDriver(backend Backend, closer io.Closer) *OpenStackDriver {
	return &OpenStackDriver{
		backend: backend,
		closer:  closer,
	}
}

// NewOpenStackDriverFromFactory returns a driver that uses the clients of factory. Closing the driver closes
// the factory.
func NewOpenStackDriverFromFactory(factory *client.Factory) (*OpenStackDriver, error) {
	ex, err := executor.NewExecutor(factory)
	if err != nil {
		return nil, fmt.Errorf("failed to construct executor: %w", err)
	}
	return NewOpenStackDriver(ex, factory), nil
}

// Close releases the backend connection.
func (p *OpenStackDriver) Close() error {
	if p.closer == nil {
		return nil
	}
	return p.closer.Close()
}
