// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package executor

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/gophercloud/gophercloud/v2/openstack/compute/v2/flavors"
	"github.com/gophercloud/gophercloud/v2/openstack/compute/v2/servers"
	"github.com/gophercloud/gophercloud/v2/openstack/image/v2/images"
	"github.com/gophercloud/gophercloud/v2/openstack/networking/v2/extensions/layer3/floatingips"
	"github.com/gophercloud/gophercloud/v2/openstack/networking/v2/extensions/security/groups"
	"github.com/gophercloud/gophercloud/v2/openstack/networking/v2/networks"
	"github.com/gophercloud/gophercloud/v2/openstack/networking/v2/ports"
	"k8s.io/apimachinery/pkg/util/wait"
	"k8s.io/klog/v2"

	"github.com/gardener/provider-adapter-openstack/pkg/apis/cloudprovider"
	"github.com/gardener/provider-adapter-openstack/pkg/client"
)

// Executor concentrates the logic of the OpenStack calls behind the capabilities of the adapter.
type Executor struct {
	Compute client.Compute
	Network client.Network
	Image   client.Image
}

// ServerOpts describes a server to create. Image, Flavor and Network can be given by name or ID.
type ServerOpts struct {
	Name    string
	Image   string
	Flavor  string
	Network string
	// Extra is merged into the server create request body as is.
	Extra map[string]interface{}
}

// DeleteServerOpts controls the cleanup performed along a server deletion.
type DeleteServerOpts struct {
	// DeleteIPs releases every floating IP bound to a port of the server.
	DeleteIPs bool
}

// NewExecutor returns a new instance of Executor.
func NewExecutor(factory *client.Factory) (*Executor, error) {
	computeClient, err := factory.Compute()
	if err != nil {
		klog.Errorf("failed to create compute client for executor")
		return nil, err
	}
	networkClient, err := factory.Network()
	if err != nil {
		klog.Errorf("failed to create network client for executor")
		return nil, err
	}
	imageClient, err := factory.Image()
	if err != nil {
		klog.Errorf("failed to create image client for executor")
		return nil, err
	}

	ex := &Executor{
		Compute: computeClient,
		Network: networkClient,
		Image:   imageClient,
	}
	return ex, nil
}

// ListServers lists all servers of the project.
func (ex *Executor) ListServers(ctx context.Context) ([]servers.Server, error) {
	return ex.Compute.ListServers(ctx, servers.ListOpts{})
}

// GetServer fetches the current state of the server with the supplied ID.
func (ex *Executor) GetServer(ctx context.Context, id string) (*servers.Server, error) {
	return ex.Compute.GetServer(ctx, id)
}

// ListFlavors lists all flavors with their details.
func (ex *Executor) ListFlavors(ctx context.Context) ([]flavors.Flavor, error) {
	return ex.Compute.ListFlavors(ctx, flavors.ListOpts{})
}

// ListImages lists all images visible to the project.
func (ex *Executor) ListImages(ctx context.Context) ([]images.Image, error) {
	return ex.Image.ListImages(ctx, images.ListOpts{})
}

// ListNetworks lists all networks visible to the project.
func (ex *Executor) ListNetworks(ctx context.Context) ([]networks.Network, error) {
	return ex.Network.ListNetworks(ctx, networks.ListOpts{})
}

// ListSecurityGroups lists all security groups of the project.
func (ex *Executor) ListSecurityGroups(ctx context.Context) ([]groups.SecGroup, error) {
	return ex.Network.ListSecurityGroups(ctx, groups.ListOpts{})
}

// ListFloatingIPs lists all floating IPs of the project.
func (ex *Executor) ListFloatingIPs(ctx context.Context) ([]floatingips.FloatingIP, error) {
	return ex.Network.ListFloatingIPs(ctx, floatingips.ListOpts{})
}

// CreateServer resolves the image, flavor and network of opts and requests the creation of the server.
// It does not wait for the server to become active, the returned server is usually still building.
func (ex *Executor) CreateServer(ctx context.Context, opts ServerOpts) (*servers.Server, error) {
	for _, k := range reservedExtraKeys {
		if _, ok := opts.Extra[k]; ok {
			return nil, fmt.Errorf("%w: %q", ErrReservedExtra, k)
		}
	}

	imageRef, err := ex.Image.ImageIDFromName(ctx, opts.Image)
	if err != nil {
		return nil, fmt.Errorf("error resolving image ID from image name %q: %w", opts.Image, err)
	}
	flavorRef, err := ex.Compute.FlavorIDFromName(ctx, opts.Flavor)
	if err != nil {
		return nil, fmt.Errorf("error resolving flavor ID from flavor name %q: %w", opts.Flavor, err)
	}
	networkID, err := ex.Network.NetworkIDFromName(ctx, opts.Network)
	if err != nil {
		return nil, fmt.Errorf("error resolving network ID from network name %q: %w", opts.Network, err)
	}

	var createOpts servers.CreateOptsBuilder = &servers.CreateOpts{
		Name:      opts.Name,
		ImageRef:  imageRef,
		FlavorRef: flavorRef,
		Networks:  []servers.Network{{UUID: networkID}},
	}

	if len(opts.Extra) > 0 {
		createOpts = &extraCreateOpts{
			CreateOptsBuilder: createOpts,
			Extra:             opts.Extra,
		}
	}

	klog.V(3).Infof("creating server %q [image=%q, flavor=%q, network=%q]", opts.Name, imageRef, flavorRef, networkID)
	server, err := ex.Compute.CreateServer(ctx, createOpts, nil)
	if err != nil {
		return nil, err
	}
	klog.V(2).Infof("server [ID=%q] with name %q requested", server.ID, opts.Name)

	// the create response only carries the ID, fetch the full record
	created, err := ex.Compute.GetServer(ctx, server.ID)
	if err != nil {
		return nil, fmt.Errorf("error fetching server [ID=%q] after creation: %w", server.ID, err)
	}
	return created, nil
}

// DeleteServer requests the deletion of the server with the supplied ID. Errors of the compute service,
// including a missing server, are returned unchanged.
func (ex *Executor) DeleteServer(ctx context.Context, id string, opts DeleteServerOpts) error {
	if opts.DeleteIPs {
		if err := ex.deleteFloatingIPs(ctx, id); err != nil {
			return fmt.Errorf("failed to release floating IPs of server [ID=%q]: %w", id, err)
		}
	}

	klog.V(1).Infof("deleting server with id %s", id)
	return ex.Compute.DeleteServer(ctx, id)
}

func (ex *Executor) deleteFloatingIPs(ctx context.Context, serverID string) error {
	serverPorts, err := ex.Network.ListPorts(ctx, ports.ListOpts{
		DeviceID: serverID,
	})
	if err != nil {
		return fmt.Errorf("failed to get ports: %w", err)
	}

	for _, port := range serverPorts {
		fips, err := ex.Network.ListFloatingIPs(ctx, floatingips.ListOpts{
			PortID: port.ID,
		})
		if err != nil {
			return fmt.Errorf("failed to get floating IPs of port [ID=%q]: %w", port.ID, err)
		}

		for _, fip := range fips {
			klog.V(3).Infof("deleting floating IP [ID=%q, address=%s]", fip.ID, fip.FloatingIP)
			if err := ex.Network.DeleteFloatingIP(ctx, fip.ID); err != nil {
				klog.Errorf("failed to delete floating IP [ID=%q]", fip.ID)
				return err
			}
		}
	}
	return nil
}

// AvailableFloatingIP returns a floating IP that is not associated with any port. An unassociated address of
// the project is reused if there is one, otherwise a new one is reserved. floatingNetwork optionally restricts
// the pool the address is taken from and can be given by name or ID. Without it the first external network
// is used for new addresses.
func (ex *Executor) AvailableFloatingIP(ctx context.Context, floatingNetwork string) (*floatingips.FloatingIP, error) {
	var networkID string
	if floatingNetwork != "" {
		id, err := ex.Network.NetworkIDFromName(ctx, floatingNetwork)
		if err != nil {
			return nil, fmt.Errorf("error resolving floating network %q: %w", floatingNetwork, err)
		}
		networkID = id
	}

	fips, err := ex.Network.ListFloatingIPs(ctx, floatingips.ListOpts{
		FloatingNetworkID: networkID,
	})
	if err != nil {
		return nil, err
	}
	for _, fip := range fips {
		if fip.PortID == "" {
			klog.V(3).Infof("reusing floating IP [ID=%q, address=%s]", fip.ID, fip.FloatingIP)
			return &fip, nil
		}
	}

	if networkID == "" {
		externalIDs, err := ex.Network.ExternalNetworkIDs(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list external networks: %w", err)
		}
		if len(externalIDs) == 0 {
			return nil, fmt.Errorf("no external network to reserve a floating IP from: %w", ErrNoFloatingIPAvailable)
		}
		networkID = externalIDs[0]
	}

	klog.V(3).Infof("reserving floating IP on network [ID=%q]", networkID)
	return ex.Network.CreateFloatingIP(ctx, floatingips.CreateOpts{
		FloatingNetworkID: networkID,
	})
}

// WaitForServerStatus polls the server until its status is one of target. Any status that is neither in pending
// nor in target aborts the wait; an empty pending list accepts every intermediate status.
func (ex *Executor) WaitForServerStatus(ctx context.Context, id string, pending, target []string, timeout time.Duration) error {
	return wait.PollUntilContextTimeout(ctx, time.Second, timeout, true, func(ctx context.Context) (bool, error) {
		current, err := ex.Compute.GetServer(ctx, id)
		if err != nil {
			if client.IsNotFoundError(err) && slices.Contains(target, cloudprovider.ServerStatusDeleted) {
				return true, nil
			}
			return false, err
		}

		klog.V(5).Infof("waiting for server [ID=%q] status %v. current status %v", id, target, current.Status)
		if slices.Contains(target, current.Status) {
			return true, nil
		}

		// if there is no pending statuses defined or current status is in the pending list, then continue polling
		if len(pending) == 0 || slices.Contains(pending, current.Status) {
			return false, nil
		}

		retErr := fmt.Errorf("unexpected status %q, wanted target %q", current.Status, strings.Join(target, ", "))
		if current.Status == cloudprovider.ServerStatusError {
			retErr = fmt.Errorf("%s, fault: %+v", retErr, current.Fault)
		}

		return false, retErr
	})
}

// reservedExtraKeys are the server create keys CreateServer always sets.
var reservedExtraKeys = []string{"name", "imageRef", "flavorRef", "networks"}

// extraCreateOpts merges arbitrary keys into the server create request body.
type extraCreateOpts struct {
	servers.CreateOptsBuilder
	Extra map[string]interface{}
}

// ToServerCreateMap adds the extra keys to the body built by the wrapped CreateOptsBuilder.
func (opts extraCreateOpts) ToServerCreateMap() (map[string]interface{}, error) {
	base, err := opts.CreateOptsBuilder.ToServerCreateMap()
	if err != nil {
		return nil, err
	}

	serverMap, ok := base["server"].(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("unexpected server create body %T", base["server"])
	}
	for k, v := range opts.Extra {
		if _, set := serverMap[k]; set {
			return nil, fmt.Errorf("%w: %q", ErrReservedExtra, k)
		}
		serverMap[k] = v
	}

	return base, nil
}
