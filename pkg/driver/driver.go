// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package driver

import (
	"context"
	"time"

	"github.com/gophercloud/gophercloud/v2/openstack/compute/v2/flavors"
	"github.com/gophercloud/gophercloud/v2/openstack/compute/v2/servers"
	"github.com/gophercloud/gophercloud/v2/openstack/image/v2/images"
	"github.com/gophercloud/gophercloud/v2/openstack/networking/v2/extensions/layer3/floatingips"
	"github.com/gophercloud/gophercloud/v2/openstack/networking/v2/extensions/security/groups"
	"github.com/gophercloud/gophercloud/v2/openstack/networking/v2/networks"
	"k8s.io/klog/v2"

	"github.com/gardener/provider-adapter-openstack/pkg/apis/cloudprovider"
	"github.com/gardener/provider-adapter-openstack/pkg/apis/provider"
	"github.com/gardener/provider-adapter-openstack/pkg/apis/validation"
	"github.com/gardener/provider-adapter-openstack/pkg/driver/executor"
)

// Name returns the provider identifier.
func (p *OpenStackDriver) Name() string {
	return cloudprovider.ProviderName
}

// Nodes lists all servers.
func (p *OpenStackDriver) Nodes(ctx context.Context) ([]provider.Result, error) {
	klog.V(2).Infof("Nodes request has been received")
	defer klog.V(2).Infof("Nodes request has been processed")

	list, err := p.backend.ListServers(ctx)
	if err != nil {
		klog.Errorf("listing servers failed with: %v", err)
		return nil, err
	}
	return toResults(list, func(s servers.Server) string { return s.ID })
}

// Secgroups lists all security groups.
func (p *OpenStackDriver) Secgroups(ctx context.Context) ([]provider.Result, error) {
	klog.V(2).Infof("Secgroups request has been received")
	defer klog.V(2).Infof("Secgroups request has been processed")

	list, err := p.backend.ListSecurityGroups(ctx)
	if err != nil {
		klog.Errorf("listing security groups failed with: %v", err)
		return nil, err
	}
	return toResults(list, func(g groups.SecGroup) string { return g.ID })
}

// Flavors lists all flavors.
func (p *OpenStackDriver) Flavors(ctx context.Context) ([]provider.Result, error) {
	klog.V(2).Infof("Flavors request has been received")
	defer klog.V(2).Infof("Flavors request has been processed")

	list, err := p.backend.ListFlavors(ctx)
	if err != nil {
		klog.Errorf("listing flavors failed with: %v", err)
		return nil, err
	}
	return toResults(list, func(f flavors.Flavor) string { return f.ID })
}

// Images lists all images.
func (p *OpenStackDriver) Images(ctx context.Context) ([]provider.Result, error) {
	klog.V(2).Infof("Images request has been received")
	defer klog.V(2).Infof("Images request has been processed")

	list, err := p.backend.ListImages(ctx)
	if err != nil {
		klog.Errorf("listing images failed with: %v", err)
		return nil, err
	}
	return toResults(list, func(i images.Image) string { return i.ID })
}

// Addresses lists all floating IPs.
func (p *OpenStackDriver) Addresses(ctx context.Context) ([]provider.Result, error) {
	klog.V(2).Infof("Addresses request has been received")
	defer klog.V(2).Infof("Addresses request has been processed")

	list, err := p.backend.ListFloatingIPs(ctx)
	if err != nil {
		klog.Errorf("listing floating IPs failed with: %v", err)
		return nil, err
	}
	return toResults(list, func(f floatingips.FloatingIP) string { return f.ID })
}

// Networks lists all networks.
func (p *OpenStackDriver) Networks(ctx context.Context) ([]provider.Result, error) {
	klog.V(2).Infof("Networks request has been received")
	defer klog.V(2).Infof("Networks request has been processed")

	list, err := p.backend.ListNetworks(ctx)
	if err != nil {
		klog.Errorf("listing networks failed with: %v", err)
		return nil, err
	}
	return toResults(list, func(n networks.Network) string { return n.ID })
}

// AllocateNode creates a server. Name, image, flavor and network are required, everything in Extra is handed
// to the compute service as is.
func (p *OpenStackDriver) AllocateNode(ctx context.Context, req provider.AllocateNodeRequest) (*provider.Result, error) {
	klog.V(2).Infof("AllocateNode request has been received for %q", req.Name)
	defer klog.V(2).Infof("AllocateNode request has been processed for %q", req.Name)

	klog.V(4).Infof("AllocateNode sanity check for %q", req.Name)
	if errs := validation.ValidateAllocateNodeRequest(req); len(errs) > 0 {
		klog.Errorf("validating request for node %q failed with: %v", req.Name, errs.ToAggregate())
		return nil, &provider.MissingArgumentError{
			Operation: provider.OperationAllocateNode,
			Arguments: validation.MissingArguments(errs),
		}
	}

	klog.Infof("allocating OpenStack node with name=%s, image=%s, flavor=%s, network=%s, extra=%v",
		req.Name, req.Image, req.Flavor, req.Network, req.Extra)
	opts := executor.ServerOpts{
		Name:    req.Name,
		Image:   req.Image,
		Flavor:  req.Flavor,
		Network: req.Network,
	}
	if len(req.Extra) > 0 {
		opts.Extra = req.Extra.Interface()
	}

	server, err := p.backend.CreateServer(ctx, opts)
	if err != nil {
		klog.Errorf("node creation for %q failed with: %v", req.Name, err)
		return nil, err
	}

	return toResult(server.ID, server)
}

// DeallocateNode deletes a server and releases its floating IPs.
func (p *OpenStackDriver) DeallocateNode(ctx context.Context, id string) error {
	klog.V(2).Infof("DeallocateNode request has been received for %q", id)
	defer klog.V(2).Infof("DeallocateNode request has been processed for %q", id)

	klog.Infof("deallocating OpenStack node %s", id)
	if err := p.backend.DeleteServer(ctx, id, executor.DeleteServerOpts{DeleteIPs: true}); err != nil {
		klog.Errorf("node deletion for %q failed with: %v", id, err)
		return err
	}
	return nil
}

// GetNode fetches the current state of a server.
func (p *OpenStackDriver) GetNode(ctx context.Context, id string) (*provider.Result, error) {
	klog.V(2).Infof("GetNode request has been received for %q", id)
	defer klog.V(2).Infof("GetNode request has been processed for %q", id)

	server, err := p.backend.GetServer(ctx, id)
	if err != nil {
		klog.V(2).Infof("error finding server %q: %v", id, err)
		return nil, err
	}
	return toResult(server.ID, server)
}

// AllocateIP returns a floating IP that is not associated with any server.
func (p *OpenStackDriver) AllocateIP(ctx context.Context) (*provider.Result, error) {
	klog.V(2).Infof("AllocateIP request has been received")
	defer klog.V(2).Infof("AllocateIP request has been processed")

	fip, err := p.backend.AvailableFloatingIP(ctx, "")
	if err != nil {
		klog.Errorf("floating IP allocation failed with: %v", err)
		return nil, err
	}
	return toResult(fip.ID, fip)
}

// WaitForNode blocks until the server is active. It fails as soon as the server reports an error status.
func (p *OpenStackDriver) WaitForNode(ctx context.Context, id string, timeout time.Duration) error {
	return p.backend.WaitForServerStatus(ctx, id,
		[]string{cloudprovider.ServerStatusBuild},
		[]string{cloudprovider.ServerStatusActive},
		timeout)
}
