// SPDX-FileCopyrightText: SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package driver

import (
	"context"

	"github.com/gardener/provider-adapter-openstack/pkg/apis/cloudprovider"
	"github.com/gardener/provider-adapter-openstack/pkg/apis/provider"
)

var supported = map[provider.Operation]struct{}{
	provider.OperationNodes:          {},
	provider.OperationSecgroups:      {},
	provider.OperationFlavors:        {},
	provider.OperationImages:         {},
	provider.OperationAddresses:      {},
	provider.OperationNetworks:       {},
	provider.OperationAllocateNode:   {},
	provider.OperationDeallocateNode: {},
	provider.OperationGetNode:        {},
	provider.OperationAllocateIP:     {},
}

// Supports reports whether op is implemented by the driver.
func (p *OpenStackDriver) Supports(op provider.Operation) bool {
	_, ok := supported[op]
	return ok
}

func notImplemented(op provider.Operation) error {
	return &provider.NotImplementedError{Provider: cloudprovider.ProviderName, Operation: op}
}

func (p *OpenStackDriver) DeallocateIP(context.Context, string) error {
	return notImplemented(provider.OperationDeallocateIP)
}

func (p *OpenStackDriver) AssociateIP(context.Context, string, string) error {
	return notImplemented(provider.OperationAssociateIP)
}

func (p *OpenStackDriver) DisassociateIP(context.Context, string, string) error {
	return notImplemented(provider.OperationDisassociateIP)
}

func (p *OpenStackDriver) GetIP(context.Context, string) (*provider.Result, error) {
	return nil, notImplemented(provider.OperationGetIP)
}

func (p *OpenStackDriver) AllocateSecgroup(context.Context, string, provider.Attributes) (*provider.Result, error) {
	return nil, notImplemented(provider.OperationAllocateSecgroup)
}

func (p *OpenStackDriver) DeallocateSecgroup(context.Context, string) error {
	return notImplemented(provider.OperationDeallocateSecgroup)
}

func (p *OpenStackDriver) ModifySecgroup(context.Context, string, provider.Attributes) (*provider.Result, error) {
	return nil, notImplemented(provider.OperationModifySecgroup)
}

func (p *OpenStackDriver) GetSecgroup(context.Context, string) (*provider.Result, error) {
	return nil, notImplemented(provider.OperationGetSecgroup)
}

func (p *OpenStackDriver) AllocateKey(context.Context, string, provider.Attributes) (*provider.Result, error) {
	return nil, notImplemented(provider.OperationAllocateKey)
}

func (p *OpenStackDriver) DeallocateKey(context.Context, string) error {
	return notImplemented(provider.OperationDeallocateKey)
}

func (p *OpenStackDriver) ModifyKey(context.Context, string, provider.Attributes) (*provider.Result, error) {
	return nil, notImplemented(provider.OperationModifyKey)
}

func (p *OpenStackDriver) GetKey(context.Context, string) (*provider.Result, error) {
	return nil, notImplemented(provider.OperationGetKey)
}

func (p *OpenStackDriver) AllocateImage(context.Context, string, provider.Attributes) (*provider.Result, error) {
	return nil, notImplemented(provider.OperationAllocateImage)
}

func (p *OpenStackDriver) DeallocateImage(context.Context, string) error {
	return notImplemented(provider.OperationDeallocateImage)
}

func (p *OpenStackDriver) GetImage(context.Context, string) (*provider.Result, error) {
	return nil, notImplemented(provider.OperationGetImage)
}
