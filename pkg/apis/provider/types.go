// SPDX-FileCopyrightText: SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

// Package provider defines the capability interface every cloud provider adapter exposes and the Result
// model its operations return.
package provider

import (
	"context"
)

// Operation names a single capability of a provider.
type Operation string

const (
	OperationNodes              Operation = "nodes"
	OperationSecgroups          Operation = "secgroups"
	OperationFlavors            Operation = "flavors"
	OperationImages             Operation = "images"
	OperationAddresses          Operation = "addresses"
	OperationNetworks           Operation = "networks"
	OperationAllocateNode       Operation = "allocate_node"
	OperationDeallocateNode     Operation = "deallocate_node"
	OperationGetNode            Operation = "get_node"
	OperationAllocateIP         Operation = "allocate_ip"
	OperationDeallocateIP       Operation = "deallocate_ip"
	OperationAssociateIP        Operation = "associate_ip"
	OperationDisassociateIP     Operation = "disassociate_ip"
	OperationGetIP              Operation = "get_ip"
	OperationAllocateSecgroup   Operation = "allocate_secgroup"
	OperationDeallocateSecgroup Operation = "deallocate_secgroup"
	OperationModifySecgroup     Operation = "modify_secgroup"
	OperationGetSecgroup        Operation = "get_secgroup"
	OperationAllocateKey        Operation = "allocate_key"
	OperationDeallocateKey      Operation = "deallocate_key"
	OperationModifyKey          Operation = "modify_key"
	OperationGetKey             Operation = "get_key"
	OperationAllocateImage      Operation = "allocate_image"
	OperationDeallocateImage    Operation = "deallocate_image"
	OperationGetImage           Operation = "get_image"
)

// Operations lists every capability of Interface in declaration order.
var Operations = []Operation{
	OperationNodes,
	OperationSecgroups,
	OperationFlavors,
	OperationImages,
	OperationAddresses,
	OperationNetworks,
	OperationAllocateNode,
	OperationDeallocateNode,
	OperationGetNode,
	OperationAllocateIP,
	OperationDeallocateIP,
	OperationAssociateIP,
	OperationDisassociateIP,
	OperationGetIP,
	OperationAllocateSecgroup,
	OperationDeallocateSecgroup,
	OperationModifySecgroup,
	OperationGetSecgroup,
	OperationAllocateKey,
	OperationDeallocateKey,
	OperationModifyKey,
	OperationGetKey,
	OperationAllocateImage,
	OperationDeallocateImage,
	OperationGetImage,
}

// AllocateNodeRequest describes a node to create.
type AllocateNodeRequest struct {
	// Name of the node. Required.
	Name string
	// Image is the name or ID of the boot image. Required.
	Image string
	// Flavor is the name or ID of the flavor. Required.
	Flavor string
	// Network is the name or ID of the network the node is attached to. Required.
	Network string
	// Extra is passed to the backend verbatim.
	Extra Attributes
}

// Interface is the capability surface of a cloud provider. Every method is declared by every provider;
// operations a provider cannot serve fail with an error matching ErrNotImplemented. Callers can probe
// support upfront with Supports.
//
// Implementations perform one blocking backend round trip per call and keep no state besides the
// backend handle. Whether an implementation is safe for concurrent use depends on its backend client.
type Interface interface {
	// Name returns the constant provider identifier.
	Name() string
	// Supports reports whether op is implemented by the provider.
	Supports(op Operation) bool
	// Close releases the backend handle.
	Close() error

	// Nodes lists all servers.
	Nodes(ctx context.Context) ([]Result, error)
	// Secgroups lists all security groups.
	Secgroups(ctx context.Context) ([]Result, error)
	// Flavors lists all flavors.
	Flavors(ctx context.Context) ([]Result, error)
	// Images lists all images.
	Images(ctx context.Context) ([]Result, error)
	// Addresses lists all floating IPs.
	Addresses(ctx context.Context) ([]Result, error)
	// Networks lists all networks.
	Networks(ctx context.Context) ([]Result, error)

	// AllocateNode creates a node.
	AllocateNode(ctx context.Context, req AllocateNodeRequest) (*Result, error)
	// DeallocateNode deletes a node and releases its floating IPs.
	DeallocateNode(ctx context.Context, id string) error
	// GetNode fetches the current state of a node.
	GetNode(ctx context.Context, id string) (*Result, error)

	// AllocateIP reserves a floating IP.
	AllocateIP(ctx context.Context) (*Result, error)
	DeallocateIP(ctx context.Context, id string) error
	AssociateIP(ctx context.Context, ipID, nodeID string) error
	DisassociateIP(ctx context.Context, ipID, nodeID string) error
	GetIP(ctx context.Context, id string) (*Result, error)

	AllocateSecgroup(ctx context.Context, name string, attrs Attributes) (*Result, error)
	DeallocateSecgroup(ctx context.Context, id string) error
	ModifySecgroup(ctx context.Context, id string, attrs Attributes) (*Result, error)
	GetSecgroup(ctx context.Context, id string) (*Result, error)

	AllocateKey(ctx context.Context, name string, attrs Attributes) (*Result, error)
	DeallocateKey(ctx context.Context, id string) error
	ModifyKey(ctx context.Context, id string, attrs Attributes) (*Result, error)
	GetKey(ctx context.Context, id string) (*Result, error)

	AllocateImage(ctx context.Context, name string, attrs Attributes) (*Result, error)
	DeallocateImage(ctx context.Context, id string) error
	GetImage(ctx context.Context, id string) (*Result, error)
}
