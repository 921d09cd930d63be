// SPDX-FileCopyrightText: SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"context"
	"fmt"
	"time"

	"github.com/gophercloud/gophercloud/v2"
	"github.com/gophercloud/gophercloud/v2/openstack"
	"github.com/gophercloud/gophercloud/v2/openstack/image/v2/images"
)

var _ Image = &glanceV2{}

// glanceV2 is a GlanceV2 client implementing the Image interface.
type glanceV2 struct {
	serviceClient *gophercloud.ServiceClient
}

func newGlanceV2(providerClient *gophercloud.ProviderClient, eo gophercloud.EndpointOpts) (*glanceV2, error) {
	img, err := openstack.NewImageV2(providerClient, eo)
	if err != nil {
		return nil, fmt.Errorf("could not initialize image client: %w", err)
	}

	return &glanceV2{
		serviceClient: img,
	}, nil
}

// ListImages lists all images based on opts constraints.
func (g *glanceV2) ListImages(ctx context.Context, opts images.ListOptsBuilder) ([]images.Image, error) {
	start := time.Now()
	pages, err := images.List(g.serviceClient, opts).AllPages(ctx)
	onCall(glanceService, start, err)
	if err != nil {
		return nil, err
	}
	return images.ExtractImages(pages)
}

// ImageIDFromName resolves the given image name or ID to a unique ID.
func (g *glanceV2) ImageIDFromName(ctx context.Context, name string) (string, error) {
	listFunc := func(ctx context.Context) ([]images.Image, error) {
		return g.ListImages(ctx, nil)
	}

	image, err := findSingleByNameOrID(ctx, listFunc,
		func(i images.Image) string { return i.ID },
		func(i images.Image) string { return i.Name },
		name, "image")

	return image.ID, err
}
