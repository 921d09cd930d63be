// SPDX-FileCopyrightText: SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

//go:generate mockgen -copyright_file=../../../hack/LICENSE_HEADER.txt -destination=./mocks.go -package=openstack github.com/gardener/provider-adapter-openstack/pkg/client Compute,Network,Image
//go:generate mockgen -copyright_file=../../../hack/LICENSE_HEADER.txt -destination=./backend.go -package=openstack github.com/gardener/provider-adapter-openstack/pkg/driver Backend
package openstack
