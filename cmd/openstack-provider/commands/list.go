// SPDX-FileCopyrightText: SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/gardener/provider-adapter-openstack/pkg/apis/provider"
)

var (
	nodeColumns     = []column{{"NAME", "name"}, {"STATUS", "status"}}
	secgroupColumns = []column{{"NAME", "name"}, {"DESCRIPTION", "description"}}
	flavorColumns   = []column{{"NAME", "name"}, {"VCPUS", "vcpus"}, {"RAM", "ram"}, {"DISK", "disk"}}
	imageColumns    = []column{{"NAME", "name"}, {"STATUS", "status"}}
	addressColumns  = []column{{"FLOATING IP", "floating_ip_address"}, {"FIXED IP", "fixed_ip_address"}, {"STATUS", "status"}}
	networkColumns  = []column{{"NAME", "name"}, {"STATUS", "status"}}
)

type listFunc func(p Provider, ctx context.Context) ([]provider.Result, error)

func listCommands(o *Options) []*cobra.Command {
	return []*cobra.Command{
		listCommand(o, "nodes", "List servers", Provider.Nodes, nodeColumns),
		listCommand(o, "secgroups", "List security groups", Provider.Secgroups, secgroupColumns),
		listCommand(o, "flavors", "List flavors", Provider.Flavors, flavorColumns),
		listCommand(o, "images", "List images", Provider.Images, imageColumns),
		listCommand(o, "addresses", "List floating IPs", Provider.Addresses, addressColumns),
		listCommand(o, "networks", "List networks", Provider.Networks, networkColumns),
	}
}

func listCommand(o *Options, use, short string, list listFunc, columns []column) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return o.run(cmd, func(ctx context.Context, p Provider) error {
				results, err := list(p, ctx)
				if err != nil {
					return err
				}
				return printResults(o.Out, o.Output, columns, results)
			})
		},
	}
}
