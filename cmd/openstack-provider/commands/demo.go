// SPDX-FileCopyrightText: SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gardener/provider-adapter-openstack/pkg/apis/provider"
)

type demoOptions struct {
	name          string
	image         string
	flavor        string
	networkPrefix string
	wait          bool
}

// Demo returns the command walking through every supported operation: it lists all resources, creates a
// server on the first network named after the tenant, reserves a floating IP and deletes the server again.
func Demo(o *Options) *cobra.Command {
	d := demoOptions{}

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Exercise every supported operation against the cloud",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if d.networkPrefix == "" {
				d.networkPrefix = o.env.Tenant()
			}
			return o.run(cmd, func(ctx context.Context, p Provider) error {
				return runDemo(ctx, o, p, d)
			})
		},
	}

	cmd.Flags().StringVar(&d.name, "name", "cm2test", "Name of the server to create")
	cmd.Flags().StringVar(&d.image, "image", "CC-Ubuntu14.04", "Name or ID of the image")
	cmd.Flags().StringVar(&d.flavor, "flavor", "m1.small", "Name or ID of the flavor")
	cmd.Flags().StringVar(&d.networkPrefix, "network-prefix", "", "Prefix of the network name to use (default: the tenant name)")
	cmd.Flags().BoolVar(&d.wait, "wait", false, "Wait until the server is active before continuing")

	return cmd
}

func runDemo(ctx context.Context, o *Options, p Provider, d demoOptions) error {
	w := o.Out
	fmt.Fprintln(w, p.Name())
	fmt.Fprintln(w)

	sections := []struct {
		title   string
		list    listFunc
		columns []column
	}{
		{"Nodes", Provider.Nodes, nodeColumns},
		{"Security groups", Provider.Secgroups, secgroupColumns},
		{"Flavors", Provider.Flavors, flavorColumns},
		{"Images", Provider.Images, imageColumns},
		{"Addresses", Provider.Addresses, addressColumns},
	}
	for _, s := range sections {
		results, err := s.list(p, ctx)
		if err != nil {
			return fmt.Errorf("listing %s failed: %w", strings.ToLower(s.title), err)
		}
		if err := printSection(w, o.Output, s.title, s.columns, results); err != nil {
			return err
		}
	}

	fmt.Fprintln(w, "Allocate node")
	networks, err := p.Networks(ctx)
	if err != nil {
		return fmt.Errorf("listing networks failed: %w", err)
	}
	network, ok := firstNetworkWithPrefix(networks, d.networkPrefix)
	if !ok {
		return fmt.Errorf("no network with name prefix %q found", d.networkPrefix)
	}

	node, err := p.AllocateNode(ctx, provider.AllocateNodeRequest{
		Name:    d.name,
		Image:   d.image,
		Flavor:  d.flavor,
		Network: network.ID,
	})
	if err != nil {
		return err
	}
	if d.wait {
		if _, err := waitForNode(ctx, p, node.ID, o.Timeout); err != nil {
			return err
		}
	}
	current, err := p.GetNode(ctx, node.ID)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, node, current.Status())
	fmt.Fprintln(w)

	fmt.Fprintln(w, "IP")
	ip, err := p.AllocateIP(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, ip.ID, ip.Attributes.GetString("floating_ip_address"))
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Deallocate node")
	if err := p.DeallocateNode(ctx, node.ID); err != nil {
		return err
	}
	fmt.Fprintln(w, node)
	return nil
}

func printSection(w io.Writer, format, title string, columns []column, results []provider.Result) error {
	fmt.Fprintln(w, title)
	if err := printResults(w, format, columns, results); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w)
	return err
}

func firstNetworkWithPrefix(networks []provider.Result, prefix string) (provider.Result, bool) {
	for _, n := range networks {
		if strings.HasPrefix(n.Name(), prefix) {
			return n, true
		}
	}
	return provider.Result{}, false
}
