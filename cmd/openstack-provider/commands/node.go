// SPDX-FileCopyrightText: SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"github.com/gardener/provider-adapter-openstack/pkg/apis/provider"
)

// GetNode returns the command printing the current state of a server.
func GetNode(o *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "get-node ID",
		Short: "Show the current state of a server",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(cmd, func(ctx context.Context, p Provider) error {
				node, err := p.GetNode(ctx, args[0])
				if err != nil {
					return err
				}
				return printResult(o.Out, o.Output, nodeColumns, node)
			})
		},
	}
}

// AllocateNode returns the command creating a server.
//
// Required flags:
//
//	--name, --image, --flavor, --network
//
// Optional flags:
//
//	--extra: additional server create arguments as key=value, values are parsed as JSON if possible
//	--wait: wait until the server is active
func AllocateNode(o *Options) *cobra.Command {
	var (
		req   provider.AllocateNodeRequest
		extra map[string]string
		wait  bool
	)

	cmd := &cobra.Command{
		Use:   "allocate-node",
		Short: "Create a server",
		Example: `  # Create a server and wait until it is active
  openstack-provider allocate-node --name demo --image ubuntu-22.04 --flavor m1.small --network demo-net --wait

  # Pass additional server arguments
  openstack-provider allocate-node --name demo --image ubuntu-22.04 --flavor m1.small --network demo-net \
    --extra key_name=ssh-key --extra availability_zone=nova`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req.Extra = parseExtra(extra)
			return o.run(cmd, func(ctx context.Context, p Provider) error {
				node, err := p.AllocateNode(ctx, req)
				if err != nil {
					return err
				}
				if wait {
					if node, err = waitForNode(ctx, p, node.ID, o.Timeout); err != nil {
						return err
					}
				}
				return printResult(o.Out, o.Output, nodeColumns, node)
			})
		},
	}

	cmd.Flags().StringVar(&req.Name, "name", "", "Name of the server")
	cmd.Flags().StringVar(&req.Image, "image", "", "Name or ID of the image")
	cmd.Flags().StringVar(&req.Flavor, "flavor", "", "Name or ID of the flavor")
	cmd.Flags().StringVar(&req.Network, "network", "", "Name or ID of the network")
	cmd.Flags().StringToStringVar(&extra, "extra", nil, "Additional server create arguments (key=value)")
	cmd.Flags().BoolVar(&wait, "wait", false, "Wait until the server is active")

	return cmd
}

// DeallocateNode returns the command deleting a server along with its floating IPs.
func DeallocateNode(o *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "deallocate-node ID",
		Short: "Delete a server and release its floating IPs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(cmd, func(ctx context.Context, p Provider) error {
				if err := p.DeallocateNode(ctx, args[0]); err != nil {
					return err
				}
				_, err := fmt.Fprintf(o.Out, "server %s deleted\n", args[0])
				return err
			})
		},
	}
}

// parseExtra converts key=value flags, a value that is valid JSON keeps its type.
func parseExtra(extra map[string]string) provider.Attributes {
	if len(extra) == 0 {
		return nil
	}

	attrs := make(provider.Attributes, len(extra))
	for k, raw := range extra {
		var v provider.Value
		if err := json.Unmarshal([]byte(raw), &v); err != nil {
			v = provider.StringValue(raw)
		}
		attrs[k] = v
	}
	return attrs
}

// waitForNode waits until the server is active and returns its final state.
func waitForNode(ctx context.Context, p Provider, id string, timeout time.Duration) (*provider.Result, error) {
	w, ok := p.(nodeWaiter)
	if !ok {
		return nil, fmt.Errorf("provider %q cannot wait for nodes", p.Name())
	}

	klog.V(2).Infof("waiting for server %s to become active", id)
	if err := w.WaitForNode(ctx, id, timeout); err != nil {
		return nil, fmt.Errorf("error waiting for server [ID=%q] to become active: %w", id, err)
	}
	return p.GetNode(ctx, id)
}
