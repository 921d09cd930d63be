// SPDX-FileCopyrightText: SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"

	"github.com/spf13/cobra"
)

// AllocateIP returns the command reserving a floating IP.
func AllocateIP(o *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "allocate-ip",
		Short: "Reserve a floating IP that is not associated with any server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return o.run(cmd, func(ctx context.Context, p Provider) error {
				ip, err := p.AllocateIP(ctx)
				if err != nil {
					return err
				}
				return printResult(o.Out, o.Output, addressColumns, ip)
			})
		},
	}
}
