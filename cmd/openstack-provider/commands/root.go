// SPDX-FileCopyrightText: SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

// Package commands defines the command line interface of the OpenStack provider adapter.
package commands

import (
	"context"
	goflag "flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	cliflag "k8s.io/component-base/cli/flag"
	"k8s.io/klog/v2"

	"github.com/gardener/provider-adapter-openstack/pkg/apis/provider"
)

// Provider is the provider interface the commands work with. WaitForNode is optional, see nodeWaiter.
type Provider = provider.Interface

type nodeWaiter interface {
	WaitForNode(ctx context.Context, id string, timeout time.Duration) error
}

// Options holds the global flags of the CLI.
type Options struct {
	Cloud      string
	SecretFile string
	EnvFile    string
	Output     string
	Timeout    time.Duration

	Out io.Writer

	env         Environment
	newProvider func(ctx context.Context, o *Options) (Provider, error)
}

// NewOptions returns Options that connect to OpenStack and print to stdout.
func NewOptions() *Options {
	return &Options{
		Output:      outputTable,
		Timeout:     10 * time.Minute,
		Out:         os.Stdout,
		newProvider: newOpenStackProvider,
	}
}

// Root returns the root command of the CLI.
func Root() *cobra.Command {
	return NewRootCommand(NewOptions())
}

// NewRootCommand returns the root command of the CLI using o.
func NewRootCommand(o *Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "openstack-provider",
		Short: "Manage OpenStack resources through the provider adapter",
		Long: `Manage OpenStack servers, floating IPs, networks, images, flavors and security groups
through the OpenStack provider adapter.

Credentials are taken from the first configured source:
  - a kubernetes secret manifest (--secret-file)
  - an entry of clouds.yaml (--cloud or OS_CLOUD)
  - the OS_* variables of an OpenStack RC file, optionally loaded from --env-file or .env`,
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if err := validateOutput(o.Output); err != nil {
				return err
			}
			e, err := LoadEnvironment(o.EnvFile)
			if err != nil {
				return err
			}
			o.env = e
			return nil
		},
	}

	flags := cmd.PersistentFlags()
	flags.SetNormalizeFunc(cliflag.WordSepNormalizeFunc)
	flags.StringVar(&o.Cloud, "cloud", o.Cloud, "Name of the clouds.yaml entry to use")
	flags.StringVar(&o.SecretFile, "secret-file", o.SecretFile, "Path to a kubernetes secret manifest holding the OpenStack credentials")
	flags.StringVar(&o.EnvFile, "env-file", o.EnvFile, "Path to a file with OS_* variables (default: .env if present)")
	flags.StringVarP(&o.Output, "output", "o", o.Output, fmt.Sprintf("Output format, one of %v", outputFormats))
	flags.DurationVar(&o.Timeout, "timeout", o.Timeout, "Timeout of the whole command")

	addKlogFlags(flags)

	cmd.AddCommand(listCommands(o)...)
	cmd.AddCommand(GetNode(o))
	cmd.AddCommand(AllocateNode(o))
	cmd.AddCommand(DeallocateNode(o))
	cmd.AddCommand(AllocateIP(o))
	cmd.AddCommand(Demo(o))

	return cmd
}

// addKlogFlags registers the klog flags (-v, --vmodule, ...) on fs.
func addKlogFlags(fs *pflag.FlagSet) {
	klogFlags := goflag.NewFlagSet("klog", goflag.ContinueOnError)
	klog.InitFlags(klogFlags)
	fs.AddGoFlagSet(klogFlags)
}

// run connects to the provider and calls fn within the command timeout.
func (o *Options) run(cmd *cobra.Command, fn func(ctx context.Context, p Provider) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, o.Timeout)
	defer cancel()

	p, err := o.newProvider(ctx, o)
	if err != nil {
		return err
	}
	defer func() {
		if err := p.Close(); err != nil {
			klog.Errorf("failed to close provider: %v", err)
		}
	}()

	return fn(ctx, p)
}
