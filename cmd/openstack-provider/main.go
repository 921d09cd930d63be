// SPDX-FileCopyrightText: SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"k8s.io/component-base/logs"
	"k8s.io/klog/v2"

	"github.com/gardener/provider-adapter-openstack/cmd/openstack-provider/commands"
)

func main() {
	logs.InitLogs()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := commands.Root().ExecuteContext(ctx)
	stop()
	if err != nil {
		klog.Errorf("%v", err)
		logs.FlushLogs()
		os.Exit(1)
	}
	logs.FlushLogs()
}
