// SPDX-FileCopyrightText: SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package driver_test

import (
	"context"
	"errors"
	"net/http"

	"github.com/golang/mock/gomock"
	"github.com/gophercloud/gophercloud/v2"
	"github.com/gophercloud/gophercloud/v2/openstack/compute/v2/flavors"
	"github.com/gophercloud/gophercloud/v2/openstack/compute/v2/servers"
	"github.com/gophercloud/gophercloud/v2/openstack/image/v2/images"
	"github.com/gophercloud/gophercloud/v2/openstack/networking/v2/extensions/layer3/floatingips"
	"github.com/gophercloud/gophercloud/v2/openstack/networking/v2/extensions/security/groups"
	"github.com/gophercloud/gophercloud/v2/openstack/networking/v2/networks"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/gardener/provider-adapter-openstack/pkg/apis/cloudprovider"
	"github.com/gardener/provider-adapter-openstack/pkg/apis/provider"
	"github.com/gardener/provider-adapter-openstack/pkg/client"
	. "github.com/gardener/provider-adapter-openstack/pkg/driver"
	"github.com/gardener/provider-adapter-openstack/pkg/driver/executor"
	mocks "github.com/gardener/provider-adapter-openstack/pkg/mock/openstack"
)

type countingCloser struct {
	calls int
}

func (c *countingCloser) Close() error {
	c.calls++
	return nil
}

func ids(results []provider.Result) []string {
	out := make([]string, 0, len(results))
	for _, r := range results {
		out = append(out, r.ID)
	}
	return out
}

var _ = Describe("Driver", func() {
	var (
		ctrl    *gomock.Controller
		backend *mocks.MockBackend
		closer  *countingCloser
		drv     *OpenStackDriver
		ctx     context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		ctrl = gomock.NewController(GinkgoT())
		backend = mocks.NewMockBackend(ctrl)
		closer = &countingCloser{}
		drv = NewOpenStackDriver(backend, closer)
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	It("should report its name", func() {
		Expect(drv.Name()).To(Equal("openstack"))
	})

	It("should close the backend", func() {
		Expect(drv.Close()).To(Succeed())
		Expect(closer.calls).To(Equal(1))
		Expect(NewOpenStackDriver(backend, nil).Close()).To(Succeed())
	})

	Context("listing", func() {
		It("should wrap every server in backend order", func() {
			backend.EXPECT().ListServers(ctx).Return([]servers.Server{
				{ID: "s2", Name: "web", Status: cloudprovider.ServerStatusActive},
				{ID: "s1", Name: "db", Status: cloudprovider.ServerStatusBuild},
			}, nil)

			res, err := drv.Nodes(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(ids(res)).To(Equal([]string{"s2", "s1"}))
			Expect(res[0].Name()).To(Equal("web"))
			Expect(res[1].Status()).To(Equal(cloudprovider.ServerStatusBuild))
		})

		It("should keep the numeric flavor attributes", func() {
			backend.EXPECT().ListFlavors(ctx).Return([]flavors.Flavor{
				{ID: "1", Name: "m1.tiny", VCPUs: 1, RAM: 512, Disk: 1},
				{ID: "2", Name: "m1.small", VCPUs: 2, RAM: 2048, Disk: 20},
			}, nil)

			res, err := drv.Flavors(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(ids(res)).To(Equal([]string{"1", "2"}))

			vcpus, ok := res[1].Get("vcpus")
			Expect(ok).To(BeTrue())
			n, _ := vcpus.Int()
			Expect(n).To(BeEquivalentTo(2))
			ram, _ := res[1].Get("ram")
			n, _ = ram.Int()
			Expect(n).To(BeEquivalentTo(2048))
		})

		It("should wrap floating IPs with their address", func() {
			backend.EXPECT().ListFloatingIPs(ctx).Return([]floatingips.FloatingIP{
				{ID: "fip1", FloatingIP: "203.0.113.10", FixedIP: "10.0.0.5", PortID: "p1"},
			}, nil)

			res, err := drv.Addresses(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(res).To(HaveLen(1))
			Expect(res[0].Attributes.GetString("floating_ip_address")).To(Equal("203.0.113.10"))
			Expect(res[0].Attributes.GetString("fixed_ip_address")).To(Equal("10.0.0.5"))
		})

		It("should wrap images, networks and security groups", func() {
			backend.EXPECT().ListImages(ctx).Return([]images.Image{{ID: "img1", Name: "ubuntu"}}, nil)
			backend.EXPECT().ListNetworks(ctx).Return([]networks.Network{{ID: "n1", Name: "demo-net"}, {ID: "n2", Name: "public"}}, nil)
			backend.EXPECT().ListSecurityGroups(ctx).Return([]groups.SecGroup{{ID: "sg1", Name: "default"}}, nil)

			imgs, err := drv.Images(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(ids(imgs)).To(Equal([]string{"img1"}))
			Expect(imgs[0].Name()).To(Equal("ubuntu"))

			nws, err := drv.Networks(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(ids(nws)).To(Equal([]string{"n1", "n2"}))

			sgs, err := drv.Secgroups(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(ids(sgs)).To(Equal([]string{"sg1"}))
		})

		It("should expose the struct fields of images only", func() {
			backend.EXPECT().ListImages(ctx).Return([]images.Image{{
				ID:         "img1",
				Name:       "ubuntu",
				SizeBytes:  1024,
				Properties: map[string]interface{}{"os_distro": "ubuntu"},
			}}, nil)

			imgs, err := drv.Images(ctx)
			Expect(err).NotTo(HaveOccurred())
			size, ok := imgs[0].Get("size_bytes")
			Expect(ok).To(BeTrue())
			n, _ := size.Int()
			Expect(n).To(BeEquivalentTo(1024))
			_, ok = imgs[0].Get("os_distro")
			Expect(ok).To(BeFalse())
		})

		It("should return empty lists", func() {
			backend.EXPECT().ListServers(ctx).Return(nil, nil)

			res, err := drv.Nodes(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(res).To(BeEmpty())
		})

		It("should return backend errors unchanged", func() {
			unauthenticated := gophercloud.ErrUnexpectedResponseCode{Actual: http.StatusUnauthorized}
			backend.EXPECT().ListNetworks(ctx).Return(nil, unauthenticated)

			_, err := drv.Networks(ctx)
			Expect(err).To(Equal(unauthenticated))
			Expect(client.IsUnauthenticated(err)).To(BeTrue())
		})

		It("should refuse records without identifier", func() {
			backend.EXPECT().ListSecurityGroups(ctx).Return([]groups.SecGroup{{Name: "broken"}}, nil)

			_, err := drv.Secgroups(ctx)
			Expect(err).To(HaveOccurred())
		})
	})

	Context("#AllocateNode", func() {
		var req provider.AllocateNodeRequest

		BeforeEach(func() {
			req = provider.AllocateNodeRequest{
				Name:    "demo",
				Image:   "ubuntu",
				Flavor:  "m1.small",
				Network: "demo-net",
			}
		})

		DescribeTable("should report missing arguments without contacting the backend",
			func(mutate func(*provider.AllocateNodeRequest), missing []string) {
				mutate(&req)

				res, err := drv.AllocateNode(ctx, req)
				Expect(res).To(BeNil())
				Expect(provider.IsMissingArgument(err)).To(BeTrue())

				var missingErr *provider.MissingArgumentError
				Expect(errors.As(err, &missingErr)).To(BeTrue())
				Expect(missingErr.Operation).To(Equal(provider.OperationAllocateNode))
				Expect(missingErr.Arguments).To(Equal(missing))
			},
			Entry("name", func(r *provider.AllocateNodeRequest) { r.Name = "" }, []string{"name"}),
			Entry("image", func(r *provider.AllocateNodeRequest) { r.Image = "" }, []string{"image"}),
			Entry("flavor", func(r *provider.AllocateNodeRequest) { r.Flavor = "  " }, []string{"flavor"}),
			Entry("network", func(r *provider.AllocateNodeRequest) { r.Network = "" }, []string{"network"}),
			Entry("all", func(r *provider.AllocateNodeRequest) { *r = provider.AllocateNodeRequest{} }, []string{"name", "image", "flavor", "network"}),
		)

		It("should create exactly one server with the declared arguments and extras", func() {
			req.Extra = provider.Attributes{"key_name": provider.StringValue("ssh-key")}

			backend.EXPECT().CreateServer(ctx, executor.ServerOpts{
				Name:    "demo",
				Image:   "ubuntu",
				Flavor:  "m1.small",
				Network: "demo-net",
				Extra:   map[string]interface{}{"key_name": "ssh-key"},
			}).Return(&servers.Server{ID: "s1", Name: "demo", Status: cloudprovider.ServerStatusBuild}, nil).Times(1)

			res, err := drv.AllocateNode(ctx, req)
			Expect(err).NotTo(HaveOccurred())
			Expect(res.ID).To(Equal("s1"))
			Expect(res.Name()).To(Equal("demo"))
			Expect(res.Status()).To(Equal(cloudprovider.ServerStatusBuild))
		})

		It("should return creation errors unchanged", func() {
			quota := gophercloud.ErrUnexpectedResponseCode{Actual: http.StatusForbidden}
			backend.EXPECT().CreateServer(ctx, gomock.Any()).Return(nil, quota)

			_, err := drv.AllocateNode(ctx, req)
			Expect(err).To(Equal(quota))
		})
	})

	Context("#DeallocateNode", func() {
		It("should delete once and release floating IPs", func() {
			backend.EXPECT().DeleteServer(ctx, "s1", executor.DeleteServerOpts{DeleteIPs: true}).Return(nil).Times(1)

			Expect(drv.DeallocateNode(ctx, "s1")).To(Succeed())
		})

		It("should surface not found errors", func() {
			notFound := gophercloud.ErrUnexpectedResponseCode{Actual: http.StatusNotFound}
			backend.EXPECT().DeleteServer(ctx, "missing", executor.DeleteServerOpts{DeleteIPs: true}).Return(notFound)

			err := drv.DeallocateNode(ctx, "missing")
			Expect(client.IsNotFoundError(err)).To(BeTrue())
		})
	})

	Context("#GetNode", func() {
		It("should reflect the current status on every call", func() {
			gomock.InOrder(
				backend.EXPECT().CreateServer(ctx, gomock.Any()).Return(&servers.Server{ID: "s1", Status: cloudprovider.ServerStatusBuild}, nil),
				backend.EXPECT().GetServer(ctx, "s1").Return(&servers.Server{ID: "s1", Status: cloudprovider.ServerStatusBuild}, nil),
				backend.EXPECT().GetServer(ctx, "s1").Return(&servers.Server{ID: "s1", Status: cloudprovider.ServerStatusActive}, nil),
			)

			created, err := drv.AllocateNode(ctx, provider.AllocateNodeRequest{Name: "demo", Image: "i", Flavor: "f", Network: "n"})
			Expect(err).NotTo(HaveOccurred())

			first, err := drv.GetNode(ctx, created.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(first.Status()).To(Equal(cloudprovider.ServerStatusBuild))

			second, err := drv.GetNode(ctx, created.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(second.Status()).To(Equal(cloudprovider.ServerStatusActive))
			Expect(first.Status()).To(Equal(cloudprovider.ServerStatusBuild))
		})

		It("should surface not found errors", func() {
			notFound := gophercloud.ErrUnexpectedResponseCode{Actual: http.StatusNotFound}
			backend.EXPECT().GetServer(ctx, "missing").Return(nil, notFound)

			_, err := drv.GetNode(ctx, "missing")
			Expect(err).To(Equal(notFound))
		})
	})

	Context("#AllocateIP", func() {
		It("should return an available floating IP", func() {
			backend.EXPECT().AvailableFloatingIP(ctx, "").Return(&floatingips.FloatingIP{ID: "fip1", FloatingIP: "203.0.113.10"}, nil)

			res, err := drv.AllocateIP(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(res.ID).To(Equal("fip1"))
			Expect(res.Attributes.GetString("floating_ip_address")).To(Equal("203.0.113.10"))
		})

		It("should fail if no floating IP is available", func() {
			backend.EXPECT().AvailableFloatingIP(ctx, "").Return(nil, executor.ErrNoFloatingIPAvailable)

			_, err := drv.AllocateIP(ctx)
			Expect(err).To(MatchError(executor.ErrNoFloatingIPAvailable))
		})
	})

	Context("#WaitForNode", func() {
		It("should wait for the active status", func() {
			backend.EXPECT().WaitForServerStatus(ctx, "s1",
				[]string{cloudprovider.ServerStatusBuild}, []string{cloudprovider.ServerStatusActive}, gomock.Any()).Return(nil)

			Expect(drv.WaitForNode(ctx, "s1", 0)).To(Succeed())
		})
	})

	Context("unsupported operations", func() {
		DescribeTable("should fail with NotImplemented without contacting the backend",
			func(op provider.Operation, call func() error) {
				err := call()
				Expect(provider.IsNotImplemented(err)).To(BeTrue())
				Expect(err.Error()).To(ContainSubstring(string(op)))
				Expect(drv.Supports(op)).To(BeFalse())
			},
			Entry("deallocate_ip", provider.OperationDeallocateIP, func() error { return drv.DeallocateIP(ctx, "x") }),
			Entry("associate_ip", provider.OperationAssociateIP, func() error { return drv.AssociateIP(ctx, "x", "y") }),
			Entry("disassociate_ip", provider.OperationDisassociateIP, func() error { return drv.DisassociateIP(ctx, "x", "y") }),
			Entry("get_ip", provider.OperationGetIP, func() error { _, err := drv.GetIP(ctx, "x"); return err }),
			Entry("allocate_secgroup", provider.OperationAllocateSecgroup, func() error { _, err := drv.AllocateSecgroup(ctx, "x", nil); return err }),
			Entry("deallocate_secgroup", provider.OperationDeallocateSecgroup, func() error { return drv.DeallocateSecgroup(ctx, "x") }),
			Entry("modify_secgroup", provider.OperationModifySecgroup, func() error { _, err := drv.ModifySecgroup(ctx, "x", nil); return err }),
			Entry("get_secgroup", provider.OperationGetSecgroup, func() error { _, err := drv.GetSecgroup(ctx, "x"); return err }),
			Entry("allocate_key", provider.OperationAllocateKey, func() error { _, err := drv.AllocateKey(ctx, "x", nil); return err }),
			Entry("deallocate_key", provider.OperationDeallocateKey, func() error { return drv.DeallocateKey(ctx, "x") }),
			Entry("modify_key", provider.OperationModifyKey, func() error { _, err := drv.ModifyKey(ctx, "x", nil); return err }),
			Entry("get_key", provider.OperationGetKey, func() error { _, err := drv.GetKey(ctx, "x"); return err }),
			Entry("allocate_image", provider.OperationAllocateImage, func() error { _, err := drv.AllocateImage(ctx, "x", nil); return err }),
			Entry("deallocate_image", provider.OperationDeallocateImage, func() error { return drv.DeallocateImage(ctx, "x") }),
			Entry("get_image", provider.OperationGetImage, func() error { _, err := drv.GetImage(ctx, "x"); return err }),
		)

		It("should support every other operation", func() {
			supported := 0
			for _, op := range provider.Operations {
				if drv.Supports(op) {
					supported++
				}
			}
			Expect(supported).To(Equal(10))
		})
	})
})
