// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package executor_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/gophercloud/gophercloud/v2"
	"github.com/gophercloud/gophercloud/v2/openstack/compute/v2/servers"
	"github.com/gophercloud/gophercloud/v2/openstack/networking/v2/extensions/layer3/floatingips"
	"github.com/gophercloud/gophercloud/v2/openstack/networking/v2/ports"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/gardener/provider-adapter-openstack/pkg/apis/cloudprovider"
	"github.com/gardener/provider-adapter-openstack/pkg/client"
	. "github.com/gardener/provider-adapter-openstack/pkg/driver/executor"
	mocks "github.com/gardener/provider-adapter-openstack/pkg/mock/openstack"
)

var _ = Describe("Executor", func() {
	var (
		ctrl    *gomock.Controller
		compute *mocks.MockCompute
		network *mocks.MockNetwork
		image   *mocks.MockImage
		ex      *Executor
		ctx     context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		ctrl = gomock.NewController(GinkgoT())
		compute = mocks.NewMockCompute(ctrl)
		network = mocks.NewMockNetwork(ctrl)
		image = mocks.NewMockImage(ctrl)

		ex = &Executor{
			Compute: compute,
			Network: network,
			Image:   image,
		}
	})

	AfterEach(func() {
		ctrl.Finish()
	})

	Context("Create", func() {
		var (
			nodeName    = "name"
			imageName   = "image"
			flavorName  = "flavor"
			networkName = "network"
			serverID    = "server"
		)

		expectResolution := func() {
			image.EXPECT().ImageIDFromName(ctx, imageName).Return("imageID", nil)
			compute.EXPECT().FlavorIDFromName(ctx, flavorName).Return("flavorID", nil)
			network.EXPECT().NetworkIDFromName(ctx, networkName).Return("networkID", nil)
		}

		It("should take the happy path", func() {
			var body map[string]interface{}

			expectResolution()
			gomock.InOrder(
				compute.EXPECT().CreateServer(ctx, gomock.Any(), nil).DoAndReturn(
					func(_ context.Context, opts servers.CreateOptsBuilder, _ servers.SchedulerHintOptsBuilder) (*servers.Server, error) {
						var err error
						body, err = opts.ToServerCreateMap()
						return &servers.Server{ID: serverID}, err
					}),
				compute.EXPECT().GetServer(ctx, serverID).Return(&servers.Server{
					ID:     serverID,
					Name:   nodeName,
					Status: cloudprovider.ServerStatusBuild,
				}, nil),
			)

			server, err := ex.CreateServer(ctx, ServerOpts{
				Name:    nodeName,
				Image:   imageName,
				Flavor:  flavorName,
				Network: networkName,
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(server.Status).To(Equal(cloudprovider.ServerStatusBuild))

			Expect(body).To(HaveKey("server"))
			srv := body["server"].(map[string]interface{})
			Expect(srv).To(HaveKeyWithValue("name", nodeName))
			Expect(srv).To(HaveKeyWithValue("imageRef", "imageID"))
			Expect(srv).To(HaveKeyWithValue("flavorRef", "flavorID"))
			Expect(srv).To(HaveKey("networks"))
		})

		It("should pass extra arguments into the request body", func() {
			var body map[string]interface{}

			expectResolution()
			compute.EXPECT().CreateServer(ctx, gomock.Any(), nil).DoAndReturn(
				func(_ context.Context, opts servers.CreateOptsBuilder, _ servers.SchedulerHintOptsBuilder) (*servers.Server, error) {
					var err error
					body, err = opts.ToServerCreateMap()
					return &servers.Server{ID: serverID}, err
				})
			compute.EXPECT().GetServer(ctx, serverID).Return(&servers.Server{ID: serverID}, nil)

			_, err := ex.CreateServer(ctx, ServerOpts{
				Name:    nodeName,
				Image:   imageName,
				Flavor:  flavorName,
				Network: networkName,
				Extra: map[string]interface{}{
					"key_name":          "ssh-key",
					"availability_zone": "nova",
				},
			})
			Expect(err).NotTo(HaveOccurred())

			srv := body["server"].(map[string]interface{})
			Expect(srv).To(HaveKeyWithValue("key_name", "ssh-key"))
			Expect(srv).To(HaveKeyWithValue("availability_zone", "nova"))
		})

		It("should refuse extra arguments that override resolved ones before any request", func() {
			_, err := ex.CreateServer(ctx, ServerOpts{
				Name:    nodeName,
				Image:   imageName,
				Flavor:  flavorName,
				Network: networkName,
				Extra:   map[string]interface{}{"flavorRef": "other"},
			})
			Expect(err).To(MatchError(ErrReservedExtra))
		})

		It("should not create a server if the image cannot be resolved", func() {
			image.EXPECT().ImageIDFromName(ctx, imageName).Return("", fmt.Errorf("no image: %w", client.ErrNotFound))

			_, err := ex.CreateServer(ctx, ServerOpts{
				Name:    nodeName,
				Image:   imageName,
				Flavor:  flavorName,
				Network: networkName,
			})
			Expect(err).To(MatchError(client.ErrNotFound))
			Expect(client.IsNotFoundError(err)).To(BeTrue())
		})

		It("should return the error of the compute service", func() {
			quota := gophercloud.ErrUnexpectedResponseCode{Actual: http.StatusConflict}

			expectResolution()
			compute.EXPECT().CreateServer(ctx, gomock.Any(), nil).Return(nil, quota)

			_, err := ex.CreateServer(ctx, ServerOpts{
				Name:    nodeName,
				Image:   imageName,
				Flavor:  flavorName,
				Network: networkName,
			})
			Expect(client.IsConflict(err)).To(BeTrue())
		})
	})

	Context("Delete", func() {
		const serverID = "id1"

		It("should release floating IPs before deleting the server", func() {
			gomock.InOrder(
				network.EXPECT().ListPorts(ctx, ports.ListOpts{DeviceID: serverID}).Return([]ports.Port{{ID: "p1"}, {ID: "p2"}}, nil),
				network.EXPECT().ListFloatingIPs(ctx, floatingips.ListOpts{PortID: "p1"}).Return([]floatingips.FloatingIP{{ID: "fip1"}}, nil),
				network.EXPECT().DeleteFloatingIP(ctx, "fip1").Return(nil),
				network.EXPECT().ListFloatingIPs(ctx, floatingips.ListOpts{PortID: "p2"}).Return(nil, nil),
				compute.EXPECT().DeleteServer(ctx, serverID).Return(nil),
			)

			Expect(ex.DeleteServer(ctx, serverID, DeleteServerOpts{DeleteIPs: true})).To(Succeed())
		})

		It("should only delete the server if floating IPs are kept", func() {
			compute.EXPECT().DeleteServer(ctx, serverID).Return(nil)

			Expect(ex.DeleteServer(ctx, serverID, DeleteServerOpts{})).To(Succeed())
		})

		It("should return not found errors unchanged", func() {
			notFound := gophercloud.ErrUnexpectedResponseCode{Actual: http.StatusNotFound}
			network.EXPECT().ListPorts(ctx, ports.ListOpts{DeviceID: serverID}).Return(nil, nil)
			compute.EXPECT().DeleteServer(ctx, serverID).Return(notFound)

			err := ex.DeleteServer(ctx, serverID, DeleteServerOpts{DeleteIPs: true})
			Expect(err).To(Equal(notFound))
			Expect(client.IsNotFoundError(err)).To(BeTrue())
		})

		It("should keep the server if a floating IP cannot be released", func() {
			network.EXPECT().ListPorts(ctx, ports.ListOpts{DeviceID: serverID}).Return([]ports.Port{{ID: "p1"}}, nil)
			network.EXPECT().ListFloatingIPs(ctx, floatingips.ListOpts{PortID: "p1"}).Return([]floatingips.FloatingIP{{ID: "fip1"}}, nil)
			network.EXPECT().DeleteFloatingIP(ctx, "fip1").Return(errors.New("boom"))

			err := ex.DeleteServer(ctx, serverID, DeleteServerOpts{DeleteIPs: true})
			Expect(err).To(MatchError(ContainSubstring("boom")))
		})
	})

	Context("#AvailableFloatingIP", func() {
		It("should reuse an unassociated floating IP", func() {
			network.EXPECT().ListFloatingIPs(ctx, floatingips.ListOpts{}).Return([]floatingips.FloatingIP{
				{ID: "fip1", PortID: "p1"},
				{ID: "fip2"},
			}, nil)

			fip, err := ex.AvailableFloatingIP(ctx, "")
			Expect(err).NotTo(HaveOccurred())
			Expect(fip.ID).To(Equal("fip2"))
		})

		It("should reserve a new floating IP on the first external network", func() {
			gomock.InOrder(
				network.EXPECT().ListFloatingIPs(ctx, floatingips.ListOpts{}).Return([]floatingips.FloatingIP{{ID: "fip1", PortID: "p1"}}, nil),
				network.EXPECT().ExternalNetworkIDs(ctx).Return([]string{"ext1", "ext2"}, nil),
				network.EXPECT().CreateFloatingIP(ctx, floatingips.CreateOpts{FloatingNetworkID: "ext1"}).Return(&floatingips.FloatingIP{ID: "fip2"}, nil),
			)

			fip, err := ex.AvailableFloatingIP(ctx, "")
			Expect(err).NotTo(HaveOccurred())
			Expect(fip.ID).To(Equal("fip2"))
		})

		It("should restrict the pool to the given network", func() {
			gomock.InOrder(
				network.EXPECT().NetworkIDFromName(ctx, "public").Return("ext2", nil),
				network.EXPECT().ListFloatingIPs(ctx, floatingips.ListOpts{FloatingNetworkID: "ext2"}).Return(nil, nil),
				network.EXPECT().CreateFloatingIP(ctx, floatingips.CreateOpts{FloatingNetworkID: "ext2"}).Return(&floatingips.FloatingIP{ID: "fip3"}, nil),
			)

			fip, err := ex.AvailableFloatingIP(ctx, "public")
			Expect(err).NotTo(HaveOccurred())
			Expect(fip.ID).To(Equal("fip3"))
		})

		It("should fail without external network", func() {
			network.EXPECT().ListFloatingIPs(ctx, floatingips.ListOpts{}).Return(nil, nil)
			network.EXPECT().ExternalNetworkIDs(ctx).Return(nil, nil)

			_, err := ex.AvailableFloatingIP(ctx, "")
			Expect(err).To(MatchError(ErrNoFloatingIPAvailable))
		})
	})

	Context("#WaitForServerStatus", func() {
		const serverID = "id1"

		It("should wait until the server reaches the target status", func() {
			gomock.InOrder(
				compute.EXPECT().GetServer(gomock.Any(), serverID).Return(&servers.Server{ID: serverID, Status: cloudprovider.ServerStatusBuild}, nil),
				compute.EXPECT().GetServer(gomock.Any(), serverID).Return(&servers.Server{ID: serverID, Status: cloudprovider.ServerStatusActive}, nil),
			)

			err := ex.WaitForServerStatus(ctx, serverID,
				[]string{cloudprovider.ServerStatusBuild}, []string{cloudprovider.ServerStatusActive}, 10*time.Second)
			Expect(err).NotTo(HaveOccurred())
		})

		It("should fail on an error status", func() {
			compute.EXPECT().GetServer(gomock.Any(), serverID).Return(&servers.Server{
				ID:     serverID,
				Status: cloudprovider.ServerStatusError,
				Fault:  servers.Fault{Message: "No valid host was found"},
			}, nil)

			err := ex.WaitForServerStatus(ctx, serverID,
				[]string{cloudprovider.ServerStatusBuild}, []string{cloudprovider.ServerStatusActive}, 10*time.Second)
			Expect(err).To(MatchError(ContainSubstring("No valid host was found")))
		})

		It("should treat a missing server as deleted", func() {
			compute.EXPECT().GetServer(gomock.Any(), serverID).Return(nil, gophercloud.ErrUnexpectedResponseCode{Actual: http.StatusNotFound})

			err := ex.WaitForServerStatus(ctx, serverID, nil, []string{cloudprovider.ServerStatusDeleted}, 10*time.Second)
			Expect(err).NotTo(HaveOccurred())
		})
	})
})
