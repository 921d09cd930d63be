// SPDX-FileCopyrightText: SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/gardener/provider-adapter-openstack/pkg/apis/cloudprovider"
	"github.com/gardener/provider-adapter-openstack/pkg/apis/validation"
)

var _ = Describe("Config", func() {
	var dir string

	BeforeEach(func() {
		dir = GinkgoT().TempDir()
	})

	Context("#LoadEnvironment", func() {
		It("should read OS_* variables from an env file without overriding the process environment", func() {
			GinkgoT().Setenv("OS_USERNAME", "from-process")
			file := filepath.Join(dir, "openrc.env")
			Expect(os.WriteFile(file, []byte("OS_AUTH_URL=https://keystone.example.com/v3\nOS_USERNAME=from-file\nOS_PROJECT_NAME=demo\nOS_INSECURE=true\n"), 0o600)).To(Succeed())
			DeferCleanup(os.Unsetenv, "OS_AUTH_URL")
			DeferCleanup(os.Unsetenv, "OS_PROJECT_NAME")
			DeferCleanup(os.Unsetenv, "OS_INSECURE")

			e, err := LoadEnvironment(file)
			Expect(err).NotTo(HaveOccurred())
			Expect(e.AuthURL).To(Equal("https://keystone.example.com/v3"))
			Expect(e.Username).To(Equal("from-process"))
			Expect(e.Tenant()).To(Equal("demo"))
			Expect(e.Insecure).To(BeTrue())
		})

		It("should fail on a missing explicit env file", func() {
			_, err := LoadEnvironment(filepath.Join(dir, "missing.env"))
			Expect(err).To(HaveOccurred())
		})
	})

	Context("#SecretData", func() {
		It("should produce valid credentials", func() {
			caFile := filepath.Join(dir, "ca.pem")
			Expect(os.WriteFile(caFile, []byte("ca"), 0o600)).To(Succeed())

			e := Environment{
				AuthURL:           "https://keystone.example.com/v3",
				Username:          "user",
				Password:          "secret",
				TenantName:        "demo",
				ProjectDomainName: "default",
				RegionName:        "RegionOne",
				CACertFile:        caFile,
			}

			data, err := e.SecretData()
			Expect(err).NotTo(HaveOccurred())
			Expect(validation.ValidateCredentials(data)).To(BeEmpty())
			Expect(data).To(HaveKeyWithValue(cloudprovider.OpenStackTenantName, []byte("demo")))
			Expect(data).To(HaveKeyWithValue(cloudprovider.OpenStackDomainName, []byte("default")))
			Expect(data).To(HaveKeyWithValue(cloudprovider.OpenStackRegion, []byte("RegionOne")))
			Expect(data).To(HaveKeyWithValue(cloudprovider.OpenStackCACert, []byte("ca")))
			Expect(data).To(HaveKeyWithValue(cloudprovider.OpenStackInsecure, []byte("false")))
		})
	})

	Context("#ReadSecretFile", func() {
		It("should decode secret manifests", func() {
			file := filepath.Join(dir, "secret.yaml")
			Expect(os.WriteFile(file, []byte(`apiVersion: v1
kind: Secret
metadata:
  name: openstack
stringData:
  authURL: https://keystone.example.com/v3
data:
  password: c2VjcmV0
`), 0o600)).To(Succeed())

			secret, err := ReadSecretFile(file)
			Expect(err).NotTo(HaveOccurred())
			Expect(secret.Name).To(Equal("openstack"))
			Expect(secret.StringData).To(HaveKeyWithValue("authURL", "https://keystone.example.com/v3"))
			Expect(secret.Data).To(HaveKeyWithValue("password", []byte("secret")))
		})
	})
})
