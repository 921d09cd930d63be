// SPDX-FileCopyrightText: SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	corev1 "k8s.io/api/core/v1"
	"k8s.io/klog/v2"
	"sigs.k8s.io/yaml"

	"github.com/gardener/provider-adapter-openstack/pkg/apis/cloudprovider"
	"github.com/gardener/provider-adapter-openstack/pkg/client"
	"github.com/gardener/provider-adapter-openstack/pkg/driver"
)

const defaultEnvFile = ".env"

// Environment holds the OS_* variables of an OpenStack RC file.
type Environment struct {
	Cloud string `env:"OS_CLOUD"`

	AuthURL           string `env:"OS_AUTH_URL"`
	Username          string `env:"OS_USERNAME"`
	Password          string `env:"OS_PASSWORD"`
	ProjectName       string `env:"OS_PROJECT_NAME"`
	ProjectID         string `env:"OS_PROJECT_ID"`
	TenantName        string `env:"OS_TENANT_NAME"`
	TenantID          string `env:"OS_TENANT_ID"`
	DomainName        string `env:"OS_DOMAIN_NAME"`
	DomainID          string `env:"OS_DOMAIN_ID"`
	ProjectDomainName string `env:"OS_PROJECT_DOMAIN_NAME"`
	ProjectDomainID   string `env:"OS_PROJECT_DOMAIN_ID"`
	UserDomainName    string `env:"OS_USER_DOMAIN_NAME"`
	UserDomainID      string `env:"OS_USER_DOMAIN_ID"`
	RegionName        string `env:"OS_REGION_NAME"`

	ApplicationCredentialID     string `env:"OS_APPLICATION_CREDENTIAL_ID"`
	ApplicationCredentialName   string `env:"OS_APPLICATION_CREDENTIAL_NAME"`
	ApplicationCredentialSecret string `env:"OS_APPLICATION_CREDENTIAL_SECRET"`

	CACertFile     string `env:"OS_CACERT"`
	ClientCertFile string `env:"OS_CERT"`
	ClientKeyFile  string `env:"OS_KEY"`
	Insecure       bool   `env:"OS_INSECURE" envDefault:"false"`
}

// Tenant returns the project name, falling back to the legacy tenant name.
func (e Environment) Tenant() string {
	if e.ProjectName != "" {
		return e.ProjectName
	}
	return e.TenantName
}

// SecretData converts the environment to credential data as read from a kubernetes secret.
func (e Environment) SecretData() (map[string][]byte, error) {
	data := map[string][]byte{}
	set := func(key, value string) {
		if value != "" {
			data[key] = []byte(value)
		}
	}
	first := func(values ...string) string {
		for _, v := range values {
			if v != "" {
				return v
			}
		}
		return ""
	}

	set(cloudprovider.OpenStackAuthURL, e.AuthURL)
	set(cloudprovider.OpenStackUsername, e.Username)
	set(cloudprovider.OpenStackPassword, e.Password)
	set(cloudprovider.OpenStackTenantName, e.Tenant())
	set(cloudprovider.OpenStackTenantID, first(e.ProjectID, e.TenantID))
	set(cloudprovider.OpenStackDomainName, first(e.ProjectDomainName, e.DomainName, e.UserDomainName))
	set(cloudprovider.OpenStackDomainID, first(e.ProjectDomainID, e.DomainID, e.UserDomainID))
	set(cloudprovider.OpenStackUserDomainName, e.UserDomainName)
	set(cloudprovider.OpenStackUserDomainID, e.UserDomainID)
	set(cloudprovider.OpenStackRegion, e.RegionName)
	set(cloudprovider.OpenStackApplicationCredentialID, e.ApplicationCredentialID)
	set(cloudprovider.OpenStackApplicationCredentialName, e.ApplicationCredentialName)
	set(cloudprovider.OpenStackApplicationCredentialSecret, e.ApplicationCredentialSecret)
	set(cloudprovider.OpenStackInsecure, strconv.FormatBool(e.Insecure))

	files := []struct {
		key  string
		path string
	}{
		{cloudprovider.OpenStackCACert, e.CACertFile},
		{cloudprovider.OpenStackClientCert, e.ClientCertFile},
		{cloudprovider.OpenStackClientKey, e.ClientKeyFile},
	}
	for _, f := range files {
		if f.path == "" {
			continue
		}
		b, err := os.ReadFile(f.path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", f.key, err)
		}
		data[f.key] = b
	}

	return data, nil
}

// LoadEnvironment reads the OS_* variables after loading envFile into the process environment. Variables
// that are already set take precedence over the file. An empty envFile loads ".env" if it exists.
func LoadEnvironment(envFile string) (Environment, error) {
	file := envFile
	if file == "" {
		file = defaultEnvFile
	}
	if err := godotenv.Load(file); err != nil {
		if envFile != "" || !errors.Is(err, fs.ErrNotExist) {
			return Environment{}, fmt.Errorf("failed to load env file %q: %w", file, err)
		}
	} else {
		klog.V(3).Infof("loaded environment from %s", file)
	}

	cfg := Environment{}
	if err := env.Parse(&cfg); err != nil {
		return Environment{}, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}

// ReadSecretFile reads a kubernetes secret manifest in YAML or JSON.
func ReadSecretFile(path string) (*corev1.Secret, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	secret := &corev1.Secret{}
	if err := yaml.UnmarshalStrict(b, secret); err != nil {
		return nil, fmt.Errorf("failed to decode secret %q: %w", path, err)
	}
	return secret, nil
}

// newFactory builds a client factory from the first configured source: secret file, clouds.yaml entry or
// environment.
func newFactory(ctx context.Context, o *Options) (*client.Factory, error) {
	switch {
	case o.SecretFile != "":
		klog.V(2).Infof("using credentials of secret %s", o.SecretFile)
		secret, err := ReadSecretFile(o.SecretFile)
		if err != nil {
			return nil, err
		}
		return client.NewFactoryFromSecret(ctx, secret)

	case o.Cloud != "" || o.env.Cloud != "":
		cloud := o.Cloud
		if cloud == "" {
			cloud = o.env.Cloud
		}
		klog.V(2).Infof("using credentials of cloud %s", cloud)
		return client.NewFactoryFromCloud(ctx, cloud)

	default:
		klog.V(2).Infof("using credentials of the environment")
		data, err := o.env.SecretData()
		if err != nil {
			return nil, err
		}
		return client.NewFactoryFromSecretData(ctx, data)
	}
}

func newOpenStackProvider(ctx context.Context, o *Options) (Provider, error) {
	factory, err := newFactory(ctx, o)
	if err != nil {
		return nil, fmt.Errorf("failed to construct OpenStack client: %w", err)
	}

	p, err := driver.NewOpenStackDriverFromFactory(factory)
	if err != nil {
		_ = factory.Close()
		return nil, err
	}
	return p, nil
}
