// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"net/http"
	"os"

	"github.com/gophercloud/gophercloud/v2"
	"github.com/gophercloud/gophercloud/v2/openstack"
	"github.com/gophercloud/utils/v2/openstack/clientconfig"
	corev1 "k8s.io/api/core/v1"
	"k8s.io/klog/v2"

	"github.com/gardener/provider-adapter-openstack/pkg/apis/validation"
)

const defaultUserAgent = "Provider Adapter Openstack"

// Factory can create clients for Nova, Neutron and Glance OpenStack services. It owns the authenticated
// provider client shared by all of them; call Close once the clients are no longer used.
//
// The underlying gophercloud ProviderClient is used concurrently by every client created from the factory.
// Its safety under concurrent use is that of gophercloud and is not extended here.
type Factory struct {
	providerClient *gophercloud.ProviderClient
	region         string
}

// Option can modify client parameters by manipulating EndpointOpts.
type Option func(opts gophercloud.EndpointOpts) gophercloud.EndpointOpts

// NewFactoryFromSecretData can create a Factory from credential data keyed like a kubernetes secret.
func NewFactoryFromSecretData(ctx context.Context, data map[string][]byte) (*Factory, error) {
	if data == nil {
		return nil, fmt.Errorf("secret does not contain any data")
	}
	if errs := validation.ValidateCredentials(data); len(errs) > 0 {
		return nil, fmt.Errorf("invalid credentials: %w", errs.ToAggregate())
	}

	creds := extractCredentialsFromSecretData(data)
	provider, err := newAuthenticatedProviderClientFromCredentials(ctx, creds)
	if err != nil {
		return nil, fmt.Errorf("error creating OpenStack client from credentials: %w", err)
	}

	return &Factory{
		providerClient: provider,
		region:         creds.Region,
	}, nil
}

// NewFactoryFromSecret can create a Factory from a kubernetes secret.
func NewFactoryFromSecret(ctx context.Context, secret *corev1.Secret) (*Factory, error) {
	if secret == nil {
		return nil, fmt.Errorf("secret cannot be nil")
	}

	data := secret.Data
	if len(secret.StringData) > 0 {
		data = make(map[string][]byte, len(secret.Data)+len(secret.StringData))
		for k, v := range secret.Data {
			data[k] = v
		}
		for k, v := range secret.StringData {
			data[k] = []byte(v)
		}
	}
	return NewFactoryFromSecretData(ctx, data)
}

// NewFactoryFromCloud can create a Factory from an entry of a clouds.yaml file. The usual OS_* environment
// variables are taken into account the same way the OpenStack CLI does.
func NewFactoryFromCloud(ctx context.Context, cloudName string) (*Factory, error) {
	clientOpts := &clientconfig.ClientOpts{Cloud: cloudName}

	cloud, err := clientconfig.GetCloudFromYAML(clientOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to read cloud %q from clouds.yaml: %w", cloudName, err)
	}

	config := &tls.Config{} // #nosec: G402 -- Can be parameterized.
	if cloud.Verify != nil && !*cloud.Verify {
		config.InsecureSkipVerify = true
	}
	if cloud.CACertFile != "" {
		caCert, err := os.ReadFile(cloud.CACertFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read CA certificate: %w", err)
		}
		config.RootCAs = x509.NewCertPool()
		config.RootCAs.AppendCertsFromPEM(caCert)
	}
	if cloud.ClientCertFile != "" {
		cert, err := tls.LoadX509KeyPair(cloud.ClientCertFile, cloud.ClientKeyFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load X509 key pair: %w", err)
		}
		config.Certificates = []tls.Certificate{cert}
	}

	ao, err := clientconfig.AuthOptions(clientOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to create client auth options: %w", err)
	}

	provider, err := newAuthenticatedProviderClient(ctx, ao, config)
	if err != nil {
		return nil, fmt.Errorf("error creating OpenStack client for cloud %q: %w", cloudName, err)
	}

	return &Factory{
		providerClient: provider,
		region:         cloud.RegionName,
	}, nil
}

func newAuthenticatedProviderClientFromCredentials(ctx context.Context, credentials *credentials) (*gophercloud.ProviderClient, error) {
	config := &tls.Config{} // #nosec: G402 -- Can be parameterized.

	if credentials.CACert != nil {
		caCertPool := x509.NewCertPool()
		caCertPool.AppendCertsFromPEM(credentials.CACert)
		config.RootCAs = caCertPool
	}

	if credentials.Insecure {
		config.InsecureSkipVerify = true
	}

	if credentials.ClientCert != nil {
		cert, err := tls.X509KeyPair(credentials.ClientCert, credentials.ClientKey)
		if err != nil {
			return nil, fmt.Errorf("failed to create X509 key pair: %v", err)
		}
		config.Certificates = []tls.Certificate{cert}
	}

	clientOpts := new(clientconfig.ClientOpts)
	authInfo := &clientconfig.AuthInfo{
		AuthURL:                     credentials.AuthURL,
		Username:                    credentials.Username,
		Password:                    credentials.Password,
		DomainName:                  credentials.DomainName,
		DomainID:                    credentials.DomainID,
		ProjectName:                 credentials.TenantName,
		ProjectID:                   credentials.TenantID,
		UserDomainName:              credentials.UserDomainName,
		UserDomainID:                credentials.UserDomainID,
		ApplicationCredentialID:     credentials.ApplicationCredentialID,
		ApplicationCredentialName:   credentials.ApplicationCredentialName,
		ApplicationCredentialSecret: credentials.ApplicationCredentialSecret,
	}
	clientOpts.AuthInfo = authInfo

	if clientOpts.AuthInfo.ApplicationCredentialSecret != "" {
		clientOpts.AuthType = clientconfig.AuthV3ApplicationCredential
	}

	ao, err := clientconfig.AuthOptions(clientOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to create client auth options: %w", err)
	}

	return newAuthenticatedProviderClient(ctx, ao, config)
}

func newAuthenticatedProviderClient(ctx context.Context, ao *gophercloud.AuthOptions, config *tls.Config) (*gophercloud.ProviderClient, error) {
	provider, err := openstack.NewClient(ao.IdentityEndpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to create authenticated client: %w", err)
	}

	provider.UserAgent.Prepend(defaultUserAgent)

	var transport http.RoundTripper = &http.Transport{Proxy: http.ProxyFromEnvironment, TLSClientConfig: config}
	if klog.V(6).Enabled() {
		transport = &loggingRoundTripper{
			Rt:     transport,
			Logger: &klogLogger{},
		}
	}
	provider.HTTPClient = http.Client{
		Transport: transport,
	}

	klog.V(4).Infof("authenticating against %s", ao.IdentityEndpoint)
	if err := openstack.Authenticate(ctx, provider, *ao); err != nil {
		return nil, err
	}

	return provider, nil
}

// WithRegion returns an Option that can modify the region a client targets.
func WithRegion(region string) Option {
	return func(opts gophercloud.EndpointOpts) gophercloud.EndpointOpts {
		opts.Region = region
		return opts
	}
}

// WithAvailability returns an Option that selects the endpoint interface (public, internal or admin).
func WithAvailability(availability gophercloud.Availability) Option {
	return func(opts gophercloud.EndpointOpts) gophercloud.EndpointOpts {
		opts.Availability = availability
		return opts
	}
}

func (f *Factory) endpointOpts(opts []Option) gophercloud.EndpointOpts {
	eo := gophercloud.EndpointOpts{Region: f.region}
	for _, opt := range opts {
		eo = opt(eo)
	}
	return eo
}

// Compute returns a client for OpenStack's Nova service.
func (f *Factory) Compute(opts ...Option) (Compute, error) {
	return newNovaV2(f.providerClient, f.endpointOpts(opts))
}

// Network returns a client for OpenStack's Neutron service.
func (f *Factory) Network(opts ...Option) (Network, error) {
	return newNeutronV2(f.providerClient, f.endpointOpts(opts))
}

// Image returns a client for OpenStack's Glance service.
func (f *Factory) Image(opts ...Option) (Image, error) {
	return newGlanceV2(f.providerClient, f.endpointOpts(opts))
}

// Close releases idle connections of the shared provider client. Clients created by the factory must not
// be used afterwards.
func (f *Factory) Close() error {
	if f.providerClient != nil {
		f.providerClient.HTTPClient.CloseIdleConnections()
		f.providerClient = nil
	}
	return nil
}
