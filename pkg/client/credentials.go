// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"strings"

	"github.com/gardener/provider-adapter-openstack/pkg/apis/cloudprovider"
)

type credentials struct {
	DomainName     string
	DomainID       string
	UserDomainName string
	UserDomainID   string

	TenantID   string
	TenantName string

	Username string
	Password string

	ApplicationCredentialID     string
	ApplicationCredentialName   string
	ApplicationCredentialSecret string

	CACert     []byte
	ClientKey  []byte
	ClientCert []byte
	Insecure   bool

	AuthURL string
	Region  string
}

func extractCredentialsFromSecretData(data map[string][]byte) *credentials {
	get := func(key string) string {
		return strings.TrimSpace(string(data[key]))
	}
	// certificates are passed on untrimmed, an absent key yields nil
	raw := func(key string) []byte {
		if b, ok := data[key]; ok && len(b) > 0 {
			return b
		}
		return nil
	}

	return &credentials{
		DomainName:                  get(cloudprovider.OpenStackDomainName),
		DomainID:                    get(cloudprovider.OpenStackDomainID),
		UserDomainName:              get(cloudprovider.OpenStackUserDomainName),
		UserDomainID:                get(cloudprovider.OpenStackUserDomainID),
		TenantName:                  get(cloudprovider.OpenStackTenantName),
		TenantID:                    get(cloudprovider.OpenStackTenantID),
		Username:                    get(cloudprovider.OpenStackUsername),
		Password:                    get(cloudprovider.OpenStackPassword),
		ApplicationCredentialID:     get(cloudprovider.OpenStackApplicationCredentialID),
		ApplicationCredentialName:   get(cloudprovider.OpenStackApplicationCredentialName),
		ApplicationCredentialSecret: get(cloudprovider.OpenStackApplicationCredentialSecret),
		AuthURL:                     get(cloudprovider.OpenStackAuthURL),
		Region:                      get(cloudprovider.OpenStackRegion),
		ClientCert:                  raw(cloudprovider.OpenStackClientCert),
		ClientKey:                   raw(cloudprovider.OpenStackClientKey),
		CACert:                      raw(cloudprovider.OpenStackCACert),
		Insecure:                    get(cloudprovider.OpenStackInsecure) == "true",
	}
}
