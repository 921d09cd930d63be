// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package cloudprovider

const (
	// ProviderName is the identifier the OpenStack adapter reports.
	ProviderName = "openstack"

	// OpenStackAuthURL is a constant for a key name that is part of the OpenStack cloud Credentials.
	OpenStackAuthURL string = "authURL"
	// OpenStackCACert is a constant for a key name that is part of the OpenStack cloud Credentials.
	OpenStackCACert string = "caCert"
	// OpenStackInsecure is a constant for a key name that is part of the OpenStack cloud Credentials.
	OpenStackInsecure string = "insecure"
	// OpenStackDomainName is a constant for a key name that is part of the OpenStack cloud Credentials.
	OpenStackDomainName string = "domainName"
	// OpenStackDomainID is a constant for a key name that is part of the OpenStack cloud Credentials.
	OpenStackDomainID string = "domainID"
	// OpenStackTenantName is a constant for a key name that is part of the OpenStack cloud Credentials.
	OpenStackTenantName string = "tenantName"
	// OpenStackTenantID is a constant for a key name that is part of the OpenStack cloud Credentials.
	OpenStackTenantID string = "tenantID"
	// OpenStackUserDomainName is a constant for a key name that is part of the OpenStack cloud Credentials.
	OpenStackUserDomainName string = "userDomainName"
	// OpenStackUserDomainID is a constant for a key name that is part of the OpenStack cloud Credentials.
	OpenStackUserDomainID string = "userDomainID"
	// OpenStackUsername is a constant for a key name that is part of the OpenStack cloud Credentials.
	OpenStackUsername string = "username"
	// OpenStackPassword is a constant for a key name that is part of the OpenStack cloud Credentials.
	OpenStackPassword string = "password"
	// OpenStackClientCert is a constant for a key name that is part of the OpenStack cloud Credentials.
	OpenStackClientCert string = "clientCert"
	// OpenStackClientKey is a constant for a key name that is part of the OpenStack cloud Credentials.
	OpenStackClientKey string = "clientKey"
	// OpenStackApplicationCredentialID is a constant for a key name that is part of the OpenStack cloud Credentials.
	OpenStackApplicationCredentialID string = "applicationCredentialID"
	// OpenStackApplicationCredentialName is a constant for a key name that is part of the OpenStack cloud Credentials.
	OpenStackApplicationCredentialName string = "applicationCredentialName"
	// OpenStackApplicationCredentialSecret is a constant for a key name that is part of the OpenStack cloud Credentials.
	OpenStackApplicationCredentialSecret string = "applicationCredentialSecret"
	// OpenStackRegion is a constant for a key name that selects the region of the service endpoints.
	OpenStackRegion string = "region"
)

// Server states as reported by Nova, see https://docs.openstack.org/api-guide/compute/server_concepts.html
const (
	ServerStatusActive  = "ACTIVE"
	ServerStatusBuild   = "BUILD"
	ServerStatusDeleted = "DELETED"
	ServerStatusError   = "ERROR"
)
