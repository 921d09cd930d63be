// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

// Package validation validates arguments and credentials handed to the OpenStack adapter.
package validation

import (
	"fmt"
	"strings"

	"k8s.io/apimachinery/pkg/util/validation/field"

	. "github.com/gardener/provider-adapter-openstack/pkg/apis/cloudprovider"
	"github.com/gardener/provider-adapter-openstack/pkg/apis/provider"
)

// ValidateAllocateNodeRequest checks that every argument required to allocate a node is present.
func ValidateAllocateNodeRequest(req provider.AllocateNodeRequest) field.ErrorList {
	allErrs := field.ErrorList{}

	required := []struct {
		name  string
		value string
	}{
		{"name", req.Name},
		{"image", req.Image},
		{"flavor", req.Flavor},
		{"network", req.Network},
	}
	for _, r := range required {
		if isEmptyString(r.value) {
			allErrs = append(allErrs, field.Required(field.NewPath(r.name), fmt.Sprintf("Required argument %s not specified", r.name)))
		}
	}

	return allErrs
}

// ValidateCredentials validates that the credential data contains what is needed to authenticate with OpenStack.
func ValidateCredentials(data map[string][]byte) field.ErrorList {
	var (
		ok, ok2 bool
		allErrs = field.ErrorList{}
	)

	root := field.NewPath("data")
	if b, ok := data[OpenStackAuthURL]; !ok || isEmptyStringByteSlice(b) {
		allErrs = append(allErrs, field.Required(root.Key(OpenStackAuthURL), fmt.Sprintf("%s is required", OpenStackAuthURL)))
	}
	if _, ok := data[OpenStackApplicationCredentialID]; !ok {
		if b, ok := data[OpenStackUsername]; !ok || isEmptyStringByteSlice(b) {
			allErrs = append(allErrs, field.Required(root.Key(OpenStackUsername), fmt.Sprintf("%s is required", OpenStackUsername)))
		}
		if b, ok := data[OpenStackPassword]; !ok || isEmptyStringByteSlice(b) {
			allErrs = append(allErrs, field.Required(root.Key(OpenStackPassword), fmt.Sprintf("%s is required", OpenStackPassword)))
		}
	} else {
		if b := data[OpenStackApplicationCredentialID]; isEmptyStringByteSlice(b) {
			allErrs = append(allErrs, field.Required(root.Key(OpenStackApplicationCredentialID), fmt.Sprintf("%s is required", OpenStackApplicationCredentialID)))
		}
		if b, ok := data[OpenStackApplicationCredentialSecret]; !ok || isEmptyStringByteSlice(b) {
			allErrs = append(allErrs, field.Required(root.Key(OpenStackApplicationCredentialSecret), fmt.Sprintf("%s is required", OpenStackApplicationCredentialSecret)))
		}
	}

	domainName, ok := data[OpenStackDomainName]
	domainID, ok2 := data[OpenStackDomainID]
	if (!ok || isEmptyStringByteSlice(domainName)) && (!ok2 || isEmptyStringByteSlice(domainID)) {
		allErrs = append(allErrs, field.Required(root.Key(OpenStackDomainName), fmt.Sprintf("one of the following keys is required [%s|%s]", OpenStackDomainName, OpenStackDomainID)))
	}

	tenantName, ok := data[OpenStackTenantName]
	tenantID, ok2 := data[OpenStackTenantID]
	if (!ok || isEmptyStringByteSlice(tenantName)) && (!ok2 || isEmptyStringByteSlice(tenantID)) {
		allErrs = append(allErrs, field.Required(root.Key(OpenStackTenantName), fmt.Sprintf("one of the following keys is required [%s|%s]", OpenStackTenantName, OpenStackTenantID)))
	}

	if len(data[OpenStackClientCert]) != 0 && len(data[OpenStackClientKey]) == 0 {
		allErrs = append(allErrs, field.Required(root.Key(OpenStackClientKey), fmt.Sprintf("%s is required, if %s is present", OpenStackClientKey, OpenStackClientCert)))
	}

	if insecureStr, ok := data[OpenStackInsecure]; ok {
		switch strings.TrimSpace(string(insecureStr)) {
		case "true", "false", "":
		default:
			allErrs = append(allErrs, field.Invalid(root.Key(OpenStackInsecure), string(insecureStr), "value does not match expected boolean value [\"true\"|\"false\"]"))
		}
	}

	return allErrs
}

// MissingArguments returns the names of the fields reported as required in errs.
func MissingArguments(errs field.ErrorList) []string {
	var names []string
	for _, err := range errs {
		if err.Type == field.ErrorTypeRequired {
			names = append(names, err.Field)
		}
	}
	return names
}

func isEmptyString(s string) bool {
	return len(strings.TrimSpace(s)) == 0
}

func isEmptyStringByteSlice(b []byte) bool {
	return isEmptyString(string(b))
}
