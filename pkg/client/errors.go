// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package client

import (
	"errors"
	"net/http"

	"github.com/gophercloud/gophercloud/v2"
)

var (
	// ErrNotFound is returned when a name or ID does not resolve to any resource.
	ErrNotFound = errors.New("resource not found")
	// ErrMultipleFound is returned when a name resolves to more than one resource.
	ErrMultipleFound = errors.New("multiple resources found")
)

// IsNotFoundError checks if an error returned by OpenStack service calls is caused by HTTP 404 status code
// or by a name that could not be resolved.
func IsNotFoundError(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, ErrNotFound) {
		return true
	}

	if gophercloud.ResponseCodeIs(err, http.StatusNotFound) {
		return true
	}

	var e gophercloud.ErrResourceNotFound
	return errors.As(err, &e)
}

// IsUnauthenticated checks if an error returned by OpenStack service calls is caused by HTTP 401 status code.
func IsUnauthenticated(err error) bool {
	if err == nil {
		return false
	}

	return gophercloud.ResponseCodeIs(err, http.StatusUnauthorized)
}

// IsUnauthorized checks if an error returned by OpenStack service calls is caused by HTTP 403 status code.
func IsUnauthorized(err error) bool {
	if err == nil {
		return false
	}

	return gophercloud.ResponseCodeIs(err, http.StatusForbidden)
}

// IsConflict checks if an error returned by OpenStack service calls is caused by HTTP 409 status code,
// e.g. an exhausted quota or a resource in a state that does not allow the operation.
func IsConflict(err error) bool {
	if err == nil {
		return false
	}

	return gophercloud.ResponseCodeIs(err, http.StatusConflict)
}
