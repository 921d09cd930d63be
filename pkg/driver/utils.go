// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package driver

import (
	"fmt"

	"k8s.io/apimachinery/pkg/runtime"

	"github.com/gardener/provider-adapter-openstack/pkg/apis/provider"
)

// toResult wraps a backend record. The attributes carry the JSON field names of the record struct, so
// fields the SDK tags `json:"-"` are not part of the result. For images this drops the raw "size" and
// the custom properties, the size is available as "size_bytes".
func toResult[T any](id string, record *T) (*provider.Result, error) {
	obj, err := runtime.DefaultUnstructuredConverter.ToUnstructured(record)
	if err != nil {
		return nil, fmt.Errorf("failed to convert %T [ID=%q]: %w", record, id, err)
	}

	attrs, err := provider.AttributesFromMap(obj)
	if err != nil {
		return nil, fmt.Errorf("failed to convert %T [ID=%q]: %w", record, id, err)
	}

	return provider.NewResult(id, attrs)
}

// toResults wraps every record in backend order.
func toResults[T any](records []T, getID func(T) string) ([]provider.Result, error) {
	results := make([]provider.Result, 0, len(records))
	for i := range records {
		res, err := toResult(getID(records[i]), &records[i])
		if err != nil {
			return nil, err
		}
		results = append(results, *res)
	}
	return results, nil
}
