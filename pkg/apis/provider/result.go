// SPDX-FileCopyrightText: SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package provider

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Result pairs the backend identifier of a cloud resource with the attributes the backend reported for it.
// A Result is built fresh for every call and is never updated afterwards.
type Result struct {
	// ID is the identifier assigned by the backend, always in string form.
	ID string
	// Attributes holds the resource fields under the backend's own names, e.g. "name", "status" or "vcpus".
	Attributes Attributes
}

// NewResult creates a Result. The id must not be empty.
func NewResult(id string, attrs Attributes) (*Result, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("result id must not be empty")
	}
	if attrs == nil {
		attrs = Attributes{}
	}
	return &Result{ID: id, Attributes: attrs}, nil
}

// Get returns the attribute with the given name.
func (r Result) Get(name string) (Value, bool) {
	return r.Attributes.Get(name)
}

// Name returns the "name" attribute of the resource, if any.
func (r Result) Name() string {
	return r.Attributes.GetString("name")
}

// Status returns the "status" attribute of the resource, if any.
func (r Result) Status() string {
	return r.Attributes.GetString("status")
}

func (r Result) String() string {
	return fmt.Sprintf("<Result %s>", r.ID)
}

// MarshalJSON renders the result as its attributes with the id enforced under "id".
func (r Result) MarshalJSON() ([]byte, error) {
	out := r.Attributes.Interface()
	out["id"] = r.ID
	return json.Marshal(out)
}
