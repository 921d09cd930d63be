// SPDX-FileCopyrightText: SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package provider_test

import (
	"encoding/json"
	"errors"
	"fmt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	. "github.com/gardener/provider-adapter-openstack/pkg/apis/provider"
)

var _ = Describe("Result", func() {
	It("should refuse an empty id", func() {
		_, err := NewResult("  ", nil)
		Expect(err).To(HaveOccurred())
	})

	It("should expose well known attributes", func() {
		r, err := NewResult("id1", Attributes{"name": StringValue("node"), "status": StringValue("BUILD")})
		Expect(err).NotTo(HaveOccurred())
		Expect(r.ID).To(Equal("id1"))
		Expect(r.Name()).To(Equal("node"))
		Expect(r.Status()).To(Equal("BUILD"))
		Expect(r.String()).To(Equal("<Result id1>"))
	})

	It("should default to an empty attribute bag", func() {
		r, err := NewResult("id1", nil)
		Expect(err).NotTo(HaveOccurred())
		Expect(r.Attributes).NotTo(BeNil())
		_, ok := r.Get("name")
		Expect(ok).To(BeFalse())
	})

	It("should marshal the id next to the attributes", func() {
		r, err := NewResult("42", Attributes{"id": IntValue(42), "name": StringValue("n")})
		Expect(err).NotTo(HaveOccurred())
		data, err := json.Marshal(r)
		Expect(err).NotTo(HaveOccurred())
		Expect(data).To(MatchJSON(`{"id":"42","name":"n"}`))
	})
})

var _ = Describe("Errors", func() {
	It("should match missing argument errors", func() {
		var err error = &MissingArgumentError{Operation: OperationAllocateNode, Arguments: []string{"name", "image"}}
		err = fmt.Errorf("wrapped: %w", err)
		Expect(errors.Is(err, ErrMissingArgument)).To(BeTrue())
		Expect(IsMissingArgument(err)).To(BeTrue())
		Expect(IsNotImplemented(err)).To(BeFalse())
		Expect(err.Error()).To(ContainSubstring("allocate_node: required argument(s) not specified: name, image"))
	})

	It("should match not implemented errors", func() {
		err := &NotImplementedError{Provider: "openstack", Operation: OperationGetKey}
		Expect(IsNotImplemented(err)).To(BeTrue())
		Expect(IsMissingArgument(err)).To(BeFalse())
		Expect(err.Error()).To(Equal(`provider "openstack" does not implement get_key`))
	})
})
