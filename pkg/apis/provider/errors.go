// SPDX-FileCopyrightText: SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package provider

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMissingArgument is matched by errors reporting that a required argument was not specified.
	ErrMissingArgument = errors.New("missing argument")
	// ErrNotImplemented is matched by errors of operations the provider does not support.
	ErrNotImplemented = errors.New("not implemented")
)

// MissingArgumentError is returned when required arguments of an operation are absent or empty.
type MissingArgumentError struct {
	// Operation is the operation that was called.
	Operation Operation
	// Arguments lists the names of the missing arguments.
	Arguments []string
}

func (e *MissingArgumentError) Error() string {
	return fmt.Sprintf("%s: required argument(s) not specified: %s", e.Operation, strings.Join(e.Arguments, ", "))
}

// Is lets errors.Is match ErrMissingArgument.
func (e *MissingArgumentError) Is(target error) bool {
	return target == ErrMissingArgument
}

// NotImplementedError is returned by every operation a provider does not support.
type NotImplementedError struct {
	Provider  string
	Operation Operation
}

func (e *NotImplementedError) Error() string {
	return fmt.Sprintf("provider %q does not implement %s", e.Provider, e.Operation)
}

// Is lets errors.Is match ErrNotImplemented.
func (e *NotImplementedError) Is(target error) bool {
	return target == ErrNotImplemented
}

// IsMissingArgument reports whether err is caused by a missing argument.
func IsMissingArgument(err error) bool {
	return errors.Is(err, ErrMissingArgument)
}

// IsNotImplemented reports whether err is caused by an unsupported operation.
func IsNotImplemented(err error) bool {
	return errors.Is(err, ErrNotImplemented)
}
