// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package executor

import (
	"fmt"
)

var (
	// ErrNoFloatingIPAvailable is returned when no floating IP can be reused and no external network exists to
	// reserve a new one from.
	ErrNoFloatingIPAvailable = fmt.Errorf("no floating IP available")
	// ErrReservedExtra is returned when an extra server argument collides with an argument the executor sets.
	ErrReservedExtra = fmt.Errorf("extra argument is reserved")
)
