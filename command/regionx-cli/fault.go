// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/regionx/regionxd/fault"
)

// common errors - keep in alphabetic order
const (
	ErrMissingAmount   = fault.InvalidError("amount is required")
	ErrMissingIdentity = fault.InvalidError("identity seed file is required")
	ErrMissingRecord   = fault.NotFoundError("item has no region record")
	ErrMissingRegion   = fault.InvalidError("region id is required")
	ErrNotListed       = fault.NotFoundError("region is not listed")
)
