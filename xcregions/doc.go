// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package xcregions - wrapped region tokens
//
// A region held in the uniques collection can be wrapped: the item is
// moved into the custody of this contract and a token with the same
// id (the raw region id) is minted to the previous holder.  The token
// follows the usual non-fungible token rules (owner, approvals,
// enumeration) and carries a copy of the region record that can be
// refreshed from the collection.
//
// Each time the same region id is wrapped again its metadata version
// is incremented, so a buyer can tell which record a listing was made
// against.
package xcregions
