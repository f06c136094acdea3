// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package coretime - region identity and region record types
//
// A region is a span of timeslices on one core, partitioned by a
// core mask.  Its identity (begin, core, mask) never changes once
// minted; the record (end, owner, paid) is refreshed from the chain
// the region originates on.
//
// Raw region id layout (u128, big endian):
//
//   begin(4) ++ core(2) ++ mask(10)
//
// Packed record layout:
//
//   end(4) ++ owner(32) ++ 0x00                   - not renewable
//   end(4) ++ owner(32) ++ 0x01 ++ paid(8)        - renewable at price paid
package coretime
