// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++           = concatenation of byte data
// 3. count/index  = big endian uint64 (8 bytes)
// 4. account      = 32 byte ed25519 public key
// 5. region id    = 16 byte raw region id (big endian u128)
// 6. collection   = big endian uint32 (4 bytes)
// 7. contract     = 32 byte contract account
//
// Runtime:
//
//   S ++ name                     - chain state (relay block, event sequence)
//                                   data: count
//   B ++ account                  - free balance
//                                   data: count
//   N ++ account                  - next nonce for signed submission
//                                   data: count
//   E ++ sequence                 - committed event log
//                                   data: JSON event record
//   C ++ contract ++ name         - contract constructor data
//                                   data: field specific
//
// Uniques (ledger NFT collections):
//
//   c ++ collection               - collection admin
//                                   data: account
//   i ++ collection ++ region id  - item owner
//                                   data: account
//   a ++ collection ++ region id  - transfer delegate
//                                   data: account
//   r ++ collection ++ region id  - region record attribute
//                                   data: packed record
//   o ++ account ++ collection ++ region id
//                                 - items held by an account
//                                   data: empty
//
// Wrapped region tokens:
//
//   T ++ region id                - token owner
//                                   data: account
//   K ++ account                  - number of tokens held
//                                   data: count
//   L ++ account ++ index         - tokens held, enumerable
//                                   data: region id
//   D ++ account ++ region id     - position in L for delete after transfer
//                                   data: index
//   G ++ index                    - all tokens, enumerable
//                                   data: region id
//   P ++ region id                - position in G
//                                   data: index
//   A ++ owner ++ operator        - operator approved for all tokens
//                                   data: empty
//   A ++ region id                - operators approved for one token
//                                   data: concatenated accounts
//   R ++ region id                - region record
//                                   data: packed record
//   V ++ region id                - metadata version
//                                   data: count
//
// Market:
//
//   M ++ region id                - active listing
//                                   data: packed listing
package storage
