// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package coretime

import (
	"encoding/hex"
	"math/bits"

	"github.com/regionx/regionxd/fault"
)

// MaskLength - bytes in a core mask
const MaskLength = 10

// MaskBits - parts a core can be divided into
const MaskBits = MaskLength * 8

// CoreMask - bitmap of the parts of a core a region covers
//
// bit 0 is the most significant bit of the first byte
type CoreMask [MaskLength]byte

// CompleteMask - the whole core
var CompleteMask = CoreMask{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}

// CountOnes - number of parts covered
func (m CoreMask) CountOnes() int {
	n := 0
	for _, b := range m {
		n += bits.OnesCount8(b)
	}
	return n
}

// IsComplete - covers the whole core
func (m CoreMask) IsComplete() bool {
	return m == CompleteMask
}

// String - hex for the fmt package
func (m CoreMask) String() string {
	return hex.EncodeToString(m[:])
}

// MarshalText - hex text
func (m CoreMask) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText - hex text into a mask
func (m *CoreMask) UnmarshalText(s []byte) error {
	if hex.EncodedLen(MaskLength) != len(s) {
		return fault.InvalidRegionId
	}
	_, err := hex.Decode(m[:], s)
	return err
}
