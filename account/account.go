// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"
	"fmt"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/sha3"

	"github.com/regionx/regionxd/fault"
)

// miscellaneous constants
const (
	AccountIdLength = ed25519.PublicKeySize
	checksumLength  = 4
)

// AccountId - an on-chain account, the raw ed25519 public key
//
// contract accounts are derived from a name and have no private key
type AccountId [AccountIdLength]byte

// Zero - the account nobody controls
var Zero AccountId

// FromBase58 - convert a Base58 encoded string to an account
func FromBase58(accountBase58Encoded string) (AccountId, error) {
	var id AccountId

	decoded, err := base58.Decode(accountBase58Encoded)
	if nil != err || 0 == len(decoded) {
		return id, fault.CannotDecodeAccount
	}
	if AccountIdLength+checksumLength != len(decoded) {
		return id, fault.InvalidAccountLength
	}

	key := decoded[:AccountIdLength]
	checksum := sha3.Sum256(key)
	if !bytes.Equal(checksum[:checksumLength], decoded[AccountIdLength:]) {
		return id, fault.CannotDecodeAccount
	}

	copy(id[:], key)
	return id, nil
}

// FromBytes - convert and validate a byte slice to an account
func FromBytes(id *AccountId, buffer []byte) error {
	if AccountIdLength != len(buffer) {
		return fault.InvalidAccountLength
	}
	copy(id[:], buffer)
	return nil
}

// ContractAccount - derive the fixed account of a contract instance
func ContractAccount(name string) AccountId {
	return AccountId(sha3.Sum256([]byte("contract:" + name)))
}

// Bytes - byte slice of the public key
func (id AccountId) Bytes() []byte {
	return id[:]
}

// IsZero - true for the unset account
func (id AccountId) IsZero() bool {
	return id == Zero
}

// CheckSignature - verify an ed25519 signature made by this account
func (id AccountId) CheckSignature(message []byte, signature Signature) error {
	if ed25519.SignatureSize != len(signature) {
		return fault.InvalidSignature
	}
	if !ed25519.Verify(id[:], message, signature) {
		return fault.InvalidSignature
	}
	return nil
}

// String - base58 with a 4 byte checksum for use by the fmt package (for %s)
func (id AccountId) String() string {
	checksum := sha3.Sum256(id[:])
	buffer := make([]byte, 0, AccountIdLength+checksumLength)
	buffer = append(buffer, id[:]...)
	buffer = append(buffer, checksum[:checksumLength]...)
	return base58.Encode(buffer)
}

// GoString - for %#v
func (id AccountId) GoString() string {
	return fmt.Sprintf("<account:%x>", id[:])
}

// MarshalText - convert account to base58 text
func (id AccountId) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText - convert base58 text into an account
func (id *AccountId) UnmarshalText(s []byte) error {
	a, err := FromBase58(string(s))
	if nil != err {
		return err
	}
	*id = a
	return nil
}
