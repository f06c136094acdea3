// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package uniques

import (
	"fmt"

	"github.com/regionx/regionxd/fault"
)

// Code - pallet status code
type Code uint32

// pallet status codes
const (
	CodeSuccess              Code = 0
	CodeNoPermission         Code = 1
	CodeUnknownCollection    Code = 2
	CodeAlreadyExists        Code = 3
	CodeWrongOwner           Code = 4
	CodeBadWitness           Code = 5
	CodeInUse                Code = 6
	CodeFrozen               Code = 7
	CodeWrongDelegate        Code = 8
	CodeNoDelegate           Code = 9
	CodeUnapproved           Code = 10
	CodeUnaccepted           Code = 11
	CodeLocked               Code = 12
	CodeMaxSupplyReached     Code = 13
	CodeMaxSupplyAlreadySet  Code = 14
	CodeMaxSupplyTooSmall    Code = 15
	CodeUnknownItem          Code = 16
	CodeNotForSale           Code = 17
	CodeBidTooLow            Code = 18
	CodeOriginCannotBeCaller Code = 98
	CodeRuntimeError         Code = 99
)

// Error - raw pallet failure, never returned to contracts
type Error struct {
	Code Code
}

func (e *Error) Error() string {
	return fmt.Sprintf("uniques status code: %d", e.Code)
}

func statusError(code Code) error {
	return &Error{Code: code}
}

var translation = map[Code]error{
	CodeNoPermission:         fault.BridgeNoPermission,
	CodeUnknownCollection:    fault.BridgeUnknownCollection,
	CodeAlreadyExists:        fault.BridgeAlreadyExists,
	CodeWrongOwner:           fault.BridgeWrongOwner,
	CodeBadWitness:           fault.BridgeBadWitness,
	CodeInUse:                fault.BridgeInUse,
	CodeFrozen:               fault.BridgeFrozen,
	CodeWrongDelegate:        fault.BridgeWrongDelegate,
	CodeNoDelegate:           fault.BridgeNoDelegate,
	CodeUnapproved:           fault.BridgeUnapproved,
	CodeUnaccepted:           fault.BridgeUnaccepted,
	CodeLocked:               fault.BridgeLocked,
	CodeMaxSupplyReached:     fault.BridgeMaxSupplyReached,
	CodeMaxSupplyAlreadySet:  fault.BridgeMaxSupplyAlreadySet,
	CodeMaxSupplyTooSmall:    fault.BridgeMaxSupplyTooSmall,
	CodeUnknownItem:          fault.BridgeUnknownItem,
	CodeNotForSale:           fault.BridgeNotForSale,
	CodeBidTooLow:            fault.BridgeBidTooLow,
	CodeOriginCannotBeCaller: fault.BridgeOriginCannotBeCaller,
	CodeRuntimeError:         fault.BridgeRuntimeError,
}

// FromStatusCode - translate a status code, nil for success
func FromStatusCode(code Code) error {
	if CodeSuccess == code {
		return nil
	}
	if err, ok := translation[code]; ok {
		return err
	}
	return fault.BridgeUnknownStatusCode
}

// Translate - map a pallet failure to a bridge error
//
// errors that are not pallet failures pass through unchanged
func Translate(err error) error {
	if nil == err {
		return nil
	}
	if e, ok := err.(*Error); ok {
		return FromStatusCode(e.Code)
	}
	return err
}
