// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"testing"

	"github.com/regionx/regionxd/fault"
)

var (
	ErrAmountOne       = fault.AmountError("amount one")
	ErrAmountTwo       = fault.AmountError("amount two")
	ErrBridgeOne       = fault.BridgeError("bridge one")
	ErrExistsOne       = fault.ExistsError("exists one ")
	ErrExistsTwo       = fault.ExistsError("exists two")
	ErrExpiredOne      = fault.ExpiredError("expired one")
	ErrInvalidOne      = fault.InvalidError("invalid one")
	ErrNotFoundOne     = fault.NotFoundError("not found one")
	ErrNotFoundTwo     = fault.NotFoundError("not found two")
	ErrProcessOne      = fault.ProcessError("process one")
	ErrUnauthorisedOne = fault.UnauthorisedError("unauthorised one")
)

// test that various errors can be subclassed
func TestClasses(t *testing.T) {
	errorList := []struct {
		err          error
		amount       bool
		bridge       bool
		exists       bool
		expired      bool
		invalid      bool
		notFound     bool
		process      bool
		unauthorised bool
	}{
		{ErrAmountOne, true, false, false, false, false, false, false, false},
		{ErrAmountTwo, true, false, false, false, false, false, false, false},
		{ErrBridgeOne, false, true, false, false, false, false, false, false},
		{ErrExistsOne, false, false, true, false, false, false, false, false},
		{ErrExistsTwo, false, false, true, false, false, false, false, false},
		{ErrExpiredOne, false, false, false, true, false, false, false, false},
		{ErrInvalidOne, false, false, false, false, true, false, false, false},
		{ErrNotFoundOne, false, false, false, false, false, true, false, false},
		{ErrNotFoundTwo, false, false, false, false, false, true, false, false},
		{ErrProcessOne, false, false, false, false, false, false, true, false},
		{ErrUnauthorisedOne, false, false, false, false, false, false, false, true},
		{fault.NotListed, false, false, false, false, false, true, false, false},
		{fault.IncorrectDeposit, true, false, false, false, false, false, false, false},
		{fault.RegionExpired, false, false, false, true, false, false, false, false},
	}

	for i, e := range errorList {
		err := e.err
		if fault.IsErrAmount(err) != e.amount {
			t.Errorf("%d: expected 'amount' == %v for err = %v", i, e.amount, err)
		}
		if fault.IsErrBridge(err) != e.bridge {
			t.Errorf("%d: expected 'bridge' == %v for err = %v", i, e.bridge, err)
		}
		if fault.IsErrExists(err) != e.exists {
			t.Errorf("%d: expected 'exists' == %v for err = %v", i, e.exists, err)
		}
		if fault.IsErrExpired(err) != e.expired {
			t.Errorf("%d: expected 'expired' == %v for err = %v", i, e.expired, err)
		}
		if fault.IsErrInvalid(err) != e.invalid {
			t.Errorf("%d: expected 'invalid' == %v for err = %v", i, e.invalid, err)
		}
		if fault.IsErrNotFound(err) != e.notFound {
			t.Errorf("%d: expected 'not found' == %v for err = %v", i, e.notFound, err)
		}
		if fault.IsErrProcess(err) != e.process {
			t.Errorf("%d: expected 'process' == %v for err = %v", i, e.process, err)
		}
		if fault.IsErrUnauthorised(err) != e.unauthorised {
			t.Errorf("%d: expected 'unauthorised' == %v for err = %v", i, e.unauthorised, err)
		}
	}
}

func TestRetryable(t *testing.T) {
	if !fault.IsRetryable(fault.InsufficientPayment) {
		t.Errorf("insufficient payment should be retryable")
	}
	if fault.IsRetryable(fault.RegionExpired) {
		t.Errorf("expired region should not be retryable")
	}
	if fault.IsRetryable(fault.NotRegionOwner) {
		t.Errorf("unauthorised should not be retryable")
	}
}
