// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package signed - signed call arguments shared by server and client
//
// A mutating RPC carries a Header next to its parameters.  The signed
// message is the canonical JSON of {method, params}, so the server
// rebuilds it from the decoded arguments and never trusts a client
// supplied payload.
package signed

import (
	"encoding/json"

	"github.com/regionx/regionxd/account"
	"github.com/regionx/regionxd/balances"
	"github.com/regionx/regionxd/fault"
	"github.com/regionx/regionxd/runtime"
)

// Header - who signed a call and with which nonce
type Header struct {
	Caller    account.AccountId `json:"caller"`
	Nonce     uint64            `json:"nonce,string"`
	Signature account.Signature `json:"signature"`
}

type packedCall struct {
	Method string      `json:"method"`
	Params interface{} `json:"params"`
}

// Pack - canonical bytes of a call
func Pack(method string, params interface{}) ([]byte, error) {
	if "" == method || nil == params {
		return nil, fault.MissingParameters
	}
	return json.Marshal(packedCall{Method: method, Params: params})
}

// Sign - header for a call signed by key
func Sign(key *account.PrivateKey, nonce uint64, method string, params interface{}) (Header, error) {
	call, err := Pack(method, params)
	if nil != err {
		return Header{}, err
	}
	ex := runtime.Sign(key, nonce, call)
	return Header{
		Caller:    ex.Caller,
		Nonce:     ex.Nonce,
		Signature: ex.Signature,
	}, nil
}

// Extrinsic - the runtime submission for a received call
func (h Header) Extrinsic(method string, params interface{}) (runtime.Extrinsic, error) {
	call, err := Pack(method, params)
	if nil != err {
		return runtime.Extrinsic{}, err
	}
	return runtime.Extrinsic{
		Caller:    h.Caller,
		Nonce:     h.Nonce,
		Call:      call,
		Signature: h.Signature,
	}, nil
}

// Reply - events of a submitted call
type Reply struct {
	Events []runtime.EventRecord `json:"events"`
}

// Submit - check a signed call, charge the fee and run fn as the
// caller against contract with value attached
func Submit(rt *runtime.Runtime, h Header, method string, params interface{}, contract account.AccountId, value balances.Balance, fn runtime.Function, reply *Reply) error {
	ex, err := h.Extrinsic(method, params)
	if nil != err {
		return err
	}
	events, err := rt.Submit(ex, contract, value, fn)
	if nil != err {
		return err
	}
	reply.Events = events
	return nil
}
