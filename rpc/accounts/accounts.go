// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package accounts

import (
	"github.com/bitmark-inc/logger"

	"github.com/regionx/regionxd/account"
	"github.com/regionx/regionxd/balances"
	"github.com/regionx/regionxd/rpc/ratelimit"
	"github.com/regionx/regionxd/rpc/signed"
	"github.com/regionx/regionxd/runtime"
)

const (
	rateLimitBalances = 200
	rateBurstBalances = 100
)

// signed method names
const (
	MethodTransfer = "Balances.Transfer"
)

// Balances - type for RPC calls
type Balances struct {
	Log     *logger.L
	Limiter *ratelimit.Limiter
	Runtime *runtime.Runtime
}

// New - create the balances service
func New(log *logger.L, rt *runtime.Runtime) *Balances {
	return &Balances{
		Log:     log,
		Limiter: ratelimit.New(rateLimitBalances, rateBurstBalances, 1),
		Runtime: rt,
	}
}

// ---

// GetArguments - account to look up
type GetArguments struct {
	Account account.AccountId `json:"account"`
}

// GetReply - committed balance and next nonce
type GetReply struct {
	Account account.AccountId `json:"account"`
	Balance balances.Balance  `json:"balance"`
	Nonce   uint64            `json:"nonce,string"`
}

// Get - balance and nonce of an account
func (b *Balances) Get(arguments *GetArguments, reply *GetReply) error {
	if err := b.Limiter.Limit(); nil != err {
		return err
	}

	reply.Account = arguments.Account
	reply.Balance = b.Runtime.Ledger().Committed(arguments.Account)
	reply.Nonce = b.Runtime.NextNonce(arguments.Account)
	return nil
}

// ---

// TransferParams - signed part of a transfer
type TransferParams struct {
	To     account.AccountId `json:"to"`
	Amount balances.Balance  `json:"amount"`
}

// TransferArguments - a signed transfer
type TransferArguments struct {
	Header signed.Header  `json:"header"`
	Params TransferParams `json:"params"`
}

// Transfer - move currency to another account
func (b *Balances) Transfer(arguments *TransferArguments, reply *signed.Reply) error {
	if err := b.Limiter.Limit(); nil != err {
		return err
	}

	p := arguments.Params
	b.Log.Debugf("transfer: from: %s  to: %s  amount: %d", arguments.Header.Caller, p.To, p.Amount)

	noop := func(env *runtime.Env) error { return nil }
	return signed.Submit(b.Runtime, arguments.Header, MethodTransfer, p, p.To, p.Amount, noop, reply)
}
