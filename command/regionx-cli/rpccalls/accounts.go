// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/regionx/regionxd/account"
	"github.com/regionx/regionxd/balances"
	"github.com/regionx/regionxd/rpc/accounts"
	"github.com/regionx/regionxd/rpc/signed"
)

// GetAccount - balance and next nonce of an account
func (client *Client) GetAccount(who account.AccountId) (*accounts.GetReply, error) {
	arguments := accounts.GetArguments{
		Account: who,
	}
	reply := &accounts.GetReply{}
	err := client.call("Balances.Get", arguments, reply)
	if nil != err {
		return nil, err
	}
	return reply, nil
}

// sign a call with the next nonce of the key's account
func (client *Client) sign(key *account.PrivateKey, method string, params interface{}) (signed.Header, error) {
	info, err := client.GetAccount(key.Account())
	if nil != err {
		return signed.Header{}, err
	}
	return signed.Sign(key, info.Nonce, method, params)
}

// Transfer - move funds to another account
func (client *Client) Transfer(key *account.PrivateKey, to account.AccountId, amount balances.Balance) (*signed.Reply, error) {
	params := accounts.TransferParams{
		To:     to,
		Amount: amount,
	}
	header, err := client.sign(key, accounts.MethodTransfer, params)
	if nil != err {
		return nil, err
	}

	arguments := accounts.TransferArguments{
		Header: header,
		Params: params,
	}
	reply := &signed.Reply{}
	err = client.call(accounts.MethodTransfer, arguments, reply)
	if nil != err {
		return nil, err
	}
	return reply, nil
}
