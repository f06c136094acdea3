// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/regionx/regionxd/account"
	"github.com/regionx/regionxd/coretime"
	"github.com/regionx/regionxd/rpc/items"
	"github.com/regionx/regionxd/rpc/signed"
	"github.com/regionx/regionxd/uniques"
)

// GetItem - a uniques item with its region record
func (client *Client) GetItem(collection uniques.CollectionId, item coretime.RawRegionId) (*items.ItemReply, error) {
	arguments := items.ItemArguments{
		Collection: collection,
		Item:       item,
	}
	reply := &items.ItemReply{}
	err := client.call("Uniques.Item", arguments, reply)
	if nil != err {
		return nil, err
	}
	return reply, nil
}

// GetHoldings - items held by an account
func (client *Client) GetHoldings(owner account.AccountId, count int) (*items.HoldingsReply, error) {
	arguments := items.HoldingsArguments{
		Owner: owner,
		Count: count,
	}
	reply := &items.HoldingsReply{}
	err := client.call("Uniques.Holdings", arguments, reply)
	if nil != err {
		return nil, err
	}
	return reply, nil
}

// ApproveItem - let delegate transfer a uniques item
func (client *Client) ApproveItem(key *account.PrivateKey, collection uniques.CollectionId, item coretime.RawRegionId, delegate account.AccountId) (*signed.Reply, error) {
	params := items.ApproveTransferParams{
		Collection: collection,
		Item:       item,
		Delegate:   delegate,
	}
	header, err := client.sign(key, items.MethodApproveTransfer, params)
	if nil != err {
		return nil, err
	}

	arguments := items.ApproveTransferArguments{
		Header: header,
		Params: params,
	}
	reply := &signed.Reply{}
	err = client.call(items.MethodApproveTransfer, arguments, reply)
	if nil != err {
		return nil, err
	}
	return reply, nil
}

// CancelItemApproval - withdraw a uniques transfer approval
func (client *Client) CancelItemApproval(key *account.PrivateKey, collection uniques.CollectionId, item coretime.RawRegionId) (*signed.Reply, error) {
	params := items.CancelApprovalParams{
		Collection: collection,
		Item:       item,
	}
	header, err := client.sign(key, items.MethodCancelApproval, params)
	if nil != err {
		return nil, err
	}

	arguments := items.CancelApprovalArguments{
		Header: header,
		Params: params,
	}
	reply := &signed.Reply{}
	err = client.call(items.MethodCancelApproval, arguments, reply)
	if nil != err {
		return nil, err
	}
	return reply, nil
}

// TransferItem - move a uniques item directly
func (client *Client) TransferItem(key *account.PrivateKey, collection uniques.CollectionId, item coretime.RawRegionId, to account.AccountId) (*signed.Reply, error) {
	params := items.TransferParams{
		Collection: collection,
		Item:       item,
		To:         to,
	}
	header, err := client.sign(key, items.MethodTransfer, params)
	if nil != err {
		return nil, err
	}

	arguments := items.TransferArguments{
		Header: header,
		Params: params,
	}
	reply := &signed.Reply{}
	err = client.call(items.MethodTransfer, arguments, reply)
	if nil != err {
		return nil, err
	}
	return reply, nil
}
