// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/regionx/regionxd/account"
	"github.com/regionx/regionxd/coretime"
	"github.com/regionx/regionxd/rpc/regions"
	"github.com/regionx/regionxd/rpc/signed"
)

// GetRegionsInfo - the xc-regions contract
func (client *Client) GetRegionsInfo() (*regions.InfoReply, error) {
	reply := &regions.InfoReply{}
	err := client.call("Regions.Info", regions.InfoArguments{}, reply)
	if nil != err {
		return nil, err
	}
	return reply, nil
}

// GetRegion - wrapped region data and its metadata version
func (client *Client) GetRegion(id coretime.RawRegionId) (*regions.GetReply, error) {
	arguments := regions.RegionArguments{
		RegionId: id,
	}
	reply := &regions.GetReply{}
	err := client.call("Regions.Get", arguments, reply)
	if nil != err {
		return nil, err
	}
	return reply, nil
}

// GetRegionOwner - holder of a wrapped region
func (client *Client) GetRegionOwner(id coretime.RawRegionId) (*regions.OwnerOfReply, error) {
	arguments := regions.RegionArguments{
		RegionId: id,
	}
	reply := &regions.OwnerOfReply{}
	err := client.call("Regions.OwnerOf", arguments, reply)
	if nil != err {
		return nil, err
	}
	return reply, nil
}

// GetRegionBalance - number of wrapped regions held
func (client *Client) GetRegionBalance(owner account.AccountId) (*regions.BalanceReply, error) {
	arguments := regions.BalanceArguments{
		Owner: owner,
	}
	reply := &regions.BalanceReply{}
	err := client.call("Regions.Balance", arguments, reply)
	if nil != err {
		return nil, err
	}
	return reply, nil
}

// GetAllowance - whether operator may move owner's regions
func (client *Client) GetAllowance(owner account.AccountId, operator account.AccountId, id *coretime.RawRegionId) (*regions.AllowanceReply, error) {
	arguments := regions.AllowanceArguments{
		Owner:    owner,
		Operator: operator,
		RegionId: id,
	}
	reply := &regions.AllowanceReply{}
	err := client.call("Regions.Allowance", arguments, reply)
	if nil != err {
		return nil, err
	}
	return reply, nil
}

// GetTokens - a page of the regions held by owner
func (client *Client) GetTokens(owner account.AccountId, start uint64, count int) (*regions.TokensReply, error) {
	arguments := regions.TokensArguments{
		Owner: owner,
		Start: start,
		Count: count,
	}
	reply := &regions.TokensReply{}
	err := client.call("Regions.Tokens", arguments, reply)
	if nil != err {
		return nil, err
	}
	return reply, nil
}

// InitRegion - wrap an approved uniques item
func (client *Client) InitRegion(key *account.PrivateKey, region coretime.Region) (*signed.Reply, error) {
	params := regions.InitParams{
		RegionId: region.RegionId.Raw(),
		Region:   region,
	}
	header, err := client.sign(key, regions.MethodInit, params)
	if nil != err {
		return nil, err
	}

	arguments := regions.InitArguments{
		Header: header,
		Params: params,
	}
	reply := &signed.Reply{}
	err = client.call(regions.MethodInit, arguments, reply)
	if nil != err {
		return nil, err
	}
	return reply, nil
}

// RegionCall - update, melt or remove a wrapped region
func (client *Client) RegionCall(key *account.PrivateKey, method string, id coretime.RawRegionId) (*signed.Reply, error) {
	params := regions.RegionParams{
		RegionId: id,
	}
	header, err := client.sign(key, method, params)
	if nil != err {
		return nil, err
	}

	arguments := regions.RegionCallArguments{
		Header: header,
		Params: params,
	}
	reply := &signed.Reply{}
	err = client.call(method, arguments, reply)
	if nil != err {
		return nil, err
	}
	return reply, nil
}

// ApproveRegion - grant or revoke an operator
//
// a nil id covers all of the owner's regions
func (client *Client) ApproveRegion(key *account.PrivateKey, operator account.AccountId, id *coretime.RawRegionId, approved bool) (*signed.Reply, error) {
	params := regions.ApproveParams{
		Operator: operator,
		RegionId: id,
		Approved: approved,
	}
	header, err := client.sign(key, regions.MethodApprove, params)
	if nil != err {
		return nil, err
	}

	arguments := regions.ApproveArguments{
		Header: header,
		Params: params,
	}
	reply := &signed.Reply{}
	err = client.call(regions.MethodApprove, arguments, reply)
	if nil != err {
		return nil, err
	}
	return reply, nil
}

// TransferRegion - move a wrapped region
func (client *Client) TransferRegion(key *account.PrivateKey, to account.AccountId, id coretime.RawRegionId) (*signed.Reply, error) {
	params := regions.TransferParams{
		To:       to,
		RegionId: id,
	}
	header, err := client.sign(key, regions.MethodTransfer, params)
	if nil != err {
		return nil, err
	}

	arguments := regions.TransferArguments{
		Header: header,
		Params: params,
	}
	reply := &signed.Reply{}
	err = client.call(regions.MethodTransfer, arguments, reply)
	if nil != err {
		return nil, err
	}
	return reply, nil
}
