// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server_test

import (
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"os"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/regionx/regionxd/account"
	"github.com/regionx/regionxd/balances"
	"github.com/regionx/regionxd/coretime"
	"github.com/regionx/regionxd/counter"
	"github.com/regionx/regionxd/fault"
	"github.com/regionx/regionxd/fixtures"
	"github.com/regionx/regionxd/market"
	"github.com/regionx/regionxd/rpc/accounts"
	"github.com/regionx/regionxd/rpc/events"
	"github.com/regionx/regionxd/rpc/items"
	"github.com/regionx/regionxd/rpc/listings"
	"github.com/regionx/regionxd/rpc/node"
	"github.com/regionx/regionxd/rpc/regions"
	"github.com/regionx/regionxd/rpc/server"
	"github.com/regionx/regionxd/rpc/signed"
	"github.com/regionx/regionxd/runtime"
	"github.com/regionx/regionxd/storage"
	"github.com/regionx/regionxd/uniques"
	"github.com/regionx/regionxd/xcregions"
)

const (
	collection     = uniques.RegionsCollectionId
	submissionFee  = balances.Balance(1)
	listingDeposit = balances.Balance(100)
	endowment      = balances.Balance(100000)
)

var (
	regionsAddress = account.ContractAccount("xc_regions")
	marketAddress  = account.ContractAccount("coretime_market")
	treasury       = account.ContractAccount("treasury")
)

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	rc := m.Run()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

type testNode struct {
	deps   server.Dependencies
	client *rpc.Client
	region coretime.Region
	raw    coretime.RawRegionId
}

// a node with one region held by Alice in the uniques collection
// and a deployed market, served over an in-memory connection
func setupNode(t *testing.T) *testNode {
	store, err := storage.OpenMemory()
	require.NoError(t, err, "open memory store")

	rt := runtime.New(store, nil, runtime.Configuration{
		SubmissionFee: submissionFee,
		Treasury:      treasury,
	})
	pallet := uniques.NewPallet()
	contract := xcregions.New(regionsAddress, pallet, collection)
	deps := server.Dependencies{
		Runtime: rt,
		Pallet:  pallet,
		Regions: contract,
		Market:  market.New(marketAddress, contract),
	}

	require.NoError(t, rt.Mint(fixtures.Alice, endowment), "endow Alice")
	require.NoError(t, rt.Mint(fixtures.Bob, endowment), "endow Bob")

	region := coretime.Region{
		RegionId: coretime.RegionId{Begin: 30, Core: 1, Mask: coretime.CompleteMask},
		Record:   coretime.Record{End: 60, Owner: fixtures.Alice},
	}
	_, err = rt.Call(fixtures.Alice, uniques.PalletAccount, 0, func(env *runtime.Env) error {
		if err := pallet.CreateCollection(env, collection); nil != err {
			return err
		}
		return pallet.MintRegion(env, collection, region)
	})
	require.NoError(t, err, "genesis region")

	_, err = rt.Call(fixtures.Alice, marketAddress, 0, func(env *runtime.Env) error {
		return deps.Market.Deploy(env, market.Config{
			XcRegionsContract: regionsAddress,
			ListingDeposit:    listingDeposit,
			Treasury:          treasury,
		})
	})
	require.NoError(t, err, "deploy market")

	require.NoError(t, rt.SetRelayBlockNumber(30*coretime.TimeslicePeriod), "relay block")

	count := counter.Counter(0)
	s := server.Create(logger.New(fixtures.LogCategory), deps, "0.1", &count)

	serverConn, clientConn := net.Pipe()
	go s.ServeCodec(jsonrpc.NewServerCodec(serverConn))

	return &testNode{
		deps:   deps,
		client: jsonrpc.NewClient(clientConn),
		region: region,
		raw:    region.RegionId.Raw(),
	}
}

func (n *testNode) close() {
	n.client.Close()
	n.deps.Runtime.Store().Close()
}

func header(t *testing.T, key *account.PrivateKey, nonce uint64, method string, params interface{}) signed.Header {
	h, err := signed.Sign(key, nonce, method, params)
	require.NoError(t, err, "sign")
	return h
}

func TestTradeOverRPC(t *testing.T) {
	n := setupNode(t)
	defer n.close()

	var reply signed.Reply

	approveItem := items.ApproveTransferParams{Collection: collection, Item: n.raw, Delegate: regionsAddress}
	err := n.client.Call("Uniques.ApproveTransfer", items.ApproveTransferArguments{
		Header: header(t, fixtures.AliceKey, 0, items.MethodApproveTransfer, approveItem),
		Params: approveItem,
	}, &reply)
	require.NoError(t, err, "approve item")

	init := regions.InitParams{RegionId: n.raw, Region: n.region}
	err = n.client.Call("Regions.Init", regions.InitArguments{
		Header: header(t, fixtures.AliceKey, 1, regions.MethodInit, init),
		Params: init,
	}, &reply)
	require.NoError(t, err, "init")
	assert.NotEmpty(t, reply.Events, "init events")

	var owner regions.OwnerOfReply
	err = n.client.Call("Regions.OwnerOf", regions.RegionArguments{RegionId: n.raw}, &owner)
	require.NoError(t, err, "owner of")
	require.NotNil(t, owner.Owner, "token owner")
	assert.Equal(t, fixtures.Alice, *owner.Owner, "wrong owner")

	approve := regions.ApproveParams{Operator: marketAddress, RegionId: &n.raw, Approved: true}
	err = n.client.Call("Regions.Approve", regions.ApproveArguments{
		Header: header(t, fixtures.AliceKey, 2, regions.MethodApprove, approve),
		Params: approve,
	}, &reply)
	require.NoError(t, err, "approve market")

	list := listings.ListParams{RegionId: n.raw, TimeslicePrice: 50, Deposit: listingDeposit}
	err = n.client.Call("Market.List", listings.ListArguments{
		Header: header(t, fixtures.AliceKey, 3, listings.MethodList, list),
		Params: list,
	}, &reply)
	require.NoError(t, err, "list")

	var price listings.PriceReply
	err = n.client.Call("Market.Price", listings.RegionArguments{RegionId: n.raw}, &price)
	require.NoError(t, err, "price")
	assert.Equal(t, balances.Balance(1500), price.Price, "wrong price")

	var listed listings.ListedReply
	err = n.client.Call("Market.Listed", listings.ListedArguments{Count: 10}, &listed)
	require.NoError(t, err, "listed")
	require.Equal(t, 1, len(listed.Listings), "wrong listing count")
	assert.Equal(t, n.raw, listed.Listings[0].RegionId, "wrong listed region")
	assert.Equal(t, fixtures.Alice, listed.Listings[0].Listing.Seller, "wrong seller")

	purchase := listings.PurchaseParams{RegionId: n.raw, MetadataVersion: 0, MaxPrice: 1500, Payment: 1500}
	err = n.client.Call("Market.Purchase", listings.PurchaseArguments{
		Header: header(t, fixtures.BobKey, 0, listings.MethodPurchase, purchase),
		Params: purchase,
	}, &reply)
	require.NoError(t, err, "purchase")

	err = n.client.Call("Regions.OwnerOf", regions.RegionArguments{RegionId: n.raw}, &owner)
	require.NoError(t, err, "owner of")
	assert.Equal(t, fixtures.Bob, *owner.Owner, "wrong owner after purchase")

	var bob accounts.GetReply
	err = n.client.Call("Balances.Get", accounts.GetArguments{Account: fixtures.Bob}, &bob)
	require.NoError(t, err, "balance")
	assert.Equal(t, endowment-submissionFee-1500, bob.Balance, "wrong buyer balance")
	assert.Equal(t, uint64(1), bob.Nonce, "wrong buyer nonce")

	var log events.ListReply
	err = n.client.Call("Events.List", events.ListArguments{Start: 0, Count: 100}, &log)
	require.NoError(t, err, "events")
	require.NotEmpty(t, log.Events, "event log")
	last := log.Events[len(log.Events)-1]
	assert.Equal(t, "RegionPurchased", last.Name, "wrong last event")
	assert.Equal(t, last.Sequence+1, log.NextStart, "wrong next start")
}

func TestSubmitRejected(t *testing.T) {
	n := setupNode(t)
	defer n.close()

	var reply signed.Reply

	// replayed nonce
	transfer := accounts.TransferParams{To: fixtures.Bob, Amount: 10}
	err := n.client.Call("Balances.Transfer", accounts.TransferArguments{
		Header: header(t, fixtures.AliceKey, 5, accounts.MethodTransfer, transfer),
		Params: transfer,
	}, &reply)
	assert.EqualError(t, err, fault.InvalidNonce.Error(), "wrong nonce error")

	// params altered after signing
	h := header(t, fixtures.AliceKey, 0, accounts.MethodTransfer, transfer)
	transfer.Amount = 10000
	err = n.client.Call("Balances.Transfer", accounts.TransferArguments{
		Header: h,
		Params: transfer,
	}, &reply)
	assert.Error(t, err, "altered params accepted")

	var alice accounts.GetReply
	err = n.client.Call("Balances.Get", accounts.GetArguments{Account: fixtures.Alice}, &alice)
	require.NoError(t, err, "balance")
	assert.Equal(t, endowment, alice.Balance, "rejected submission was charged")
	assert.Equal(t, uint64(0), alice.Nonce, "rejected submission bumped nonce")

	// a failing call still pays
	unlist := listings.UnlistParams{RegionId: n.raw}
	err = n.client.Call("Market.Unlist", listings.UnlistArguments{
		Header: header(t, fixtures.AliceKey, 0, listings.MethodUnlist, unlist),
		Params: unlist,
	}, &reply)
	assert.EqualError(t, err, fault.NotListed.Error(), "wrong unlist error")

	err = n.client.Call("Balances.Get", accounts.GetArguments{Account: fixtures.Alice}, &alice)
	require.NoError(t, err, "balance")
	assert.Equal(t, endowment-submissionFee, alice.Balance, "failed call not charged")
	assert.Equal(t, uint64(1), alice.Nonce, "failed call did not bump nonce")
}

func TestQueries(t *testing.T) {
	n := setupNode(t)
	defer n.close()

	var info node.InfoReply
	err := n.client.Call("Node.Info", node.InfoArguments{}, &info)
	require.NoError(t, err, "node info")
	assert.Equal(t, "0.1", info.Version, "wrong version")
	assert.Equal(t, uint32(30*coretime.TimeslicePeriod), info.RelayBlockNumber, "wrong relay block")
	assert.Equal(t, coretime.Timeslice(30), info.Timeslice, "wrong timeslice")
	assert.Equal(t, submissionFee, info.SubmissionFee, "wrong fee")

	var marketInfo listings.InfoReply
	err = n.client.Call("Market.Info", listings.InfoArguments{}, &marketInfo)
	require.NoError(t, err, "market info")
	assert.Equal(t, regionsAddress, marketInfo.XcRegionsContract, "wrong regions contract")
	assert.Equal(t, listingDeposit, marketInfo.ListingDeposit, "wrong deposit")

	var item items.ItemReply
	err = n.client.Call("Uniques.Item", items.ItemArguments{Collection: collection, Item: n.raw}, &item)
	require.NoError(t, err, "item")
	require.NotNil(t, item.Details, "item details")
	assert.Equal(t, fixtures.Alice, item.Details.Owner, "wrong item owner")
	require.NotNil(t, item.Record, "item record")
	assert.Equal(t, coretime.Timeslice(60), item.Record.End, "wrong record end")

	var holdings items.HoldingsReply
	err = n.client.Call("Uniques.Holdings", items.HoldingsArguments{Owner: fixtures.Alice, Count: 10}, &holdings)
	require.NoError(t, err, "holdings")
	assert.Equal(t, []uniques.Holding{{Collection: collection, Item: n.raw}}, holdings.Holdings, "wrong holdings")

	err = n.client.Call("Uniques.Holdings", items.HoldingsArguments{Owner: fixtures.Alice, Count: 0}, &holdings)
	assert.EqualError(t, err, fault.InvalidCount.Error(), "wrong count error")

	var data regions.GetReply
	err = n.client.Call("Regions.Get", regions.RegionArguments{RegionId: n.raw}, &data)
	assert.EqualError(t, err, fault.RegionNotFound.Error(), "unwrapped region found")

	var price listings.PriceReply
	err = n.client.Call("Market.Price", listings.RegionArguments{RegionId: n.raw}, &price)
	assert.EqualError(t, err, fault.NotListed.Error(), "unlisted region priced")

	var regionsInfo regions.InfoReply
	err = n.client.Call("Regions.Info", regions.InfoArguments{}, &regionsInfo)
	require.NoError(t, err, "regions info")
	assert.Equal(t, regionsAddress, regionsInfo.Address, "wrong address")
	assert.Equal(t, uint64(0), regionsInfo.TotalSupply, "wrong supply")
}
