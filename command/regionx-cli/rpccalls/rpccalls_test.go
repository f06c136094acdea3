// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls_test

import (
	"bytes"
	"net"
	"net/rpc/jsonrpc"
	"os"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/regionx/regionxd/account"
	"github.com/regionx/regionxd/balances"
	"github.com/regionx/regionxd/command/regionx-cli/rpccalls"
	"github.com/regionx/regionxd/coretime"
	"github.com/regionx/regionxd/counter"
	"github.com/regionx/regionxd/fault"
	"github.com/regionx/regionxd/fixtures"
	"github.com/regionx/regionxd/market"
	"github.com/regionx/regionxd/rpc/regions"
	"github.com/regionx/regionxd/rpc/server"
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
)

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	rc := m.Run()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

// a node holding one uniques region for Alice, a client connected
// to it and the buffer receiving verbose output
func setupClient(t *testing.T) (*rpccalls.Client, *bytes.Buffer, coretime.Region, func()) {
	store, err := storage.OpenMemory()
	require.NoError(t, err, "open memory store")

	rt := runtime.New(store, nil, runtime.Configuration{
		SubmissionFee: submissionFee,
		Treasury:      account.ContractAccount("treasury"),
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
		RegionId: coretime.RegionId{Begin: 30, Core: 3, Mask: coretime.CompleteMask},
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
		})
	})
	require.NoError(t, err, "deploy market")
	require.NoError(t, rt.SetRelayBlockNumber(30*coretime.TimeslicePeriod), "relay block")

	count := counter.Counter(0)
	s := server.Create(logger.New(fixtures.LogCategory), deps, "0.1", &count)

	serverConn, clientConn := net.Pipe()
	go s.ServeCodec(jsonrpc.NewServerCodec(serverConn))

	verbose := &bytes.Buffer{}
	client := rpccalls.NewClientConn(clientConn, true, verbose)

	return client, verbose, region, func() {
		client.Close()
		store.Close()
	}
}

func TestWrapListAndPurchase(t *testing.T) {
	client, verbose, region, done := setupClient(t)
	defer done()

	id := region.RegionId.Raw()

	_, err := client.ApproveItem(fixtures.AliceKey, collection, id, regionsAddress)
	require.NoError(t, err, "approve item")

	reply, err := client.InitRegion(fixtures.AliceKey, region)
	require.NoError(t, err, "init")
	assert.NotEmpty(t, reply.Events, "init events")

	data, err := client.GetRegion(id)
	require.NoError(t, err, "get region")
	assert.Equal(t, uint32(0), data.Version, "wrong version")
	assert.Equal(t, coretime.Timeslice(60), data.Region.End, "wrong end")

	tokens, err := client.GetTokens(fixtures.Alice, 0, 10)
	require.NoError(t, err, "tokens")
	assert.Equal(t, []coretime.RawRegionId{id}, tokens.Tokens, "wrong tokens")

	_, err = client.ApproveRegion(fixtures.AliceKey, marketAddress, &id, true)
	require.NoError(t, err, "approve market")

	allowance, err := client.GetAllowance(fixtures.Alice, marketAddress, &id)
	require.NoError(t, err, "allowance")
	assert.True(t, allowance.Allowed, "market not approved")

	// zero deposit fetches the configured one
	_, err = client.List(&rpccalls.ListData{
		Owner:          fixtures.AliceKey,
		RegionId:       id,
		TimeslicePrice: 50,
	})
	require.NoError(t, err, "list")

	listing, err := client.GetListing(id)
	require.NoError(t, err, "listing")
	require.NotNil(t, listing.Listing, "listing missing")
	assert.Equal(t, listingDeposit, listing.Listing.Deposit, "wrong deposit")

	_, err = client.UpdatePrice(fixtures.AliceKey, id, 40)
	require.NoError(t, err, "update price")

	price, err := client.GetPrice(id)
	require.NoError(t, err, "price")
	assert.Equal(t, balances.Balance(1200), price.Price, "wrong price")

	// version and price come from the node
	_, err = client.Purchase(&rpccalls.PurchaseData{
		Buyer:    fixtures.BobKey,
		RegionId: id,
	})
	require.NoError(t, err, "purchase")

	owner, err := client.GetRegionOwner(id)
	require.NoError(t, err, "owner")
	require.NotNil(t, owner.Owner, "no owner")
	assert.Equal(t, fixtures.Bob, *owner.Owner, "wrong owner")

	bob, err := client.GetAccount(fixtures.Bob)
	require.NoError(t, err, "bob")
	assert.Equal(t, endowment-submissionFee-1200, bob.Balance, "wrong buyer balance")

	balance, err := client.GetRegionBalance(fixtures.Bob)
	require.NoError(t, err, "region balance")
	assert.Equal(t, uint32(1), balance.Balance, "wrong region balance")

	listed, err := client.GetListed(nil, 10)
	require.NoError(t, err, "listed")
	assert.Empty(t, listed.Listings, "listing remains")

	assert.Contains(t, verbose.String(), "Market.Purchase Request:", "verbose output missing")
}

func TestTransferAndEvents(t *testing.T) {
	client, _, _, done := setupClient(t)
	defer done()

	_, err := client.Transfer(fixtures.AliceKey, fixtures.Charlie, 250)
	require.NoError(t, err, "first transfer")
	_, err = client.Transfer(fixtures.AliceKey, fixtures.Charlie, 250)
	require.NoError(t, err, "second transfer uses next nonce")

	charlie, err := client.GetAccount(fixtures.Charlie)
	require.NoError(t, err, "charlie")
	assert.Equal(t, balances.Balance(500), charlie.Balance, "wrong balance")

	alice, err := client.GetAccount(fixtures.Alice)
	require.NoError(t, err, "alice")
	assert.Equal(t, uint64(2), alice.Nonce, "wrong nonce")
	assert.Equal(t, endowment-500-2*submissionFee, alice.Balance, "wrong balance")

	info, err := client.GetNodeInfo()
	require.NoError(t, err, "node info")
	assert.Equal(t, coretime.Timeslice(30), info.Timeslice, "wrong timeslice")

	log, err := client.GetEvents(0, 100)
	require.NoError(t, err, "events")
	assert.Equal(t, info.NextEvent, log.NextStart, "wrong next start")
}

func TestCallErrors(t *testing.T) {
	client, _, region, done := setupClient(t)
	defer done()

	id := region.RegionId.Raw()

	_, err := client.RegionCall(fixtures.AliceKey, regions.MethodMelt, id)
	assert.EqualError(t, err, fault.RegionNotFound.Error(), "melt of unwrapped region")

	_, err = client.GetPrice(id)
	assert.EqualError(t, err, fault.NotListed.Error(), "unlisted region priced")

	_, err = client.Unlist(fixtures.AliceKey, id)
	assert.EqualError(t, err, fault.NotListed.Error(), "unlist of unlisted region")
}
