// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server_test

import (
	"net"
	"net/rpc"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/tweetregistry/address"
	"github.com/bitmark-inc/tweetregistry/counter"
	depositmocks "github.com/bitmark-inc/tweetregistry/deposit/mocks"
	"github.com/bitmark-inc/tweetregistry/fault"
	registrymocks "github.com/bitmark-inc/tweetregistry/registry/mocks"
	"github.com/bitmark-inc/tweetregistry/rpc/admin"
	"github.com/bitmark-inc/tweetregistry/rpc/deposits"
	"github.com/bitmark-inc/tweetregistry/rpc/events"
	"github.com/bitmark-inc/tweetregistry/rpc/fixtures"
	"github.com/bitmark-inc/tweetregistry/rpc/mocks"
	"github.com/bitmark-inc/tweetregistry/rpc/node"
	"github.com/bitmark-inc/tweetregistry/rpc/server"
	"github.com/bitmark-inc/tweetregistry/rpc/tweets"
)

type testServices struct {
	ledger   *depositmocks.MockLedger
	registry *registrymocks.MockRegistry
	events   *mocks.MockLog
	payouts  *mocks.MockPayoutLister
}

func (s testServices) services() server.Services {
	return server.Services{
		Ledger:   s.ledger,
		Registry: s.registry,
		Events:   s.events,
		Payouts:  s.payouts,
	}
}

func newServices(ctl *gomock.Controller) testServices {
	return testServices{
		ledger:   depositmocks.NewMockLedger(ctl),
		registry: registrymocks.NewMockRegistry(ctl),
		events:   mocks.NewMockLog(ctl),
		payouts:  mocks.NewMockPayoutLister(ctl),
	}
}

// serve one rpc server on a loopback port and return a connected client
func connect(t *testing.T, r *rpc.Server) (*rpc.Client, func()) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if nil != err {
		t.Fatalf("listen error: %s", err)
	}
	go r.Accept(l)

	conn, err := net.Dial("tcp", l.Addr().String())
	if nil != err {
		l.Close()
		t.Fatalf("dial error: %s", err)
	}
	client := rpc.NewClient(conn)

	return client, func() {
		client.Close()
		l.Close()
	}
}

// following tests make sure the proper methods are registered on
// each server, the error of each case comes from a specific method

func TestPublicServer(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := newServices(ctl)
	c := counter.Counter(0)
	client, done := connect(t, server.Create(logger.New(fixtures.LogCategory), "1.0", &c, s.services()))
	defer done()

	var getReply tweets.GetReply
	err := client.Call("Tweets.Get", &tweets.GetArguments{}, &getReply)
	assert.Equal(t, fault.MissingParameters.Error(), err.Error(), "wrong Tweets.Get")

	var listReply events.ListReply
	err = client.Call("Events.List", &events.ListArguments{Count: events.MaximumEventsCount + 1}, &listReply)
	assert.Equal(t, fault.InvalidCount.Error(), err.Error(), "wrong Events.List")

	var payoutsReply deposits.PayoutsReply
	err = client.Call("Deposits.Payouts", &deposits.PayoutsArguments{Limit: deposits.MaximumPayoutsCount + 1}, &payoutsReply)
	assert.Equal(t, fault.InvalidCount.Error(), err.Error(), "wrong Deposits.Payouts")

	s.ledger.EXPECT().Balance().Return(uint64(10)).Times(1)
	s.ledger.EXPECT().Owner().Return(address.Address{0xa0}).Times(1)
	s.registry.EXPECT().TotalTweets().Return(uint64(2)).Times(1)
	s.registry.EXPECT().Owner().Return(address.Address{0xa0}).Times(1)
	s.events.EXPECT().Count().Return(uint64(3)).Times(1)

	var infoReply node.InfoReply
	err = client.Call("Node.Info", &node.InfoArguments{}, &infoReply)
	assert.Nil(t, err, "wrong Node.Info")
	assert.Equal(t, "1.0", infoReply.Version, "wrong version")
	assert.Equal(t, uint64(2), infoReply.Tweets, "wrong tweets")

	var withdrawReply admin.WithdrawReply
	err = client.Call("Admin.Withdraw", &admin.WithdrawArguments{}, &withdrawReply)
	assert.NotNil(t, err, "admin service on public server")
}

func TestAdminServer(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := newServices(ctl)
	client, done := connect(t, server.CreateAdmin(logger.New(fixtures.LogCategory), s.services()))
	defer done()

	caller := address.Address{0xe0}
	s.ledger.EXPECT().Withdraw(caller).Return(uint64(0), fault.NotOwner).Times(1)

	var withdrawReply admin.WithdrawReply
	err := client.Call("Admin.Withdraw", &admin.WithdrawArguments{Caller: caller}, &withdrawReply)
	assert.Equal(t, fault.NotOwner.Error(), err.Error(), "wrong Admin.Withdraw")

	var getReply tweets.GetReply
	err = client.Call("Tweets.Get", &tweets.GetArguments{}, &getReply)
	assert.NotNil(t, err, "tweets service on admin server")
}
