// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls_test

import (
	"bytes"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/tweetregistry/address"
	"github.com/bitmark-inc/tweetregistry/command/registry-cli/rpccalls"
	depositmocks "github.com/bitmark-inc/tweetregistry/deposit/mocks"
	"github.com/bitmark-inc/tweetregistry/fault"
	"github.com/bitmark-inc/tweetregistry/fingerprint"
	"github.com/bitmark-inc/tweetregistry/registry"
	registrymocks "github.com/bitmark-inc/tweetregistry/registry/mocks"
	"github.com/bitmark-inc/tweetregistry/rpc/admin"
	"github.com/bitmark-inc/tweetregistry/rpc/fixtures"
	"github.com/bitmark-inc/tweetregistry/rpc/tweets"
)

// serve the given services over an in memory connection
func connect(t *testing.T, verbose bool, services ...interface{}) (*rpccalls.Client, *bytes.Buffer) {
	server := rpc.NewServer()
	for _, s := range services {
		err := server.Register(s)
		assert.Nil(t, err, "register error")
	}

	serverConn, clientConn := net.Pipe()
	go server.ServeCodec(jsonrpc.NewServerCodec(serverConn))

	buffer := &bytes.Buffer{}
	return rpccalls.NewClientFromConn(clientConn, verbose, buffer), buffer
}

func TestTweetCalls(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	r := registrymocks.NewMockRegistry(ctl)
	client, _ := connect(t, false, tweets.New(logger.New(fixtures.LogCategory), r))
	defer client.Close()

	url := "https://x.com/alice/status/1"
	fp := fingerprint.FromURL(url)
	tweet := &registry.Tweet{
		Identity: registry.Identity{Fingerprint: fp, URL: url, Handle: "alice"},
		Content:  "hello",
	}

	r.EXPECT().GetTweetByURL(url).Return(tweet, nil).Times(1)
	r.EXPECT().Exists(fp).Return(true).Times(1)
	r.EXPECT().GetTweetsByUser("alice", uint64(0), uint64(5)).Return([]fingerprint.Fingerprint{fp}, nil).Times(1)
	r.EXPECT().UserTweetCount("alice").Return(uint64(1)).Times(1)
	r.EXPECT().GetAllCIDs(uint64(0), uint64(5)).Return([]string{"QmA"}, nil).Times(1)

	got, err := client.GetTweet(tweets.GetArguments{URL: url})
	assert.Nil(t, err, "wrong GetTweet")
	assert.Equal(t, tweet, got, "wrong tweet")

	exists, err := client.Exists(fp)
	assert.Nil(t, err, "wrong Exists")
	assert.True(t, exists, "tweet not found")

	hashes, err := client.ListUser(rpccalls.PageData{Key: "alice", Limit: 5})
	assert.Nil(t, err, "wrong ListUser")
	assert.Equal(t, []fingerprint.Fingerprint{fp}, hashes.Hashes, "wrong hashes")
	assert.Equal(t, uint64(1), hashes.Total, "wrong total")

	cids, err := client.ListCIDs(rpccalls.PageData{Limit: 5})
	assert.Nil(t, err, "wrong ListCIDs")
	assert.Equal(t, []string{"QmA"}, cids, "wrong cids")

	_, err = client.GetTweet(tweets.GetArguments{})
	assert.NotNil(t, err, "empty selector accepted")
	assert.Equal(t, fault.MissingParameters.Error(), err.Error(), "wrong error")
}

func TestAdminCalls(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	ledger := depositmocks.NewMockLedger(ctl)
	r := registrymocks.NewMockRegistry(ctl)
	client, buffer := connect(t, true, admin.New(logger.New(fixtures.LogCategory), ledger, r))
	defer client.Close()

	owner := address.Address{19: 0xa0}
	newOwner := address.Address{19: 0xb0}

	ledger.EXPECT().Withdraw(owner).Return(uint64(300), nil).Times(1)
	r.EXPECT().TransferOwnership(owner, newOwner).Return(nil).Times(1)
	r.EXPECT().Owner().Return(newOwner).Times(1)

	amount, err := client.Withdraw(owner)
	assert.Nil(t, err, "wrong Withdraw")
	assert.Equal(t, uint64(300), amount, "wrong amount")

	got, err := client.TransferOwnership(owner, newOwner)
	assert.Nil(t, err, "wrong TransferOwnership")
	assert.Equal(t, newOwner, got, "wrong owner")

	assert.Contains(t, buffer.String(), "Admin.Withdraw Request:", "missing verbose request")
	assert.Contains(t, buffer.String(), "Admin.TransferOwnership Reply:", "missing verbose reply")
}
