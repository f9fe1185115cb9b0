// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/tweetregistry/address"
	"github.com/bitmark-inc/tweetregistry/counter"
	"github.com/bitmark-inc/tweetregistry/deposit"
	"github.com/bitmark-inc/tweetregistry/registry"
	"github.com/bitmark-inc/tweetregistry/rpc/ratelimit"
)

const (
	rateLimitNode = 200
	rateBurstNode = 100
)

// EventCounter - size of the event log
type EventCounter interface {
	Count() uint64
}

// Node - type for RPC calls
type Node struct {
	Log      *logger.L
	Limiter  *rate.Limiter
	Start    time.Time
	Version  string
	Ledger   deposit.Ledger
	Registry registry.Registry
	Events   EventCounter
	counter  *counter.Counter
}

// New - create the node RPC
func New(log *logger.L, start time.Time, version string, counter *counter.Counter, ledger deposit.Ledger, r registry.Registry, events EventCounter) *Node {
	return &Node{
		Log:      log,
		Limiter:  rate.NewLimiter(rateLimitNode, rateBurstNode),
		Start:    start,
		Version:  version,
		Ledger:   ledger,
		Registry: r,
		Events:   events,
		counter:  counter,
	}
}

// ---

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - results from info request
type InfoReply struct {
	Version       string          `json:"version"`
	Uptime        string          `json:"uptime"`
	RPCs          uint64          `json:"rpcs"`
	Tweets        uint64          `json:"tweets"`
	Events        uint64          `json:"events"`
	Balance       uint64          `json:"balance,string"`
	DepositOwner  address.Address `json:"depositOwner"`
	RegistryOwner address.Address `json:"registryOwner"`
}

// Info - return some information about this node
func (node *Node) Info(_ *InfoArguments, reply *InfoReply) error {

	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	reply.Version = node.Version
	reply.Uptime = time.Since(node.Start).String()
	reply.RPCs = node.counter.Uint64()
	reply.Tweets = node.Registry.TotalTweets()
	reply.Events = node.Events.Count()
	reply.Balance = node.Ledger.Balance()
	reply.DepositOwner = node.Ledger.Owner()
	reply.RegistryOwner = node.Registry.Owner()
	return nil
}
