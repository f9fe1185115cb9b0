// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/tweetregistry/counter"
	"github.com/bitmark-inc/tweetregistry/deposit"
	"github.com/bitmark-inc/tweetregistry/registry"
	"github.com/bitmark-inc/tweetregistry/rpc/admin"
	"github.com/bitmark-inc/tweetregistry/rpc/deposits"
	"github.com/bitmark-inc/tweetregistry/rpc/events"
	"github.com/bitmark-inc/tweetregistry/rpc/node"
	"github.com/bitmark-inc/tweetregistry/rpc/tweets"
)

// Services - the data sources behind the RPC services
type Services struct {
	Ledger   deposit.Ledger
	Registry registry.Registry
	Events   events.Log
	Payouts  deposits.PayoutLister
}

// Create - the public server: reads, deposits and events
func Create(log *logger.L, version string, rpcCount *counter.Counter, services Services) *rpc.Server {

	start := time.Now().UTC()

	server := rpc.NewServer()

	_ = server.Register(node.New(log, start, version, rpcCount, services.Ledger, services.Registry, services.Events))
	_ = server.Register(deposits.New(log, services.Ledger, services.Payouts))
	_ = server.Register(tweets.New(log, services.Registry))
	_ = server.Register(events.New(log, services.Events))

	return server
}

// CreateAdmin - the privileged server
func CreateAdmin(log *logger.L, services Services) *rpc.Server {

	server := rpc.NewServer()

	_ = server.Register(admin.New(log, services.Ledger, services.Registry))

	return server
}
