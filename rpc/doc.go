// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpc - this is to setup and handle all of the incoming JSON RPC requests
// from clients requiring registry services
//
// standard golang RPC services can be used on the client side to
// access these services
//
// three listeners are started:
//   client_rpc  JSON RPC over TLS: reads, deposits and events
//   admin_rpc   JSON RPC over TLS: privileged writes, restricted by CIDR
//   https_rpc   HTTPS POST of single JSON RPC requests plus a details page
package rpc
