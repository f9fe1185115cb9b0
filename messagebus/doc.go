// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package messagebus - in process queues between the ledgers and the
// publishing background
//
// a committed ledger event is sent on Bus.Broadcast and every
// registered listener receives a copy; with no listener the message
// is dropped
package messagebus
