// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/tweetregistry/fault"
)

// common errors - keep in alphabetic order
const (
	ErrMissingCaller    = fault.InvalidError("caller address is required")
	ErrMissingJSON      = fault.InvalidError("JSON file is required")
	ErrMissingSelector  = fault.InvalidError("select exactly one of hash, url or cid")
	ErrMissingServerKey = fault.InvalidError("server public key file is required")
	ErrNoUpdate         = fault.InvalidError("at least one content reference is required")
)
