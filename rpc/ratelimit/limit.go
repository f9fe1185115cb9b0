// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ratelimit - token bucket throttling shared by the RPC services
//
// a request always waits for its tokens, an oversized request is
// charged as a single token and then rejected
package ratelimit

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/tweetregistry/fault"
)

// wait for n tokens
func reserve(limiter *rate.Limiter, n int) error {
	r := limiter.ReserveN(time.Now(), n)
	if !r.OK() {
		return fault.RateLimiting
	}
	time.Sleep(r.Delay())
	return nil
}

// Limit - limiting for a single request
func Limit(limiter *rate.Limiter) error {
	return reserve(limiter, 1)
}

// LimitN - limiting for a request covering count items
func LimitN(limiter *rate.Limiter, count int, maximumCount int) error {
	if count > 0 && count <= maximumCount {
		return reserve(limiter, count)
	}
	if err := reserve(limiter, 1); nil != err {
		return err
	}
	return fault.InvalidCount
}

// LimitPage - limiting for a paged read
//
// a zero limit is a valid empty page and costs a single request
func LimitPage(limiter *rate.Limiter, limit uint64, maximumCount int) error {
	switch {
	case 0 == limit:
		return Limit(limiter)
	case limit > uint64(maximumCount):
		return LimitN(limiter, 0, maximumCount)
	default:
		return LimitN(limiter, int(limit), maximumCount)
	}
}
