// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package deposit_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/tweetregistry/deposit"
	"github.com/bitmark-inc/tweetregistry/event"
	"github.com/bitmark-inc/tweetregistry/fault"
)

func TestConcurrentDepositSameFingerprint(t *testing.T) {
	f := setup(t, nil)
	defer teardown()

	const callers = 50
	url := "https://x.com/race/status/1"

	var wg sync.WaitGroup
	results := make(chan error, callers)
	for i := 0; i < callers; i += 1 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- f.ledger.Deposit(depositorAddress, makeArguments(url), 1)
		}()
	}
	wg.Wait()
	close(results)

	accepted := 0
	duplicates := 0
	for err := range results {
		switch err {
		case nil:
			accepted += 1
		case fault.DuplicateFingerprint:
			duplicates += 1
		default:
			t.Errorf("unexpected deposit error: %s", err)
		}
	}
	assert.Equal(t, 1, accepted, "wrong accepted count")
	assert.Equal(t, callers-1, duplicates, "wrong duplicate count")
	assert.Equal(t, uint64(1), f.ledger.Balance(), "duplicates credited the balance")

	fp := makeArguments(url).Fingerprint
	assert.Equal(t, uint64(1), f.events.FilterCount(event.DepositProcessed, deposit.TopicFingerprint, fp.String()), "wrong event count")
}

func TestConcurrentWithdraw(t *testing.T) {
	f := setup(t, nil)
	defer teardown()

	for i := 1; i <= 4; i += 1 {
		err := f.ledger.Deposit(depositorAddress, makeArguments(fmt.Sprintf("https://x.com/drain/status/%d", i)), uint64(i))
		assert.Nil(t, err, "%d: deposit rejected", i)
	}
	assert.Equal(t, uint64(10), f.ledger.Balance(), "wrong pooled balance")

	const callers = 10

	type result struct {
		amount uint64
		err    error
	}

	var wg sync.WaitGroup
	results := make(chan result, callers)
	for i := 0; i < callers; i += 1 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			amount, err := f.ledger.Withdraw(ownerAddress)
			results <- result{amount: amount, err: err}
		}()
	}
	wg.Wait()
	close(results)

	total := uint64(0)
	succeeded := 0
	for r := range results {
		switch r.err {
		case nil:
			succeeded += 1
			total += r.amount
		case fault.NoFunds:
			assert.Equal(t, uint64(0), r.amount, "failed withdraw returned value")
		default:
			t.Errorf("unexpected withdraw error: %s", r.err)
		}
	}
	assert.Equal(t, 1, succeeded, "balance withdrawn more than once")
	assert.Equal(t, uint64(10), total, "wrong total withdrawn")
	assert.Equal(t, uint64(0), f.ledger.Balance(), "balance not cleared")
	assert.Equal(t, uint64(1), f.payouts.Count(ownerAddress), "wrong payout count")
}
