// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/tweetregistry/fault"
	"github.com/bitmark-inc/tweetregistry/storage"
)

func TestTransactionSeesOwnWrites(t *testing.T) {
	setup(t)
	defer teardown(t)

	p := storage.Pool.TestData
	key := []byte("counter")

	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "wrong transaction")

	_, found := trx.GetN(p, key)
	assert.False(t, found, "key found before write")

	trx.PutN(p, key, 41)
	n, found := trx.GetN(p, key)
	assert.True(t, found, "pending write not seen")
	assert.Equal(t, uint64(41), n, "wrong pending value")
	assert.True(t, trx.Has(p, key), "pending write not seen by Has")

	_, found = p.GetN(key)
	assert.False(t, found, "uncommitted write visible to pool reader")

	trx.Delete(p, key)
	assert.False(t, trx.Has(p, key), "pending delete not seen")
	assert.Nil(t, trx.Get(p, key), "pending delete returned data")

	trx.PutN(p, key, 42)
	err = trx.Commit()
	assert.Nil(t, err, "wrong commit")

	n, found = p.GetN(key)
	assert.True(t, found, "committed write not found")
	assert.Equal(t, uint64(42), n, "wrong committed value")
}

func TestTransactionAbort(t *testing.T) {
	setup(t)
	defer teardown(t)

	p := storage.Pool.TestData
	key := []byte("aborted")

	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "wrong transaction")

	trx.Put(p, key, []byte("data"))
	trx.Abort()

	assert.False(t, trx.InUse(), "transaction still in use")
	assert.False(t, p.Has(key), "aborted write was stored")

	// the writer must have been released
	trx, err = storage.NewDBTransaction()
	assert.Nil(t, err, "wrong transaction after abort")
	assert.False(t, trx.Has(p, key), "aborted write still pending")
	trx.Abort()
}

func TestTransactionCommitWithoutBegin(t *testing.T) {
	setup(t)
	defer teardown(t)

	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "wrong transaction")
	assert.Nil(t, trx.Commit(), "wrong commit")

	assert.Equal(t, fault.TransactionNotStarted, trx.Commit(), "second commit accepted")
}

func TestTransactionSingleWriter(t *testing.T) {
	setup(t)
	defer teardown(t)

	p := storage.Pool.TestData
	key := []byte("serial")

	first, err := storage.NewDBTransaction()
	assert.Nil(t, err, "wrong transaction")
	first.PutN(p, key, 1)

	done := make(chan uint64)
	go func() {
		second, err := storage.NewDBTransaction()
		if nil != err {
			close(done)
			return
		}
		n, _ := second.GetN(p, key)
		second.PutN(p, key, n+1)
		second.Commit()
		done <- n
	}()

	select {
	case <-done:
		t.Fatalf("second transaction started while first was open")
	case <-time.After(50 * time.Millisecond):
	}

	assert.Nil(t, first.Commit(), "wrong commit")

	seen := <-done
	assert.Equal(t, uint64(1), seen, "second transaction did not see first commit")

	n, _ := p.GetN(key)
	assert.Equal(t, uint64(2), n, "wrong final value")
}

func TestTransactionNotInitialised(t *testing.T) {
	storage.Finalise()
	_, err := storage.NewDBTransaction()
	assert.Equal(t, fault.DatabaseIsNotSet, err, "wrong error")
}
