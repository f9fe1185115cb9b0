// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/tweetregistry/fault"
	"github.com/bitmark-inc/tweetregistry/storage"
)

func TestPoolGetAndHas(t *testing.T) {
	setup(t)
	defer teardown(t)

	p := storage.Pool.TestData

	assert.Nil(t, p.Get(listEntries[0].Key), "data before commit")

	storeEntries(t)

	for i, e := range listEntries {
		assert.True(t, p.Has(e.Key), "%d: key missing", i)
		assert.Equal(t, e.Value, p.Get(e.Key), "%d: wrong value", i)
	}
	assert.False(t, p.Has(absentKey), "absent key found")
	assert.Nil(t, p.Get(absentKey), "absent key has data")
}

func TestPoolRemoveAndOverwrite(t *testing.T) {
	setup(t)
	defer teardown(t)

	p := storage.Pool.TestData
	storeEntries(t)

	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "transaction error")
	trx.Delete(p, listEntries[3].Key)
	trx.Put(p, listEntries[0].Key, []byte("replaced"))
	err = trx.Commit()
	assert.Nil(t, err, "commit error")

	assert.False(t, p.Has(listEntries[3].Key), "removed key found")
	assert.Equal(t, []byte("replaced"), p.Get(listEntries[0].Key), "value not replaced")
}

func TestPoolSurvivesReopen(t *testing.T) {
	setup(t)
	defer teardown(t)

	storeEntries(t)

	storage.Finalise()
	err := storage.Initialise(databaseFileName(), storage.ReadWrite)
	assert.Nil(t, err, "reopen error")

	elements, err := storage.Pool.TestData.NewFetchCursor().Fetch(100)
	assert.Nil(t, err, "fetch error")
	assert.Equal(t, listEntries, elements, "wrong elements after reopen")
}

func TestFetchPages(t *testing.T) {
	setup(t)
	defer teardown(t)

	storeEntries(t)

	cursor := storage.Pool.TestData.NewFetchCursor()
	for i := 0; i < len(listEntries); i += 4 {
		page, err := cursor.Fetch(4)
		assert.Nil(t, err, "fetch error")

		end := i + 4
		if end > len(listEntries) {
			end = len(listEntries)
		}
		assert.Equal(t, listEntries[i:end], page, "wrong page at: %d", i)
	}

	page, err := cursor.Fetch(4)
	assert.Nil(t, err, "fetch error")
	assert.Equal(t, 0, len(page), "data after the last page")
}

func TestFetchWithin(t *testing.T) {
	setup(t)
	defer teardown(t)

	storeEntries(t)

	p := storage.Pool.TestData

	alice, err := p.NewFetchCursor().Within([]byte("alice/")).Fetch(100)
	assert.Nil(t, err, "fetch error")
	assert.Equal(t, listEntries[0:3], alice, "wrong alice entries")

	// seek keeps the upper bound of the prefix
	tail, err := p.NewFetchCursor().Within([]byte("alice/")).Seek([]byte("alice/0002")).Fetch(100)
	assert.Nil(t, err, "fetch error")
	assert.Equal(t, listEntries[1:3], tail, "wrong alice tail")

	none, err := p.NewFetchCursor().Within([]byte("dave/")).Fetch(100)
	assert.Nil(t, err, "fetch error")
	assert.Equal(t, 0, len(none), "entries for absent prefix")
}

func TestFetchInvalid(t *testing.T) {
	setup(t)
	defer teardown(t)

	_, err := storage.Pool.TestData.NewFetchCursor().Fetch(0)
	assert.Equal(t, fault.InvalidCount, err, "zero count accepted")

	var cursor *storage.FetchCursor
	_, err = cursor.Fetch(1)
	assert.Equal(t, fault.InvalidCursor, err, "nil cursor accepted")
}
