// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func setupTestCache() Cache {
	return newCache()
}

func TestWriteThenRead(t *testing.T) {
	cache := setupTestCache()

	key := "test"
	expected := []byte{'a', 'b', 'c', 'd'}

	actual, found := cache.Get(key)
	assert.False(t, found, "key %s already exists with value %v", key, actual)

	cache.Set(dbPut, key, expected)
	actual, found = cache.Get(key)

	assert.True(t, found, "key not found")
	assert.Equal(t, expected, actual, "wrong value")
}

func TestDeleteIsTouched(t *testing.T) {
	cache := setupTestCache()

	key := "test"
	cache.Set(dbPut, key, []byte{'a'})
	cache.Set(dbDelete, key, nil)

	actual, found := cache.Get(key)
	assert.True(t, found, "deleted key not reported as touched")
	assert.Nil(t, actual, "deleted key returned data")
}

func TestClear(t *testing.T) {
	cache := setupTestCache()

	key := "test"
	data := []byte{'a', 'b', 'c', 'd'}

	cache.Set(dbPut, key, data)
	cache.Clear()

	_, found := cache.Get(key)
	assert.False(t, found, "key %s still exists after clear", key)
}
