// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/tweetregistry/storage"
)

// directory of the currently open test database
var databaseDirectory string

func databaseFileName() string {
	return filepath.Join(databaseDirectory, "test.leveldb")
}

// open a fresh database in a temporary directory
func setup(t *testing.T) {
	dir, err := ioutil.TempDir("", "storage-test")
	if nil != err {
		t.Fatalf("temporary directory error: %s", err)
	}
	databaseDirectory = dir

	err = storage.Initialise(databaseFileName(), storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}
}

func teardown(t *testing.T) {
	storage.Finalise()
	os.RemoveAll(databaseDirectory)
}

// list entries are keyed by handle then a counter
var listEntries = []storage.Element{
	{Key: []byte("alice/0001"), Value: []byte("tweet-a1")},
	{Key: []byte("alice/0002"), Value: []byte("tweet-a2")},
	{Key: []byte("alice/0003"), Value: []byte("tweet-a3")},
	{Key: []byte("bob/0001"), Value: []byte("tweet-b1")},
	{Key: []byte("carol/0001"), Value: []byte("tweet-c1")},
	{Key: []byte("carol/0002"), Value: []byte("tweet-c2")},
}

// a key that is never written
var absentKey = []byte("dave/0001")

// write every list entry in one transaction
func storeEntries(t *testing.T) {
	trx, err := storage.NewDBTransaction()
	if nil != err {
		t.Fatalf("transaction error: %s", err)
	}
	// reverse order to show that keys are sorted on fetch
	for i := len(listEntries) - 1; i >= 0; i -= 1 {
		trx.Put(storage.Pool.TestData, listEntries[i].Key, listEntries[i].Value)
	}
	err = trx.Commit()
	if nil != err {
		t.Fatalf("commit error: %s", err)
	}
}
