// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package index - append only ordered lists stored in a pair of pools
//
// each list is named by an arbitrary key; the key is hashed so the
// list pool entries have the fixed layout:
//
//   count pool:  SHA3-256(key)                  → next count (uint64)
//   list pool:   SHA3-256(key) ⧺ uint64-BE(n)   → value
//
// entries are never reordered or removed
package index

import (
	"encoding/binary"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/tweetregistry/storage"
)

const (
	keyLength   = 32
	entryLength = keyLength + 8
)

// List - an append only list family
type List struct {
	count storage.Handle
	list  storage.Handle
}

// New - create a list family from its count and list pools
func New(count storage.Handle, list storage.Handle) *List {
	return &List{
		count: count,
		list:  list,
	}
}

func listKey(key []byte) []byte {
	digest := sha3.Sum256(key)
	return digest[:]
}

func entryKey(prefix []byte, n uint64) []byte {
	k := make([]byte, entryLength)
	copy(k, prefix)
	binary.BigEndian.PutUint64(k[keyLength:], n)
	return k
}

// Append - add a value to the end of the list inside an open transaction
//
// returns the new length of the list
func (l *List) Append(trx storage.Transaction, key []byte, value []byte) uint64 {
	prefix := listKey(key)
	n, _ := trx.GetN(l.count, prefix)
	trx.Put(l.list, entryKey(prefix, n), value)
	trx.PutN(l.count, prefix, n+1)
	return n + 1
}

// Next - position the next Append will use, seeing uncommitted appends
func (l *List) Next(trx storage.Transaction, key []byte) uint64 {
	n, _ := trx.GetN(l.count, listKey(key))
	return n
}

// Count - number of committed entries in a list
func (l *List) Count(key []byte) uint64 {
	n, _ := l.count.GetN(listKey(key))
	return n
}

// At - committed entry n of a list
func (l *List) At(key []byte, n uint64) ([]byte, bool) {
	value := l.list.Get(entryKey(listKey(key), n))
	return value, nil != value
}

// Page - committed entries in the window [offset, offset+limit)
//
// an offset past the end or a zero limit gives an empty result
func (l *List) Page(key []byte, offset uint64, limit uint64) ([][]byte, error) {
	prefix := listKey(key)
	n, _ := l.count.GetN(prefix)

	start, end := Window(n, offset, limit)
	if start == end {
		return [][]byte{}, nil
	}

	cursor := l.list.NewFetchCursor().Within(prefix).Seek(entryKey(prefix, start))
	elements, err := cursor.Fetch(int(end - start))
	if nil != err {
		return nil, err
	}

	values := make([][]byte, 0, len(elements))
	for _, e := range elements {
		values = append(values, e.Value)
	}
	return values, nil
}

// Window - the half open range of a page over a list of length n
func Window(n uint64, offset uint64, limit uint64) (uint64, uint64) {
	if 0 == limit || offset >= n {
		return 0, 0
	}
	if limit > n-offset {
		return offset, n
	}
	return offset, offset + limit
}
