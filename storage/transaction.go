// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"sync"

	"github.com/bitmark-inc/tweetregistry/fault"
)

// Transaction - a single writer batch across all pools
type Transaction interface {
	Begin() error
	Put(Handle, []byte, []byte)
	PutN(Handle, []byte, uint64)
	Delete(Handle, []byte)
	Get(Handle, []byte) []byte
	GetN(Handle, []byte) (uint64, bool)
	Has(Handle, []byte) bool
	Commit() error
	Abort()
	InUse() bool
}

// TransactionData - the transaction state
type TransactionData struct {
	writer sync.Mutex // held from Begin until Commit or Abort

	sync.Mutex
	inUse  bool
	access Access
}

func newTransaction(access Access) Transaction {
	return &TransactionData{
		inUse:  false,
		access: access,
	}
}

// Begin - wait for exclusive write access and open the batch
func (t *TransactionData) Begin() error {
	t.writer.Lock()

	t.Lock()
	t.inUse = true
	t.Unlock()

	t.access.Begin()
	return nil
}

// Put - add a put to the batch
func (t *TransactionData) Put(h Handle, key []byte, value []byte) {
	h.Put(key, value)
}

// PutN - add a uint64 put to the batch
func (t *TransactionData) PutN(h Handle, key []byte, value uint64) {
	h.PutN(key, value)
}

// Delete - add a delete to the batch
func (t *TransactionData) Delete(h Handle, key []byte) {
	h.Remove(key)
}

// Get - read a value including any uncommitted write in this batch
func (t *TransactionData) Get(h Handle, key []byte) []byte {
	if pr, ok := h.(pendingReader); ok {
		value, _ := pr.pendingGet(key)
		return value
	}
	return h.Get(key)
}

// GetN - read a uint64 value including any uncommitted write in this batch
func (t *TransactionData) GetN(h Handle, key []byte) (uint64, bool) {
	if _, ok := h.(pendingReader); ok {
		return decodeN(key, t.Get(h, key))
	}
	return h.GetN(key)
}

// Has - check for a key including any uncommitted write in this batch
func (t *TransactionData) Has(h Handle, key []byte) bool {
	if pr, ok := h.(pendingReader); ok {
		_, found := pr.pendingGet(key)
		return found
	}
	return h.Has(key)
}

// Commit - write the batch atomically and release the writer
func (t *TransactionData) Commit() error {
	t.Lock()
	if !t.inUse {
		t.Unlock()
		return fault.TransactionNotStarted
	}
	t.inUse = false
	t.Unlock()

	err := t.access.Commit()
	t.writer.Unlock()
	return err
}

// Abort - discard the batch and release the writer
func (t *TransactionData) Abort() {
	t.Lock()
	if !t.inUse {
		t.Unlock()
		return
	}
	t.inUse = false
	t.Unlock()

	t.access.Abort()
	t.writer.Unlock()
}

// InUse - check if a batch is open
func (t *TransactionData) InUse() bool {
	t.Lock()
	defer t.Unlock()
	return t.inUse
}
