// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the avaiable tables.
//
// All writes are collected into a single batch by a Transaction and
// applied atomically on Commit.  Only one transaction may be open at
// a time; a second Begin waits for the first to finish.  Pool reads
// outside a transaction only ever see committed data.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++           = concatenation of byte data
// 3. fingerprint  = Keccak-256(url) (32 bytes)
// 4. list key     = SHA3-256(index key) (32 bytes)
// 5. count        = successive index value as big endian uint64 (8 bytes)
// 6. address      = ledger identity (20 bytes)
// 7. record       = CBOR encoded structure
//
// Deposit ledger:
//
//   D ++ fingerprint           - deposit record
//                                data: record
//   B ++ ledger name           - pooled balance
//                                data: count
//   O ++ ledger name           - privileged identity
//                                data: address
//   p ++ list key              - next count for the payout list of an address
//   P ++ list key ++ count     - payout
//                                data: amount (big endian uint64)
//
// Content registry:
//
//   W ++ fingerprint           - tweet record
//                                data: record
//   C ++ content reference     - reverse lookup (last write wins)
//                                data: fingerprint
//   n ++ list key              - next count for the global tweet list
//   N ++ list key ++ count     - global tweet list
//                                data: fingerprint
//   h ++ list key              - next count for a handle
//   H ++ list key ++ count     - tweets by handle
//                                data: fingerprint
//   y ++ list key              - next count for an ecosystem
//   Y ++ list key ++ count     - tweets by ecosystem
//                                data: fingerprint
//
// Events:
//
//   v ++ list key              - next event sequence number
//   V ++ list key ++ count     - event log
//                                data: record
//   t ++ list key              - next count for a topic
//   T ++ list key ++ count     - events by topic
//                                data: sequence number
//
// Testing:
//   Z ++ key                   - testing data
package storage
