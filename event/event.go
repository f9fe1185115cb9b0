// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package event - the sequenced notification log of both ledgers
//
// every ledger write appends its notification in the same storage
// batch as the write itself, so an observer never sees one without
// the other.  each record is also indexed under its topics so that
// observers can filter by fingerprint, depositor and so on.
//
// after commit the records are broadcast on the message bus for the
// publisher background
package event

import (
	"encoding/binary"
	"reflect"
	"time"

	"github.com/fxamacker/cbor/v2"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/tweetregistry/fault"
	"github.com/bitmark-inc/tweetregistry/index"
	"github.com/bitmark-inc/tweetregistry/messagebus"
	"github.com/bitmark-inc/tweetregistry/storage"
)

// Name - the kind of a notification
type Name string

// notification names
const (
	DepositProcessed     Name = "DepositProcessed"
	ValidationUpdated    Name = "ValidationUpdated"
	Withdrawn            Name = "Withdrawn"
	TweetStored          Name = "TweetStored"
	TweetUpdated         Name = "TweetUpdated"
	OwnershipTransferred Name = "OwnershipTransferred"
)

var validNames = map[Name]struct{}{
	DepositProcessed:     {},
	ValidationUpdated:    {},
	Withdrawn:            {},
	TweetStored:          {},
	TweetUpdated:         {},
	OwnershipTransferred: {},
}

// IsValid - check for a known name
func (n Name) IsValid() bool {
	_, ok := validNames[n]
	return ok
}

// Topic - an indexed field of a notification
type Topic struct {
	Name  string `cbor:"1,keyasint" json:"name"`
	Value string `cbor:"2,keyasint" json:"value"`
}

// Record - a stored notification
type Record struct {
	Sequence  uint64          `cbor:"1,keyasint" json:"sequence,string"`
	Name      Name            `cbor:"2,keyasint" json:"name"`
	Timestamp uint64          `cbor:"3,keyasint" json:"timestamp"`
	Topics    []Topic         `cbor:"4,keyasint" json:"topics"`
	Payload   cbor.RawMessage `cbor:"5,keyasint" json:"-"`
}

// the global log is a single list in the event pools
var globalKey = []byte("events")

// Log - an event log over a set of pools
type Log struct {
	global *index.List
	topics *index.List
}

// New - create a log from its pools
func New(nextCount storage.Handle, list storage.Handle, topicCount storage.Handle, topicList storage.Handle) *Log {
	return &Log{
		global: index.New(nextCount, list),
		topics: index.New(topicCount, topicList),
	}
}

// for the payload map keys to match the JSON names
var decMode, _ = cbor.DecOptions{
	DefaultMapType: reflect.TypeOf(map[string]interface{}(nil)),
}.DecMode()

func topicKey(name Name, topic string, value string) []byte {
	k := make([]byte, 0, len(name)+len(topic)+len(value)+2)
	k = append(k, name...)
	k = append(k, 0x00)
	k = append(k, topic...)
	k = append(k, 0x00)
	return append(k, value...)
}

// Append - add a notification inside an open transaction
//
// the returned record should be passed to Publish once the
// transaction has committed
func (l *Log) Append(trx storage.Transaction, name Name, payload interface{}, topics ...Topic) (Record, error) {
	if !name.IsValid() {
		return Record{}, fault.InvalidEventName
	}

	data, err := cbor.Marshal(payload)
	if nil != err {
		return Record{}, err
	}

	n := l.global.Next(trx, globalKey)

	r := Record{
		Sequence:  n,
		Name:      name,
		Timestamp: uint64(time.Now().Unix()),
		Topics:    topics,
		Payload:   data,
	}
	packed, err := cbor.Marshal(r)
	if nil != err {
		return Record{}, err
	}

	l.global.Append(trx, globalKey, packed)

	seq := make([]byte, 8)
	binary.BigEndian.PutUint64(seq, n)
	for _, t := range topics {
		l.topics.Append(trx, topicKey(name, t.Name, t.Value), seq)
	}
	return r, nil
}

// Count - number of committed notifications
func (l *Log) Count() uint64 {
	return l.global.Count(globalKey)
}

// Get - a single committed notification
func (l *Log) Get(sequence uint64) (Record, error) {
	packed, found := l.global.At(globalKey, sequence)
	if !found {
		return Record{}, fault.EventNotFound
	}
	var r Record
	err := cbor.Unmarshal(packed, &r)
	return r, err
}

// List - notifications from start onwards
//
// returns the sequence to resume from
func (l *Log) List(start uint64, count uint64) ([]Record, uint64, error) {
	values, err := l.global.Page(globalKey, start, count)
	if nil != err {
		return nil, start, err
	}

	records := make([]Record, 0, len(values))
	for _, packed := range values {
		var r Record
		err := cbor.Unmarshal(packed, &r)
		if nil != err {
			return nil, start, err
		}
		records = append(records, r)
	}
	return records, start + uint64(len(records)), nil
}

// Filter - a page of the notifications having a topic value
func (l *Log) Filter(name Name, topic string, value string, offset uint64, limit uint64) ([]Record, error) {
	if !name.IsValid() {
		return nil, fault.InvalidEventName
	}
	if "" == topic {
		return nil, fault.InvalidTopic
	}

	sequences, err := l.topics.Page(topicKey(name, topic, value), offset, limit)
	if nil != err {
		return nil, err
	}

	records := make([]Record, 0, len(sequences))
	for _, seq := range sequences {
		r, err := l.Get(binary.BigEndian.Uint64(seq))
		if nil != err {
			return nil, err
		}
		records = append(records, r)
	}
	return records, nil
}

// FilterCount - number of notifications having a topic value
func (l *Log) FilterCount(name Name, topic string, value string) uint64 {
	return l.topics.Count(topicKey(name, topic, value))
}

// Decode - the payload as a generic map
func (r Record) Decode() (map[string]interface{}, error) {
	m := map[string]interface{}{}
	if 0 == len(r.Payload) {
		return m, nil
	}
	err := decMode.Unmarshal(r.Payload, &m)
	return m, err
}

// Publish - broadcast committed notifications
//
// the message command is the event name
func Publish(records ...Record) {
	for _, r := range records {
		messagebus.Bus.Broadcast.Send(string(r.Name), r.Parameters()...)
	}
}

// Parameters - the published form of a record
//
//   sequence (8 byte big endian), timestamp (8 byte big endian),
//   CBOR topics, CBOR payload
func (r Record) Parameters() [][]byte {
	seq := make([]byte, 8)
	binary.BigEndian.PutUint64(seq, r.Sequence)

	timestamp := make([]byte, 8)
	binary.BigEndian.PutUint64(timestamp, r.Timestamp)

	topics, err := cbor.Marshal(r.Topics)
	logger.PanicIfError("event.Parameters topics", err)

	return [][]byte{seq, timestamp, topics, r.Payload}
}

// FromParameters - rebuild a record from a published message
func FromParameters(name string, parameters [][]byte) (Record, error) {
	if 4 != len(parameters) || 8 != len(parameters[0]) || 8 != len(parameters[1]) {
		return Record{}, fault.InvalidCount
	}

	r := Record{
		Sequence:  binary.BigEndian.Uint64(parameters[0]),
		Name:      Name(name),
		Timestamp: binary.BigEndian.Uint64(parameters[1]),
		Payload:   parameters[3],
	}
	if !r.Name.IsValid() {
		return Record{}, fault.InvalidEventName
	}
	err := cbor.Unmarshal(parameters[2], &r.Topics)
	if nil != err {
		return Record{}, err
	}
	return r, nil
}
