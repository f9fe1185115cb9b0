// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package events_test

import (
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/fxamacker/cbor/v2"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/tweetregistry/event"
	"github.com/bitmark-inc/tweetregistry/fault"
	"github.com/bitmark-inc/tweetregistry/rpc/events"
	"github.com/bitmark-inc/tweetregistry/rpc/fixtures"
	"github.com/bitmark-inc/tweetregistry/rpc/mocks"
)

func record(t *testing.T, sequence uint64, name event.Name, payload map[string]interface{}) event.Record {
	packed, err := cbor.Marshal(payload)
	assert.Nil(t, err, "payload encode error")
	return event.Record{
		Sequence:  sequence,
		Name:      name,
		Timestamp: 1000 + sequence,
		Topics:    []event.Topic{{Name: "handle", Value: "alice"}},
		Payload:   packed,
	}
}

func TestList(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	log := mocks.NewMockLog(ctl)
	e := events.New(logger.New(fixtures.LogCategory), log)

	records := []event.Record{
		record(t, 0, event.TweetStored, map[string]interface{}{"handle": "alice"}),
		record(t, 1, event.TweetUpdated, map[string]interface{}{"cid": "QmA"}),
	}
	log.EXPECT().List(uint64(0), uint64(2)).Return(records, uint64(2), nil).Times(1)
	log.EXPECT().Count().Return(uint64(5)).Times(1)

	var reply events.ListReply
	err := e.List(&events.ListArguments{Start: 0, Count: 2}, &reply)
	assert.Nil(t, err, "wrong List")
	assert.Equal(t, uint64(2), reply.Next, "wrong next")
	assert.Equal(t, uint64(5), reply.Total, "wrong total")
	assert.Equal(t, 2, len(reply.Events), "wrong event count")

	assert.Equal(t, event.TweetStored, reply.Events[0].Name, "wrong first name")
	assert.Equal(t, "alice", reply.Events[0].Payload["handle"], "wrong first payload")
	assert.Equal(t, uint64(1001), reply.Events[1].Timestamp, "wrong second timestamp")
	assert.Equal(t, "QmA", reply.Events[1].Payload["cid"], "wrong second payload")
	assert.Equal(t, records[1].Topics, reply.Events[1].Topics, "wrong topics")
}

func TestListCorruptPayload(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	log := mocks.NewMockLog(ctl)
	e := events.New(logger.New(fixtures.LogCategory), log)

	bad := event.Record{Name: event.Withdrawn, Payload: []byte{0xff, 0xff}}
	log.EXPECT().List(uint64(3), uint64(1)).Return([]event.Record{bad}, uint64(4), nil).Times(1)

	var reply events.ListReply
	err := e.List(&events.ListArguments{Start: 3, Count: 1}, &reply)
	assert.NotNil(t, err, "corrupt payload accepted")
}

func TestListLimit(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	log := mocks.NewMockLog(ctl)
	e := events.New(logger.New(fixtures.LogCategory), log)

	var reply events.ListReply
	err := e.List(&events.ListArguments{Count: events.MaximumEventsCount + 1}, &reply)
	assert.Equal(t, fault.InvalidCount, err, "excess count accepted")
}

func TestFilter(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	log := mocks.NewMockLog(ctl)
	e := events.New(logger.New(fixtures.LogCategory), log)

	records := []event.Record{
		record(t, 4, event.TweetStored, map[string]interface{}{"handle": "alice"}),
	}
	log.EXPECT().Filter(event.TweetStored, "handle", "alice", uint64(0), uint64(10)).Return(records, nil).Times(1)
	log.EXPECT().FilterCount(event.TweetStored, "handle", "alice").Return(uint64(1)).Times(1)

	var reply events.FilterReply
	args := events.FilterArguments{
		Name:   event.TweetStored,
		Topic:  "handle",
		Value:  "alice",
		Offset: 0,
		Limit:  10,
	}
	err := e.Filter(&args, &reply)
	assert.Nil(t, err, "wrong Filter")
	assert.Equal(t, uint64(1), reply.Total, "wrong total")
	assert.Equal(t, 1, len(reply.Events), "wrong event count")
	assert.Equal(t, uint64(4), reply.Events[0].Sequence, "wrong sequence")
}

func TestFilterError(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	log := mocks.NewMockLog(ctl)
	e := events.New(logger.New(fixtures.LogCategory), log)

	log.EXPECT().Filter(event.Name("bogus"), "x", "y", uint64(0), uint64(1)).Return(nil, fault.InvalidEventName).Times(1)

	var reply events.FilterReply
	err := e.Filter(&events.FilterArguments{Name: "bogus", Topic: "x", Value: "y", Limit: 1}, &reply)
	assert.Equal(t, fault.InvalidEventName, err, "wrong error")
}
