// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package events

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/tweetregistry/event"
	"github.com/bitmark-inc/tweetregistry/rpc/ratelimit"
)

// Log - the event log operations used by the RPC
type Log interface {
	Count() uint64
	List(uint64, uint64) ([]event.Record, uint64, error)
	Filter(event.Name, string, string, uint64, uint64) ([]event.Record, error)
	FilterCount(event.Name, string, string) uint64
}

// Events - type for the RPC
type Events struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Events  Log
}

const (
	MaximumEventsCount = 100
	rateLimitEvents    = 200
	rateBurstEvents    = 100
)

// New - create the events RPC
func New(log *logger.L, events Log) *Events {
	return &Events{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitEvents, rateBurstEvents),
		Events:  events,
	}
}

// Entry - a notification with a readable payload
type Entry struct {
	Sequence  uint64                 `json:"sequence,string"`
	Name      event.Name             `json:"name"`
	Timestamp uint64                 `json:"timestamp"`
	Topics    []event.Topic          `json:"topics"`
	Payload   map[string]interface{} `json:"payload"`
}

// ListArguments - arguments for RPC
type ListArguments struct {
	Start uint64 `json:"start,string"`
	Count uint64 `json:"count"`
}

// ListReply - result of list RPC
type ListReply struct {
	Events []Entry `json:"events"`
	Next   uint64  `json:"next,string"` // Start value for the next call
	Total  uint64  `json:"total"`
}

// List - notifications in sequence order
func (e *Events) List(arguments *ListArguments, reply *ListReply) error {

	if err := ratelimit.LimitPage(e.Limiter, arguments.Count, MaximumEventsCount); nil != err {
		return err
	}

	e.Log.Debugf("Events.List: %+v", arguments)

	records, next, err := e.Events.List(arguments.Start, arguments.Count)
	if nil != err {
		return err
	}

	reply.Events, err = entries(records)
	if nil != err {
		return err
	}
	reply.Next = next
	reply.Total = e.Events.Count()
	return nil
}

// FilterArguments - arguments for RPC
type FilterArguments struct {
	Name   event.Name `json:"name"`
	Topic  string     `json:"topic"`
	Value  string     `json:"value"`
	Offset uint64     `json:"offset"`
	Limit  uint64     `json:"limit"`
}

// FilterReply - result of filter RPC
type FilterReply struct {
	Events []Entry `json:"events"`
	Total  uint64  `json:"total"`
}

// Filter - notifications having a particular topic value
func (e *Events) Filter(arguments *FilterArguments, reply *FilterReply) error {

	if err := ratelimit.LimitPage(e.Limiter, arguments.Limit, MaximumEventsCount); nil != err {
		return err
	}

	e.Log.Debugf("Events.Filter: %+v", arguments)

	records, err := e.Events.Filter(arguments.Name, arguments.Topic, arguments.Value, arguments.Offset, arguments.Limit)
	if nil != err {
		return err
	}

	reply.Events, err = entries(records)
	if nil != err {
		return err
	}
	reply.Total = e.Events.FilterCount(arguments.Name, arguments.Topic, arguments.Value)
	return nil
}

func entries(records []event.Record) ([]Entry, error) {
	result := make([]Entry, len(records))
	for i, r := range records {
		payload, err := r.Decode()
		if nil != err {
			return nil, err
		}
		result[i] = Entry{
			Sequence:  r.Sequence,
			Name:      r.Name,
			Timestamp: r.Timestamp,
			Topics:    r.Topics,
			Payload:   payload,
		}
	}
	return result, nil
}
