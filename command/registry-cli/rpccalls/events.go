// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/tweetregistry/rpc/events"
)

// ListEvents - events in sequence order
func (client *Client) ListEvents(start uint64, count uint64) (*events.ListReply, error) {
	var reply events.ListReply
	if err := client.call("Events.List", events.ListArguments{Start: start, Count: count}, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

// FilterEvents - events having a particular topic value
func (client *Client) FilterEvents(args events.FilterArguments) (*events.FilterReply, error) {
	var reply events.FilterReply
	if err := client.call("Events.Filter", args, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}
