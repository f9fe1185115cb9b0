// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/tweetregistry/fingerprint"
	"github.com/bitmark-inc/tweetregistry/registry"
	"github.com/bitmark-inc/tweetregistry/rpc/tweets"
)

// PageData - the parameters for a paged request
type PageData struct {
	Key    string
	Offset uint64
	Limit  uint64
}

// GetTweet - fetch one tweet, exactly one selector must be set
func (client *Client) GetTweet(args tweets.GetArguments) (*registry.Tweet, error) {
	var reply tweets.GetReply
	if err := client.call("Tweets.Get", args, &reply); err != nil {
		return nil, err
	}
	return reply.Tweet, nil
}

// Exists - check for a stored tweet
func (client *Client) Exists(fp fingerprint.Fingerprint) (bool, error) {
	var reply tweets.ExistsReply
	if err := client.call("Tweets.Exists", tweets.ExistsArguments{Hash: fp}, &reply); err != nil {
		return false, err
	}
	return reply.Exists, nil
}

// ListUser - fingerprints posted by a handle
func (client *Client) ListUser(page PageData) (*tweets.HashesReply, error) {
	return client.hashes("Tweets.User", page)
}

// ListEcosystem - fingerprints having an ecosystem tag
func (client *Client) ListEcosystem(page PageData) (*tweets.HashesReply, error) {
	return client.hashes("Tweets.Ecosystem", page)
}

// ListAll - fingerprints in registration order
func (client *Client) ListAll(page PageData) (*tweets.HashesReply, error) {
	return client.hashes("Tweets.All", page)
}

func (client *Client) hashes(method string, page PageData) (*tweets.HashesReply, error) {
	args := tweets.ListArguments{
		Key:    page.Key,
		Offset: page.Offset,
		Limit:  page.Limit,
	}
	var reply tweets.HashesReply
	if err := client.call(method, args, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

// ListCIDs - content references in registration order
func (client *Client) ListCIDs(page PageData) ([]string, error) {
	args := tweets.ListArguments{
		Offset: page.Offset,
		Limit:  page.Limit,
	}
	var reply tweets.CIDsReply
	if err := client.call("Tweets.CIDs", args, &reply); err != nil {
		return nil, err
	}
	return reply.CIDs, nil
}

// Count - running totals
func (client *Client) Count(handle string, ecosystem string) (*tweets.CountReply, error) {
	args := tweets.CountArguments{
		Handle:    handle,
		Ecosystem: ecosystem,
	}
	var reply tweets.CountReply
	if err := client.call("Tweets.Count", args, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}
