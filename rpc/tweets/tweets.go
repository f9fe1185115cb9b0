// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tweets

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/tweetregistry/fault"
	"github.com/bitmark-inc/tweetregistry/fingerprint"
	"github.com/bitmark-inc/tweetregistry/registry"
	"github.com/bitmark-inc/tweetregistry/rpc/ratelimit"
)

// Tweets - type for the RPC
type Tweets struct {
	Log      *logger.L
	Limiter  *rate.Limiter
	Registry registry.Registry
}

const (
	MaximumHashesCount = 100
	rateLimitTweets    = 200
	rateBurstTweets    = 100
)

// New - create the read only registry RPC
func New(log *logger.L, r registry.Registry) *Tweets {
	return &Tweets{
		Log:      log,
		Limiter:  rate.NewLimiter(rateLimitTweets, rateBurstTweets),
		Registry: r,
	}
}

// ---

// GetArguments - exactly one selector must be set
type GetArguments struct {
	Hash *fingerprint.Fingerprint `json:"hash,omitempty"`
	URL  string                   `json:"url,omitempty"`
	CID  string                   `json:"cid,omitempty"`
}

// GetReply - result of get RPC
type GetReply struct {
	Tweet *registry.Tweet `json:"tweet"`
}

// Get - read a tweet by hash, URL or content reference
func (t *Tweets) Get(arguments *GetArguments, reply *GetReply) error {

	if err := ratelimit.Limit(t.Limiter); nil != err {
		return err
	}

	selectors := 0
	if nil != arguments.Hash {
		selectors += 1
	}
	if "" != arguments.URL {
		selectors += 1
	}
	if "" != arguments.CID {
		selectors += 1
	}
	if 1 != selectors {
		return fault.MissingParameters
	}

	var tweet *registry.Tweet
	var err error
	switch {
	case nil != arguments.Hash:
		tweet, err = t.Registry.GetTweet(*arguments.Hash)
	case "" != arguments.URL:
		tweet, err = t.Registry.GetTweetByURL(arguments.URL)
	default:
		tweet, err = t.Registry.GetTweetByCID(arguments.CID)
	}
	if nil != err {
		return err
	}
	reply.Tweet = tweet
	return nil
}

// ---

// ExistsArguments - arguments for RPC
type ExistsArguments struct {
	Hash fingerprint.Fingerprint `json:"hash"`
}

// ExistsReply - result of exists RPC
type ExistsReply struct {
	Exists bool `json:"exists"`
}

// Exists - check for a stored tweet
func (t *Tweets) Exists(arguments *ExistsArguments, reply *ExistsReply) error {

	if err := ratelimit.Limit(t.Limiter); nil != err {
		return err
	}

	reply.Exists = t.Registry.Exists(arguments.Hash)
	return nil
}

// ---

// ListArguments - arguments for the paged RPCs
//
// Key is the handle or ecosystem tag and is unused by All and CIDs
type ListArguments struct {
	Key    string `json:"key"`
	Offset uint64 `json:"offset"`
	Limit  uint64 `json:"limit"`
}

// HashesReply - a page of fingerprints
type HashesReply struct {
	Hashes []fingerprint.Fingerprint `json:"hashes"`
	Total  uint64                    `json:"total"`
}

// User - fingerprints of the tweets posted by a handle
func (t *Tweets) User(arguments *ListArguments, reply *HashesReply) error {
	return t.hashes(arguments, reply, t.Registry.GetTweetsByUser, t.Registry.UserTweetCount)
}

// Ecosystem - fingerprints of the tweets having a tag
func (t *Tweets) Ecosystem(arguments *ListArguments, reply *HashesReply) error {
	return t.hashes(arguments, reply, t.Registry.GetTweetsByEcosystem, t.Registry.EcosystemTweetCount)
}

// All - fingerprints of all tweets in registration order
func (t *Tweets) All(arguments *ListArguments, reply *HashesReply) error {
	return t.hashes(
		arguments,
		reply,
		func(_ string, offset uint64, limit uint64) ([]fingerprint.Fingerprint, error) {
			return t.Registry.GetAllTweetHashes(offset, limit)
		},
		func(_ string) uint64 {
			return t.Registry.TotalTweets()
		},
	)
}

func (t *Tweets) hashes(
	arguments *ListArguments,
	reply *HashesReply,
	page func(string, uint64, uint64) ([]fingerprint.Fingerprint, error),
	count func(string) uint64,
) error {

	if err := ratelimit.LimitPage(t.Limiter, arguments.Limit, MaximumHashesCount); nil != err {
		return err
	}

	hashes, err := page(arguments.Key, arguments.Offset, arguments.Limit)
	if nil != err {
		return err
	}
	reply.Hashes = hashes
	reply.Total = count(arguments.Key)
	return nil
}

// CIDsReply - content references of a page of tweets
type CIDsReply struct {
	CIDs []string `json:"cids"`
}

// CIDs - content references of a page of all tweets
func (t *Tweets) CIDs(arguments *ListArguments, reply *CIDsReply) error {

	if err := ratelimit.LimitPage(t.Limiter, arguments.Limit, MaximumHashesCount); nil != err {
		return err
	}

	cids, err := t.Registry.GetAllCIDs(arguments.Offset, arguments.Limit)
	if nil != err {
		return err
	}
	reply.CIDs = cids
	return nil
}

// ---

// CountArguments - optional handle and tag to count
type CountArguments struct {
	Handle    string `json:"handle"`
	Ecosystem string `json:"ecosystem"`
}

// CountReply - result of count RPC
type CountReply struct {
	Total     uint64 `json:"total"`
	Handle    uint64 `json:"handle"`
	Ecosystem uint64 `json:"ecosystem"`
}

// Count - running totals
func (t *Tweets) Count(arguments *CountArguments, reply *CountReply) error {

	if err := ratelimit.Limit(t.Limiter); nil != err {
		return err
	}

	reply.Total = t.Registry.TotalTweets()
	if "" != arguments.Handle {
		reply.Handle = t.Registry.UserTweetCount(arguments.Handle)
	}
	if "" != arguments.Ecosystem {
		reply.Ecosystem = t.Registry.EcosystemTweetCount(arguments.Ecosystem)
	}
	return nil
}
