// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"sync"
	"time"

	"github.com/fxamacker/cbor/v2"

	"github.com/bitmark-inc/tweetregistry/address"
	"github.com/bitmark-inc/tweetregistry/event"
	"github.com/bitmark-inc/tweetregistry/fault"
	"github.com/bitmark-inc/tweetregistry/fingerprint"
	"github.com/bitmark-inc/tweetregistry/index"
	"github.com/bitmark-inc/tweetregistry/storage"
)

// Registry - the tweet data registry
type Registry interface {
	StoreTweet(address.Address, *TweetInput, address.Address) error
	GetTweet(fingerprint.Fingerprint) (*Tweet, error)
	GetTweetByURL(string) (*Tweet, error)
	GetTweetByCID(string) (*Tweet, error)
	GetTweetsByUser(string, uint64, uint64) ([]fingerprint.Fingerprint, error)
	GetTweetsByEcosystem(string, uint64, uint64) ([]fingerprint.Fingerprint, error)
	GetAllTweetHashes(uint64, uint64) ([]fingerprint.Fingerprint, error)
	GetAllCIDs(uint64, uint64) ([]string, error)
	UpdateCIDs(address.Address, fingerprint.Fingerprint, *CIDUpdate) error
	Exists(fingerprint.Fingerprint) bool
	TotalTweets() uint64
	UserTweetCount(string) uint64
	EcosystemTweetCount(string) uint64
	TransferOwnership(address.Address, address.Address) error
	Owner() address.Address
}

type registry struct{}

// serialises all writes to the registry
var toLock sync.Mutex

// StoreTweet - write a fully processed tweet and its indexes
//
// the caller is recorded as processor, distinct from the submitter
//
// an empty ecosystem tag is stored and indexed as UnknownEcosystem
func (r *registry) StoreTweet(caller address.Address, input *TweetInput, submitter address.Address) error {
	toLock.Lock()
	defer toLock.Unlock()

	globalData.RLock()
	defer globalData.RUnlock()
	if !globalData.initialised {
		return fault.NotInitialised
	}
	h := globalData.handles

	if err := checkOwner(caller); nil != err {
		return err
	}
	if "" == input.Identity.URL {
		return fault.EmptyURL
	}

	fp := input.Identity.Fingerprint

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}

	if exists(trx.Get(h.Tweets, fp[:])) {
		trx.Abort()
		return fault.TweetExists
	}

	t := &Tweet{
		Identity: input.Identity,
		Content:  input.Content,
		Metrics:  input.Metrics,
		Storage:  input.Storage,
		Meta: Meta{
			Submitter:   submitter,
			Processor:   caller,
			ProcessedAt: uint64(time.Now().Unix()),
			Exists:      true,
		},
	}
	if "" == t.Storage.Ecosystem {
		t.Storage.Ecosystem = UnknownEcosystem
	}

	packed, err := cbor.Marshal(t)
	if nil != err {
		trx.Abort()
		return err
	}
	trx.Put(h.Tweets, fp[:], packed)

	h.All.Append(trx, allKey, fp[:])
	h.ByHandle.Append(trx, []byte(t.Identity.Handle), fp[:])
	h.ByEcosystem.Append(trx, []byte(t.Storage.Ecosystem), fp[:])

	for _, cid := range t.Storage.CIDs() {
		trx.Put(h.ContentReference, []byte(cid), fp[:])
	}

	payload, topics := tweetStored(t)
	e, err := h.Events.Append(trx, event.TweetStored, payload, topics...)
	if nil != err {
		trx.Abort()
		return err
	}

	err = trx.Commit()
	if nil != err {
		globalData.log.Errorf("store: %s  commit error: %s", fp, err)
		return err
	}
	invalidate(fp)
	event.Publish(e)

	globalData.log.Infof("stored: %s  url: %q  handle: %q", fp, t.Identity.URL, t.Identity.Handle)
	return nil
}

// GetTweet - read a tweet
func (r *registry) GetTweet(fp fingerprint.Fingerprint) (*Tweet, error) {
	globalData.RLock()
	defer globalData.RUnlock()
	if !globalData.initialised {
		return nil, fault.NotInitialised
	}
	return getTweet(fp)
}

// GetTweetByURL - read a tweet by the fingerprint of its URL
func (r *registry) GetTweetByURL(url string) (*Tweet, error) {
	return r.GetTweet(fingerprint.FromURL(url))
}

// GetTweetByCID - read the tweet currently owning a content reference
func (r *registry) GetTweetByCID(cid string) (*Tweet, error) {
	globalData.RLock()
	defer globalData.RUnlock()
	if !globalData.initialised {
		return nil, fault.NotInitialised
	}

	var fp fingerprint.Fingerprint
	err := fingerprint.FromBytes(&fp, globalData.handles.ContentReference.Get([]byte(cid)))
	if nil != err {
		return nil, fault.TweetNotFound
	}
	return getTweet(fp)
}

// GetTweetsByUser - a page of the fingerprints posted by a handle
func (r *registry) GetTweetsByUser(handle string, offset uint64, limit uint64) ([]fingerprint.Fingerprint, error) {
	return page(func(h *Handles) *index.List { return h.ByHandle }, []byte(handle), offset, limit)
}

// GetTweetsByEcosystem - a page of the fingerprints having a tag
func (r *registry) GetTweetsByEcosystem(tag string, offset uint64, limit uint64) ([]fingerprint.Fingerprint, error) {
	return page(func(h *Handles) *index.List { return h.ByEcosystem }, []byte(tag), offset, limit)
}

// GetAllTweetHashes - a page of all fingerprints in registration order
func (r *registry) GetAllTweetHashes(offset uint64, limit uint64) ([]fingerprint.Fingerprint, error) {
	return page(func(h *Handles) *index.List { return h.All }, allKey, offset, limit)
}

// GetAllCIDs - the content references of a page of all tweets
func (r *registry) GetAllCIDs(offset uint64, limit uint64) ([]string, error) {
	hashes, err := r.GetAllTweetHashes(offset, limit)
	if nil != err {
		return nil, err
	}

	globalData.RLock()
	defer globalData.RUnlock()
	if !globalData.initialised {
		return nil, fault.NotInitialised
	}

	cids := make([]string, 0, 3*len(hashes))
	for _, fp := range hashes {
		t, err := getTweet(fp)
		if nil != err {
			globalData.log.Errorf("cids: %s  error: %s", fp, err)
			return nil, err
		}
		cids = append(cids, t.Storage.CIDs()...)
	}
	return cids, nil
}

// UpdateCIDs - replace archive references
//
// each new reference is pointed at this tweet even if another tweet
// registered it before: the last write wins
//
// an update with every field empty is rejected with
// fault.MissingParameters and writes nothing
func (r *registry) UpdateCIDs(caller address.Address, fp fingerprint.Fingerprint, update *CIDUpdate) error {
	toLock.Lock()
	defer toLock.Unlock()

	globalData.RLock()
	defer globalData.RUnlock()
	if !globalData.initialised {
		return fault.NotInitialised
	}
	h := globalData.handles

	if err := checkOwner(caller); nil != err {
		return err
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}

	t, err := decode(trx.Get(h.Tweets, fp[:]))
	if nil != err {
		trx.Abort()
		return err
	}
	if update.IsEmpty() {
		trx.Abort()
		return fault.MissingParameters
	}

	if "" != update.ScreenshotCID {
		t.Storage.ScreenshotCID = update.ScreenshotCID
		trx.Put(h.ContentReference, []byte(update.ScreenshotCID), fp[:])
	}
	if "" != update.DataCID {
		t.Storage.DataCID = update.DataCID
		trx.Put(h.ContentReference, []byte(update.DataCID), fp[:])
	}
	if "" != update.RootCID {
		t.Storage.RootCID = update.RootCID
		trx.Put(h.ContentReference, []byte(update.RootCID), fp[:])
	}
	if "" != update.DealID {
		t.Storage.DealID = update.DealID
	}

	packed, err := cbor.Marshal(t)
	if nil != err {
		trx.Abort()
		return err
	}
	trx.Put(h.Tweets, fp[:], packed)

	payload, topics := tweetUpdated(t, update)
	e, err := h.Events.Append(trx, event.TweetUpdated, payload, topics...)
	if nil != err {
		trx.Abort()
		return err
	}

	err = trx.Commit()
	if nil != err {
		return err
	}
	invalidate(fp)
	event.Publish(e)

	globalData.log.Infof("updated: %s  cids: %v", fp, t.Storage.CIDs())
	return nil
}

// Exists - check for a stored tweet
func (r *registry) Exists(fp fingerprint.Fingerprint) bool {
	_, err := r.GetTweet(fp)
	return nil == err
}

// TotalTweets - number of stored tweets
func (r *registry) TotalTweets() uint64 {
	return count(func(h *Handles) *index.List { return h.All }, allKey)
}

// UserTweetCount - number of tweets posted by a handle
func (r *registry) UserTweetCount(handle string) uint64 {
	return count(func(h *Handles) *index.List { return h.ByHandle }, []byte(handle))
}

// EcosystemTweetCount - number of tweets having a tag
func (r *registry) EcosystemTweetCount(tag string) uint64 {
	return count(func(h *Handles) *index.List { return h.ByEcosystem }, []byte(tag))
}

// TransferOwnership - replace the privileged identity
func (r *registry) TransferOwnership(caller address.Address, newOwner address.Address) error {
	toLock.Lock()
	defer toLock.Unlock()

	globalData.RLock()
	defer globalData.RUnlock()
	if !globalData.initialised {
		return fault.NotInitialised
	}
	h := globalData.handles

	if err := checkOwner(caller); nil != err {
		return err
	}
	if newOwner.IsZero() {
		return fault.InvalidNewOwner
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}
	trx.Put(h.Owners, ownerKey, newOwner[:])

	payload, topics := ownershipTransferred(caller, newOwner)
	e, err := h.Events.Append(trx, event.OwnershipTransferred, payload, topics...)
	if nil != err {
		trx.Abort()
		return err
	}

	err = trx.Commit()
	if nil != err {
		return err
	}
	event.Publish(e)

	globalData.log.Warnf("owner changed from: %s  to: %s", caller, newOwner)
	return nil
}

// Owner - the privileged identity
func (r *registry) Owner() address.Address {
	globalData.RLock()
	defer globalData.RUnlock()
	if !globalData.initialised {
		return address.Zero
	}
	return owner()
}

// must hold globalData read lock
func owner() address.Address {
	var a address.Address
	_ = address.FromBytes(&a, globalData.handles.Owners.Get(ownerKey))
	return a
}

// every privileged operation starts with this
//
// must hold globalData read lock
func checkOwner(caller address.Address) error {
	if caller.IsZero() || owner() != caller {
		return fault.NotOwner
	}
	return nil
}

// shared by all three paged lists
func page(list func(*Handles) *index.List, key []byte, offset uint64, limit uint64) ([]fingerprint.Fingerprint, error) {
	globalData.RLock()
	defer globalData.RUnlock()
	if !globalData.initialised {
		return nil, fault.NotInitialised
	}

	values, err := list(&globalData.handles).Page(key, offset, limit)
	if nil != err {
		return nil, err
	}

	hashes := make([]fingerprint.Fingerprint, len(values))
	for i, v := range values {
		err := fingerprint.FromBytes(&hashes[i], v)
		if nil != err {
			return nil, err
		}
	}
	return hashes, nil
}

func count(list func(*Handles) *index.List, key []byte) uint64 {
	globalData.RLock()
	defer globalData.RUnlock()
	if !globalData.initialised {
		return 0
	}
	return list(&globalData.handles).Count(key)
}

func exists(packed []byte) bool {
	_, err := decode(packed)
	return nil == err
}

func decode(packed []byte) (*Tweet, error) {
	if nil == packed {
		return nil, fault.TweetNotFound
	}
	t := &Tweet{}
	err := cbor.Unmarshal(packed, t)
	if nil != err {
		return nil, err
	}
	if !t.Meta.Exists {
		return nil, fault.TweetNotFound
	}
	return t, nil
}

// read through the cache, returning a copy
//
// must hold globalData read lock
func getTweet(fp fingerprint.Fingerprint) (*Tweet, error) {
	globalData.cacheLock.Lock()
	defer globalData.cacheLock.Unlock()

	if cached, ok := globalData.cache.Get(fp); ok {
		t := *cached.(*Tweet)
		return &t, nil
	}

	t, err := decode(globalData.handles.Tweets.Get(fp[:]))
	if nil != err {
		return nil, err
	}
	globalData.cache.Add(fp, t)

	result := *t
	return &result, nil
}

// must hold globalData read lock
func invalidate(fp fingerprint.Fingerprint) {
	globalData.cacheLock.Lock()
	globalData.cache.Remove(fp)
	globalData.cacheLock.Unlock()
}
