// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"sync"

	lru "github.com/hashicorp/golang-lru"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/tweetregistry/address"
	"github.com/bitmark-inc/tweetregistry/event"
	"github.com/bitmark-inc/tweetregistry/fault"
	"github.com/bitmark-inc/tweetregistry/index"
	"github.com/bitmark-inc/tweetregistry/storage"
)

// default number of decoded tweets kept in memory
const defaultCacheSize = 1000

// Handles - the pools used by the registry
type Handles struct {
	Tweets           storage.Handle
	ContentReference storage.Handle
	Owners           storage.Handle
	All              *index.List
	ByHandle         *index.List
	ByEcosystem      *index.List
	Events           *event.Log
}

// NewHandles - the registry handles over the standard storage pools
func NewHandles(events *event.Log) Handles {
	return Handles{
		Tweets:           storage.Pool.Tweets,
		ContentReference: storage.Pool.ContentReference,
		Owners:           storage.Pool.Owners,
		All:              index.New(storage.Pool.TweetNextCount, storage.Pool.TweetList),
		ByHandle:         index.New(storage.Pool.HandleNextCount, storage.Pool.HandleList),
		ByEcosystem:      index.New(storage.Pool.EcosystemNextCount, storage.Pool.EcosystemList),
		Events:           events,
	}
}

// key into the shared Owners pool, and the single global list
var (
	ownerKey = []byte("registry")
	allKey   = []byte("tweets")
)

type globalDataType struct {
	sync.RWMutex
	log         *logger.L
	handles     Handles
	initialised bool

	// serialises cache fill against invalidation
	cacheLock sync.Mutex
	cache     *lru.Cache
}

var globalData globalDataType

// Initialise - set up the registry
//
// the owner is only stored on first start, after that it changes only
// by TransferOwnership
func Initialise(handles Handles, owner address.Address, cacheSize int) error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	globalData.log = logger.New("registry")
	globalData.log.Info("starting…")

	if cacheSize <= 0 {
		cacheSize = defaultCacheSize
	}
	cache, err := lru.New(cacheSize)
	if nil != err {
		return err
	}

	stored := handles.Owners.Get(ownerKey)
	if nil == stored {
		if owner.IsZero() {
			globalData.log.Critical("owner is the zero address")
			return fault.InvalidOwner
		}
		trx, err := storage.NewDBTransaction()
		if nil != err {
			return err
		}
		trx.Put(handles.Owners, ownerKey, owner[:])
		err = trx.Commit()
		if nil != err {
			return err
		}
		globalData.log.Infof("owner set to: %s", owner)
	} else {
		var current address.Address
		err := address.FromBytes(&current, stored)
		if nil != err {
			globalData.log.Criticalf("stored owner: %x  error: %s", stored, err)
			return err
		}
		if current != owner {
			globalData.log.Infof("stored owner: %s  configured: %s", current, owner)
		}
	}

	globalData.handles = handles
	globalData.cache = cache
	globalData.initialised = true
	return nil
}

// Finalise - shutdown the registry
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.initialised = false
	globalData.handles = Handles{}
	globalData.cache = nil

	globalData.log.Info("finished")
	globalData.log.Flush()
	return nil
}

// Get - return the registry interface
func Get() Registry {
	return &registry{}
}
