// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package deposit

import (
	"sync"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/tweetregistry/address"
	"github.com/bitmark-inc/tweetregistry/event"
	"github.com/bitmark-inc/tweetregistry/fault"
	"github.com/bitmark-inc/tweetregistry/storage"
)

// Handles - the pools used by the ledger
type Handles struct {
	Deposits storage.Handle
	Balance  storage.Handle
	Owners   storage.Handle
	Events   *event.Log
}

// NewHandles - the ledger pools from the global storage
func NewHandles(events *event.Log) Handles {
	return Handles{
		Deposits: storage.Pool.Deposits,
		Balance:  storage.Pool.Balance,
		Owners:   storage.Pool.Owners,
		Events:   events,
	}
}

// keys into the shared Owners and Balance pools
var ledgerKey = []byte("deposit")

type globalDataType struct {
	sync.RWMutex
	log         *logger.L
	handles     Handles
	transferrer Transferrer
	initialised bool
}

var globalData globalDataType

// Initialise - set up the ledger
//
// the owner is only stored on first start; afterwards the stored
// owner is kept and a different configured owner is ignored
func Initialise(handles Handles, owner address.Address, transferrer Transferrer) error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	globalData.log = logger.New("deposit")
	globalData.log.Info("starting…")

	stored := handles.Owners.Get(ledgerKey)
	if nil == stored {
		if owner.IsZero() {
			globalData.log.Critical("owner is the zero address")
			return fault.InvalidOwner
		}
		trx, err := storage.NewDBTransaction()
		if nil != err {
			return err
		}
		trx.Put(handles.Owners, ledgerKey, owner[:])
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
			globalData.log.Warnf("configured owner: %s ignored, stored owner: %s", owner, current)
		}
	}

	globalData.handles = handles
	globalData.transferrer = transferrer
	globalData.initialised = true
	return nil
}

// Finalise - shutdown the ledger
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.initialised = false
	globalData.handles = Handles{}
	globalData.transferrer = nil

	globalData.log.Info("finished")
	globalData.log.Flush()
	return nil
}

// Get - return the ledger interface
func Get() Ledger {
	return &ledger{}
}
