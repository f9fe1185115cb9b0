// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package deposit

import (
	"sync"
	"time"

	"github.com/fxamacker/cbor/v2"

	"github.com/bitmark-inc/tweetregistry/address"
	"github.com/bitmark-inc/tweetregistry/event"
	"github.com/bitmark-inc/tweetregistry/fault"
	"github.com/bitmark-inc/tweetregistry/fingerprint"
	"github.com/bitmark-inc/tweetregistry/storage"
)

// Ledger - the deposit and license ledger
type Ledger interface {
	Deposit(address.Address, *Arguments, uint64) error
	GetByFingerprint(fingerprint.Fingerprint) (*Record, error)
	UpdateValidation(address.Address, fingerprint.Fingerprint, string) error
	Withdraw(address.Address) (uint64, error)
	Receive(address.Address, uint64) error
	Owner() address.Address
	Balance() uint64
}

type ledger struct{}

// serialises all writes to the ledger
var toLock sync.Mutex

// Deposit - create the record for a fingerprint and pool its value
//
// anyone may deposit; the caller becomes the depositor
func (l *ledger) Deposit(caller address.Address, args *Arguments, value uint64) error {
	if 0 == value {
		return fault.InsufficientValue
	}
	if args.Recipient.IsZero() {
		return fault.InvalidRecipient
	}

	toLock.Lock()
	defer toLock.Unlock()

	globalData.RLock()
	defer globalData.RUnlock()
	if !globalData.initialised {
		return fault.NotInitialised
	}
	h := globalData.handles

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}

	if nil != trx.Get(h.Deposits, args.Fingerprint[:]) {
		trx.Abort()
		return fault.DuplicateFingerprint
	}

	balance, _ := trx.GetN(h.Balance, ledgerKey)
	if balance+value < balance {
		trx.Abort()
		return fault.ValueOverflow
	}

	r := newRecord(caller, args, value, uint64(time.Now().Unix()))
	packed, err := cbor.Marshal(r)
	if nil != err {
		trx.Abort()
		return err
	}

	trx.Put(h.Deposits, args.Fingerprint[:], packed)
	trx.PutN(h.Balance, ledgerKey, balance+value)

	payload, topics := depositProcessed(r)
	e, err := h.Events.Append(trx, event.DepositProcessed, payload, topics...)
	if nil != err {
		trx.Abort()
		return err
	}

	err = trx.Commit()
	if nil != err {
		globalData.log.Errorf("deposit: %s  commit error: %s", args.Fingerprint, err)
		return err
	}
	event.Publish(e)

	globalData.log.Infof("deposit: %s  depositor: %s  amount: %d", args.Fingerprint, caller, value)
	return nil
}

// GetByFingerprint - read a deposit record
func (l *ledger) GetByFingerprint(fp fingerprint.Fingerprint) (*Record, error) {
	globalData.RLock()
	defer globalData.RUnlock()
	if !globalData.initialised {
		return nil, fault.NotInitialised
	}

	return getRecord(globalData.handles.Deposits, fp)
}

func getRecord(pool storage.Query, fp fingerprint.Fingerprint) (*Record, error) {
	packed := pool.Get(fp[:])
	if nil == packed {
		return nil, fault.DepositNotFound
	}
	r := &Record{}
	err := cbor.Unmarshal(packed, r)
	if nil != err {
		return nil, err
	}
	if !r.Exists {
		return nil, fault.DepositNotFound
	}
	return r, nil
}

// UpdateValidation - change the validation status of a deposit
func (l *ledger) UpdateValidation(caller address.Address, fp fingerprint.Fingerprint, validation string) error {
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

	packed := trx.Get(h.Deposits, fp[:])
	if nil == packed {
		trx.Abort()
		return fault.DepositNotFound
	}
	r := &Record{}
	err = cbor.Unmarshal(packed, r)
	if nil != err {
		trx.Abort()
		return err
	}
	if !r.Exists {
		trx.Abort()
		return fault.DepositNotFound
	}

	r.Validation = validation
	packed, err = cbor.Marshal(r)
	if nil != err {
		trx.Abort()
		return err
	}
	trx.Put(h.Deposits, fp[:], packed)

	payload, topics := validationUpdated(fp, validation)
	e, err := h.Events.Append(trx, event.ValidationUpdated, payload, topics...)
	if nil != err {
		trx.Abort()
		return err
	}

	err = trx.Commit()
	if nil != err {
		return err
	}
	event.Publish(e)

	globalData.log.Infof("validation: %s  set to: %q", fp, validation)
	return nil
}

// Withdraw - transfer the whole pooled balance to the owner
//
// the balance is only cleared if the transfer succeeds and both happen
// in one batch under the ledger lock, so a second withdraw sees zero
func (l *ledger) Withdraw(caller address.Address) (uint64, error) {
	toLock.Lock()
	defer toLock.Unlock()

	globalData.RLock()
	defer globalData.RUnlock()
	if !globalData.initialised {
		return 0, fault.NotInitialised
	}
	h := globalData.handles

	if err := checkOwner(caller); nil != err {
		return 0, err
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return 0, err
	}

	amount, _ := trx.GetN(h.Balance, ledgerKey)
	if 0 == amount {
		trx.Abort()
		return 0, fault.NoFunds
	}

	err = globalData.transferrer.Transfer(trx, caller, amount)
	if nil != err {
		trx.Abort()
		globalData.log.Errorf("withdraw: %d  to: %s  transfer error: %s", amount, caller, err)
		return 0, fault.TransferFailed
	}

	trx.PutN(h.Balance, ledgerKey, 0)

	payload, topics := withdrawn(caller, amount)
	e, err := h.Events.Append(trx, event.Withdrawn, payload, topics...)
	if nil != err {
		trx.Abort()
		return 0, err
	}

	err = trx.Commit()
	if nil != err {
		return 0, err
	}
	event.Publish(e)

	globalData.log.Infof("withdraw: %d  to: %s", amount, caller)
	return amount, nil
}

// Receive - accept value with no other state change
func (l *ledger) Receive(from address.Address, value uint64) error {
	if 0 == value {
		return nil
	}

	toLock.Lock()
	defer toLock.Unlock()

	globalData.RLock()
	defer globalData.RUnlock()
	if !globalData.initialised {
		return fault.NotInitialised
	}
	h := globalData.handles

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}

	balance, _ := trx.GetN(h.Balance, ledgerKey)
	if balance+value < balance {
		trx.Abort()
		return fault.ValueOverflow
	}
	trx.PutN(h.Balance, ledgerKey, balance+value)

	err = trx.Commit()
	if nil != err {
		return err
	}

	globalData.log.Debugf("receive: %d  from: %s", value, from)
	return nil
}

// Owner - the privileged identity
func (l *ledger) Owner() address.Address {
	globalData.RLock()
	defer globalData.RUnlock()
	if !globalData.initialised {
		return address.Zero
	}
	return owner()
}

// Balance - the pooled value
func (l *ledger) Balance() uint64 {
	globalData.RLock()
	defer globalData.RUnlock()
	if !globalData.initialised {
		return 0
	}
	n, _ := globalData.handles.Balance.GetN(ledgerKey)
	return n
}

// must hold globalData read lock
func owner() address.Address {
	var a address.Address
	_ = address.FromBytes(&a, globalData.handles.Owners.Get(ledgerKey))
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
