// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package deposit

import (
	"time"

	"github.com/fxamacker/cbor/v2"

	"github.com/bitmark-inc/tweetregistry/address"
	"github.com/bitmark-inc/tweetregistry/fault"
	"github.com/bitmark-inc/tweetregistry/index"
	"github.com/bitmark-inc/tweetregistry/storage"
)

// Transferrer - moves value out of the ledger
//
// called with the ledger transaction open; an error aborts the whole
// withdrawal
type Transferrer interface {
	Transfer(trx storage.Transaction, to address.Address, amount uint64) error
}

// Payout - a completed transfer
type Payout struct {
	To        address.Address `json:"to"`
	Amount    uint64          `json:"amount,string"`
	Timestamp uint64          `json:"timestamp"`
}

// Payouts - a transferrer that records each transfer in a per
// recipient list for an external settlement process
type Payouts struct {
	list *index.List
}

// NewPayouts - create a payout list from its pools
func NewPayouts(count storage.Handle, list storage.Handle) *Payouts {
	return &Payouts{
		list: index.New(count, list),
	}
}

// Transfer - record a payout inside the open transaction
func (p *Payouts) Transfer(trx storage.Transaction, to address.Address, amount uint64) error {
	if to.IsZero() {
		return fault.TransferRejected
	}
	packed, err := cbor.Marshal(Payout{
		To:        to,
		Amount:    amount,
		Timestamp: uint64(time.Now().Unix()),
	})
	if nil != err {
		return err
	}
	p.list.Append(trx, to[:], packed)
	return nil
}

// List - a page of the committed payouts to an address
func (p *Payouts) List(to address.Address, offset uint64, limit uint64) ([]Payout, error) {
	values, err := p.list.Page(to[:], offset, limit)
	if nil != err {
		return nil, err
	}
	payouts := make([]Payout, 0, len(values))
	for _, packed := range values {
		var payout Payout
		err := cbor.Unmarshal(packed, &payout)
		if nil != err {
			return nil, err
		}
		payouts = append(payouts, payout)
	}
	return payouts, nil
}

// Count - number of committed payouts to an address
func (p *Payouts) Count(to address.Address) uint64 {
	return p.list.Count(to[:])
}
