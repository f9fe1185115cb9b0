// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package deposits

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/tweetregistry/address"
	"github.com/bitmark-inc/tweetregistry/deposit"
	"github.com/bitmark-inc/tweetregistry/fingerprint"
	"github.com/bitmark-inc/tweetregistry/rpc/ratelimit"
)

// PayoutLister - read access to completed withdrawals
type PayoutLister interface {
	List(address.Address, uint64, uint64) ([]deposit.Payout, error)
	Count(address.Address) uint64
}

// Deposits - type for the RPC
type Deposits struct {
	Log        *logger.L
	Limiter    *rate.Limiter
	Ledger     deposit.Ledger
	PayoutList PayoutLister
}

const (
	MaximumPayoutsCount = 100
	rateLimitDeposits   = 200
	rateBurstDeposits   = 100
)

// New - create the deposits RPC
func New(log *logger.L, ledger deposit.Ledger, payouts PayoutLister) *Deposits {
	return &Deposits{
		Log:        log,
		Limiter:    rate.NewLimiter(rateLimitDeposits, rateBurstDeposits),
		Ledger:     ledger,
		PayoutList: payouts,
	}
}

// ---

// DepositArguments - arguments for RPC
type DepositArguments struct {
	Caller  address.Address   `json:"caller"`
	Value   uint64            `json:"value,string"`
	Deposit deposit.Arguments `json:"deposit"`
}

// DepositReply - result of deposit RPC
type DepositReply struct {
	Fingerprint fingerprint.Fingerprint `json:"fingerprint"`
}

// Deposit - stake value against a fingerprint
func (d *Deposits) Deposit(arguments *DepositArguments, reply *DepositReply) error {

	if err := ratelimit.Limit(d.Limiter); nil != err {
		return err
	}

	d.Log.Infof("Deposits.Deposit: %s  from: %s  value: %d", arguments.Deposit.Fingerprint, arguments.Caller, arguments.Value)

	err := d.Ledger.Deposit(arguments.Caller, &arguments.Deposit, arguments.Value)
	if nil != err {
		return err
	}
	reply.Fingerprint = arguments.Deposit.Fingerprint
	return nil
}

// ---

// GetArguments - arguments for RPC
type GetArguments struct {
	Fingerprint fingerprint.Fingerprint `json:"fingerprint"`
}

// GetReply - result of get RPC
type GetReply struct {
	Record *deposit.Record `json:"record"`
}

// Get - read a deposit
func (d *Deposits) Get(arguments *GetArguments, reply *GetReply) error {

	if err := ratelimit.Limit(d.Limiter); nil != err {
		return err
	}

	record, err := d.Ledger.GetByFingerprint(arguments.Fingerprint)
	if nil != err {
		return err
	}
	reply.Record = record
	return nil
}

// ---

// ReceiveArguments - arguments for RPC
type ReceiveArguments struct {
	From  address.Address `json:"from"`
	Value uint64          `json:"value,string"`
}

// ReceiveReply - result of receive RPC
type ReceiveReply struct {
	Balance uint64 `json:"balance,string"`
}

// Receive - plain value transfer into the ledger
func (d *Deposits) Receive(arguments *ReceiveArguments, reply *ReceiveReply) error {

	if err := ratelimit.Limit(d.Limiter); nil != err {
		return err
	}

	d.Log.Infof("Deposits.Receive: from: %s  value: %d", arguments.From, arguments.Value)

	err := d.Ledger.Receive(arguments.From, arguments.Value)
	if nil != err {
		return err
	}
	reply.Balance = d.Ledger.Balance()
	return nil
}

// ---

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - ledger state
type InfoReply struct {
	Owner   address.Address `json:"owner"`
	Balance uint64          `json:"balance,string"`
}

// Info - privileged identity and held value
func (d *Deposits) Info(_ *InfoArguments, reply *InfoReply) error {

	if err := ratelimit.Limit(d.Limiter); nil != err {
		return err
	}

	reply.Owner = d.Ledger.Owner()
	reply.Balance = d.Ledger.Balance()
	return nil
}

// ---

// PayoutsArguments - arguments for RPC
type PayoutsArguments struct {
	To     address.Address `json:"to"`
	Offset uint64          `json:"offset"`
	Limit  uint64          `json:"limit"`
}

// PayoutsReply - result of payouts RPC
type PayoutsReply struct {
	Payouts []deposit.Payout `json:"payouts"`
	Total   uint64           `json:"total"`
}

// Payouts - withdrawals made to an address
func (d *Deposits) Payouts(arguments *PayoutsArguments, reply *PayoutsReply) error {

	if err := ratelimit.LimitPage(d.Limiter, arguments.Limit, MaximumPayoutsCount); nil != err {
		return err
	}

	payouts, err := d.PayoutList.List(arguments.To, arguments.Offset, arguments.Limit)
	if nil != err {
		return err
	}
	reply.Payouts = payouts
	reply.Total = d.PayoutList.Count(arguments.To)
	return nil
}
