// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package admin - privileged write operations, served only on the
// admin listener
//
// the caller identity is carried in each request and checked against
// the stored owner by the ledger or registry
package admin

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/tweetregistry/address"
	"github.com/bitmark-inc/tweetregistry/deposit"
	"github.com/bitmark-inc/tweetregistry/fingerprint"
	"github.com/bitmark-inc/tweetregistry/registry"
	"github.com/bitmark-inc/tweetregistry/rpc/ratelimit"
)

// Admin - type for the RPC
type Admin struct {
	Log      *logger.L
	Limiter  *rate.Limiter
	Ledger   deposit.Ledger
	Registry registry.Registry
}

const (
	rateLimitAdmin = 50
	rateBurstAdmin = 20
)

// New - create the admin RPC
func New(log *logger.L, ledger deposit.Ledger, r registry.Registry) *Admin {
	return &Admin{
		Log:      log,
		Limiter:  rate.NewLimiter(rateLimitAdmin, rateBurstAdmin),
		Ledger:   ledger,
		Registry: r,
	}
}

// EmptyReply - for calls with nothing to return
type EmptyReply struct{}

// ---

// StoreArguments - arguments for RPC
type StoreArguments struct {
	Caller    address.Address     `json:"caller"`
	Submitter address.Address     `json:"submitter"`
	Tweet     registry.TweetInput `json:"tweet"`
}

// StoreReply - result of store RPC
type StoreReply struct {
	Hash fingerprint.Fingerprint `json:"hash"`
}

// StoreTweet - write a processed tweet
func (a *Admin) StoreTweet(arguments *StoreArguments, reply *StoreReply) error {

	if err := ratelimit.Limit(a.Limiter); nil != err {
		return err
	}

	a.Log.Infof("Admin.StoreTweet: %q  caller: %s  submitter: %s", arguments.Tweet.Identity.URL, arguments.Caller, arguments.Submitter)

	err := a.Registry.StoreTweet(arguments.Caller, &arguments.Tweet, arguments.Submitter)
	if nil != err {
		a.Log.Warnf("Admin.StoreTweet: %q  error: %s", arguments.Tweet.Identity.URL, err)
		return err
	}
	reply.Hash = arguments.Tweet.Identity.Fingerprint
	return nil
}

// ---

// UpdateCIDsArguments - arguments for RPC
type UpdateCIDsArguments struct {
	Caller address.Address         `json:"caller"`
	Hash   fingerprint.Fingerprint `json:"hash"`
	Update registry.CIDUpdate      `json:"update"`
}

// UpdateCIDs - replace archive references
func (a *Admin) UpdateCIDs(arguments *UpdateCIDsArguments, reply *EmptyReply) error {

	if err := ratelimit.Limit(a.Limiter); nil != err {
		return err
	}

	a.Log.Infof("Admin.UpdateCIDs: %s  update: %+v", arguments.Hash, arguments.Update)

	return a.Registry.UpdateCIDs(arguments.Caller, arguments.Hash, &arguments.Update)
}

// ---

// TransferOwnershipArguments - arguments for RPC
type TransferOwnershipArguments struct {
	Caller   address.Address `json:"caller"`
	NewOwner address.Address `json:"newOwner"`
}

// OwnerReply - the owner after the call
type OwnerReply struct {
	Owner address.Address `json:"owner"`
}

// TransferOwnership - replace the registry owner
func (a *Admin) TransferOwnership(arguments *TransferOwnershipArguments, reply *OwnerReply) error {

	if err := ratelimit.Limit(a.Limiter); nil != err {
		return err
	}

	a.Log.Warnf("Admin.TransferOwnership: caller: %s  new owner: %s", arguments.Caller, arguments.NewOwner)

	err := a.Registry.TransferOwnership(arguments.Caller, arguments.NewOwner)
	if nil != err {
		return err
	}
	reply.Owner = a.Registry.Owner()
	return nil
}

// ---

// UpdateValidationArguments - arguments for RPC
type UpdateValidationArguments struct {
	Caller      address.Address         `json:"caller"`
	Fingerprint fingerprint.Fingerprint `json:"fingerprint"`
	Validation  string                  `json:"validation"`
}

// UpdateValidation - replace the validation data of a deposit
func (a *Admin) UpdateValidation(arguments *UpdateValidationArguments, reply *EmptyReply) error {

	if err := ratelimit.Limit(a.Limiter); nil != err {
		return err
	}

	a.Log.Infof("Admin.UpdateValidation: %s", arguments.Fingerprint)

	return a.Ledger.UpdateValidation(arguments.Caller, arguments.Fingerprint, arguments.Validation)
}

// ---

// WithdrawArguments - arguments for RPC
type WithdrawArguments struct {
	Caller address.Address `json:"caller"`
}

// WithdrawReply - result of withdraw RPC
type WithdrawReply struct {
	Amount uint64 `json:"amount,string"`
}

// Withdraw - send the whole ledger balance to the owner
func (a *Admin) Withdraw(arguments *WithdrawArguments, reply *WithdrawReply) error {

	if err := ratelimit.Limit(a.Limiter); nil != err {
		return err
	}

	amount, err := a.Ledger.Withdraw(arguments.Caller)
	if nil != err {
		a.Log.Errorf("Admin.Withdraw: caller: %s  error: %s", arguments.Caller, err)
		return err
	}

	a.Log.Warnf("Admin.Withdraw: %d to: %s", amount, arguments.Caller)
	reply.Amount = amount
	return nil
}
