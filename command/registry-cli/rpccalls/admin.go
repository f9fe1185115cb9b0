// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/tweetregistry/address"
	"github.com/bitmark-inc/tweetregistry/fingerprint"
	"github.com/bitmark-inc/tweetregistry/registry"
	"github.com/bitmark-inc/tweetregistry/rpc/admin"
)

// these calls must be made on a connection to the admin listener

// StoreTweet - write a processed tweet
func (client *Client) StoreTweet(caller address.Address, submitter address.Address, tweet registry.TweetInput) (fingerprint.Fingerprint, error) {
	args := admin.StoreArguments{
		Caller:    caller,
		Submitter: submitter,
		Tweet:     tweet,
	}
	var reply admin.StoreReply
	if err := client.call("Admin.StoreTweet", args, &reply); err != nil {
		return fingerprint.Fingerprint{}, err
	}
	return reply.Hash, nil
}

// UpdateCIDs - replace archive references
func (client *Client) UpdateCIDs(caller address.Address, fp fingerprint.Fingerprint, update registry.CIDUpdate) error {
	args := admin.UpdateCIDsArguments{
		Caller: caller,
		Hash:   fp,
		Update: update,
	}
	return client.call("Admin.UpdateCIDs", args, &admin.EmptyReply{})
}

// UpdateValidation - replace the validation data of a deposit
func (client *Client) UpdateValidation(caller address.Address, fp fingerprint.Fingerprint, validation string) error {
	args := admin.UpdateValidationArguments{
		Caller:      caller,
		Fingerprint: fp,
		Validation:  validation,
	}
	return client.call("Admin.UpdateValidation", args, &admin.EmptyReply{})
}

// Withdraw - send the whole deposit balance to the owner
func (client *Client) Withdraw(caller address.Address) (uint64, error) {
	var reply admin.WithdrawReply
	if err := client.call("Admin.Withdraw", admin.WithdrawArguments{Caller: caller}, &reply); err != nil {
		return 0, err
	}
	return reply.Amount, nil
}

// TransferOwnership - replace the registry owner
func (client *Client) TransferOwnership(caller address.Address, newOwner address.Address) (address.Address, error) {
	args := admin.TransferOwnershipArguments{
		Caller:   caller,
		NewOwner: newOwner,
	}
	var reply admin.OwnerReply
	if err := client.call("Admin.TransferOwnership", args, &reply); err != nil {
		return address.Address{}, err
	}
	return reply.Owner, nil
}
