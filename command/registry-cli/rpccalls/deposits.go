// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/tweetregistry/address"
	"github.com/bitmark-inc/tweetregistry/deposit"
	"github.com/bitmark-inc/tweetregistry/fingerprint"
	"github.com/bitmark-inc/tweetregistry/rpc/deposits"
)

// GetDeposit - read a deposit record
func (client *Client) GetDeposit(fp fingerprint.Fingerprint) (*deposit.Record, error) {
	var reply deposits.GetReply
	if err := client.call("Deposits.Get", deposits.GetArguments{Fingerprint: fp}, &reply); err != nil {
		return nil, err
	}
	return reply.Record, nil
}

// MakeDeposit - stake value against a fingerprint
func (client *Client) MakeDeposit(caller address.Address, value uint64, args deposit.Arguments) (fingerprint.Fingerprint, error) {
	depositArgs := deposits.DepositArguments{
		Caller:  caller,
		Value:   value,
		Deposit: args,
	}
	var reply deposits.DepositReply
	if err := client.call("Deposits.Deposit", depositArgs, &reply); err != nil {
		return fingerprint.Fingerprint{}, err
	}
	return reply.Fingerprint, nil
}

// Payouts - withdrawals made to an address
func (client *Client) Payouts(to address.Address, page PageData) (*deposits.PayoutsReply, error) {
	args := deposits.PayoutsArguments{
		To:     to,
		Offset: page.Offset,
		Limit:  page.Limit,
	}
	var reply deposits.PayoutsReply
	if err := client.call("Deposits.Payouts", args, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}
