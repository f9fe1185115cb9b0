// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/tweetregistry/address"
	"github.com/bitmark-inc/tweetregistry/command/registry-cli/rpccalls"
	"github.com/bitmark-inc/tweetregistry/deposit"
	"github.com/bitmark-inc/tweetregistry/fault"
)

func runDepositGet(c *cli.Context) error {

	m := getMetadata(c)

	fp, err := getFingerprint(c.String("hash"), c.String("url"))
	if nil != err {
		return err
	}

	client, err := connectClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	record, err := client.GetDeposit(fp)
	if nil != err {
		return err
	}

	return printJson(m.w, record)
}

func runDeposit(c *cli.Context) error {

	m := getMetadata(c)

	caller, err := getCaller(m)
	if nil != err {
		return err
	}

	value := c.Uint64("value")
	if 0 == value {
		return fault.InsufficientValue
	}

	var args deposit.Arguments
	err = readJSON(c.String("json"), standardInput, &args)
	if nil != err {
		return err
	}

	client, err := connectClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	fp, err := client.MakeDeposit(caller, value, args)
	if nil != err {
		return err
	}

	return printJson(m.w, map[string]interface{}{
		"fingerprint": fp,
	})
}

func runPayouts(c *cli.Context) error {

	m := getMetadata(c)

	s, err := getArgument(c)
	if nil != err {
		return err
	}
	to, err := address.FromString(s)
	if nil != err {
		return err
	}

	client, err := connectClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Payouts(to, rpccalls.PageData{
		Offset: c.Uint64("offset"),
		Limit:  c.Uint64("limit"),
	})
	if nil != err {
		return err
	}

	return printJson(m.w, reply)
}
