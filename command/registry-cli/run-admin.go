// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/tweetregistry/address"
	"github.com/bitmark-inc/tweetregistry/fingerprint"
	"github.com/bitmark-inc/tweetregistry/registry"
)

func runStore(c *cli.Context) error {

	m := getMetadata(c)

	caller, err := getCaller(m)
	if nil != err {
		return err
	}

	submitter, err := address.FromString(c.String("submitter"))
	if nil != err {
		return err
	}

	var tweet registry.TweetInput
	err = readJSON(c.String("json"), standardInput, &tweet)
	if nil != err {
		return err
	}

	// the hash is derived from the URL when not given
	if tweet.Identity.Fingerprint.IsZero() {
		tweet.Identity.Fingerprint = fingerprint.FromURL(tweet.Identity.URL)
	}

	client, err := connectAdmin(m)
	if nil != err {
		return err
	}
	defer client.Close()

	fp, err := client.StoreTweet(caller, submitter, tweet)
	if nil != err {
		return err
	}

	return printJson(m.w, map[string]interface{}{
		"hash": fp,
	})
}

func runUpdateCIDs(c *cli.Context) error {

	m := getMetadata(c)

	caller, err := getCaller(m)
	if nil != err {
		return err
	}

	fp, err := fingerprint.FromString(c.String("hash"))
	if nil != err {
		return err
	}

	update := registry.CIDUpdate{
		ScreenshotCID: c.String("screenshot"),
		DataCID:       c.String("data"),
		RootCID:       c.String("root"),
		DealID:        c.String("deal"),
	}
	if update.IsEmpty() {
		return ErrNoUpdate
	}

	client, err := connectAdmin(m)
	if nil != err {
		return err
	}
	defer client.Close()

	err = client.UpdateCIDs(caller, fp, update)
	if nil != err {
		return err
	}

	return printJson(m.w, map[string]interface{}{
		"hash":   fp,
		"update": update,
	})
}

func runUpdateValidation(c *cli.Context) error {

	m := getMetadata(c)

	caller, err := getCaller(m)
	if nil != err {
		return err
	}

	fp, err := fingerprint.FromString(c.String("hash"))
	if nil != err {
		return err
	}

	client, err := connectAdmin(m)
	if nil != err {
		return err
	}
	defer client.Close()

	validation := c.String("validation")
	err = client.UpdateValidation(caller, fp, validation)
	if nil != err {
		return err
	}

	return printJson(m.w, map[string]interface{}{
		"fingerprint": fp,
		"validation":  validation,
	})
}

func runWithdraw(c *cli.Context) error {

	m := getMetadata(c)

	caller, err := getCaller(m)
	if nil != err {
		return err
	}

	client, err := connectAdmin(m)
	if nil != err {
		return err
	}
	defer client.Close()

	amount, err := client.Withdraw(caller)
	if nil != err {
		return err
	}

	return printJson(m.w, map[string]interface{}{
		"to":     caller,
		"amount": amount,
	})
}

func runTransferOwnership(c *cli.Context) error {

	m := getMetadata(c)

	caller, err := getCaller(m)
	if nil != err {
		return err
	}

	s, err := getArgument(c)
	if nil != err {
		return err
	}
	newOwner, err := address.FromString(s)
	if nil != err {
		return err
	}

	client, err := connectAdmin(m)
	if nil != err {
		return err
	}
	defer client.Close()

	owner, err := client.TransferOwnership(caller, newOwner)
	if nil != err {
		return err
	}

	return printJson(m.w, map[string]interface{}{
		"owner": owner,
	})
}
