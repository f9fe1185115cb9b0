// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/tweetregistry/command/registry-cli/rpccalls"
	"github.com/bitmark-inc/tweetregistry/fingerprint"
	"github.com/bitmark-inc/tweetregistry/rpc/tweets"
)

func runTweet(c *cli.Context) error {

	m := getMetadata(c)

	args := tweets.GetArguments{
		URL: c.String("url"),
		CID: c.String("cid"),
	}
	if hash := c.String("hash"); "" != hash {
		fp, err := fingerprint.FromString(hash)
		if nil != err {
			return err
		}
		args.Hash = &fp
	}

	client, err := connectClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	tweet, err := client.GetTweet(args)
	if nil != err {
		return err
	}

	return printJson(m.w, tweet)
}

func runExists(c *cli.Context) error {

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

	exists, err := client.Exists(fp)
	if nil != err {
		return err
	}

	return printJson(m.w, map[string]interface{}{
		"hash":   fp,
		"exists": exists,
	})
}

func runCount(c *cli.Context) error {

	m := getMetadata(c)

	client, err := connectClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Count(c.String("handle"), c.String("ecosystem"))
	if nil != err {
		return err
	}

	return printJson(m.w, reply)
}

func runUser(c *cli.Context) error {
	return runHashes(c, true, (*rpccalls.Client).ListUser)
}

func runEcosystem(c *cli.Context) error {
	return runHashes(c, true, (*rpccalls.Client).ListEcosystem)
}

func runAll(c *cli.Context) error {
	return runHashes(c, false, (*rpccalls.Client).ListAll)
}

func runHashes(c *cli.Context, keyed bool, list func(*rpccalls.Client, rpccalls.PageData) (*tweets.HashesReply, error)) error {

	m := getMetadata(c)

	page := rpccalls.PageData{
		Offset: c.Uint64("offset"),
		Limit:  c.Uint64("limit"),
	}
	if keyed {
		key, err := getArgument(c)
		if nil != err {
			return err
		}
		page.Key = key
	}

	client, err := connectClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := list(client, page)
	if nil != err {
		return err
	}

	return printJson(m.w, reply)
}

func runCIDs(c *cli.Context) error {

	m := getMetadata(c)

	client, err := connectClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	cids, err := client.ListCIDs(rpccalls.PageData{
		Offset: c.Uint64("offset"),
		Limit:  c.Uint64("limit"),
	})
	if nil != err {
		return err
	}

	return printJson(m.w, cids)
}
