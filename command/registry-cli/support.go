// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"io"
	"io/ioutil"
	"os"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/tweetregistry/address"
	"github.com/bitmark-inc/tweetregistry/command/registry-cli/rpccalls"
	"github.com/bitmark-inc/tweetregistry/fault"
	"github.com/bitmark-inc/tweetregistry/fingerprint"
)

func getMetadata(c *cli.Context) *metadata {
	return c.App.Metadata["config"].(*metadata)
}

// connect to the client listener
func connectClient(m *metadata) (*rpccalls.Client, error) {
	return rpccalls.NewClient(m.connect, m.verbose, m.e)
}

// connect to the admin listener
func connectAdmin(m *metadata) (*rpccalls.Client, error) {
	return rpccalls.NewClient(m.admin, m.verbose, m.e)
}

// the global caller address, required for updates
func getCaller(m *metadata) (address.Address, error) {
	if "" == m.caller {
		return address.Address{}, ErrMissingCaller
	}
	return address.FromString(m.caller)
}

// fingerprint from either a hex hash or a URL
func getFingerprint(hash string, url string) (fingerprint.Fingerprint, error) {
	switch {
	case "" != hash && "" == url:
		return fingerprint.FromString(hash)
	case "" == hash && "" != url:
		return fingerprint.FromURL(url), nil
	default:
		return fingerprint.Fingerprint{}, ErrMissingSelector
	}
}

// the single positional argument
func getArgument(c *cli.Context) (string, error) {
	if 1 != c.NArg() {
		return "", fault.MissingParameters
	}
	return c.Args().Get(0), nil
}

// decode a JSON file, "-" reads stdin
func readJSON(fileName string, stdin io.Reader, value interface{}) error {
	if "" == fileName {
		return ErrMissingJSON
	}

	var data []byte
	var err error
	if "-" == fileName {
		data, err = ioutil.ReadAll(stdin)
	} else {
		data, err = ioutil.ReadFile(fileName)
	}
	if nil != err {
		return err
	}
	return json.Unmarshal(data, value)
}

var standardInput io.Reader = os.Stdin
