// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package zmqutil_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/tweetregistry/fault"
	"github.com/bitmark-inc/tweetregistry/zmqutil"
)

func TestMakeKeyPair(t *testing.T) {
	dir, err := ioutil.TempDir("", "zmqutil")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	defer os.RemoveAll(dir)

	public := filepath.Join(dir, "publisher.public")
	private := filepath.Join(dir, "publisher.private")

	err = zmqutil.MakeKeyPair(public, private)
	assert.Nil(t, err, "make key pair error")

	publicKey, err := zmqutil.ReadPublicKeyFile(public)
	assert.Nil(t, err, "read public key error")
	assert.Equal(t, 32, len(publicKey), "wrong public key length")

	privateKey, err := zmqutil.ReadPrivateKeyFile(private)
	assert.Nil(t, err, "read private key error")
	assert.Equal(t, 32, len(privateKey), "wrong private key length")

	_, err = zmqutil.ReadPublicKeyFile(private)
	assert.Equal(t, fault.InvalidPublicKeyFile, err, "private key read as public")

	_, err = zmqutil.ReadPrivateKeyFile(public)
	assert.Equal(t, fault.InvalidPrivateKeyFile, err, "public key read as private")

	err = zmqutil.MakeKeyPair(public, private)
	assert.Equal(t, fault.KeyFileAlreadyExists, err, "existing keys overwritten")
}

func TestParseKey(t *testing.T) {
	hex := strings.Repeat("ab", 32)

	tests := []struct {
		key     string
		private bool
		err     error
	}{
		{"PUBLIC:" + hex, false, nil},
		{"  PRIVATE:" + hex + "\n", true, nil},
		{"PUBLIC:" + hex[2:], false, fault.InvalidPublicKeyFile},
		{"PRIVATE:zz" + hex[2:], false, fault.InvalidPrivateKeyFile},
		{hex, false, fault.InvalidPublicKeyFile},
		{"", false, fault.InvalidPublicKeyFile},
	}

	for i, test := range tests {
		data, private, err := zmqutil.ParseKey(test.key)
		assert.Equal(t, test.err, err, "%d: wrong error", i)
		assert.Equal(t, test.private, private, "%d: wrong private flag", i)
		if nil == test.err {
			assert.Equal(t, 32, len(data), "%d: wrong length", i)
		}
	}
}
