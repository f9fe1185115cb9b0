// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package publish_test

import (
	"os"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/tweetregistry/fault"
	"github.com/bitmark-inc/tweetregistry/publish"
)

const dir = "testing"

func TestMain(m *testing.M) {
	_ = os.RemoveAll(dir)
	_ = os.Mkdir(dir, 0700)

	_ = logger.Initialise(logger.Configuration{
		Directory: dir,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	})

	rc := m.Run()

	logger.Finalise()
	_ = os.RemoveAll(dir)
	os.Exit(rc)
}

func TestInitialiseWithoutBroadcast(t *testing.T) {
	err := publish.Finalise()
	assert.Equal(t, fault.NotInitialised, err, "finalise before initialise")

	err = publish.Initialise(&publish.Configuration{})
	assert.Nil(t, err, "initialise error")

	err = publish.Initialise(&publish.Configuration{})
	assert.Equal(t, fault.AlreadyInitialised, err, "second initialise")

	err = publish.Finalise()
	assert.Nil(t, err, "finalise error")
}

func TestInitialiseMissingKey(t *testing.T) {
	configuration := &publish.Configuration{
		Broadcast:  []string{"127.0.0.1:2135"},
		PrivateKey: "testing/does-not-exist.private",
		PublicKey:  "testing/does-not-exist.public",
	}
	err := publish.Initialise(configuration)
	assert.NotNil(t, err, "missing key file accepted")

	err = publish.Finalise()
	assert.Equal(t, fault.NotInitialised, err, "failed initialise left state")
}
