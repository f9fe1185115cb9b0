// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"time"

	zmq "github.com/pebbe/zmq4"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/tweetregistry/event"
	"github.com/bitmark-inc/tweetregistry/fault"
	"github.com/bitmark-inc/tweetregistry/rpc/events"
	"github.com/bitmark-inc/tweetregistry/zmqutil"
)

const (
	heartbeatCommand = "heartbeat"
	watchTimeout     = 2 * time.Minute
)

func runEvents(c *cli.Context) error {

	m := getMetadata(c)

	client, err := connectClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	start := c.Uint64("start")
	count := c.Uint64("count")

	name := c.String("name")
	if "" == name {
		reply, err := client.ListEvents(start, count)
		if nil != err {
			return err
		}
		return printJson(m.w, reply)
	}

	reply, err := client.FilterEvents(events.FilterArguments{
		Name:   event.Name(name),
		Topic:  c.String("topic"),
		Value:  c.String("value"),
		Offset: start,
		Limit:  count,
	})
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}

func runWatch(c *cli.Context) error {

	m := getMetadata(c)

	broadcast := c.String("broadcast")
	if "" == broadcast {
		return fault.MissingParameters
	}
	serverKeyFile := c.String("server-key")
	if "" == serverKeyFile {
		return ErrMissingServerKey
	}
	serverPublicKey, err := zmqutil.ReadPublicKeyFile(serverKeyFile)
	if nil != err {
		return err
	}

	// a fresh identity for each run
	publicText, privateText, err := zmq.NewCurveKeypair()
	if nil != err {
		return err
	}
	publicKey := []byte(zmq.Z85decode(publicText))
	privateKey := []byte(zmq.Z85decode(privateText))

	subscriber, err := zmqutil.NewSubscriber(privateKey, publicKey, watchTimeout)
	if nil != err {
		return err
	}
	defer subscriber.Close()

	err = subscriber.Connect(broadcast, serverPublicKey)
	if nil != err {
		return err
	}

	limit := c.Int("count")
	for n := 0; 0 == limit || n < limit; {
		data, err := subscriber.Receive(0)
		if nil != err {
			return err
		}

		entry, ok, err := decodeMessage(data)
		if nil != err {
			return err
		}
		if !ok {
			continue
		}
		err = printJson(m.w, entry)
		if nil != err {
			return err
		}
		n += 1
	}
	return nil
}

// frames: event name, then the record parameters
//
// heartbeats are skipped
func decodeMessage(data [][]byte) (*events.Entry, bool, error) {
	if len(data) < 1 || heartbeatCommand == string(data[0]) {
		return nil, false, nil
	}

	r, err := event.FromParameters(string(data[0]), data[1:])
	if nil != err {
		return nil, false, err
	}
	payload, err := r.Decode()
	if nil != err {
		return nil, false, err
	}

	return &events.Entry{
		Sequence:  r.Sequence,
		Name:      r.Name,
		Timestamp: r.Timestamp,
		Topics:    r.Topics,
		Payload:   payload,
	}, true, nil
}
