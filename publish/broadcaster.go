// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package publish

import (
	"encoding/binary"
	"time"

	"github.com/bitmark-inc/logger"
	zmq "github.com/pebbe/zmq4"

	"github.com/bitmark-inc/tweetregistry/messagebus"
	"github.com/bitmark-inc/tweetregistry/zmqutil"
)

const (
	broadcasterZapDomain = "broadcaster"
	heartbeatCommand     = "heartbeat"
	heartbeatInterval    = 60 * time.Second
	queueSize            = 50
)

type sender interface {
	SendMessage(parts ...interface{}) (int, error)
}

type broadcaster struct {
	log     *logger.L
	socket4 *zmq.Socket
	socket6 *zmq.Socket
}

// initialise the broadcaster
func (brdc *broadcaster) initialise(privateKey []byte, publicKey []byte, broadcast []string) error {

	log := logger.New("broadcaster")
	brdc.log = log

	log.Info("initialising…")

	err := zmqutil.StartAuthentication()
	if nil != err {
		log.Errorf("start authentication error: %s", err)
		return err
	}

	brdc.socket4, brdc.socket6, err = zmqutil.NewBind(log, zmq.PUB, broadcasterZapDomain, privateKey, publicKey, broadcast)
	if nil != err {
		log.Errorf("bind error: %s", err)
		return err
	}

	return nil
}

// Run - wait for incoming events and forward them to subscribers
func (brdc *broadcaster) Run(args interface{}, shutdown <-chan struct{}) {

	log := brdc.log

	log.Info("starting…")

	queue := messagebus.Bus.Broadcast.Chan(queueSize)
	defer messagebus.Bus.Broadcast.Release(queue)

	sockets := brdc.sockets()
	heartbeat := time.NewTicker(heartbeatInterval)
	defer heartbeat.Stop()

loop:
	for {
		log.Debug("waiting…")

		select {
		case <-shutdown:
			break loop

		case item := <-queue:
			log.Debugf("sending: %s", item.Command)
			if err := send(sockets, item); nil != err {
				log.Errorf("send error: %s", err)
			}

		case now := <-heartbeat.C:
			log.Debug("heartbeat")
			if err := send(sockets, beat(now)); nil != err {
				log.Errorf("heartbeat error: %s", err)
			}
		}
	}

	if nil != brdc.socket4 {
		_ = brdc.socket4.Close()
	}
	if nil != brdc.socket6 {
		_ = brdc.socket6.Close()
	}

	log.Info("stopped")
}

func (brdc *broadcaster) sockets() []sender {
	s := make([]sender, 0, 2)
	if nil != brdc.socket4 {
		s = append(s, brdc.socket4)
	}
	if nil != brdc.socket6 {
		s = append(s, brdc.socket6)
	}
	return s
}

func beat(now time.Time) messagebus.Message {
	t := make([]byte, 8)
	binary.BigEndian.PutUint64(t, uint64(now.Unix()))
	return messagebus.Message{
		Command:    heartbeatCommand,
		Parameters: [][]byte{t},
	}
}

// frames: command, then each parameter
func send(sockets []sender, item messagebus.Message) error {
	parts := make([]interface{}, 0, 1+len(item.Parameters))
	parts = append(parts, item.Command)
	for _, p := range item.Parameters {
		parts = append(parts, p)
	}

	for _, socket := range sockets {
		_, err := socket.SendMessage(parts...)
		if nil != err {
			return err
		}
	}
	return nil
}
