// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package zmqutil

import (
	"time"

	zmq "github.com/pebbe/zmq4"

	"github.com/bitmark-inc/tweetregistry/fault"
	"github.com/bitmark-inc/tweetregistry/util"
)

const (
	publicKeySize  = 32
	privateKeySize = 32
)

// Subscriber - a CURVE authenticated SUB socket receiving every
// published message
type Subscriber struct {
	publicKey  []byte
	privateKey []byte
	address    string
	socket     *zmq.Socket
	timeout    time.Duration
}

// NewSubscriber - create an unconnected subscriber
//
// a zero timeout makes Receive wait forever
func NewSubscriber(privateKey []byte, publicKey []byte, timeout time.Duration) (*Subscriber, error) {
	if len(publicKey) != publicKeySize {
		return nil, fault.InvalidPublicKey
	}
	if len(privateKey) != privateKeySize {
		return nil, fault.InvalidPrivateKey
	}

	s := &Subscriber{
		publicKey:  make([]byte, publicKeySize),
		privateKey: make([]byte, privateKeySize),
		timeout:    timeout,
	}
	copy(s.privateKey, privateKey)
	copy(s.publicKey, publicKey)
	return s, nil
}

// Connect - replace any existing connection with one to hostPort
func (s *Subscriber) Connect(hostPort string, serverPublicKey []byte) error {
	if len(serverPublicKey) != publicKeySize {
		return fault.InvalidPublicKey
	}

	address, err := util.CanonicalIPandPort("tcp://", hostPort)
	if nil != err {
		return err
	}

	if err := s.Close(); nil != err {
		return err
	}

	socket, err := s.newSocket(address, serverPublicKey)
	if nil != err {
		return err
	}
	s.socket = socket
	s.address = address
	return nil
}

func (s *Subscriber) newSocket(address string, serverPublicKey []byte) (*zmq.Socket, error) {
	socket, err := zmq.NewSocket(zmq.SUB)
	if nil != err {
		return nil, err
	}

	options := []func() error{
		func() error { return socket.SetCurveServer(0) },
		func() error { return socket.SetCurvePublickey(string(s.publicKey)) },
		func() error { return socket.SetCurveSecretkey(string(s.privateKey)) },
		func() error { return socket.SetCurveServerkey(string(serverPublicKey)) },
		func() error { return socket.SetLinger(0) },
		func() error { return socket.SetSubscribe("") },
		func() error { return socket.SetIpv6(util.IsIPv6(address)) },
		func() error { return optional(socket.SetHeartbeatIvl(heartbeatInterval)) },
		func() error { return optional(socket.SetHeartbeatTimeout(heartbeatTimeout)) },
		func() error { return optional(socket.SetHeartbeatTtl(heartbeatTTL)) },
	}
	if 0 != s.timeout {
		options = append(options, func() error { return socket.SetRcvtimeo(s.timeout) })
	}
	options = append(options, func() error { return socket.Connect(address) })

	if err := apply(socket, options...); nil != err {
		return nil, err
	}
	return socket, nil
}

// IsConnected - true between Connect and Close
func (s *Subscriber) IsConnected() bool {
	return nil != s.socket
}

// Close - disconnect and release the socket
func (s *Subscriber) Close() error {
	if nil == s.socket {
		return nil
	}
	_ = s.socket.Disconnect(s.address)
	err := s.socket.Close()
	s.socket = nil
	s.address = ""
	return err
}

// Receive - the frames of the next message
func (s *Subscriber) Receive(flags zmq.Flag) ([][]byte, error) {
	if nil == s.socket {
		return nil, fault.NotConnected
	}
	return s.socket.RecvMessageBytes(flags)
}

// String - the connected address
func (s *Subscriber) String() string {
	return s.address
}
