// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package zmqutil

import (
	"time"

	"github.com/bitmark-inc/logger"
	zmq "github.com/pebbe/zmq4"

	"github.com/bitmark-inc/tweetregistry/util"
)

const (
	heartbeatInterval = 15 * time.Second
	heartbeatTimeout  = 60 * time.Second
	heartbeatTTL      = 120 * time.Second
)

// NewBind - bind a list of host:port addresses
//
// creates up to 2 sockets for separate IPv4 and IPv6 traffic
func NewBind(log *logger.L, socketType zmq.Type, zapDomain string, privateKey []byte, publicKey []byte, listen []string) (*zmq.Socket, *zmq.Socket, error) {

	socket4 := (*zmq.Socket)(nil) // IPv4 traffic
	socket6 := (*zmq.Socket)(nil) // IPv6 traffic

	for i, hostPort := range listen {
		bindTo, err := util.CanonicalIPandPort("tcp://", hostPort)
		if nil != err {
			log.Errorf("bind[%d]: %q  error: %s", i, hostPort, err)
			closeAll(socket4, socket6)
			return nil, nil, err
		}
		v6 := util.IsIPv6(bindTo)

		socket := socket4
		if v6 {
			socket = socket6
		}
		if nil == socket {
			socket, err = NewServerSocket(socketType, zapDomain, privateKey, publicKey, v6)
			if nil != err {
				closeAll(socket4, socket6)
				return nil, nil, err
			}
			if v6 {
				socket6 = socket
			} else {
				socket4 = socket
			}
		}

		err = socket.Bind(bindTo)
		if nil != err {
			log.Errorf("cannot bind[%d]: %q  error: %s", i, bindTo, err)
			closeAll(socket4, socket6)
			return nil, nil, err
		}
		log.Infof("bind[%d]: %q  IPv6: %v", i, bindTo, v6)
	}
	return socket4, socket6, nil
}

func closeAll(sockets ...*zmq.Socket) {
	for _, s := range sockets {
		if nil != s {
			_ = s.Close()
		}
	}
}

// NewServerSocket - create a CURVE server socket, any client key is accepted
func NewServerSocket(socketType zmq.Type, zapDomain string, privateKey []byte, publicKey []byte, v6 bool) (*zmq.Socket, error) {

	socket, err := zmq.NewSocket(socketType)
	if nil != err {
		return nil, err
	}

	zmq.AuthCurveAdd(zapDomain, zmq.CURVE_ALLOW_ANY)

	err = apply(socket,
		func() error { return socket.SetCurveServer(1) },
		func() error { return socket.SetCurveSecretkey(string(privateKey)) },
		func() error { return socket.SetZapDomain(zapDomain) },
		func() error { return socket.SetIdentity(string(publicKey)) },
		func() error { return socket.SetIpv6(v6) },
		func() error { return socket.SetLinger(0) },
		func() error { return optional(socket.SetHeartbeatIvl(heartbeatInterval)) },
		func() error { return optional(socket.SetHeartbeatTimeout(heartbeatTimeout)) },
		func() error { return optional(socket.SetHeartbeatTtl(heartbeatTTL)) },
	)
	if nil != err {
		return nil, err
	}
	return socket, nil
}

// run each option in order, the socket is closed on the first error
func apply(socket *zmq.Socket, options ...func() error) error {
	for _, set := range options {
		if err := set(); nil != err {
			_ = socket.Close()
			return err
		}
	}
	return nil
}

// heartbeat options need ZMQ 4.2
func optional(err error) error {
	if zmq.ErrorNotImplemented42 == err {
		return nil
	}
	return err
}
