// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners

import (
	"crypto/tls"
	"net"
	"net/rpc"
	"strings"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/tweetregistry/counter"
	"github.com/bitmark-inc/tweetregistry/fault"
)

const adminLogName = "admin_rpc"

// AdminConfiguration - configuration file data for the privileged
// RPC listener
type AdminConfiguration struct {
	MaximumConnections uint64   `gluamapper:"maximum_connections" json:"maximum_connections"`
	Listen             []string `gluamapper:"listen" json:"listen"`
	Certificate        string   `gluamapper:"certificate" json:"certificate"`
	PrivateKey         string   `gluamapper:"private_key" json:"private_key"`
	Allow              []string `gluamapper:"allow" json:"allow"`
}

// AllowList - the networks permitted to connect, replaceable while
// serving
type AllowList struct {
	sync.RWMutex
	networks []*net.IPNet
}

// NewAllowList - parse a list of CIDR strings
func NewAllowList(cidrs []string) (*AllowList, error) {
	a := &AllowList{}
	err := a.Set(cidrs)
	if nil != err {
		return nil, err
	}
	return a, nil
}

// Set - replace the permitted networks
//
// the existing list is kept if any entry is invalid
func (a *AllowList) Set(cidrs []string) error {
	networks := make([]*net.IPNet, 0, len(cidrs))
	for _, s := range cidrs {
		_, cidr, err := net.ParseCIDR(strings.TrimSpace(s))
		if nil != err {
			return fault.InvalidIPAddress
		}
		networks = append(networks, cidr)
	}

	a.Lock()
	a.networks = networks
	a.Unlock()
	return nil
}

// Permits - check a remote address against the list
func (a *AllowList) Permits(addr net.Addr) bool {
	var ip net.IP
	switch t := addr.(type) {
	case *net.TCPAddr:
		ip = t.IP
	default:
		host, _, err := net.SplitHostPort(addr.String())
		if nil != err {
			return false
		}
		ip = net.ParseIP(host)
	}
	if nil == ip {
		return false
	}

	a.RLock()
	defer a.RUnlock()
	for _, n := range a.networks {
		if n.Contains(ip) {
			return true
		}
	}
	return false
}

// NewAdmin - create the privileged JSON RPC listener
//
// an empty listen list disables it and returns a nil listener
func NewAdmin(
	configuration *AdminConfiguration,
	log *logger.L,
	count *counter.Counter,
	server *rpc.Server,
	tlsConfig *tls.Config,
	certificateFingerprint [32]byte,
	allow *AllowList,
) (Listener, error) {
	if 0 == len(configuration.Listen) {
		log.Infof("disable: %s", adminLogName)
		return nil, nil
	}
	if nil == allow {
		return nil, fault.MissingParameters
	}

	c := &RPCConfiguration{
		MaximumConnections: configuration.MaximumConnections,
		Listen:             configuration.Listen,
		Certificate:        configuration.Certificate,
		PrivateKey:         configuration.PrivateKey,
	}
	r, err := newListener(adminLogName, c, log, count, server, tlsConfig, certificateFingerprint, allow.Permits)
	if nil != err {
		return nil, err
	}
	return r, nil
}
