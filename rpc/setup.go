// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"crypto/tls"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/tweetregistry/counter"
	"github.com/bitmark-inc/tweetregistry/fault"
	"github.com/bitmark-inc/tweetregistry/rpc/certificate"
	"github.com/bitmark-inc/tweetregistry/rpc/listeners"
	"github.com/bitmark-inc/tweetregistry/rpc/server"
)

const (
	clientName = "client_rpc"
	adminName  = "admin_rpc"
	httpsName  = "https_rpc"
)

// HTTPSConfiguration - configuration file data for HTTPS setup
type HTTPSConfiguration struct {
	MaximumConnections uint64   `gluamapper:"maximum_connections" json:"maximum_connections"`
	Listen             []string `gluamapper:"listen" json:"listen"`
	Certificate        string   `gluamapper:"certificate" json:"certificate"`
	PrivateKey         string   `gluamapper:"private_key" json:"private_key"`
	Allow              []string `gluamapper:"allow" json:"allow"` // networks permitted to read /registry/details
}

// connection counts for each listener
var (
	connectionCountRPC   counter.Counter
	connectionCountAdmin counter.Counter
	connectionCountHTTPS counter.Counter
)

// globals
type rpcData struct {
	sync.RWMutex // to allow locking

	log *logger.L // logger

	adminAllow *listeners.AllowList // nil if admin is disabled

	// set once during initialise
	initialised bool
}

// global data
var globalData rpcData

// Initialise - start all listeners
func Initialise(
	clientConfiguration *listeners.RPCConfiguration,
	adminConfiguration *listeners.AdminConfiguration,
	httpsConfiguration *HTTPSConfiguration,
	version string,
	services server.Services,
) error {

	globalData.Lock()
	defer globalData.Unlock()

	// no need to Start if already started
	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	log := logger.New("rpc")
	globalData.log = log
	log.Info("starting…")

	tlsConfig, certificateFingerprint, err := certificate.Get(log, clientName, clientConfiguration.Certificate, clientConfiguration.PrivateKey)
	if nil != err {
		return err
	}

	clientListener, err := listeners.NewRPC(
		clientConfiguration,
		log,
		&connectionCountRPC,
		server.Create(log, version, &connectionCountRPC, services),
		tlsConfig,
		certificateFingerprint,
	)
	if nil != err {
		return err
	}
	err = clientListener.Serve()
	if nil != err {
		return err
	}

	err = initialiseAdmin(adminConfiguration, services)
	if nil != err {
		return err
	}

	err = initialiseHTTPS(httpsConfiguration, version, services)
	if nil != err {
		return err
	}

	// all data initialised
	globalData.initialised = true

	return nil
}

// Finalise - stop all background tasks
func Finalise() error {

	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	// finally...
	globalData.initialised = false
	globalData.adminAllow = nil

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}

// SetAdminAllow - replace the networks permitted on the admin listener
func SetAdminAllow(cidrs []string) error {

	globalData.RLock()
	defer globalData.RUnlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}
	if nil == globalData.adminAllow {
		globalData.log.Warnf("%s disabled: allow list ignored", adminName)
		return nil
	}

	err := globalData.adminAllow.Set(cidrs)
	if nil != err {
		globalData.log.Errorf("%s allow: %v  error: %s", adminName, cidrs, err)
		return err
	}
	globalData.log.Infof("%s allow: %v", adminName, cidrs)
	return nil
}

func initialiseAdmin(configuration *listeners.AdminConfiguration, services server.Services) error {

	log := globalData.log

	if 0 == len(configuration.Listen) {
		log.Infof("disable: %s", adminName)
		return nil
	}

	allow, err := listeners.NewAllowList(configuration.Allow)
	if nil != err {
		log.Errorf("%s allow: %v  error: %s", adminName, configuration.Allow, err)
		return err
	}

	tlsConfig, certificateFingerprint, err := certificate.Get(log, adminName, configuration.Certificate, configuration.PrivateKey)
	if nil != err {
		return err
	}

	adminListener, err := listeners.NewAdmin(
		configuration,
		log,
		&connectionCountAdmin,
		server.CreateAdmin(log, services),
		tlsConfig,
		certificateFingerprint,
		allow,
	)
	if nil != err {
		return err
	}
	err = adminListener.Serve()
	if nil != err {
		return err
	}

	globalData.adminAllow = allow
	return nil
}

func initialiseHTTPS(configuration *HTTPSConfiguration, version string, services server.Services) error {

	log := globalData.log

	if 0 == len(configuration.Listen) {
		log.Infof("disable: %s", httpsName)
		return nil
	}

	if configuration.MaximumConnections < 1 {
		log.Errorf("invalid %s maximum connection limit: %d", httpsName, configuration.MaximumConnections)
		return fault.MissingParameters
	}

	tlsConfiguration, fingerprint, err := certificate.Get(log, httpsName, configuration.Certificate, configuration.PrivateKey)
	if nil != err {
		return err
	}

	log.Infof("%s: SHA3-256 fingerprint: %x", httpsName, fingerprint)

	allow, err := listeners.NewAllowList(configuration.Allow)
	if nil != err {
		return err
	}

	handler := newHTTPHandler(log, version, configuration.MaximumConnections, allow, services)

	for _, listen := range configuration.Listen {
		log.Infof("starting server: %s on: %q", httpsName, listen)
		if '*' == listen[0] {
			// change "*:PORT" to "[::]:PORT"
			// on the assumption that this will listen on tcp4 and tcp6
			listen = "[::]" + ":" + strings.Split(listen, ":")[1]
		}
		go func(listen string) {
			err := ListenAndServeTLSKeyPair(listen, handler.mux(), tlsConfiguration.Clone())
			if nil != err {
				log.Errorf("%s: %q  error: %s", httpsName, listen, err)
			}
		}(listen)
	}

	return nil
}

type tcpKeepAliveListener struct {
	*net.TCPListener
}

func (ln tcpKeepAliveListener) Accept() (c net.Conn, err error) {
	tc, err := ln.AcceptTCP()
	if err != nil {
		return
	}
	_ = tc.SetKeepAlive(true)
	_ = tc.SetKeepAlivePeriod(3 * time.Minute)
	return tc, nil
}

// ListenAndServeTLSKeyPair - Start a HTTPS server using in-memory TLS KeyPair
func ListenAndServeTLSKeyPair(addr string, handler http.Handler, cfg *tls.Config) error {
	s := &http.Server{
		Addr:           addr,
		Handler:        handler,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	cfg.NextProtos = []string{"http/1.1"}

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}

	tlsListener := tls.NewListener(tcpKeepAliveListener{ln.(*net.TCPListener)}, cfg)

	return s.Serve(tlsListener)
}
