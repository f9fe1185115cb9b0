// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/rpc"
	"net/rpc/jsonrpc"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/tweetregistry/address"
	"github.com/bitmark-inc/tweetregistry/rpc/listeners"
	"github.com/bitmark-inc/tweetregistry/rpc/server"
)

// InternalConnection - type to allow rpc system to interface to http request
type InternalConnection struct {
	in  io.Reader
	out io.Writer
}

func (c *InternalConnection) Read(p []byte) (n int, err error) {
	return c.in.Read(p)
}
func (c *InternalConnection) Write(d []byte) (n int, err error) {
	return c.out.Write(d)
}
func (c *InternalConnection) Close() error {
	return nil
}

// the argument passed to the handlers
type httpHandler struct {
	log                *logger.L
	server             *rpc.Server
	services           server.Services
	start              time.Time
	version            string
	allow              *listeners.AllowList
	maximumConnections uint64
}

func newHTTPHandler(log *logger.L, version string, maximumConnections uint64, allow *listeners.AllowList, services server.Services) *httpHandler {
	return &httpHandler{
		log:                log,
		server:             server.Create(log, version, &connectionCountHTTPS, services),
		services:           services,
		start:              time.Now(),
		version:            version,
		allow:              allow,
		maximumConnections: maximumConnections,
	}
}

func (s *httpHandler) mux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/registry/rpc", s.rpc)
	mux.HandleFunc("/registry/details", s.details)
	mux.HandleFunc("/", s.root)
	return mux
}

// this matches anything not matched and returns error
func (s *httpHandler) root(w http.ResponseWriter, r *http.Request) {
	sendNotFound(w)
}

// performs a call to any public RPC
func (s *httpHandler) rpc(w http.ResponseWriter, r *http.Request) {
	if http.MethodPost != r.Method {
		sendMethodNotAllowed(w)
		return
	}

	if connectionCountHTTPS.Increment() > s.maximumConnections {
		connectionCountHTTPS.Decrement()
		sendServiceUnavailable(w)
		return
	}
	defer connectionCountHTTPS.Decrement()

	serverCodec := jsonrpc.NewServerCodec(&InternalConnection{in: r.Body, out: w})
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(http.StatusOK)
	err := s.server.ServeRequest(serverCodec)
	if nil != err {
		s.log.Debugf("rpc request from: %q  error: %s", r.RemoteAddr, err)
	}
}

// to allow a GET of the running totals
func (s *httpHandler) details(w http.ResponseWriter, r *http.Request) {
	if http.MethodGet != r.Method {
		sendMethodNotAllowed(w)
		return
	}

	remote, err := net.ResolveTCPAddr("tcp", r.RemoteAddr)
	if nil != err || !s.allow.Permits(remote) {
		s.log.Warnf("Deny access: %q", r.RemoteAddr)
		sendForbidden(w)
		return // *IMPORTANT*
	}

	type theReply struct {
		Version       string          `json:"version"`
		Uptime        string          `json:"uptime"`
		RPCs          uint64          `json:"rpcs"`
		Tweets        uint64          `json:"tweets"`
		Events        uint64          `json:"events"`
		Balance       uint64          `json:"balance,string"`
		DepositOwner  address.Address `json:"depositOwner"`
		RegistryOwner address.Address `json:"registryOwner"`
	}

	reply := theReply{
		Version:       s.version,
		Uptime:        time.Since(s.start).String(),
		RPCs:          connectionCountRPC.Uint64() + connectionCountHTTPS.Uint64(),
		Tweets:        s.services.Registry.TotalTweets(),
		Events:        s.services.Events.Count(),
		Balance:       s.services.Ledger.Balance(),
		DepositOwner:  s.services.Ledger.Owner(),
		RegistryOwner: s.services.Registry.Owner(),
	}

	sendReply(w, reply)
}

// send an JSON encoded reply
func sendReply(w http.ResponseWriter, data interface{}) {
	text, err := json.Marshal(data)
	if nil != err {
		sendInternalServerError(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(text)
}

// selected errors as required above
func sendNotFound(w http.ResponseWriter) {
	sendError(w, "not found", http.StatusNotFound)
}
func sendMethodNotAllowed(w http.ResponseWriter) {
	sendError(w, "method not allowed", http.StatusMethodNotAllowed)
}
func sendForbidden(w http.ResponseWriter) {
	sendError(w, "forbidden", http.StatusForbidden)
}
func sendServiceUnavailable(w http.ResponseWriter) {
	sendError(w, "too many connections", http.StatusServiceUnavailable)
}
func sendInternalServerError(w http.ResponseWriter) {
	sendError(w, "internal server error", http.StatusInternalServerError)
}

// to compose JSON error messages
type eType struct {
	Code  int    `json:"code"`
	Error string `json:"error"`
}

// output an error with a JSON body
func sendError(w http.ResponseWriter, message string, code int) {
	text, err := json.Marshal(eType{
		Code:  code,
		Error: message,
	})
	if nil != err {
		// manually composed error just incase JSON fails
		http.Error(w, `{"code":500,"error":"Internal Server Error"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(code)
	_, _ = w.Write(text)
}
