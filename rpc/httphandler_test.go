// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/tweetregistry/address"
	depositmocks "github.com/bitmark-inc/tweetregistry/deposit/mocks"
	"github.com/bitmark-inc/tweetregistry/fault"
	registrymocks "github.com/bitmark-inc/tweetregistry/registry/mocks"
	"github.com/bitmark-inc/tweetregistry/rpc/fixtures"
	"github.com/bitmark-inc/tweetregistry/rpc/listeners"
	"github.com/bitmark-inc/tweetregistry/rpc/mocks"
	"github.com/bitmark-inc/tweetregistry/rpc/server"
)

type testMocks struct {
	ledger   *depositmocks.MockLedger
	registry *registrymocks.MockRegistry
	events   *mocks.MockLog
}

func newTestHandler(t *testing.T, ctl *gomock.Controller, maximumConnections uint64) (*httpHandler, testMocks) {
	m := testMocks{
		ledger:   depositmocks.NewMockLedger(ctl),
		registry: registrymocks.NewMockRegistry(ctl),
		events:   mocks.NewMockLog(ctl),
	}
	allow, err := listeners.NewAllowList([]string{"127.0.0.0/8"})
	assert.Nil(t, err, "allow list error")

	services := server.Services{
		Ledger:   m.ledger,
		Registry: m.registry,
		Events:   m.events,
		Payouts:  mocks.NewMockPayoutLister(ctl),
	}
	return newHTTPHandler(logger.New(fixtures.LogCategory), "0.9", maximumConnections, allow, services), m
}

func TestHTTPRPC(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	h, m := newTestHandler(t, ctl, 10)
	m.registry.EXPECT().TotalTweets().Return(uint64(6)).Times(1)

	body := `{"method":"Tweets.Count","params":[{}],"id":1}`
	req := httptest.NewRequest(http.MethodPost, "/registry/rpc", strings.NewReader(body))
	w := httptest.NewRecorder()
	h.mux().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status")

	var reply struct {
		ID     uint64 `json:"id"`
		Result struct {
			Total uint64 `json:"total"`
		} `json:"result"`
		Error interface{} `json:"error"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &reply)
	assert.Nil(t, err, "reply decode error")
	assert.Equal(t, uint64(1), reply.ID, "wrong id")
	assert.Nil(t, reply.Error, "unexpected error")
	assert.Equal(t, uint64(6), reply.Result.Total, "wrong total")
}

func TestHTTPRPCError(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	h, _ := newTestHandler(t, ctl, 10)

	body := `{"method":"Tweets.Get","params":[{}],"id":2}`
	req := httptest.NewRequest(http.MethodPost, "/registry/rpc", strings.NewReader(body))
	w := httptest.NewRecorder()
	h.mux().ServeHTTP(w, req)

	var reply struct {
		Error string `json:"error"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &reply)
	assert.Nil(t, err, "reply decode error")
	assert.Equal(t, fault.MissingParameters.Error(), reply.Error, "wrong error")
}

func TestHTTPRPCMethod(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	h, _ := newTestHandler(t, ctl, 10)

	w := httptest.NewRecorder()
	h.mux().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/registry/rpc", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code, "GET accepted")

	w = httptest.NewRecorder()
	h.mux().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nothing", nil))
	assert.Equal(t, http.StatusNotFound, w.Code, "unknown path accepted")
}

func TestHTTPRPCConnectionLimit(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	h, _ := newTestHandler(t, ctl, 0)

	body := `{"method":"Tweets.Count","params":[{}],"id":1}`
	w := httptest.NewRecorder()
	h.mux().ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/registry/rpc", strings.NewReader(body)))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code, "connection limit ignored")
	assert.Equal(t, uint64(0), connectionCountHTTPS.Uint64(), "connection count not released")
}

func TestHTTPDetails(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	h, m := newTestHandler(t, ctl, 10)

	owner := address.Address{0xa0}
	m.registry.EXPECT().TotalTweets().Return(uint64(3)).Times(1)
	m.registry.EXPECT().Owner().Return(owner).Times(1)
	m.events.EXPECT().Count().Return(uint64(8)).Times(1)
	m.ledger.EXPECT().Balance().Return(uint64(77)).Times(1)
	m.ledger.EXPECT().Owner().Return(owner).Times(1)

	req := httptest.NewRequest(http.MethodGet, "/registry/details", nil)
	req.RemoteAddr = "127.0.0.1:40000"
	w := httptest.NewRecorder()
	h.mux().ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code, "wrong status")

	var reply struct {
		Version string `json:"version"`
		Tweets  uint64 `json:"tweets"`
		Events  uint64 `json:"events"`
		Balance string `json:"balance"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &reply)
	assert.Nil(t, err, "reply decode error")
	assert.Equal(t, "0.9", reply.Version, "wrong version")
	assert.Equal(t, uint64(3), reply.Tweets, "wrong tweets")
	assert.Equal(t, uint64(8), reply.Events, "wrong events")
	assert.Equal(t, "77", reply.Balance, "wrong balance")
}

func TestHTTPDetailsForbidden(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	h, _ := newTestHandler(t, ctl, 10)

	req := httptest.NewRequest(http.MethodGet, "/registry/details", nil)
	req.RemoteAddr = "192.0.2.1:1234"
	w := httptest.NewRecorder()
	h.mux().ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code, "remote access allowed")
}

func TestSetAdminAllowNotInitialised(t *testing.T) {
	err := SetAdminAllow([]string{"10.0.0.0/8"})
	assert.Equal(t, fault.NotInitialised, err, "wrong error")
}
