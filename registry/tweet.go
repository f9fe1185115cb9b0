// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"github.com/bitmark-inc/tweetregistry/address"
	"github.com/bitmark-inc/tweetregistry/fingerprint"
)

// UnknownEcosystem - the tag stored when none is given
const UnknownEcosystem = "UNKNOWN"

// Identity - who posted what, where
type Identity struct {
	Fingerprint fingerprint.Fingerprint `json:"tweetHash"`
	URL         string                  `json:"tweetURL"`
	ID          string                  `json:"tweetId"`
	User        string                  `json:"user"`
	Handle      string                  `json:"handle"`
	Verified    bool                    `json:"verified"`
}

// Metrics - engagement at the time of capture
type Metrics struct {
	Timestamp          uint64 `json:"timestamp"`
	Likes              uint64 `json:"likes"`
	Retweets           uint64 `json:"retweets"`
	Replies            uint64 `json:"replies"`
	ControversyScore   uint64 `json:"controversyScore"`
	DeletionLikelihood uint64 `json:"deletionLikelihood"`
}

// StorageData - archive references
//
// all but the ecosystem tag may be changed by UpdateCIDs
type StorageData struct {
	ScreenshotCID string `json:"ipfsScreenshotCID"`
	DataCID       string `json:"ipfsDataCID"`
	RootCID       string `json:"filecoinRootCID"`
	DealID        string `json:"filecoinDealId"`
	Ecosystem     string `json:"ecosystem"`
}

// Meta - processing details
type Meta struct {
	Submitter   address.Address `json:"submitter"`
	Processor   address.Address `json:"processor"`
	ProcessedAt uint64          `json:"processedAt"`
	Exists      bool            `cbor:"exists" json:"exists"`
}

// TweetInput - the caller supplied part of a tweet
type TweetInput struct {
	Identity Identity    `json:"identity"`
	Content  string      `json:"content"`
	Metrics  Metrics     `json:"metrics"`
	Storage  StorageData `json:"storage"`
}

// Tweet - a stored tweet
type Tweet struct {
	Identity Identity    `json:"identity"`
	Content  string      `json:"content"`
	Metrics  Metrics     `json:"metrics"`
	Storage  StorageData `json:"storage"`
	Meta     Meta        `json:"meta"`
}

// CIDUpdate - new archive references; empty fields are left unchanged
type CIDUpdate struct {
	ScreenshotCID string `json:"ipfsScreenshotCID"`
	DataCID       string `json:"ipfsDataCID"`
	RootCID       string `json:"filecoinRootCID"`
	DealID        string `json:"filecoinDealId"`
}

// IsEmpty - true if nothing would change
func (u *CIDUpdate) IsEmpty() bool {
	return "" == u.ScreenshotCID && "" == u.DataCID && "" == u.RootCID && "" == u.DealID
}

// CIDs - the non-empty content references in order
func (s *StorageData) CIDs() []string {
	cids := make([]string, 0, 3)
	for _, cid := range []string{s.ScreenshotCID, s.DataCID, s.RootCID} {
		if "" != cid {
			cids = append(cids, cid)
		}
	}
	return cids
}
