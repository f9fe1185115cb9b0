// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"github.com/bitmark-inc/tweetregistry/address"
	"github.com/bitmark-inc/tweetregistry/event"
)

// topic names
const (
	TopicFingerprint = "fingerprint"
	TopicSubmitter   = "submitter"
	TopicProcessor   = "processor"
	TopicNewOwner    = "newOwner"
)

// the field group named by TweetUpdated
const storageFields = "storage"

type tweetStoredPayload struct {
	Fingerprint   string `json:"fingerprint"`
	URL           string `json:"url"`
	Submitter     string `json:"submitter"`
	Processor     string `json:"processor"`
	ScreenshotCID string `json:"ipfsScreenshotCID"`
	RootCID       string `json:"filecoinRootCID"`
}

type tweetUpdatedPayload struct {
	Fingerprint   string `json:"fingerprint"`
	Field         string `json:"field"`
	ScreenshotCID string `json:"ipfsScreenshotCID,omitempty"`
	DataCID       string `json:"ipfsDataCID,omitempty"`
	RootCID       string `json:"filecoinRootCID,omitempty"`
	DealID        string `json:"filecoinDealId,omitempty"`
}

type ownershipTransferredPayload struct {
	Previous string `json:"previousOwner"`
	New      string `json:"newOwner"`
}

func tweetStored(t *Tweet) (interface{}, []event.Topic) {
	fp := t.Identity.Fingerprint.String()
	payload := tweetStoredPayload{
		Fingerprint:   fp,
		URL:           t.Identity.URL,
		Submitter:     t.Meta.Submitter.String(),
		Processor:     t.Meta.Processor.String(),
		ScreenshotCID: t.Storage.ScreenshotCID,
		RootCID:       t.Storage.RootCID,
	}
	topics := []event.Topic{
		{Name: TopicFingerprint, Value: fp},
		{Name: TopicSubmitter, Value: payload.Submitter},
		{Name: TopicProcessor, Value: payload.Processor},
	}
	return payload, topics
}

func tweetUpdated(t *Tweet, u *CIDUpdate) (interface{}, []event.Topic) {
	fp := t.Identity.Fingerprint.String()
	payload := tweetUpdatedPayload{
		Fingerprint:   fp,
		Field:         storageFields,
		ScreenshotCID: u.ScreenshotCID,
		DataCID:       u.DataCID,
		RootCID:       u.RootCID,
		DealID:        u.DealID,
	}
	return payload, []event.Topic{{Name: TopicFingerprint, Value: fp}}
}

func ownershipTransferred(previous address.Address, newOwner address.Address) (interface{}, []event.Topic) {
	payload := ownershipTransferredPayload{
		Previous: previous.String(),
		New:      newOwner.String(),
	}
	return payload, []event.Topic{{Name: TopicNewOwner, Value: payload.New}}
}
