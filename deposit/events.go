// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package deposit

import (
	"strconv"

	"github.com/bitmark-inc/tweetregistry/address"
	"github.com/bitmark-inc/tweetregistry/event"
	"github.com/bitmark-inc/tweetregistry/fingerprint"
)

// topic names
const (
	TopicFingerprint = "fingerprint"
	TopicDepositor   = "depositor"
	TopicAmount      = "amount"
	TopicTo          = "to"
)

// nested addresses are carried as text, like the top level ones

type coCreatorPayload struct {
	Name   string `json:"name"`
	Wallet string `json:"wallet"`
}

type collectionConfigPayload struct {
	Handle          string `json:"handle"`
	MintPrice       uint64 `json:"mintPrice"`
	MaxSupply       uint64 `json:"maxSupply"`
	RoyaltyReceiver string `json:"royaltyReceiver"`
	RoyaltyBps      uint16 `json:"royaltyBps"`
}

type licenseTermsPayload struct {
	Currency              string `json:"currency"`
	RoyaltyPolicy         string `json:"royaltyPolicy"`
	Transferable          bool   `json:"transferable"`
	Expiration            uint64 `json:"expiration"`
	CommercialUse         bool   `json:"commercialUse"`
	CommercialAttribution bool   `json:"commercialAttribution"`
	DerivativesAllowed    bool   `json:"derivativesAllowed"`
	DerivativesApproval   bool   `json:"derivativesApproval"`
	CommercialRevShare    uint32 `json:"commercialRevShare"`
	CommercialRevCeiling  uint64 `json:"commercialRevCeiling"`
	DerivativeRevCeiling  uint64 `json:"derivativeRevCeiling"`
	URI                   string `json:"uri"`
}

// DepositProcessed carries every input so the write can be replayed
type depositProcessedPayload struct {
	Fingerprint        string                  `json:"fingerprint"`
	Depositor          string                  `json:"depositor"`
	Recipient          string                  `json:"recipient"`
	Amount             uint64                  `json:"amount"`
	Validation         string                  `json:"validation"`
	Proof              []byte                  `json:"proof"`
	TargetCollection   string                  `json:"targetCollection"`
	CollectionConfig   collectionConfigPayload `json:"collectionConfig"`
	LicenseTermsConfig licenseTermsPayload     `json:"licenseTermsConfig"`
	LicenseMintParams  LicenseMintParams       `json:"licenseMintParams"`
	CoCreators         []coCreatorPayload      `json:"coCreators"`
}

type validationUpdatedPayload struct {
	Fingerprint string `json:"fingerprint"`
	Validation  string `json:"validation"`
}

type withdrawnPayload struct {
	To     string `json:"to"`
	Amount uint64 `json:"amount"`
}

func depositProcessed(r *Record) (interface{}, []event.Topic) {
	coCreators := make([]coCreatorPayload, 0, len(r.CoCreators))
	for _, c := range r.CoCreators {
		coCreators = append(coCreators, coCreatorPayload{Name: c.Name, Wallet: c.Wallet.String()})
	}
	payload := depositProcessedPayload{
		Fingerprint:        r.Fingerprint.String(),
		Depositor:          r.Depositor.String(),
		Recipient:          r.Recipient.String(),
		Amount:             r.Amount,
		Validation:         r.Validation,
		Proof:              r.Proof,
		TargetCollection:   r.TargetCollection.String(),
		CollectionConfig:   collectionConfig(r.CollectionConfig),
		LicenseTermsConfig: licenseTerms(r.LicenseTermsConfig),
		LicenseMintParams:  r.LicenseMintParams,
		CoCreators:         coCreators,
	}
	topics := []event.Topic{
		{Name: TopicFingerprint, Value: r.Fingerprint.String()},
		{Name: TopicDepositor, Value: r.Depositor.String()},
		{Name: TopicAmount, Value: strconv.FormatUint(r.Amount, 10)},
	}
	return payload, topics
}

func collectionConfig(c CollectionConfig) collectionConfigPayload {
	return collectionConfigPayload{
		Handle:          c.Handle,
		MintPrice:       c.MintPrice,
		MaxSupply:       c.MaxSupply,
		RoyaltyReceiver: c.RoyaltyReceiver.String(),
		RoyaltyBps:      c.RoyaltyBps,
	}
}

func licenseTerms(l LicenseTermsConfig) licenseTermsPayload {
	return licenseTermsPayload{
		Currency:              l.Currency.String(),
		RoyaltyPolicy:         l.RoyaltyPolicy.String(),
		Transferable:          l.Transferable,
		Expiration:            l.Expiration,
		CommercialUse:         l.CommercialUse,
		CommercialAttribution: l.CommercialAttribution,
		DerivativesAllowed:    l.DerivativesAllowed,
		DerivativesApproval:   l.DerivativesApproval,
		CommercialRevShare:    l.CommercialRevShare,
		CommercialRevCeiling:  l.CommercialRevCeiling,
		DerivativeRevCeiling:  l.DerivativeRevCeiling,
		URI:                   l.URI,
	}
}

func validationUpdated(fp fingerprint.Fingerprint, validation string) (interface{}, []event.Topic) {
	payload := validationUpdatedPayload{
		Fingerprint: fp.String(),
		Validation:  validation,
	}
	return payload, []event.Topic{{Name: TopicFingerprint, Value: fp.String()}}
}

func withdrawn(to address.Address, amount uint64) (interface{}, []event.Topic) {
	payload := withdrawnPayload{
		To:     to.String(),
		Amount: amount,
	}
	return payload, []event.Topic{{Name: TopicTo, Value: to.String()}}
}
