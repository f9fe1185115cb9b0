// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package deposit

import (
	"github.com/bitmark-inc/tweetregistry/address"
	"github.com/bitmark-inc/tweetregistry/fingerprint"
)

// CollectionConfig - collection settings chosen at deposit time
type CollectionConfig struct {
	Handle          string          `json:"handle"`
	MintPrice       uint64          `json:"mintPrice,string"`
	MaxSupply       uint64          `json:"maxSupply"`
	RoyaltyReceiver address.Address `json:"royaltyReceiver"`
	RoyaltyBps      uint16          `json:"royaltyBps"`
}

// LicenseTermsConfig - licensing terms chosen at deposit time
type LicenseTermsConfig struct {
	Currency              address.Address `json:"currency"`
	RoyaltyPolicy         address.Address `json:"royaltyPolicy"`
	Transferable          bool            `json:"transferable"`
	Expiration            uint64          `json:"expiration"`
	CommercialUse         bool            `json:"commercialUse"`
	CommercialAttribution bool            `json:"commercialAttribution"`
	DerivativesAllowed    bool            `json:"derivativesAllowed"`
	DerivativesApproval   bool            `json:"derivativesApproval"`
	CommercialRevShare    uint32          `json:"commercialRevShare"`
	CommercialRevCeiling  uint64          `json:"commercialRevCeiling,string"`
	DerivativeRevCeiling  uint64          `json:"derivativeRevCeiling,string"`
	URI                   string          `json:"uri"`
}

// LicenseMintParams - license minting limits chosen at deposit time
type LicenseMintParams struct {
	LicenseTermsID  uint64 `json:"licenseTermsId"`
	Amount          uint64 `json:"amount"`
	MaxMintingFee   uint64 `json:"maxMintingFee,string"`
	MaxRevenueShare uint32 `json:"maxRevenueShare"`
}

// CoCreator - an additional creator of the content
type CoCreator struct {
	Name   string          `json:"name"`
	Wallet address.Address `json:"wallet"`
}

// Arguments - the caller supplied part of a deposit
type Arguments struct {
	Fingerprint        fingerprint.Fingerprint `json:"fingerprint"`
	Recipient          address.Address         `json:"recipient"`
	Validation         string                  `json:"validation"`
	Proof              []byte                  `json:"proof"`
	TargetCollection   address.Address         `json:"targetCollection"`
	CollectionConfig   CollectionConfig        `json:"collectionConfig"`
	LicenseTermsConfig LicenseTermsConfig      `json:"licenseTermsConfig"`
	LicenseMintParams  LicenseMintParams       `json:"licenseMintParams"`
	CoCreators         []CoCreator             `json:"coCreators"`
}

// Record - a stored deposit
//
// a zero TargetCollection means the collection is to be deployed
// off ledger
type Record struct {
	Exists             bool                    `cbor:"exists" json:"-"`
	Fingerprint        fingerprint.Fingerprint `json:"fingerprint"`
	Depositor          address.Address         `json:"depositor"`
	Recipient          address.Address         `json:"recipient"`
	Amount             uint64                  `json:"amount,string"`
	Validation         string                  `json:"validation"`
	Proof              []byte                  `json:"proof"`
	TargetCollection   address.Address         `json:"targetCollection"`
	CollectionConfig   CollectionConfig        `json:"collectionConfig"`
	LicenseTermsConfig LicenseTermsConfig      `json:"licenseTermsConfig"`
	LicenseMintParams  LicenseMintParams       `json:"licenseMintParams"`
	CoCreators         []CoCreator             `json:"coCreators"`
	Timestamp          uint64                  `json:"timestamp"`
}

// build a record that shares no memory with the arguments
func newRecord(depositor address.Address, args *Arguments, amount uint64, timestamp uint64) *Record {
	r := &Record{
		Exists:             true,
		Fingerprint:        args.Fingerprint,
		Depositor:          depositor,
		Recipient:          args.Recipient,
		Amount:             amount,
		Validation:         args.Validation,
		TargetCollection:   args.TargetCollection,
		CollectionConfig:   args.CollectionConfig,
		LicenseTermsConfig: args.LicenseTermsConfig,
		LicenseMintParams:  args.LicenseMintParams,
		Timestamp:          timestamp,
	}
	if nil != args.Proof {
		r.Proof = make([]byte, len(args.Proof))
		copy(r.Proof, args.Proof)
	}
	r.CoCreators = make([]CoCreator, 0, len(args.CoCreators))
	for _, c := range args.CoCreators {
		r.CoCreators = append(r.CoCreators, c)
	}
	return r
}
