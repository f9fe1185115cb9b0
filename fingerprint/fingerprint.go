// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fingerprint

import (
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/tweetregistry/fault"
)

// Length - number of bytes in the fingerprint
const Length = 32

// Fingerprint - the primary key of both ledgers
//
// Keccak-256 of the content locator, so the same URL always gives
// the same fingerprint
type Fingerprint [Length]byte

// FromURL - compute the fingerprint of a URL
func FromURL(url string) Fingerprint {
	var fp Fingerprint
	h := sha3.NewLegacyKeccak256()
	h.Write([]byte(url))
	copy(fp[:], h.Sum(nil))
	return fp
}

// FromBytes - convert and validate a byte slice to a fingerprint
func FromBytes(fp *Fingerprint, buffer []byte) error {
	if Length != len(buffer) {
		return fault.InvalidFingerprint
	}
	copy(fp[:], buffer)
	return nil
}

// FromString - parse hex text with optional 0x prefix
func FromString(s string) (Fingerprint, error) {
	var fp Fingerprint
	err := fp.UnmarshalText([]byte(s))
	return fp, err
}

// IsZero - true for the unset fingerprint
func (fp Fingerprint) IsZero() bool {
	return Fingerprint{} == fp
}

// String - hex for the fmt package
func (fp Fingerprint) String() string {
	return hex.EncodeToString(fp[:])
}

// GoString - for %#v
func (fp Fingerprint) GoString() string {
	return "<Keccak-256:" + hex.EncodeToString(fp[:]) + ">"
}

// MarshalText - convert fingerprint to hex text
func (fp Fingerprint) MarshalText() ([]byte, error) {
	size := hex.EncodedLen(len(fp))
	buffer := make([]byte, size)
	hex.Encode(buffer, fp[:])
	return buffer, nil
}

// UnmarshalText - convert hex text into a fingerprint
func (fp *Fingerprint) UnmarshalText(s []byte) error {
	text := strings.TrimPrefix(strings.TrimPrefix(string(s), "0x"), "0X")
	if Length != hex.DecodedLen(len(text)) {
		return fault.InvalidFingerprint
	}
	buffer, err := hex.DecodeString(text)
	if nil != err {
		return fault.InvalidFingerprint
	}
	copy(fp[:], buffer)
	return nil
}
