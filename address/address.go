// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address

import (
	"encoding/hex"
	"strings"

	"github.com/bitmark-inc/tweetregistry/fault"
)

// Length - number of bytes in an address
const Length = 20

// Address - a ledger identity
type Address [Length]byte

// Zero - the unset address
var Zero = Address{}

// FromString - parse 0x prefixed hex
func FromString(s string) (Address, error) {
	var a Address
	err := a.UnmarshalText([]byte(s))
	return a, err
}

// FromBytes - convert and validate a byte slice to an address
func FromBytes(a *Address, buffer []byte) error {
	if Length != len(buffer) {
		return fault.InvalidAddress
	}
	copy(a[:], buffer)
	return nil
}

// IsZero - true for the unset address
func (a Address) IsZero() bool {
	return Zero == a
}

// String - 0x prefixed hex
func (a Address) String() string {
	return "0x" + hex.EncodeToString(a[:])
}

// MarshalText - convert to 0x prefixed hex text
func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText - convert hex text with optional 0x prefix
func (a *Address) UnmarshalText(s []byte) error {
	text := strings.TrimPrefix(strings.TrimPrefix(string(s), "0x"), "0X")
	if Length != hex.DecodedLen(len(text)) {
		return fault.InvalidAddress
	}
	buffer, err := hex.DecodeString(text)
	if nil != err {
		return fault.InvalidAddress
	}
	copy(a[:], buffer)
	return nil
}
