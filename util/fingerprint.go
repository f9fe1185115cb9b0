// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"golang.org/x/crypto/sha3"
)

// CertificateFingerprint - type for a certificate fingerprint
type CertificateFingerprint [32]byte

// Fingerprint - fingerprint a DER certificate
//
// matches:
//   openssl x509 -noout -in ~/.config/registryd/rpc.crt -fingerprint -sha3-256
func Fingerprint(certificate []byte) CertificateFingerprint {
	return sha3.Sum256(certificate)
}
