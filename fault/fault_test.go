// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"testing"

	"github.com/bitmark-inc/tweetregistry/fault"
)

var (
	ErrAuthorisationOne = fault.AuthorisationError("authorisation one")
	ErrAuthorisationTwo = fault.AuthorisationError("authorisation two")
	ErrExistsOne        = fault.ExistsError("exists one ")
	ErrExistsTwo        = fault.ExistsError("exists two")
	ErrInvalidOne       = fault.InvalidError("invalid one")
	ErrInvalidTwo       = fault.InvalidError("invalid two")
	ErrNotFoundOne      = fault.NotFoundError("not found one")
	ErrNotFoundTwo      = fault.NotFoundError("not found two")
	ErrProcessOne       = fault.ProcessError("process one")
	ErrProcessTwo       = fault.ProcessError("process two")
	ErrTransferOne      = fault.TransferError("transfer one")
	ErrTransferTwo      = fault.TransferError("transfer two")
)

// test that various errors can be subclassed
func TestClasses(t *testing.T) {
	errorList := []struct {
		err           error
		authorisation bool
		exists        bool
		invalid       bool
		notFound      bool
		process       bool
		transfer      bool
	}{
		{ErrAuthorisationOne, true, false, false, false, false, false},
		{ErrAuthorisationTwo, true, false, false, false, false, false},
		{ErrExistsOne, false, true, false, false, false, false},
		{ErrExistsTwo, false, true, false, false, false, false},
		{ErrInvalidOne, false, false, true, false, false, false},
		{ErrInvalidTwo, false, false, true, false, false, false},
		{ErrNotFoundOne, false, false, false, true, false, false},
		{ErrNotFoundTwo, false, false, false, true, false, false},
		{ErrProcessOne, false, false, false, false, true, false},
		{ErrProcessTwo, false, false, false, false, true, false},
		{ErrTransferOne, false, false, false, false, false, true},
		{ErrTransferTwo, false, false, false, false, false, true},
	}

	for i, e := range errorList {
		err := e.err
		if fault.IsErrAuthorisation(err) != e.authorisation {
			t.Errorf("%d: expected 'authorisation' == %v for err = %v", i, e.authorisation, err)
		}
		if fault.IsErrExists(err) != e.exists {
			t.Errorf("%d: expected 'exists' == %v for err = %v", i, e.exists, err)
		}
		if fault.IsErrInvalid(err) != e.invalid {
			t.Errorf("%d: expected 'invalid' == %v for err = %v", i, e.invalid, err)
		}
		if fault.IsErrNotFound(err) != e.notFound {
			t.Errorf("%d: expected 'not found' == %v for err = %v", i, e.notFound, err)
		}
		if fault.IsErrProcess(err) != e.process {
			t.Errorf("%d: expected 'process' == %v for err = %v", i, e.process, err)
		}
		if fault.IsErrTransfer(err) != e.transfer {
			t.Errorf("%d: expected 'transfer' == %v for err = %v", i, e.transfer, err)
		}
	}
}

// the ledger failure conditions must each belong to exactly the expected class
func TestLedgerConditions(t *testing.T) {
	if !fault.IsErrAuthorisation(fault.NotOwner) {
		t.Errorf("NotOwner is not an authorisation error")
	}
	if !fault.IsErrExists(fault.DuplicateFingerprint) || !fault.IsErrExists(fault.TweetExists) {
		t.Errorf("duplicate key conditions are not exists errors")
	}
	for _, err := range []error{fault.InsufficientValue, fault.InvalidRecipient, fault.InvalidNewOwner, fault.EmptyURL, fault.NoFunds} {
		if !fault.IsErrInvalid(err) {
			t.Errorf("%v is not an invalid error", err)
		}
	}
	if !fault.IsErrNotFound(fault.DepositNotFound) || !fault.IsErrNotFound(fault.TweetNotFound) {
		t.Errorf("lookup conditions are not not-found errors")
	}
	if !fault.IsErrTransfer(fault.TransferFailed) {
		t.Errorf("TransferFailed is not a transfer error")
	}
}
