// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type AuthorisationError GenericError
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type TransferError GenericError

// common errors - keep in alphabetic order
var (
	AlreadyInitialised      = ExistsError("already initialised")
	CertificateFileExists   = ExistsError("certificate file already exists")
	ConfigurationFileAbsent = NotFoundError("configuration file not found")
	DatabaseIsNotSet        = ProcessError("database is not set")
	DepositNotFound         = NotFoundError("deposit not found")
	DuplicateFingerprint    = ExistsError("deposit already exists for fingerprint")
	EmptyURL                = InvalidError("url is empty")
	EventNotFound           = NotFoundError("event not found")
	InsufficientValue       = InvalidError("attached value must be greater than zero")
	InvalidAddress          = InvalidError("invalid address")
	InvalidCount            = InvalidError("invalid count")
	InvalidCursor           = InvalidError("invalid cursor")
	InvalidEventName        = InvalidError("invalid event name")
	InvalidFingerprint      = InvalidError("invalid fingerprint")
	InvalidIPAddress        = InvalidError("invalid IP address")
	InvalidNewOwner         = InvalidError("new owner is the zero address")
	InvalidOwner            = InvalidError("owner is the zero address")
	InvalidPortNumber       = InvalidError("invalid port number")
	InvalidPrivateKey       = InvalidError("invalid private key")
	InvalidPrivateKeyFile   = InvalidError("invalid private key file")
	InvalidPublicKey        = InvalidError("invalid public key")
	InvalidPublicKeyFile    = InvalidError("invalid public key file")
	InvalidRecipient        = InvalidError("recipient is the zero address")
	InvalidTopic            = InvalidError("invalid topic")
	KeyFileAlreadyExists    = ExistsError("key file already exists")
	MissingParameters       = InvalidError("missing parameters")
	NoFunds                 = InvalidError("no funds")
	NotConnected            = ProcessError("not connected")
	NotInitialised          = NotFoundError("not initialised")
	NotOwner                = AuthorisationError("caller is not the owner")
	RateLimiting            = InvalidError("rate limiting")
	TransactionInUse        = ProcessError("transaction already in use")
	TransactionNotStarted   = ProcessError("transaction not started")
	TransferFailed          = TransferError("transfer failed")
	TransferRejected        = TransferError("transfer rejected by recipient")
	TweetExists             = ExistsError("tweet already exists")
	TweetNotFound           = NotFoundError("tweet not found")
	ValueOverflow           = InvalidError("value overflow")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e AuthorisationError) Error() string { return string(e) }
func (e ExistsError) Error() string        { return string(e) }
func (e InvalidError) Error() string       { return string(e) }
func (e NotFoundError) Error() string      { return string(e) }
func (e ProcessError) Error() string       { return string(e) }
func (e TransferError) Error() string      { return string(e) }

// determine the class of an error
func IsErrAuthorisation(e error) bool { _, ok := e.(AuthorisationError); return ok }
func IsErrExists(e error) bool        { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool       { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool      { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool       { _, ok := e.(ProcessError); return ok }
func IsErrTransfer(e error) bool      { _, ok := e.(TransferError); return ok }
