// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
	"fmt"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised       = ExistsError("already initialised")
	ErrCryptoFailed             = ProcessError("encryption failed")
	ErrFieldEmpty               = LengthError("field must not be empty")
	ErrFieldTooLong             = LengthError("field too long for its length prefix")
	ErrInvalidAddressEncoding   = InvalidError("invalid address encoding")
	ErrInvalidAssetReference    = InvalidError("invalid asset reference")
	ErrInvalidAssetType         = InvalidError("invalid asset type")
	ErrInvalidConfiguration     = InvalidError("configuration must return a table")
	ErrInvalidLoggerChannel     = InvalidError("invalid logger channel")
	ErrInvalidNonce             = InvalidError("invalid nonce")
	ErrInvalidPassword          = InvalidError("wrong password")
	ErrInvalidPrecision         = InvalidError("invalid precision for fractional asset type")
	ErrInvalidPrivateKey        = InvalidError("invalid private key")
	ErrInvalidPublicKey         = InvalidError("invalid public key")
	ErrInvalidSalt              = InvalidError("invalid salt")
	ErrInvalidSignature         = InvalidError("invalid signature")
	ErrInvalidText              = InvalidError("text is not valid utf-8")
	ErrMalformedMetadata        = InvalidError("malformed metadata")
	ErrNameAlreadyExists        = ExistsError("identity name already exists")
	ErrNegativeDuration         = InvalidError("duration must not be negative")
	ErrNilValue                 = InvalidError("value must not be nil")
	ErrNotFoundIdentity         = NotFoundError("identity not found")
	ErrNotTransactionPack       = RecordError("not a transaction record")
	ErrPrecisionNotAllowed      = InvalidError("cannot specify precision of non-fractional asset")
	ErrSignatureGenerationFails = ProcessError("signature generation failed")
	ErrUnknownTransactionKind   = InvalidError("unknown transaction kind")
	ErrUnknownValueType         = InvalidError("unknown value type")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RecordError) Error() string   { return string(e) }

// determine the class of an error, looking through any wrapping
func IsErrExists(e error) bool   { var t ExistsError; return errors.As(e, &t) }
func IsErrInvalid(e error) bool  { var t InvalidError; return errors.As(e, &t) }
func IsErrLength(e error) bool   { var t LengthError; return errors.As(e, &t) }
func IsErrNotFound(e error) bool { var t NotFoundError; return errors.As(e, &t) }
func IsErrProcess(e error) bool  { var t ProcessError; return errors.As(e, &t) }
func IsErrRecord(e error) bool   { var t RecordError; return errors.As(e, &t) }

// FieldError - a validation failure on one field of one record kind
type FieldError struct {
	Kind  string // e.g. "CreateAccount", "AssetType"
	Field string // e.g. "timezone", "metadata[b]"
	Err   error
}

// Field - wrap err with the kind and field that caused it
func Field(kind string, field string, err error) error {
	if nil == err {
		return nil
	}
	return &FieldError{
		Kind:  kind,
		Field: field,
		Err:   err,
	}
}

// Error - the error interface method
func (e *FieldError) Error() string {
	return fmt.Sprintf("%s.%s: %s", e.Kind, e.Field, e.Err)
}

// Unwrap - expose the underlying sentinel for errors.Is
func (e *FieldError) Unwrap() error {
	return e.Err
}
