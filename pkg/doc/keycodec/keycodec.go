/*
Copyright Signbound Contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package keycodec implements lossless conversions between the four
// representations of Ed25519 key material used by verification methods:
// raw fixed-length scalars, ASN.1/DER blobs (SPKI and PKCS#8), multibase
// strings with a multicodec tag, and JSON Web Keys.
//
// All conversions are pure and fail closed: a decode whose input does not
// match the expected prefix byte-for-byte returns a FormatError.
package keycodec

import (
	"fmt"
)

// KeyKind selects the half of a keypair a codec operation applies to.
type KeyKind int

const (
	// Public selects the public key half.
	Public KeyKind = iota
	// Private selects the private key half.
	Private
)

// String returns the kind name used in error messages.
func (k KeyKind) String() string {
	if k == Private {
		return "private"
	}

	return "public"
}

// FormatError indicates malformed or mismatched key material encoding:
// a bad DER magic, a wrong multicodec tag, a missing multibase marker or an
// unsupported JWK shape.
type FormatError struct {
	msg string
}

func (e *FormatError) Error() string {
	return e.msg
}

// NewFormatError builds a FormatError from a format string. It is shared by
// packages that participate in the same error taxonomy, like keypair import.
func NewFormatError(format string, args ...interface{}) *FormatError {
	return &FormatError{msg: fmt.Sprintf(format, args...)}
}

func newFormatError(format string, args ...interface{}) *FormatError {
	return NewFormatError(format, args...)
}
