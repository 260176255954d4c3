/*
Copyright Signbound Contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package ed25519sig is a thin wrapper around the platform Ed25519 primitive
// operating on fixed-length byte buffers. Signing is deterministic, so equal
// messages under the same key always produce equal signatures.
package ed25519sig

import (
	"crypto/ed25519"
	"errors"
	"fmt"
)

const alg = "EdDSA"

// ErrKeyNotFound is returned by Sign when no private key is supplied.
var ErrKeyNotFound = errors.New("ed25519: private key not found")

// ErrInvalidSignature is returned by Verify when the signature does not
// match the message under the given public key.
var ErrInvalidSignature = errors.New("ed25519: invalid signature")

// Signer makes Ed25519 signatures with a fixed private key.
type Signer struct {
	privateKey ed25519.PrivateKey
}

// NewSigner returns a Signer around the given private key.
func NewSigner(privKey ed25519.PrivateKey) *Signer {
	return &Signer{privateKey: privKey}
}

// Sign signs a message and returns the 64-byte signature.
func (s *Signer) Sign(msg []byte) ([]byte, error) {
	if len(s.privateKey) == 0 {
		return nil, ErrKeyNotFound
	}

	if l := len(s.privateKey); l != ed25519.PrivateKeySize {
		return nil, fmt.Errorf("ed25519: bad private key length %d", l)
	}

	return ed25519.Sign(s.privateKey, msg), nil
}

// Alg returns the signature algorithm name.
func (s *Signer) Alg() string {
	return alg
}

// Verify checks a 64-byte signature over msg against the public key. A nil
// or wrong-size key and a malformed signature are reported as errors, never
// as a panic: forged or corrupted input is an expected condition.
func Verify(pubKey ed25519.PublicKey, msg, signature []byte) error {
	// ed25519 panics if key size is wrong
	if len(pubKey) != ed25519.PublicKeySize {
		return errors.New("ed25519: invalid key")
	}

	if len(signature) != ed25519.SignatureSize {
		return fmt.Errorf("ed25519: bad signature length %d", len(signature))
	}

	if !ed25519.Verify(pubKey, msg, signature) {
		return ErrInvalidSignature
	}

	return nil
}
