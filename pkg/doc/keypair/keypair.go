/*
Copyright Signbound Contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package keypair provides the lifecycle-managed Ed25519 keypair entity
// backing verification methods: generation, fingerprinting, and export and
// import against the Multikey and JsonWebKey2020 document shapes.
package keypair

import (
	"crypto/ed25519"
	"errors"
	"time"
)

const (
	// MultikeyType is the verification method type carrying multibase-encoded
	// key material.
	MultikeyType = "Multikey"

	// JSONWebKey2020Type is the verification method type carrying JWK-encoded
	// key material.
	JSONWebKey2020Type = "JsonWebKey2020"

	// MultikeyContext is the JSON-LD context accepted for Multikey documents.
	MultikeyContext = "https://w3id.org/security/multikey/v1"

	// JWKContext is the JSON-LD context accepted for JsonWebKey2020 documents.
	JWKContext = "https://w3id.org/security/jwk/v1"
)

// ErrNotInitialized is returned when an operation needs key material or
// identifiers that the keypair does not hold yet.
var ErrNotInitialized = errors.New("keypair not initialized")

// ErrKeypairRevoked is returned by Import when revocation checking is
// requested and the document's revocation date is in the past.
var ErrKeypairRevoked = errors.New("keypair is revoked")

// KeyPair wraps an optional Ed25519 public/private key pair together with
// its identifier, controller and revocation metadata.
type KeyPair struct {
	ID         string
	Controller string
	PublicKey  ed25519.PublicKey
	PrivateKey ed25519.PrivateKey
	Revoked    *time.Time
}

// Option customizes a KeyPair on construction.
type Option func(kp *KeyPair)

// WithController sets the controller URI.
func WithController(controller string) Option {
	return func(kp *KeyPair) {
		kp.Controller = controller
	}
}

// WithID sets an explicit identifier. If unset, Initialize derives the
// identifier from the controller and the key fingerprint.
func WithID(id string) Option {
	return func(kp *KeyPair) {
		kp.ID = id
	}
}

// New creates an uninitialized KeyPair. Call Initialize to generate key
// material or use Import to reconstruct one from a document.
func New(opts ...Option) *KeyPair {
	kp := &KeyPair{}

	for _, opt := range opts {
		opt(kp)
	}

	return kp
}

// Initialize generates fresh key material for the keypair. Calling it on an
// already keyed entity replaces the key material; the identifier is only
// re-derived when it was not set explicitly before.
func (kp *KeyPair) Initialize() error {
	pub, priv, err := GenerateKeyPair()
	if err != nil {
		return err
	}

	kp.PublicKey = pub
	kp.PrivateKey = priv

	if kp.ID == "" && kp.Controller != "" {
		fp, err := kp.Fingerprint()
		if err != nil {
			return err
		}

		kp.ID = kp.Controller + "#" + fp
	}

	return nil
}
