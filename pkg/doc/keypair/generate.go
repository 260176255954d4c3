/*
Copyright Signbound Contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package keypair

import (
	"crypto/ed25519"
	"crypto/rand"
	"fmt"

	"github.com/signbound/dataintegrity-go/pkg/doc/keycodec"
)

// GenerateKeyPair produces a fresh Ed25519 keypair from the platform's
// random source.
func GenerateKeyPair() (ed25519.PublicKey, ed25519.PrivateKey, error) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, nil, fmt.Errorf("generate ed25519 key: %w", err)
	}

	return pub, priv, nil
}

// GenerateKeyPairFromSeed deterministically derives a keypair from a 32-byte
// seed by deriving the public key from the private key. Any other seed
// length is rejected.
func GenerateKeyPairFromSeed(seed []byte) (ed25519.PublicKey, ed25519.PrivateKey, error) {
	if len(seed) != ed25519.SeedSize {
		return nil, nil, keycodec.NewFormatError("invalid seed length: %d", len(seed))
	}

	priv := ed25519.NewKeyFromSeed(seed)

	pub, ok := priv.Public().(ed25519.PublicKey)
	if !ok {
		return nil, nil, fmt.Errorf("unexpected public key type %T", priv.Public())
	}

	return pub, priv, nil
}
