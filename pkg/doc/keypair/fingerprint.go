/*
Copyright Signbound Contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package keypair

import (
	"fmt"

	"github.com/btcsuite/btcutil/base58"

	"github.com/signbound/dataintegrity-go/pkg/doc/keycodec"
)

// Fingerprint returns the multibase-encoded multicodec fingerprint of the
// public key: "z" + base58btc(0xed 0x01 || raw public key). This form is the
// suite's identifying fingerprint; it is not hashed.
func (kp *KeyPair) Fingerprint() (string, error) {
	if len(kp.PublicKey) == 0 {
		return "", ErrNotInitialized
	}

	prefix := keycodec.MulticodecPrefix(keycodec.Public)

	buf := make([]byte, 0, len(prefix)+len(kp.PublicKey))
	buf = append(buf, prefix...)
	buf = append(buf, kp.PublicKey...)

	return "z" + base58.Encode(buf), nil
}

// VerifyFingerprint reports whether candidate equals the keypair's
// fingerprint.
func (kp *KeyPair) VerifyFingerprint(candidate string) bool {
	fp, err := kp.Fingerprint()
	if err != nil {
		return false
	}

	return fp == candidate
}

// DIDKey returns the did:key DID and key ID derived from the fingerprint,
// as per https://w3c-ccg.github.io/did-method-key/#format.
func (kp *KeyPair) DIDKey() (string, string, error) {
	fp, err := kp.Fingerprint()
	if err != nil {
		return "", "", err
	}

	didKey := fmt.Sprintf("did:key:%s", fp)
	keyID := fmt.Sprintf("%s#%s", didKey, fp)

	return didKey, keyID, nil
}
