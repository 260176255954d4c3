/*
Copyright Signbound Contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package keypair

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/signbound/dataintegrity-go/pkg/doc/keycodec"
)

// ExportFormat selects the key material encoding of an exported document.
type ExportFormat int

const (
	// FormatMultibase exports publicKeyMultibase/secretKeyMultibase fields.
	FormatMultibase ExportFormat = iota
	// FormatJWK exports publicKeyJwk/secretKeyJwk fields.
	FormatJWK
)

// Export produces a verification-method-shaped document for the keypair.
// Exporting the private half always includes the public half alongside.
// It fails with ErrNotInitialized when the requested key half, the id or
// the controller is absent.
func (kp *KeyPair) Export(kind keycodec.KeyKind, format ExportFormat) (map[string]interface{}, error) {
	if kp.ID == "" || kp.Controller == "" {
		return nil, fmt.Errorf("export keypair: id and controller must be set: %w", ErrNotInitialized)
	}

	if len(kp.PublicKey) == 0 {
		return nil, fmt.Errorf("export keypair: no public key: %w", ErrNotInitialized)
	}

	if kind == keycodec.Private && len(kp.PrivateKey) == 0 {
		return nil, fmt.Errorf("export keypair: no private key: %w", ErrNotInitialized)
	}

	doc := map[string]interface{}{
		"id":         kp.ID,
		"controller": kp.Controller,
	}

	if kp.Revoked != nil {
		doc["revoked"] = kp.Revoked.UTC().Format(time.RFC3339)
	}

	switch format {
	case FormatJWK:
		doc["@context"] = JWKContext
		doc["type"] = JSONWebKey2020Type

		if err := kp.exportJWK(doc, kind); err != nil {
			return nil, err
		}
	default:
		doc["@context"] = MultikeyContext
		doc["type"] = MultikeyType

		kp.exportMultibase(doc, kind)
	}

	return doc, nil
}

func (kp *KeyPair) exportMultibase(doc map[string]interface{}, kind keycodec.KeyKind) {
	doc["publicKeyMultibase"] = keycodec.MultibaseEncode(kp.PublicKey, keycodec.MulticodecPublicPrefix)

	if kind == keycodec.Private {
		doc["secretKeyMultibase"] = keycodec.MultibaseEncode(kp.PrivateKey.Seed(),
			keycodec.MulticodecPrivatePrefix)
	}
}

func (kp *KeyPair) exportJWK(doc map[string]interface{}, kind keycodec.KeyKind) error {
	pubJWK, err := keycodec.JWKFromMaterial(kp.PublicKey, nil, keycodec.Public)
	if err != nil {
		return fmt.Errorf("export public JWK: %w", err)
	}

	doc["publicKeyJwk"] = jwkToMap(pubJWK)

	if kind == keycodec.Private {
		privJWK, err := keycodec.JWKFromMaterial(kp.PublicKey, kp.PrivateKey.Seed(), keycodec.Private)
		if err != nil {
			return fmt.Errorf("export private JWK: %w", err)
		}

		doc["secretKeyJwk"] = jwkToMap(privJWK)
	}

	return nil
}

func jwkToMap(j *keycodec.JWK) map[string]interface{} {
	// JWK has a fixed flat shape, marshal round trip cannot fail
	b, _ := json.Marshal(j) // nolint:errcheck
	m := map[string]interface{}{}
	_ = json.Unmarshal(b, &m) // nolint:errcheck

	return m
}
