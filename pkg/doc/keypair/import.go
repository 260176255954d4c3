/*
Copyright Signbound Contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package keypair

import (
	"crypto/ed25519"
	"encoding/json"
	"fmt"
	"time"

	"github.com/signbound/dataintegrity-go/pkg/doc/keycodec"
)

// ImportOption customizes keypair import.
type ImportOption func(o *importOpts)

type importOpts struct {
	checkContext bool
	checkRevoked bool
}

// WithContextCheck validates the document's declared @context against the
// suite's accepted set.
func WithContextCheck() ImportOption {
	return func(o *importOpts) {
		o.checkContext = true
	}
}

// WithRevokedCheck fails the import when the document carries a revocation
// date in the past.
func WithRevokedCheck() ImportOption {
	return func(o *importOpts) {
		o.checkRevoked = true
	}
}

// Import reconstructs a KeyPair entity from a verification-method-shaped
// document. The document's type selects the multibase or JWK decode path;
// an unsupported type or context yields a FormatError.
func Import(document map[string]interface{}, opts ...ImportOption) (*KeyPair, error) {
	options := &importOpts{}

	for _, opt := range opts {
		opt(options)
	}

	docType := stringEntry(document["type"])

	if docType != MultikeyType && docType != JSONWebKey2020Type {
		return nil, keycodec.NewFormatError("unsupported verification method type %q", docType)
	}

	if options.checkContext {
		if err := checkContext(document["@context"], docType); err != nil {
			return nil, err
		}
	}

	revoked, err := revokedEntry(document)
	if err != nil {
		return nil, err
	}

	if options.checkRevoked && revoked != nil && revoked.Before(time.Now()) {
		return nil, fmt.Errorf("%w (since %s)", ErrKeypairRevoked, revoked.Format(time.RFC3339))
	}

	kp := &KeyPair{
		ID:         stringEntry(document["id"]),
		Controller: stringEntry(document["controller"]),
		Revoked:    revoked,
	}

	if docType == MultikeyType {
		err = importMultibase(kp, document)
	} else {
		err = importJWK(kp, document)
	}

	if err != nil {
		return nil, err
	}

	return kp, nil
}

func importMultibase(kp *KeyPair, document map[string]interface{}) error {
	pubEncoded := stringEntry(document["publicKeyMultibase"])
	if pubEncoded == "" {
		return keycodec.NewFormatError("document has no publicKeyMultibase")
	}

	pub, err := keycodec.MultibaseDecode(pubEncoded, keycodec.MulticodecPublicPrefix)
	if err != nil {
		return fmt.Errorf("import public key: %w", err)
	}

	if len(pub) != ed25519.PublicKeySize {
		return keycodec.NewFormatError("invalid public key length: %d", len(pub))
	}

	kp.PublicKey = ed25519.PublicKey(pub)

	if secEncoded := stringEntry(document["secretKeyMultibase"]); secEncoded != "" {
		seed, err := keycodec.MultibaseDecode(secEncoded, keycodec.MulticodecPrivatePrefix)
		if err != nil {
			return fmt.Errorf("import secret key: %w", err)
		}

		if len(seed) != ed25519.SeedSize {
			return keycodec.NewFormatError("invalid seed length: %d", len(seed))
		}

		kp.PrivateKey = ed25519.NewKeyFromSeed(seed)
	}

	return nil
}

func importJWK(kp *KeyPair, document map[string]interface{}) error {
	pubJWK, err := jwkEntry(document, "publicKeyJwk")
	if err != nil {
		return err
	}

	if pubJWK == nil {
		return keycodec.NewFormatError("document has no publicKeyJwk")
	}

	pub, _, err := keycodec.MaterialFromJWK(pubJWK, keycodec.Public)
	if err != nil {
		return fmt.Errorf("import public JWK: %w", err)
	}

	kp.PublicKey = pub

	secJWK, err := jwkEntry(document, "secretKeyJwk")
	if err != nil {
		return err
	}

	if secJWK != nil {
		_, seed, err := keycodec.MaterialFromJWK(secJWK, keycodec.Private)
		if err != nil {
			return fmt.Errorf("import secret JWK: %w", err)
		}

		kp.PrivateKey = ed25519.NewKeyFromSeed(seed)
	}

	return nil
}

func checkContext(entry interface{}, docType string) error {
	accepted := MultikeyContext
	if docType == JSONWebKey2020Type {
		accepted = JWKContext
	}

	switch ctx := entry.(type) {
	case string:
		if ctx == accepted {
			return nil
		}
	case []interface{}:
		for _, c := range ctx {
			if stringEntry(c) == accepted {
				return nil
			}
		}
	}

	return keycodec.NewFormatError("unsupported @context for %s document", docType)
}

func revokedEntry(document map[string]interface{}) (*time.Time, error) {
	revoked := stringEntry(document["revoked"])
	if revoked == "" {
		return nil, nil
	}

	t, err := time.Parse(time.RFC3339, revoked)
	if err != nil {
		return nil, keycodec.NewFormatError("invalid revoked date %q", revoked)
	}

	return &t, nil
}

func jwkEntry(document map[string]interface{}, key string) (*keycodec.JWK, error) {
	entry, ok := document[key]
	if !ok {
		return nil, nil
	}

	b, err := json.Marshal(entry)
	if err != nil {
		return nil, keycodec.NewFormatError("marshal %s: %s", key, err)
	}

	j := &keycodec.JWK{}
	if err := json.Unmarshal(b, j); err != nil {
		return nil, keycodec.NewFormatError("parse %s: %s", key, err)
	}

	return j, nil
}

func stringEntry(entry interface{}) string {
	if strVal, ok := entry.(string); ok {
		return strVal
	}

	return ""
}
