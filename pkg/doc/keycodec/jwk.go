/*
Copyright Signbound Contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package keycodec

import (
	"crypto/ed25519"
	"encoding/json"

	"github.com/go-jose/go-jose/v3"
)

const (
	okpKty     = "OKP"
	ed25519Crv = "Ed25519"
)

// JWK is a JSON Web Key holding Ed25519 key material. X is always present,
// D only for private keys. KeyOps is restricted to "verify" for public keys.
type JWK struct {
	Kty    string   `json:"kty"`
	Crv    string   `json:"crv"`
	X      string   `json:"x"`
	D      string   `json:"d,omitempty"`
	KeyOps []string `json:"key_ops,omitempty"`
}

// JWKFromMaterial builds a JWK from raw key material. For the Private kind
// both the 32-byte seed and the public key are embedded ("d" and "x"); for
// the Public kind "d" is absent and key_ops is restricted to verify-only.
func JWKFromMaterial(pub, seed []byte, kind KeyKind) (*JWK, error) {
	if len(pub) != ed25519.PublicKeySize {
		return nil, newFormatError("invalid public key length: %d", len(pub))
	}

	var key interface{} = ed25519.PublicKey(pub)

	if kind == Private {
		if len(seed) != ed25519.SeedSize {
			return nil, newFormatError("invalid seed length: %d", len(seed))
		}

		key = ed25519.NewKeyFromSeed(seed)
	}

	// marshal through go-jose to fill the base64url fields.
	joseJWK := jose.JSONWebKey{Key: key}

	b, err := joseJWK.MarshalJSON()
	if err != nil {
		return nil, newFormatError("marshal JWK: %s", err)
	}

	j := &JWK{}
	if err := json.Unmarshal(b, j); err != nil {
		return nil, newFormatError("unmarshal JWK: %s", err)
	}

	if kind == Public {
		j.D = ""
		j.KeyOps = []string{"verify"}
	} else {
		j.KeyOps = []string{"sign", "verify"}
	}

	return j, nil
}

// MaterialFromJWK extracts raw key material from a JWK. For the Public kind
// a present "d" member is stripped and key_ops forced to verify-only before
// importing, so a private key is never silently handled as public. For the
// Private kind a missing "d" yields a FormatError.
func MaterialFromJWK(j *JWK, kind KeyKind) (pub, seed []byte, err error) {
	if j == nil {
		return nil, nil, newFormatError("missing JWK")
	}

	if j.Kty != okpKty || j.Crv != ed25519Crv {
		return nil, nil, newFormatError("unsupported JWK: kty %q crv %q", j.Kty, j.Crv)
	}

	jc := *j

	if kind == Public {
		jc.D = ""
		jc.KeyOps = []string{"verify"}
	} else if jc.D == "" {
		return nil, nil, newFormatError("JWK has no private key material")
	}

	b, err := json.Marshal(&jc)
	if err != nil {
		return nil, nil, newFormatError("marshal JWK: %s", err)
	}

	var joseJWK jose.JSONWebKey
	if err := joseJWK.UnmarshalJSON(b); err != nil {
		return nil, nil, newFormatError("parse JWK: %s", err)
	}

	switch key := joseJWK.Key.(type) {
	case ed25519.PublicKey:
		return key, nil, nil
	case ed25519.PrivateKey:
		pubKey, ok := key.Public().(ed25519.PublicKey)
		if !ok {
			return nil, nil, newFormatError("unexpected public key type")
		}

		return pubKey, key.Seed(), nil
	default:
		return nil, nil, newFormatError("unexpected JWK key type %T", key)
	}
}
