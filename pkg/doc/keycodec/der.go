/*
Copyright Signbound Contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package keycodec

import (
	"crypto/ed25519"
)

// DER prefixes for the Ed25519 object identifier (1.3.101.112). The public
// prefix is the SubjectPublicKeyInfo header, the private prefix is the
// PKCS#8 PrivateKeyInfo header wrapping a 32-byte seed OCTET STRING.
var (
	derPublicPrefix = []byte{
		0x30, 0x2a, 0x30, 0x05, 0x06, 0x03, 0x2b, 0x65, 0x70, 0x03, 0x21, 0x00,
	}

	derPrivatePrefix = []byte{
		0x30, 0x2e, 0x02, 0x01, 0x00, 0x30, 0x05, 0x06, 0x03, 0x2b, 0x65, 0x70,
		0x04, 0x22, 0x04, 0x20,
	}
)

// DERFromMaterial wraps raw key material of the given kind into its fixed
// DER encoding (SPKI for public keys, PKCS#8 for private seeds).
func DERFromMaterial(material []byte, kind KeyKind) []byte {
	prefix := derPrefix(kind)

	blob := make([]byte, 0, len(prefix)+len(material))
	blob = append(blob, prefix...)
	blob = append(blob, material...)

	return blob
}

// MaterialFromDER strips the fixed DER prefix for the given kind and returns
// the raw key material. The blob's leading bytes must equal the expected
// prefix exactly, otherwise a FormatError is returned.
func MaterialFromDER(blob []byte, kind KeyKind) ([]byte, error) {
	prefix := derPrefix(kind)

	if len(blob) < len(prefix) {
		return nil, newFormatError("DER %s key too short: %d bytes", kind, len(blob))
	}

	if !bytesEqualConstant(blob[:len(prefix)], prefix) {
		return nil, newFormatError("invalid DER prefix for %s key", kind)
	}

	material := make([]byte, len(blob)-len(prefix))
	copy(material, blob[len(prefix):])

	return material, nil
}

// PublicKeyFromDER decodes an Ed25519 public key from its SPKI DER encoding.
func PublicKeyFromDER(blob []byte) (ed25519.PublicKey, error) {
	material, err := MaterialFromDER(blob, Public)
	if err != nil {
		return nil, err
	}

	if len(material) != ed25519.PublicKeySize {
		return nil, newFormatError("invalid public key length: %d", len(material))
	}

	return ed25519.PublicKey(material), nil
}

// PrivateKeyFromDER decodes an Ed25519 private key from its PKCS#8 DER
// encoding. The DER blob carries the 32-byte seed; the full private key is
// derived from it, which also fixes the public half.
func PrivateKeyFromDER(blob []byte) (ed25519.PrivateKey, error) {
	seed, err := MaterialFromDER(blob, Private)
	if err != nil {
		return nil, err
	}

	if len(seed) != ed25519.SeedSize {
		return nil, newFormatError("invalid seed length: %d", len(seed))
	}

	return ed25519.NewKeyFromSeed(seed), nil
}

func derPrefix(kind KeyKind) []byte {
	if kind == Private {
		return derPrivatePrefix
	}

	return derPublicPrefix
}

// bytesEqualConstant compares two equal-length byte slices over their full
// length, accumulating the difference instead of exiting on the first
// mismatching byte.
func bytesEqualConstant(a, b []byte) bool {
	var diff byte

	for i := range b {
		diff |= a[i] ^ b[i]
	}

	return diff == 0
}
