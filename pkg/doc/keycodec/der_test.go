/*
Copyright Signbound Contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package keycodec

import (
	"crypto/ed25519"
	"crypto/rand"
	"crypto/x509"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDERRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		kind KeyKind
		size int
	}{
		{name: "public key material", kind: Public, size: ed25519.PublicKeySize},
		{name: "private seed material", kind: Private, size: ed25519.SeedSize},
	}

	for _, tc := range tests {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			material := make([]byte, tc.size)
			_, err := rand.Read(material)
			require.NoError(t, err)

			blob := DERFromMaterial(material, tc.kind)

			decoded, err := MaterialFromDER(blob, tc.kind)
			require.NoError(t, err)
			require.Equal(t, material, decoded)
		})
	}
}

func TestDERMatchesPKIX(t *testing.T) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	spki, err := x509.MarshalPKIXPublicKey(pub)
	require.NoError(t, err)
	require.Equal(t, spki, DERFromMaterial(pub, Public))

	pkcs8, err := x509.MarshalPKCS8PrivateKey(priv)
	require.NoError(t, err)
	require.Equal(t, pkcs8, DERFromMaterial(priv.Seed(), Private))
}

func TestMaterialFromDERRejectsMutatedPrefix(t *testing.T) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	tests := []struct {
		name     string
		kind     KeyKind
		material []byte
	}{
		{name: "public", kind: Public, material: pub},
		{name: "private", kind: Private, material: priv.Seed()},
	}

	for _, tc := range tests {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			blob := DERFromMaterial(tc.material, tc.kind)
			prefixLen := len(blob) - len(tc.material)

			// every byte position in the prefix must be checked, not just the first
			for i := 0; i < prefixLen; i++ {
				mutated := make([]byte, len(blob))
				copy(mutated, blob)
				mutated[i] ^= 0x01

				_, err := MaterialFromDER(mutated, tc.kind)
				require.Error(t, err, "prefix byte %d", i)

				var fe *FormatError
				require.ErrorAs(t, err, &fe)
			}
		})
	}
}

func TestMaterialFromDERRejectsShortBlob(t *testing.T) {
	_, err := MaterialFromDER([]byte{0x30, 0x2a}, Public)
	require.Error(t, err)

	var fe *FormatError
	require.ErrorAs(t, err, &fe)
}

func TestPrivateKeyFromDERDerivesPublicKey(t *testing.T) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	decoded, err := PrivateKeyFromDER(DERFromMaterial(priv.Seed(), Private))
	require.NoError(t, err)
	require.Equal(t, priv, decoded)
	require.Equal(t, pub, decoded.Public())
}

func TestPublicKeyFromDERRejectsBadLength(t *testing.T) {
	_, err := PublicKeyFromDER(DERFromMaterial([]byte{0x01, 0x02}, Public))
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid public key length")
}
