/*
Copyright Signbound Contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package keycodec

import (
	"crypto/ed25519"
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestJWKRoundTripPublic(t *testing.T) {
	pub, _, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	j, err := JWKFromMaterial(pub, nil, Public)
	require.NoError(t, err)
	require.Equal(t, "OKP", j.Kty)
	require.Equal(t, "Ed25519", j.Crv)
	require.NotEmpty(t, j.X)
	require.Empty(t, j.D)
	require.Equal(t, []string{"verify"}, j.KeyOps)

	decodedPub, decodedSeed, err := MaterialFromJWK(j, Public)
	require.NoError(t, err)
	require.Equal(t, []byte(pub), decodedPub)
	require.Nil(t, decodedSeed)
}

func TestJWKRoundTripPrivate(t *testing.T) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	j, err := JWKFromMaterial(pub, priv.Seed(), Private)
	require.NoError(t, err)
	require.NotEmpty(t, j.D)

	decodedPub, decodedSeed, err := MaterialFromJWK(j, Private)
	require.NoError(t, err)
	require.Equal(t, []byte(pub), decodedPub)
	require.Equal(t, priv.Seed(), decodedSeed)

	// the reconstructed key must sign and verify identically
	rebuilt := ed25519.NewKeyFromSeed(decodedSeed)
	msg := []byte("jwk round trip")
	require.True(t, ed25519.Verify(pub, msg, ed25519.Sign(rebuilt, msg)))
}

func TestMaterialFromJWKStripsPrivatePartForPublicKind(t *testing.T) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	j, err := JWKFromMaterial(pub, priv.Seed(), Private)
	require.NoError(t, err)

	decodedPub, decodedSeed, err := MaterialFromJWK(j, Public)
	require.NoError(t, err)
	require.Equal(t, []byte(pub), decodedPub)
	require.Nil(t, decodedSeed, "private material must never leak through a public import")
}

func TestMaterialFromJWKFailures(t *testing.T) {
	pub, _, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	pubJWK, err := JWKFromMaterial(pub, nil, Public)
	require.NoError(t, err)

	tests := []struct {
		name string
		jwk  *JWK
		kind KeyKind
	}{
		{name: "nil jwk", jwk: nil, kind: Public},
		{name: "wrong kty", jwk: &JWK{Kty: "EC", Crv: "Ed25519", X: pubJWK.X}, kind: Public},
		{name: "wrong crv", jwk: &JWK{Kty: "OKP", Crv: "X25519", X: pubJWK.X}, kind: Public},
		{name: "private kind without d", jwk: pubJWK, kind: Private},
		{name: "garbage x", jwk: &JWK{Kty: "OKP", Crv: "Ed25519", X: "!!"}, kind: Public},
	}

	for _, tc := range tests {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			_, _, err := MaterialFromJWK(tc.jwk, tc.kind)
			require.Error(t, err)

			var fe *FormatError
			require.ErrorAs(t, err, &fe)
		})
	}
}

func TestJWKFromMaterialRejectsBadLengths(t *testing.T) {
	_, _, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	_, err = JWKFromMaterial([]byte{0x01}, nil, Public)
	require.Error(t, err)

	pub, _, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	_, err = JWKFromMaterial(pub, []byte{0x01}, Private)
	require.Error(t, err)
}
