/*
Copyright Signbound Contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package keycodec

import (
	"github.com/multiformats/go-multibase"
)

// Multicodec prefixes from the multicodec table identifying the semantic
// type of the bytes that follow.
var (
	// MulticodecPublicPrefix tags ed25519-pub (0xed varint).
	MulticodecPublicPrefix = []byte{0xed, 0x01}

	// MulticodecPrivatePrefix tags ed25519-priv (0x1300 varint).
	MulticodecPrivatePrefix = []byte{0x80, 0x26}
)

// multibaseMarker is the one-character base58-btc multibase marker.
const multibaseMarker = 'z'

// MulticodecPrefix returns the multicodec tag for the given key kind.
func MulticodecPrefix(kind KeyKind) []byte {
	if kind == Private {
		return MulticodecPrivatePrefix
	}

	return MulticodecPublicPrefix
}

// MultibaseEncode concatenates the multicodec prefix with raw key material
// and encodes the result as a base58-btc multibase string.
func MultibaseEncode(material, codecPrefix []byte) string {
	tagged := make([]byte, 0, len(codecPrefix)+len(material))
	tagged = append(tagged, codecPrefix...)
	tagged = append(tagged, material...)

	encoded, err := multibase.Encode(multibase.Base58BTC, tagged)
	if err != nil {
		// only fails on an unknown base, which is fixed here
		panic(err)
	}

	return encoded
}

// MultibaseDecode decodes a base58-btc multibase string and strips the
// expected multicodec prefix. A missing or wrong multibase marker, or a
// decoded prefix that differs from expectedPrefix at any byte position,
// yields a FormatError. Pass a nil expectedPrefix to skip the prefix gate
// and get the multicodec-tagged bytes back.
func MultibaseDecode(encoded string, expectedPrefix []byte) ([]byte, error) {
	if encoded == "" || encoded[0] != multibaseMarker {
		return nil, newFormatError("not a base58-btc multibase string")
	}

	_, decoded, err := multibase.Decode(encoded)
	if err != nil {
		return nil, newFormatError("decode multibase string: %s", err)
	}

	if expectedPrefix == nil {
		return decoded, nil
	}

	if len(decoded) < len(expectedPrefix) ||
		!bytesEqualConstant(decoded[:len(expectedPrefix)], expectedPrefix) {
		return nil, newFormatError("invalid multicodec prefix")
	}

	material := make([]byte, len(decoded)-len(expectedPrefix))
	copy(material, decoded[len(expectedPrefix):])

	return material, nil
}
