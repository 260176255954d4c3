/*
Copyright Signbound Contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package dataintegrity implements the W3C Data Integrity EdDSA cryptosuites
// for creating and verifying deterministic proofs over structured documents.
//
// Packages for end developer usage
//
// pkg/doc/suite/eddsa: The proof pipeline for the eddsa-rdfc-2022 and
// eddsa-jcs-2022 cryptosuites, exposing CreateProof, SignDocument and
// VerifyProof.
//
// pkg/doc/keypair: The Ed25519 keypair entity with generation,
// fingerprinting, and export/import against Multikey and JsonWebKey2020
// verification method documents.
//
// pkg/doc/keycodec: Conversions between raw, DER, multibase and JWK key
// material representations.
//
// Basic workflow
//
//	1) Generate or import a keypair and publish its verification method.
//	2) Preload the document loader with the contexts and verification
//	   methods the suite needs to dereference.
//	3) Call SignDocument with proof options naming the verification method.
//	4) Call VerifyProof on the secured document to check it.
package dataintegrity
