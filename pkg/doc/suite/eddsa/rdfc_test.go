/*
Copyright Signbound Contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package eddsa

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/signbound/dataintegrity-go/pkg/doc/proof"
)

// rdfcTestDocument uses an inline @context so canonicalization needs no
// remote context resolution.
func rdfcTestDocument() map[string]interface{} {
	return map[string]interface{}{
		"@context": map[string]interface{}{
			"name":    "http://schema.org/name",
			"creator": "http://schema.org/creator",
		},
		"name":    "Alice in Wonderland",
		"creator": "Lewis Carroll",
	}
}

func TestRDFCSignAndVerify(t *testing.T) {
	kp, loader := testKeyAndLoader(t)
	suite := NewRDFC2022()

	options := &proof.Proof{
		Type:               proof.TypeDataIntegrityProof,
		Cryptosuite:        CryptosuiteRDFC2022,
		Created:            testCreated,
		VerificationMethod: kp.ID,
		ProofPurpose:       "assertionMethod",
	}

	secured, err := suite.SignDocument(rdfcTestDocument(), options, loader)
	require.NoError(t, err)

	result := suite.VerifyProof(secured, loader)
	require.NoError(t, result.Error)
	require.True(t, result.Verified)
}

func TestRDFCProofIsDeterministic(t *testing.T) {
	kp, loader := testKeyAndLoader(t)
	suite := NewRDFC2022()

	options := &proof.Proof{
		Type:               proof.TypeDataIntegrityProof,
		Cryptosuite:        CryptosuiteRDFC2022,
		Created:            testCreated,
		VerificationMethod: kp.ID,
		ProofPurpose:       "assertionMethod",
	}

	first, err := suite.CreateProof(rdfcTestDocument(), options, loader)
	require.NoError(t, err)

	second, err := suite.CreateProof(rdfcTestDocument(), options, loader)
	require.NoError(t, err)

	require.Equal(t, first.ProofValue, second.ProofValue)
}

func TestRDFCTamperedDocument(t *testing.T) {
	kp, loader := testKeyAndLoader(t)
	suite := NewRDFC2022()

	options := &proof.Proof{
		Type:               proof.TypeDataIntegrityProof,
		Cryptosuite:        CryptosuiteRDFC2022,
		Created:            testCreated,
		VerificationMethod: kp.ID,
		ProofPurpose:       "assertionMethod",
	}

	secured, err := suite.SignDocument(rdfcTestDocument(), options, loader)
	require.NoError(t, err)

	secured["name"] = "Through the Looking-Glass"

	result := suite.VerifyProof(secured, loader)
	require.False(t, result.Verified)
	require.Error(t, result.Error)
}

func TestRDFCSemanticallyEqualDocumentsVerify(t *testing.T) {
	kp, loader := testKeyAndLoader(t)
	suite := NewRDFC2022()

	options := &proof.Proof{
		Type:               proof.TypeDataIntegrityProof,
		Cryptosuite:        CryptosuiteRDFC2022,
		Created:            testCreated,
		VerificationMethod: kp.ID,
		ProofPurpose:       "assertionMethod",
	}

	secured, err := suite.SignDocument(rdfcTestDocument(), options, loader)
	require.NoError(t, err)

	// key order in a JSON object carries no RDF meaning, so a reordered
	// document still verifies
	reordered := map[string]interface{}{
		"creator": "Lewis Carroll",
		"name":    "Alice in Wonderland",
		"@context": map[string]interface{}{
			"creator": "http://schema.org/creator",
			"name":    "http://schema.org/name",
		},
		"proof": secured["proof"],
	}

	result := suite.VerifyProof(reordered, loader)
	require.NoError(t, result.Error)
	require.True(t, result.Verified)
}
