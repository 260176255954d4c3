/*
Copyright Signbound Contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package eddsa

import (
	"fmt"

	"github.com/piprate/json-gold/ld"

	"github.com/hyperledger/aries-framework-go/component/log"

	"github.com/signbound/dataintegrity-go/internal/jsonutil"
	"github.com/signbound/dataintegrity-go/pkg/doc/proof"
	"github.com/signbound/dataintegrity-go/pkg/doc/signature/ed25519sig"
)

var logger = log.New("dataintegrity/eddsa")

// VerificationResult is the structured outcome of proof verification. An
// unverified signature is an expected operational condition, so failures are
// reported here instead of raised: Verified is false and Error names the
// first triggering cause. VerifiedDocument holds the unsecured document only
// when verification succeeded.
type VerificationResult struct {
	Verified         bool
	VerifiedDocument map[string]interface{}
	Error            error
}

// VerifyProof checks every proof attached to the secured document by
// recomputing the configure, transform and hash stages and verifying the
// decoded proofValue against the resolved verification method.
func (s *Suite) VerifyProof(securedDoc map[string]interface{}, loader ld.DocumentLoader) *VerificationResult {
	doc := jsonutil.CopyMap(securedDoc)

	proofs, err := proof.GetProofs(doc)
	if err != nil {
		return failed(verificationErrorf("extract proofs: %w", err))
	}

	// strip proof to obtain the unsecured document
	unsecured := jsonutil.CopyMap(doc)
	delete(unsecured, "proof")

	for _, proofMap := range proofs {
		if err := s.verifySingle(unsecured, proofMap, loader); err != nil {
			logger.Debugf("proof verification failed: %s", err)

			return failed(err)
		}
	}

	return &VerificationResult{Verified: true, VerifiedDocument: unsecured}
}

func (s *Suite) verifySingle(unsecured, proofMap map[string]interface{}, loader ld.DocumentLoader) error {
	p, err := proof.NewProof(proofMap)
	if err != nil {
		return verificationErrorf("parse proof: %w", err)
	}

	if p.ProofValue == "" {
		return verificationErrorf("proof has no proofValue")
	}

	if err := s.checkProofOptions(p); err != nil {
		return &ProofVerificationError{Err: err}
	}

	if s.enforceContextPrefix {
		if err := checkContextPrefix(unsecured, p); err != nil {
			return err
		}
	}

	signature, err := proof.DecodeProofValue(p.ProofValue)
	if err != nil {
		return verificationErrorf("decode proofValue: %w", err)
	}

	// strip proofValue to obtain the proof options and recompute the hash
	options := *p
	options.ProofValue = ""

	canonicalConfig, err := s.configure(unsecured, &options, loader)
	if err != nil {
		return err
	}

	canonicalDoc, err := s.transform(unsecured, &options, loader)
	if err != nil {
		return err
	}

	hash := hashData(canonicalConfig, canonicalDoc)

	kp, err := resolveVerificationMethod(loader, options.VerificationMethod)
	if err != nil {
		return err
	}

	if len(kp.PublicKey) == 0 {
		return fmt.Errorf("%w: no public key", ErrInvalidVerificationMethod)
	}

	return ed25519sig.Verify(kp.PublicKey, hash, signature)
}

// checkContextPrefix enforces the JCS rule that a proof carrying an explicit
// @context only verifies against a document whose @context array starts
// with the proof's @context, element-wise and in order.
func checkContextPrefix(unsecured map[string]interface{}, p *proof.Proof) error {
	if p.Context == nil {
		return nil
	}

	proofCtx := asContextArray(p.Context)
	docCtx := asContextArray(unsecured["@context"])

	if len(docCtx) < len(proofCtx) {
		return verificationErrorf("document @context does not extend proof @context")
	}

	for i, c := range proofCtx {
		if !contextEqual(docCtx[i], c) {
			return verificationErrorf("document @context element %d does not match proof @context", i)
		}
	}

	return nil
}

func asContextArray(entry interface{}) []interface{} {
	switch ctx := entry.(type) {
	case nil:
		return nil
	case []interface{}:
		return ctx
	default:
		return []interface{}{ctx}
	}
}

func contextEqual(a, b interface{}) bool {
	as, aok := a.(string)
	bs, bok := b.(string)

	if aok && bok {
		return as == bs
	}

	// non-string context entries (inline context objects) are compared by
	// their canonical JSON form
	ca, err := canonicalizeJCS(map[string]interface{}{"c": a}, nil)
	if err != nil {
		return false
	}

	cb, err := canonicalizeJCS(map[string]interface{}{"c": b}, nil)
	if err != nil {
		return false
	}

	return string(ca) == string(cb)
}

func failed(err error) *VerificationResult {
	return &VerificationResult{Verified: false, Error: err}
}
