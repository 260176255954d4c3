/*
Copyright Signbound Contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package eddsa

import (
	"crypto/sha256"
	"fmt"

	"github.com/piprate/json-gold/ld"

	"github.com/signbound/dataintegrity-go/internal/jsonutil"
	"github.com/signbound/dataintegrity-go/pkg/doc/keypair"
	"github.com/signbound/dataintegrity-go/pkg/doc/proof"
	"github.com/signbound/dataintegrity-go/pkg/doc/signature/ed25519sig"
)

const defaultProofPurpose = "assertionMethod"

// CreateProof runs the configure, transform, hash and serialize stages over
// the unsecured document and returns the signed proof. The caller's document
// and options are never mutated; the pipeline works on private copies. Any
// stage failure aborts the invocation, no partial proof is ever returned.
func (s *Suite) CreateProof(unsecuredDoc map[string]interface{}, options *proof.Proof,
	loader ld.DocumentLoader) (*proof.Proof, error) {
	if options == nil {
		return nil, generationErrorf("proof options are missing")
	}

	doc := jsonutil.CopyMap(unsecuredDoc)

	opts := *options
	if opts.ProofPurpose == "" {
		opts.ProofPurpose = defaultProofPurpose
	}

	canonicalConfig, err := s.configure(doc, &opts, loader)
	if err != nil {
		return nil, err
	}

	canonicalDoc, err := s.transform(doc, &opts, loader)
	if err != nil {
		return nil, err
	}

	hash := hashData(canonicalConfig, canonicalDoc)

	kp, err := resolveVerificationMethod(loader, opts.VerificationMethod)
	if err != nil {
		return nil, &ProofGenerationError{Err: err}
	}

	if len(kp.PrivateKey) == 0 {
		return nil, fmt.Errorf("%w: no private key", ErrInvalidVerificationMethod)
	}

	signature, err := ed25519sig.NewSigner(kp.PrivateKey).Sign(hash)
	if err != nil {
		return nil, &ProofGenerationError{Err: err}
	}

	opts.ProofValue = proof.EncodeProofValue(signature)

	return &opts, nil
}

// SignDocument creates a proof over the unsecured document and returns a
// copy of the document with the proof attached. An already present proof is
// kept, turning the proof member into an array.
func (s *Suite) SignDocument(unsecuredDoc map[string]interface{}, options *proof.Proof,
	loader ld.DocumentLoader) (map[string]interface{}, error) {
	p, err := s.CreateProof(unsecuredDoc, options, loader)
	if err != nil {
		return nil, err
	}

	secured := jsonutil.CopyMap(unsecuredDoc)
	proof.AddProof(secured, p)

	return secured, nil
}

// configure clones the proof options, validates them and canonicalizes the
// resulting proof configuration.
func (s *Suite) configure(doc map[string]interface{}, options *proof.Proof,
	loader ld.DocumentLoader) ([]byte, error) {
	if err := s.checkProofOptions(options); err != nil {
		return nil, &ProofGenerationError{Err: err}
	}

	config := options.JSONLdObject()

	if s.copyDocumentContext {
		if ctx, ok := doc["@context"]; ok {
			config["@context"] = ctx
		}
	}

	canonical, err := s.canonicalize(config, loader)
	if err != nil {
		return nil, generationErrorf("canonicalize proof configuration: %w", err)
	}

	return canonical, nil
}

// transform canonicalizes the unsecured document, not the proof.
func (s *Suite) transform(doc map[string]interface{}, options *proof.Proof,
	loader ld.DocumentLoader) ([]byte, error) {
	if err := s.checkProofOptions(options); err != nil {
		return nil, &ProofTransformationError{Err: err}
	}

	canonical, err := s.canonicalize(doc, loader)
	if err != nil {
		return nil, transformationErrorf("canonicalize document: %w", err)
	}

	return canonical, nil
}

func (s *Suite) checkProofOptions(options *proof.Proof) error {
	if options.Type != proof.TypeDataIntegrityProof {
		return fmt.Errorf("unsupported proof type %q", options.Type)
	}

	if options.Cryptosuite != s.cryptosuite {
		return fmt.Errorf("cryptosuite %q does not match %q", options.Cryptosuite, s.cryptosuite)
	}

	if _, err := options.CreatedTime(); err != nil {
		return fmt.Errorf("invalid created timestamp %q", options.Created)
	}

	return nil
}

// hashData digests the canonical proof configuration and the canonical
// document independently and concatenates proofConfigHash then
// transformedDocumentHash. The order is load-bearing: swapping it produces
// an incompatible hash.
func hashData(canonicalConfig, canonicalDoc []byte) []byte {
	configHash := sha256.Sum256(canonicalConfig)
	docHash := sha256.Sum256(canonicalDoc)

	return append(configHash[:], docHash[:]...)
}

// resolveVerificationMethod dereferences a verification method URL through
// the injected document loader and imports it as a keypair entity.
func resolveVerificationMethod(loader ld.DocumentLoader, url string) (*keypair.KeyPair, error) {
	if url == "" {
		return nil, fmt.Errorf("%w: no verification method reference", ErrInvalidVerificationMethod)
	}

	rd, err := loader.LoadDocument(url)
	if err != nil {
		return nil, fmt.Errorf("resolve verification method %s: %w", url, err)
	}

	vmDoc, ok := rd.Document.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("%w: unexpected document shape %T", ErrInvalidVerificationMethod, rd.Document)
	}

	kp, err := keypair.Import(vmDoc)
	if err != nil {
		return nil, fmt.Errorf("import verification method %s: %w", url, err)
	}

	return kp, nil
}
