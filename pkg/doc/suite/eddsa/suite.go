/*
Copyright Signbound Contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package eddsa implements the eddsa-rdfc-2022 and eddsa-jcs-2022 Data
// Integrity cryptosuites. Both share one four-stage pipeline (configure,
// transform, hash, serialize or verify) and differ only in the
// canonicalization strategy: RDF dataset canonicalization producing N-Quads,
// or the JSON Canonicalization Scheme (RFC 8785).
package eddsa

import (
	"encoding/json"
	"fmt"

	"github.com/gowebpki/jcs"
	"github.com/piprate/json-gold/ld"

	"github.com/signbound/dataintegrity-go/pkg/doc/ld/processor"
)

const (
	// CryptosuiteRDFC2022 identifies the RDF-dataset-canonicalization variant.
	CryptosuiteRDFC2022 = "eddsa-rdfc-2022"

	// CryptosuiteJCS2022 identifies the JSON-canonicalization-scheme variant.
	CryptosuiteJCS2022 = "eddsa-jcs-2022"
)

// canonicalizeFn rewrites a document into its deterministic normal-form
// string. The loader is consulted for @context dereferencing only by the
// RDFC strategy.
type canonicalizeFn func(doc map[string]interface{}, loader ld.DocumentLoader) ([]byte, error)

// Suite is a Data Integrity cryptosuite parameterized by a canonicalization
// strategy. A Suite holds no per-invocation state; one instance may serve
// concurrent proof creations and verifications.
type Suite struct {
	cryptosuite  string
	canonicalize canonicalizeFn

	// copyDocumentContext makes the configure stage canonicalize the proof
	// options under the unsecured document's @context (RDFC).
	copyDocumentContext bool

	// enforceContextPrefix makes verification require the secured document's
	// @context to start with the proof's @context array (JCS).
	enforceContextPrefix bool
}

// NewRDFC2022 returns the eddsa-rdfc-2022 suite.
func NewRDFC2022() *Suite {
	p := processor.Default()

	return &Suite{
		cryptosuite: CryptosuiteRDFC2022,
		canonicalize: func(doc map[string]interface{}, loader ld.DocumentLoader) ([]byte, error) {
			return p.GetCanonicalDocument(doc, processor.WithDocumentLoader(loader))
		},
		copyDocumentContext: true,
	}
}

// NewJCS2022 returns the eddsa-jcs-2022 suite.
func NewJCS2022() *Suite {
	return &Suite{
		cryptosuite:          CryptosuiteJCS2022,
		canonicalize:         canonicalizeJCS,
		enforceContextPrefix: true,
	}
}

// Cryptosuite returns the suite's cryptosuite identifier.
func (s *Suite) Cryptosuite() string {
	return s.cryptosuite
}

func canonicalizeJCS(doc map[string]interface{}, _ ld.DocumentLoader) ([]byte, error) {
	b, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshal document: %w", err)
	}

	canonical, err := jcs.Transform(b)
	if err != nil {
		return nil, fmt.Errorf("canonicalize document: %w", err)
	}

	return canonical, nil
}
