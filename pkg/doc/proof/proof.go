/*
Copyright Signbound Contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package proof models the DataIntegrityProof object and its conversion to
// and from the JSON-LD map form used during canonicalization.
package proof

import (
	"errors"
	"time"

	"github.com/multiformats/go-multibase"
)

const (
	jsonldType               = "type"
	jsonldCryptosuite        = "cryptosuite"
	jsonldCreated            = "created"
	jsonldProofValue         = "proofValue"
	jsonldProofPurpose       = "proofPurpose"
	jsonldVerificationMethod = "verificationMethod"
	jsonldChallenge          = "challenge"
	jsonldDomain             = "domain"
	jsonldContext            = "@context"
)

// TypeDataIntegrityProof is the proof type shared by all Data Integrity
// cryptosuites.
const TypeDataIntegrityProof = "DataIntegrityProof"

// ErrProofNotFound is returned when a document carries no proof member.
var ErrProofNotFound = errors.New("proof not found")

// ErrMalformedProof is returned when a document's proof member is not an
// object or an array of objects.
var ErrMalformedProof = errors.New("malformed proof")

// Proof is a cryptographic proof of the integrity of a document. Before
// serialization ProofValue is empty; after creation it holds the multibase
// base58-btc encoding of the 64-byte Ed25519 signature.
type Proof struct {
	Type               string
	Cryptosuite        string
	Created            string
	VerificationMethod string
	ProofPurpose       string
	Challenge          string
	Domain             string
	ProofValue         string
	// Context optionally pins the JSON-LD context the proof was created
	// under. It is carried into the secured document by the JCS suite.
	Context interface{}
}

// NewProof builds a Proof from its JSON-LD map form.
func NewProof(emap map[string]interface{}) (*Proof, error) {
	p := &Proof{
		Type:               stringEntry(emap[jsonldType]),
		Cryptosuite:        stringEntry(emap[jsonldCryptosuite]),
		Created:            stringEntry(emap[jsonldCreated]),
		VerificationMethod: stringEntry(emap[jsonldVerificationMethod]),
		ProofPurpose:       stringEntry(emap[jsonldProofPurpose]),
		Challenge:          stringEntry(emap[jsonldChallenge]),
		Domain:             stringEntry(emap[jsonldDomain]),
		ProofValue:         stringEntry(emap[jsonldProofValue]),
		Context:            emap[jsonldContext],
	}

	if p.Type == "" {
		return nil, errors.New("proof type is missing")
	}

	return p, nil
}

// JSONLdObject returns the JSON-LD map form of the proof. Empty fields are
// omitted so the canonical form never carries null members.
func (p *Proof) JSONLdObject() map[string]interface{} {
	emap := make(map[string]interface{})
	emap[jsonldType] = p.Type

	if p.Cryptosuite != "" {
		emap[jsonldCryptosuite] = p.Cryptosuite
	}

	if p.Created != "" {
		emap[jsonldCreated] = p.Created
	}

	if p.VerificationMethod != "" {
		emap[jsonldVerificationMethod] = p.VerificationMethod
	}

	if p.ProofPurpose != "" {
		emap[jsonldProofPurpose] = p.ProofPurpose
	}

	if p.Challenge != "" {
		emap[jsonldChallenge] = p.Challenge
	}

	if p.Domain != "" {
		emap[jsonldDomain] = p.Domain
	}

	if p.ProofValue != "" {
		emap[jsonldProofValue] = p.ProofValue
	}

	if p.Context != nil {
		emap[jsonldContext] = p.Context
	}

	return emap
}

// CreatedTime parses the created timestamp. A missing created field returns
// a zero time without error; a malformed one returns the parse error.
func (p *Proof) CreatedTime() (time.Time, error) {
	if p.Created == "" {
		return time.Time{}, nil
	}

	return time.Parse(time.RFC3339, p.Created)
}

// EncodeProofValue encodes raw signature bytes into the multibase base58-btc
// proofValue form.
func EncodeProofValue(signature []byte) string {
	encoded, _ := multibase.Encode(multibase.Base58BTC, signature) // nolint:errcheck

	return encoded
}

// DecodeProofValue decodes a multibase base58-btc proofValue into raw
// signature bytes.
func DecodeProofValue(s string) ([]byte, error) {
	if s == "" || s[0] != 'z' {
		return nil, errors.New("proofValue is not a base58-btc multibase string")
	}

	_, value, err := multibase.Decode(s)
	if err != nil {
		return nil, errors.New("unsupported proofValue encoding")
	}

	return value, nil
}

func stringEntry(entry interface{}) string {
	if strVal, ok := entry.(string); ok {
		return strVal
	}

	return ""
}
