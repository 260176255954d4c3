/*
Copyright Signbound Contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package processor canonicalizes JSON-LD documents into the RDF dataset
// normal form (URDNA2015, serialized as N-Quads) used by the
// eddsa-rdfc-2022 cryptosuite.
package processor

import (
	"fmt"

	"github.com/piprate/json-gold/ld"

	"github.com/hyperledger/aries-framework-go/component/log"
)

const (
	format           = "application/n-quads"
	defaultAlgorithm = "URDNA2015"
)

var logger = log.New("dataintegrity/processor")

// processorOpts holds options for canonicalization of JSON-LD docs.
type processorOpts struct {
	documentLoader ld.DocumentLoader
}

// Opts are the options for JSON-LD canonicalization.
type Opts func(opts *processorOpts)

// WithDocumentLoader option is for passing a custom JSON-LD document loader
// used to dereference @context URLs.
func WithDocumentLoader(loader ld.DocumentLoader) Opts {
	return func(opts *processorOpts) {
		opts.documentLoader = loader
	}
}

// Processor normalizes JSON-LD documents with a fixed RDF dataset algorithm.
type Processor struct {
	algorithm string
}

// NewProcessor returns a new processor for the given RDF dataset algorithm.
func NewProcessor(algorithm string) *Processor {
	if algorithm == "" {
		return Default()
	}

	return &Processor{algorithm}
}

// Default returns a processor with the default RDF dataset algorithm.
func Default() *Processor {
	return &Processor{defaultAlgorithm}
}

// GetCanonicalDocument returns the canonical N-Quads form of the given
// JSON-LD document.
func (p *Processor) GetCanonicalDocument(doc map[string]interface{}, opts ...Opts) ([]byte, error) {
	procOptions := prepareOpts(opts)

	ldOptions := ld.NewJsonLdOptions("")
	ldOptions.ProcessingMode = ld.JsonLd_1_1
	ldOptions.Algorithm = p.algorithm
	ldOptions.Format = format
	ldOptions.ProduceGeneralizedRdf = true
	ldOptions.DocumentLoader = procOptions.documentLoader

	proc := ld.NewJsonLdProcessor()

	view, err := proc.Normalize(doc, ldOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to normalize JSON-LD document: %w", err)
	}

	result, ok := view.(string)
	if !ok {
		return nil, fmt.Errorf("failed to normalize JSON-LD document, invalid view")
	}

	logger.Debugf("canonicalized document into %d bytes of n-quads", len(result))

	return []byte(result), nil
}

func prepareOpts(opts []Opts) *processorOpts {
	procOpts := &processorOpts{}

	for _, opt := range opts {
		opt(procOpts)
	}

	return procOpts
}
