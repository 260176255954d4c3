/*
Copyright Signbound Contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package documentloader provides an in-memory implementation of the
// json-gold ld.DocumentLoader contract. The suite core never performs
// network I/O itself; callers preload context documents and verification
// method documents, or chain a remote loader of their own.
package documentloader

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/piprate/json-gold/ld"
)

// ErrDocumentNotFound is returned when no document is preloaded for a URL
// and no remote loader is configured.
var ErrDocumentNotFound = errors.New("document not found")

// Loader is an in-memory ld.DocumentLoader. It is safe for concurrent reads
// once populated.
type Loader struct {
	docs         map[string]*ld.RemoteDocument
	remoteLoader ld.DocumentLoader
}

// Opt configures a Loader during creation.
type Opt func(l *Loader)

// WithRemoteDocumentLoader specifies a loader consulted for URLs that are
// not preloaded.
func WithRemoteDocumentLoader(loader ld.DocumentLoader) Opt {
	return func(l *Loader) {
		l.remoteLoader = loader
	}
}

// New returns an empty in-memory loader.
func New(opts ...Opt) *Loader {
	l := &Loader{docs: map[string]*ld.RemoteDocument{}}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// AddDocument preloads an already-parsed JSON document under a URL.
func (l *Loader) AddDocument(url string, document interface{}) {
	l.docs[url] = &ld.RemoteDocument{DocumentURL: url, Document: document}
}

// AddDocumentBytes preloads a JSON document from its serialized form.
func (l *Loader) AddDocumentBytes(url string, document []byte) error {
	content, err := ld.DocumentFromReader(bytes.NewReader(document))
	if err != nil {
		return fmt.Errorf("document from reader: %w", err)
	}

	l.docs[url] = &ld.RemoteDocument{DocumentURL: url, Document: content}

	return nil
}

// AddMarshalable preloads any JSON-marshalable value under a URL.
func (l *Loader) AddMarshalable(url string, v interface{}) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}

	return l.AddDocumentBytes(url, b)
}

// LoadDocument resolves a document by URL from memory, falling back to the
// remote loader when one is configured.
func (l *Loader) LoadDocument(u string) (*ld.RemoteDocument, error) {
	if doc, ok := l.docs[u]; ok {
		return doc, nil
	}

	if l.remoteLoader == nil {
		return nil, fmt.Errorf("%w: %s", ErrDocumentNotFound, u)
	}

	return l.remoteLoader.LoadDocument(u)
}
