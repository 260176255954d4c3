/*
Copyright Signbound Contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package documentloader

import (
	"testing"

	"github.com/piprate/json-gold/ld"
	"github.com/stretchr/testify/require"
)

func TestLoadPreloadedDocument(t *testing.T) {
	loader := New()
	loader.AddDocument("https://example.org/ctx/v1", map[string]interface{}{"name": "test"})

	rd, err := loader.LoadDocument("https://example.org/ctx/v1")
	require.NoError(t, err)
	require.Equal(t, "https://example.org/ctx/v1", rd.DocumentURL)
	require.Equal(t, map[string]interface{}{"name": "test"}, rd.Document)
}

func TestAddDocumentBytes(t *testing.T) {
	loader := New()

	err := loader.AddDocumentBytes("https://example.org/ctx/v1", []byte(`{"a": 1}`))
	require.NoError(t, err)

	rd, err := loader.LoadDocument("https://example.org/ctx/v1")
	require.NoError(t, err)
	require.NotNil(t, rd.Document)

	err = loader.AddDocumentBytes("https://example.org/bad", []byte(`{`))
	require.Error(t, err)
}

func TestAddMarshalable(t *testing.T) {
	loader := New()

	err := loader.AddMarshalable("https://example.org/doc", struct {
		Name string `json:"name"`
	}{Name: "test"})
	require.NoError(t, err)

	rd, err := loader.LoadDocument("https://example.org/doc")
	require.NoError(t, err)

	doc, ok := rd.Document.(map[string]interface{})
	require.True(t, ok)
	require.Equal(t, "test", doc["name"])
}

func TestLoadMissingDocument(t *testing.T) {
	_, err := New().LoadDocument("https://example.org/unknown")
	require.ErrorIs(t, err, ErrDocumentNotFound)
}

type stubRemoteLoader struct {
	calls int
}

func (s *stubRemoteLoader) LoadDocument(u string) (*ld.RemoteDocument, error) {
	s.calls++

	return &ld.RemoteDocument{DocumentURL: u, Document: map[string]interface{}{}}, nil
}

func TestRemoteFallback(t *testing.T) {
	remote := &stubRemoteLoader{}

	loader := New(WithRemoteDocumentLoader(remote))
	loader.AddDocument("https://example.org/local", map[string]interface{}{})

	_, err := loader.LoadDocument("https://example.org/local")
	require.NoError(t, err)
	require.Zero(t, remote.calls)

	_, err = loader.LoadDocument("https://example.org/remote")
	require.NoError(t, err)
	require.Equal(t, 1, remote.calls)
}
