/*
Copyright Signbound Contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package proof

// AddProof attaches a proof to a JSON-LD document. A document that already
// carries a proof member gets an array with the new proof appended.
func AddProof(jsonLdObject map[string]interface{}, p *Proof) {
	proofMap := p.JSONLdObject()

	switch existing := jsonLdObject["proof"].(type) {
	case nil:
		jsonLdObject["proof"] = proofMap
	case []interface{}:
		jsonLdObject["proof"] = append(existing, proofMap)
	default:
		jsonLdObject["proof"] = []interface{}{existing, proofMap}
	}
}

// GetProofs extracts all proof maps attached to a JSON-LD document.
func GetProofs(jsonLdObject map[string]interface{}) ([]map[string]interface{}, error) {
	entry, ok := jsonLdObject["proof"]
	if !ok {
		return nil, ErrProofNotFound
	}

	var entries []interface{}

	switch e := entry.(type) {
	case []interface{}:
		entries = e
	default:
		entries = []interface{}{e}
	}

	result := make([]map[string]interface{}, 0, len(entries))

	for _, e := range entries {
		emap, ok := e.(map[string]interface{})
		if !ok {
			return nil, ErrMalformedProof
		}

		result = append(result, emap)
	}

	if len(result) == 0 {
		return nil, ErrProofNotFound
	}

	return result, nil
}
