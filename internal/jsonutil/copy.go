/*
Copyright Signbound Contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package jsonutil

// CopyMap returns a deep copy of a JSON-like map. Nested maps and slices are
// copied as well, so mutating the copy never touches the original document.
func CopyMap(m map[string]interface{}) map[string]interface{} {
	cm := make(map[string]interface{}, len(m))

	for k, v := range m {
		cm[k] = copyValue(v)
	}

	return cm
}

// CopySlice returns a deep copy of a JSON-like slice.
func CopySlice(s []interface{}) []interface{} {
	cs := make([]interface{}, len(s))

	for i, v := range s {
		cs[i] = copyValue(v)
	}

	return cs
}

func copyValue(v interface{}) interface{} {
	switch value := v.(type) {
	case map[string]interface{}:
		return CopyMap(value)
	case []interface{}:
		return CopySlice(value)
	default:
		return v
	}
}
