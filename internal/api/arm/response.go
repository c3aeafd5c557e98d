// Copyright 2025 Microsoft Corporation
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package arm

import (
	"bytes"
	"encoding/json"
	"net/http"
)

const (
	prefix string = ""     // no prefix
	indent string = "    " // 4 spaces
)

// MarshalCompact returns the compact JSON encoding of v without HTML
// escaping, which is the encoding used for every generated document.
//
// json.Marshal would escape '<', '>' and '&' as \u003c and friends.
func MarshalCompact(v any) ([]byte, error) {
	var buf bytes.Buffer

	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(v); err != nil {
		return nil, err
	}

	// Encode always appends a newline.
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// MarshalIndent is MarshalCompact with every level indented by the given
// string. It is used for human-facing CLI output.
func MarshalIndent(v any, indent string) ([]byte, error) {
	data, err := MarshalCompact(v)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, data, prefix, indent); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteJSONResponse writes a JSON response body to the http.ResponseWriter in
// the proper sequence: first setting Content-Type to "application/json", then
// setting the HTTP status code, and finally writing a JSON encoding of body.
//
// A byte slice body is written verbatim with the expectation that it was
// produced by MarshalCompact. Generated templates are always passed this way
// so the body the caller receives is exactly the body that was self-checked.
func WriteJSONResponse(writer http.ResponseWriter, statusCode int, body any) (int, error) {
	var data []byte

	switch v := body.(type) {
	case []byte:
		data = v // write a byte slice verbatim
	default:
		var err error
		data, err = MarshalCompact(body)
		if err != nil {
			return 0, err
		}
	}

	writer.Header().Set(HeaderNameContentType, ContentTypeJSON)
	writer.WriteHeader(statusCode)
	return writer.Write(data)
}
