// Copyright 2021-2023
// SPDX-License-Identifier: Apache-2.0
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package stac

import (
	"fmt"

	json "github.com/goccy/go-json"
)

func stringField(data map[string]any, field string) (string, error) {
	v, ok := data[field]
	if !ok {
		return "", &MissingFieldError{Field: field}
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("stac: field %q is not a string, got %T", field, v)
	}
	return s, nil
}

func optionalString(data map[string]any, field string) string {
	s, _ := data[field].(string)
	return s
}

func stringSlice(data map[string]any, field string) []string {
	raw, ok := data[field].([]any)
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func objectField(data map[string]any, field string) map[string]any {
	obj, _ := data[field].(map[string]any)
	return obj
}

// decodeInto re-encodes an already-decoded JSON fragment into a typed
// destination.
func decodeInto(fragment any, out any) error {
	raw, err := json.Marshal(fragment)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}
