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

// Provider is an organization or person that captures or processes the
// content of a Collection.
type Provider struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Roles       []string `json:"roles,omitempty"`
	URL         string   `json:"url,omitempty"`
}

// NewProviders builds the provider list from the raw "providers" value
// of a collection document. A nil value yields an empty list; each
// provider must carry a name.
func NewProviders(raw any) ([]Provider, error) {
	if raw == nil {
		return []Provider{}, nil
	}

	var providers []Provider
	if err := decodeInto(raw, &providers); err != nil {
		return nil, err
	}

	for _, p := range providers {
		if p.Name == "" {
			return nil, &MissingFieldError{Field: "name"}
		}
	}

	return providers, nil
}
