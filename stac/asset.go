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

// Asset is a file reachable from a Collection or Item, such as imagery
// or a thumbnail.
type Asset struct {
	Href        string   `json:"href"`
	Title       string   `json:"title,omitempty"`
	Description string   `json:"description,omitempty"`
	Type        string   `json:"type,omitempty"`
	Roles       []string `json:"roles,omitempty"`
}

// NewAssets builds the asset map from the raw "assets" value of a
// document. A nil value yields an empty map; each asset must carry an
// href. Roles defaults to an empty list.
func NewAssets(raw any) (map[string]Asset, error) {
	if raw == nil {
		return map[string]Asset{}, nil
	}

	var assets map[string]Asset
	if err := decodeInto(raw, &assets); err != nil {
		return nil, err
	}

	for key, asset := range assets {
		if asset.Href == "" {
			return nil, &MissingFieldError{Field: "href"}
		}
		if asset.Roles == nil {
			asset.Roles = []string{}
			assets[key] = asset
		}
	}

	return assets, nil
}
