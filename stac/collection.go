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

// Collection models a STAC Collection: a Catalog with additional
// metadata describing the grouped items, such as extent, license and
// providers.
type Collection struct {
	Catalog
}

// NewCollection wraps a raw collection document.
func NewCollection(data map[string]any, resolver *Resolver) *Collection {
	return &Collection{Catalog: Catalog{Traversable: NewTraversable(data, resolver)}}
}

// Keywords returns the keywords describing the Collection. Can return
// an empty list.
func (c *Collection) Keywords() []string {
	return stringSlice(c.data, "keywords")
}

// License returns the collection license, either as an SPDX license
// identifier or, when the document declares "various" or
// "proprietary", as the license-relation links. Exactly one of the
// returned identifier and links is populated on success; the link form
// is mandatory, so a sentinel value without license links is a
// NoLinkFoundError.
func (c *Collection) License() (string, Links, error) {
	id, err := stringField(c.data, "license")
	if err != nil {
		return "", nil, err
	}

	if id == "various" || id == "proprietary" {
		links, err := c.Links(RelationLicense, false, true)
		if err != nil {
			return "", nil, err
		}
		return "", links, nil
	}

	return id, nil, nil
}

// Providers returns the list of data providers. Can return an empty
// list.
func (c *Collection) Providers() ([]Provider, error) {
	return NewProviders(c.data["providers"])
}

// Extent returns the spatial and temporal extents of the Collection.
// The extent object is required.
func (c *Collection) Extent() (*Extent, error) {
	return NewExtent(objectField(c.data, "extent"))
}

// Summaries returns the map of property summaries, or nil when the
// document has none.
func (c *Collection) Summaries() map[string]any {
	return objectField(c.data, "summaries")
}

// Assets returns the assets of the Collection keyed by asset name. Can
// return an empty map.
func (c *Collection) Assets() (map[string]Asset, error) {
	return NewAssets(c.data["assets"])
}
