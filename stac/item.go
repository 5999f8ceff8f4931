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
	"context"
	"fmt"
)

// Item models a STAC Item: a GeoJSON Feature augmented with foreign
// members relevant to a STAC object.
type Item struct {
	Traversable
}

// NewItem wraps a raw item document.
func NewItem(data map[string]any, resolver *Resolver) *Item {
	return &Item{Traversable: NewTraversable(data, resolver)}
}

// Geometry returns the raw GeoJSON geometry object, or nil.
func (i *Item) Geometry() map[string]any {
	return objectField(i.data, "geometry")
}

// BBox returns the bounding box of the Item, or nil.
func (i *Item) BBox() []float64 {
	var bbox []float64
	if raw, ok := i.data["bbox"]; ok {
		if err := decodeInto(raw, &bbox); err != nil {
			return nil
		}
	}
	return bbox
}

// Properties returns the raw properties object of the Item, or nil.
func (i *Item) Properties() map[string]any {
	return objectField(i.data, "properties")
}

// Assets returns the assets of the Item keyed by asset name. Can
// return an empty map.
func (i *Item) Assets() (map[string]Asset, error) {
	return NewAssets(i.data["assets"])
}

// CollectionID returns the id of the Collection the Item references,
// or "" when the Item belongs to no collection.
func (i *Item) CollectionID() string {
	return optionalString(i.data, "collection")
}

// Collection resolves the Collection the Item belongs to via its
// collection link. The link is mandatory only when the document
// declares a collection id; without one, a missing link yields nil.
func (i *Item) Collection(ctx context.Context) (any, error) {
	_, declared := i.data["collection"]

	links, err := i.Links(RelationCollection, true, declared)
	if err != nil {
		return nil, err
	}
	if len(links) == 0 {
		return nil, nil
	}

	return links[0].Resource(ctx)
}

// ItemCollection models a GeoJSON FeatureCollection of STAC Items,
// typically one page of an item listing. Beyond the features view the
// document is kept unstructured.
type ItemCollection struct {
	data     map[string]any
	resolver *Resolver
}

// NewItemCollection wraps a raw feature collection document.
func NewItemCollection(data map[string]any, resolver *Resolver) *ItemCollection {
	if data == nil {
		data = map[string]any{}
	}
	return &ItemCollection{data: data, resolver: resolver}
}

// Doc returns the underlying raw document.
func (ic *ItemCollection) Doc() map[string]any {
	return ic.data
}

// Features returns the Items of the collection in document order. Can
// return an empty list.
func (ic *ItemCollection) Features() ([]*Item, error) {
	raw, ok := ic.data["features"].([]any)
	if !ok {
		return []*Item{}, nil
	}

	items := make([]*Item, 0, len(raw))
	for _, element := range raw {
		doc, ok := element.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("stac: feature must be an object, got %T", element)
		}
		items = append(items, NewItem(doc, ic.resolver))
	}

	return items, nil
}
