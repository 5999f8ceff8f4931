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

// Factory builds a typed resource from a fetched document.
type Factory func(doc map[string]any, resolver *Resolver) any

// Registry maps STAC type tags to resource factories. It is an
// explicit object rather than package state so host applications can
// carry independently extended registries.
type Registry struct {
	factories map[string]Factory
}

// NewRegistry returns a registry with the builtin STAC resource types
// registered: Catalog, Collection, Feature/Item and FeatureCollection.
func NewRegistry() *Registry {
	r := &Registry{factories: make(map[string]Factory)}

	r.Register("Catalog", func(doc map[string]any, resolver *Resolver) any {
		return NewCatalog(doc, resolver)
	})
	r.Register("Collection", func(doc map[string]any, resolver *Resolver) any {
		return NewCollection(doc, resolver)
	})
	itemFactory := func(doc map[string]any, resolver *Resolver) any {
		return NewItem(doc, resolver)
	}
	r.Register("Feature", itemFactory)
	r.Register("Item", itemFactory)
	r.Register("FeatureCollection", func(doc map[string]any, resolver *Resolver) any {
		return NewItemCollection(doc, resolver)
	})

	return r
}

// Register adds or replaces the factory for a type tag. New resource
// kinds can be registered without touching the classification logic.
func (r *Registry) Register(typeTag string, factory Factory) {
	r.factories[typeTag] = factory
}

// Exists reports whether a factory is registered for the type tag.
func (r *Registry) Exists(typeTag string) bool {
	_, ok := r.factories[typeTag]
	return ok
}

// Make classifies a fetched document and builds the matching resource.
//
// An explicit "type" tag with a registered factory wins. Without one,
// a structural heuristic applies: any of extent/providers/properties
// marks a Collection, otherwise stac_version+description+links marks a
// Catalog. The Collection signature is checked first because Collection
// documents usually satisfy the Catalog signature too. Documents that
// match nothing are returned unmodified; callers must be prepared for
// an untyped map.
func (r *Registry) Make(doc map[string]any, resolver *Resolver) any {
	if tag, ok := doc["type"].(string); ok {
		if factory, ok := r.factories[tag]; ok {
			return factory(doc, resolver)
		}
	}

	if hasAnyKey(doc, "extent", "providers", "properties") {
		if factory, ok := r.factories["Collection"]; ok {
			return factory(doc, resolver)
		}
	} else if hasAllKeys(doc, "stac_version", "description", "links") {
		if factory, ok := r.factories["Catalog"]; ok {
			return factory(doc, resolver)
		}
	}

	return doc
}

func hasAnyKey(doc map[string]any, keys ...string) bool {
	for _, k := range keys {
		if _, ok := doc[k]; ok {
			return true
		}
	}
	return false
}

func hasAllKeys(doc map[string]any, keys ...string) bool {
	for _, k := range keys {
		if _, ok := doc[k]; !ok {
			return false
		}
	}
	return true
}
