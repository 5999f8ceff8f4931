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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeDispatchesOnTypeTag(t *testing.T) {
	registry := NewRegistry()

	cases := map[string]any{
		"Catalog":           &Catalog{},
		"Collection":        &Collection{},
		"Feature":           &Item{},
		"Item":              &Item{},
		"FeatureCollection": &ItemCollection{},
	}
	for tag, want := range cases {
		doc := map[string]any{"type": tag, "id": "x"}
		assert.IsType(t, want, registry.Make(doc, nil), "tag %q", tag)
	}
}

func TestMakeTypeTagBeatsStructure(t *testing.T) {
	// structurally a Catalog, but the tag must win
	doc := catalogDoc("c")
	doc["type"] = "Collection"

	resource := NewRegistry().Make(doc, nil)
	assert.IsType(t, &Collection{}, resource)
}

func TestMakeCollectionSignaturePrecedesCatalog(t *testing.T) {
	// satisfies both signatures; Collection is checked first
	doc := catalogDoc("c")
	doc["extent"] = map[string]any{}

	resource := NewRegistry().Make(doc, nil)
	assert.IsType(t, &Collection{}, resource)
}

func TestMakeStructuralHeuristics(t *testing.T) {
	registry := NewRegistry()

	for _, key := range []string{"extent", "providers", "properties"} {
		doc := map[string]any{key: map[string]any{}}
		assert.IsType(t, &Collection{}, registry.Make(doc, nil), "key %q", key)
	}

	assert.IsType(t, &Catalog{}, registry.Make(catalogDoc("c"), nil))
}

func TestMakeUnclassifiableReturnsRawDocument(t *testing.T) {
	doc := map[string]any{"stac_version": "1.0.0", "id": "partial"}

	resource := NewRegistry().Make(doc, nil)

	raw, ok := resource.(map[string]any)
	require.True(t, ok, "expected the untouched document back")
	assert.Equal(t, "partial", raw["id"])
}

func TestMakeUnknownTypeTagFallsThrough(t *testing.T) {
	doc := catalogDoc("c")
	doc["type"] = "SomethingElse"

	// no factory for the tag; the structural heuristic still applies
	assert.IsType(t, &Catalog{}, NewRegistry().Make(doc, nil))
}

func TestRegisterCustomType(t *testing.T) {
	type queryable struct{ doc map[string]any }

	registry := NewRegistry()
	registry.Register("Queryables", func(doc map[string]any, _ *Resolver) any {
		return &queryable{doc: doc}
	})

	require.True(t, registry.Exists("Queryables"))

	resource := registry.Make(map[string]any{"type": "Queryables"}, nil)
	assert.IsType(t, &queryable{}, resource)
}
