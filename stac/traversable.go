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
	"iter"
)

// Traversable is the base shape shared by Catalog, Collection and
// Item: a wrapped raw document plus link-relation navigation. The STAC
// object types form a HATEOAS-style graph connected by typed links;
// every navigation property below is the same filter-then-resolve
// predicate with a different relation and cardinality.
//
// The entity owns its raw document exclusively. The Links view is
// recomputed from the "links" array on every call, never cached, and
// every resolved resource is an independently fetched document.
type Traversable struct {
	data     map[string]any
	resolver *Resolver
}

// NewTraversable wraps a raw document. Construction never validates;
// required fields fail on first access.
func NewTraversable(data map[string]any, resolver *Resolver) Traversable {
	if data == nil {
		data = map[string]any{}
	}
	return Traversable{data: data, resolver: resolver}
}

// Doc returns the underlying raw document.
func (t *Traversable) Doc() map[string]any {
	return t.data
}

// Version returns the STAC version the entity implements.
func (t *Traversable) Version() (string, error) {
	return stringField(t.data, "stac_version")
}

// Extensions returns the extension identifiers the entity implements.
// Can return an empty list.
func (t *Traversable) Extensions() []string {
	return stringSlice(t.data, "stac_extensions")
}

// ID returns the entity identifier, unique within its catalog or
// collection.
func (t *Traversable) ID() (string, error) {
	return stringField(t.data, "id")
}

// Title returns the short descriptive title of the entity, or "".
func (t *Traversable) Title() string {
	return optionalString(t.data, "title")
}

// Links returns the references to catalogs, collections, items or
// other kinds of resources, filtered by rel when non-empty. With
// single set, more than one match is an AmbiguousLinkError; with
// mandatory set, zero matches is a NoLinkFoundError.
func (t *Traversable) Links(rel RelationType, single, mandatory bool) (Links, error) {
	raw, ok := t.data["links"]
	if !ok {
		raw = []any{}
	}

	links, err := NewLinks(raw, t.resolver)
	if err != nil {
		return nil, err
	}

	return links.Filter(rel, single, mandatory)
}

// URL returns the absolute URL of the entity's self link, or "" when
// the entity carries no self link.
func (t *Traversable) URL() (string, error) {
	links, err := t.Links(RelationSelf, true, false)
	if err != nil {
		return "", err
	}
	if len(links) == 0 {
		return "", nil
	}
	return links[0].Href()
}

// Parent resolves the parent Catalog or Collection, or nil when the
// entity has no parent link. One network fetch on success.
func (t *Traversable) Parent(ctx context.Context) (any, error) {
	return t.single(ctx, RelationParent)
}

// Root resolves the root Catalog or Collection, or nil when the entity
// has no root link. One network fetch on success.
func (t *Traversable) Root(ctx context.Context) (any, error) {
	return t.single(ctx, RelationRoot)
}

// Children iterates over the entities referenced by child links, in
// link order. The sequence is lazy: each element performs its own
// network fetch when consumed, and iterating again re-fetches. Fetch
// and classification failures surface as the error of the element
// being consumed, after which iteration stops.
func (t *Traversable) Children(ctx context.Context) iter.Seq2[any, error] {
	return t.resources(ctx, RelationChild)
}

// Items iterates over the Item entities referenced by item links, with
// the same lazy contract as Children.
func (t *Traversable) Items(ctx context.Context) iter.Seq2[any, error] {
	return t.resources(ctx, RelationItem)
}

func (t *Traversable) single(ctx context.Context, rel RelationType) (any, error) {
	links, err := t.Links(rel, true, false)
	if err != nil {
		return nil, err
	}
	if len(links) == 0 {
		return nil, nil
	}
	return links[0].Resource(ctx)
}

func (t *Traversable) resources(ctx context.Context, rel RelationType) iter.Seq2[any, error] {
	return func(yield func(any, error) bool) {
		links, err := t.Links(rel, false, false)
		if err != nil {
			yield(nil, err)
			return
		}

		for _, link := range links {
			resource, err := link.Resource(ctx)
			if !yield(resource, err) || err != nil {
				return
			}
		}
	}
}
