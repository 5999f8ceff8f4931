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

// Link is a read-only view over one hyperlink object of a STAC
// document. Construction never validates; required fields are checked
// when accessed.
type Link struct {
	data     map[string]any
	resolver *Resolver
}

// NewLink wraps a raw link object. The resolver may be nil, in which
// case Resource is unavailable.
func NewLink(data map[string]any, resolver *Resolver) Link {
	return Link{data: data, resolver: resolver}
}

// Href returns the target URL of the link.
func (l Link) Href() (string, error) {
	return stringField(l.data, "href")
}

// Rel returns the relation type of the link. The raw string is
// returned as-is so that extension relations pass through; it is not
// checked against the RelationType constants.
func (l Link) Rel() (RelationType, error) {
	rel, err := stringField(l.data, "rel")
	return RelationType(rel), err
}

// Type returns the media type of the referenced entity, or "".
func (l Link) Type() string {
	return optionalString(l.data, "type")
}

// Title returns the human readable title of the link, or "".
func (l Link) Title() string {
	return optionalString(l.data, "title")
}

// Data returns the underlying link object.
func (l Link) Data() map[string]any {
	return l.data
}

// Resource dereferences the link: the target document is fetched and
// classified into a typed STAC resource. One network call per
// invocation; fetcher errors propagate unchanged.
func (l Link) Resource(ctx context.Context) (any, error) {
	if l.resolver == nil {
		return nil, ErrNoResolver
	}

	href, err := l.Href()
	if err != nil {
		return nil, err
	}

	return l.resolver.Resolve(ctx, href)
}

// Links is an ordered collection of Link values, insertion order being
// document order.
type Links []Link

// NewLinks builds a Links collection from the raw value of a document
// "links" array. Accepted element types are raw JSON objects and
// already-wrapped Link values; anything else is rejected.
func NewLinks(raw any, resolver *Resolver) (Links, error) {
	var elements []any
	switch seq := raw.(type) {
	case []any:
		elements = seq
	case Links:
		return seq, nil
	case []Link:
		return Links(seq), nil
	case []map[string]any:
		links := make(Links, 0, len(seq))
		for _, data := range seq {
			links = append(links, NewLink(data, resolver))
		}
		return links, nil
	default:
		return nil, fmt.Errorf("stac: links must be a sequence, got %T", raw)
	}

	links := make(Links, 0, len(elements))
	for _, element := range elements {
		switch v := element.(type) {
		case map[string]any:
			links = append(links, NewLink(v, resolver))
		case Link:
			links = append(links, v)
		default:
			return nil, fmt.Errorf("stac: link must be an object or Link, got %T", element)
		}
	}

	return links, nil
}

// Filter selects the links whose relation equals rel, preserving
// document order. An empty rel keeps every link. With mandatory set,
// an empty result fails with NoLinkFoundError. With single set, more
// than one match fails with AmbiguousLinkError; zero matches is not an
// error and yields an empty collection, so callers index [0] only
// after checking length.
func (ls Links) Filter(rel RelationType, single, mandatory bool) (Links, error) {
	selected := ls
	if rel != "" {
		selected = make(Links, 0, len(ls))
		for _, link := range ls {
			if raw, ok := link.data["rel"].(string); ok && raw == string(rel) {
				selected = append(selected, link)
			}
		}
	}

	if mandatory && len(selected) == 0 {
		return nil, &NoLinkFoundError{Rel: rel}
	}

	if single && len(selected) > 1 {
		return nil, &AmbiguousLinkError{Rel: rel}
	}

	return selected, nil
}
