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
	"net/url"

	"github.com/rs/zerolog/log"
)

// Fetcher retrieves a remote STAC document as a decoded JSON object.
// Implementations are expected to fail on non-2xx responses and on
// response bodies that are not application/json or application/geo+json.
type Fetcher interface {
	Fetch(ctx context.Context, url string, params url.Values) (map[string]any, error)
}

// Resolver turns hrefs into typed resources by fetching the document
// and classifying it against a registry. One Resolver is shared by all
// entities reached from the same starting point; every resolved
// resource carries it so navigation can keep going.
type Resolver struct {
	fetcher  Fetcher
	registry *Registry
}

// NewResolver creates a Resolver around the given fetcher. A nil
// registry selects a registry with the builtin STAC types.
func NewResolver(fetcher Fetcher, registry *Registry) *Resolver {
	if registry == nil {
		registry = NewRegistry()
	}
	return &Resolver{fetcher: fetcher, registry: registry}
}

// Registry returns the registry used for classification.
func (r *Resolver) Registry() *Registry {
	return r.registry
}

// Resolve fetches href and classifies the resulting document. The
// returned value is *Catalog, *Collection, *Item, *ItemCollection, a
// registered custom type, or the raw map when classification fails.
func (r *Resolver) Resolve(ctx context.Context, href string) (any, error) {
	log.Debug().Str("href", href).Msg("resolving linked resource")

	doc, err := r.fetcher.Fetch(ctx, href, nil)
	if err != nil {
		return nil, err
	}

	return r.registry.Make(doc, r), nil
}
