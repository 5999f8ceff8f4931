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
	"net/url"
)

// fakeFetcher serves canned documents keyed by URL and records how
// often each URL was requested.
type fakeFetcher struct {
	docs  map[string]map[string]any
	calls map[string]int
}

func newFakeFetcher(docs map[string]map[string]any) *fakeFetcher {
	return &fakeFetcher{docs: docs, calls: make(map[string]int)}
}

func (f *fakeFetcher) Fetch(_ context.Context, rawURL string, _ url.Values) (map[string]any, error) {
	f.calls[rawURL]++

	doc, ok := f.docs[rawURL]
	if !ok {
		return nil, fmt.Errorf("fetch %s: no such document", rawURL)
	}
	return doc, nil
}

func (f *fakeFetcher) totalCalls() int {
	total := 0
	for _, n := range f.calls {
		total += n
	}
	return total
}

func link(href, rel string) map[string]any {
	return map[string]any{"href": href, "rel": rel}
}

func catalogDoc(id string, links ...any) map[string]any {
	return map[string]any{
		"stac_version": "1.0.0",
		"id":           id,
		"description":  "catalog " + id,
		"links":        links,
	}
}

func collectionDoc(id string, links ...any) map[string]any {
	doc := catalogDoc(id, links...)
	doc["type"] = "Collection"
	doc["license"] = "MIT"
	doc["extent"] = map[string]any{
		"spatial":  map[string]any{"bbox": []any{[]any{-180.0, -90.0, 180.0, 90.0}}},
		"temporal": map[string]any{"interval": []any{[]any{"2020-01-01T00:00:00Z", nil}}},
	}
	return doc
}

func itemDoc(id string, links ...any) map[string]any {
	return map[string]any{
		"type":         "Feature",
		"stac_version": "1.0.0",
		"id":           id,
		"geometry":     map[string]any{"type": "Point", "coordinates": []any{0.0, 0.0}},
		"properties":   map[string]any{"datetime": "2020-01-01T00:00:00Z"},
		"links":        links,
	}
}
