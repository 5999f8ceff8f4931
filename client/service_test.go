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

package client

import (
	"context"
	"fmt"
	"net/url"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/M3nin0/go-stac-client/stac"
)

// recordingFetcher serves canned documents and records every request.
type recordingFetcher struct {
	docs       map[string]map[string]any
	requests   atomic.Int64
	lastParams url.Values
}

func (f *recordingFetcher) Fetch(_ context.Context, rawURL string, params url.Values) (map[string]any, error) {
	f.requests.Add(1)
	f.lastParams = params

	doc, ok := f.docs[rawURL]
	if !ok {
		return nil, fmt.Errorf("fetch %s: no such document", rawURL)
	}
	return doc, nil
}

func rootDoc() map[string]any {
	return map[string]any{
		"stac_version": "1.0.0",
		"id":           "root",
		"description":  "d",
		"links": []any{
			map[string]any{"href": "http://x/c1", "rel": "child"},
		},
	}
}

func TestServiceCatalogIsCachedOnce(t *testing.T) {
	fetcher := &recordingFetcher{docs: map[string]map[string]any{"http://x": rootDoc()}}
	service := NewService("http://x", WithFetcher(fetcher))

	first, err := service.Catalog(context.Background())
	require.NoError(t, err)

	second, err := service.Catalog(context.Background())
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, int64(1), fetcher.requests.Load())
}

func TestServiceNavigationSharesResolver(t *testing.T) {
	fetcher := &recordingFetcher{docs: map[string]map[string]any{
		"http://x": rootDoc(),
		"http://x/c1": {
			"type":         "Collection",
			"stac_version": "1.0.0",
			"id":           "c1",
			"description":  "child",
			"license":      "MIT",
			"extent": map[string]any{
				"spatial":  map[string]any{"bbox": []any{}},
				"temporal": map[string]any{"interval": []any{}},
			},
			"links": []any{},
		},
	}}
	service := NewService("http://x", WithFetcher(fetcher))

	catalog, err := service.Catalog(context.Background())
	require.NoError(t, err)

	var children []any
	for child, err := range catalog.Children(context.Background()) {
		require.NoError(t, err)
		children = append(children, child)
	}
	require.Len(t, children, 1)
	assert.IsType(t, &stac.Collection{}, children[0])
}

func TestServiceAccessToken(t *testing.T) {
	fetcher := &recordingFetcher{docs: map[string]map[string]any{"http://x": rootDoc()}}
	service := NewService("http://x",
		WithFetcher(fetcher),
		WithAccessToken("secret"),
	)

	_, err := service.Catalog(context.Background())
	require.NoError(t, err)

	require.NotNil(t, fetcher.lastParams)
	assert.Equal(t, "secret", fetcher.lastParams.Get("access_token"))
}

func TestServiceCustomRegistry(t *testing.T) {
	type custom struct{}

	registry := stac.NewRegistry()
	registry.Register("Custom", func(_ map[string]any, _ *stac.Resolver) any {
		return &custom{}
	})

	fetcher := &recordingFetcher{docs: map[string]map[string]any{
		"http://x":        rootDoc(),
		"http://x/custom": {"type": "Custom"},
	}}
	service := NewService("http://x",
		WithFetcher(fetcher),
		WithRegistry(registry),
	)

	resource, err := service.Resolver().Resolve(context.Background(), "http://x/custom")
	require.NoError(t, err)
	assert.IsType(t, &custom{}, resource)
}

func TestServiceURL(t *testing.T) {
	service := NewService("http://x")
	assert.Equal(t, "http://x", service.URL())
}
