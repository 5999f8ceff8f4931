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
	"net/url"

	"github.com/M3nin0/go-stac-client/stac"
)

// Service is the entry point for browsing a STAC catalog or STAC API:
// it attaches a fetcher and a resource registry to a root catalog URL.
type Service struct {
	url         string
	accessToken string
	fetcher     stac.Fetcher
	registry    *stac.Registry
	resolver    *stac.Resolver
	catalog     *stac.Catalog
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithFetcher replaces the default HTTP fetcher.
func WithFetcher(f stac.Fetcher) ServiceOption {
	return func(s *Service) {
		s.fetcher = f
	}
}

// WithRegistry replaces the default resource registry, allowing hosts
// to register additional resource types.
func WithRegistry(r *stac.Registry) ServiceOption {
	return func(s *Service) {
		s.registry = r
	}
}

// WithAccessToken sends the token as an access_token query parameter
// on every fetch.
func WithAccessToken(token string) ServiceOption {
	return func(s *Service) {
		s.accessToken = token
	}
}

// NewService creates a STAC client attached to the given root catalog
// URL.
func NewService(rootURL string, opts ...ServiceOption) *Service {
	s := &Service{url: rootURL}
	for _, opt := range opts {
		opt(s)
	}

	if s.fetcher == nil {
		s.fetcher = NewHTTP()
	}
	if s.accessToken != "" {
		s.fetcher = &tokenFetcher{next: s.fetcher, token: s.accessToken}
	}
	s.resolver = stac.NewResolver(s.fetcher, s.registry)

	return s
}

// URL returns the root catalog URL the service is attached to.
func (s *Service) URL() string {
	return s.url
}

// Resolver returns the resolver shared by every entity reached through
// this service.
func (s *Service) Resolver() *stac.Resolver {
	return s.resolver
}

// Catalog returns the root catalog of the service. The root document
// is fetched once and kept for the lifetime of the Service; navigation
// from it is lazy as usual.
func (s *Service) Catalog(ctx context.Context) (*stac.Catalog, error) {
	if s.catalog != nil {
		return s.catalog, nil
	}

	doc, err := s.fetcher.Fetch(ctx, s.url, nil)
	if err != nil {
		return nil, err
	}

	s.catalog = stac.NewCatalog(doc, s.resolver)
	return s.catalog, nil
}

// tokenFetcher decorates a fetcher with an access_token query
// parameter.
type tokenFetcher struct {
	next  stac.Fetcher
	token string
}

func (t *tokenFetcher) Fetch(ctx context.Context, rawURL string, params url.Values) (map[string]any, error) {
	withToken := url.Values{}
	for key, values := range params {
		withToken[key] = values
	}
	withToken.Set("access_token", t.token)

	return t.next.Fetch(ctx, rawURL, withToken)
}
