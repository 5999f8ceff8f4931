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
	"io"
	"mime"
	"net"
	"net/http"
	"net/url"
	"time"

	json "github.com/goccy/go-json"
	"github.com/rs/zerolog/log"
)

const (
	DefaultRequestTimeout  = 30 * time.Second
	DefaultDialTimeout     = 10 * time.Second
	DefaultIdleConnTimeout = 90 * time.Second
	DefaultMaxIdleConns    = 32
)

// HTTP fetches STAC documents over plain blocking GET requests. It
// implements stac.Fetcher. Every Fetch is one independent round trip;
// nothing is cached or de-duplicated.
type HTTP struct {
	client *http.Client
}

// Option configures an HTTP fetcher.
type Option func(*HTTP)

// WithClient replaces the underlying http.Client entirely.
func WithClient(c *http.Client) Option {
	return func(h *HTTP) {
		h.client = c
	}
}

// WithTimeout sets the overall per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(h *HTTP) {
		h.client.Timeout = d
	}
}

// NewHTTP creates an HTTP fetcher with conservative connection-pool
// defaults.
func NewHTTP(opts ...Option) *HTTP {
	transport := &http.Transport{
		DialContext: (&net.Dialer{
			Timeout:   DefaultDialTimeout,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:    DefaultMaxIdleConns,
		IdleConnTimeout: DefaultIdleConnTimeout,
	}

	h := &HTTP{
		client: &http.Client{
			Timeout:   DefaultRequestTimeout,
			Transport: transport,
		},
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

// Fetch issues a GET request against a STAC endpoint and returns the
// decoded JSON document. Non-2xx responses fail with a TransportError;
// responses whose content type is not application/json or
// application/geo+json fail with a ContentTypeError.
func (h *HTTP) Fetch(ctx context.Context, rawURL string, params url.Values) (map[string]any, error) {
	resp, err := h.get(ctx, rawURL, params)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	contentType := resp.Header.Get("Content-Type")
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil || (mediaType != "application/json" && mediaType != "application/geo+json") {
		return nil, &ContentTypeError{URL: rawURL, ContentType: contentType}
	}

	var doc map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		log.Error().Err(err).Str("url", rawURL).Msg("cannot decode STAC document")
		return nil, err
	}

	return doc, nil
}

// Stream opens a GET stream to a remote file, typically an asset
// download. The caller owns the returned body and must close it.
// Non-2xx responses fail with a TransportError.
func (h *HTTP) Stream(ctx context.Context, rawURL string) (io.ReadCloser, error) {
	resp, err := h.get(ctx, rawURL, nil)
	if err != nil {
		return nil, err
	}
	return resp.Body, nil
}

func (h *HTTP) get(ctx context.Context, rawURL string, params url.Values) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}

	if len(params) > 0 {
		query := req.URL.Query()
		for key, values := range params {
			for _, value := range values {
				query.Add(key, value)
			}
		}
		req.URL.RawQuery = query.Encode()
	}
	req.Header.Set("Accept", "application/json, application/geo+json")

	log.Debug().Str("url", req.URL.String()).Msg("GET STAC endpoint")

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		resp.Body.Close()
		return nil, &TransportError{
			URL:        rawURL,
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
		}
	}

	return resp, nil
}
