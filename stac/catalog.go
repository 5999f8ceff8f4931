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

// Catalog models a STAC Catalog: the entry point of a catalog graph,
// linking to child catalogs, collections and items.
type Catalog struct {
	Traversable
}

// NewCatalog wraps a raw catalog document.
func NewCatalog(data map[string]any, resolver *Resolver) *Catalog {
	return &Catalog{Traversable: NewTraversable(data, resolver)}
}

// Description returns the detailed multi-line description of the
// catalog. CommonMark syntax may be used for rich text representation.
func (c *Catalog) Description() (string, error) {
	return stringField(c.data, "description")
}
