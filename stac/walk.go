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

	"github.com/rs/zerolog/log"
)

// Node is the navigable surface Walk traverses. Catalog, Collection
// and Item all satisfy it through Traversable.
type Node interface {
	ID() (string, error)
	Children(ctx context.Context) iter.Seq2[any, error]
	Items(ctx context.Context) iter.Seq2[any, error]
}

// Visit is one step of a Walk: the entity reached plus lazy sequences
// over its children and items. Consuming either sequence performs the
// corresponding network fetches.
type Visit struct {
	Resource Node
	Children iter.Seq2[any, error]
	Items    iter.Seq2[any, error]
}

// Walk traverses the subtree rooted at node depth-first, yielding a
// Visit for the node itself and then, for each child in link order,
// the visits of that child's subtree. The sequence is lazy and
// consumer driven: stop consuming to stop fetching.
//
// Walk performs no cycle detection. A link graph in which a child
// links back to an ancestor makes the traversal non-terminating;
// callers walking untrusted catalogs should bound consumption.
// Resolved children that are not themselves navigable (untyped
// documents, item collections) are skipped.
func Walk(ctx context.Context, node Node) iter.Seq2[Visit, error] {
	return func(yield func(Visit, error) bool) {
		walk(ctx, node, yield)
	}
}

func walk(ctx context.Context, node Node, yield func(Visit, error) bool) bool {
	visit := Visit{
		Resource: node,
		Children: node.Children(ctx),
		Items:    node.Items(ctx),
	}
	if !yield(visit, nil) {
		return false
	}

	for child, err := range node.Children(ctx) {
		if err != nil {
			yield(Visit{}, err)
			return false
		}

		next, ok := child.(Node)
		if !ok {
			log.Debug().Type("resource", child).Msg("skipping non-navigable child")
			continue
		}
		if !walk(ctx, next, yield) {
			return false
		}
	}

	return true
}

// FilterByID walks the subtree rooted at node and returns the first
// entity, in depth-first order, whose id equals the target. A nil Node
// means the id was not found. Every call re-walks and re-fetches; this
// is a search, not an index.
func FilterByID(ctx context.Context, node Node, id string) (Node, error) {
	for visit, err := range Walk(ctx, node) {
		if err != nil {
			return nil, err
		}

		candidate, err := visit.Resource.ID()
		if err != nil {
			return nil, err
		}
		if candidate == id {
			return visit.Resource, nil
		}
	}

	return nil, nil
}
